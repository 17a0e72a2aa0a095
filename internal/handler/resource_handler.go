package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"SeniorCompanion_Backend/internal/models"
	"SeniorCompanion_Backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// How many items of each kind the personalized home feed carries.
const homeFeedLimit = 3

type ProgressRequest struct {
	Status string `json:"status" example:"completed"`
}

type GameSessionRequest struct {
	GameName string `json:"game_name" example:"Memory Match"`
	Score    int    `json:"score" example:"120"`
	Outcome  string `json:"outcome" example:"win"`
}

// ListHospitals godoc
// @Summary      Browse hospitals
// @Description  Filters: q (name/specialty/city/state), geriatrics, wheelchair, emergency.
// @Description  nearby_emergency=on searches 24h emergency departments near the caller's
// @Description  saved home city and state instead of the free-text query.
// @Tags         Directory
// @Produce      json
// @Security     BearerAuth
// @Param        q                query string false "Free-text search"
// @Param        geriatrics       query string false "Set to 'on' to require a geriatrics department"
// @Param        wheelchair       query string false "Set to 'on' to require wheelchair access"
// @Param        emergency        query string false "Set to 'on' to require a 24h emergency department"
// @Param        nearby_emergency query string false "Set to 'on' for emergency search near home"
// @Success      200 {array} models.Hospital
// @Router       /api/hospitals [get]
func ListHospitals(c *gin.Context) {
	filter := storage.HospitalFilter{
		Query:          c.Query("q"),
		GeriatricsOnly: c.Query("geriatrics") == "on",
		WheelchairOnly: c.Query("wheelchair") == "on",
		EmergencyOnly:  c.Query("emergency") == "on",
	}

	if c.Query("nearby_emergency") == "on" {
		profile, err := storage.GetProfileByUserID(c.GetInt("user_id"))
		if err != nil {
			log.Printf("[ERROR] nearby emergency search, profile load failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
			return
		}
		if profile.HomeCity == "" && profile.HomeState == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Save your home city in your profile to search nearby"})
			return
		}
		filter.Query = ""
		filter.City = profile.HomeCity
		filter.State = profile.HomeState
	}

	hospitals, err := storage.ListHospitals(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load hospitals"})
		return
	}
	c.JSON(http.StatusOK, hospitals)
}

// GetHospital godoc
// @Summary      Hospital detail
// @Description  Returns the hospital with its doctors grouped by specialty.
// @Tags         Directory
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Hospital ID"
// @Success      200 {object} object{hospital=models.Hospital,doctors=[]models.Doctor}
// @Failure      404 {object} handler.ErrorResponse
// @Router       /api/hospitals/{id} [get]
func GetHospital(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid hospital id"})
		return
	}

	hospital, err := storage.GetHospital(id)
	if err != nil {
		if errors.Is(err, storage.ErrResourceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Hospital not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load hospital"})
		return
	}

	doctors, err := storage.DoctorsByHospital(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load doctors"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"hospital": hospital, "doctors": doctors})
}

// GetDoctor godoc
// @Summary      Doctor detail
// @Tags         Directory
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Doctor ID"
// @Success      200 {object} models.Doctor
// @Failure      404 {object} handler.ErrorResponse
// @Router       /api/doctors/{id} [get]
func GetDoctor(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid doctor id"})
		return
	}

	doctor, err := storage.GetDoctor(id)
	if err != nil {
		if errors.Is(err, storage.ErrResourceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load doctor"})
		return
	}
	c.JSON(http.StatusOK, doctor)
}

// ListPlaces godoc
// @Summary      Browse places to visit
// @Tags         Directory
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} models.PlaceToVisit
// @Router       /api/places [get]
func ListPlaces(c *gin.Context) {
	places, err := storage.ListPlaces()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load places"})
		return
	}
	c.JSON(http.StatusOK, places)
}

// GetPlace godoc
// @Summary      Place detail
// @Tags         Directory
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Place ID"
// @Success      200 {object} models.PlaceToVisit
// @Failure      404 {object} handler.ErrorResponse
// @Router       /api/places/{id} [get]
func GetPlace(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid place id"})
		return
	}

	place, err := storage.GetPlace(id)
	if err != nil {
		if errors.Is(err, storage.ErrResourceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Place not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load place"})
		return
	}
	c.JSON(http.StatusOK, place)
}

// ListLearning godoc
// @Summary      Browse learning resources
// @Description  Returns the filtered list plus the caller's progress per resource.
// @Tags         Learning
// @Produce      json
// @Security     BearerAuth
// @Param        q            query string false "Free-text search over title and description"
// @Param        content_type query string false "article, video, pdf or tutorial"
// @Param        difficulty   query string false "beginner, intermediate or advanced"
// @Success      200 {object} object{resources=[]models.LearningResource,progress=map[string]string}
// @Router       /api/learning [get]
func ListLearning(c *gin.Context) {
	resources, err := storage.ListLearningResources(storage.LearningFilter{
		Query:       c.Query("q"),
		ContentType: c.Query("content_type"),
		Difficulty:  c.Query("difficulty"),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load resources"})
		return
	}

	progress, err := storage.LearningProgressMap(c.GetInt("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load progress"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"resources": resources, "progress": progress})
}

// SetLearningProgress godoc
// @Summary      Update learning progress
// @Description  Sets the caller's status on a resource; the record is created on first use.
// @Tags         Learning
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path int                     true "Resource ID"
// @Param        request body handler.ProgressRequest true "New status"
// @Success      200 {object} handler.SuccessResponse
// @Failure      400 {object} handler.ErrorResponse
// @Failure      404 {object} handler.ErrorResponse
// @Router       /api/learning/{id}/progress [post]
func SetLearningProgress(c *gin.Context) {
	userID := c.GetInt("user_id")

	resourceID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid resource id"})
		return
	}

	var req ProgressRequest
	rawData, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if err := json.Unmarshal(rawData, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if !models.ValidProgressStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid progress status"})
		return
	}

	if _, err := storage.GetLearningResource(resourceID); err != nil {
		if errors.Is(err, storage.ErrResourceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load resource"})
		return
	}

	if err := storage.UpsertLearningProgress(userID, resourceID, req.Status); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save progress"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Progress saved"})
}

// ListEvents godoc
// @Summary      Browse events
// @Tags         Learning
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} models.Event
// @Router       /api/events [get]
func ListEvents(c *gin.Context) {
	events, err := storage.ListEvents()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load events"})
		return
	}
	c.JSON(http.StatusOK, events)
}

// HomeFeed godoc
// @Summary      Personalized home feed
// @Description  Picks upcoming events and learning resources matching the caller's hobbies.
// @Tags         Profile
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} object{events=[]models.Event,learning=[]models.LearningResource}
// @Router       /api/home [get]
func HomeFeed(c *gin.Context) {
	userID := c.GetInt("user_id")

	hobbyIDs, err := storage.HobbyIDsForUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load hobbies"})
		return
	}

	events, err := storage.UpcomingEventsByHobbies(hobbyIDs, homeFeedLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load events"})
		return
	}
	learning, err := storage.LearningByHobbies(hobbyIDs, homeFeedLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load resources"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events, "learning": learning})
}

// ListGames godoc
// @Summary      Browse games
// @Tags         Games
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} models.Game
// @Router       /api/games [get]
func ListGames(c *gin.Context) {
	games, err := storage.ListGames()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load games"})
		return
	}
	c.JSON(http.StatusOK, games)
}

// RecordGameSession godoc
// @Summary      Record a finished game
// @Description  Game frontends post the display name; lookup is fuzzy on purpose.
// @Tags         Games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body handler.GameSessionRequest true "Session result"
// @Success      200 {object} object{id=int}
// @Failure      400 {object} handler.ErrorResponse
// @Failure      404 {object} handler.ErrorResponse "No matching game"
// @Router       /api/games/sessions [post]
func RecordGameSession(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req GameSessionRequest
	rawData, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if err := json.Unmarshal(rawData, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if strings.TrimSpace(req.GameName) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Game name cannot be empty"})
		return
	}
	switch req.Outcome {
	case models.OutcomeWin, models.OutcomeLoss, models.OutcomeDraw, models.OutcomeQuit:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Outcome must be win, loss, draw or quit"})
		return
	}

	game, err := storage.FindGameByName(req.GameName)
	if err != nil {
		if errors.Is(err, storage.ErrResourceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up game"})
		return
	}

	id, err := storage.RecordGameSession(userID, game.ID, req.Score, req.Outcome)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}
