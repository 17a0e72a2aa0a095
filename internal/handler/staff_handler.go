/**
* Name: 			staff_handler.go
* Description: 		Directory management endpoints for staff accounts.
*					All routes here sit behind AuthMiddleware + StaffOnly.
 */
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"SeniorCompanion_Backend/internal/models"
	"SeniorCompanion_Backend/internal/storage"

	"github.com/gin-gonic/gin"
)

func bindBody(c *gin.Context, dest interface{}) bool {
	rawData, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return false
	}
	if err := json.Unmarshal(rawData, dest); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return false
	}
	return true
}

func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return id, true
}

// CreateHospital godoc
// @Summary      Add a hospital
// @Tags         Staff
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body models.Hospital true "Hospital details"
// @Success      200 {object} object{id=int}
// @Failure      400 {object} handler.ErrorResponse
// @Router       /api/staff/hospitals [post]
func CreateHospital(c *gin.Context) {
	var h models.Hospital
	if !bindBody(c, &h) {
		return
	}
	if strings.TrimSpace(h.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Hospital name cannot be empty"})
		return
	}
	id, err := storage.CreateHospital(h)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create hospital"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// DeleteHospital godoc
// @Summary      Remove a hospital
// @Tags         Staff
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Hospital ID"
// @Success      200 {object} handler.SuccessResponse
// @Router       /api/staff/hospitals/{id} [delete]
func DeleteHospital(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := storage.DeleteHospital(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete hospital"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Hospital deleted"})
}

// ListDoctors godoc
// @Summary      List all doctors
// @Tags         Staff
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} models.Doctor
// @Router       /api/staff/doctors [get]
func ListDoctors(c *gin.Context) {
	doctors, err := storage.ListDoctors()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load doctors"})
		return
	}
	c.JSON(http.StatusOK, doctors)
}

// CreateDoctor godoc
// @Summary      Add a doctor
// @Tags         Staff
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body models.Doctor true "Doctor details"
// @Success      200 {object} object{id=int}
// @Failure      400 {object} handler.ErrorResponse
// @Router       /api/staff/doctors [post]
func CreateDoctor(c *gin.Context) {
	var d models.Doctor
	if !bindBody(c, &d) {
		return
	}
	if strings.TrimSpace(d.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Doctor name cannot be empty"})
		return
	}
	id, err := storage.CreateDoctor(d)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create doctor"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// DeleteDoctor godoc
// @Summary      Remove a doctor
// @Tags         Staff
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Doctor ID"
// @Success      200 {object} handler.SuccessResponse
// @Router       /api/staff/doctors/{id} [delete]
func DeleteDoctor(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := storage.DeleteDoctor(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete doctor"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Doctor deleted"})
}

// CreatePlace godoc
// @Summary      Add a place to visit
// @Tags         Staff
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body models.PlaceToVisit true "Place details"
// @Success      200 {object} object{id=int}
// @Failure      400 {object} handler.ErrorResponse
// @Router       /api/staff/places [post]
func CreatePlace(c *gin.Context) {
	var p models.PlaceToVisit
	if !bindBody(c, &p) {
		return
	}
	if strings.TrimSpace(p.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Place name cannot be empty"})
		return
	}
	id, err := storage.CreatePlace(p)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create place"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// DeletePlace godoc
// @Summary      Remove a place
// @Tags         Staff
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Place ID"
// @Success      200 {object} handler.SuccessResponse
// @Router       /api/staff/places/{id} [delete]
func DeletePlace(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := storage.DeletePlace(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete place"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Place deleted"})
}

// CreateLearningResource godoc
// @Summary      Add a learning resource
// @Tags         Staff
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body models.LearningResource true "Resource details"
// @Success      200 {object} object{id=int}
// @Failure      400 {object} handler.ErrorResponse
// @Router       /api/staff/learning [post]
func CreateLearningResource(c *gin.Context) {
	var r models.LearningResource
	if !bindBody(c, &r) {
		return
	}
	if strings.TrimSpace(r.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title cannot be empty"})
		return
	}
	id, err := storage.CreateLearningResource(r)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create resource"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// DeleteLearningResource godoc
// @Summary      Remove a learning resource
// @Tags         Staff
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Resource ID"
// @Success      200 {object} handler.SuccessResponse
// @Router       /api/staff/learning/{id} [delete]
func DeleteLearningResource(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := storage.DeleteLearningResource(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete resource"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Resource deleted"})
}

type CreateEventRequest struct {
	Name        string `json:"name" example:"Morning Walk Club"`
	Description string `json:"description"`
	HobbyID     int    `json:"hobby_id" example:"3"`
	Location    string `json:"location" example:"Kamala Nehru Park"`
	EventDate   string `json:"event_date" example:"2026-09-15T07:00:00Z"`
}

// CreateEvent godoc
// @Summary      Add an event
// @Description  EventDate is RFC 3339. The creating staff account is recorded.
// @Tags         Staff
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body handler.CreateEventRequest true "Event details"
// @Success      200 {object} object{id=int}
// @Failure      400 {object} handler.ErrorResponse
// @Router       /api/staff/events [post]
func CreateEvent(c *gin.Context) {
	var req CreateEventRequest
	if !bindBody(c, &req) {
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Event name cannot be empty"})
		return
	}
	eventDate, err := time.Parse(time.RFC3339, req.EventDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Event date must be RFC 3339"})
		return
	}

	creator := c.GetInt("user_id")
	id, err := storage.CreateEvent(models.Event{
		Name:        req.Name,
		Description: req.Description,
		HobbyID:     req.HobbyID,
		Location:    req.Location,
		EventDate:   eventDate,
		CreatedBy:   &creator,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create event"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// DeleteEvent godoc
// @Summary      Remove an event
// @Tags         Staff
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Event ID"
// @Success      200 {object} handler.SuccessResponse
// @Router       /api/staff/events/{id} [delete]
func DeleteEvent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := storage.DeleteEvent(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete event"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted"})
}

// CreateGame godoc
// @Summary      Add a game
// @Tags         Staff
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body models.Game true "Game details"
// @Success      200 {object} object{id=int}
// @Failure      400 {object} handler.ErrorResponse
// @Router       /api/staff/games [post]
func CreateGame(c *gin.Context) {
	var g models.Game
	if !bindBody(c, &g) {
		return
	}
	if strings.TrimSpace(g.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Game name cannot be empty"})
		return
	}
	id, err := storage.CreateGame(g)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create game"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// DeleteGame godoc
// @Summary      Remove a game
// @Tags         Staff
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Game ID"
// @Success      200 {object} handler.SuccessResponse
// @Router       /api/staff/games/{id} [delete]
func DeleteGame(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := storage.DeleteGame(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete game"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Game deleted"})
}

type CreateHobbyRequest struct {
	Name string `json:"name" example:"Gardening"`
}

// CreateHobby godoc
// @Summary      Add a hobby choice
// @Tags         Staff
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body handler.CreateHobbyRequest true "Hobby name"
// @Success      200 {object} object{id=int}
// @Failure      400 {object} handler.ErrorResponse
// @Router       /api/staff/hobbies [post]
func CreateHobby(c *gin.Context) {
	var req CreateHobbyRequest
	if !bindBody(c, &req) {
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Hobby name cannot be empty"})
		return
	}
	id, err := storage.CreateHobby(req.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create hobby"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// CreateCatalogPolicy godoc
// @Summary      Add a catalog policy
// @Tags         Staff
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body models.CatalogPolicy true "Policy details"
// @Success      200 {object} object{id=int}
// @Failure      400 {object} handler.ErrorResponse
// @Router       /api/staff/catalog [post]
func CreateCatalogPolicy(c *gin.Context) {
	var p models.CatalogPolicy
	if !bindBody(c, &p) {
		return
	}
	if strings.TrimSpace(p.PolicyName) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Policy name cannot be empty"})
		return
	}
	id, err := storage.CreateCatalogPolicy(p)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create catalog policy"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// DeleteCatalogPolicy godoc
// @Summary      Remove a catalog policy
// @Tags         Staff
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Policy ID"
// @Success      200 {object} handler.SuccessResponse
// @Router       /api/staff/catalog/{id} [delete]
func DeleteCatalogPolicy(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := storage.DeleteCatalogPolicy(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete catalog policy"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Catalog policy deleted"})
}
