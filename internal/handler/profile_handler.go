package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"SeniorCompanion_Backend/internal/storage"

	"github.com/gin-gonic/gin"
)

type UpdateProfileRequest struct {
	EmergencyContactName  string `json:"emergency_contact_name" example:"Ravi Kumar"`
	EmergencyContactPhone string `json:"emergency_contact_phone" example:"+91-9876543210"`
	HomeCity              string `json:"home_city" example:"Pune"`
	HomeState             string `json:"home_state" example:"Maharashtra"`
	HobbyIDs              []int  `json:"hobby_ids"`
}

// GetProfile godoc
// @Summary      View own profile
// @Description  Returns the caller's profile including hobbies.
// @Tags         Profile
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} models.Profile
// @Failure      401 {object} handler.ErrorResponse
// @Router       /api/profile [get]
func GetProfile(c *gin.Context) {
	userID := c.GetInt("user_id")

	profile, err := storage.GetProfileByUserID(userID)
	if err != nil {
		log.Printf("[ERROR] GetProfileByUserID failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfile godoc
// @Summary      Update own profile
// @Description  Saves emergency contact, home location and replaces the hobby set.
// @Tags         Profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body handler.UpdateProfileRequest true "Profile fields"
// @Success      200 {object} handler.SuccessResponse
// @Failure      400 {object} handler.ErrorResponse
// @Router       /api/profile [put]
func UpdateProfile(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req UpdateProfileRequest
	rawData, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if err := json.Unmarshal(rawData, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	err = storage.UpdateProfile(userID, req.EmergencyContactName, req.EmergencyContactPhone,
		req.HomeCity, req.HomeState, req.HobbyIDs)
	if err != nil {
		log.Printf("[ERROR] UpdateProfile failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated"})
}

// ListHobbies godoc
// @Summary      List hobby choices
// @Tags         Profile
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} models.Hobby
// @Router       /api/hobbies [get]
func ListHobbies(c *gin.Context) {
	hobbies, err := storage.ListHobbies()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load hobbies"})
		return
	}
	c.JSON(http.StatusOK, hobbies)
}

// ListCompanions godoc
// @Summary      List companions
// @Description  Returns every other senior, flagged with whether the caller already added them.
// @Tags         Companions
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} models.CompanionEntry
// @Router       /api/companions [get]
func ListCompanions(c *gin.Context) {
	userID := c.GetInt("user_id")

	entries, err := storage.ListCompanionEntries(userID)
	if err != nil {
		log.Printf("[ERROR] ListCompanionEntries failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load companions"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// AddCompanion godoc
// @Summary      Add a companion
// @Description  Adds another senior to the caller's companion list. The link is one-way.
// @Tags         Companions
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "User ID to add"
// @Success      200 {object} handler.SuccessResponse
// @Failure      400 {object} handler.ErrorResponse
// @Failure      404 {object} handler.ErrorResponse "No such user"
// @Router       /api/companions/{id} [post]
func AddCompanion(c *gin.Context) {
	userID := c.GetInt("user_id")

	companionID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}
	if companionID == userID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot add yourself as a companion"})
		return
	}

	if err := storage.AddCompanion(userID, companionID); err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		log.Printf("[ERROR] AddCompanion failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add companion"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Companion added"})
}

// RemoveCompanion godoc
// @Summary      Remove a companion
// @Description  Removes a user from the caller's companion list. Never touches the reverse link.
// @Tags         Companions
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Companion user ID"
// @Success      200 {object} handler.SuccessResponse
// @Failure      400 {object} handler.ErrorResponse
// @Router       /api/companions/{id} [delete]
func RemoveCompanion(c *gin.Context) {
	userID := c.GetInt("user_id")

	companionID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid companion id"})
		return
	}

	if err := storage.RemoveCompanion(userID, companionID); err != nil {
		log.Printf("[ERROR] RemoveCompanion failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove companion"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Companion removed"})
}
