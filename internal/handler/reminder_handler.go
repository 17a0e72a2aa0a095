package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"SeniorCompanion_Backend/internal/storage"

	"github.com/gin-gonic/gin"
)

type CreateMedicationRequest struct {
	Name   string `json:"name" example:"Metformin"`
	Dosage string `json:"dosage" example:"500mg after dinner"`
}

type AddReminderRequest struct {
	ReminderTime string `json:"reminder_time" example:"08:30"`
}

// ListMedications godoc
// @Summary      List own medications
// @Description  Returns the caller's medications with their reminder times.
// @Tags         Reminders
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} models.Medication
// @Router       /api/medications [get]
func ListMedications(c *gin.Context) {
	userID := c.GetInt("user_id")

	meds, err := storage.ListMedicationsByUser(userID)
	if err != nil {
		log.Printf("[ERROR] ListMedicationsByUser failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load medications"})
		return
	}
	c.JSON(http.StatusOK, meds)
}

// CreateMedication godoc
// @Summary      Add a medication
// @Tags         Reminders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body handler.CreateMedicationRequest true "Medication details"
// @Success      200 {object} object{id=int}
// @Failure      400 {object} handler.ErrorResponse
// @Router       /api/medications [post]
func CreateMedication(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req CreateMedicationRequest
	rawData, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if err := json.Unmarshal(rawData, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Medication name cannot be empty"})
		return
	}

	id, err := storage.CreateMedication(userID, req.Name, req.Dosage)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create medication"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// DeleteMedication godoc
// @Summary      Delete a medication
// @Description  Removes a medication and all of its reminders. Only the owner may delete.
// @Tags         Reminders
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Medication ID"
// @Success      200 {object} handler.SuccessResponse
// @Failure      404 {object} handler.ErrorResponse
// @Router       /api/medications/{id} [delete]
func DeleteMedication(c *gin.Context) {
	userID := c.GetInt("user_id")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid medication id"})
		return
	}

	if err := storage.DeleteMedication(id, userID); err != nil {
		if errors.Is(err, storage.ErrMedicationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Medication not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete medication"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Medication deleted"})
}

// AddReminder godoc
// @Summary      Add a reminder time
// @Description  Attaches a daily "HH:MM" reminder time to one of the caller's medications.
// @Tags         Reminders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path int                        true "Medication ID"
// @Param        request body handler.AddReminderRequest true "Reminder time"
// @Success      200 {object} object{id=int}
// @Failure      400 {object} handler.ErrorResponse
// @Failure      404 {object} handler.ErrorResponse
// @Router       /api/medications/{id}/reminders [post]
func AddReminder(c *gin.Context) {
	userID := c.GetInt("user_id")

	medicationID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid medication id"})
		return
	}

	var req AddReminderRequest
	rawData, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if err := json.Unmarshal(rawData, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	// Normalize through time.Parse so "8:30" and "08:30" both store
	// as "08:30", matching what the sweep compares against.
	parsed, err := time.Parse("15:04", req.ReminderTime)
	if err != nil {
		parsed, err = time.Parse("3:04", req.ReminderTime)
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Reminder time must be HH:MM"})
		return
	}

	id, err := storage.AddReminder(medicationID, userID, parsed.Format("15:04"))
	if err != nil {
		if errors.Is(err, storage.ErrMedicationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Medication not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add reminder"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// DeleteReminder godoc
// @Summary      Delete a reminder time
// @Tags         Reminders
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Reminder ID"
// @Success      200 {object} handler.SuccessResponse
// @Failure      404 {object} handler.ErrorResponse
// @Router       /api/reminders/{id} [delete]
func DeleteReminder(c *gin.Context) {
	userID := c.GetInt("user_id")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reminder id"})
		return
	}

	if err := storage.DeleteReminder(id, userID); err != nil {
		if errors.Is(err, storage.ErrReminderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Reminder not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete reminder"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reminder deleted"})
}
