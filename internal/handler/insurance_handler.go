package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"SeniorCompanion_Backend/internal/models"
	"SeniorCompanion_Backend/internal/recommend"
	"SeniorCompanion_Backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// Recommender is set at startup when the weights file loads; nil
// means personalized suggestions are unavailable.
var Recommender *recommend.Model

type CreatePolicyRequest struct {
	PolicyName       string  `json:"policy_name" example:"Senior Health Shield"`
	PolicyNumber     string  `json:"policy_number" example:"SHS-2024-00113"`
	ProviderName     string  `json:"provider_name" example:"Star Health"`
	CoverageType     string  `json:"coverage_type" example:"health"`
	StartDate        string  `json:"start_date" example:"2024-04-01"`
	ExpiryDate       string  `json:"expiry_date" example:"2027-03-31"`
	PremiumAmount    float64 `json:"premium_amount" example:"18000"`
	PremiumFrequency string  `json:"premium_frequency" example:"yearly"`
	CoverageSummary  string  `json:"coverage_summary"`
}

// InsuranceHub godoc
// @Summary      Insurance hub
// @Description  The caller's own policies alongside the staff-curated catalog.
// @Tags         Insurance
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} object{my_policies=[]models.UserInsurancePolicy,catalog=[]models.CatalogPolicy}
// @Router       /api/insurance/hub [get]
func InsuranceHub(c *gin.Context) {
	userID := c.GetInt("user_id")

	mine, err := storage.ListUserPolicies(userID)
	if err != nil {
		log.Printf("[ERROR] ListUserPolicies failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load policies"})
		return
	}
	catalog, err := storage.ListCatalogPolicies()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load catalog"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"my_policies": mine, "catalog": catalog})
}

// CreatePolicy godoc
// @Summary      Track a personal policy
// @Description  Saves a policy the caller holds so the expiry sweep can warn them. Dates
// @Description  are "YYYY-MM-DD" and optional.
// @Tags         Insurance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body handler.CreatePolicyRequest true "Policy details"
// @Success      200 {object} object{id=int}
// @Failure      400 {object} handler.ErrorResponse
// @Router       /api/insurance/policies [post]
func CreatePolicy(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req CreatePolicyRequest
	rawData, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if err := json.Unmarshal(rawData, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if strings.TrimSpace(req.PolicyName) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Policy name cannot be empty"})
		return
	}
	for _, date := range []string{req.StartDate, req.ExpiryDate} {
		if date == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", date); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Dates must be YYYY-MM-DD"})
			return
		}
	}

	id, err := storage.CreateUserPolicy(models.UserInsurancePolicy{
		UserID:           userID,
		PolicyName:       req.PolicyName,
		PolicyNumber:     req.PolicyNumber,
		ProviderName:     req.ProviderName,
		CoverageType:     req.CoverageType,
		StartDate:        req.StartDate,
		ExpiryDate:       req.ExpiryDate,
		PremiumAmount:    req.PremiumAmount,
		PremiumFrequency: req.PremiumFrequency,
		CoverageSummary:  req.CoverageSummary,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save policy"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// DeletePolicy godoc
// @Summary      Stop tracking a policy
// @Tags         Insurance
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Policy ID"
// @Success      200 {object} handler.SuccessResponse
// @Failure      404 {object} handler.ErrorResponse
// @Router       /api/insurance/policies/{id} [delete]
func DeletePolicy(c *gin.Context) {
	userID := c.GetInt("user_id")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid policy id"})
		return
	}

	if err := storage.DeleteUserPolicy(id, userID); err != nil {
		if errors.Is(err, storage.ErrPolicyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Policy not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete policy"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Policy deleted"})
}

// RecommendInsurance godoc
// @Summary      Personalized insurance suggestions
// @Description  Scores the product catalog against a short questionnaire. If the trained
// @Description  weights are not available on this server the endpoint reports that
// @Description  explicitly instead of returning unscored offers.
// @Tags         Insurance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body recommend.Input true "Questionnaire answers"
// @Success      200 {object} object{recommendations=[]recommend.Offer}
// @Failure      400 {object} handler.ErrorResponse
// @Failure      503 {object} handler.ErrorResponse "Model weights not available"
// @Router       /api/insurance/recommend [post]
func RecommendInsurance(c *gin.Context) {
	if Recommender == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Recommendation model is not available, please try again later"})
		return
	}

	var input recommend.Input
	rawData, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if err := json.Unmarshal(rawData, &input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	offers := Recommender.Recommend(input, time.Now())
	c.JSON(http.StatusOK, gin.H{"recommendations": offers})
}
