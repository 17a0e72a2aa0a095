package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"SeniorCompanion_Backend/internal/chatbot"
	"SeniorCompanion_Backend/internal/models"
	"SeniorCompanion_Backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// Assistant wires the rule engine into the HTTP layer.
var Assistant *chatbot.Engine

type ChatbotQueryRequest struct {
	Message string `json:"message" example:"how do I set a medicine reminder?"`
}

type ChatbotQueryResponse struct {
	Status   string `json:"status" example:"answered"`
	Response string `json:"response"`
	Link     string `json:"link,omitempty"`
}

type CreateRuleRequest struct {
	Pattern       string `json:"pattern" example:"pension"`
	MatchType     string `json:"match_type" example:"contains"`
	Response      string `json:"response"`
	SuggestedLink string `json:"suggested_link"`
	Priority      int    `json:"priority" example:"9"`
}

// ChatbotQuery godoc
// @Summary      Ask the assistant
// @Description  Runs a question through the rule table. Works for anonymous visitors too;
// @Description  authenticated callers get unanswered questions attributed to them.
// @Tags         Chatbot
// @Accept       json
// @Produce      json
// @Param        request body handler.ChatbotQueryRequest true "The question"
// @Success      200 {object} handler.ChatbotQueryResponse
// @Failure      400 {object} handler.ErrorResponse
// @Router       /chatbot/query [post]
func ChatbotQuery(c *gin.Context) {
	var req ChatbotQueryRequest
	rawData, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if err := json.Unmarshal(rawData, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message cannot be empty"})
		return
	}

	var userID *int
	if id, exists := c.Get("user_id"); exists {
		if uid, ok := id.(int); ok {
			userID = &uid
		}
	}

	result, err := Assistant.Process(req.Message, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Assistant unavailable"})
		return
	}

	status := "answered"
	if !result.Matched {
		status = "unanswered"
	}
	c.JSON(http.StatusOK, ChatbotQueryResponse{
		Status:   status,
		Response: result.Response,
		Link:     result.Link,
	})
}

// ListUnanswered godoc
// @Summary      List unanswered questions
// @Description  Staff triage queue of questions no rule matched, unresolved first.
// @Tags         Staff
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} models.UnansweredQuery
// @Failure      403 {object} handler.ErrorResponse
// @Router       /api/staff/unanswered [get]
func ListUnanswered(c *gin.Context) {
	queries, err := storage.ListUnansweredQueries()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load queries"})
		return
	}
	c.JSON(http.StatusOK, queries)
}

// ResolveUnanswered godoc
// @Summary      Mark a question resolved
// @Tags         Staff
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Query ID"
// @Success      200 {object} handler.SuccessResponse
// @Failure      400 {object} handler.ErrorResponse
// @Router       /api/staff/unanswered/{id}/resolve [post]
func ResolveUnanswered(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query id"})
		return
	}
	if err := storage.ResolveUnansweredQuery(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve query"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Query resolved"})
}

// ListRules godoc
// @Summary      List assistant rules
// @Tags         Staff
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} models.LogicRule
// @Router       /api/staff/rules [get]
func ListRules(c *gin.Context) {
	rules, err := storage.ListRulesByPriority()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load rules"})
		return
	}
	c.JSON(http.StatusOK, rules)
}

// CreateRule godoc
// @Summary      Add an assistant rule
// @Description  New rules take effect on the next query; no restart needed.
// @Tags         Staff
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body handler.CreateRuleRequest true "The rule"
// @Success      200 {object} object{id=int}
// @Failure      400 {object} handler.ErrorResponse
// @Router       /api/staff/rules [post]
func CreateRule(c *gin.Context) {
	var req CreateRuleRequest
	rawData, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if err := json.Unmarshal(rawData, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if strings.TrimSpace(req.Pattern) == "" || strings.TrimSpace(req.Response) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Pattern and response cannot be empty"})
		return
	}
	switch req.MatchType {
	case models.MatchExact, models.MatchContains, models.MatchRegex:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Match type must be exact, contains or regex"})
		return
	}

	id, err := storage.CreateRule(models.LogicRule{
		Pattern:       req.Pattern,
		MatchType:     req.MatchType,
		Response:      req.Response,
		SuggestedLink: req.SuggestedLink,
		Priority:      req.Priority,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create rule"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// DeleteRule godoc
// @Summary      Delete an assistant rule
// @Tags         Staff
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Rule ID"
// @Success      200 {object} handler.SuccessResponse
// @Failure      400 {object} handler.ErrorResponse
// @Router       /api/staff/rules/{id} [delete]
func DeleteRule(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rule id"})
		return
	}
	if err := storage.DeleteRule(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete rule"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Rule deleted"})
}
