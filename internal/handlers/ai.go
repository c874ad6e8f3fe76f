package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emilythestrangee/devoverflow/backend/internal/ai"
)

type AIHandler struct {
	assistant *ai.Assistant
}

func NewAIHandler(assistant *ai.Assistant) *AIHandler {
	return &AIHandler{assistant: assistant}
}

// Assist rewrites question/answer drafts with the AI assistant (PROTECTED)
func (h *AIHandler) Assist(c *gin.Context) {
	var input ai.AssistRequest
	if err := c.ShouldBindJSON(&input); err != nil || input.Content == "" || input.Action == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Content and action are required"})
		return
	}

	result, err := h.assistant.Improve(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process AI assistance"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// QuestionSuggestions generates follow-up questions for a topic (PROTECTED)
func (h *AIHandler) QuestionSuggestions(c *gin.Context) {
	var input struct {
		Topic string `json:"topic" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Topic is required"})
		return
	}

	suggestions, err := h.assistant.QuestionSuggestions(c.Request.Context(), input.Topic)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate question suggestions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}
