package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/emilythestrangee/devoverflow/backend/internal/models"
	"github.com/emilythestrangee/devoverflow/backend/internal/store"
)

type AnswerHandler struct {
	store *store.Store
}

func NewAnswerHandler(s *store.Store) *AnswerHandler {
	return &AnswerHandler{store: s}
}

// GetAnswers returns all answers for a question, best-voted first
func (h *AnswerHandler) GetAnswers(c *gin.Context) {
	questionID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid question ID"})
		return
	}

	answers, err := h.store.AnswersForQuestion(questionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch answers"})
		return
	}

	c.JSON(http.StatusOK, answers)
}

// CreateAnswer posts an answer to a question (PROTECTED)
func (h *AnswerHandler) CreateAnswer(c *gin.Context) {
	authorID, ok := extractUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	questionID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid question ID"})
		return
	}

	var input struct {
		Content     string `json:"content" binding:"required"`
		IsAnonymous bool   `json:"is_anonymous"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	answer := models.Answer{
		Content:     input.Content,
		QuestionID:  questionID,
		AuthorID:    authorID,
		IsAnonymous: input.IsAnonymous,
	}

	created, err := h.store.CreateAnswer(&answer)
	if err != nil {
		handleStoreError(c, err, "Failed to create answer")
		return
	}

	c.JSON(http.StatusCreated, created)
}
