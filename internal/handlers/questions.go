package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/emilythestrangee/devoverflow/backend/internal/models"
	"github.com/emilythestrangee/devoverflow/backend/internal/store"
)

type QuestionHandler struct {
	store *store.Store
}

func NewQuestionHandler(s *store.Store) *QuestionHandler {
	return &QuestionHandler{store: s}
}

// GetQuestions returns a page of questions with tags and answer counts
func (h *QuestionHandler) GetQuestions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	sortBy := c.DefaultQuery("sortBy", store.SortNewest)

	questions, err := h.store.Questions(limit, offset, sortBy)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch questions"})
		return
	}

	c.JSON(http.StatusOK, questions)
}

// GetQuestion returns a single question by ID and bumps its view counter
func (h *QuestionHandler) GetQuestion(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid question ID"})
		return
	}

	question, err := h.store.QuestionByID(id)
	if err != nil {
		handleStoreError(c, err, "Failed to fetch question")
		return
	}

	// View bump is fire-and-forget; the read is served either way.
	if err := h.store.IncrementQuestionViews(id); err == nil {
		question.Views++
	}

	c.JSON(http.StatusOK, question)
}

// CreateQuestion creates a question with its tags (PROTECTED)
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	authorID, ok := extractUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input struct {
		Title       string   `json:"title" binding:"required"`
		Content     string   `json:"content" binding:"required"`
		Tags        []string `json:"tags" binding:"required"`
		IsAnonymous bool     `json:"is_anonymous"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tags := store.NormalizeTagNames(input.Tags)
	if len(tags) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one tag is required"})
		return
	}
	if len(tags) > store.MaxQuestionTags {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At most 5 tags allowed"})
		return
	}

	question := models.Question{
		Title:       input.Title,
		Content:     input.Content,
		AuthorID:    authorID,
		IsAnonymous: input.IsAnonymous,
	}

	created, err := h.store.CreateQuestion(&question, tags)
	if err != nil {
		handleStoreError(c, err, "Failed to create question")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// AcceptAnswer marks an answer as accepted (PROTECTED - question author only)
func (h *QuestionHandler) AcceptAnswer(c *gin.Context) {
	userID, ok := extractUserID(c)
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
		AnswerID int `json:"answer_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid answer ID"})
		return
	}

	if err := h.store.AcceptAnswer(questionID, input.AnswerID, userID); err != nil {
		handleStoreError(c, err, "Failed to accept answer")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Answer accepted successfully"})
}

// GetStats returns site-wide totals for the sidebar
func (h *QuestionHandler) GetStats(c *gin.Context) {
	stats, err := h.store.SiteStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
