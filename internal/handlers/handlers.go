package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emilythestrangee/devoverflow/backend/internal/ai"
	"github.com/emilythestrangee/devoverflow/backend/internal/database"
	"github.com/emilythestrangee/devoverflow/backend/internal/store"
)

// Handler combines all handler types
type Handler struct {
	Auth         *AuthHandler
	Question     *QuestionHandler
	Answer       *AnswerHandler
	Vote         *VoteHandler
	Tag          *TagHandler
	Notification *NotificationHandler
	User         *UserHandler
	AI           *AIHandler
}

// NewHandler creates a unified handler with all sub-handlers
func NewHandler(dbService database.Service) *Handler {
	gormDB := dbService.GetDB()
	s := store.New(gormDB)

	return &Handler{
		Auth:         NewAuthHandler(gormDB),
		Question:     NewQuestionHandler(s),
		Answer:       NewAnswerHandler(s),
		Vote:         NewVoteHandler(s),
		Tag:          NewTagHandler(s),
		Notification: NewNotificationHandler(s),
		User:         NewUserHandler(s),
		AI:           NewAIHandler(ai.NewAssistant()),
	}
}

func extractUserID(c *gin.Context) (int, bool) {
	raw, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	switch v := raw.(type) {
	case int:
		return v, true
	case uint:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

// handleStoreError maps store sentinel errors to HTTP status codes;
// anything else is a 500 with the supplied message.
func handleStoreError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, store.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
