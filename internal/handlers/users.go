package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/emilythestrangee/devoverflow/backend/internal/store"
)

type UserHandler struct {
	store *store.Store
}

func NewUserHandler(s *store.Store) *UserHandler {
	return &UserHandler{store: s}
}

// GetUsers returns all users, newest first
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.store.Users()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUserProfile returns a user's profile
func (h *UserHandler) GetUserProfile(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	user, err := h.store.User(id)
	if err != nil {
		handleStoreError(c, err, "Failed to fetch user")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         user.ID,
		"username":   user.Username,
		"bio":        user.Bio,
		"avatar":     user.Avatar,
		"xp":         user.XP,
		"level":      user.Level,
		"streak":     user.Streak,
		"created_at": user.CreatedAt,
	})
}

// GetUserStats returns the caller's gamification summary (PROTECTED)
func (h *UserHandler) GetUserStats(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	stats, err := h.store.StatsForUser(userID)
	if err != nil {
		handleStoreError(c, err, "Failed to fetch stats")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetUserBadges is a placeholder until the badge system ships
func (h *UserHandler) GetUserBadges(c *gin.Context) {
	c.JSON(http.StatusOK, []gin.H{})
}

// GetPathways is a placeholder until learning pathways ship
func (h *UserHandler) GetPathways(c *gin.Context) {
	c.JSON(http.StatusOK, []gin.H{})
}
