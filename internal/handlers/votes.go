package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/emilythestrangee/devoverflow/backend/internal/models"
	"github.com/emilythestrangee/devoverflow/backend/internal/store"
)

type VoteHandler struct {
	store *store.Store
}

func NewVoteHandler(s *store.Store) *VoteHandler {
	return &VoteHandler{store: s}
}

// CastVote creates, flips or removes the caller's vote (PROTECTED)
func (h *VoteHandler) CastVote(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input models.CastVoteRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.store.CastVote(userID, input.TargetType, input.TargetID, input.VoteType)
	if err != nil {
		handleStoreError(c, err, "Failed to vote")
		return
	}

	if result.Removed {
		c.JSON(http.StatusOK, gin.H{"removed": true, "message": "Vote removed"})
		return
	}
	c.JSON(http.StatusCreated, result.Vote)
}

// GetUserVote returns the caller's vote on a target, or null (PROTECTED)
func (h *VoteHandler) GetUserVote(c *gin.Context) {
	userID, ok := extractUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	targetType := c.Param("targetType")
	targetID, err := strconv.Atoi(c.Param("targetId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid target ID"})
		return
	}

	vote, err := h.store.UserVote(userID, targetType, targetID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch vote"})
		return
	}

	if vote == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, vote)
}
