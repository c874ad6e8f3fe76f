package models

import "time"

// Vote target and type values stored in the votes table.
const (
	TargetQuestion = "question"
	TargetAnswer   = "answer"

	VoteUp   = "up"
	VoteDown = "down"
)

// Vote model - one row per (user, target); the unique index backstops
// concurrent double-votes.
type Vote struct {
	ID         int       `gorm:"primaryKey" json:"id"`
	UserID     int       `gorm:"not null;uniqueIndex:idx_votes_user_target" json:"user_id"`
	TargetType string    `gorm:"size:16;not null;uniqueIndex:idx_votes_user_target" json:"target_type"`
	TargetID   int       `gorm:"not null;uniqueIndex:idx_votes_user_target" json:"target_id"`
	VoteType   string    `gorm:"size:8;not null" json:"vote_type"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type CastVoteRequest struct {
	TargetType string `json:"target_type" binding:"required,oneof=question answer"`
	TargetID   int    `json:"target_id" binding:"required"`
	VoteType   string `json:"vote_type" binding:"required,oneof=up down"`
}
