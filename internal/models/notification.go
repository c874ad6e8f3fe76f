package models

import "time"

// Notification types produced by the write paths.
const (
	NotificationAnswer   = "answer"
	NotificationAccepted = "accepted"
)

// Notification is immutable once created except for IsRead.
type Notification struct {
	ID            int       `gorm:"primaryKey" json:"id"`
	UserID        int       `gorm:"not null;index" json:"user_id"`
	Type          string    `gorm:"size:20;not null" json:"type"`
	Title         string    `gorm:"not null" json:"title"`
	Message       string    `gorm:"not null" json:"message"`
	QuestionID    *int      `json:"question_id,omitempty"`
	Question      *Question `gorm:"foreignKey:QuestionID" json:"question,omitempty"`
	AnswerID      *int      `json:"answer_id,omitempty"`
	Answer        *Answer   `gorm:"foreignKey:AnswerID" json:"answer,omitempty"`
	TriggeredByID *int      `json:"triggered_by_id,omitempty"`
	TriggeredBy   *User     `gorm:"foreignKey:TriggeredByID" json:"triggered_by,omitempty"`
	IsRead        bool      `gorm:"default:false;index" json:"is_read"`
	CreatedAt     time.Time `json:"created_at"`
}
