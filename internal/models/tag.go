package models

import "time"

type Tag struct {
	ID          int       `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:50;unique;not null" json:"name"`
	Description string    `json:"description"`
	Color       string    `gorm:"size:7;default:#3B82F6" json:"color"`
	// Denormalized count, maintained inside the question-create transaction.
	QuestionCount int       `gorm:"default:0" json:"question_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// QuestionTag links a question to one of its tags.
type QuestionTag struct {
	ID         int `gorm:"primaryKey" json:"id"`
	QuestionID int `gorm:"not null;uniqueIndex:idx_question_tag" json:"question_id"`
	TagID      int `gorm:"not null;uniqueIndex:idx_question_tag" json:"tag_id"`
}
