package models

import "time"

type Question struct {
	ID               int       `gorm:"primaryKey" json:"id"`
	Title            string    `gorm:"size:255;not null" json:"title"`
	Content          string    `gorm:"not null" json:"content"`
	AuthorID         int       `gorm:"not null;index" json:"author_id"`
	Author           User      `gorm:"foreignKey:AuthorID" json:"author"`
	Views            int       `gorm:"default:0" json:"views"`
	Votes            int       `gorm:"default:0" json:"votes"`
	AcceptedAnswerID *int      `json:"accepted_answer_id,omitempty"`
	IsAnonymous      bool      `gorm:"default:false" json:"is_anonymous"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type CreateQuestionRequest struct {
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Tags        []string `json:"tags"`
	IsAnonymous bool     `json:"is_anonymous"`
}

// QuestionWithDetails is the read-side aggregate: the question plus its
// author, tags, answer count and (when set) the accepted answer.
type QuestionWithDetails struct {
	Question
	Tags           []Tag   `json:"tags"`
	AnswerCount    int     `json:"answer_count"`
	AcceptedAnswer *Answer `json:"accepted_answer,omitempty"`
}
