package models

import "time"

type Answer struct {
	ID          int       `gorm:"primaryKey" json:"id"`
	Content     string    `gorm:"not null" json:"content"`
	QuestionID  int       `gorm:"not null;index" json:"question_id"`
	AuthorID    int       `gorm:"not null;index" json:"author_id"`
	Author      User      `gorm:"foreignKey:AuthorID" json:"author"`
	Votes       int       `gorm:"default:0" json:"votes"`
	IsAccepted  bool      `gorm:"default:false" json:"is_accepted"`
	IsAnonymous bool      `gorm:"default:false" json:"is_anonymous"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateAnswerRequest struct {
	Content     string `json:"content"`
	IsAnonymous bool   `json:"is_anonymous"`
}
