package models

import "time"

type User struct {
	ID       int    `gorm:"primaryKey" json:"id"`
	Username string `gorm:"unique;not null" json:"username"`
	Email    string `gorm:"unique;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Bio      string `json:"bio"`
	Avatar   string `json:"avatar"` // Stores avatar ID (1-6) or URL

	// Gamification fields
	XP               int        `gorm:"default:0" json:"xp"`
	Level            int        `gorm:"default:1" json:"level"`
	Streak           int        `gorm:"default:0" json:"streak"`
	LastActivityDate *time.Time `json:"last_activity_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Avatar   string `json:"avatar"` // Optional avatar selection
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token   string `json:"token"`
	User    User   `json:"user"`
	Message string `json:"message"`
}

// UserStats is the gamification summary for a single user.
type UserStats struct {
	XP              int `json:"xp"`
	Level           int `json:"level"`
	Streak          int `json:"streak"`
	QuestionsAsked  int `json:"questions_asked"`
	AnswersProvided int `json:"answers_provided"`
	VotesReceived   int `json:"votes_received"`
	AcceptedAnswers int `json:"accepted_answers"`
}

// SiteStats holds sidebar totals for the whole site.
type SiteStats struct {
	TotalQuestions int `json:"total_questions"`
	TotalAnswers   int `json:"total_answers"`
	TotalUsers     int `json:"total_users"`
}
