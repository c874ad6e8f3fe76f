package store

import (
	"errors"
	"fmt"
	"math"
	"time"

	"gorm.io/gorm"

	"github.com/emilythestrangee/devoverflow/backend/internal/models"
)

func (s *Store) User(id int) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", ErrNotFound, id)
		}
		return nil, err
	}
	return &user, nil
}

func (s *Store) Users() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("created_at desc").Find(&users).Error; err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

// SiteStats returns the sidebar totals.
func (s *Store) SiteStats() (*models.SiteStats, error) {
	var questions, answers, users int64
	if err := s.db.Model(&models.Question{}).Count(&questions).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Answer{}).Count(&answers).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.User{}).Count(&users).Error; err != nil {
		return nil, err
	}
	return &models.SiteStats{
		TotalQuestions: int(questions),
		TotalAnswers:   int(answers),
		TotalUsers:     int(users),
	}, nil
}

// StatsForUser assembles the gamification summary: stored xp/level/streak
// plus aggregates counted from the user's questions and answers.
func (s *Store) StatsForUser(userID int) (*models.UserStats, error) {
	user, err := s.User(userID)
	if err != nil {
		return nil, err
	}

	var questionsAsked, answersProvided, acceptedAnswers int64
	if err := s.db.Model(&models.Question{}).Where("author_id = ?", userID).Count(&questionsAsked).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Answer{}).Where("author_id = ?", userID).Count(&answersProvided).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Answer{}).Where("author_id = ? AND is_accepted = ?", userID, true).
		Count(&acceptedAnswers).Error; err != nil {
		return nil, err
	}

	var questionVotes, answerVotes int64
	if err := s.db.Model(&models.Question{}).Where("author_id = ?", userID).
		Select("COALESCE(SUM(votes), 0)").Scan(&questionVotes).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Answer{}).Where("author_id = ?", userID).
		Select("COALESCE(SUM(votes), 0)").Scan(&answerVotes).Error; err != nil {
		return nil, err
	}

	return &models.UserStats{
		XP:              user.XP,
		Level:           user.Level,
		Streak:          user.Streak,
		QuestionsAsked:  int(questionsAsked),
		AnswersProvided: int(answersProvided),
		VotesReceived:   int(questionVotes + answerVotes),
		AcceptedAnswers: int(acceptedAnswers),
	}, nil
}

// AddXP credits experience points to a user outside any enclosing
// transaction. Write paths use the unexported helper on their own tx.
func (s *Store) AddXP(userID, gain int) error {
	return addXP(s.db, userID, gain)
}

// addXP bumps xp with a server-side increment, then recomputes level and
// activity streak from the stored value. Level curve: floor(sqrt(xp/100))+1.
func addXP(tx *gorm.DB, userID, gain int) error {
	if err := tx.Model(&models.User{}).Where("id = ?", userID).
		UpdateColumn("xp", gorm.Expr("xp + ?", gain)).Error; err != nil {
		return err
	}

	var user models.User
	if err := tx.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: user %d", ErrNotFound, userID)
		}
		return err
	}

	now := time.Now().UTC()
	level := int(math.Sqrt(float64(user.XP)/100)) + 1
	streak := nextStreak(user.LastActivityDate, user.Streak, now)

	return tx.Model(&models.User{}).Where("id = ?", userID).
		UpdateColumns(map[string]interface{}{
			"level":              level,
			"streak":             streak,
			"last_activity_date": now,
		}).Error
}

func nextStreak(lastActivity *time.Time, current int, now time.Time) int {
	if lastActivity == nil {
		return 1
	}
	last := lastActivity.UTC().Truncate(24 * time.Hour)
	today := now.Truncate(24 * time.Hour)
	switch today.Sub(last) {
	case 0:
		if current == 0 {
			return 1
		}
		return current
	case 24 * time.Hour:
		return current + 1
	default:
		return 1
	}
}
