package store

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/emilythestrangee/devoverflow/backend/internal/models"
)

// CreateAnswer inserts the answer and, when the answerer is not the
// question's author, a notification for the question author, both in
// one transaction.
func (s *Store) CreateAnswer(answer *models.Answer) (*models.Answer, error) {
	if strings.TrimSpace(answer.Content) == "" {
		return nil, fmt.Errorf("%w: content is required", ErrValidation)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var question models.Question
		if err := tx.First(&question, answer.QuestionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: question %d", ErrNotFound, answer.QuestionID)
			}
			return err
		}

		if err := tx.Create(answer).Error; err != nil {
			return err
		}

		if err := addXP(tx, answer.AuthorID, xpProvideAnswer); err != nil {
			return err
		}

		if err := emitAnswerCreated(tx, AnswerCreatedEvent{
			QuestionAuthorID: question.AuthorID,
			Answer:           *answer,
		}); err != nil {
			return err
		}

		return tx.Preload("Author").First(answer, answer.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return answer, nil
}

// AnswersForQuestion returns a question's answers, best-voted first and
// most recent first within equal vote counts.
func (s *Store) AnswersForQuestion(questionID int) ([]models.Answer, error) {
	var answers []models.Answer
	err := s.db.Preload("Author").
		Where("question_id = ?", questionID).
		Order("votes desc").
		Order("created_at desc").
		Find(&answers).Error
	if err != nil {
		return nil, err
	}
	if answers == nil {
		answers = []models.Answer{}
	}
	return answers, nil
}
