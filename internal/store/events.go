package store

import (
	"gorm.io/gorm"

	"github.com/emilythestrangee/devoverflow/backend/internal/models"
)

// Domain events raised by the write paths. Each is materialized as a
// notification row inside the same transaction as the triggering write,
// so a rollback also rolls back the notification. Self-notification is
// suppressed here, not at the call sites.

type AnswerCreatedEvent struct {
	QuestionAuthorID int
	Answer           models.Answer
}

type AnswerAcceptedEvent struct {
	QuestionAuthorID int
	Answer           models.Answer
}

func emitAnswerCreated(tx *gorm.DB, ev AnswerCreatedEvent) error {
	if ev.Answer.AuthorID == ev.QuestionAuthorID {
		return nil
	}

	notification := models.Notification{
		UserID:        ev.QuestionAuthorID,
		Type:          models.NotificationAnswer,
		Title:         "New Answer",
		Message:       "Someone answered your question!",
		QuestionID:    &ev.Answer.QuestionID,
		AnswerID:      &ev.Answer.ID,
		TriggeredByID: &ev.Answer.AuthorID,
	}
	return tx.Create(&notification).Error
}

func emitAnswerAccepted(tx *gorm.DB, ev AnswerAcceptedEvent) error {
	if ev.Answer.AuthorID == ev.QuestionAuthorID {
		return nil
	}

	notification := models.Notification{
		UserID:        ev.Answer.AuthorID,
		Type:          models.NotificationAccepted,
		Title:         "Answer Accepted",
		Message:       "Your answer has been accepted!",
		QuestionID:    &ev.Answer.QuestionID,
		AnswerID:      &ev.Answer.ID,
		TriggeredByID: &ev.QuestionAuthorID,
	}
	return tx.Create(&notification).Error
}
