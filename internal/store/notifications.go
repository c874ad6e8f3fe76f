package store

import (
	"fmt"

	"github.com/emilythestrangee/devoverflow/backend/internal/models"
)

// NotificationsForUser returns a user's notifications newest-first with
// the referenced question, answer and triggering user joined in.
func (s *Store) NotificationsForUser(userID, limit int) ([]models.Notification, error) {
	if limit <= 0 {
		limit = 20
	}

	var notifications []models.Notification
	err := s.db.
		Preload("Question").
		Preload("Answer").
		Preload("TriggeredBy").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(limit).
		Find(&notifications).Error
	if err != nil {
		return nil, err
	}
	if notifications == nil {
		notifications = []models.Notification{}
	}
	return notifications, nil
}

func (s *Store) UnreadNotificationCount(userID int) (int, error) {
	var count int64
	err := s.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return int(count), err
}

// MarkNotificationRead flips isRead for a notification the user owns.
// A notification belonging to someone else reads as NotFound.
func (s *Store) MarkNotificationRead(id, userID int) error {
	result := s.db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: notification %d", ErrNotFound, id)
	}
	return nil
}

func (s *Store) MarkAllNotificationsRead(userID int) error {
	return s.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
}
