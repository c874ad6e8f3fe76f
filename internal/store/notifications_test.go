package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emilythestrangee/devoverflow/backend/internal/models"
	"github.com/emilythestrangee/devoverflow/backend/internal/testutil"
)

// seedNotifications asks a question as author and answers it n times as
// answerer, producing n "answer" notifications for author.
func seedNotifications(t *testing.T, s *Store, authorID, answererID, n int) int {
	t.Helper()

	question, err := s.CreateQuestion(&models.Question{
		Title: "Seed", Content: "c", AuthorID: authorID,
	}, []string{"go"})
	require.NoError(t, err)

	for i := 0; i < n; i++ {
		_, err := s.CreateAnswer(&models.Answer{
			Content: "answer", QuestionID: question.ID, AuthorID: answererID,
		})
		require.NoError(t, err)
	}
	return question.ID
}

func TestNotificationsForUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db)

	author := testutil.CreateTestUser(t, db, "nl_author")
	answerer := testutil.CreateTestUser(t, db, "nl_answerer")

	seedNotifications(t, s, author.ID, answerer.ID, 3)

	notifications, err := s.NotificationsForUser(author.ID, 2)
	require.NoError(t, err)
	require.Len(t, notifications, 2)

	// Newest first, with joined details
	assert.True(t, !notifications[0].CreatedAt.Before(notifications[1].CreatedAt))
	require.NotNil(t, notifications[0].Question)
	require.NotNil(t, notifications[0].Answer)
	require.NotNil(t, notifications[0].TriggeredBy)
	assert.Equal(t, answerer.ID, notifications[0].TriggeredBy.ID)

	// The answerer has none
	theirs, err := s.NotificationsForUser(answerer.ID, 10)
	require.NoError(t, err)
	assert.Empty(t, theirs)
}

func TestUnreadCountAndMarkRead(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db)

	author := testutil.CreateTestUser(t, db, "mr_author")
	answerer := testutil.CreateTestUser(t, db, "mr_answerer")

	seedNotifications(t, s, author.ID, answerer.ID, 2)

	count, err := s.UnreadNotificationCount(author.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	var notifications []models.Notification
	require.NoError(t, db.Where("user_id = ?", author.ID).Find(&notifications).Error)
	require.NotEmpty(t, notifications)

	require.NoError(t, s.MarkNotificationRead(notifications[0].ID, author.ID))

	count, err = s.UnreadNotificationCount(author.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMarkReadScopedToOwner(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db)

	author := testutil.CreateTestUser(t, db, "sc_author")
	answerer := testutil.CreateTestUser(t, db, "sc_answerer")

	seedNotifications(t, s, author.ID, answerer.ID, 1)

	var notification models.Notification
	require.NoError(t, db.Where("user_id = ?", author.ID).First(&notification).Error)

	// Someone else cannot mark it read
	err := s.MarkNotificationRead(notification.ID, answerer.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	var got models.Notification
	require.NoError(t, db.First(&got, notification.ID).Error)
	assert.False(t, got.IsRead)
}

func TestMarkAllNotificationsRead(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db)

	author := testutil.CreateTestUser(t, db, "ma_author")
	answerer := testutil.CreateTestUser(t, db, "ma_answerer")

	seedNotifications(t, s, author.ID, answerer.ID, 3)

	require.NoError(t, s.MarkAllNotificationsRead(author.ID))

	count, err := s.UnreadNotificationCount(author.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}
