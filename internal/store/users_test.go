package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emilythestrangee/devoverflow/backend/internal/models"
	"github.com/emilythestrangee/devoverflow/backend/internal/testutil"
)

func TestXPAwards(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db)

	author := testutil.CreateTestUser(t, db, "xp_author")
	answerer := testutil.CreateTestUser(t, db, "xp_answerer")

	question, err := s.CreateQuestion(&models.Question{
		Title: "XP", Content: "c", AuthorID: author.ID,
	}, []string{"go"})
	require.NoError(t, err)

	var gotAuthor models.User
	require.NoError(t, db.First(&gotAuthor, author.ID).Error)
	assert.Equal(t, xpAskQuestion, gotAuthor.XP)
	assert.Equal(t, 1, gotAuthor.Streak)
	require.NotNil(t, gotAuthor.LastActivityDate)

	answer, err := s.CreateAnswer(&models.Answer{
		Content: "a", QuestionID: question.ID, AuthorID: answerer.ID,
	})
	require.NoError(t, err)

	require.NoError(t, s.AcceptAnswer(question.ID, answer.ID, author.ID))

	var gotAnswerer models.User
	require.NoError(t, db.First(&gotAnswerer, answerer.ID).Error)
	assert.Equal(t, xpProvideAnswer+xpAnswerAccepted, gotAnswerer.XP)
	assert.Equal(t, 1, gotAnswerer.Level)
}

func TestAddXPLevelCurve(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db)

	user := testutil.CreateTestUser(t, db, "lvl_user")

	// 400 xp puts the user at level 3: floor(sqrt(400/100)) + 1
	require.NoError(t, s.AddXP(user.ID, 400))

	var got models.User
	require.NoError(t, db.First(&got, user.ID).Error)
	assert.Equal(t, 400, got.XP)
	assert.Equal(t, 3, got.Level)
}

func TestStatsForUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db)

	author := testutil.CreateTestUser(t, db, "st_author")
	answerer := testutil.CreateTestUser(t, db, "st_answerer")
	voter := testutil.CreateTestUser(t, db, "st_voter")

	question, err := s.CreateQuestion(&models.Question{
		Title: "Stats", Content: "c", AuthorID: author.ID,
	}, []string{"go"})
	require.NoError(t, err)

	answer, err := s.CreateAnswer(&models.Answer{
		Content: "a", QuestionID: question.ID, AuthorID: answerer.ID,
	})
	require.NoError(t, err)
	require.NoError(t, s.AcceptAnswer(question.ID, answer.ID, author.ID))

	_, err = s.CastVote(voter.ID, models.TargetAnswer, answer.ID, models.VoteUp)
	require.NoError(t, err)

	stats, err := s.StatsForUser(answerer.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.QuestionsAsked)
	assert.Equal(t, 1, stats.AnswersProvided)
	assert.Equal(t, 1, stats.AcceptedAnswers)
	assert.Equal(t, 1, stats.VotesReceived)
	assert.Equal(t, xpProvideAnswer+xpAnswerAccepted, stats.XP)

	_, err = s.StatsForUser(99999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSiteStats(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := New(db)

	author := testutil.CreateTestUser(t, db, "ss_author")
	answerer := testutil.CreateTestUser(t, db, "ss_answerer")

	question, err := s.CreateQuestion(&models.Question{
		Title: "Totals", Content: "c", AuthorID: author.ID,
	}, []string{"go"})
	require.NoError(t, err)
	_, err = s.CreateAnswer(&models.Answer{
		Content: "a", QuestionID: question.ID, AuthorID: answerer.ID,
	})
	require.NoError(t, err)

	stats, err := s.SiteStats()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalQuestions)
	assert.Equal(t, 1, stats.TotalAnswers)
	assert.Equal(t, 2, stats.TotalUsers)
}

func TestNormalizeTagNames(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{"mixed case and spaces", []string{"Rust", " ASYNC "}, []string{"rust", "async"}},
		{"duplicates collapse", []string{"go", "Go", "GO"}, []string{"go"}},
		{"empties dropped", []string{"", "  ", "go"}, []string{"go"}},
		{"order preserved", []string{"b", "a", "b"}, []string{"b", "a"}},
		{"nil input", nil, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTagNames(tt.input))
		})
	}
}
