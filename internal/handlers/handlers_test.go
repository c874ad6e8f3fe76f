package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/emilythestrangee/devoverflow/backend/internal/models"
	"github.com/emilythestrangee/devoverflow/backend/internal/store"
	"github.com/emilythestrangee/devoverflow/backend/internal/testutil"
)

// fakeAuth stands in for the JWT middleware so handler tests can pick
// the acting user directly.
func fakeAuth(userID int) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

func newTestRouter(db *gorm.DB, userID int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	s := store.New(db)

	auth := NewAuthHandler(db)
	question := NewQuestionHandler(s)
	answer := NewAnswerHandler(s)
	vote := NewVoteHandler(s)

	r := gin.New()
	api := r.Group("/api")
	{
		api.POST("/register", auth.Register)
		api.POST("/login", auth.Login)
		api.GET("/questions", question.GetQuestions)
		api.GET("/questions/:id", question.GetQuestion)
		api.GET("/questions/:id/answers", answer.GetAnswers)
	}

	protected := r.Group("/api")
	protected.Use(fakeAuth(userID))
	{
		protected.POST("/questions", question.CreateQuestion)
		protected.POST("/questions/:id/accept-answer", question.AcceptAnswer)
		protected.POST("/questions/:id/answers", answer.CreateAnswer)
		protected.POST("/votes", vote.CastVote)
		protected.GET("/votes/:targetType/:targetId", vote.GetUserVote)
	}

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedQuestion(t *testing.T, db *gorm.DB, authorID int) models.Question {
	t.Helper()
	q := models.Question{
		Title:    "How do I test Gin handlers?",
		Content:  "Looking for the idiomatic way to test handlers.",
		AuthorID: authorID,
	}
	require.NoError(t, db.Create(&q).Error)
	return q
}

func TestRegisterAndLogin(t *testing.T) {
	db := testutil.SetupTestDB(t)
	r := newTestRouter(db, 0)

	w := doJSON(t, r, "POST", "/api/register", gin.H{
		"username": "newuser",
		"email":    "newuser@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var registered map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &registered))
	assert.NotEmpty(t, registered["token"])

	// Duplicate username is rejected
	w = doJSON(t, r, "POST", "/api/register", gin.H{
		"username": "newuser",
		"email":    "other@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Short password fails binding
	w = doJSON(t, r, "POST", "/api/register", gin.H{
		"username": "shortpw",
		"email":    "shortpw@example.com",
		"password": "abc",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, "POST", "/api/login", gin.H{
		"email":    "newuser@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var loggedIn map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &loggedIn))
	assert.NotEmpty(t, loggedIn["token"])

	w = doJSON(t, r, "POST", "/api/login", gin.H{
		"email":    "newuser@example.com",
		"password": "wrongpassword",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateQuestionEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)
	user := testutil.CreateTestUser(t, db, "asker")
	r := newTestRouter(db, user.ID)

	w := doJSON(t, r, "POST", "/api/questions", gin.H{
		"title":   "Why does my goroutine leak?",
		"content": "It never exits after the channel closes.",
		"tags":    []string{"Go", "concurrency"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.QuestionWithDetails
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, user.ID, created.AuthorID)
	assert.Len(t, created.Tags, 2)

	// More than five tags is rejected at the boundary
	w = doJSON(t, r, "POST", "/api/questions", gin.H{
		"title":   "Too many tags",
		"content": "content",
		"tags":    []string{"a", "b", "c", "d", "e", "f"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Tags that normalize away leave nothing
	w = doJSON(t, r, "POST", "/api/questions", gin.H{
		"title":   "No usable tags",
		"content": "content",
		"tags":    []string{"  ", ""},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetQuestionEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)
	user := testutil.CreateTestUser(t, db, "reader")
	q := seedQuestion(t, db, user.ID)
	r := newTestRouter(db, user.ID)

	w := doJSON(t, r, "GET", fmt.Sprintf("/api/questions/%d", q.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got models.QuestionWithDetails
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, q.ID, got.ID)
	assert.Equal(t, 1, got.Views)

	w = doJSON(t, r, "GET", "/api/questions/99999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, "GET", "/api/questions/notanumber", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCastVoteEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)
	author := testutil.CreateTestUser(t, db, "voteauthor")
	voter := testutil.CreateTestUser(t, db, "voter")
	q := seedQuestion(t, db, author.ID)
	r := newTestRouter(db, voter.ID)

	body := gin.H{
		"target_type": models.TargetQuestion,
		"target_id":   q.ID,
		"vote_type":   models.VoteUp,
	}

	w := doJSON(t, r, "POST", "/api/votes", body)
	require.Equal(t, http.StatusCreated, w.Code)

	var vote models.Vote
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &vote))
	assert.Equal(t, voter.ID, vote.UserID)
	assert.Equal(t, models.VoteUp, vote.VoteType)

	// Same vote again toggles it off
	w = doJSON(t, r, "POST", "/api/votes", body)
	require.Equal(t, http.StatusOK, w.Code)

	var removed map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &removed))
	assert.Equal(t, true, removed["removed"])

	// Invalid vote type fails binding
	w = doJSON(t, r, "POST", "/api/votes", gin.H{
		"target_type": models.TargetQuestion,
		"target_id":   q.ID,
		"vote_type":   "sideways",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetUserVoteEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)
	author := testutil.CreateTestUser(t, db, "uvauthor")
	voter := testutil.CreateTestUser(t, db, "uvvoter")
	q := seedQuestion(t, db, author.ID)
	r := newTestRouter(db, voter.ID)

	w := doJSON(t, r, "GET", fmt.Sprintf("/api/votes/question/%d", q.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())

	_, err := store.New(db).CastVote(voter.ID, models.TargetQuestion, q.ID, models.VoteDown)
	require.NoError(t, err)

	w = doJSON(t, r, "GET", fmt.Sprintf("/api/votes/question/%d", q.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var vote models.Vote
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &vote))
	assert.Equal(t, models.VoteDown, vote.VoteType)
}

func TestAcceptAnswerEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)
	author := testutil.CreateTestUser(t, db, "acceptauthor")
	answerer := testutil.CreateTestUser(t, db, "acceptanswerer")
	q := seedQuestion(t, db, author.ID)

	s := store.New(db)
	answer, err := s.CreateAnswer(&models.Answer{
		Content:    "Close the channel from the sender.",
		QuestionID: q.ID,
		AuthorID:   answerer.ID,
	})
	require.NoError(t, err)

	// The answerer is not the question author
	r := newTestRouter(db, answerer.ID)
	w := doJSON(t, r, "POST", fmt.Sprintf("/api/questions/%d/accept-answer", q.ID), gin.H{
		"answer_id": answer.ID,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	r = newTestRouter(db, author.ID)
	w = doJSON(t, r, "POST", fmt.Sprintf("/api/questions/%d/accept-answer", q.ID), gin.H{
		"answer_id": answer.ID,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Question
	require.NoError(t, db.First(&updated, q.ID).Error)
	require.NotNil(t, updated.AcceptedAnswerID)
	assert.Equal(t, answer.ID, *updated.AcceptedAnswerID)

	// Unknown answer for this question
	w = doJSON(t, r, "POST", fmt.Sprintf("/api/questions/%d/accept-answer", q.ID), gin.H{
		"answer_id": 99999,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateAnswerEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)
	author := testutil.CreateTestUser(t, db, "caauthor")
	answerer := testutil.CreateTestUser(t, db, "caanswerer")
	q := seedQuestion(t, db, author.ID)
	r := newTestRouter(db, answerer.ID)

	w := doJSON(t, r, "POST", fmt.Sprintf("/api/questions/%d/answers", q.ID), gin.H{
		"content": "Use httptest with a test router.",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Answer
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, answerer.ID, created.AuthorID)
	assert.Equal(t, "caanswerer", created.Author.Username)

	w = doJSON(t, r, "GET", fmt.Sprintf("/api/questions/%d/answers", q.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var answers []models.Answer
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &answers))
	assert.Len(t, answers, 1)

	// Missing question is a 404, not a silent insert
	w = doJSON(t, r, "POST", "/api/questions/99999/answers", gin.H{
		"content": "orphan",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
