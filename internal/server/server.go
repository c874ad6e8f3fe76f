package server

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/emilythestrangee/devoverflow/backend/internal/database"
	"github.com/emilythestrangee/devoverflow/backend/internal/handlers"
	"github.com/emilythestrangee/devoverflow/backend/internal/middleware"
)

type Server struct {
	db      database.Service
	handler *handlers.Handler
}

// NewServer creates and configures a new server
func NewServer() *http.Server {
	// Initialize database
	db := database.New()

	// Create unified handler
	handler := handlers.NewHandler(db)

	// Create server instance
	newServer := &Server{
		db:      db,
		handler: handler,
	}

	// Configure Gin router
	router := newServer.RegisterRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080" // local dev fallback
	}

	// Create HTTP server
	server := &http.Server{
		Addr:         "0.0.0.0:" + port,
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Printf("🚀 Server starting on port %s\n", port)
	fmt.Println("📝 Press Ctrl+C to stop the server")

	return server
}

// RegisterRoutes sets up all application routes
func (s *Server) RegisterRoutes() *gin.Engine {
	r := gin.Default()

	r.Use(middleware.RequestID())

	// CORS configuration
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.db.Health())
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		api.POST("/register", s.handler.Auth.Register)
		api.POST("/login", s.handler.Auth.Login)

		// Question routes (public reads)
		api.GET("/questions", s.handler.Question.GetQuestions)
		api.GET("/questions/:id", s.handler.Question.GetQuestion)
		api.GET("/questions/:id/answers", s.handler.Answer.GetAnswers)

		// Tag routes (public reads)
		api.GET("/tags", s.handler.Tag.GetTags)
		api.GET("/tags/popular", s.handler.Tag.GetPopularTags)
		api.GET("/tags/search", s.handler.Tag.SearchTags)

		// User routes (public reads)
		api.GET("/users", s.handler.User.GetUsers)
		api.GET("/users/:id", s.handler.User.GetUserProfile)

		// Stats route
		api.GET("/stats", s.handler.Question.GetStats)

		// Protected routes (authentication required)
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			// Auth protected routes
			protected.GET("/me", s.handler.Auth.GetMe)

			// Question protected routes
			protected.POST("/questions", s.handler.Question.CreateQuestion)
			protected.POST("/questions/:id/accept-answer", s.handler.Question.AcceptAnswer)
			protected.POST("/questions/:id/answers", s.handler.Answer.CreateAnswer)

			// Vote protected routes
			protected.POST("/votes", s.handler.Vote.CastVote)
			protected.GET("/votes/:targetType/:targetId", s.handler.Vote.GetUserVote)

			// Notification protected routes
			protected.GET("/notifications", s.handler.Notification.GetNotifications)
			protected.GET("/notifications/unread-count", s.handler.Notification.GetUnreadCount)
			protected.PATCH("/notifications/read-all", s.handler.Notification.MarkAllRead)
			protected.PATCH("/notifications/:id/read", s.handler.Notification.MarkRead)

			// Gamification protected routes
			protected.GET("/gamification/stats", s.handler.User.GetUserStats)
			protected.GET("/gamification/badges", s.handler.User.GetUserBadges)
			protected.GET("/gamification/pathways", s.handler.User.GetPathways)

			// AI assistant protected routes
			protected.POST("/ai/assist", s.handler.AI.Assist)
			protected.POST("/ai/question-suggestions", s.handler.AI.QuestionSuggestions)
		}
	}

	return r
}
