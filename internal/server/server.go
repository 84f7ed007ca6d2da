// Package server exposes the vocabulary trainer over HTTP.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/example/vocabtrainer/internal/auth"
	"github.com/example/vocabtrainer/internal/config"
	"github.com/example/vocabtrainer/internal/database"
	"github.com/example/vocabtrainer/internal/practice"
)

// Server holds the handlers and their collaborators
type Server struct {
	cfg      *config.Config
	logger   *slog.Logger
	users    *database.UserRepository
	vocab    *database.VocabRepository
	settings *database.SettingsRepository
	attempts *database.AttemptRepository
	stats    *database.StatisticsRepository
	practice *practice.Service
	tokens   *auth.TokenManager
}

// New creates a server with its repositories and services wired up
func New(cfg *config.Config, logger *slog.Logger) *Server {
	vocab := database.NewVocabRepository()
	attempts := database.NewAttemptRepository()

	return &Server{
		cfg:      cfg,
		logger:   logger,
		users:    database.NewUserRepository(),
		vocab:    vocab,
		settings: database.NewSettingsRepository(),
		attempts: attempts,
		stats:    database.NewStatisticsRepository(),
		practice: practice.New(vocab, attempts, logger),
		tokens:   auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL),
	}
}

// Router builds the gin engine with all routes registered
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	registerValidations()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(s.logger))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	api.POST("/register", s.handleRegister)
	api.POST("/login", s.handleLogin)

	authed := api.Group("", auth.Middleware(s.tokens))
	authed.GET("/vocab", s.handleListVocab)
	authed.POST("/vocab", s.handleCreateVocab)
	authed.GET("/vocab/:id", s.handleGetVocab)
	authed.PUT("/vocab/:id", s.handleUpdateVocab)
	authed.DELETE("/vocab/:id", s.handleDeleteVocab)
	authed.POST("/vocab/import", s.handleImportVocab)
	authed.GET("/practice/next", s.handleNextPractice)
	authed.POST("/practice/check", s.handleCheckPractice)
	authed.GET("/attempts", s.handleListAttempts)
	authed.GET("/stats", s.handleStats)
	authed.GET("/settings", s.handleGetSettings)
	authed.PUT("/settings", s.handleUpdateSettings)

	return router
}

// HTTPServer wraps the router in an http.Server with sane timeouts
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:              s.cfg.ListenAddr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       90 * time.Second,
	}
}

// registerValidations adds the custom "direction" rule used by binding tags
func registerValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("direction", func(fl validator.FieldLevel) bool {
		_, err := practice.ParseDirection(fl.Field().String())
		return err == nil
	})
}
