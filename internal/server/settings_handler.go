package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/example/vocabtrainer/internal/auth"
)

type settingsRequest struct {
	DefaultDirection string `json:"default_direction" binding:"required,direction"`
	RemindersEnabled bool   `json:"reminders_enabled"`
	ReminderHour     int    `json:"reminder_hour" binding:"min=0,max=23"`
	TelegramChatID   int64  `json:"telegram_chat_id"`
}

func (s *Server) handleGetSettings(c *gin.Context) {
	settings, err := s.settings.Get(auth.UserID(c))
	if err != nil {
		s.fail(c, "failed to get settings", err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (s *Server) handleUpdateSettings(c *gin.Context) {
	var req settingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings, err := s.settings.Get(auth.UserID(c))
	if err != nil {
		s.fail(c, "failed to get settings", err)
		return
	}

	settings.DefaultDirection = req.DefaultDirection
	settings.RemindersEnabled = req.RemindersEnabled
	settings.ReminderHour = req.ReminderHour
	settings.TelegramChatID = req.TelegramChatID

	if err := s.settings.Update(settings); err != nil {
		s.fail(c, "failed to update settings", err)
		return
	}

	c.JSON(http.StatusOK, settings)
}
