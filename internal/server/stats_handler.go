package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/example/vocabtrainer/internal/auth"
)

func (s *Server) handleStats(c *gin.Context) {
	stats, err := s.stats.GetForUser(auth.UserID(c))
	if err != nil {
		s.fail(c, "failed to compute statistics", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (s *Server) handleListAttempts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	attempts, err := s.attempts.GetByUser(auth.UserID(c), limit)
	if err != nil {
		s.fail(c, "failed to list attempts", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"attempts": attempts})
}
