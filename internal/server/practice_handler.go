package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/example/vocabtrainer/internal/auth"
	"github.com/example/vocabtrainer/internal/database"
	"github.com/example/vocabtrainer/internal/practice"
)

type checkRequest struct {
	EntryID   int64  `json:"entry_id" binding:"required"`
	Direction string `json:"direction" binding:"required,direction"`
	Answer    string `json:"answer" binding:"required"`
}

func (s *Server) handleNextPractice(c *gin.Context) {
	userID := auth.UserID(c)

	direction, err := s.requestedDirection(c, userID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	unlearnedOnly := c.Query("unlearned") == "true"

	question, err := s.practice.NextEntry(userID, direction, unlearnedOnly)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "nothing left to practice"})
			return
		}
		s.fail(c, "failed to pick practice entry", err)
		return
	}

	c.JSON(http.StatusOK, question)
}

func (s *Server) handleCheckPractice(c *gin.Context) {
	var req checkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Direction is validated by the binding tag.
	direction, _ := practice.ParseDirection(req.Direction)

	result, err := s.practice.CheckAnswer(auth.UserID(c), req.EntryID, direction, req.Answer)
	switch {
	case errors.Is(err, database.ErrNotFound), errors.Is(err, practice.ErrEntryNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
		return
	case errors.Is(err, practice.ErrEmptyAnswer):
		c.JSON(http.StatusBadRequest, gin.H{"error": "answer must not be blank"})
		return
	case errors.Is(err, practice.ErrNoCandidates):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "entry has no acceptable answers"})
		return
	case err != nil:
		s.fail(c, "failed to check answer", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// requestedDirection resolves the direction query parameter, falling back to
// the user's default when absent
func (s *Server) requestedDirection(c *gin.Context, userID int64) (practice.Direction, error) {
	if raw := c.Query("direction"); raw != "" {
		return practice.ParseDirection(raw)
	}

	settings, err := s.settings.Get(userID)
	if err != nil {
		return practice.WordToTranslation, nil
	}
	direction, err := practice.ParseDirection(settings.DefaultDirection)
	if err != nil {
		return practice.WordToTranslation, nil
	}
	return direction, nil
}
