package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/example/vocabtrainer/internal/auth"
	"github.com/example/vocabtrainer/internal/database"
	"github.com/example/vocabtrainer/internal/excel"
	"github.com/example/vocabtrainer/pkg/models"
)

type vocabRequest struct {
	Word        string   `json:"word" binding:"required,max=200"`
	Translation string   `json:"translation" binding:"required,max=200"`
	Synonyms    []string `json:"synonyms" binding:"max=20,dive,max=200"`
	Learned     bool     `json:"learned"`
	Mastered    bool     `json:"mastered"`
}

func (s *Server) handleListVocab(c *gin.Context) {
	userID := auth.UserID(c)

	var (
		entries []models.VocabEntry
		err     error
	)
	if query := c.Query("q"); query != "" {
		entries, err = s.vocab.Search(userID, query)
	} else {
		entries, err = s.vocab.GetByUser(userID)
	}
	if err != nil {
		s.fail(c, "failed to list vocab", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

func (s *Server) handleCreateVocab(c *gin.Context) {
	var req vocabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry := &models.VocabEntry{
		UserID:      auth.UserID(c),
		Word:        req.Word,
		Translation: req.Translation,
		Synonyms:    req.Synonyms,
		Learned:     req.Learned,
		Mastered:    req.Mastered,
	}
	if err := s.vocab.Create(entry); err != nil {
		if errors.Is(err, database.ErrWordExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "word already exists"})
			return
		}
		s.fail(c, "failed to create vocab entry", err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (s *Server) handleGetVocab(c *gin.Context) {
	entry, ok := s.ownedEntry(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (s *Server) handleUpdateVocab(c *gin.Context) {
	entry, ok := s.ownedEntry(c)
	if !ok {
		return
	}

	var req vocabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry.Word = req.Word
	entry.Translation = req.Translation
	entry.Synonyms = req.Synonyms
	entry.Learned = req.Learned
	entry.Mastered = req.Mastered

	if err := s.vocab.Update(entry); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
			return
		}
		s.fail(c, "failed to update vocab entry", err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

func (s *Server) handleDeleteVocab(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := s.vocab.Delete(id, auth.UserID(c)); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
			return
		}
		s.fail(c, "failed to delete vocab entry", err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) handleImportVocab(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file upload"})
		return
	}
	defer file.Close()

	cfg := excel.DefaultImportConfig()
	if sheet := c.PostForm("sheet"); sheet != "" {
		cfg.SheetName = sheet
	}

	result, err := excel.ImportWords(auth.UserID(c), header.Filename, file, cfg)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// ownedEntry loads the :id entry and enforces ownership, answering 404 for
// both a missing row and another user's row
func (s *Server) ownedEntry(c *gin.Context) (*models.VocabEntry, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return nil, false
	}

	entry, err := s.vocab.GetByID(id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
			return nil, false
		}
		s.fail(c, "failed to get vocab entry", err)
		return nil, false
	}
	if entry.UserID != auth.UserID(c) {
		c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
		return nil, false
	}
	return entry, true
}
