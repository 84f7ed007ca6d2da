// Package excel imports vocabulary entries in bulk from Excel or CSV files.
package excel

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/example/vocabtrainer/internal/database"
	"github.com/example/vocabtrainer/pkg/models"
)

// ImportConfig defines the import configuration
type ImportConfig struct {
	WordColumn        string // Column with the foreign word
	TranslationColumn string // Column with the primary translation
	SynonymsColumn    string // Column with ";"-separated synonyms
	SheetName         string // Name of the sheet to import (Excel only)
	StartRow          int    // The row to start importing from (1-based)
}

// DefaultImportConfig returns the default import configuration
func DefaultImportConfig() ImportConfig {
	return ImportConfig{
		WordColumn:        "A",
		TranslationColumn: "B",
		SynonymsColumn:    "C",
		SheetName:         "Sheet1",
		StartRow:          2, // Start from the second row (skip header)
	}
}

// ImportResult holds the result of an import operation
type ImportResult struct {
	TotalProcessed int      `json:"total_processed"`
	Created        int      `json:"created"`
	Updated        int      `json:"updated"`
	Skipped        int      `json:"skipped"`
	Errors         []string `json:"errors,omitempty"`
}

// ImportWords imports vocabulary entries for a user from an Excel or CSV
// stream, choosing the format by file extension
func ImportWords(userID int64, filename string, r io.Reader, config ImportConfig) (*ImportResult, error) {
	if strings.ToLower(filepath.Ext(filename)) == ".csv" {
		return importFromCSV(userID, r, config)
	}
	return importFromExcel(userID, r, config)
}

// importer carries the repository and resolved column indexes through one run
type importer struct {
	vocab *database.VocabRepository

	wordIdx        int
	translationIdx int
	synonymsIdx    int
}

// importFromExcel imports entries from an Excel stream
func importFromExcel(userID int64, r io.Reader, config ImportConfig) (*ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(config.SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", config.SheetName, err)
	}

	imp, err := newImporter(config)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{}
	for i, row := range rows {
		rowNum := i + 1
		if rowNum < config.StartRow {
			continue
		}
		imp.importRow(userID, rowNum, row, result)
	}
	return result, nil
}

// importFromCSV imports entries from a CSV stream
func importFromCSV(userID int64, r io.Reader, config ImportConfig) (*ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	imp, err := newImporter(config)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{}
	rowNum := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}
		rowNum++
		if rowNum < config.StartRow {
			continue
		}
		imp.importRow(userID, rowNum, row, result)
	}
	return result, nil
}

func newImporter(config ImportConfig) (*importer, error) {
	imp := &importer{vocab: database.NewVocabRepository()}
	for _, col := range []struct {
		name   string
		letter string
		out    *int
	}{
		{"word", config.WordColumn, &imp.wordIdx},
		{"translation", config.TranslationColumn, &imp.translationIdx},
		{"synonyms", config.SynonymsColumn, &imp.synonymsIdx},
	} {
		n, err := excelize.ColumnNameToNumber(col.letter)
		if err != nil {
			return nil, fmt.Errorf("invalid %s column %q: %w", col.name, col.letter, err)
		}
		*col.out = n - 1
	}
	return imp, nil
}

// importRow upserts a single row, collecting per-row errors instead of
// aborting the whole import
func (imp *importer) importRow(userID int64, rowNum int, row []string, result *ImportResult) {
	result.TotalProcessed++

	word := cell(row, imp.wordIdx)
	translation := cell(row, imp.translationIdx)
	if word == "" || translation == "" {
		result.Skipped++
		return
	}

	entry := &models.VocabEntry{
		UserID:      userID,
		Word:        word,
		Translation: translation,
		Synonyms:    splitSynonyms(cell(row, imp.synonymsIdx)),
	}

	created, err := imp.vocab.UpsertByWord(entry)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", rowNum, err))
		return
	}
	if created {
		result.Created++
	} else {
		result.Updated++
	}
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func splitSynonyms(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
