package importer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"quizzer/internal/bank"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

var ErrUnsupportedType error = errors.New("unsupported file type")
var ErrParseFailure error = errors.New("malformed workbook")

const (
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	mimeXLS  = "application/vnd.ms-excel"

	questionColumn      = "question"
	correctAnswerColumn = "correct_answer"
)

// incorrectAnswerColumns are positional: column N fills slot N of the
// incorrect answers sequence.
var incorrectAnswerColumns = []string{
	"incorrect_answers__001",
	"incorrect_answers__002",
	"incorrect_answers__003",
}

// Upload is one admin spreadsheet submission.
type Upload struct {
	Filename    string
	ContentType string
	Data        io.Reader
}

// SpreadsheetImporter turns an uploaded workbook into the published question
// bank the quiz front-end reads.
type SpreadsheetImporter struct {
	logs       *zap.SugaredLogger
	uploadsDir string
	bankPath   string
}

func NewSpreadsheetImporter(logger *zap.SugaredLogger, uploadsDir, bankPath string) *SpreadsheetImporter {
	return &SpreadsheetImporter{
		logs:       logger,
		uploadsDir: uploadsDir,
		bankPath:   bankPath,
	}
}

// Import validates the upload, keeps the raw file under a generated storage
// key, parses the first sheet into questions and replaces the published
// question bank wholesale. It returns the number of imported questions.
func (i *SpreadsheetImporter) Import(ctx context.Context, upload Upload) (int, error) {
	if upload.ContentType != mimeXLSX && upload.ContentType != mimeXLS {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedType, upload.ContentType)
	}

	data, err := io.ReadAll(upload.Data)
	if err != nil {
		return 0, fmt.Errorf("read upload: %w", err)
	}

	storageKey, err := i.storeUpload(upload.Filename, data)
	if err != nil {
		return 0, fmt.Errorf("store upload: %w", err)
	}

	i.logs.Infow("upload stored",
		"filename", upload.Filename,
		"storage_key", storageKey,
		"size", len(data))

	questions, err := i.parseWorkbook(data)
	if err != nil {
		return 0, err
	}

	if err = bank.Publish(i.bankPath, questions); err != nil {
		return 0, fmt.Errorf("publish question bank: %w", err)
	}

	i.logs.Infow("question bank published",
		"path", i.bankPath,
		"count", len(questions))

	return len(questions), nil
}

// storeUpload writes the raw workbook under a UUID key, keeping only the
// original extension. Client supplied names never touch the filesystem.
func (i *SpreadsheetImporter) storeUpload(filename string, data []byte) (string, error) {
	if err := os.MkdirAll(i.uploadsDir, 0o755); err != nil {
		return "", fmt.Errorf("create uploads dir: %w", err)
	}

	key := uuid.NewString() + filepath.Ext(filepath.Base(filename))
	if err := os.WriteFile(filepath.Join(i.uploadsDir, key), data, 0o644); err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}

	return key, nil
}

func (i *SpreadsheetImporter) parseWorkbook(data []byte) ([]bank.Question, error) {
	workbook, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrParseFailure, err)
	}
	defer workbook.Close()

	sheet := workbook.GetSheetName(0)
	rows, err := workbook.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: read sheet %q: %s", ErrParseFailure, sheet, err)
	}

	if len(rows) == 0 {
		return []bank.Question{}, nil
	}

	headers := rows[0]
	questions := make([]bank.Question, 0, len(rows)-1)

	for _, row := range rows[1:] {
		if emptyRow(row) {
			continue
		}

		record := make(map[string]string, len(headers))
		for col, header := range headers {
			if col < len(row) {
				record[header] = row[col]
			}
		}

		incorrect := make([]string, len(incorrectAnswerColumns))
		for pos, column := range incorrectAnswerColumns {
			incorrect[pos] = record[column]
		}

		// rows missing expected columns still produce a question with
		// empty fields, matching the permissive import contract
		questions = append(questions, bank.Question{
			Question:         record[questionColumn],
			CorrectAnswer:    record[correctAnswerColumn],
			IncorrectAnswers: incorrect,
		})
	}

	return questions, nil
}

func emptyRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
