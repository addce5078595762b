package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/edtech-ng/question-bank/constants"
	"github.com/edtech-ng/question-bank/internal/repository"
)

// Service is a tiny façade over the question repository that produces XLSX
// bytes for a subject's persisted bank.
type Service struct {
	repo   repository.QuestionRepository
	logger *slog.Logger
}

func NewService(repo repository.QuestionRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// ExportQuestionsXLSX returns an XLSX workbook (as bytes) holding every
// persisted question for the subject, one row per question.
func (s *Service) ExportQuestionsXLSX(ctx context.Context, sub constants.Subject) ([]byte, error) {
	start := time.Now()

	questions, err := s.repo.ListBySubject(ctx, sub)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Questions"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Question Number",
		"Question",
		"Option A",
		"Option B",
		"Option C",
		"Option D",
		"Correct Answer",
		"Question Type",
		"Difficulty",
		"Updated At",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, q := range questions {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		difficulty := ""
		if q.Difficulty != nil {
			difficulty = *q.Difficulty
		}

		write(1, q.QuestionNumber)
		write(2, q.QuestionText)
		write(3, q.OptionA)
		write(4, q.OptionB)
		write(5, q.OptionC)
		write(6, q.OptionD)
		write(7, q.CorrectAnswer)
		write(8, q.QuestionType)
		write(9, difficulty)
		write(10, q.UpdatedAt.UTC().Format(time.RFC3339))

		row++
	}

	// Widen the text-heavy columns
	_ = f.SetColWidth(sheet, "A", "A", 16)
	_ = f.SetColWidth(sheet, "B", "B", 60)
	_ = f.SetColWidth(sheet, "C", "F", 28)
	_ = f.SetColWidth(sheet, "G", "I", 14)
	_ = f.SetColWidth(sheet, "J", "J", 22)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"subject", sub,
		"rows", len(questions),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
