package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/edtech-ng/question-bank/constants"
	"github.com/edtech-ng/question-bank/internal/entity"
)

type stubRepo struct {
	questions []*entity.Question
}

func (s *stubRepo) Upsert(context.Context, constants.Subject, *entity.ExtractedQuestion) (*entity.Question, error) {
	panic("not used")
}

func (s *stubRepo) ListBySubject(context.Context, constants.Subject) ([]*entity.Question, error) {
	return s.questions, nil
}

func (s *stubRepo) CountBySubject(context.Context, constants.Subject) (int, error) {
	return len(s.questions), nil
}

func TestExportQuestionsXLSX(t *testing.T) {
	difficulty := "Hard"
	repo := &stubRepo{questions: []*entity.Question{
		{
			ID:             uuid.New(),
			QuestionNumber: "GK_001",
			QuestionText:   "Which planet is known as the Red Planet?",
			OptionA:        "Venus",
			OptionB:        "Mars",
			OptionC:        "Jupiter",
			OptionD:        "Saturn",
			CorrectAnswer:  "B",
			QuestionType:   "Science",
			Difficulty:     &difficulty,
			UpdatedAt:      time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			ID:             uuid.New(),
			QuestionNumber: "GK_002",
			QuestionText:   "Which ocean is the largest on Earth?",
			OptionA:        "Atlantic",
			OptionB:        "Indian",
			OptionC:        "Pacific",
			OptionD:        "Arctic",
			CorrectAnswer:  "C",
			QuestionType:   "World Geography",
			UpdatedAt:      time.Date(2026, 8, 2, 12, 0, 0, 0, time.UTC),
		},
	}}

	svc := NewService(repo, nil)
	data, err := svc.ExportQuestionsXLSX(context.Background(), constants.GeneralKnowledge)
	if err != nil {
		t.Fatalf("ExportQuestionsXLSX: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer func() {
		_ = f.Close()
	}()

	cell := func(ref string) string {
		t.Helper()
		v, err := f.GetCellValue("Questions", ref)
		if err != nil {
			t.Fatalf("cell %s: %v", ref, err)
		}
		return v
	}

	if got := cell("A1"); got != "Question Number" {
		t.Errorf("header A1 = %q", got)
	}
	if got := cell("A2"); got != "GK_001" {
		t.Errorf("A2 = %q", got)
	}
	if got := cell("G2"); got != "B" {
		t.Errorf("G2 = %q, want correct answer", got)
	}
	if got := cell("I2"); got != "Hard" {
		t.Errorf("I2 = %q, want difficulty", got)
	}
	if got := cell("I3"); got != "" {
		t.Errorf("I3 = %q, want empty difficulty", got)
	}
	if got := cell("B3"); got != "Which ocean is the largest on Earth?" {
		t.Errorf("B3 = %q", got)
	}

	rows, err := f.GetRows("Questions")
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 3 {
		t.Errorf("row count = %d, want header + 2", len(rows))
	}
}

func TestExportQuestionsXLSXEmptyBank(t *testing.T) {
	svc := NewService(&stubRepo{}, nil)
	data, err := svc.ExportQuestionsXLSX(context.Background(), constants.English)
	if err != nil {
		t.Fatalf("ExportQuestionsXLSX: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer func() {
		_ = f.Close()
	}()

	rows, err := f.GetRows("Questions")
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("row count = %d, want header only", len(rows))
	}
}
