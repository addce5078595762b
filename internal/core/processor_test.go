package core

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/edtech-ng/question-bank/constants"
	"github.com/edtech-ng/question-bank/internal/entity"
	"github.com/edtech-ng/question-bank/internal/subject"
)

// fakeRepo is an in-memory QuestionRepository keyed by question number,
// mirroring the store's natural-key upsert.
type fakeRepo struct {
	rows        map[string]*entity.Question
	failNumbers map[string]bool
	upserts     int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		rows:        make(map[string]*entity.Question),
		failNumbers: make(map[string]bool),
	}
}

func (f *fakeRepo) Upsert(_ context.Context, sub constants.Subject, q *entity.ExtractedQuestion) (*entity.Question, error) {
	f.upserts++
	if f.failNumbers[q.QuestionNumber] {
		return nil, errors.New("store unavailable")
	}
	now := time.Now()
	row, ok := f.rows[q.QuestionNumber]
	if !ok {
		row = &entity.Question{
			ID:             uuid.New(),
			QuestionNumber: q.QuestionNumber,
			Source:         sub.DefaultSource(),
			CreatedAt:      now,
		}
		f.rows[q.QuestionNumber] = row
	}
	row.QuestionText = q.QuestionText
	row.OptionA = q.OptionA
	row.OptionB = q.OptionB
	row.OptionC = q.OptionC
	row.OptionD = q.OptionD
	row.CorrectAnswer = q.CorrectAnswer
	row.QuestionType = q.QuestionType
	row.UpdatedAt = now
	return row, nil
}

func (f *fakeRepo) ListBySubject(context.Context, constants.Subject) ([]*entity.Question, error) {
	out := make([]*entity.Question, 0, len(f.rows))
	for _, row := range f.rows {
		out = append(out, row)
	}
	return out, nil
}

func (f *fakeRepo) CountBySubject(context.Context, constants.Subject) (int, error) {
	return len(f.rows), nil
}

const gkDocument = `GENERAL KNOWLEDGE PRACTICE QUESTIONS

1. What is the capital city of France?
A) London B) Paris C) Rome D) Berlin
Answer: B

2. Which ocean is the largest on Earth?
A) Atlantic B) Indian C) Pacific D) Arctic
Answer: C

3. What is two plus two equal to?
A) 3 B) 4 C) 4 D) 5
Answer: B

4. Who wrote the words of the anthem?
A) Adamu B) Bello C) Chike D) Dare`

func TestProcessDocumentReportAndStore(t *testing.T) {
	repo := newFakeRepo()
	proc := NewProcessor(nil, subject.GeneralKnowledgeConfig(), repo)

	report, err := proc.ProcessDocument(context.Background(), strings.NewReader(gkDocument))
	if err != nil {
		t.Fatalf("ProcessDocument: %v", err)
	}

	if report.Attempted != 4 {
		t.Errorf("attempted = %d, want 4", report.Attempted)
	}
	if report.Accepted != 2 {
		t.Errorf("accepted = %d, want 2", report.Accepted)
	}
	if report.Rejected != 2 {
		t.Errorf("rejected = %d, want 2", report.Rejected)
	}
	if n := report.RejectionReasons[constants.RejectDuplicateOption]; n != 1 {
		t.Errorf("duplicate option rejections = %d, want 1", n)
	}
	if n := report.RejectionReasons[constants.RejectMissingAnswer]; n != 1 {
		t.Errorf("missing answer rejections = %d, want 1", n)
	}
	if report.StoreFailures != 0 {
		t.Errorf("store failures = %d, want 0", report.StoreFailures)
	}
	if got := report.Rate(); got != 0.5 {
		t.Errorf("rate = %v, want 0.5", got)
	}

	if len(repo.rows) != 2 {
		t.Fatalf("stored rows = %d, want 2", len(repo.rows))
	}
	row, ok := repo.rows["GK_001"]
	if !ok {
		t.Fatal("GK_001 not stored")
	}
	if row.CorrectAnswer != "B" {
		t.Errorf("GK_001 answer = %q, want B", row.CorrectAnswer)
	}
	if row.QuestionType == "" {
		t.Error("GK_001 question type not classified")
	}
}

func TestProcessDocumentIdempotent(t *testing.T) {
	repo := newFakeRepo()
	proc := NewProcessor(nil, subject.GeneralKnowledgeConfig(), repo)
	ctx := context.Background()

	if _, err := proc.ProcessDocument(ctx, strings.NewReader(gkDocument)); err != nil {
		t.Fatalf("first run: %v", err)
	}
	created := repo.rows["GK_001"].CreatedAt

	if _, err := proc.ProcessDocument(ctx, strings.NewReader(gkDocument)); err != nil {
		t.Fatalf("second run: %v", err)
	}

	if len(repo.rows) != 2 {
		t.Errorf("stored rows = %d after rerun, want 2", len(repo.rows))
	}
	if repo.upserts != 4 {
		t.Errorf("upserts = %d, want 4", repo.upserts)
	}
	if !repo.rows["GK_001"].CreatedAt.Equal(created) {
		t.Error("rerun changed created_at")
	}
}

func TestProcessDocumentStoreFailuresDoNotStopRun(t *testing.T) {
	repo := newFakeRepo()
	repo.failNumbers["GK_001"] = true
	proc := NewProcessor(nil, subject.GeneralKnowledgeConfig(), repo)

	report, err := proc.ProcessDocument(context.Background(), strings.NewReader(gkDocument))
	if err == nil {
		t.Fatal("expected store error")
	}
	if report == nil {
		t.Fatal("report missing despite store failure")
	}
	// Accepted reflects validation outcome, not store health.
	if report.Accepted != 2 {
		t.Errorf("accepted = %d, want 2", report.Accepted)
	}
	if report.StoreFailures != 1 {
		t.Errorf("store failures = %d, want 1", report.StoreFailures)
	}
	if _, ok := repo.rows["GK_002"]; !ok {
		t.Error("later question not stored after earlier failure")
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk gone")
}

func TestProcessDocumentReadFailure(t *testing.T) {
	proc := NewProcessor(nil, subject.GeneralKnowledgeConfig(), newFakeRepo())
	report, err := proc.ProcessDocument(context.Background(), failingReader{})
	if err == nil {
		t.Fatal("expected read error")
	}
	if report != nil {
		t.Errorf("report = %+v, want nil", report)
	}
}

func TestProcessFileMissingPath(t *testing.T) {
	proc := NewProcessor(nil, subject.EnglishConfig(), newFakeRepo())
	if _, err := proc.ProcessFile(context.Background(), "no/such/file.txt"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestProcessDocumentEmptyInput(t *testing.T) {
	repo := newFakeRepo()
	proc := NewProcessor(nil, subject.EnglishConfig(), repo)
	report, err := proc.ProcessDocument(context.Background(), strings.NewReader(""))
	if err != nil {
		t.Fatalf("ProcessDocument: %v", err)
	}
	if report.Attempted != 0 || report.Rejected != 0 {
		t.Errorf("report = %+v, want all zero", report)
	}
	if report.Rate() != 0 {
		t.Errorf("rate = %v, want 0", report.Rate())
	}
}
