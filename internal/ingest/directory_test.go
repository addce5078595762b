package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/edtech-ng/question-bank/constants"
	"github.com/edtech-ng/question-bank/internal/core"
	"github.com/edtech-ng/question-bank/internal/entity"
	"github.com/edtech-ng/question-bank/internal/subject"
)

type memRepo struct {
	rows map[string]*entity.Question
}

func (m *memRepo) Upsert(_ context.Context, _ constants.Subject, q *entity.ExtractedQuestion) (*entity.Question, error) {
	row := &entity.Question{ID: uuid.New(), QuestionNumber: q.QuestionNumber}
	m.rows[q.QuestionNumber] = row
	return row, nil
}

func (m *memRepo) ListBySubject(context.Context, constants.Subject) ([]*entity.Question, error) {
	return nil, nil
}

func (m *memRepo) CountBySubject(context.Context, constants.Subject) (int, error) {
	return len(m.rows), nil
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

const bankDoc = `1. What is the capital city of France?
A) London B) Paris C) Rome D) Berlin
Answer: B`

func TestIngestDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bank1.txt", bankDoc)
	writeFile(t, dir, "bank2.txt", bankDoc)
	writeFile(t, dir, "notes.md", "not a question bank")
	writeFile(t, dir, ".hidden.txt", bankDoc)

	repo := &memRepo{rows: make(map[string]*entity.Question)}
	proc := core.NewProcessor(nil, subject.GeneralKnowledgeConfig(), repo)
	walker := NewWalker(proc, nil)

	results, stats, err := walker.IngestDirectory(context.Background(), dir, nil, true)
	if err != nil {
		t.Fatalf("IngestDirectory: %v", err)
	}

	if stats.Matched != 2 {
		t.Errorf("matched = %d, want 2 (txt only, hidden skipped)", stats.Matched)
	}
	if stats.Succeeded != 2 {
		t.Errorf("succeeded = %d, want 2", stats.Succeeded)
	}
	if stats.Failed != 0 {
		t.Errorf("failed = %d, want 0", stats.Failed)
	}
	if stats.Accepted != 2 {
		t.Errorf("accepted = %d, want 2", stats.Accepted)
	}
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}
	for _, r := range results {
		if r.Err != "" {
			t.Errorf("%s: %s", r.Path, r.Err)
		}
		if r.Report == nil || r.Report.Accepted != 1 {
			t.Errorf("%s: report = %+v", r.Path, r.Report)
		}
	}
}

func TestIngestDirectoryCustomExtensions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bank.text", bankDoc)
	writeFile(t, dir, "bank.txt", bankDoc)

	repo := &memRepo{rows: make(map[string]*entity.Question)}
	proc := core.NewProcessor(nil, subject.GeneralKnowledgeConfig(), repo)
	walker := NewWalker(proc, nil)

	_, stats, err := walker.IngestDirectory(context.Background(), dir, []string{".text"}, true)
	if err != nil {
		t.Fatalf("IngestDirectory: %v", err)
	}
	if stats.Matched != 1 {
		t.Errorf("matched = %d, want 1", stats.Matched)
	}
}

func TestIngestDirectoryEmptyRoot(t *testing.T) {
	walker := NewWalker(nil, nil)
	if _, _, err := walker.IngestDirectory(context.Background(), "  ", nil, true); err == nil {
		t.Fatal("expected error for empty root")
	}
}

func TestIngestDirectoryMissingRoot(t *testing.T) {
	walker := NewWalker(nil, nil)
	results, stats, err := walker.IngestDirectory(context.Background(), "/no/such/dir", nil, true)
	// WalkDir reports the root error through the callback; the walk itself
	// completes with the failure recorded per entry.
	if err != nil {
		t.Fatalf("IngestDirectory: %v", err)
	}
	if stats.Failed != 1 || len(results) != 1 || results[0].Err == "" {
		t.Errorf("stats = %+v, results = %+v", stats, results)
	}
}
