// Package core wires the extraction stages into the per-document pipeline:
// normalize, detect blocks, extract fields, classify, validate, sink.
package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/edtech-ng/question-bank/internal/entity"
	"github.com/edtech-ng/question-bank/internal/extract"
	"github.com/edtech-ng/question-bank/internal/repository"
	"github.com/edtech-ng/question-bank/internal/subject"
	"github.com/edtech-ng/question-bank/internal/textnorm"
	"github.com/edtech-ng/question-bank/internal/validate"
)

// Processor runs the pipeline for one subject. It keeps no per-document
// state; documents may be processed concurrently with one Processor each
// as long as the store serializes writes.
type Processor struct {
	logger *slog.Logger
	cfg    *subject.Config
	repo   repository.QuestionRepository
}

func NewProcessor(logger *slog.Logger, cfg *subject.Config, repo repository.QuestionRepository) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{logger: logger, cfg: cfg, repo: repo}
}

// ProcessDocument runs the pipeline over one document's text stream and
// returns the run report. A read failure aborts with no report. Blocks
// failing validation are counted and skipped; store write failures are
// per-record, collected into the returned error without stopping the
// remaining blocks, and tallied on the report. Accepted counts blocks that
// passed validation, so the extraction rate reflects parsing quality, not
// store health.
func (p *Processor) ProcessDocument(ctx context.Context, r io.Reader) (*entity.ExtractionReport, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read source text: %w", err)
	}

	lines := textnorm.Normalize(string(raw))
	scanner := extract.NewBlockScanner(lines, p.cfg)
	report := entity.NewExtractionReport()
	var storeErrs []error

	for {
		block, ok := scanner.Next()
		if !ok {
			break
		}
		report.Attempted++

		cand := extract.Fields(block, p.cfg)
		q, reason, accepted := validate.Validate(cand, p.cfg.MinStemLen)
		if !accepted {
			report.RecordRejection(reason)
			p.logger.Debug("processor.block.rejected",
				"subject", p.cfg.Subject,
				"block", block.Ordinal,
				"question_number", cand.Number,
				"reason", reason,
			)
			continue
		}

		q.QuestionType = p.cfg.Classifier.Classify(q.QuestionText)
		report.Accepted++

		row, err := p.repo.Upsert(ctx, p.cfg.Subject, q)
		if err != nil {
			report.StoreFailures++
			storeErrs = append(storeErrs, fmt.Errorf("question %s: %w", q.QuestionNumber, err))
			continue
		}
		p.logger.Debug("processor.block.accepted",
			"subject", p.cfg.Subject,
			"question_number", q.QuestionNumber,
			"question_type", q.QuestionType,
			"id", row.ID,
		)
	}

	p.logger.Info("processor.document.done",
		"subject", p.cfg.Subject,
		"attempted", report.Attempted,
		"accepted", report.Accepted,
		"rejected", report.Rejected,
		"store_failures", report.StoreFailures,
		"extraction_rate", fmt.Sprintf("%.2f", report.Rate()),
	)
	return report, errors.Join(storeErrs...)
}

// ProcessFile opens path and runs ProcessDocument on its contents.
func (p *Processor) ProcessFile(ctx context.Context, path string) (*entity.ExtractionReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()
	return p.ProcessDocument(ctx, f)
}
