package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/edtech-ng/question-bank/constants"
	qbankv1 "github.com/edtech-ng/question-bank/gen/qbank/v1"
	"github.com/edtech-ng/question-bank/internal/common"
	"github.com/edtech-ng/question-bank/internal/core"
	"github.com/edtech-ng/question-bank/internal/entity"
	"github.com/edtech-ng/question-bank/internal/repository"
	"github.com/edtech-ng/question-bank/internal/subject"
)

type ExtractionService struct {
	qbankv1.UnimplementedExtractionServiceServer
	procs  map[constants.Subject]*core.Processor
	logger *slog.Logger
}

// NewExtractionService builds one processor per subject. When configDir is
// non-empty, a <subject>.json file there overrides that subject's built-in
// pattern tables.
func NewExtractionService(repo repository.QuestionRepository, configDir string, logger *slog.Logger) (*ExtractionService, error) {
	if logger == nil {
		logger = slog.Default()
	}
	procs := make(map[constants.Subject]*core.Processor, len(constants.AllSubjects()))
	for _, sub := range constants.AllSubjects() {
		cfg := subject.ForSubject(sub)
		if configDir != "" {
			path := filepath.Join(configDir, string(sub)+".json")
			if _, err := os.Stat(path); err == nil {
				cfg, err = subject.LoadFile(path)
				if err != nil {
					return nil, fmt.Errorf("subject config %s: %w", path, err)
				}
				logger.Info("server.subject.config_override", "subject", sub, "path", path)
			}
		}
		procs[sub] = core.NewProcessor(logger, cfg, repo)
	}
	return &ExtractionService{procs: procs, logger: logger}, nil
}

// ExtractDocument implements qbankv1.ExtractionServiceServer
func (s *ExtractionService) ExtractDocument(ctx context.Context, req *qbankv1.ExtractDocumentRequest) (*qbankv1.ExtractDocumentResponse, error) {
	sub, ok := constants.ParseSubject(req.GetSubject())
	if !ok {
		s.logger.Error("extract request with unknown subject", "subject", req.GetSubject())
		return nil, common.InvalidArgumentErrorf("unknown subject %q", req.GetSubject())
	}
	text := req.GetText()
	if strings.TrimSpace(text) == "" {
		s.logger.Error("extract request missing text", "subject", sub)
		return nil, common.InvalidArgumentError("text is required")
	}

	s.logger.Info("server.extract.start", "subject", sub, "bytes", len(text))
	report, err := s.procs[sub].ProcessDocument(ctx, strings.NewReader(text))
	if report == nil {
		s.logger.Error("server.extract.failed", "subject", sub, "error", err)
		return nil, common.InternalError("extraction failed")
	}

	resp := &qbankv1.ExtractDocumentResponse{Report: toProtoReport(report)}
	if err != nil {
		// accepted questions that failed to store; the report counts them
		resp.Error = err.Error()
	}
	return resp, nil
}

func toProtoReport(r *entity.ExtractionReport) *qbankv1.ExtractionReport {
	out := &qbankv1.ExtractionReport{
		Attempted:        uint32(r.Attempted),
		Accepted:         uint32(r.Accepted),
		Rejected:         uint32(r.Rejected),
		StoreFailures:    uint32(r.StoreFailures),
		RejectionReasons: make(map[string]uint32, len(r.RejectionReasons)),
	}
	for reason, n := range r.RejectionReasons {
		out.RejectionReasons[string(reason)] = uint32(n)
	}
	return out
}
