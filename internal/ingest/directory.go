package ingest

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/edtech-ng/question-bank/internal/core"
	"github.com/edtech-ng/question-bank/internal/entity"
)

type FileResult struct {
	Path   string
	Report *entity.ExtractionReport
	Err    string
}

type DirStats struct {
	Scanned   uint32
	Matched   uint32
	Succeeded uint32
	Failed    uint32
	Accepted  uint32
	Rejected  uint32
}

// Walker feeds every matching file under a directory through a document
// processor, collecting per-file results and aggregate stats.
type Walker struct {
	proc   *core.Processor
	logger *slog.Logger
}

func NewWalker(proc *core.Processor, logger *slog.Logger) *Walker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Walker{proc: proc, logger: logger}
}

// IngestDirectory walks root, filters by includeExts (or defaults to txt),
// skips hidden entries if requested, and processes each file. A file that
// fails is recorded and the walk continues.
func (w *Walker) IngestDirectory(ctx context.Context, root string, includeExts []string, skipHidden bool) ([]FileResult, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root path is required")
	}

	exts := map[string]struct{}{}
	if len(includeExts) == 0 {
		exts["txt"] = struct{}{}
	} else {
		for _, e := range includeExts {
			e = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(e), "."))
			if e != "" {
				exts[e] = struct{}{}
			}
		}
	}

	var results []FileResult
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		stats.Scanned++
		if walkErr != nil {
			results = append(results, FileResult{Path: path, Err: walkErr.Error()})
			stats.Failed++
			return nil // continue walking
		}
		if skipHidden && isHidden(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
		if _, ok := exts[ext]; !ok {
			return nil
		}
		stats.Matched++

		report, err := w.proc.ProcessFile(ctx, path)
		if err != nil && report == nil {
			w.logger.Error("ingest.file.failed", "path", path, "error", err)
			results = append(results, FileResult{Path: path, Err: err.Error()})
			stats.Failed++
			return nil
		}

		res := FileResult{Path: path, Report: report}
		if err != nil {
			// partial store failures: the report still counts what landed
			res.Err = err.Error()
		}
		results = append(results, res)
		stats.Succeeded++
		stats.Accepted += uint32(report.Accepted)
		stats.Rejected += uint32(report.Rejected)
		return nil
	})

	if err != nil {
		return results, stats, fmt.Errorf("walk: %w", err)
	}
	return results, stats, nil
}

func isHidden(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".")
}
