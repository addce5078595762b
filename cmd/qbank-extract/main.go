package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/edtech-ng/question-bank/constants"
	"github.com/edtech-ng/question-bank/internal/common"
	"github.com/edtech-ng/question-bank/internal/core"
	"github.com/edtech-ng/question-bank/internal/export"
	"github.com/edtech-ng/question-bank/internal/ingest"
	repo "github.com/edtech-ng/question-bank/internal/repository"
	"github.com/edtech-ng/question-bank/internal/subject"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	// Parse CLI flags
	var (
		subjectStr = flag.String("subject", "", "subject to extract: english, mathematics, general_knowledge (required)")
		file       = flag.String("file", "", "single text file to process")
		dir        = flag.String("dir", "", "directory of text files to process")
		dbPath     = flag.String("db", "", "database DSN or SQLite path (default: DB_URL env or questions.db)")
		configPath = flag.String("config", "", "subject override JSON file (optional)")
		out        = flag.String("out", "", "export the subject's bank to this XLSX file after processing (optional)")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *subjectStr == "" {
		printError("Error: -subject is required (one of: %s)\n", strings.Join(constants.SubjectStrings(), ", "))
		os.Exit(1)
	}
	sub, ok := constants.ParseSubject(*subjectStr)
	if !ok {
		printError("Error: unknown subject %q (one of: %s)\n", *subjectStr, strings.Join(constants.SubjectStrings(), ", "))
		os.Exit(1)
	}
	if (*file == "") == (*dir == "") {
		printError("Error: exactly one of -file or -dir is required\n")
		os.Exit(1)
	}

	// Setup logger
	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	cfg := common.LoadConfig()
	if *dbPath != "" {
		cfg.Database.DSN = *dbPath
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Subject patterns: built-in table, or an override file
	subCfg := subject.ForSubject(sub)
	if *configPath != "" {
		var err error
		subCfg, err = subject.LoadFile(*configPath)
		if err != nil {
			logger.Error("failed to load subject config", "path", *configPath, "error", err)
			os.Exit(1)
		}
		if subCfg.Subject != sub {
			logger.Error("subject config is for a different subject",
				"flag", sub, "config", subCfg.Subject)
			os.Exit(1)
		}
	}

	// Open store
	db, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	questions := repo.NewQuestionRepository(db.Client, logger)
	processor := core.NewProcessor(logger, subCfg, questions)

	failures := 0

	if *file != "" {
		logger.Info("processing file", "subject", sub, "file", *file)
		report, err := processor.ProcessFile(ctx, *file)
		if err != nil && report == nil {
			logger.Error("failed to process file", "file", *file, "error", err)
			os.Exit(1)
		}
		if err != nil {
			logger.Error("some questions failed to store", "file", *file, "error", err)
			failures = report.StoreFailures
		}
		printReport(*file, report.Attempted, report.Accepted, report.Rejected, report.StoreFailures)
	} else {
		logger.Info("processing directory", "subject", sub, "dir", *dir)
		walker := ingest.NewWalker(processor, logger)
		results, stats, err := walker.IngestDirectory(ctx, *dir, nil, true)
		if err != nil {
			logger.Error("failed to process directory", "dir", *dir, "error", err)
			os.Exit(1)
		}
		for _, r := range results {
			if r.Err != "" {
				logger.Error("file failed", "file", r.Path, "error", r.Err)
				failures++
			}
		}
		logger.Info("directory processing complete",
			"scanned", stats.Scanned,
			"matched", stats.Matched,
			"succeeded", stats.Succeeded,
			"failed", stats.Failed,
			"accepted", stats.Accepted,
			"rejected", stats.Rejected)
		fmt.Printf("Processed %d file(s): %d accepted, %d rejected, %d failed\n",
			stats.Matched, stats.Accepted, stats.Rejected, stats.Failed)
	}

	total, err := questions.CountBySubject(ctx, sub)
	if err != nil {
		logger.Error("failed to count questions", "error", err)
	} else {
		fmt.Printf("Total %s questions in bank: %d\n", sub, total)
	}

	// Export to XLSX when requested
	if *out != "" {
		outPath := *out
		if filepath.Ext(outPath) == "" {
			outPath += ".xlsx"
		}
		exportService := export.NewService(questions, logger)
		xlsxBytes, err := exportService.ExportQuestionsXLSX(ctx, sub)
		if err != nil {
			logger.Error("failed to export questions", "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(outPath, xlsxBytes, 0644); err != nil {
			logger.Error("failed to write output file", "path", outPath, "error", err)
			os.Exit(1)
		}
		fmt.Printf("Exported to %s\n", outPath)
	}

	if failures > 0 {
		os.Exit(1)
	}
}

func printReport(path string, attempted, accepted, rejected, storeFailures int) {
	fmt.Printf("Extraction complete: %s\n", path)
	fmt.Printf("- Attempted: %d\n", attempted)
	fmt.Printf("- Accepted: %d\n", accepted)
	fmt.Printf("- Rejected: %d\n", rejected)
	if storeFailures > 0 {
		fmt.Printf("- Store failures: %d\n", storeFailures)
	}
}
