package subject

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"

	"github.com/edtech-ng/question-bank/constants"
	"github.com/edtech-ng/question-bank/internal/classify"
)

// fileConfig is the wire shape of a subject override file. Any list or
// value it provides replaces the built-in one wholesale; omitted fields
// keep the built-in defaults.
type fileConfig struct {
	Subject               string   `json:"subject"`
	MinStemLength         *int     `json:"min_stem_length"`
	NumberFormat          *string  `json:"number_format"`
	QuestionStartPatterns []string `json:"question_start_patterns"`
	OptionPatterns        []string `json:"option_patterns"`
	AnswerLinePatterns    []string `json:"answer_line_patterns"`
	Checkmarks            []string `json:"checkmarks"`
	Classifier            *struct {
		Fallback string `json:"fallback"`
		Rules    []struct {
			Pattern string `json:"pattern"`
			Label   string `json:"label"`
		} `json:"rules"`
	} `json:"classifier"`
}

// LoadFile reads a subject override file, validates it against the config
// schema, and merges it over the subject's built-in config.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse builds a Config from raw override JSON.
func Parse(data []byte) (*Config, error) {
	if err := validateConfigJSON(data); err != nil {
		return nil, err
	}
	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	sub, ok := constants.ParseSubject(fc.Subject)
	if !ok {
		return nil, fmt.Errorf("unknown subject: %q", fc.Subject)
	}
	cfg := ForSubject(sub)

	var err error
	if fc.MinStemLength != nil {
		cfg.MinStemLen = *fc.MinStemLength
	}
	if fc.NumberFormat != nil {
		cfg.NumberFormat = *fc.NumberFormat
	}
	if len(fc.QuestionStartPatterns) > 0 {
		cfg.QuestionStart, err = compileAll(fc.QuestionStartPatterns, 2)
		if err != nil {
			return nil, fmt.Errorf("question_start_patterns: %w", err)
		}
	}
	// Option patterns capture the letter in group 1 and must end where the
	// option text begins; they are matched inline as well as at line start.
	if len(fc.OptionPatterns) > 0 {
		cfg.Option, err = compileAll(fc.OptionPatterns, 1)
		if err != nil {
			return nil, fmt.Errorf("option_patterns: %w", err)
		}
	}
	if len(fc.AnswerLinePatterns) > 0 {
		cfg.AnswerLine, err = compileAll(fc.AnswerLinePatterns, 1)
		if err != nil {
			return nil, fmt.Errorf("answer_line_patterns: %w", err)
		}
	}
	if len(fc.Checkmarks) > 0 {
		cfg.Checkmarks = fc.Checkmarks
	}
	if fc.Classifier != nil {
		table := classify.Table{Fallback: fc.Classifier.Fallback}
		for _, r := range fc.Classifier.Rules {
			p, err := regexp.Compile(r.Pattern)
			if err != nil {
				return nil, fmt.Errorf("classifier rule %q: %w", r.Pattern, err)
			}
			table.Rules = append(table.Rules, classify.Rule{Pattern: p, Label: r.Label})
		}
		cfg.Classifier = table
	}
	return cfg, nil
}

// compileAll compiles patterns and checks each captures at least minGroups
// submatches, since the extractor slices blocks by capture group.
func compileAll(patterns []string, minGroups int) ([]*regexp.Regexp, error) {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, s := range patterns {
		p, err := regexp.Compile(s)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", s, err)
		}
		if p.NumSubexp() < minGroups {
			return nil, fmt.Errorf("pattern %q: needs %d capture groups, has %d", s, minGroups, p.NumSubexp())
		}
		out = append(out, p)
	}
	return out, nil
}
