// Package extract partitions a normalized line stream into raw question
// blocks and splits each block into stem, options, and answer indicators.
package extract

import (
	"github.com/edtech-ng/question-bank/internal/subject"
	"github.com/edtech-ng/question-bank/internal/textnorm"
)

// RawBlock is the contiguous slice of normalized lines believed to contain
// one question. Label is the source-assigned question label from the start
// marker (may be empty); Ordinal is the block's 1-based position in the
// document. The stem fragment from the marker line, if any, is the first
// entry in Lines.
type RawBlock struct {
	Label   string
	Ordinal int
	Lines   []textnorm.Line
}

// BlockScanner yields RawBlocks in source order: a finite, single-pass
// sequence. Re-scanning requires a fresh scanner over a fresh line slice.
type BlockScanner struct {
	lines   []textnorm.Line
	cfg     *subject.Config
	pos     int
	ordinal int
}

func NewBlockScanner(lines []textnorm.Line, cfg *subject.Config) *BlockScanner {
	return &BlockScanner{lines: lines, cfg: cfg}
}

// Next returns the next block, or false when the stream is exhausted.
// Content before the first question-start marker (document preamble) is
// discarded, as are marker-only blocks with no content at all.
func (s *BlockScanner) Next() (*RawBlock, bool) {
	for s.pos < len(s.lines) {
		line := s.lines[s.pos]
		if line.Blank {
			s.pos++
			continue
		}
		label, rest, ok := s.matchStart(line.Text)
		if !ok {
			s.pos++
			continue
		}
		s.pos++

		block := &RawBlock{Label: label}
		if rest != "" {
			block.Lines = append(block.Lines, textnorm.Line{Text: rest})
		}
		for s.pos < len(s.lines) {
			l := s.lines[s.pos]
			if !l.Blank {
				if _, _, starts := s.matchStart(l.Text); starts {
					break
				}
			}
			block.Lines = append(block.Lines, l)
			s.pos++
		}

		// Nothing beyond the marker line: not a block.
		if len(block.Lines) == 0 {
			continue
		}
		s.ordinal++
		block.Ordinal = s.ordinal
		return block, true
	}
	return nil, false
}

func (s *BlockScanner) matchStart(text string) (label, rest string, ok bool) {
	for _, p := range s.cfg.QuestionStart {
		if m := p.FindStringSubmatch(text); m != nil {
			return m[1], m[2], true
		}
	}
	return "", "", false
}
