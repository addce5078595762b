package extract

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/edtech-ng/question-bank/internal/subject"
	"github.com/edtech-ng/question-bank/internal/textnorm"
)

// Candidate is the field extractor's output for one block: a stem, up to
// four lettered options, and every answer indicator found. It may be
// incomplete; the validator is the single point of rejection.
type Candidate struct {
	Number  string
	Ordinal int
	Stem    string
	// Options maps letters A-D to option text; OptionOrder records first
	// appearance so trailing checkmarks can resolve against the last one.
	Options     map[string]string
	OptionOrder []string
	// AnswerLetters holds the distinct letters the block's answer
	// indicators resolve to, in discovery order. More than one entry means
	// the indicators conflict.
	AnswerLetters []string
	// Difficulty is carried through untouched when the source marks one.
	Difficulty string
}

var difficultyPattern = regexp.MustCompile(`(?i)^\*?Difficulty(?:\s+Level)?\s*[:\-]\s*(\w+)\*?$`)

// optionMarker is one option-marker hit within a line: the span the marker
// (including its boundary) occupies and the letter it claims.
type optionMarker struct {
	start, end int
	letter     string
}

// findOptionMarkers runs every configured option pattern over the line and
// merges the hits into one left-to-right sequence. When two patterns claim
// overlapping spans, the leftmost (then earliest-configured) hit wins.
func findOptionMarkers(text string, cfg *subject.Config) []optionMarker {
	var marks []optionMarker
	for _, p := range cfg.Option {
		for _, loc := range p.FindAllStringSubmatchIndex(text, -1) {
			marks = append(marks, optionMarker{
				start:  loc[0],
				end:    loc[1],
				letter: strings.ToUpper(text[loc[2]:loc[3]]),
			})
		}
	}
	sort.SliceStable(marks, func(i, j int) bool { return marks[i].start < marks[j].start })

	out := marks[:0]
	lastEnd := -1
	for _, m := range marks {
		if m.start < lastEnd {
			continue
		}
		out = append(out, m)
		lastEnd = m.end
	}
	return out
}

// Fields splits one block into a candidate record. Lines before the first
// option marker join into the stem; marker lines split into lettered
// options; answer indicators are collected from anywhere in the block.
func Fields(block *RawBlock, cfg *subject.Config) *Candidate {
	c := &Candidate{
		Ordinal: block.Ordinal,
		Options: make(map[string]string),
	}

	var stemParts []string
	lastLetter := ""

	for _, ln := range block.Lines {
		if ln.Blank {
			continue
		}
		text := ln.Text

		// A checkmark on its own line marks the preceding option correct.
		if isCheckmark(text, cfg) {
			if lastLetter != "" {
				c.addAnswer(lastLetter)
			}
			continue
		}

		if m := difficultyPattern.FindStringSubmatch(text); m != nil {
			c.Difficulty = m[1]
			continue
		}

		// Explicit answer indicator ("Answer: B"), standalone or trailing.
		for _, p := range cfg.AnswerLine {
			if loc := p.FindStringSubmatchIndex(text); loc != nil {
				c.addAnswer(strings.ToUpper(text[loc[2]:loc[3]]))
				text = strings.TrimSpace(text[:loc[0]] + text[loc[1]:])
				break
			}
		}
		if text == "" {
			continue
		}

		// Unlettered bullet options take letters in order of appearance.
		if m := cfg.Bullet.FindStringSubmatch(text); m != nil && !matchesOption(text, cfg) {
			if len(c.OptionOrder) < 4 {
				letter := string(rune('A' + len(c.OptionOrder)))
				optText, correct := stripCorrectMarks(m[1], cfg)
				c.setOption(letter, optText)
				if correct {
					c.addAnswer(letter)
				}
				lastLetter = letter
			}
			continue
		}

		marks := findOptionMarkers(text, cfg)

		if len(marks) == 0 {
			// Continuation text: stem before options start, option wrap after.
			if lastLetter == "" {
				stemParts = append(stemParts, text)
			} else {
				c.appendOption(lastLetter, text)
			}
			continue
		}

		// An option-looking line that reads like a question belongs to the
		// stem while no option slot has been filled yet; early ambiguous
		// content is kept rather than mis-claimed as an option.
		if len(c.OptionOrder) == 0 && len(marks) < 2 && strings.ContainsAny(text, "?:") {
			stemParts = append(stemParts, text)
			continue
		}

		if pre := strings.Trim(text[:marks[0].start], " *-"); pre != "" {
			if lastLetter == "" {
				stemParts = append(stemParts, pre)
			} else {
				c.appendOption(lastLetter, pre)
			}
		}
		for k, m := range marks {
			end := len(text)
			if k+1 < len(marks) {
				end = marks[k+1].start
			}
			optText, correct := stripCorrectMarks(strings.TrimSpace(text[m.end:end]), cfg)
			c.setOption(m.letter, optText)
			if correct {
				c.addAnswer(m.letter)
			}
			lastLetter = m.letter
		}
	}

	c.Stem = textnorm.CollapseSpaces(strings.Join(stemParts, " "))
	c.Number = formatNumber(block.Label, block.Ordinal, cfg)
	return c
}

func (c *Candidate) setOption(letter, text string) {
	if _, seen := c.Options[letter]; !seen {
		c.OptionOrder = append(c.OptionOrder, letter)
	}
	c.Options[letter] = text
}

func (c *Candidate) appendOption(letter, text string) {
	if cur := c.Options[letter]; cur != "" {
		c.Options[letter] = cur + " " + text
	} else {
		c.Options[letter] = text
	}
}

func (c *Candidate) addAnswer(letter string) {
	for _, l := range c.AnswerLetters {
		if l == letter {
			return
		}
	}
	c.AnswerLetters = append(c.AnswerLetters, letter)
}

// matchesOption reports whether the line opens with a lettered option
// marker, distinguishing real option lines from unlettered bullets.
func matchesOption(text string, cfg *subject.Config) bool {
	for _, p := range cfg.Option {
		if loc := p.FindStringIndex(text); loc != nil && loc[0] == 0 {
			return true
		}
	}
	return false
}

func isCheckmark(text string, cfg *subject.Config) bool {
	for _, mark := range cfg.Checkmarks {
		if text == mark {
			return true
		}
	}
	return false
}

// stripCorrectMarks removes correct-answer decorations from option text:
// a trailing checkmark or an asterisk wrap surviving from bold formatting.
func stripCorrectMarks(text string, cfg *subject.Config) (string, bool) {
	correct := false
	for _, mark := range cfg.Checkmarks {
		if strings.HasSuffix(text, mark) {
			text = strings.TrimSpace(strings.TrimSuffix(text, mark))
			correct = true
		}
	}
	if len(text) > 2 && strings.HasPrefix(text, "*") && strings.HasSuffix(text, "*") {
		text = strings.TrimSpace(strings.Trim(text, "*"))
		correct = true
	}
	return text, correct
}

// formatNumber renders the persisted question_number: the raw source label
// by default, or the subject's number format applied to numeric labels.
// Blocks whose marker carried no label take their document ordinal.
func formatNumber(label string, ordinal int, cfg *subject.Config) string {
	if cfg.NumberFormat == "" {
		if label != "" {
			return label
		}
		return strconv.Itoa(ordinal)
	}
	if n, err := strconv.Atoi(label); err == nil {
		return fmt.Sprintf(cfg.NumberFormat, n)
	}
	if label != "" {
		return label
	}
	return fmt.Sprintf(cfg.NumberFormat, ordinal)
}
