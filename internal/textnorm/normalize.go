// Package textnorm cleans raw PDF-to-text output into a normalized line
// sequence the block detector can scan. It never fails; empty input yields
// an empty sequence.
package textnorm

import (
	"regexp"
	"strings"
)

// Line is one normalized source line. Blank separator lines are tagged
// rather than dropped so block boundaries stay detectable downstream.
type Line struct {
	Text  string
	Blank bool
}

var (
	pageMarkerPattern = regexp.MustCompile(`^=+\s*Page\s+\d+\s*=+$`)
	whitespacePattern = regexp.MustCompile(`\s+`)
	// letter-hyphen at end of line, i.e. a word split across lines
	hyphenBreakPattern = regexp.MustCompile(`[A-Za-z]-$`)
)

// noise characters the source scans are known to carry
var noiseReplacer = strings.NewReplacer(
	"```", "",
	"\u200B", "", // zero-width space glued to bullets
	"\uFEFF", "", // byte order mark
	"•", "●",
)

// Normalize converts one document's raw text into a normalized line
// sequence: whitespace trimmed and collapsed, page markers dropped, runs of
// empty lines collapsed to a single tagged blank, and end-of-line
// hyphenation joined with the following fragment.
func Normalize(raw string) []Line {
	src := strings.Split(raw, "\n")
	lines := make([]Line, 0, len(src))

	for i := 0; i < len(src); i++ {
		text := cleanLine(src[i])
		if text == "" {
			if len(lines) > 0 && !lines[len(lines)-1].Blank {
				lines = append(lines, Line{Blank: true})
			}
			continue
		}
		if pageMarkerPattern.MatchString(text) {
			continue
		}

		// Join hyphenated line breaks ("exami-\nnation" -> "examination").
		for hyphenBreakPattern.MatchString(text) {
			j := i + 1
			for j < len(src) && cleanLine(src[j]) == "" {
				j++
			}
			if j >= len(src) {
				break
			}
			next := cleanLine(src[j])
			if pageMarkerPattern.MatchString(next) {
				break
			}
			text = strings.TrimSuffix(text, "-") + next
			i = j
		}

		lines = append(lines, Line{Text: text})
	}

	// A trailing blank separates nothing.
	if n := len(lines); n > 0 && lines[n-1].Blank {
		lines = lines[:n-1]
	}
	return lines
}

// cleanLine strips noise characters, trims, and collapses internal runs of
// whitespace to a single space.
func cleanLine(s string) string {
	s = noiseReplacer.Replace(s)
	s = whitespacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// CollapseSpaces folds a joined multi-line fragment into single-spaced text.
func CollapseSpaces(s string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(s, " "))
}
