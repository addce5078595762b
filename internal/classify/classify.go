// Package classify assigns a question_type label from a closed per-subject
// vocabulary using an ordered rule table over the stem text.
package classify

import (
	"regexp"
	"strings"
)

// Rule pairs a predicate pattern with the label it assigns. Patterns are
// matched against the lowercased stem.
type Rule struct {
	Pattern *regexp.Regexp
	Label   string
}

// Table is an ordered rule list; the first matching rule wins. Fallback is
// returned when no rule matches, so classification is total.
type Table struct {
	Rules    []Rule
	Fallback string
}

// Classify maps a stem to exactly one label. It is a pure function of the
// stem and the table: same input, same label, every run.
func (t Table) Classify(stem string) string {
	lower := strings.ToLower(stem)
	for _, r := range t.Rules {
		if r.Pattern.MatchString(lower) {
			return r.Label
		}
	}
	return t.Fallback
}

// Labels returns the closed vocabulary of the table: every rule label plus
// the fallback, in priority order, deduplicated.
func (t Table) Labels() []string {
	seen := make(map[string]struct{}, len(t.Rules)+1)
	out := make([]string, 0, len(t.Rules)+1)
	for _, r := range t.Rules {
		if _, ok := seen[r.Label]; ok {
			continue
		}
		seen[r.Label] = struct{}{}
		out = append(out, r.Label)
	}
	if _, ok := seen[t.Fallback]; !ok {
		out = append(out, t.Fallback)
	}
	return out
}

// MustRule compiles a case-insensitive keyword pattern into a Rule.
// Panics on invalid patterns; intended for the built-in tables.
func MustRule(pattern, label string) Rule {
	return Rule{Pattern: regexp.MustCompile(pattern), Label: label}
}
