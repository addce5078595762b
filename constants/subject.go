package constants

import "strings"

// Subject identifies one source question bank and its destination table.
type Subject string

const (
	English          Subject = "english"
	Mathematics      Subject = "mathematics"
	GeneralKnowledge Subject = "general_knowledge"
)

var allSubjects = []Subject{
	English,
	Mathematics,
	GeneralKnowledge,
}

// TableName returns the destination table for a subject.
func (s Subject) TableName() string {
	return string(s) + "_questions"
}

// DefaultSource is the provenance string stored in the source column.
func (s Subject) DefaultSource() string {
	return string(s) + "_bank_pdf"
}

func AllSubjects() []Subject {
	out := make([]Subject, len(allSubjects))
	copy(out, allSubjects)
	return out
}

func SubjectStrings() []string {
	result := make([]string, len(allSubjects))
	for i, s := range allSubjects {
		result[i] = string(s)
	}
	return result
}

// ParseSubject canonicalizes user input ("English", "gk", "maths") to a Subject.
func ParseSubject(input string) (Subject, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		return "", false
	}

	synonyms := map[string]Subject{
		"eng":               English,
		"math":              Mathematics,
		"maths":             Mathematics,
		"gk":                GeneralKnowledge,
		"general knowledge": GeneralKnowledge,
		"general-knowledge": GeneralKnowledge,
	}
	if s, ok := synonyms[normalized]; ok {
		return s, true
	}
	for _, s := range allSubjects {
		if normalized == string(s) {
			return s, true
		}
	}
	return "", false
}
