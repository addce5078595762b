package constants

// AnswerLetters holds the only letters a correct answer may resolve to.
var AnswerLetters = []string{"A", "B", "C", "D"}

// IsAnswerLetter reports whether s is one of A, B, C, D.
func IsAnswerLetter(s string) bool {
	switch s {
	case "A", "B", "C", "D":
		return true
	}
	return false
}
