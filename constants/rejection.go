package constants

// RejectionReason is the canonical label for a validator rejection.
type RejectionReason string

// Stable values (these exact strings appear in run reports and logs).
const (
	RejectShortStem           RejectionReason = "short stem"           // stem below subject minimum length
	RejectInsufficientOptions RejectionReason = "insufficient options" // fewer than four option slots filled
	RejectEmptyOption         RejectionReason = "empty option"         // an option slot is blank after cleanup
	RejectDuplicateOption     RejectionReason = "duplicate option"     // two options identical after folding
	RejectMissingAnswer       RejectionReason = "missing answer"       // no answer indicator found
	RejectAmbiguousAnswer     RejectionReason = "ambiguous answer"     // conflicting answer indicators
)
