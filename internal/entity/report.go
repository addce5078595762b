package entity

import "github.com/edtech-ng/question-bank/constants"

// ExtractionReport aggregates the outcome of one pipeline invocation over
// one document. It is local to the run; callers own the returned value.
type ExtractionReport struct {
	Attempted        int                               `json:"attempted"`
	Accepted         int                               `json:"accepted"`
	Rejected         int                               `json:"rejected"`
	RejectionReasons map[constants.RejectionReason]int `json:"rejection_reasons"`
	StoreFailures    int                               `json:"store_failures"`
}

func NewExtractionReport() *ExtractionReport {
	return &ExtractionReport{
		RejectionReasons: make(map[constants.RejectionReason]int),
	}
}

// RecordRejection counts one rejected block under its reason.
func (r *ExtractionReport) RecordRejection(reason constants.RejectionReason) {
	r.Rejected++
	r.RejectionReasons[reason]++
}

// Rate is accepted blocks over attempted blocks; 0 when nothing was attempted.
func (r *ExtractionReport) Rate() float64 {
	if r.Attempted == 0 {
		return 0
	}
	return float64(r.Accepted) / float64(r.Attempted)
}
