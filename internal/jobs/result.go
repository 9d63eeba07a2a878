package jobs

// Result is what the search pipeline hands back to its caller. No failure
// propagates out of the pipeline as a raw fault: Success is false and Error
// carries a human-readable message while Jobs stays empty. AppliedFilters is
// present once the inputs have been validated and normalized; a result
// rejected before that point omits it.
type Result struct {
	Success        bool            `json:"success"`
	Jobs           []*Record       `json:"jobs"`
	TotalFound     int             `json:"total_found"`
	Query          string          `json:"query"`
	ParsingMethod  string          `json:"parsing_method"`
	AppliedFilters *AppliedFilters `json:"applied_filters,omitempty"`
	RequestID      string          `json:"request_id"`
	Error          string          `json:"error,omitempty"`
}

// Failure builds an unsuccessful result with a safe empty payload.
func Failure(requestID, query, method string, err error) *Result {
	return &Result{
		Success:       false,
		Jobs:          []*Record{},
		Query:         query,
		ParsingMethod: method,
		RequestID:     requestID,
		Error:         err.Error(),
	}
}
