package models

const (
	StatusSuccess = "success"
	StatusWarning = "warning"

	ErrorTypeValidation = "validation_failure"
)

// Response is what the presentation layer receives for one submission:
// either an Outcome or a Warning, never both.
type Response struct {
	Status  string           `json:"status" yaml:"status"`
	Outcome *AnalysisOutcome `json:"outcome,omitempty" yaml:"outcome,omitempty"`
	Warning *ErrorInfo       `json:"warning,omitempty" yaml:"warning,omitempty"`
}

// ErrorInfo provides structured error information.
type ErrorInfo struct {
	Type             string   `json:"error_type" yaml:"error_type"`
	Message          string   `json:"message" yaml:"message"`
	SuggestedActions []string `json:"suggested_actions,omitempty" yaml:"suggested_actions,omitempty"`
}

// NewValidationFailure creates the response for empty or whitespace-only input.
func NewValidationFailure() Response {
	return Response{
		Status: StatusWarning,
		Warning: &ErrorInfo{
			Type:    ErrorTypeValidation,
			Message: "Please enter some text before analyzing.",
			SuggestedActions: []string{
				"Pass the article with --text, --file, --html or on stdin",
			},
		},
	}
}

// NewSuccess wraps an outcome.
func NewSuccess(outcome *AnalysisOutcome) Response {
	return Response{Status: StatusSuccess, Outcome: outcome}
}

// IsValidationFailure reports whether the pipeline was skipped for bad input.
func (r Response) IsValidationFailure() bool {
	return r.Warning != nil && r.Warning.Type == ErrorTypeValidation
}
