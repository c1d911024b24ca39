package fragment

import "fmt"

// Status is the tri-state result of running one fragment.
type Status int

const (
	StatusSuccess Status = iota
	StatusFailure
	StatusSkipped
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	case StatusSkipped:
		return "skipped"
	}
	return "unknown"
}

// FailureKind distinguishes an assertion failure from an unexpected error.
type FailureKind int

const (
	FailureNone FailureKind = iota
	FailureAssertion
	FailureError
)

// Outcome is the result of executing one fragment.
type Outcome struct {
	Status  Status
	Failure FailureKind
	// Message describes an assertion failure.
	Message string
	// Err carries the underlying error for FailureError outcomes.
	Err error
}

// Success returns the successful outcome.
func Success() Outcome {
	return Outcome{Status: StatusSuccess}
}

// Skipped returns the skipped outcome. Skipped is not an error; it exists
// for propagation decisions.
func Skipped() Outcome {
	return Outcome{Status: StatusSkipped}
}

// AssertionFailure returns a failure outcome for an unmet expectation.
func AssertionFailure(msg string) Outcome {
	return Outcome{Status: StatusFailure, Failure: FailureAssertion, Message: msg}
}

// ErrorFailure returns a failure outcome for an unexpected error.
func ErrorFailure(err error) Outcome {
	return Outcome{Status: StatusFailure, Failure: FailureError, Err: err}
}

// IsOk reports whether the outcome is a success. Skipped and Failure are
// both "not ok" for propagation purposes.
func (o Outcome) IsOk() bool {
	return o.Status == StatusSuccess
}

func (o Outcome) String() string {
	switch o.Status {
	case StatusFailure:
		if o.Failure == FailureError {
			return fmt.Sprintf("failure(error: %v)", o.Err)
		}
		return fmt.Sprintf("failure(%s)", o.Message)
	default:
		return o.Status.String()
	}
}
