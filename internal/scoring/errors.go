// Package scoring combines the extractor signals for a resume/job-description
// pair into the final weighted score report.
package scoring

import "fmt"

// ErrEmptyResume indicates the resume text was empty after trimming.
type ErrEmptyResume struct{}

func (e *ErrEmptyResume) Error() string {
	return "resume text cannot be empty"
}

// ErrMissingField indicates a required key was absent from the request payload.
type ErrMissingField struct {
	Field string
}

func (e *ErrMissingField) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// ErrInvalidPayload indicates the request payload could not be parsed.
type ErrInvalidPayload struct {
	Message string
}

func (e *ErrInvalidPayload) Error() string {
	return fmt.Sprintf("invalid payload: %s", e.Message)
}
