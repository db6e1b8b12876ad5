// Package request parses and validates scoring request payloads shared by the
// HTTP and CLI transports.
package request

import (
	"encoding/json"
	"strings"

	"github.com/jonathan/resume-scorer/internal/schemas"
	"github.com/jonathan/resume-scorer/internal/scoring"
	"github.com/jonathan/resume-scorer/internal/types"
)

// Parse decodes a JSON payload into a ScoreRequest, validating it against the
// request schema and the struct validation rules. Field values are trimmed.
func Parse(payload []byte) (*types.ScoreRequest, error) {
	if len(payload) == 0 {
		return nil, &scoring.ErrInvalidPayload{Message: "empty payload"}
	}
	if !json.Valid(payload) {
		return nil, &scoring.ErrInvalidPayload{Message: "malformed JSON"}
	}

	if err := schemas.ValidateScoreRequest(payload); err != nil {
		return nil, err
	}

	var req types.ScoreRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		return nil, &scoring.ErrInvalidPayload{Message: err.Error()}
	}

	req.ResumeText = strings.TrimSpace(req.ResumeText)
	req.JobDescription = strings.TrimSpace(req.JobDescription)
	req.JobURL = strings.TrimSpace(req.JobURL)

	if req.ResumeText == "" {
		return nil, &scoring.ErrMissingField{Field: "resume_text"}
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	return &req, nil
}
