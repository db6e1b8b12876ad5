package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-scorer/internal/schemas"
	"github.com/jonathan/resume-scorer/internal/scoring"
)

func TestParse_Valid(t *testing.T) {
	req, err := Parse([]byte(`{"resume_text": "python dev", "job_description": "python needed"}`))
	require.NoError(t, err)

	assert.Equal(t, "python dev", req.ResumeText)
	assert.Equal(t, "python needed", req.JobDescription)
}

func TestParse_TrimsFields(t *testing.T) {
	req, err := Parse([]byte(`{"resume_text": "  python dev \n"}`))
	require.NoError(t, err)

	assert.Equal(t, "python dev", req.ResumeText)
}

func TestParse_EmptyPayload(t *testing.T) {
	_, err := Parse(nil)
	assert.IsType(t, &scoring.ErrInvalidPayload{}, err)
}

func TestParse_MalformedJSON(t *testing.T) {
	_, err := Parse([]byte(`{"resume_text": `))
	assert.IsType(t, &scoring.ErrInvalidPayload{}, err)
}

func TestParse_MissingResumeText(t *testing.T) {
	_, err := Parse([]byte(`{"job_description": "python"}`))
	assert.IsType(t, &schemas.ValidationError{}, err)
}

func TestParse_BlankResumeText(t *testing.T) {
	// Whitespace passes the schema's minLength but trims to nothing.
	_, err := Parse([]byte(`{"resume_text": "   "}`))
	assert.IsType(t, &scoring.ErrMissingField{}, err)
}

func TestParse_UnknownFieldRejected(t *testing.T) {
	_, err := Parse([]byte(`{"resume_text": "x", "resume": "y"}`))
	assert.IsType(t, &schemas.ValidationError{}, err)
}

func TestParse_InvalidJobURL(t *testing.T) {
	_, err := Parse([]byte(`{"resume_text": "x", "job_url": "not a url"}`))
	assert.Error(t, err)
}
