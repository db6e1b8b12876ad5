package server

import (
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/jonathan/resume-scorer/internal/fetch"
	"github.com/jonathan/resume-scorer/internal/request"
)

// maxPayloadBytes bounds the request body; resumes and postings are text, so
// anything beyond this is not a legitimate scoring request.
const maxPayloadBytes = 1 << 20

// handleScore scores a resume against a job description.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, maxPayloadBytes))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	req, err := request.Parse(payload)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	jobDescription := req.JobDescription
	if jobDescription == "" && req.JobURL != "" {
		jobDescription, err = fetch.JobDescription(r.Context(), req.JobURL, nil)
		if err != nil {
			s.log.Warn("fetching job posting", zap.String("url", req.JobURL), zap.Error(err))
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
	}

	report, err := s.scorer.Score(r.Context(), req.ResumeText, jobDescription)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, report)
}
