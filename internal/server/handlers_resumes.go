package server

import (
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/marisol/talentdesk/internal/resume"
)

// maxResumeSize is the largest resume upload accepted, 5MB.
const maxResumeSize = 5 * 1024 * 1024

// handleParseResume accepts a multipart resume upload, stores the file,
// extracts its text, parses the candidate fields, and creates a temporary
// candidate the applicant can review before submitting.
func (s *Server) handleParseResume(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxResumeSize)
	if err := r.ParseMultipartForm(maxResumeSize); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "File too large or malformed upload")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "No file provided")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read upload")
		return
	}

	mimeType := header.Header.Get("Content-Type")
	text, err := resume.Extract(data, mimeType)
	if err != nil {
		var unsupported *resume.UnsupportedFormatError
		if errors.As(err, &unsupported) {
			s.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Failed to parse resume")
		return
	}

	resumeURL, err := s.uploads.Upload(r.Context(), data, header.Filename)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to store resume")
		return
	}

	fields := resume.ParseFields(text)

	temp, err := s.db.CreateTemporaryCandidate(r.Context(), resumeURL, fields)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to store parsed resume")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"name":       fields.Name,
		"email":      fields.Email,
		"phone":      fields.Phone,
		"skills":     fields.Skills,
		"experience": fields.Experience,
		"tempId":     temp.TempID,
		"resumeUrl":  resumeURL,
		"positionId": r.FormValue("positionId"),
		"expiresAt":  temp.ExpiresAt,
	})
}

// handleGetTemporaryCandidate returns a parsed resume for form pre-fill.
// Expired records are still returned; expiry is enforced by the purge
// command, not on read.
func (s *Server) handleGetTemporaryCandidate(w http.ResponseWriter, r *http.Request) {
	tempIDStr := r.URL.Query().Get("tempId")
	if tempIDStr == "" {
		s.errorResponse(w, http.StatusBadRequest, "No temporary ID provided")
		return
	}

	tempID, err := uuid.Parse(tempIDStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid temporary ID")
		return
	}

	temp, err := s.db.GetTemporaryCandidate(r.Context(), tempID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to fetch temporary candidate")
		return
	}
	if temp == nil {
		s.errorResponse(w, http.StatusNotFound, "Temporary candidate not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, temp)
}
