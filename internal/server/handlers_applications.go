package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/marisol/talentdesk/internal/db"
	"github.com/marisol/talentdesk/internal/match"
	"github.com/marisol/talentdesk/internal/types"
)

// handleSubmitApplication accepts an application from the careers site.
// With a temp_id it promotes the parsed resume in one transaction; without
// one it creates or reuses the candidate by email.
func (s *Server) handleSubmitApplication(w http.ResponseWriter, r *http.Request) {
	var req types.SubmitApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	positionID, err := uuid.Parse(req.PositionID)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid position ID")
		return
	}

	if req.TempID != "" {
		s.submitFromTemporary(w, r, req, positionID)
		return
	}

	s.submitDirect(w, r, req, positionID)
}

// submitFromTemporary promotes a parsed resume into a candidate and
// application atomically.
func (s *Server) submitFromTemporary(w http.ResponseWriter, r *http.Request, req types.SubmitApplicationRequest, positionID uuid.UUID) {
	tempID, err := uuid.Parse(req.TempID)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid temporary ID")
		return
	}

	candidate, application, err := s.db.PromoteTemporaryCandidate(r.Context(), db.PromoteInput{
		TempID:      tempID,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Skills:      req.Skills,
		Experience:  req.Experience,
		PositionID:  positionID,
		CoverLetter: req.CoverLetter,
	})
	if err != nil {
		var notFound *db.TemporaryCandidateNotFoundError
		if errors.As(err, &notFound) {
			s.errorResponse(w, http.StatusNotFound, "Temporary candidate not found")
			return
		}
		log.Printf("[APPLICATIONS] promotion failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to submit application")
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{
		"application": application,
		"candidate":   candidate,
	})
}

// submitDirect creates an application without a parsed resume, reusing an
// existing candidate with the same email when one exists.
func (s *Server) submitDirect(w http.ResponseWriter, r *http.Request, req types.SubmitApplicationRequest, positionID uuid.UUID) {
	ctx := r.Context()

	candidate, err := s.db.FindCandidateByEmail(ctx, req.Email)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to look up candidate")
		return
	}

	if candidate == nil {
		candidate, err = s.db.CreateCandidate(ctx, &db.Candidate{
			Name:       req.Name,
			Email:      req.Email,
			Phone:      req.Phone,
			Skills:     req.Skills,
			Experience: req.Experience,
			ResumeURL:  req.ResumeURL,
		})
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Failed to create candidate")
			return
		}
	} else {
		candidate.Name = req.Name
		if req.Phone != "" {
			candidate.Phone = req.Phone
		}
		if len(req.Skills) > 0 {
			candidate.Skills = req.Skills
		}
		if req.Experience != "" {
			candidate.Experience = req.Experience
		}
		if req.ResumeURL != "" {
			candidate.ResumeURL = req.ResumeURL
		}
		candidate, err = s.db.UpdateCandidate(ctx, candidate)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Failed to update candidate")
			return
		}
	}

	score := match.DefaultScore
	position, err := s.db.GetPosition(ctx, positionID)
	if err != nil || position == nil {
		log.Printf("[APPLICATIONS] position %s lookup failed, using default match score", positionID)
	} else {
		score = match.Score(candidate.Skills, position.Requirements)
	}

	application, err := s.db.CreateApplication(ctx, &db.Application{
		CandidateID: candidate.ID,
		PositionID:  positionID,
		Status:      db.StatusNew,
		MatchScore:  score,
		CoverLetter: req.CoverLetter,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create application")
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{
		"application": application,
		"candidate":   candidate,
	})
}

// handleListApplications lists applications with their candidates for the
// dashboard, optionally filtered by position and status.
func (s *Server) handleListApplications(w http.ResponseWriter, r *http.Request) {
	filters := db.ApplicationFilters{
		Status: r.URL.Query().Get("status"),
	}

	if positionIDStr := r.URL.Query().Get("positionId"); positionIDStr != "" {
		positionID, err := uuid.Parse(positionIDStr)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid position ID")
			return
		}
		filters.PositionID = positionID
	}
	if filters.Status != "" && !db.ValidStatus(filters.Status) {
		s.errorResponse(w, http.StatusBadRequest, "Invalid status")
		return
	}

	applications, err := s.db.ListApplications(r.Context(), filters)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to fetch applications")
		return
	}

	s.jsonResponse(w, http.StatusOK, applications)
}

func (s *Server) handleGetApplication(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid application ID")
		return
	}

	application, err := s.db.GetApplication(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to fetch application")
		return
	}
	if application == nil {
		s.errorResponse(w, http.StatusNotFound, "Application not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, application)
}

func (s *Server) handleUpdateApplication(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid application ID")
		return
	}

	var req types.UpdateApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	application, err := s.db.UpdateApplication(r.Context(), id, db.ApplicationUpdate{
		Status: req.Status,
		Notes:  req.Notes,
		Rating: req.Rating,
	})
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, application)
}
