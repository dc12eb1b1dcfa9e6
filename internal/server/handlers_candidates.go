package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/marisol/talentdesk/internal/db"
	"github.com/marisol/talentdesk/internal/types"
)

// handleListCandidates lists candidates, optionally narrowed to those who
// applied to a position or hold a given application status.
func (s *Server) handleListCandidates(w http.ResponseWriter, r *http.Request) {
	filters := db.CandidateFilters{
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

	candidates, err := s.db.ListCandidates(r.Context(), filters)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to fetch candidates")
		return
	}

	s.jsonResponse(w, http.StatusOK, candidates)
}

func (s *Server) handleGetCandidate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}

	candidate, err := s.db.GetCandidate(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to fetch candidate")
		return
	}
	if candidate == nil {
		s.errorResponse(w, http.StatusNotFound, "Candidate not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, candidate)
}

func (s *Server) handleUpdateCandidate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}

	var req types.UpdateCandidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	candidate, err := s.db.GetCandidate(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to fetch candidate")
		return
	}
	if candidate == nil {
		s.errorResponse(w, http.StatusNotFound, "Candidate not found")
		return
	}

	if req.Name != nil {
		candidate.Name = *req.Name
	}
	if req.Email != nil {
		candidate.Email = *req.Email
	}
	if req.Phone != nil {
		candidate.Phone = *req.Phone
	}
	if req.Skills != nil {
		candidate.Skills = req.Skills
	}
	if req.Experience != nil {
		candidate.Experience = *req.Experience
	}
	if req.Education != nil {
		candidate.Education = make([]db.Education, 0, len(req.Education))
		for _, e := range req.Education {
			candidate.Education = append(candidate.Education, db.Education{
				Institution: e.Institution,
				Degree:      e.Degree,
				Field:       e.Field,
				Year:        e.Year,
			})
		}
	}

	updated, err := s.db.UpdateCandidate(r.Context(), candidate)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, updated)
}
