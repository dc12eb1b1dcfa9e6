package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/marisol/talentdesk/internal/db"
	"github.com/marisol/talentdesk/internal/server/middleware"
	"github.com/marisol/talentdesk/internal/types"
)

func (s *Server) handleListPositions(w http.ResponseWriter, r *http.Request) {
	positions, err := s.db.ListPositions(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to fetch positions")
		return
	}

	s.jsonResponse(w, http.StatusOK, positions)
}

func (s *Server) handleCreatePosition(w http.ResponseWriter, r *http.Request) {
	var req types.CreatePositionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	var createdBy *uuid.UUID
	if staffID, err := middleware.GetStaffID(r); err == nil {
		createdBy = &staffID
	}

	position, err := s.db.CreatePosition(r.Context(), &db.Position{
		CreatedBy:    createdBy,
		Title:        req.Title,
		Department:   req.Department,
		Location:     req.Location,
		Type:         req.Type,
		Description:  req.Description,
		Requirements: req.Requirements,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create position")
		return
	}

	s.jsonResponse(w, http.StatusCreated, position)
}

func (s *Server) handleGetPosition(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid position ID")
		return
	}

	position, err := s.db.GetPosition(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to fetch position")
		return
	}
	if position == nil {
		s.errorResponse(w, http.StatusNotFound, "Position not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, position)
}
