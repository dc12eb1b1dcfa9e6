package server

import (
	"encoding/json"
	"net/http"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/marisol/talentdesk/internal/docstore"
	"github.com/marisol/talentdesk/internal/types"
)

func (s *Server) handleListInterviews(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filters := docstore.InterviewFilters{
		ApplicationID: query.Get("applicationId"),
		CandidateID:   query.Get("candidateId"),
		Status:        query.Get("status"),
	}
	if filters.Status != "" && !docstore.ValidInterviewStatus(filters.Status) {
		s.errorResponse(w, http.StatusBadRequest, "Invalid status")
		return
	}

	interviews, err := s.docs.ListInterviews(r.Context(), filters)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to fetch interviews")
		return
	}

	s.jsonResponse(w, http.StatusOK, interviews)
}

func (s *Server) handleScheduleInterview(w http.ResponseWriter, r *http.Request) {
	var req types.ScheduleInterviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	interview, err := s.docs.CreateInterview(r.Context(), &docstore.Interview{
		ApplicationID: req.ApplicationID,
		CandidateID:   req.CandidateID,
		Interviewers:  req.Interviewers,
		ScheduledFor:  req.ScheduledFor,
		Duration:      req.Duration,
		Type:          req.Type,
		Location:      req.Location,
		MeetingURL:    req.MeetingURL,
		Notes:         req.Notes,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to schedule interview")
		return
	}

	s.jsonResponse(w, http.StatusCreated, interview)
}

func (s *Server) handleGetInterview(w http.ResponseWriter, r *http.Request) {
	interview, err := s.docs.GetInterview(r.Context(), r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to fetch interview")
		return
	}
	if interview == nil {
		s.errorResponse(w, http.StatusNotFound, "Interview not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, interview)
}

func (s *Server) handleUpdateInterview(w http.ResponseWriter, r *http.Request) {
	var req types.UpdateInterviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	updates := bson.M{}
	if req.Interviewers != nil {
		updates["interviewers"] = req.Interviewers
	}
	if req.ScheduledFor != nil {
		updates["scheduledFor"] = *req.ScheduledFor
	}
	if req.Duration != nil {
		updates["duration"] = *req.Duration
	}
	if req.Type != nil {
		updates["type"] = *req.Type
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.MeetingURL != nil {
		updates["meetingUrl"] = *req.MeetingURL
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if len(updates) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "No fields to update")
		return
	}

	interview, err := s.docs.UpdateInterview(r.Context(), r.PathValue("id"), updates)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to update interview")
		return
	}
	if interview == nil {
		s.errorResponse(w, http.StatusNotFound, "Interview not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, interview)
}

func (s *Server) handleDeleteInterview(w http.ResponseWriter, r *http.Request) {
	deleted, err := s.docs.DeleteInterview(r.Context(), r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete interview")
		return
	}
	if !deleted {
		s.errorResponse(w, http.StatusNotFound, "Interview not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Interview deleted"})
}

func (s *Server) handleInterviewFeedback(w http.ResponseWriter, r *http.Request) {
	var req types.InterviewFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	interview, err := s.docs.AddInterviewFeedback(r.Context(), r.PathValue("id"), docstore.Feedback{
		Interviewer: req.Interviewer,
		Rating:      req.Rating,
		Comments:    req.Comments,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to add feedback")
		return
	}
	if interview == nil {
		s.errorResponse(w, http.StatusNotFound, "Interview not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, interview)
}
