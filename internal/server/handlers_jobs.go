package server

import (
	"encoding/json"
	"net/http"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/marisol/talentdesk/internal/docstore"
	"github.com/marisol/talentdesk/internal/server/middleware"
	"github.com/marisol/talentdesk/internal/types"
)

// handleListJobs lists job postings. The careers site calls this without a
// token, so by default only published listings are returned; the dashboard
// passes an explicit status filter.
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filters := docstore.JobFilters{
		Status:     query.Get("status"),
		Department: query.Get("department"),
		Location:   query.Get("location"),
		Type:       query.Get("type"),
	}
	if filters.Status == "" {
		filters.Status = docstore.JobStatusPublished
	} else if !docstore.ValidJobStatus(filters.Status) {
		s.errorResponse(w, http.StatusBadRequest, "Invalid status")
		return
	}
	if featuredStr := query.Get("featured"); featuredStr != "" {
		featured := featuredStr == "true"
		filters.Featured = &featured
	}

	jobs, err := s.docs.ListJobListings(r.Context(), filters)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to fetch jobs")
		return
	}

	s.jsonResponse(w, http.StatusOK, jobs)
}

func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	job, err := s.docs.GetJobListing(r.Context(), r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to fetch job")
		return
	}
	if job == nil {
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, job)
}

func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	var req types.CreateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	createdBy := ""
	if staffID, err := middleware.GetStaffID(r); err == nil {
		createdBy = staffID.String()
	}

	job, err := s.docs.CreateJobListing(r.Context(), &docstore.JobListing{
		Title:            req.Title,
		Department:       req.Department,
		Location:         req.Location,
		Type:             req.Type,
		Description:      req.Description,
		Requirements:     req.Requirements,
		Responsibilities: req.Responsibilities,
		Benefits:         req.Benefits,
		Salary: docstore.SalaryRange{
			Min:       req.Salary.Min,
			Max:       req.Salary.Max,
			Currency:  req.Salary.Currency,
			IsVisible: req.Salary.IsVisible,
		},
		Status:      req.Status,
		CreatedBy:   createdBy,
		Featured:    req.Featured,
		ClosingDate: req.ClosingDate,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create job")
		return
	}

	s.jsonResponse(w, http.StatusCreated, job)
}

func (s *Server) handleUpdateJob(w http.ResponseWriter, r *http.Request) {
	var req types.UpdateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	updates := bson.M{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Department != nil {
		updates["department"] = *req.Department
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.Type != nil {
		updates["type"] = *req.Type
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Requirements != nil {
		updates["requirements"] = req.Requirements
	}
	if req.Responsibilities != nil {
		updates["responsibilities"] = req.Responsibilities
	}
	if req.Benefits != nil {
		updates["benefits"] = req.Benefits
	}
	if req.Salary != nil {
		updates["salary"] = docstore.SalaryRange{
			Min:       req.Salary.Min,
			Max:       req.Salary.Max,
			Currency:  req.Salary.Currency,
			IsVisible: req.Salary.IsVisible,
		}
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.Featured != nil {
		updates["featured"] = *req.Featured
	}
	if req.ClosingDate != nil {
		updates["closingDate"] = *req.ClosingDate
	}
	if len(updates) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "No fields to update")
		return
	}

	job, err := s.docs.UpdateJobListing(r.Context(), r.PathValue("id"), updates)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to update job")
		return
	}
	if job == nil {
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, job)
}

func (s *Server) handleDeleteJob(w http.ResponseWriter, r *http.Request) {
	deleted, err := s.docs.DeleteJobListing(r.Context(), r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete job")
		return
	}
	if !deleted {
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Job deleted"})
}
