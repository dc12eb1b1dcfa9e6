package server

import (
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/marisol/talentdesk/internal/db"
	"github.com/marisol/talentdesk/internal/docstore"
)

// recentApplicationsLimit caps the recent-activity panel on the dashboard.
const recentApplicationsLimit = 5

// DashboardSummary holds the headline counts and the most recent
// applications shown on the dashboard.
type DashboardSummary struct {
	Applications   int                    `json:"applications"`
	NewApps        int                    `json:"new_applications"`
	Candidates     int                    `json:"candidates"`
	OpenJobs       int64                  `json:"open_jobs"`
	Interviews     int64                  `json:"interviews"`
	UpcomingRounds int64                  `json:"upcoming_interviews"`
	Recent         []db.ApplicationDetail `json:"recent_applications"`
}

// handleDashboardSummary gathers counts and recent activity from both
// stores concurrently.
func (s *Server) handleDashboardSummary(w http.ResponseWriter, r *http.Request) {
	var summary DashboardSummary

	g, ctx := errgroup.WithContext(r.Context())

	g.Go(func() error {
		count, err := s.db.CountApplications(ctx)
		summary.Applications = count
		return err
	})
	g.Go(func() error {
		count, err := s.db.CountApplicationsByStatus(ctx, "New")
		summary.NewApps = count
		return err
	})
	g.Go(func() error {
		count, err := s.db.CountCandidates(ctx)
		summary.Candidates = count
		return err
	})
	g.Go(func() error {
		count, err := s.docs.CountJobListings(ctx, docstore.JobFilters{Status: docstore.JobStatusPublished})
		summary.OpenJobs = count
		return err
	})
	g.Go(func() error {
		count, err := s.docs.CountInterviews(ctx, docstore.InterviewFilters{})
		summary.Interviews = count
		return err
	})
	g.Go(func() error {
		count, err := s.docs.CountInterviews(ctx, docstore.InterviewFilters{Status: docstore.InterviewStatusScheduled})
		summary.UpcomingRounds = count
		return err
	})
	g.Go(func() error {
		recent, err := s.db.ListApplications(ctx, db.ApplicationFilters{Limit: recentApplicationsLimit})
		summary.Recent = recent
		return err
	})

	if err := g.Wait(); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to build dashboard summary")
		return
	}

	s.jsonResponse(w, http.StatusOK, summary)
}
