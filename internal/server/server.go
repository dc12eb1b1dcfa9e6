// Package server provides the HTTP REST API for the recruitment platform.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/marisol/talentdesk/internal/config"
	"github.com/marisol/talentdesk/internal/db"
	"github.com/marisol/talentdesk/internal/docstore"
	"github.com/marisol/talentdesk/internal/server/middleware"
	"github.com/marisol/talentdesk/internal/server/ratelimit"
	"github.com/marisol/talentdesk/internal/storage"
)

// Server represents the HTTP server
type Server struct {
	httpServer    *http.Server
	db            *db.DB
	docs          *docstore.Store
	uploads       storage.Uploader
	rateLimiter   *ratelimit.Limiter
	jwtService    *JWTService
	staffService  *StaffService
	authHandler   *AuthHandler
	webhookSecret string
}

// New creates a new server instance, connecting to both backing stores.
func New(cfg *config.Config) (*Server, error) {
	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.EnsureSchema(context.Background()); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}

	docs, err := docstore.Connect(context.Background(), cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		database.Close()
		return nil, err
	}

	uploads, err := storage.NewLocalStorage(cfg.UploadDir, cfg.UploadBaseURL)
	if err != nil {
		database.Close()
		docs.Close(context.Background())
		return nil, err
	}

	s := &Server{
		db:            database,
		docs:          docs,
		uploads:       uploads,
		webhookSecret: cfg.WebhookSecret,
	}

	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		database.Close()
		docs.Close(context.Background())
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	s.staffService = NewStaffService(database, passwordConfig)

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		database.Close()
		docs.Close(context.Background())
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	s.jwtService = NewJWTService(jwtConfig)
	s.authHandler = NewAuthHandler(s.staffService, s.jwtService)

	mux := http.NewServeMux()
	s.routes(mux, cfg.UploadDir, cfg.UploadBaseURL)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes registers all endpoints. Dashboard endpoints require a valid
// session token; the intake endpoints are public so candidates can apply
// without an account.
func (s *Server) routes(mux *http.ServeMux, uploadDir, uploadBaseURL string) {
	auth := middleware.Auth(s.jwtService.AsTokenValidator())
	protected := func(h http.HandlerFunc) http.Handler {
		return auth(h)
	}

	mux.HandleFunc("GET /health", s.handleHealth)

	// Careers site: listings and candidate intake.
	mux.HandleFunc("GET /jobs", s.handleListJobs)
	mux.HandleFunc("GET /jobs/{id}", s.handleGetJob)
	mux.HandleFunc("POST /resume-parser", s.handleParseResume)
	mux.HandleFunc("GET /candidates/temporary", s.handleGetTemporaryCandidate)
	mux.HandleFunc("POST /applications", s.handleSubmitApplication)

	// Uploaded resumes.
	mux.Handle("GET "+uploadBaseURL+"/", http.StripPrefix(uploadBaseURL+"/", http.FileServer(http.Dir(uploadDir))))

	// Identity provider webhook.
	mux.HandleFunc("POST /webhooks/identity", s.handleIdentityWebhook)

	// Authentication.
	mux.HandleFunc("POST /auth/register", s.authHandler.Register)
	mux.HandleFunc("POST /auth/login", s.authHandler.Login)
	mux.Handle("PUT /auth/password", protected(s.handleUpdatePassword))

	// Dashboard: applications.
	mux.Handle("GET /applications", protected(s.handleListApplications))
	mux.Handle("GET /applications/{id}", protected(s.handleGetApplication))
	mux.Handle("PATCH /applications/{id}", protected(s.handleUpdateApplication))

	// Dashboard: candidates.
	mux.Handle("GET /candidates", protected(s.handleListCandidates))
	mux.Handle("GET /candidates/{id}", protected(s.handleGetCandidate))
	mux.Handle("PUT /candidates/{id}", protected(s.handleUpdateCandidate))

	// Dashboard: job listing management.
	mux.Handle("POST /jobs", protected(s.handleCreateJob))
	mux.Handle("PATCH /jobs/{id}", protected(s.handleUpdateJob))
	mux.Handle("DELETE /jobs/{id}", protected(s.handleDeleteJob))

	// Dashboard: positions applications are scored against.
	mux.Handle("GET /positions", protected(s.handleListPositions))
	mux.Handle("POST /positions", protected(s.handleCreatePosition))
	mux.Handle("GET /positions/{id}", protected(s.handleGetPosition))

	// Dashboard: interviews.
	mux.Handle("GET /interviews", protected(s.handleListInterviews))
	mux.Handle("POST /interviews", protected(s.handleScheduleInterview))
	mux.Handle("GET /interviews/{id}", protected(s.handleGetInterview))
	mux.Handle("PATCH /interviews/{id}", protected(s.handleUpdateInterview))
	mux.Handle("DELETE /interviews/{id}", protected(s.handleDeleteInterview))
	mux.Handle("POST /interviews/{id}/feedback", protected(s.handleInterviewFeedback))

	// Dashboard: summary counts.
	mux.Handle("GET /dashboard/summary", protected(s.handleDashboardSummary))
}

// Start begins listening for requests
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}

	s.db.Close()
	if err := s.docs.Close(ctx); err != nil {
		log.Printf("Error closing document store: %v", err)
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)
		if !allowed {
			s.setRateLimitHeaders(w, info)
			s.rateLimitResponse(w, info)
			return
		}

		s.setRateLimitHeaders(w, info)
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleUpdatePassword changes the authenticated account's password.
func (s *Server) handleUpdatePassword(w http.ResponseWriter, r *http.Request) {
	staffID, err := middleware.GetStaffID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	s.authHandler.UpdatePasswordWithStaffID(w, r, staffID)
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID extracts the client identifier from the request. Only the
// RemoteAddr IP is used; X-Forwarded-For is not trusted without a proxy.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())+1))
	s.jsonResponse(w, http.StatusTooManyRequests, map[string]any{
		"error":       "rate_limit_exceeded",
		"message":     "Too many requests, please try again later",
		"retry_after": int(info.RetryAfter.Seconds()) + 1,
	})
}
