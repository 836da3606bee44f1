// Package chi exposes the search pipeline over HTTP.
package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	chiv5 "github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/threadress/stylerank/internal/domain"
	healthuc "github.com/threadress/stylerank/internal/usecase/health"
	searchuc "github.com/threadress/stylerank/internal/usecase/search"
)

// searchService runs the query pipeline.
type searchService interface {
	Search(ctx context.Context, q domain.Query) (*searchuc.Response, error)
	MultiSearch(ctx context.Context, q domain.Query) (*searchuc.Response, error)
}

// healthService aggregates component checks.
type healthService interface {
	Check(ctx context.Context) healthuc.Report
}

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// sentinelStatus maps a domain sentinel to its HTTP representation.
type sentinelStatus struct {
	sentinel error
	status   int
	code     string
}

var sentinelTable = []sentinelStatus{
	{domain.ErrInvalidRequest, http.StatusBadRequest, "invalid_request"},
	{domain.ErrRetrievalFailed, http.StatusBadGateway, "retrieval_failed"},
	{domain.ErrNotReady, http.StatusServiceUnavailable, "not_ready"},
}

// Server is the HTTP API server.
type Server struct {
	search searchService
	health healthService
	logger *zap.Logger
}

// NewServer creates the HTTP API server.
func NewServer(search searchService, health healthService, logger *zap.Logger) *Server {
	return &Server{search: search, health: health, logger: logger}
}

// Register mounts all API routes on the router.
func (s *Server) Register(r chiv5.Router) {
	r.Post("/api/v1/search", s.handleSearch)
	r.Post("/api/v1/search/multi", s.handleMultiSearch)
	r.Get("/health", s.handleHealth)
	r.Get("/metrics", s.handleMetrics)
}

// searchRequest is the request body for both search endpoints.
type searchRequest struct {
	Query            string          `json:"q"`
	ImageURL         string          `json:"image_url,omitempty"`
	K                int             `json:"k,omitempty"`
	Weights          *domain.Weights `json:"weights,omitempty"`
	Filters          *domain.Filters `json:"filters,omitempty"`
	IncludeBreakdown bool            `json:"include_breakdown,omitempty"`
}

func (req searchRequest) toQuery() domain.Query {
	q := domain.Query{
		Text:     req.Query,
		ImageURL: req.ImageURL,
		K:        req.K,
	}
	if req.Weights != nil {
		q.Weights = *req.Weights
	}
	if req.Filters != nil {
		q.Filters = *req.Filters
	}
	return q
}

// handleSearch handles POST /api/v1/search.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeSearchRequest(w, r)
	if !ok {
		return
	}

	resp, err := s.search.Search(r.Context(), req.toQuery())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	if !req.IncludeBreakdown {
		stripBreakdown(resp)
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleMultiSearch handles POST /api/v1/search/multi.
func (s *Server) handleMultiSearch(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeSearchRequest(w, r)
	if !ok {
		return
	}

	resp, err := s.search.MultiSearch(r.Context(), req.toQuery())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	if !req.IncludeBreakdown {
		stripBreakdown(resp)
	}
	writeJSON(w, http.StatusOK, resp)
}

// stripBreakdown drops the per-signal breakdown from the response when
// the caller did not ask for it.
func stripBreakdown(resp *searchuc.Response) {
	for i := range resp.Results {
		resp.Results[i].Signals = nil
	}
}

func (s *Server) decodeSearchRequest(w http.ResponseWriter, r *http.Request) (searchRequest, bool) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid request body: "+err.Error())
		return searchRequest{}, false
	}
	return req, true
}

// handleHealth handles GET /health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status == healthuc.Unhealthy {
		httpStatus = http.StatusServiceUnavailable
	}
	writeJSON(w, httpStatus, report)
}

// handleMetrics handles GET /metrics.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	for _, entry := range sentinelTable {
		if errors.Is(err, entry.sentinel) {
			s.logger.Warn("request failed", zap.Error(err))
			writeError(w, entry.status, entry.code, entry.sentinel.Error())
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}
