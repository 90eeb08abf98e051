// Package chi exposes the catalog search API over HTTP.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/coursefind/coursefind/internal/domain"
	"github.com/coursefind/coursefind/internal/domain/search/request"
	"github.com/coursefind/coursefind/internal/metrics"
	healthuc "github.com/coursefind/coursefind/internal/usecase/health"
	searchuc "github.com/coursefind/coursefind/internal/usecase/search"
	suggestuc "github.com/coursefind/coursefind/internal/usecase/suggest"
)

// Error codes returned in the JSON error envelope.
const (
	codeBadRequest         = "bad_request"
	codeInvalidRequest     = "invalid_request"
	codeNotFound           = "not_found"
	codeCatalogUnavailable = "catalog_unavailable"
	codeCatalogError       = "catalog_error"
	codeInternalError      = "internal_error"
)

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server routes catalog API requests to the use case services.
type Server struct {
	search        *searchuc.Service
	suggest       *suggestuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	search *searchuc.Service,
	suggest *suggestuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		search:  search,
		suggest: suggest,
		health:  health,
		logger:  logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInvalidRequest, http.StatusBadRequest, codeInvalidRequest),
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, codeNotFound),
		sentinelHandler(domain.ErrBackendUnavailable, http.StatusServiceUnavailable, codeCatalogUnavailable),
		sentinelHandler(domain.ErrBackendError, http.StatusBadGateway, codeCatalogError),
	}
	return s
}

// Mount registers all API routes on the router.
func (s *Server) Mount(r chi.Router) {
	r.Get("/api/search", s.SearchCourses)
	r.Post("/api/search", s.SearchCoursesBody)
	r.Get("/api/suggest", s.SuggestCourses)
	r.Get("/api/courses/{id}", s.GetCourse)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// SearchCourses handles GET /api/search with query-string parameters.
func (s *Server) SearchCourses(w http.ResponseWriter, r *http.Request) {
	params, err := paramsFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}
	s.runSearch(w, r, params)
}

// SearchCoursesBody handles POST /api/search with a JSON body.
func (s *Server) SearchCoursesBody(w http.ResponseWriter, r *http.Request) {
	var body searchRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid request body: "+err.Error())
		return
	}
	s.runSearch(w, r, body.toParams())
}

func (s *Server) runSearch(w http.ResponseWriter, r *http.Request, params request.Params) {
	page, err := s.search.Search(r.Context(), params)
	if err != nil {
		metrics.SearchRequestsTotal.WithLabelValues(searchStatus(err)).Inc()
		s.handleDomainError(w, err)
		return
	}

	metrics.SearchRequestsTotal.WithLabelValues("ok").Inc()
	metrics.SearchHits.Observe(float64(page.TotalHits))
	writeJSON(w, http.StatusOK, page)
}

// SuggestCourses handles GET /api/suggest.
func (s *Server) SuggestCourses(w http.ResponseWriter, r *http.Request) {
	field := r.URL.Query().Get("field")
	if field == "" {
		field = "title"
	}
	prefix := r.URL.Query().Get("prefix")

	values, err := s.suggest.Suggest(r.Context(), field, prefix)
	if err != nil {
		metrics.SuggestRequestsTotal.WithLabelValues(field, "error").Inc()
		s.handleDomainError(w, err)
		return
	}

	metrics.SuggestRequestsTotal.WithLabelValues(field, "ok").Inc()
	writeJSON(w, http.StatusOK, map[string]any{"suggestions": values})
}

// GetCourse handles GET /api/courses/{id}.
func (s *Server) GetCourse(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, codeBadRequest, "course id is required")
		return
	}

	c, err := s.search.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, c)
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, map[string]any{
		"status": report.Status,
		"checks": report.Checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// searchRequestBody mirrors request.Params with JSON tags. Pointer
// fields distinguish "absent" from zero.
type searchRequestBody struct {
	Query    string   `json:"query"`
	MinAge   *int     `json:"minAge"`
	MaxAge   *int     `json:"maxAge"`
	MinPrice *float64 `json:"minPrice"`
	MaxPrice *float64 `json:"maxPrice"`
	Category string   `json:"category"`
	Type     string   `json:"type"`
	Sort     string   `json:"sort"`
	Fuzzy    bool     `json:"fuzzy"`
	Page     *int     `json:"page"`
	Size     *int     `json:"size"`
}

func (b *searchRequestBody) toParams() request.Params {
	return request.Params{
		Query:    b.Query,
		MinAge:   b.MinAge,
		MaxAge:   b.MaxAge,
		MinPrice: b.MinPrice,
		MaxPrice: b.MaxPrice,
		Category: b.Category,
		Type:     b.Type,
		Sort:     normalizeSort(b.Sort),
		Fuzzy:    b.Fuzzy,
		Page:     b.Page,
		Size:     b.Size,
	}
}

// paramsFromQuery extracts search parameters from the query string.
// Unparsable numeric values are rejected, not ignored.
func paramsFromQuery(r *http.Request) (request.Params, error) {
	q := r.URL.Query()

	params := request.Params{
		Query:    q.Get("q"),
		Category: q.Get("category"),
		Type:     q.Get("type"),
		Sort:     normalizeSort(q.Get("sort")),
		Fuzzy:    q.Get("fuzzy") == "true",
	}

	var err error
	if params.MinAge, err = intParam(q.Get("minAge"), "minAge"); err != nil {
		return request.Params{}, err
	}
	if params.MaxAge, err = intParam(q.Get("maxAge"), "maxAge"); err != nil {
		return request.Params{}, err
	}
	if params.MinPrice, err = floatParam(q.Get("minPrice"), "minPrice"); err != nil {
		return request.Params{}, err
	}
	if params.MaxPrice, err = floatParam(q.Get("maxPrice"), "maxPrice"); err != nil {
		return request.Params{}, err
	}
	if params.Page, err = intParam(q.Get("page"), "page"); err != nil {
		return request.Params{}, err
	}
	if params.Size, err = intParam(q.Get("size"), "size"); err != nil {
		return request.Params{}, err
	}

	return params, nil
}

// normalizeSort maps the legacy "upcoming" sort key onto its current name.
func normalizeSort(s string) string {
	if s == "upcoming" {
		return "dateAsc"
	}
	return s
}

func intParam(v, name string) (*int, error) {
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, errors.New(name + " must be an integer")
	}
	return &n, nil
}

func floatParam(v, name string) (*float64, error) {
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, errors.New(name + " must be a number")
	}
	return &f, nil
}

// searchStatus maps the domain error taxonomy onto a metric label.
func searchStatus(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		return "invalid"
	case errors.Is(err, domain.ErrBackendUnavailable):
		return "unavailable"
	default:
		return "error"
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrInvalidRequest,
		domain.ErrNotFound,
		domain.ErrBackendUnavailable,
		domain.ErrBackendError,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
