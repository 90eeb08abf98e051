package chi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chirouter "github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/coursefind/coursefind/internal/domain"
	"github.com/coursefind/coursefind/internal/domain/course"
	"github.com/coursefind/coursefind/internal/domain/search/plan"
	"github.com/coursefind/coursefind/internal/domain/search/result"
	healthuc "github.com/coursefind/coursefind/internal/usecase/health"
	searchuc "github.com/coursefind/coursefind/internal/usecase/search"
	suggestuc "github.com/coursefind/coursefind/internal/usecase/suggest"
)

// --- Mocks ---

type mockSearchRepo struct {
	hits      []course.Course
	totalHits int
	searchErr error
	getCourse course.Course
	getErr    error
	lastPlan  plan.Plan
}

func (m *mockSearchRepo) Search(_ context.Context, p plan.Plan) ([]course.Course, int, error) {
	m.lastPlan = p
	return m.hits, m.totalHits, m.searchErr
}

func (m *mockSearchRepo) Get(_ context.Context, _ string) (course.Course, error) {
	return m.getCourse, m.getErr
}

type mockSuggestRepo struct {
	values []string
	err    error
}

func (m *mockSuggestRepo) Suggest(_ context.Context, _, _ string, _ int) ([]string, error) {
	return m.values, m.err
}

type mockPinger struct{ err error }

func (m *mockPinger) Ping(_ context.Context) error { return m.err }

type testServer struct {
	router     chirouter.Router
	searchRepo *mockSearchRepo
	pinger     *mockPinger
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	searchRepo := &mockSearchRepo{}
	suggestRepo := &mockSuggestRepo{}
	pinger := &mockPinger{}

	srv := NewServer(
		searchuc.New(searchRepo),
		suggestuc.New(suggestRepo, 10),
		healthuc.New(pinger, nil, "courses"),
		zap.NewNop(),
	)

	r := chirouter.NewRouter()
	srv.Mount(r)
	return &testServer{router: r, searchRepo: searchRepo, pinger: pinger}
}

func (ts *testServer) do(t *testing.T, method, target string, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, http.NoBody)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	ts.router.ServeHTTP(rr, req)
	return rr
}

// --- GET /api/search ---

func TestSearchCourses_OK(t *testing.T) {
	ts := newTestServer(t)
	ts.searchRepo.hits = []course.Course{{ID: "c1", Title: "Algebra"}}
	ts.searchRepo.totalHits = 1

	rr := ts.do(t, "GET", "/api/search?q=algebra", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}

	var page result.Page
	if err := json.NewDecoder(rr.Body).Decode(&page); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if page.TotalHits != 1 || len(page.Results) != 1 || page.Results[0].ID != "c1" {
		t.Errorf("unexpected page: %+v", page)
	}
	if page.TotalPages != 1 || page.HasNextPage || page.HasPreviousPage {
		t.Errorf("unexpected pagination: %+v", page)
	}
}

func TestSearchCourses_QueryParamsReachPlan(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.do(t, "GET", "/api/search?q=robot&minAge=6&maxAge=10&minPrice=5&maxPrice=80&category=STEM&type=COURSE&sort=priceAsc&page=1&size=20", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}

	p := ts.searchRepo.lastPlan
	if len(p.Must) != 1 || p.Must[0].Query != "robot" {
		t.Errorf("unexpected text clauses: %+v", p.Must)
	}
	if len(p.Ranges) != 4 {
		t.Errorf("expected 4 range clauses, got %+v", p.Ranges)
	}
	if len(p.Terms) != 2 {
		t.Errorf("expected 2 term clauses, got %+v", p.Terms)
	}
	if p.Sort.Field != "price" || p.Sort.Descending {
		t.Errorf("unexpected sort: %+v", p.Sort)
	}
	if p.Offset != 20 || p.Limit != 20 {
		t.Errorf("unexpected window: offset=%d limit=%d", p.Offset, p.Limit)
	}
}

func TestSearchCourses_LegacySortAlias(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.do(t, "GET", "/api/search?sort=upcoming", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if ts.searchRepo.lastPlan.Sort.Field != "next_session_date" {
		t.Errorf("legacy upcoming sort must map to session date: %+v", ts.searchRepo.lastPlan.Sort)
	}
}

func TestSearchCourses_UnparsableNumber_400(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.do(t, "GET", "/api/search?minAge=six", "")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
}

func TestSearchCourses_InvalidSize_400(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.do(t, "GET", "/api/search?size=0", "")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}

	var errResp errorResponse
	if err := json.NewDecoder(rr.Body).Decode(&errResp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if errResp.Code != codeInvalidRequest {
		t.Errorf("error code = %s, want %s", errResp.Code, codeInvalidRequest)
	}
}

func TestSearchCourses_BackendUnavailable_503(t *testing.T) {
	ts := newTestServer(t)
	ts.searchRepo.searchErr = domain.ErrBackendUnavailable

	rr := ts.do(t, "GET", "/api/search?q=algebra", "")
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rr.Code)
	}
}

func TestSearchCourses_BackendError_502(t *testing.T) {
	ts := newTestServer(t)
	ts.searchRepo.searchErr = domain.ErrBackendError

	rr := ts.do(t, "GET", "/api/search?q=algebra", "")
	if rr.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rr.Code)
	}
}

// --- POST /api/search ---

func TestSearchCoursesBody_OK(t *testing.T) {
	ts := newTestServer(t)
	ts.searchRepo.totalHits = 25
	ts.searchRepo.hits = []course.Course{{ID: "c1"}}

	body := `{"query":"chess","minAge":8,"size":10,"page":2,"fuzzy":true}`
	rr := ts.do(t, "POST", "/api/search", body)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}

	p := ts.searchRepo.lastPlan
	if len(p.Must) != 1 || !p.Must[0].Fuzzy {
		t.Errorf("unexpected text clauses: %+v", p.Must)
	}
	if p.Offset != 20 {
		t.Errorf("offset = %d, want 20", p.Offset)
	}

	var page result.Page
	if err := json.NewDecoder(rr.Body).Decode(&page); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !page.HasPreviousPage || page.HasNextPage {
		t.Errorf("page 2 of 3 flags wrong: %+v", page)
	}
}

func TestSearchCoursesBody_MalformedJSON_400(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.do(t, "POST", "/api/search", `{"query": `)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
}

// --- GET /api/suggest ---

func TestSuggestCourses_OK(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.do(t, "GET", "/api/suggest?field=category&prefix=Ma", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}

	var resp struct {
		Suggestions []string `json:"suggestions"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Suggestions == nil {
		t.Error("suggestions must be an array, not null")
	}
}

// --- GET /api/courses/{id} ---

func TestGetCourse_OK(t *testing.T) {
	ts := newTestServer(t)
	ts.searchRepo.getCourse = course.Course{ID: "c1", Title: "Algebra"}

	rr := ts.do(t, "GET", "/api/courses/c1", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}

	var c course.Course
	if err := json.NewDecoder(rr.Body).Decode(&c); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if c.Title != "Algebra" {
		t.Errorf("unexpected course: %+v", c)
	}
}

func TestGetCourse_NotFound_404(t *testing.T) {
	ts := newTestServer(t)
	ts.searchRepo.getErr = domain.ErrNotFound

	rr := ts.do(t, "GET", "/api/courses/missing", "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
}

// --- GET /health ---

func TestHealthCheck_OK(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.do(t, "GET", "/health", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
}

func TestHealthCheck_Degraded_503(t *testing.T) {
	ts := newTestServer(t)
	ts.pinger.err = domain.ErrBackendUnavailable

	rr := ts.do(t, "GET", "/health", "")
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rr.Code)
	}
}
