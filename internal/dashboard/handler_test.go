package dashboard

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"supervisor-backend/internal/shared/server/middleware"
)

func newDashboardRouter(t *testing.T) (*gin.Engine, fixture) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	f := newFixture(t)
	router := gin.New()
	router.Use(middleware.Auth())
	NewHandler(f.svc).RegisterRoutes(router.Group("/api/v1"))
	return router, f
}

func getAs(router *gin.Engine, path, supervisorID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if supervisorID != "" {
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: supervisorID})
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestListSessionsEndpoint(t *testing.T) {
	router, _ := newDashboardRouter(t)

	rec := getAs(router, "/api/v1/sessions", "sup-1")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Sessions []SessionSummary `json:"sessions"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body.Sessions) != 3 {
		t.Fatalf("expected 3 sessions, got %d", len(body.Sessions))
	}
}

func TestListSessionsRequiresAuth(t *testing.T) {
	router, _ := newDashboardRouter(t)

	rec := getAs(router, "/api/v1/sessions", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestGetSessionEndpoint(t *testing.T) {
	router, _ := newDashboardRouter(t)

	rec := getAs(router, "/api/v1/sessions/sess-0", "sup-1")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var detail SessionDetail
	if err := json.Unmarshal(rec.Body.Bytes(), &detail); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if detail.ID != "sess-0" || detail.Transcript == "" {
		t.Fatalf("unexpected detail: %+v", detail)
	}
}

func TestGetSessionNotFound(t *testing.T) {
	router, _ := newDashboardRouter(t)

	if rec := getAs(router, "/api/v1/sessions/missing", "sup-1"); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if rec := getAs(router, "/api/v1/sessions/sess-0", "other-sup"); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for foreign supervisor, got %d", rec.Code)
	}
}
