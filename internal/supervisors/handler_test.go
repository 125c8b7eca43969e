package supervisors

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"supervisor-backend/internal/shared/server/middleware"
)

func newAuthFixture(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := NewMemoryRepo()
	base := time.Now().UTC()
	for i, s := range []Supervisor{
		{ID: "sup-1", Name: "Dr. Njeri", Email: "njeri@example.org", Tier: "SUPERVISOR"},
		{ID: "sup-2", Name: "Dr. Otieno", Email: "otieno@example.org", Tier: "SUPERVISOR"},
	} {
		s.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		if err := repo.Create(context.Background(), s); err != nil {
			t.Fatalf("seed supervisor: %v", err)
		}
	}

	router := gin.New()
	NewHandler(repo, false).RegisterRoutes(router.Group("/api/v1"))
	return router
}

func sessionCookieFrom(resp *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range resp.Result().Cookies() {
		if c.Name == middleware.SessionCookie {
			return c
		}
	}
	return nil
}

func TestSignInDefaultsToFirstSupervisor(t *testing.T) {
	router := newAuthFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signin", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	cookie := sessionCookieFrom(resp)
	if cookie == nil || cookie.Value != "sup-1" {
		t.Fatalf("expected session cookie for sup-1, got %+v", cookie)
	}
	if !cookie.HttpOnly {
		t.Fatalf("session cookie must be http-only")
	}

	var body struct {
		Supervisor Supervisor `json:"supervisor"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Supervisor.Name != "Dr. Njeri" {
		t.Fatalf("expected first supervisor, got %+v", body.Supervisor)
	}
}

func TestSignInByEmail(t *testing.T) {
	router := newAuthFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signin",
		strings.NewReader(`{"email": "otieno@example.org"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	cookie := sessionCookieFrom(resp)
	if cookie == nil || cookie.Value != "sup-2" {
		t.Fatalf("expected session cookie for sup-2, got %+v", cookie)
	}
}

func TestSignInUnknownEmail(t *testing.T) {
	router := newAuthFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signin",
		strings.NewReader(`{"email": "nobody@example.org"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestMe(t *testing.T) {
	router := newAuthFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "sup-1"})
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var body struct {
		Supervisor Supervisor `json:"supervisor"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Supervisor.ID != "sup-1" {
		t.Fatalf("expected sup-1, got %+v", body.Supervisor)
	}
}

func TestMeWithoutCookie(t *testing.T) {
	router := newAuthFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

func TestMeWithStaleCookie(t *testing.T) {
	router := newAuthFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "deleted-sup"})
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown supervisor, got %d", resp.Code)
	}
}

func TestSignOutClearsCookie(t *testing.T) {
	router := newAuthFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signout", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "sup-1"})
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	cookie := sessionCookieFrom(resp)
	if cookie == nil {
		t.Fatalf("expected a session cookie on sign-out")
	}
	if cookie.Value != "" || cookie.MaxAge >= 0 {
		t.Fatalf("expected cleared session cookie, got %+v", cookie)
	}
}
