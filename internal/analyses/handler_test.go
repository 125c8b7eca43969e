package analyses

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"supervisor-backend/internal/llm"
	"supervisor-backend/internal/sessions"
	"supervisor-backend/internal/shared/server/respond"
)

func newAnalyzeRouter(t *testing.T, client llm.Client) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sessRepo := sessions.NewMemoryRepo()
	if err := sessRepo.Create(context.Background(), sessions.Session{
		ID:           "sess-1",
		FellowID:     "fellow-1",
		FellowName:   "Amina",
		GroupID:      "group-1",
		GroupCode:    "GM-100",
		SupervisorID: "sup-1",
		CompletedAt:  time.Now().UTC(),
		Transcript:   "Fellow: welcome back, everyone.",
		Status:       sessions.StatusAwaitingAnalysis,
	}); err != nil {
		t.Fatalf("seed session: %v", err)
	}

	svc := &Service{
		Repo:          NewMemoryRepo(),
		Sessions:      sessRepo,
		LLM:           client,
		Rubric:        "You are a clinical supervisor reviewing a transcript.",
		Model:         "llama-3.3-70b-versatile",
		PromptVersion: "v1",
	}

	router := gin.New()
	NewHandler(svc).RegisterRoutes(router.Group("/api/v1"))
	return router
}

func TestAnalyzeEndpointSuccess(t *testing.T) {
	router := newAnalyzeRouter(t, &stubLLM{response: safeResponse})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/sess-1/analyze", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Analysis AnalysisPayload `json:"analysis"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Analysis.Risk.Flag != FlagSafe {
		t.Fatalf("expected SAFE flag in response, got %q", body.Analysis.Risk.Flag)
	}
}

func TestAnalyzeEndpointErrors(t *testing.T) {
	tests := []struct {
		name       string
		client     llm.Client
		path       string
		wantStatus int
		wantCode   string
	}{
		{
			name:       "unknown session",
			client:     &stubLLM{response: safeResponse},
			path:       "/api/v1/sessions/missing/analyze",
			wantStatus: http.StatusNotFound,
			wantCode:   ErrorCodeNotFound,
		},
		{
			name:       "not configured",
			client:     &stubLLM{err: llm.ErrNotConfigured},
			path:       "/api/v1/sessions/sess-1/analyze",
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   ErrorCodeConfigurationMissing,
		},
		{
			name:       "empty model output",
			client:     &stubLLM{response: ""},
			path:       "/api/v1/sessions/sess-1/analyze",
			wantStatus: http.StatusBadGateway,
			wantCode:   ErrorCodeEmptyResponse,
		},
		{
			name:       "malformed model output",
			client:     &stubLLM{response: "```json\nnope\n```"},
			path:       "/api/v1/sessions/sess-1/analyze",
			wantStatus: http.StatusBadGateway,
			wantCode:   ErrorCodeMalformedResponse,
		},
		{
			name:       "schema violation",
			client:     &stubLLM{response: `{"summary": "s"}`},
			path:       "/api/v1/sessions/sess-1/analyze",
			wantStatus: http.StatusBadGateway,
			wantCode:   ErrorCodeInvalidSchema,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			router := newAnalyzeRouter(t, tt.client)

			req := httptest.NewRequest(http.MethodPost, tt.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d: %s", tt.wantStatus, rec.Code, rec.Body.String())
			}

			var body respond.ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode error body: %v", err)
			}
			if body.Error.Code != tt.wantCode {
				t.Fatalf("expected code %s, got %s", tt.wantCode, body.Error.Code)
			}
		})
	}
}

func TestAnalyzeEndpointSchemaViolationDetails(t *testing.T) {
	router := newAnalyzeRouter(t, &stubLLM{response: `{"summary": "s", "risk": {"flag": "MAYBE"}}`})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/sess-1/analyze", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}

	var body struct {
		Error struct {
			Code    string `json:"code"`
			Details struct {
				Violations []string `json:"violations"`
			} `json:"details"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if len(body.Error.Details.Violations) == 0 {
		t.Fatalf("expected violation paths in error details, got %s", rec.Body.String())
	}
}
