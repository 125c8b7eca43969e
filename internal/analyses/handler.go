package analyses

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"supervisor-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the analysis pipeline.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/sessions/:id/analyze", h.analyzeSession)
}

func (h *Handler) analyzeSession(c *gin.Context) {
	sessionID := c.Param("id")
	if sessionID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "session id is required", nil)
		return
	}
	c.Set("sessionId", sessionID)

	payload, err := h.Svc.Run(c.Request.Context(), sessionID)
	if err != nil {
		var perr *PipelineError
		if errors.As(err, &perr) {
			respond.Error(c, statusForCode(perr.Code), perr.Code, perr.Message, detailsFor(perr))
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to analyze session", nil)
		return
	}

	respond.OK(c, gin.H{"analysis": payload})
}

func statusForCode(code string) int {
	switch code {
	case ErrorCodeNotFound:
		return http.StatusNotFound
	case ErrorCodeConfigurationMissing:
		return http.StatusServiceUnavailable
	case ErrorCodeEmptyResponse, ErrorCodeMalformedResponse, ErrorCodeInvalidSchema:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func detailsFor(perr *PipelineError) interface{} {
	if len(perr.Fields) == 0 {
		return nil
	}
	return gin.H{"violations": perr.Fields}
}
