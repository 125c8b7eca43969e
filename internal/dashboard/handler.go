package dashboard

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"supervisor-backend/internal/sessions"
	"supervisor-backend/internal/shared/server/middleware"
	"supervisor-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the dashboard service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches session read routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/sessions", h.listSessions)
	rg.GET("/sessions/:id", h.getSession)
}

func (h *Handler) listSessions(c *gin.Context) {
	supervisorID := middleware.SupervisorIDFromContext(c)
	summaries, err := h.Svc.List(c.Request.Context(), supervisorID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list sessions", nil)
		return
	}
	respond.OK(c, gin.H{"sessions": summaries})
}

func (h *Handler) getSession(c *gin.Context) {
	sessionID := c.Param("id")
	if sessionID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "session id is required", nil)
		return
	}
	c.Set("sessionId", sessionID)

	supervisorID := middleware.SupervisorIDFromContext(c)
	detail, err := h.Svc.Get(c.Request.Context(), supervisorID, sessionID)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "session not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch session", nil)
		}
		return
	}
	respond.OK(c, detail)
}
