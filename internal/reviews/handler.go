package reviews

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"supervisor-backend/internal/sessions"
	"supervisor-backend/internal/shared/server/middleware"
	"supervisor-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the reviews service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches review routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/sessions/:id/review", h.submitReview)
}

type submitRequest struct {
	FinalStatus string `json:"finalStatus"`
	Note        string `json:"note"`
}

func (h *Handler) submitReview(c *gin.Context) {
	sessionID := c.Param("id")
	if sessionID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "session id is required", nil)
		return
	}
	c.Set("sessionId", sessionID)

	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if req.FinalStatus == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "finalStatus is required", nil)
		return
	}

	supervisorID := middleware.SupervisorIDFromContext(c)
	review, err := h.Svc.Submit(c.Request.Context(), sessionID, supervisorID, req.FinalStatus, req.Note)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidStatus):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, sessions.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "session not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save review", nil)
		}
		return
	}

	respond.OK(c, gin.H{"review": review})
}
