package supervisors

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"supervisor-backend/internal/shared/server/middleware"
	"supervisor-backend/internal/shared/server/respond"
)

const cookieMaxAge = 60 * 60 * 8

// Handler implements the mock supervisor sign-in flow: the session cookie
// carries the supervisor id and is the whole session.
type Handler struct {
	Repo   Repo
	Secure bool
}

// NewHandler constructs a Handler. secure controls the cookie's Secure flag.
func NewHandler(repo Repo, secure bool) *Handler {
	return &Handler{Repo: repo, Secure: secure}
}

// RegisterRoutes attaches auth routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/signin", h.signIn)
	rg.POST("/auth/signout", h.signOut)
	rg.GET("/auth/me", h.me)
}

type signInRequest struct {
	Email string `json:"email"`
}

func (h *Handler) signIn(c *gin.Context) {
	var req signInRequest
	// Body is optional: with no email the first supervisor signs in.
	_ = c.ShouldBindJSON(&req)

	var (
		supervisor Supervisor
		err        error
	)
	if email := strings.TrimSpace(req.Email); email != "" {
		supervisor, err = h.Repo.GetByEmail(c.Request.Context(), email)
	} else {
		supervisor, err = h.Repo.First(c.Request.Context())
	}
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "supervisor not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to sign in", nil)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, supervisor.ID, cookieMaxAge, "/", "", h.Secure, true)
	respond.OK(c, gin.H{"supervisor": supervisor})
}

func (h *Handler) signOut(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", h.Secure, true)
	respond.OK(c, gin.H{"ok": true})
}

func (h *Handler) me(c *gin.Context) {
	supervisorID, err := c.Cookie(middleware.SessionCookie)
	if err != nil || strings.TrimSpace(supervisorID) == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "Sign in required", nil)
		return
	}
	supervisor, err := h.Repo.GetByID(c.Request.Context(), supervisorID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "Sign in required", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load supervisor", nil)
		return
	}
	respond.OK(c, gin.H{"supervisor": supervisor})
}
