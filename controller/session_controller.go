package controller

import (
	"context"
	"elevatorops-console/console"
	"elevatorops-console/utils/logger"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type SessionController struct {
	ctx      context.Context
	sessions *console.Manager
	logger   logger.Logger
}

func NewSessionController(ctx context.Context, sessions *console.Manager, logger logger.Logger) *SessionController {
	return &SessionController{
		ctx:      ctx,
		sessions: sessions,
		logger:   logger,
	}
}

// OpenSession handles POST /sessions
func (h *SessionController) OpenSession(c *gin.Context) {
	w := h.sessions.Open()
	respondOK(c, http.StatusCreated, "Session opened", gin.H{"sessionId": w.ID})
}

// CloseSession handles DELETE /sessions/:sid
func (h *SessionController) CloseSession(c *gin.Context) {
	if err := h.sessions.Close(c.Param("sid")); err != nil {
		respondError(c, "Failed to close session", err)
		return
	}
	respondOK(c, http.StatusOK, "Session closed", nil)
}

// GetScreen handles GET /sessions/:sid/screens/:screen. The first read of a
// screen loads it.
func (h *SessionController) GetScreen(c *gin.Context) {
	screen, ok := h.screen(c)
	if !ok {
		return
	}
	// a failed load still returns the snapshot with its error marker
	if err := screen.Sync(c.Request.Context()); err != nil {
		h.logger.Warnf("Screen %s failed to load: %v", screen.Collection(), err)
	}
	respondOK(c, http.StatusOK, "Screen retrieved", screen.Snapshot())
}

// UpdateScreen handles PATCH /sessions/:sid/screens/:screen
func (h *SessionController) UpdateScreen(c *gin.Context) {
	screen, ok := h.screen(c)
	if !ok {
		return
	}
	var req console.ScreenUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed to bind JSON:", err)
		respondBadRequest(c, err)
		return
	}
	if err := console.Apply(c.Request.Context(), screen, req); err != nil {
		h.logger.Warnf("Screen %s fetch failed after update: %v", screen.Collection(), err)
	}
	respondOK(c, http.StatusOK, "Screen updated", screen.Snapshot())
}

// RefreshScreen handles POST /sessions/:sid/screens/:screen/refresh
func (h *SessionController) RefreshScreen(c *gin.Context) {
	h.fetch(c, "refreshed", func(ctx context.Context, s console.Screen) error { return s.Refresh(ctx, nil) })
}

// RetryScreen handles POST /sessions/:sid/screens/:screen/retry
func (h *SessionController) RetryScreen(c *gin.Context) {
	h.fetch(c, "reloaded", func(ctx context.Context, s console.Screen) error { return s.Retry(ctx) })
}

// DismissScreenError handles POST /sessions/:sid/screens/:screen/dismiss
func (h *SessionController) DismissScreenError(c *gin.Context) {
	screen, ok := h.screen(c)
	if !ok {
		return
	}
	screen.DismissError()
	respondOK(c, http.StatusOK, "Error dismissed", screen.Snapshot())
}

// fetch runs a screen fetch. Failures keep the resident data, so the snapshot
// is returned together with the error.
func (h *SessionController) fetch(c *gin.Context, verb string, run func(ctx context.Context, s console.Screen) error) {
	screen, ok := h.screen(c)
	if !ok {
		return
	}
	if err := run(c.Request.Context(), screen); err != nil {
		code, kind := statusFor(err)
		c.JSON(code, gin.H{
			"status":  "error",
			"code":    code,
			"message": fmt.Sprintf("Screen could not be %s", verb),
			"error":   gin.H{"type": kind, "details": err.Error()},
			"data":    screen.Snapshot(),
		})
		return
	}
	respondOK(c, http.StatusOK, "Screen "+verb, screen.Snapshot())
}

func (h *SessionController) screen(c *gin.Context) (console.Screen, bool) {
	w, err := h.sessions.Get(c.Param("sid"))
	if err != nil {
		respondError(c, "Unknown session", err)
		return nil, false
	}
	screen, ok := w.Screen(c.Param("screen"))
	if !ok {
		respondError(c, "Unknown screen", fmt.Errorf("%w: %q", console.ErrScreenNotFound, c.Param("screen")))
		return nil, false
	}
	return screen, true
}
