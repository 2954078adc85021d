package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/cleaning_tracker/internal/core/ports/services"
	"github.com/SscSPs/cleaning_tracker/internal/dto"
	"github.com/SscSPs/cleaning_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// sessionHandler handles HTTP requests for work sessions (entries).
type sessionHandler struct {
	sessionService portssvc.SessionSvcFacade
}

func newSessionHandler(ss portssvc.SessionSvcFacade) *sessionHandler {
	return &sessionHandler{sessionService: ss}
}

// RegisterSessionRoutes registers the /entries routes.
func RegisterSessionRoutes(rg *gin.RouterGroup, sessionService portssvc.SessionSvcFacade) {
	h := newSessionHandler(sessionService)

	entries := rg.Group("/entries")
	{
		entries.GET("", h.listSessions)
		entries.POST("", h.createSession)
		entries.DELETE("", h.deleteAllSessions)
		entries.POST("/backfill-miles", h.backfillMiles)
		entries.GET("/:id", h.getSession)
		entries.PUT("/:id", h.updateSession)
		entries.DELETE("/:id", h.deleteSession)
	}
}

// listSessions godoc
// @Summary List work sessions
// @Description Lists logged work sessions in the order they were recorded
// @Tags entries
// @Produce json
// @Param client_id query string false "Only sessions for this client"
// @Success 200 {array} dto.SessionResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/entries [get]
func (h *sessionHandler) listSessions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	clientID := c.Query("client_id")

	sessions, err := h.sessionService.ListSessions(c.Request.Context(), clientID)
	if err != nil {
		respondError(c, logger, err, "Failed to list entries")
		return
	}
	logger.Debug("Entries listed", slog.Int("count", len(sessions)), slog.String("client_id", clientID))
	c.JSON(http.StatusOK, dto.ToListSessionResponse(sessions))
}

// createSession godoc
// @Summary Log a work session
// @Description Records a session, pricing it at the current hourly rate
// @Tags entries
// @Accept json
// @Produce json
// @Param entry body dto.CreateSessionRequest true "Session details"
// @Success 201 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Client not found"
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/entries [post]
func (h *sessionHandler) createSession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, "Invalid request format: "+err.Error(), err)
		return
	}

	session, err := h.sessionService.CreateSession(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create entry")
		return
	}
	c.JSON(http.StatusCreated, dto.ToSessionResponse(session))
}

// getSession godoc
// @Summary Get a work session
// @Tags entries
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/entries/{id} [get]
func (h *sessionHandler) getSession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	session, err := h.sessionService.GetSessionByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to get entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToSessionResponse(session))
}

// updateSession godoc
// @Summary Edit a work session
// @Description Updates the supplied fields and reprices the session at its stored rate unless a new rate is given
// @Tags entries
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param entry body dto.UpdateSessionRequest true "Fields to change"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/entries/{id} [put]
func (h *sessionHandler) updateSession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, "Invalid request format: "+err.Error(), err)
		return
	}

	session, err := h.sessionService.UpdateSession(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, logger, err, "Failed to update entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToSessionResponse(session))
}

// deleteSession godoc
// @Summary Delete a work session
// @Tags entries
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.OKResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/entries/{id} [delete]
func (h *sessionHandler) deleteSession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.sessionService.DeleteSession(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, logger, err, "Failed to delete entry")
		return
	}
	c.JSON(http.StatusOK, dto.OKResponse{OK: true})
}

// deleteAllSessions godoc
// @Summary Clear all work sessions
// @Description Removes every session. Requires confirm=true.
// @Tags entries
// @Produce json
// @Param confirm query bool true "Must be true"
// @Success 200 {object} dto.OKResponse
// @Failure 400 {object} dto.ErrorResponse "Confirmation missing"
// @Security BearerAuth
// @Router /api/entries [delete]
func (h *sessionHandler) deleteAllSessions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.sessionService.DeleteAllSessions(c.Request.Context(), confirmed(c)); err != nil {
		respondError(c, logger, err, "Failed to clear entries")
		return
	}
	c.JSON(http.StatusOK, dto.OKResponse{OK: true})
}

// backfillMiles godoc
// @Summary Fill missing mileage from client defaults
// @Description Lists sessions with no miles whose client has default miles. Saves them only when apply=true.
// @Tags entries
// @Produce json
// @Param apply query bool false "Save the changes"
// @Success 200 {object} dto.BackfillMilesResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/entries/backfill-miles [post]
func (h *sessionHandler) backfillMiles(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	apply := c.Query("apply") == "true"

	changed, err := h.sessionService.BackfillMiles(c.Request.Context(), apply)
	if err != nil {
		respondError(c, logger, err, "Failed to backfill miles")
		return
	}
	c.JSON(http.StatusOK, dto.BackfillMilesResponse{Applied: apply, Changed: dto.ToListSessionResponse(changed)})
}
