package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"session-task-api/internal/dto"
	"session-task-api/internal/response"
	"session-task-api/internal/service"
)

type SessionHandler struct {
	sessionService service.SessionService
	logger         *zap.Logger
}

func NewSessionHandler(sessionService service.SessionService, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
		logger:         logger,
	}
}

// CreateSession godoc
// @Summary      Create a session
// @Description  Creates a session with its initial participant list; the requester must be the sole Creator
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateSessionRequest true "Session creation request"
// @Success      201 {object} response.SuccessResponse{data=dto.SessionResponse} "Session created"
// @Failure      400 {object} response.ErrorResponse "Invalid request body or participant roles"
// @Failure      403 {object} response.ErrorResponse "Requester is not the Creator participant"
// @Failure      404 {object} response.ErrorResponse "A participant username does not exist"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /sessions [post]
func (h *SessionHandler) CreateSession(c *gin.Context) {
	requesterID, ok := currentUserID(c)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Not authenticated")
		return
	}

	var req dto.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	session, err := h.sessionService.CreateSession(c.Request.Context(), &req, requesterID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, session)
}

// GetCreatedSessions godoc
// @Summary      List sessions created by a user
// @Description  Returns the non-deleted sessions where the user holds the Creator role, newest first
// @Tags         sessions
// @Produce      json
// @Param        userName path string true "Username"
// @Success      200 {object} response.SuccessResponse{data=[]dto.SessionResponse} "Sessions, possibly empty"
// @Failure      404 {object} response.ErrorResponse "User not found"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /sessions/{userName} [get]
func (h *SessionHandler) GetCreatedSessions(c *gin.Context) {
	sessions, err := h.sessionService.ListCreatedSessions(c.Request.Context(), c.Param("userName"))
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, sessions)
}

// GetParticipantSessions godoc
// @Summary      List sessions where the user is a participant
// @Description  Returns non-deleted sessions where the user holds role User or Admin
// @Tags         sessions
// @Produce      json
// @Param        userName path string true "Username"
// @Success      200 {object} response.SuccessResponse{data=[]dto.SessionResponse} "Sessions"
// @Failure      404 {object} response.ErrorResponse "User not found or no sessions"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /sessions/participant/{userName} [get]
func (h *SessionHandler) GetParticipantSessions(c *gin.Context) {
	sessions, err := h.sessionService.ListParticipantSessions(c.Request.Context(), c.Param("userName"))
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, sessions)
}

// GetDeletedSessions godoc
// @Summary      List soft-deleted sessions created by a user
// @Description  Returns soft-deleted sessions the user created, available for restore
// @Tags         sessions
// @Produce      json
// @Param        userName path string true "Username"
// @Success      200 {object} response.SuccessResponse{data=[]dto.SessionResponse} "Deleted sessions"
// @Failure      404 {object} response.ErrorResponse "User not found or no deleted sessions"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /sessions/deleted/{userName} [get]
func (h *SessionHandler) GetDeletedSessions(c *gin.Context) {
	sessions, err := h.sessionService.ListDeletedSessions(c.Request.Context(), c.Param("userName"))
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, sessions)
}

// GetSessionDetail godoc
// @Summary      Get a session with its tasks
// @Description  Returns the session, its participants and its tasks; requester must participate
// @Tags         sessions
// @Produce      json
// @Param        sessionId path string true "Session ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.SessionDetailResponse} "Session detail"
// @Failure      400 {object} response.ErrorResponse "Invalid session ID"
// @Failure      403 {object} response.ErrorResponse "Requester is not a participant"
// @Failure      404 {object} response.ErrorResponse "Session not found"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /sessions/detail/{sessionId} [get]
func (h *SessionHandler) GetSessionDetail(c *gin.Context) {
	requesterID, ok := currentUserID(c)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Not authenticated")
		return
	}

	sessionID, err := uuid.Parse(c.Param("sessionId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid session ID")
		return
	}

	detail, err := h.sessionService.GetSessionDetail(c.Request.Context(), sessionID, requesterID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, detail)
}

// SoftDeleteSession godoc
// @Summary      Soft-delete a session
// @Description  Hides the session from default queries; it can be restored later
// @Tags         sessions
// @Produce      json
// @Param        sessionId path string true "Session ID (UUID)"
// @Success      200 {object} response.SuccessResponse "Session deleted"
// @Failure      400 {object} response.ErrorResponse "Invalid session ID"
// @Failure      404 {object} response.ErrorResponse "Session not found or already deleted"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /sessions/{sessionId} [delete]
func (h *SessionHandler) SoftDeleteSession(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("sessionId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid session ID")
		return
	}

	if err := h.sessionService.SoftDeleteSession(c.Request.Context(), sessionID); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, nil)
}

// RestoreSession godoc
// @Summary      Restore a soft-deleted session
// @Description  Clears the deleted flag so the session is visible again
// @Tags         sessions
// @Produce      json
// @Param        sessionId path string true "Session ID (UUID)"
// @Success      200 {object} response.SuccessResponse "Session restored"
// @Failure      400 {object} response.ErrorResponse "Invalid session ID"
// @Failure      404 {object} response.ErrorResponse "Session not found"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /sessions/restore/{sessionId} [put]
func (h *SessionHandler) RestoreSession(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("sessionId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid session ID")
		return
	}

	if err := h.sessionService.RestoreSession(c.Request.Context(), sessionID); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, nil)
}

// HardDeleteSession godoc
// @Summary      Permanently delete a session
// @Description  Removes the session, its participants and its tasks; irreversible
// @Tags         sessions
// @Produce      json
// @Param        sessionId path string true "Session ID (UUID)"
// @Success      200 {object} response.SuccessResponse "Session permanently deleted"
// @Failure      400 {object} response.ErrorResponse "Invalid session ID"
// @Failure      404 {object} response.ErrorResponse "Session not found"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /sessions/hard-delete/{sessionId} [delete]
func (h *SessionHandler) HardDeleteSession(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("sessionId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid session ID")
		return
	}

	if err := h.sessionService.HardDeleteSession(c.Request.Context(), sessionID); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, nil)
}
