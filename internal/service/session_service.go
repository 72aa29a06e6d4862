package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"session-task-api/internal/domain"
	"session-task-api/internal/dto"
	"session-task-api/internal/metrics"
	"session-task-api/internal/repository"
	"session-task-api/internal/response"
)

// SessionService defines the interface for session lifecycle business logic
type SessionService interface {
	CreateSession(ctx context.Context, req *dto.CreateSessionRequest, requesterID uuid.UUID) (*dto.SessionResponse, error)
	ListCreatedSessions(ctx context.Context, userName string) ([]*dto.SessionResponse, error)
	ListParticipantSessions(ctx context.Context, userName string) ([]*dto.SessionResponse, error)
	ListDeletedSessions(ctx context.Context, userName string) ([]*dto.SessionResponse, error)
	GetSessionDetail(ctx context.Context, sessionID, requesterID uuid.UUID) (*dto.SessionDetailResponse, error)
	SoftDeleteSession(ctx context.Context, sessionID uuid.UUID) error
	RestoreSession(ctx context.Context, sessionID uuid.UUID) error
	HardDeleteSession(ctx context.Context, sessionID uuid.UUID) error
}

// sessionServiceImpl is the implementation of SessionService
type sessionServiceImpl struct {
	sessionRepo repository.SessionRepository
	userRepo    repository.UserRepository
	taskRepo    repository.TaskRepository
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewSessionService creates a new instance of SessionService
func NewSessionService(
	sessionRepo repository.SessionRepository,
	userRepo repository.UserRepository,
	taskRepo repository.TaskRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) SessionService {
	return &sessionServiceImpl{
		sessionRepo: sessionRepo,
		userRepo:    userRepo,
		taskRepo:    taskRepo,
		metrics:     m,
		logger:      logger,
	}
}

// CreateSession creates a session together with its participant rows.
// Participant usernames are resolved up front; an unresolvable name aborts
// the whole operation before anything is persisted.
func (s *sessionServiceImpl) CreateSession(ctx context.Context, req *dto.CreateSessionRequest, requesterID uuid.UUID) (*dto.SessionResponse, error) {
	if err := domain.ValidateSessionInput(req.Title, req.Description); err != nil {
		return nil, response.NewAppError(response.ErrCodeValidation, err.Error(), "")
	}
	if len(req.Participants) == 0 {
		return nil, response.NewAppError(response.ErrCodeValidation, domain.ErrParticipantsEmpty.Error(), "")
	}

	seen := make(map[string]bool, len(req.Participants))
	participants := make([]*domain.Participant, 0, len(req.Participants))
	views := make([]dto.ParticipantResponse, 0, len(req.Participants))
	creators := 0
	var creatorID uuid.UUID

	for _, entry := range req.Participants {
		if seen[entry.UserName] {
			return nil, response.NewAppError(response.ErrCodeValidation,
				fmt.Sprintf("Participant %q appears more than once", entry.UserName), "")
		}
		seen[entry.UserName] = true

		user, err := s.userRepo.FindByName(ctx, entry.UserName)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, response.NewAppError(response.ErrCodeNotFound,
					fmt.Sprintf("User %q not found", entry.UserName), "")
			}
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to resolve participant", err.Error())
		}

		role := domain.ParseRole(entry.Role)
		if role == domain.RoleCreator {
			creators++
			creatorID = user.ID
		}

		participants = append(participants, &domain.Participant{
			UserID: user.ID,
			Role:   role,
		})
		views = append(views, dto.ParticipantResponse{
			UserName: user.Name,
			Role:     string(role),
		})
	}

	if creators != 1 {
		return nil, response.NewAppError(response.ErrCodeValidation,
			"Exactly one participant must hold the Creator role", "")
	}
	if creatorID != requesterID {
		return nil, response.NewAppError(response.ErrCodeForbidden,
			"Only the requesting user may be the session creator", "")
	}

	session := &domain.Session{
		Title:       req.Title,
		Description: req.Description,
	}

	if err := s.sessionRepo.CreateWithParticipants(ctx, session, participants); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create session", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementSessionCreated()
	}

	return &dto.SessionResponse{
		ID:           session.ID,
		Title:        session.Title,
		Description:  session.Description,
		CreatedAt:    session.CreatedAt,
		Participants: views,
	}, nil
}

// ListCreatedSessions returns the non-deleted sessions the user created,
// newest first. An empty result is not an error.
func (s *sessionServiceImpl) ListCreatedSessions(ctx context.Context, userName string) ([]*dto.SessionResponse, error) {
	user, err := s.resolveUser(ctx, userName)
	if err != nil {
		return nil, err
	}

	sessions, err := s.sessionRepo.FindByParticipantRoles(ctx, user.ID, []domain.Role{domain.RoleCreator})
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch sessions", err.Error())
	}

	return s.toSessionResponses(sessions), nil
}

// ListParticipantSessions returns the non-deleted sessions where the user
// holds role User or Admin. Sessions where they are only the Creator are
// excluded: the participant view is distinct from the ownership view.
func (s *sessionServiceImpl) ListParticipantSessions(ctx context.Context, userName string) ([]*dto.SessionResponse, error) {
	user, err := s.resolveUser(ctx, userName)
	if err != nil {
		return nil, err
	}

	sessions, err := s.sessionRepo.FindByParticipantRoles(ctx, user.ID, []domain.Role{domain.RoleUser, domain.RoleAdmin})
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch sessions", err.Error())
	}
	if len(sessions) == 0 {
		return nil, response.NewAppError(response.ErrCodeNotFound, "No sessions found for participant", "")
	}

	return s.toSessionResponses(sessions), nil
}

// ListDeletedSessions returns soft-deleted sessions created by the user,
// bypassing the default visibility filter
func (s *sessionServiceImpl) ListDeletedSessions(ctx context.Context, userName string) ([]*dto.SessionResponse, error) {
	user, err := s.resolveUser(ctx, userName)
	if err != nil {
		return nil, err
	}

	sessions, err := s.sessionRepo.FindDeletedByCreator(ctx, user.ID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch deleted sessions", err.Error())
	}
	if len(sessions) == 0 {
		return nil, response.NewAppError(response.ErrCodeNotFound, "No deleted sessions found", "")
	}

	return s.toSessionResponses(sessions), nil
}

// GetSessionDetail returns a session with its participants and tasks.
// Only participants of the session may view it.
func (s *sessionServiceImpl) GetSessionDetail(ctx context.Context, sessionID, requesterID uuid.UUID) (*dto.SessionDetailResponse, error) {
	session, err := s.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Session not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch session", err.Error())
	}

	if _, err := s.sessionRepo.FindParticipant(ctx, sessionID, requesterID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeForbidden, "User is not a participant of this session", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to verify participant", err.Error())
	}

	tasks, err := s.taskRepo.FindBySessionID(ctx, sessionID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch tasks", err.Error())
	}

	detail := &dto.SessionDetailResponse{
		SessionResponse: *s.toSessionResponse(session),
		Tasks:           make([]*dto.TaskResponse, 0, len(tasks)),
	}
	for _, task := range tasks {
		detail.Tasks = append(detail.Tasks, toTaskResponse(task))
	}

	return detail, nil
}

// SoftDeleteSession hides a session from default-visibility queries.
// Re-invoking on an already-deleted session behaves as not found.
func (s *sessionServiceImpl) SoftDeleteSession(ctx context.Context, sessionID uuid.UUID) error {
	if err := s.sessionRepo.SoftDelete(ctx, sessionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Session not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete session", err.Error())
	}
	return nil
}

// RestoreSession clears the deleted flag, locating the session regardless
// of visibility
func (s *sessionServiceImpl) RestoreSession(ctx context.Context, sessionID uuid.UUID) error {
	if err := s.sessionRepo.Restore(ctx, sessionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Session not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to restore session", err.Error())
	}
	return nil
}

// HardDeleteSession permanently removes the session and everything scoped
// to it. Irreversible.
func (s *sessionServiceImpl) HardDeleteSession(ctx context.Context, sessionID uuid.UUID) error {
	if err := s.sessionRepo.HardDelete(ctx, sessionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Session not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete session", err.Error())
	}

	s.logger.Info("Session hard deleted", zap.String("session_id", sessionID.String()))
	return nil
}

// resolveUser resolves a username to a user, mapping absence to NOT_FOUND
func (s *sessionServiceImpl) resolveUser(ctx context.Context, userName string) (*domain.User, error) {
	user, err := s.userRepo.FindByName(ctx, userName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "User not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to resolve user", err.Error())
	}
	return user, nil
}

// toSessionResponse converts domain.Session to dto.SessionResponse
func (s *sessionServiceImpl) toSessionResponse(session *domain.Session) *dto.SessionResponse {
	participants := make([]dto.ParticipantResponse, 0, len(session.Participants))
	for _, p := range session.Participants {
		participants = append(participants, dto.ParticipantResponse{
			UserName: p.User.Name,
			Role:     string(p.Role),
		})
	}
	return &dto.SessionResponse{
		ID:           session.ID,
		Title:        session.Title,
		Description:  session.Description,
		IsDeleted:    session.IsDeleted,
		CreatedAt:    session.CreatedAt,
		Participants: participants,
	}
}

// toSessionResponses converts a slice of sessions
func (s *sessionServiceImpl) toSessionResponses(sessions []*domain.Session) []*dto.SessionResponse {
	responses := make([]*dto.SessionResponse, 0, len(sessions))
	for _, session := range sessions {
		responses = append(responses, s.toSessionResponse(session))
	}
	return responses
}
