package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"session-task-api/internal/dto"
	"session-task-api/internal/middleware"
)

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	RegisterFunc   func(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	LoginFunc      func(ctx context.Context, req *dto.LoginRequest) (*dto.UserResponse, string, error)
	LogoutFunc     func(ctx context.Context, tokenID string, expiresAt time.Time) error
	GetUserFunc    func(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
	LookupUserFunc func(ctx context.Context, nameOrEmail string) (*dto.UserResponse, error)
}

func (m *MockAuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.UserResponse, string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return nil, "", nil
}

func (m *MockAuthService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, tokenID, expiresAt)
	}
	return nil
}

func (m *MockAuthService) GetUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockAuthService) LookupUser(ctx context.Context, nameOrEmail string) (*dto.UserResponse, error) {
	if m.LookupUserFunc != nil {
		return m.LookupUserFunc(ctx, nameOrEmail)
	}
	return nil, nil
}

// MockSessionService is a mock implementation of SessionService
type MockSessionService struct {
	CreateSessionFunc           func(ctx context.Context, req *dto.CreateSessionRequest, requesterID uuid.UUID) (*dto.SessionResponse, error)
	ListCreatedSessionsFunc     func(ctx context.Context, userName string) ([]*dto.SessionResponse, error)
	ListParticipantSessionsFunc func(ctx context.Context, userName string) ([]*dto.SessionResponse, error)
	ListDeletedSessionsFunc     func(ctx context.Context, userName string) ([]*dto.SessionResponse, error)
	GetSessionDetailFunc        func(ctx context.Context, sessionID, requesterID uuid.UUID) (*dto.SessionDetailResponse, error)
	SoftDeleteSessionFunc       func(ctx context.Context, sessionID uuid.UUID) error
	RestoreSessionFunc          func(ctx context.Context, sessionID uuid.UUID) error
	HardDeleteSessionFunc       func(ctx context.Context, sessionID uuid.UUID) error
}

func (m *MockSessionService) CreateSession(ctx context.Context, req *dto.CreateSessionRequest, requesterID uuid.UUID) (*dto.SessionResponse, error) {
	if m.CreateSessionFunc != nil {
		return m.CreateSessionFunc(ctx, req, requesterID)
	}
	return nil, nil
}

func (m *MockSessionService) ListCreatedSessions(ctx context.Context, userName string) ([]*dto.SessionResponse, error) {
	if m.ListCreatedSessionsFunc != nil {
		return m.ListCreatedSessionsFunc(ctx, userName)
	}
	return nil, nil
}

func (m *MockSessionService) ListParticipantSessions(ctx context.Context, userName string) ([]*dto.SessionResponse, error) {
	if m.ListParticipantSessionsFunc != nil {
		return m.ListParticipantSessionsFunc(ctx, userName)
	}
	return nil, nil
}

func (m *MockSessionService) ListDeletedSessions(ctx context.Context, userName string) ([]*dto.SessionResponse, error) {
	if m.ListDeletedSessionsFunc != nil {
		return m.ListDeletedSessionsFunc(ctx, userName)
	}
	return nil, nil
}

func (m *MockSessionService) GetSessionDetail(ctx context.Context, sessionID, requesterID uuid.UUID) (*dto.SessionDetailResponse, error) {
	if m.GetSessionDetailFunc != nil {
		return m.GetSessionDetailFunc(ctx, sessionID, requesterID)
	}
	return nil, nil
}

func (m *MockSessionService) SoftDeleteSession(ctx context.Context, sessionID uuid.UUID) error {
	if m.SoftDeleteSessionFunc != nil {
		return m.SoftDeleteSessionFunc(ctx, sessionID)
	}
	return nil
}

func (m *MockSessionService) RestoreSession(ctx context.Context, sessionID uuid.UUID) error {
	if m.RestoreSessionFunc != nil {
		return m.RestoreSessionFunc(ctx, sessionID)
	}
	return nil
}

func (m *MockSessionService) HardDeleteSession(ctx context.Context, sessionID uuid.UUID) error {
	if m.HardDeleteSessionFunc != nil {
		return m.HardDeleteSessionFunc(ctx, sessionID)
	}
	return nil
}

// MockTaskService is a mock implementation of TaskService
type MockTaskService struct {
	CreateTaskFunc          func(ctx context.Context, sessionID uuid.UUID, req *dto.CreateTaskRequest, requesterID uuid.UUID) (*dto.TaskResponse, error)
	ListSessionTasksFunc    func(ctx context.Context, sessionID, requesterID uuid.UUID) ([]*dto.TaskResponse, error)
	UpdateTaskStatusFunc    func(ctx context.Context, taskID uuid.UUID, status string, requesterID uuid.UUID) (*dto.TaskResponse, error)
	EditTaskFunc            func(ctx context.Context, taskID uuid.UUID, req *dto.EditTaskRequest, requesterID uuid.UUID) (*dto.TaskResponse, error)
	DeleteTaskFunc          func(ctx context.Context, taskID uuid.UUID, requesterID uuid.UUID) error
	CountCompletedTasksFunc func(ctx context.Context, userName string) (*dto.CompletedCountResponse, error)
}

func (m *MockTaskService) CreateTask(ctx context.Context, sessionID uuid.UUID, req *dto.CreateTaskRequest, requesterID uuid.UUID) (*dto.TaskResponse, error) {
	if m.CreateTaskFunc != nil {
		return m.CreateTaskFunc(ctx, sessionID, req, requesterID)
	}
	return nil, nil
}

func (m *MockTaskService) ListSessionTasks(ctx context.Context, sessionID, requesterID uuid.UUID) ([]*dto.TaskResponse, error) {
	if m.ListSessionTasksFunc != nil {
		return m.ListSessionTasksFunc(ctx, sessionID, requesterID)
	}
	return nil, nil
}

func (m *MockTaskService) UpdateTaskStatus(ctx context.Context, taskID uuid.UUID, status string, requesterID uuid.UUID) (*dto.TaskResponse, error) {
	if m.UpdateTaskStatusFunc != nil {
		return m.UpdateTaskStatusFunc(ctx, taskID, status, requesterID)
	}
	return nil, nil
}

func (m *MockTaskService) EditTask(ctx context.Context, taskID uuid.UUID, req *dto.EditTaskRequest, requesterID uuid.UUID) (*dto.TaskResponse, error) {
	if m.EditTaskFunc != nil {
		return m.EditTaskFunc(ctx, taskID, req, requesterID)
	}
	return nil, nil
}

func (m *MockTaskService) DeleteTask(ctx context.Context, taskID uuid.UUID, requesterID uuid.UUID) error {
	if m.DeleteTaskFunc != nil {
		return m.DeleteTaskFunc(ctx, taskID, requesterID)
	}
	return nil
}

func (m *MockTaskService) CountCompletedTasks(ctx context.Context, userName string) (*dto.CompletedCountResponse, error) {
	if m.CountCompletedTasksFunc != nil {
		return m.CountCompletedTasksFunc(ctx, userName)
	}
	return nil, nil
}

// injectUser simulates the auth middleware by placing a user id in the context
func injectUser(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserIDKey, userID)
		c.Next()
	}
}
