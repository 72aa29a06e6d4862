package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"session-task-api/internal/domain"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	CreateFunc            func(ctx context.Context, user *domain.User) error
	FindByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindByNameFunc        func(ctx context.Context, name string) (*domain.User, error)
	FindByEmailFunc       func(ctx context.Context, email string) (*domain.User, error)
	FindByNameOrEmailFunc func(ctx context.Context, nameOrEmail string) (*domain.User, error)
	FindByIDsFunc         func(ctx context.Context, ids []uuid.UUID) ([]*domain.User, error)
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByName(ctx context.Context, name string) (*domain.User, error) {
	if m.FindByNameFunc != nil {
		return m.FindByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByNameOrEmail(ctx context.Context, nameOrEmail string) (*domain.User, error) {
	if m.FindByNameOrEmailFunc != nil {
		return m.FindByNameOrEmailFunc(ctx, nameOrEmail)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.User, error) {
	if m.FindByIDsFunc != nil {
		return m.FindByIDsFunc(ctx, ids)
	}
	return nil, nil
}

// MockSessionRepository is a mock implementation of SessionRepository
type MockSessionRepository struct {
	CreateWithParticipantsFunc func(ctx context.Context, session *domain.Session, participants []*domain.Participant) error
	FindByIDFunc               func(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	FindByIDAnyVisibilityFunc  func(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	FindByParticipantRolesFunc func(ctx context.Context, userID uuid.UUID, roles []domain.Role) ([]*domain.Session, error)
	FindDeletedByCreatorFunc   func(ctx context.Context, userID uuid.UUID) ([]*domain.Session, error)
	FindDeletedBeforeFunc      func(ctx context.Context, cutoff time.Time) ([]*domain.Session, error)
	FindParticipantFunc        func(ctx context.Context, sessionID, userID uuid.UUID) (*domain.Participant, error)
	SoftDeleteFunc             func(ctx context.Context, id uuid.UUID) error
	RestoreFunc                func(ctx context.Context, id uuid.UUID) error
	HardDeleteFunc             func(ctx context.Context, id uuid.UUID) error
}

func (m *MockSessionRepository) CreateWithParticipants(ctx context.Context, session *domain.Session, participants []*domain.Participant) error {
	if m.CreateWithParticipantsFunc != nil {
		return m.CreateWithParticipantsFunc(ctx, session, participants)
	}
	return nil
}

func (m *MockSessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockSessionRepository) FindByIDAnyVisibility(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	if m.FindByIDAnyVisibilityFunc != nil {
		return m.FindByIDAnyVisibilityFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockSessionRepository) FindByParticipantRoles(ctx context.Context, userID uuid.UUID, roles []domain.Role) ([]*domain.Session, error) {
	if m.FindByParticipantRolesFunc != nil {
		return m.FindByParticipantRolesFunc(ctx, userID, roles)
	}
	return nil, nil
}

func (m *MockSessionRepository) FindDeletedByCreator(ctx context.Context, userID uuid.UUID) ([]*domain.Session, error) {
	if m.FindDeletedByCreatorFunc != nil {
		return m.FindDeletedByCreatorFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockSessionRepository) FindDeletedBefore(ctx context.Context, cutoff time.Time) ([]*domain.Session, error) {
	if m.FindDeletedBeforeFunc != nil {
		return m.FindDeletedBeforeFunc(ctx, cutoff)
	}
	return nil, nil
}

func (m *MockSessionRepository) FindParticipant(ctx context.Context, sessionID, userID uuid.UUID) (*domain.Participant, error) {
	if m.FindParticipantFunc != nil {
		return m.FindParticipantFunc(ctx, sessionID, userID)
	}
	return nil, nil
}

func (m *MockSessionRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	if m.SoftDeleteFunc != nil {
		return m.SoftDeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockSessionRepository) Restore(ctx context.Context, id uuid.UUID) error {
	if m.RestoreFunc != nil {
		return m.RestoreFunc(ctx, id)
	}
	return nil
}

func (m *MockSessionRepository) HardDelete(ctx context.Context, id uuid.UUID) error {
	if m.HardDeleteFunc != nil {
		return m.HardDeleteFunc(ctx, id)
	}
	return nil
}

// MockTaskRepository is a mock implementation of TaskRepository
type MockTaskRepository struct {
	CreateFunc                   func(ctx context.Context, task *domain.Task) error
	FindByIDFunc                 func(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	FindBySessionIDFunc          func(ctx context.Context, sessionID uuid.UUID) ([]*domain.Task, error)
	UpdateFunc                   func(ctx context.Context, task *domain.Task) error
	DeleteFunc                   func(ctx context.Context, id uuid.UUID) error
	CountByAssigneeAndStatusFunc func(ctx context.Context, userID uuid.UUID, status domain.TaskStatus) (int64, error)
}

func (m *MockTaskRepository) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, task)
	}
	return nil
}

func (m *MockTaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockTaskRepository) FindBySessionID(ctx context.Context, sessionID uuid.UUID) ([]*domain.Task, error) {
	if m.FindBySessionIDFunc != nil {
		return m.FindBySessionIDFunc(ctx, sessionID)
	}
	return nil, nil
}

func (m *MockTaskRepository) Update(ctx context.Context, task *domain.Task) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, task)
	}
	return nil
}

func (m *MockTaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockTaskRepository) CountByAssigneeAndStatus(ctx context.Context, userID uuid.UUID, status domain.TaskStatus) (int64, error) {
	if m.CountByAssigneeAndStatusFunc != nil {
		return m.CountByAssigneeAndStatusFunc(ctx, userID, status)
	}
	return 0, nil
}
