package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"session-task-api/internal/domain"
	"session-task-api/internal/dto"
	"session-task-api/internal/response"
)

func newSessionService(sessionRepo *MockSessionRepository, userRepo *MockUserRepository, taskRepo *MockTaskRepository) SessionService {
	return NewSessionService(sessionRepo, userRepo, taskRepo, nil, zap.NewNop())
}

func userDirectory(users map[string]*domain.User) *MockUserRepository {
	return &MockUserRepository{
		FindByNameFunc: func(ctx context.Context, name string) (*domain.User, error) {
			if user, ok := users[name]; ok {
				return user, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
}

func TestSessionService_CreateSession(t *testing.T) {
	creator := &domain.User{ID: uuid.New(), Name: "alice"}
	member := &domain.User{ID: uuid.New(), Name: "bob"}
	users := map[string]*domain.User{"alice": creator, "bob": member}

	var createdParticipants []*domain.Participant
	sessionRepo := &MockSessionRepository{
		CreateWithParticipantsFunc: func(ctx context.Context, session *domain.Session, participants []*domain.Participant) error {
			session.ID = uuid.New()
			createdParticipants = participants
			return nil
		},
	}

	svc := newSessionService(sessionRepo, userDirectory(users), &MockTaskRepository{})

	req := &dto.CreateSessionRequest{
		Title:       "Sprint 1",
		Description: "Q1 planning",
		Participants: []dto.ParticipantInput{
			{UserName: "alice", Role: "Creator"},
			{UserName: "bob", Role: "Editor"},
		},
	}

	resp, err := svc.CreateSession(context.Background(), req, creator.ID)
	if err != nil {
		t.Fatalf("Expected success, got %v", err)
	}

	if resp.ID == uuid.Nil {
		t.Error("Expected session ID to be assigned")
	}
	if len(resp.Participants) != 2 {
		t.Fatalf("Expected 2 participants, got %d", len(resp.Participants))
	}
	// Unknown roles normalize to User
	if resp.Participants[1].Role != string(domain.RoleUser) {
		t.Errorf("Expected role Editor to normalize to User, got %s", resp.Participants[1].Role)
	}
	if len(createdParticipants) != 2 {
		t.Fatalf("Expected 2 participant rows, got %d", len(createdParticipants))
	}
	if createdParticipants[0].Role != domain.RoleCreator {
		t.Errorf("Expected first participant role Creator, got %s", createdParticipants[0].Role)
	}
}

func TestSessionService_CreateSession_UnknownParticipant(t *testing.T) {
	creator := &domain.User{ID: uuid.New(), Name: "alice"}
	users := map[string]*domain.User{"alice": creator}

	svc := newSessionService(&MockSessionRepository{}, userDirectory(users), &MockTaskRepository{})

	req := &dto.CreateSessionRequest{
		Title:       "Sprint 1",
		Description: "Q1 planning",
		Participants: []dto.ParticipantInput{
			{UserName: "alice", Role: "Creator"},
			{UserName: "ghost", Role: "User"},
		},
	}

	_, err := svc.CreateSession(context.Background(), req, creator.ID)
	if err == nil {
		t.Fatal("Expected error for unknown participant, got nil")
	}

	var appErr *response.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("Expected AppError, got %T", err)
	}
	if appErr.Code != response.ErrCodeNotFound {
		t.Errorf("Expected error code %s, got %s", response.ErrCodeNotFound, appErr.Code)
	}
	if appErr.Message != `User "ghost" not found` {
		t.Errorf("Expected message to name the missing user, got %q", appErr.Message)
	}
}

func TestSessionService_CreateSession_CreatorCardinality(t *testing.T) {
	creator := &domain.User{ID: uuid.New(), Name: "alice"}
	member := &domain.User{ID: uuid.New(), Name: "bob"}
	users := map[string]*domain.User{"alice": creator, "bob": member}

	tests := []struct {
		name         string
		participants []dto.ParticipantInput
		requesterID  uuid.UUID
		wantCode     string
	}{
		{
			name: "no creator",
			participants: []dto.ParticipantInput{
				{UserName: "alice", Role: "User"},
				{UserName: "bob", Role: "Admin"},
			},
			requesterID: creator.ID,
			wantCode:    response.ErrCodeValidation,
		},
		{
			name: "two creators",
			participants: []dto.ParticipantInput{
				{UserName: "alice", Role: "Creator"},
				{UserName: "bob", Role: "Creator"},
			},
			requesterID: creator.ID,
			wantCode:    response.ErrCodeValidation,
		},
		{
			name: "creator is not the requester",
			participants: []dto.ParticipantInput{
				{UserName: "bob", Role: "Creator"},
				{UserName: "alice", Role: "User"},
			},
			requesterID: creator.ID,
			wantCode:    response.ErrCodeForbidden,
		},
		{
			name: "duplicate participant",
			participants: []dto.ParticipantInput{
				{UserName: "alice", Role: "Creator"},
				{UserName: "alice", Role: "User"},
			},
			requesterID: creator.ID,
			wantCode:    response.ErrCodeValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newSessionService(&MockSessionRepository{}, userDirectory(users), &MockTaskRepository{})

			req := &dto.CreateSessionRequest{
				Title:        "Sprint 1",
				Description:  "Q1 planning",
				Participants: tt.participants,
			}

			_, err := svc.CreateSession(context.Background(), req, tt.requesterID)
			if err == nil {
				t.Fatal("Expected error, got nil")
			}

			var appErr *response.AppError
			if !errors.As(err, &appErr) {
				t.Fatalf("Expected AppError, got %T", err)
			}
			if appErr.Code != tt.wantCode {
				t.Errorf("Expected error code %s, got %s", tt.wantCode, appErr.Code)
			}
		})
	}
}

func TestSessionService_CreateSession_InputValidation(t *testing.T) {
	creator := &domain.User{ID: uuid.New(), Name: "alice"}
	users := map[string]*domain.User{"alice": creator}

	longTitle := make([]byte, 201)
	for i := range longTitle {
		longTitle[i] = 'x'
	}

	tests := []struct {
		name        string
		title       string
		description string
	}{
		{"empty title", "", "desc"},
		{"title too long", string(longTitle), "desc"},
		{"empty description", "Sprint 1", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newSessionService(&MockSessionRepository{}, userDirectory(users), &MockTaskRepository{})

			req := &dto.CreateSessionRequest{
				Title:       tt.title,
				Description: tt.description,
				Participants: []dto.ParticipantInput{
					{UserName: "alice", Role: "Creator"},
				},
			}

			_, err := svc.CreateSession(context.Background(), req, creator.ID)
			if err == nil {
				t.Fatal("Expected validation error, got nil")
			}

			var appErr *response.AppError
			if !errors.As(err, &appErr) {
				t.Fatalf("Expected AppError, got %T", err)
			}
			if appErr.Code != response.ErrCodeValidation {
				t.Errorf("Expected error code %s, got %s", response.ErrCodeValidation, appErr.Code)
			}
		})
	}
}

func TestSessionService_ListCreatedSessions_Empty(t *testing.T) {
	user := &domain.User{ID: uuid.New(), Name: "alice"}
	users := map[string]*domain.User{"alice": user}

	sessionRepo := &MockSessionRepository{
		FindByParticipantRolesFunc: func(ctx context.Context, userID uuid.UUID, roles []domain.Role) ([]*domain.Session, error) {
			if len(roles) != 1 || roles[0] != domain.RoleCreator {
				t.Errorf("Expected Creator role filter, got %v", roles)
			}
			return []*domain.Session{}, nil
		},
	}

	svc := newSessionService(sessionRepo, userDirectory(users), &MockTaskRepository{})

	sessions, err := svc.ListCreatedSessions(context.Background(), "alice")
	if err != nil {
		t.Fatalf("Expected empty slice without error, got %v", err)
	}
	if sessions == nil || len(sessions) != 0 {
		t.Errorf("Expected empty non-nil slice, got %v", sessions)
	}
}

func TestSessionService_ListParticipantSessions_Empty(t *testing.T) {
	user := &domain.User{ID: uuid.New(), Name: "alice"}
	users := map[string]*domain.User{"alice": user}

	sessionRepo := &MockSessionRepository{
		FindByParticipantRolesFunc: func(ctx context.Context, userID uuid.UUID, roles []domain.Role) ([]*domain.Session, error) {
			return []*domain.Session{}, nil
		},
	}

	svc := newSessionService(sessionRepo, userDirectory(users), &MockTaskRepository{})

	_, err := svc.ListParticipantSessions(context.Background(), "alice")
	if err == nil {
		t.Fatal("Expected NOT_FOUND for empty participant view, got nil")
	}

	var appErr *response.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("Expected AppError, got %T", err)
	}
	if appErr.Code != response.ErrCodeNotFound {
		t.Errorf("Expected error code %s, got %s", response.ErrCodeNotFound, appErr.Code)
	}
}

func TestSessionService_ListSessions_UnknownUser(t *testing.T) {
	svc := newSessionService(&MockSessionRepository{}, userDirectory(nil), &MockTaskRepository{})

	for _, call := range []func() error{
		func() error { _, err := svc.ListCreatedSessions(context.Background(), "ghost"); return err },
		func() error { _, err := svc.ListParticipantSessions(context.Background(), "ghost"); return err },
		func() error { _, err := svc.ListDeletedSessions(context.Background(), "ghost"); return err },
	} {
		err := call()
		if err == nil {
			t.Fatal("Expected NOT_FOUND for unknown user, got nil")
		}
		var appErr *response.AppError
		if !errors.As(err, &appErr) {
			t.Fatalf("Expected AppError, got %T", err)
		}
		if appErr.Code != response.ErrCodeNotFound {
			t.Errorf("Expected error code %s, got %s", response.ErrCodeNotFound, appErr.Code)
		}
	}
}

func TestSessionService_GetSessionDetail_NotParticipant(t *testing.T) {
	sessionID := uuid.New()
	requesterID := uuid.New()

	sessionRepo := &MockSessionRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
			return &domain.Session{BaseModel: domain.BaseModel{ID: sessionID}, Title: "Sprint 1"}, nil
		},
		FindParticipantFunc: func(ctx context.Context, sID, uID uuid.UUID) (*domain.Participant, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := newSessionService(sessionRepo, &MockUserRepository{}, &MockTaskRepository{})

	_, err := svc.GetSessionDetail(context.Background(), sessionID, requesterID)
	if err == nil {
		t.Fatal("Expected FORBIDDEN, got nil")
	}

	var appErr *response.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("Expected AppError, got %T", err)
	}
	if appErr.Code != response.ErrCodeForbidden {
		t.Errorf("Expected error code %s, got %s", response.ErrCodeForbidden, appErr.Code)
	}
}

func TestSessionService_GetSessionDetail_WithTasks(t *testing.T) {
	sessionID := uuid.New()
	requester := &domain.User{ID: uuid.New(), Name: "alice"}

	sessionRepo := &MockSessionRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
			return &domain.Session{
				BaseModel: domain.BaseModel{ID: sessionID},
				Title:     "Sprint 1",
				Participants: []domain.Participant{
					{UserID: requester.ID, SessionID: sessionID, Role: domain.RoleCreator, User: *requester},
				},
			}, nil
		},
		FindParticipantFunc: func(ctx context.Context, sID, uID uuid.UUID) (*domain.Participant, error) {
			return &domain.Participant{SessionID: sID, UserID: uID}, nil
		},
	}
	taskRepo := &MockTaskRepository{
		FindBySessionIDFunc: func(ctx context.Context, sID uuid.UUID) ([]*domain.Task, error) {
			return []*domain.Task{
				{BaseModel: domain.BaseModel{ID: uuid.New()}, SessionID: sID, Title: "Write report", Status: domain.TaskStatusToDo},
			}, nil
		},
	}

	svc := newSessionService(sessionRepo, &MockUserRepository{}, taskRepo)

	detail, err := svc.GetSessionDetail(context.Background(), sessionID, requester.ID)
	if err != nil {
		t.Fatalf("Expected success, got %v", err)
	}
	if len(detail.Tasks) != 1 {
		t.Fatalf("Expected 1 task, got %d", len(detail.Tasks))
	}
	if detail.Tasks[0].Title != "Write report" {
		t.Errorf("Expected task title 'Write report', got %q", detail.Tasks[0].Title)
	}
	if len(detail.Participants) != 1 || detail.Participants[0].UserName != "alice" {
		t.Errorf("Expected participant projection with username, got %v", detail.Participants)
	}
}

func TestSessionService_SoftDeleteSession_AlreadyDeleted(t *testing.T) {
	sessionRepo := &MockSessionRepository{
		SoftDeleteFunc: func(ctx context.Context, id uuid.UUID) error {
			return gorm.ErrRecordNotFound
		},
	}

	svc := newSessionService(sessionRepo, &MockUserRepository{}, &MockTaskRepository{})

	err := svc.SoftDeleteSession(context.Background(), uuid.New())
	if err == nil {
		t.Fatal("Expected NOT_FOUND for already-deleted session, got nil")
	}

	var appErr *response.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("Expected AppError, got %T", err)
	}
	if appErr.Code != response.ErrCodeNotFound {
		t.Errorf("Expected error code %s, got %s", response.ErrCodeNotFound, appErr.Code)
	}
}

func TestSessionService_HardDeleteSession(t *testing.T) {
	deleted := false
	sessionRepo := &MockSessionRepository{
		HardDeleteFunc: func(ctx context.Context, id uuid.UUID) error {
			deleted = true
			return nil
		},
	}

	svc := newSessionService(sessionRepo, &MockUserRepository{}, &MockTaskRepository{})

	if err := svc.HardDeleteSession(context.Background(), uuid.New()); err != nil {
		t.Fatalf("Expected success, got %v", err)
	}
	if !deleted {
		t.Error("Expected HardDelete to be invoked")
	}
}
