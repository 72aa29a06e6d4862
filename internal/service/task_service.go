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

// TaskService defines the interface for task business logic.
// Every operation verifies the acting user is a participant of the task's
// session before touching anything.
type TaskService interface {
	CreateTask(ctx context.Context, sessionID uuid.UUID, req *dto.CreateTaskRequest, requesterID uuid.UUID) (*dto.TaskResponse, error)
	ListSessionTasks(ctx context.Context, sessionID, requesterID uuid.UUID) ([]*dto.TaskResponse, error)
	UpdateTaskStatus(ctx context.Context, taskID uuid.UUID, status string, requesterID uuid.UUID) (*dto.TaskResponse, error)
	EditTask(ctx context.Context, taskID uuid.UUID, req *dto.EditTaskRequest, requesterID uuid.UUID) (*dto.TaskResponse, error)
	DeleteTask(ctx context.Context, taskID uuid.UUID, requesterID uuid.UUID) error
	CountCompletedTasks(ctx context.Context, userName string) (*dto.CompletedCountResponse, error)
}

// taskServiceImpl is the implementation of TaskService
type taskServiceImpl struct {
	taskRepo    repository.TaskRepository
	sessionRepo repository.SessionRepository
	userRepo    repository.UserRepository
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewTaskService creates a new instance of TaskService
func NewTaskService(
	taskRepo repository.TaskRepository,
	sessionRepo repository.SessionRepository,
	userRepo repository.UserRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) TaskService {
	return &taskServiceImpl{
		taskRepo:    taskRepo,
		sessionRepo: sessionRepo,
		userRepo:    userRepo,
		metrics:     m,
		logger:      logger,
	}
}

// CreateTask creates a task scoped to a session. The session must be
// visible under the default filter and the requester must participate.
func (s *taskServiceImpl) CreateTask(ctx context.Context, sessionID uuid.UUID, req *dto.CreateTaskRequest, requesterID uuid.UUID) (*dto.TaskResponse, error) {
	if err := domain.ValidateTaskTitle(req.Title); err != nil {
		return nil, response.NewAppError(response.ErrCodeValidation, err.Error(), "")
	}

	if _, err := s.sessionRepo.FindByID(ctx, sessionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Session not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to verify session", err.Error())
	}

	if err := s.requireParticipant(ctx, sessionID, requesterID); err != nil {
		return nil, err
	}

	if req.AssignedToUserID != nil {
		if err := s.requireAssignable(ctx, sessionID, *req.AssignedToUserID); err != nil {
			return nil, err
		}
	}

	createdBy := requesterID
	task := &domain.Task{
		SessionID:        sessionID,
		Title:            req.Title,
		Description:      req.Description,
		DueDate:          req.DueDate,
		Status:           domain.TaskStatusToDo,
		Priority:         domain.ParsePriority(req.Priority),
		AssignedToUserID: req.AssignedToUserID,
		CreatedByUserID:  &createdBy,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create task", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementTaskCreated()
	}

	return s.withAssigneeName(ctx, task), nil
}

// ListSessionTasks returns the tasks of a session, participant-gated
func (s *taskServiceImpl) ListSessionTasks(ctx context.Context, sessionID, requesterID uuid.UUID) ([]*dto.TaskResponse, error) {
	if _, err := s.sessionRepo.FindByID(ctx, sessionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Session not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to verify session", err.Error())
	}

	if err := s.requireParticipant(ctx, sessionID, requesterID); err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.FindBySessionID(ctx, sessionID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch tasks", err.Error())
	}

	responses := make([]*dto.TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		responses = append(responses, toTaskResponse(task))
	}
	return responses, nil
}

// UpdateTaskStatus changes only the status field of a task
func (s *taskServiceImpl) UpdateTaskStatus(ctx context.Context, taskID uuid.UUID, status string, requesterID uuid.UUID) (*dto.TaskResponse, error) {
	task, err := s.findTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if err := s.requireParticipant(ctx, task.SessionID, requesterID); err != nil {
		return nil, err
	}

	if !domain.IsValidTaskStatus(status) {
		return nil, response.NewAppError(response.ErrCodeValidation,
			fmt.Sprintf("Invalid task status %q", status), "")
	}

	previous := task.Status
	task.Status = domain.TaskStatus(status)

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update task status", err.Error())
	}

	if s.metrics != nil && task.Status == domain.TaskStatusDone && previous != domain.TaskStatusDone {
		s.metrics.IncrementTaskCompleted()
	}

	return toTaskResponse(task), nil
}

// EditTask replaces the mutable fields of a task. The creator reference is
// immutable after creation.
func (s *taskServiceImpl) EditTask(ctx context.Context, taskID uuid.UUID, req *dto.EditTaskRequest, requesterID uuid.UUID) (*dto.TaskResponse, error) {
	task, err := s.findTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if err := s.requireParticipant(ctx, task.SessionID, requesterID); err != nil {
		return nil, err
	}

	if err := domain.ValidateTaskTitle(req.Title); err != nil {
		return nil, response.NewAppError(response.ErrCodeValidation, err.Error(), "")
	}
	if req.Status != "" && !domain.IsValidTaskStatus(req.Status) {
		return nil, response.NewAppError(response.ErrCodeValidation,
			fmt.Sprintf("Invalid task status %q", req.Status), "")
	}
	if req.AssignedToUserID != nil {
		if err := s.requireAssignable(ctx, task.SessionID, *req.AssignedToUserID); err != nil {
			return nil, err
		}
	}

	previous := task.Status
	task.Title = req.Title
	task.Description = req.Description
	task.DueDate = req.DueDate
	task.Priority = domain.ParsePriority(req.Priority)
	task.AssignedToUserID = req.AssignedToUserID
	task.AssignedToUser = nil
	if req.Status != "" {
		task.Status = domain.TaskStatus(req.Status)
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update task", err.Error())
	}

	if s.metrics != nil && task.Status == domain.TaskStatusDone && previous != domain.TaskStatusDone {
		s.metrics.IncrementTaskCompleted()
	}

	return s.withAssigneeName(ctx, task), nil
}

// DeleteTask permanently removes a task
func (s *taskServiceImpl) DeleteTask(ctx context.Context, taskID uuid.UUID, requesterID uuid.UUID) error {
	task, err := s.findTask(ctx, taskID)
	if err != nil {
		return err
	}

	if err := s.requireParticipant(ctx, task.SessionID, requesterID); err != nil {
		return err
	}

	if err := s.taskRepo.Delete(ctx, taskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Task not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete task", err.Error())
	}

	return nil
}

// CountCompletedTasks counts tasks with status Done assigned to the user
// across all sessions. No tasks is a zero count, not an error.
func (s *taskServiceImpl) CountCompletedTasks(ctx context.Context, userName string) (*dto.CompletedCountResponse, error) {
	user, err := s.userRepo.FindByName(ctx, userName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "User not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to resolve user", err.Error())
	}

	count, err := s.taskRepo.CountByAssigneeAndStatus(ctx, user.ID, domain.TaskStatusDone)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to count tasks", err.Error())
	}

	return &dto.CompletedCountResponse{UserName: user.Name, Count: count}, nil
}

// findTask fetches a task, mapping absence to NOT_FOUND
func (s *taskServiceImpl) findTask(ctx context.Context, taskID uuid.UUID) (*domain.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Task not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch task", err.Error())
	}
	return task, nil
}

// requireParticipant fails with FORBIDDEN when the user does not
// participate in the session
func (s *taskServiceImpl) requireParticipant(ctx context.Context, sessionID, userID uuid.UUID) error {
	if _, err := s.sessionRepo.FindParticipant(ctx, sessionID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeForbidden, "User is not a participant of this session", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to verify participant", err.Error())
	}
	return nil
}

// requireAssignable rejects assignees who are not participants of the session
func (s *taskServiceImpl) requireAssignable(ctx context.Context, sessionID, assigneeID uuid.UUID) error {
	if _, err := s.sessionRepo.FindParticipant(ctx, sessionID, assigneeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeValidation, "Assignee is not a participant of this session", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to verify assignee", err.Error())
	}
	return nil
}

// withAssigneeName fills the assignee display name on the projection when
// the relation was not preloaded
func (s *taskServiceImpl) withAssigneeName(ctx context.Context, task *domain.Task) *dto.TaskResponse {
	resp := toTaskResponse(task)
	if task.AssignedToUserID != nil && resp.AssignedToUserName == "" {
		if user, err := s.userRepo.FindByID(ctx, *task.AssignedToUserID); err == nil {
			resp.AssignedToUserName = user.Name
		} else {
			s.logger.Warn("Failed to resolve assignee name",
				zap.String("task_id", task.ID.String()),
				zap.Error(err))
		}
	}
	return resp
}

// toTaskResponse converts domain.Task to dto.TaskResponse
func toTaskResponse(task *domain.Task) *dto.TaskResponse {
	resp := &dto.TaskResponse{
		ID:               task.ID,
		SessionID:        task.SessionID,
		Title:            task.Title,
		Description:      task.Description,
		DueDate:          task.DueDate,
		Status:           string(task.Status),
		Priority:         string(task.Priority),
		AssignedToUserID: task.AssignedToUserID,
		CreatedByUserID:  task.CreatedByUserID,
		CreatedAt:        task.CreatedAt,
	}
	if task.AssignedToUser != nil {
		resp.AssignedToUserName = task.AssignedToUser.Name
	}
	return resp
}
