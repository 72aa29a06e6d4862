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

type TaskHandler struct {
	taskService service.TaskService
	logger      *zap.Logger
}

func NewTaskHandler(taskService service.TaskService, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		logger:      logger,
	}
}

// CreateTask godoc
// @Summary      Create a task in a session
// @Description  Creates a task scoped to the session; the requester must be a participant
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        sessionId path string true "Session ID (UUID)"
// @Param        request body dto.CreateTaskRequest true "Task creation request"
// @Success      201 {object} response.SuccessResponse{data=dto.TaskResponse} "Task created"
// @Failure      400 {object} response.ErrorResponse "Invalid request or assignee not a participant"
// @Failure      403 {object} response.ErrorResponse "Requester is not a participant"
// @Failure      404 {object} response.ErrorResponse "Session not found"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /sessions/{sessionId}/tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
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

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), sessionID, &req, requesterID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, task)
}

// ListSessionTasks godoc
// @Summary      List the tasks of a session
// @Description  Returns the session's tasks, newest first; the requester must be a participant
// @Tags         tasks
// @Produce      json
// @Param        sessionId path string true "Session ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=[]dto.TaskResponse} "Tasks, possibly empty"
// @Failure      400 {object} response.ErrorResponse "Invalid session ID"
// @Failure      403 {object} response.ErrorResponse "Requester is not a participant"
// @Failure      404 {object} response.ErrorResponse "Session not found"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /sessions/{sessionId}/tasks [get]
func (h *TaskHandler) ListSessionTasks(c *gin.Context) {
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

	tasks, err := h.taskService.ListSessionTasks(c.Request.Context(), sessionID, requesterID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, tasks)
}

// UpdateTaskStatus godoc
// @Summary      Update the status of a task
// @Description  Changes only the status field; valid values are "To Do", "In Progress" and "Done"
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        taskId path string true "Task ID (UUID)"
// @Param        request body dto.UpdateTaskStatusRequest true "Status update request"
// @Success      200 {object} response.SuccessResponse{data=dto.TaskResponse} "Task updated"
// @Failure      400 {object} response.ErrorResponse "Invalid task ID or status value"
// @Failure      403 {object} response.ErrorResponse "Requester is not a participant"
// @Failure      404 {object} response.ErrorResponse "Task not found"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /tasks/{taskId}/status [put]
func (h *TaskHandler) UpdateTaskStatus(c *gin.Context) {
	requesterID, ok := currentUserID(c)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Not authenticated")
		return
	}

	taskID, err := uuid.Parse(c.Param("taskId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid task ID")
		return
	}

	var req dto.UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	task, err := h.taskService.UpdateTaskStatus(c.Request.Context(), taskID, req.Status, requesterID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, task)
}

// EditTask godoc
// @Summary      Edit a task
// @Description  Replaces the mutable fields of a task; the creator reference never changes
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        taskId path string true "Task ID (UUID)"
// @Param        request body dto.EditTaskRequest true "Task edit request"
// @Success      200 {object} response.SuccessResponse{data=dto.TaskResponse} "Task updated"
// @Failure      400 {object} response.ErrorResponse "Invalid request or assignee not a participant"
// @Failure      403 {object} response.ErrorResponse "Requester is not a participant"
// @Failure      404 {object} response.ErrorResponse "Task not found"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /tasks/{taskId} [put]
func (h *TaskHandler) EditTask(c *gin.Context) {
	requesterID, ok := currentUserID(c)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Not authenticated")
		return
	}

	taskID, err := uuid.Parse(c.Param("taskId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid task ID")
		return
	}

	var req dto.EditTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	task, err := h.taskService.EditTask(c.Request.Context(), taskID, &req, requesterID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, task)
}

// DeleteTask godoc
// @Summary      Delete a task
// @Description  Permanently removes a task; the requester must participate in its session
// @Tags         tasks
// @Produce      json
// @Param        taskId path string true "Task ID (UUID)"
// @Success      200 {object} response.SuccessResponse "Task deleted"
// @Failure      400 {object} response.ErrorResponse "Invalid task ID"
// @Failure      403 {object} response.ErrorResponse "Requester is not a participant"
// @Failure      404 {object} response.ErrorResponse "Task not found"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /tasks/{taskId} [delete]
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	requesterID, ok := currentUserID(c)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Not authenticated")
		return
	}

	taskID, err := uuid.Parse(c.Param("taskId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid task ID")
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), taskID, requesterID); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, nil)
}

// CountCompletedTasks godoc
// @Summary      Count completed tasks assigned to a user
// @Description  Counts tasks with status "Done" assigned to the user across all sessions
// @Tags         tasks
// @Produce      json
// @Param        userName path string true "Username"
// @Success      200 {object} response.SuccessResponse{data=dto.CompletedCountResponse} "Completed task count"
// @Failure      404 {object} response.ErrorResponse "User not found"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /tasks/completed/{userName} [get]
func (h *TaskHandler) CountCompletedTasks(c *gin.Context) {
	result, err := h.taskService.CountCompletedTasks(c.Request.Context(), c.Param("userName"))
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}
