package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateTaskRequest represents the request to create a task in a session
type CreateTaskRequest struct {
	Title            string     `json:"title" binding:"required,max=200" example:"Write report"`
	Description      string     `json:"description" example:"Summarize Q1 results"`
	DueDate          *time.Time `json:"dueDate,omitempty" example:"2024-02-01T00:00:00Z"`
	Priority         string     `json:"priority" example:"Medium"`
	AssignedToUserID *uuid.UUID `json:"assignedToUserId,omitempty"`
}

// UpdateTaskStatusRequest represents the request to change only a task's status
type UpdateTaskStatusRequest struct {
	Status string `json:"status" binding:"required" example:"Done"`
}

// EditTaskRequest replaces the mutable fields of a task.
// The creator reference is immutable and deliberately absent.
type EditTaskRequest struct {
	Title            string     `json:"title" binding:"required,max=200" example:"Write report"`
	Description      string     `json:"description"`
	DueDate          *time.Time `json:"dueDate,omitempty"`
	Status           string     `json:"status" example:"In Progress"`
	Priority         string     `json:"priority" example:"High"`
	AssignedToUserID *uuid.UUID `json:"assignedToUserId,omitempty"`
}

// TaskResponse represents the task projection
type TaskResponse struct {
	ID                 uuid.UUID  `json:"id" example:"b2c3d4e5-f6a7-8901-bcde-f12345678901"`
	SessionID          uuid.UUID  `json:"sessionId" example:"1275eac5-f0f9-4bee-8235-576a0042f42b"`
	Title              string     `json:"title" example:"Write report"`
	Description        string     `json:"description" example:"Summarize Q1 results"`
	DueDate            *time.Time `json:"dueDate,omitempty"`
	Status             string     `json:"status" example:"To Do"`
	Priority           string     `json:"priority" example:"Low"`
	AssignedToUserID   *uuid.UUID `json:"assignedToUserId,omitempty"`
	AssignedToUserName string     `json:"assignedToUserName,omitempty" example:"bob"`
	CreatedByUserID    *uuid.UUID `json:"createdByUserId,omitempty"`
	CreatedAt          time.Time  `json:"createdAt" example:"2024-01-15T10:30:00Z"`
}

// CompletedCountResponse represents the count of completed tasks for a user
type CompletedCountResponse struct {
	UserName string `json:"userName" example:"bob"`
	Count    int64  `json:"count" example:"3"`
}
