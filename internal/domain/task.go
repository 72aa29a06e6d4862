package domain

import (
	"time"

	"github.com/google/uuid"
)

// TaskStatus represents the workflow state of a task
type TaskStatus string

const (
	TaskStatusToDo       TaskStatus = "To Do"
	TaskStatusInProgress TaskStatus = "In Progress"
	TaskStatusDone       TaskStatus = "Done"
)

// IsValidTaskStatus reports whether s is a member of the closed status set
func IsValidTaskStatus(s string) bool {
	switch TaskStatus(s) {
	case TaskStatusToDo, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

// TaskPriority represents the priority of a task
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "Low"
	TaskPriorityMedium TaskPriority = "Medium"
	TaskPriorityHigh   TaskPriority = "High"
)

// ParsePriority normalizes a priority string, defaulting to Low
func ParsePriority(s string) TaskPriority {
	switch TaskPriority(s) {
	case TaskPriorityMedium:
		return TaskPriorityMedium
	case TaskPriorityHigh:
		return TaskPriorityHigh
	default:
		return TaskPriorityLow
	}
}

// Task represents a unit of work scoped to one session
type Task struct {
	BaseModel
	SessionID   uuid.UUID    `gorm:"type:uuid;not null;index:idx_tasks_session_id" json:"sessionId"`
	Title       string       `gorm:"type:varchar(200);not null" json:"title"`
	Description string       `gorm:"type:text" json:"description"`
	DueDate     *time.Time   `gorm:"type:timestamp" json:"dueDate,omitempty"`
	Status      TaskStatus   `gorm:"type:varchar(20);not null;default:'To Do'" json:"status"`
	Priority    TaskPriority `gorm:"type:varchar(10);not null;default:'Low'" json:"priority"`

	// Assignee link is severed when the user is removed; the creator link
	// blocks user removal instead.
	AssignedToUserID *uuid.UUID `gorm:"type:uuid;index:idx_tasks_assigned_to" json:"assignedToUserId,omitempty"`
	CreatedByUserID  *uuid.UUID `gorm:"type:uuid" json:"createdByUserId,omitempty"`

	Session        Session `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE" json:"-"`
	AssignedToUser *User   `gorm:"foreignKey:AssignedToUserID;constraint:OnDelete:SET NULL" json:"-"`
	CreatedByUser  *User   `gorm:"foreignKey:CreatedByUserID;constraint:OnDelete:RESTRICT" json:"-"`
}

// TableName specifies the table name for Task
func (Task) TableName() string {
	return "tasks"
}
