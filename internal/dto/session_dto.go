package dto

import (
	"time"

	"github.com/google/uuid"
)

// ParticipantInput names a participant to include at session creation
type ParticipantInput struct {
	UserName string `json:"userName" binding:"required" example:"bob"`
	Role     string `json:"role" example:"User"`
}

// CreateSessionRequest represents the request to create a session with its
// initial participant list
type CreateSessionRequest struct {
	Title        string             `json:"title" binding:"required,max=200" example:"Sprint 1"`
	Description  string             `json:"description" binding:"required" example:"Q1 planning"`
	Participants []ParticipantInput `json:"participants" binding:"required,min=1,dive"`
}

// ParticipantResponse projects a participant as name + role, never raw ids
// to unrelated callers
type ParticipantResponse struct {
	UserName string `json:"userName" example:"bob"`
	Role     string `json:"role" example:"User"`
}

// SessionResponse represents the session projection returned by list and
// create operations
type SessionResponse struct {
	ID           uuid.UUID             `json:"id" example:"1275eac5-f0f9-4bee-8235-576a0042f42b"`
	Title        string                `json:"title" example:"Sprint 1"`
	Description  string                `json:"description" example:"Q1 planning"`
	IsDeleted    bool                  `json:"isDeleted" example:"false"`
	CreatedAt    time.Time             `json:"createdAt" example:"2024-01-15T10:30:00Z"`
	Participants []ParticipantResponse `json:"participants"`
}

// SessionDetailResponse adds the task list to the session projection
type SessionDetailResponse struct {
	SessionResponse
	Tasks []*TaskResponse `json:"tasks"`
}
