package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role represents a participant's role within a session
type Role string

const (
	RoleCreator Role = "Creator"
	RoleAdmin   Role = "Admin"
	RoleUser    Role = "User"
)

// ParseRole normalizes a role string to the closed set.
// Anything outside the set (including the legacy "Editor" alias) maps to User.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleCreator:
		return RoleCreator
	case RoleAdmin:
		return RoleAdmin
	default:
		return RoleUser
	}
}

// Session represents a shared workspace containing tasks and participants
type Session struct {
	BaseModel
	Title       string `gorm:"type:varchar(200);not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`
	IsDeleted   bool   `gorm:"not null;default:false;index:idx_sessions_is_deleted" json:"isDeleted"`

	Participants []Participant `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE" json:"participants,omitempty"`
	Tasks        []Task        `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE" json:"tasks,omitempty"`
}

// TableName specifies the table name for Session
func (Session) TableName() string {
	return "sessions"
}

// Participant links a user to a session with a role.
// SessionName is a write-time snapshot of the session title kept as a
// read optimization; there is no rename operation that could desync it.
type Participant struct {
	UserID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"userId"`
	SessionID   uuid.UUID `gorm:"type:uuid;primaryKey;index:idx_participants_session_id" json:"sessionId"`
	SessionName string    `gorm:"type:varchar(200)" json:"sessionName"`
	Role        Role      `gorm:"type:varchar(50);not null;default:'User'" json:"role"`
	CreatedAt   time.Time `gorm:"not null" json:"createdAt"`

	Session Session `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE" json:"-"`
	User    User    `gorm:"foreignKey:UserID" json:"-"`
}

// TableName specifies the table name for Participant
func (Participant) TableName() string {
	return "participants"
}
