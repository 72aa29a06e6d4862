package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"session-task-api/internal/domain"
)

// SessionRepository defines the interface for session and participant data access.
// Find methods apply the default visibility filter (soft-deleted sessions
// hidden) unless stated otherwise.
type SessionRepository interface {
	CreateWithParticipants(ctx context.Context, session *domain.Session, participants []*domain.Participant) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	FindByIDAnyVisibility(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	FindByParticipantRoles(ctx context.Context, userID uuid.UUID, roles []domain.Role) ([]*domain.Session, error)
	FindDeletedByCreator(ctx context.Context, userID uuid.UUID) ([]*domain.Session, error)
	FindDeletedBefore(ctx context.Context, cutoff time.Time) ([]*domain.Session, error)
	FindParticipant(ctx context.Context, sessionID, userID uuid.UUID) (*domain.Participant, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
	Restore(ctx context.Context, id uuid.UUID) error
	HardDelete(ctx context.Context, id uuid.UUID) error
}

// sessionRepositoryImpl is the GORM implementation of SessionRepository
type sessionRepositoryImpl struct {
	db *gorm.DB
}

// NewSessionRepository creates a new instance of SessionRepository
func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepositoryImpl{db: db}
}

// CreateWithParticipants creates a session and its participant rows in one
// transaction. A failure on any row rolls back the whole operation.
func (r *sessionRepositoryImpl) CreateWithParticipants(ctx context.Context, session *domain.Session, participants []*domain.Participant) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(session).Error; err != nil {
			return err
		}
		for _, p := range participants {
			p.SessionID = session.ID
			p.SessionName = session.Title
			if err := tx.Create(p).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// FindByID finds a non-deleted session by ID with participants and their users
func (r *sessionRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	var session domain.Session
	if err := r.db.WithContext(ctx).
		Preload("Participants.User").
		Where("id = ? AND is_deleted = ?", id, false).
		First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// FindByIDAnyVisibility finds a session by ID regardless of the deleted flag
func (r *sessionRepositoryImpl) FindByIDAnyVisibility(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	var session domain.Session
	if err := r.db.WithContext(ctx).
		Preload("Participants.User").
		Where("id = ?", id).
		First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// FindByParticipantRoles finds non-deleted sessions where the user holds one
// of the given roles, newest first
func (r *sessionRepositoryImpl) FindByParticipantRoles(ctx context.Context, userID uuid.UUID, roles []domain.Role) ([]*domain.Session, error) {
	var sessions []*domain.Session
	if err := r.db.WithContext(ctx).
		Preload("Participants.User").
		Joins("JOIN participants ON participants.session_id = sessions.id").
		Where("participants.user_id = ? AND participants.role IN ? AND sessions.is_deleted = ?", userID, roles, false).
		Order("sessions.created_at DESC").
		Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

// FindDeletedByCreator finds soft-deleted sessions created by the user,
// bypassing the default visibility filter
func (r *sessionRepositoryImpl) FindDeletedByCreator(ctx context.Context, userID uuid.UUID) ([]*domain.Session, error) {
	var sessions []*domain.Session
	if err := r.db.WithContext(ctx).
		Preload("Participants.User").
		Joins("JOIN participants ON participants.session_id = sessions.id").
		Where("participants.user_id = ? AND participants.role = ? AND sessions.is_deleted = ?", userID, domain.RoleCreator, true).
		Order("sessions.created_at DESC").
		Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

// FindDeletedBefore finds soft-deleted sessions whose last modification is
// older than the cutoff. The soft delete itself bumps updated_at, so this
// measures time spent in the deleted state.
func (r *sessionRepositoryImpl) FindDeletedBefore(ctx context.Context, cutoff time.Time) ([]*domain.Session, error) {
	var sessions []*domain.Session
	if err := r.db.WithContext(ctx).
		Where("is_deleted = ? AND updated_at < ?", true, cutoff).
		Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

// FindParticipant finds the participant link for a session and user
func (r *sessionRepositoryImpl) FindParticipant(ctx context.Context, sessionID, userID uuid.UUID) (*domain.Participant, error) {
	var participant domain.Participant
	if err := r.db.WithContext(ctx).
		Where("session_id = ? AND user_id = ?", sessionID, userID).
		First(&participant).Error; err != nil {
		return nil, err
	}
	return &participant, nil
}

// SoftDelete sets the deleted flag on a session visible under the default
// filter. An already-deleted session is unreachable and reports not found.
func (r *sessionRepositoryImpl) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Session{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Update("is_deleted", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Restore clears the deleted flag, bypassing the visibility filter
func (r *sessionRepositoryImpl) Restore(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Session{}).
		Where("id = ?", id).
		Update("is_deleted", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// HardDelete permanently removes a session, its participant rows and its
// tasks in one transaction, regardless of the deleted flag
func (r *sessionRepositoryImpl) HardDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var session domain.Session
		if err := tx.Where("id = ?", id).First(&session).Error; err != nil {
			return err
		}
		if err := tx.Where("session_id = ?", id).Delete(&domain.Participant{}).Error; err != nil {
			return err
		}
		if err := tx.Where("session_id = ?", id).Delete(&domain.Task{}).Error; err != nil {
			return err
		}
		return tx.Delete(&session).Error
	})
}
