package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"session-task-api/internal/domain"
)

// setupTestDB opens an in-memory SQLite database with the schema created by
// hand; the postgres defaults in the model tags do not translate to SQLite.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	statements := []string{
		`CREATE TABLE users (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)`,
		`CREATE TABLE sessions (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			is_deleted BOOLEAN NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE participants (
			user_id TEXT NOT NULL,
			session_id TEXT NOT NULL,
			session_name TEXT,
			role TEXT NOT NULL DEFAULT 'User',
			created_at DATETIME NOT NULL,
			PRIMARY KEY (user_id, session_id)
		)`,
		`CREATE TABLE tasks (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			session_id TEXT NOT NULL,
			title TEXT NOT NULL,
			description TEXT,
			due_date DATETIME,
			status TEXT NOT NULL DEFAULT 'To Do',
			priority TEXT NOT NULL DEFAULT 'Low',
			assigned_to_user_id TEXT,
			created_by_user_id TEXT
		)`,
	}
	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("failed to create schema: %v", err)
		}
	}

	return db
}

func seedUser(t *testing.T, db *gorm.DB, name string) *domain.User {
	t.Helper()

	user := &domain.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        name + "@example.com",
		PasswordHash: "hash",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to seed user %s: %v", name, err)
	}
	return user
}

// seedSession creates a session with the first user as Creator and the rest
// as plain Users
func seedSession(t *testing.T, db *gorm.DB, title string, users ...*domain.User) *domain.Session {
	t.Helper()

	participants := make([]*domain.Participant, 0, len(users))
	for i, user := range users {
		role := domain.RoleUser
		if i == 0 {
			role = domain.RoleCreator
		}
		participants = append(participants, &domain.Participant{
			UserID: user.ID,
			Role:   role,
		})
	}

	session := &domain.Session{Title: title, Description: "seeded"}
	repo := NewSessionRepository(db)
	if err := repo.CreateWithParticipants(context.Background(), session, participants); err != nil {
		t.Fatalf("failed to seed session %s: %v", title, err)
	}
	return session
}
