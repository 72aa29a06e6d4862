package domain

import (
	"errors"
	"strings"
)

const maxTitleLength = 200

var (
	ErrTitleRequired       = errors.New("title is required")
	ErrTitleTooLong        = errors.New("title must be 200 characters or fewer")
	ErrDescriptionRequired = errors.New("description is required")
	ErrParticipantsEmpty   = errors.New("at least one participant is required")
)

// ValidateSessionInput checks the user-supplied session fields.
// Pure function, no side effects; services translate the error into
// a validation response.
func ValidateSessionInput(title, description string) error {
	if strings.TrimSpace(title) == "" {
		return ErrTitleRequired
	}
	if len(title) > maxTitleLength {
		return ErrTitleTooLong
	}
	if strings.TrimSpace(description) == "" {
		return ErrDescriptionRequired
	}
	return nil
}

// ValidateTaskTitle checks a task title against the same length contract
func ValidateTaskTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrTitleRequired
	}
	if len(title) > maxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}
