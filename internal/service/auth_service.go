package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"session-task-api/internal/auth"
	"session-task-api/internal/domain"
	"session-task-api/internal/dto"
	"session-task-api/internal/repository"
	"session-task-api/internal/response"
)

// AuthService defines the interface for the user directory and
// credential handling
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.UserResponse, string, error)
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
	GetUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
	LookupUser(ctx context.Context, nameOrEmail string) (*dto.UserResponse, error)
}

// authServiceImpl is the implementation of AuthService
type authServiceImpl struct {
	userRepo  repository.UserRepository
	tokens    *auth.TokenManager
	blacklist *auth.Blacklist
	logger    *zap.Logger
}

// NewAuthService creates a new instance of AuthService
func NewAuthService(
	userRepo repository.UserRepository,
	tokens *auth.TokenManager,
	blacklist *auth.Blacklist,
	logger *zap.Logger,
) AuthService {
	return &authServiceImpl{
		userRepo:  userRepo,
		tokens:    tokens,
		blacklist: blacklist,
		logger:    logger,
	}
}

// Register creates an account after checking name and email uniqueness
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if name == "" {
		return nil, response.NewAppError(response.ErrCodeValidation, "Username is required", "")
	}
	if email == "" {
		return nil, response.NewAppError(response.ErrCodeValidation, "Email is required", "")
	}
	if req.Password == "" {
		return nil, response.NewAppError(response.ErrCodeValidation, "Password is required", "")
	}

	if _, err := s.userRepo.FindByName(ctx, name); err == nil {
		return nil, response.NewAppError(response.ErrCodeAlreadyExists, "Username already exists", "")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check username", err.Error())
	}

	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, response.NewAppError(response.ErrCodeAlreadyExists, "Email already exists", "")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check email", err.Error())
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to hash password", err.Error())
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(passwordHash),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create user", err.Error())
	}

	s.logger.Info("User registered", zap.String("user_id", user.ID.String()))

	return toUserResponse(user), nil
}

// Login verifies credentials by name or email and issues a session token
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.UserResponse, string, error) {
	user, err := s.userRepo.FindByNameOrEmail(ctx, strings.TrimSpace(req.UserNameOrEmail))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", response.NewAppError(response.ErrCodeNotFound, "User not found", "")
		}
		return nil, "", response.NewAppError(response.ErrCodeInternal, "Failed to fetch user", err.Error())
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", response.NewAppError(response.ErrCodeValidation, "Invalid login attempt", "")
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, "", response.NewAppError(response.ErrCodeInternal, "Failed to issue token", err.Error())
	}

	return toUserResponse(user), token, nil
}

// Logout revokes the presented token until its natural expiry
func (s *authServiceImpl) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if err := s.blacklist.Revoke(ctx, tokenID, ttl); err != nil {
		// Cookie clearing still logs the client out; losing the blacklist
		// entry only leaves the token valid until expiry.
		s.logger.Warn("Failed to blacklist token", zap.Error(err))
	}
	return nil
}

// GetUser returns the profile of the identified user
func (s *authServiceImpl) GetUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "User not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch user", err.Error())
	}
	return toUserResponse(user), nil
}

// LookupUser returns the public profile matching a display name or email
func (s *authServiceImpl) LookupUser(ctx context.Context, nameOrEmail string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByNameOrEmail(ctx, nameOrEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "User not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch user", err.Error())
	}
	return toUserResponse(user), nil
}

// toUserResponse converts domain.User to dto.UserResponse
func toUserResponse(user *domain.User) *dto.UserResponse {
	return &dto.UserResponse{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
	}
}
