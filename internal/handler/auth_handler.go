package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"session-task-api/internal/auth"
	"session-task-api/internal/config"
	"session-task-api/internal/dto"
	"session-task-api/internal/middleware"
	"session-task-api/internal/response"
	"session-task-api/internal/service"
)

// AuthHandler serves registration, login and profile endpoints. The session
// token travels in an HttpOnly cookie.
type AuthHandler struct {
	authService service.AuthService
	jwtConfig   config.JWTConfig
	logger      *zap.Logger
}

func NewAuthHandler(authService service.AuthService, jwtConfig config.JWTConfig, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		jwtConfig:   jwtConfig,
		logger:      logger,
	}
}

// Register godoc
// @Summary      Register a new account
// @Description  Creates a user with a unique username and email
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body dto.RegisterRequest true "Registration request"
// @Success      201 {object} response.SuccessResponse{data=dto.UserResponse} "Account created"
// @Failure      400 {object} response.ErrorResponse "Invalid request body"
// @Failure      409 {object} response.ErrorResponse "Username or email already exists"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	user, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, user)
}

// Login godoc
// @Summary      Log in
// @Description  Verifies credentials by username or email and sets the auth cookie
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "Login request"
// @Success      200 {object} response.SuccessResponse{data=dto.UserResponse} "Logged in"
// @Failure      400 {object} response.ErrorResponse "Invalid credentials"
// @Failure      404 {object} response.ErrorResponse "User not found"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	h.setAuthCookie(c, token, req.RememberMe)

	response.SendSuccess(c, http.StatusOK, user)
}

// Logout godoc
// @Summary      Log out
// @Description  Revokes the current token and clears the auth cookie
// @Tags         auth
// @Produce      json
// @Success      200 {object} response.SuccessResponse "Logged out"
// @Failure      401 {object} response.ErrorResponse "Not authenticated"
// @Router       /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if value, ok := c.Get(middleware.ContextClaimsKey); ok {
		if claims, ok := value.(*auth.Claims); ok {
			if err := h.authService.Logout(c.Request.Context(), claims.TokenID, claims.ExpiresAt); err != nil {
				handleServiceError(c, h.logger, err)
				return
			}
		}
	}

	h.clearAuthCookie(c)

	response.SendSuccess(c, http.StatusOK, nil)
}

// CurrentUser godoc
// @Summary      Get the authenticated user
// @Description  Returns the profile of the user identified by the auth cookie
// @Tags         auth
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=dto.UserResponse} "Current user"
// @Failure      401 {object} response.ErrorResponse "Not authenticated"
// @Failure      404 {object} response.ErrorResponse "User not found"
// @Router       /current-user [get]
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Not authenticated")
		return
	}

	user, err := h.authService.GetUser(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, user)
}

// LookupUser godoc
// @Summary      Look up a user
// @Description  Returns the public profile matching a username or email
// @Tags         auth
// @Produce      json
// @Param        userNameOrEmail path string true "Username or email"
// @Success      200 {object} response.SuccessResponse{data=dto.UserResponse} "User found"
// @Failure      404 {object} response.ErrorResponse "User not found"
// @Failure      500 {object} response.ErrorResponse "Server error"
// @Router       /users/{userNameOrEmail} [get]
func (h *AuthHandler) LookupUser(c *gin.Context) {
	user, err := h.authService.LookupUser(c.Request.Context(), c.Param("userNameOrEmail"))
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, user)
}

// setAuthCookie writes the token cookie. With rememberMe the cookie persists
// for the token lifetime; otherwise it lives for the browser session only.
func (h *AuthHandler) setAuthCookie(c *gin.Context, token string, rememberMe bool) {
	maxAge := 0
	if rememberMe {
		maxAge = int(h.jwtConfig.Expiry.Seconds())
	}

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     h.jwtConfig.CookieName,
		Value:    token,
		Path:     "/",
		Domain:   h.jwtConfig.Domain,
		MaxAge:   maxAge,
		Secure:   c.Request.TLS != nil,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearAuthCookie(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     h.jwtConfig.CookieName,
		Value:    "",
		Path:     "/",
		Domain:   h.jwtConfig.Domain,
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
