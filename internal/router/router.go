package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"session-task-api/internal/auth"
	"session-task-api/internal/config"
	"session-task-api/internal/database"
	"session-task-api/internal/handler"
	"session-task-api/internal/metrics"
	"session-task-api/internal/middleware"
	"session-task-api/internal/repository"
	"session-task-api/internal/service"
)

// Config holds all dependencies for router setup
type Config struct {
	DB      *gorm.DB
	Redis   *redis.Client
	Logger  *zap.Logger
	Metrics *metrics.Metrics
	JWT     config.JWTConfig
	CORS    config.CORSConfig
}

// Setup creates the gin engine with all routes and middleware configured
func Setup(cfg Config) *gin.Engine {
	r := gin.New()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}

	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.Expiry)
	blacklist := auth.NewBlacklist(cfg.Redis)

	// Repositories
	userRepo := repository.NewUserRepository(cfg.DB)
	sessionRepo := repository.NewSessionRepository(cfg.DB)
	taskRepo := repository.NewTaskRepository(cfg.DB)

	// Services
	authService := service.NewAuthService(userRepo, tokens, blacklist, cfg.Logger)
	sessionService := service.NewSessionService(sessionRepo, userRepo, taskRepo, cfg.Metrics, cfg.Logger)
	taskService := service.NewTaskService(taskRepo, sessionRepo, userRepo, cfg.Metrics, cfg.Logger)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, cfg.JWT, cfg.Logger)
	sessionHandler := handler.NewSessionHandler(sessionService, cfg.Logger)
	taskHandler := handler.NewTaskHandler(taskService, cfg.Logger)

	authRequired := middleware.Auth(tokens, blacklist, cfg.JWT.CookieName)

	// Operational endpoints, no authentication
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		if !database.IsConnected() {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "database unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	// Public auth endpoints
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)

	// Authenticated endpoints
	authed := r.Group("", authRequired)
	authed.POST("/logout", authHandler.Logout)
	authed.GET("/current-user", authHandler.CurrentUser)
	authed.GET("/users/:userNameOrEmail", authHandler.LookupUser)

	sessions := authed.Group("/sessions")
	sessions.POST("", sessionHandler.CreateSession)
	sessions.GET("/:userName", sessionHandler.GetCreatedSessions)
	sessions.GET("/participant/:userName", sessionHandler.GetParticipantSessions)
	sessions.GET("/deleted/:userName", sessionHandler.GetDeletedSessions)
	sessions.GET("/detail/:sessionId", sessionHandler.GetSessionDetail)
	sessions.DELETE("/:sessionId", sessionHandler.SoftDeleteSession)
	sessions.DELETE("/hard-delete/:sessionId", sessionHandler.HardDeleteSession)
	sessions.PUT("/restore/:sessionId", sessionHandler.RestoreSession)
	sessions.POST("/:sessionId/tasks", taskHandler.CreateTask)
	// The GET tree already claims ":userName" at this position and gin allows
	// only one wildcard name per node, so alias the param for the task list.
	sessions.GET("/:userName/tasks", aliasParam("userName", "sessionId", taskHandler.ListSessionTasks))

	tasks := authed.Group("/tasks")
	tasks.PUT("/:taskId", taskHandler.EditTask)
	tasks.PUT("/:taskId/status", taskHandler.UpdateTaskStatus)
	tasks.DELETE("/:taskId", taskHandler.DeleteTask)
	tasks.GET("/completed/:userName", taskHandler.CountCompletedTasks)

	return r
}

// aliasParam exposes an existing path parameter under a second name before
// invoking the handler
func aliasParam(from, to string, h gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Params = append(c.Params, gin.Param{Key: to, Value: c.Param(from)})
		h(c)
	}
}
