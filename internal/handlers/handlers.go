package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/hrithikcode/TO-DO-LIST/internal/config"
	"github.com/hrithikcode/TO-DO-LIST/internal/middleware"
	"github.com/hrithikcode/TO-DO-LIST/internal/service"
)

type HandlerSet struct {
	log   zerolog.Logger
	cfg   *config.AppConfig
	auth  *service.AuthService
	reset *service.ResetService
	todos *service.TodoService
	db    *pgxpool.Pool
	cache *redis.Client
}

func NewHandlerSet(
	log zerolog.Logger,
	cfg *config.AppConfig,
	auth *service.AuthService,
	reset *service.ResetService,
	todos *service.TodoService,
	db *pgxpool.Pool,
	cache *redis.Client,
) HandlerSet {
	return HandlerSet{
		log:   log,
		cfg:   cfg,
		auth:  auth,
		reset: reset,
		todos: todos,
		db:    db,
		cache: cache,
	}
}

func (h HandlerSet) Routes(router *gin.RouterGroup) {
	router.GET("/healthz", h.Health)

	v1 := router.Group("/v1")
	{
		auth := v1.Group("/auth")
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/google", h.GoogleAuth)
		auth.POST("/forgot-password", h.ForgotPassword)
		auth.POST("/reset-password", h.ResetPassword)
		auth.POST("/verify-reset-token", h.VerifyResetToken)
		auth.POST("/logout", h.Logout)

		protected := v1.Group("/auth")
		protected.Use(middleware.Auth(h.auth))
		protected.GET("/me", h.Me)
	}

	todos := v1.Group("/todos")
	todos.Use(middleware.Auth(h.auth))
	todos.GET("", h.ListTodos)
	todos.POST("", h.CreateTodo)
	todos.PUT("/:id", h.UpdateTodo)
	todos.DELETE("/:id", h.DeleteTodo)
	todos.POST("/email-summary", h.EmailSummary)
}
