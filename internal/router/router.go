package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"kanban-board-api/internal/authz"
	"kanban-board-api/internal/handler"
	"kanban-board-api/internal/metrics"
	"kanban-board-api/internal/middleware"
	"kanban-board-api/internal/repository"
	"kanban-board-api/internal/service"
)

// Config holds router dependencies
type Config struct {
	DB             *gorm.DB
	Logger         *zap.Logger
	JWTSecret      string
	TokenTTL       time.Duration
	BasePath       string
	AllowedOrigins []string
	Metrics        *metrics.Metrics
}

// Setup wires repositories, services and handlers into a gin engine.
func Setup(cfg Config) *gin.Engine {
	r := gin.New()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}

	tokenTTL := cfg.TokenTTL
	if tokenTTL == 0 {
		tokenTTL = 24 * time.Hour
	}

	// Repositories
	userRepo := repository.NewUserRepository(cfg.DB)
	boardRepo := repository.NewBoardRepository(cfg.DB)
	taskRepo := repository.NewTaskRepository(cfg.DB)
	commentRepo := repository.NewCommentRepository(cfg.DB)

	// Authorization engine
	engine := authz.NewEngine(cfg.Metrics, cfg.Logger)

	// Services
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, tokenTTL, cfg.Logger)
	userService := service.NewUserService(userRepo)
	boardService := service.NewBoardService(boardRepo, userRepo, commentRepo, engine, cfg.Metrics, cfg.Logger)
	taskService := service.NewTaskService(taskRepo, boardRepo, userRepo, commentRepo, engine, cfg.Metrics, cfg.Logger)
	commentService := service.NewCommentService(commentRepo, taskRepo, boardRepo, userRepo, engine, cfg.Metrics, cfg.Logger)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	boardHandler := handler.NewBoardHandler(boardService)
	taskHandler := handler.NewTaskHandler(taskService)
	commentHandler := handler.NewCommentHandler(commentService)

	registerOps := func(group *gin.RouterGroup) {
		registerHealth(group, cfg.DB)
		group.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	// Health and metrics live at the root and under the base path so
	// probes work with or without ingress path rewriting.
	registerHealth(&r.RouterGroup, cfg.DB)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group(cfg.BasePath)
	if cfg.BasePath != "" {
		registerOps(api)
	}

	// Public endpoints
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)

	// Authenticated endpoints
	protected := api.Group("")
	protected.Use(middleware.Auth(cfg.JWTSecret))
	{
		protected.GET("/email-check", userHandler.CheckEmail)

		protected.GET("/boards", boardHandler.ListBoards)
		protected.POST("/boards", boardHandler.CreateBoard)
		protected.GET("/boards/:boardId", boardHandler.GetBoard)
		protected.PATCH("/boards/:boardId", boardHandler.UpdateBoard)
		protected.DELETE("/boards/:boardId", boardHandler.DeleteBoard)

		protected.POST("/tasks", taskHandler.CreateTask)
		protected.GET("/tasks/assigned-to-me", taskHandler.ListAssignedToMe)
		protected.GET("/tasks/reviewing", taskHandler.ListReviewing)
		protected.PATCH("/tasks/:taskId", taskHandler.UpdateTask)
		protected.DELETE("/tasks/:taskId", taskHandler.DeleteTask)

		protected.GET("/tasks/:taskId/comments", commentHandler.ListComments)
		protected.POST("/tasks/:taskId/comments", commentHandler.CreateComment)
		protected.DELETE("/tasks/:taskId/comments/:commentId", commentHandler.DeleteComment)
	}

	return r
}

func registerHealth(group *gin.RouterGroup, db *gorm.DB) {
	group.GET("/health", func(c *gin.Context) {
		dbStatus := "up"
		if db == nil {
			dbStatus = "down"
		} else if sqlDB, err := db.DB(); err != nil || sqlDB.Ping() != nil {
			dbStatus = "down"
		}

		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"database": dbStatus,
		})
	})
}
