package internal

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"backoffice/pkg/config"
	"backoffice/pkg/jwt"
	"backoffice/pkg/logger"
	"backoffice/pkg/middleware"
	"backoffice/pkg/queue"
	"backoffice/pkg/s3"
	adminHTTP "backoffice/services/admin/internal/controller/http"
	"backoffice/services/admin/internal/repo/persistent"
	"backoffice/services/admin/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "backoffice/services/admin/docs" // Swagger docs
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, s3Client *s3.Client, queueClient *queue.Client, redisClient *redis.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)

	// Initialize repositories
	userRepo := persistent.NewUserRepository(db)
	roleRepo := persistent.NewRoleRepository(db)
	activityRepo := persistent.NewActivityLogRepository(db)

	// Initialize use cases
	avatarPipeline := usecase.NewAvatarPipeline(s3Client, log)
	activityUseCase := usecase.NewActivityLogUseCase(activityRepo, queueClient, log)
	userUseCase := usecase.NewUserUseCase(userRepo, avatarPipeline, activityUseCase, log)
	roleUseCase := usecase.NewRoleUseCase(roleRepo, activityUseCase, log)
	usernameChecker := usecase.NewUsernameChecker(userRepo, usecase.DefaultDebounce)

	// Initialize HTTP handlers
	userHandler := adminHTTP.NewUserHandler(userUseCase, log)
	roleHandler := adminHTTP.NewRoleHandler(roleUseCase, userUseCase, log)
	activityHandler := adminHTTP.NewActivityHandler(activityUseCase, log)
	availabilityHandler := adminHTTP.NewAvailabilityHandler(usernameChecker, log)

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(jwtService))
	api.Use(middleware.AdminMiddleware())
	api.Use(middleware.RateLimitMiddleware(redisClient, 100, time.Minute))

	{
		api.GET("/users", userHandler.ListUsers)
		api.GET("/users/check-username", availabilityHandler.CheckUsername)
		api.GET("/users/:id", userHandler.GetUser)
		api.PATCH("/users/:id", userHandler.UpdateUser)
		api.POST("/users/:id/avatar", userHandler.UploadAvatar)
		api.DELETE("/users/:id", userHandler.DeleteUser)
		api.POST("/users/bulk-delete", userHandler.BulkDeleteUsers)

		api.GET("/roles", roleHandler.ListRoles)
		api.POST("/roles", roleHandler.CreateRole)
		api.PUT("/roles/:id", roleHandler.UpdateRole)
		api.DELETE("/roles/:id", roleHandler.DeleteRole)

		api.GET("/activity", activityHandler.ListActivity)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Admin service starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down admin service...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close database connection
	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	// Close RabbitMQ connection
	if queueClient != nil {
		queueClient.Close()
	}

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("Admin service exited")
}
