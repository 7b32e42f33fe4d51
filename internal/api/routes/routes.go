package routes

import (
	"context"
	"fmt"
	"net/http"

	"one-on-one-backend/internal/api/handlers"
	"one-on-one-backend/internal/api/middleware"
	"one-on-one-backend/internal/auth"
	"one-on-one-backend/internal/config"
	"one-on-one-backend/internal/logger"
	"one-on-one-backend/internal/notify"
	"one-on-one-backend/internal/observability"
	"one-on-one-backend/internal/repository"
	"one-on-one-backend/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"
)

// AuthConfigPath is where the OAuth provider configuration is read from
const AuthConfigPath = "config/auth.yaml"

// App is the wired HTTP router plus the services the background jobs need
type App struct {
	Router        *gin.Engine
	Notifications service.NotificationServiceInterface
	Metrics       service.MetricsServiceInterface
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(ctx context.Context, db *gorm.DB, cfg *config.Config, version string) (*App, error) {
	log := logger.New()

	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))
	if cfg.OTelEnabled {
		router.Use(otelgin.Middleware(observability.ServiceName))
	}

	// Initialize validator
	validator := service.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	oneOnOneRepo := repository.NewOneOnOneRepository(db)
	answerRepo := repository.NewAnswerRepository(db)
	actionItemRepo := repository.NewActionItemRepository(db)
	metricsRepo := repository.NewMetricsRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// Outbound delivery for notifications
	deliverer, err := notify.NewFromConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize notification delivery: %w", err)
	}

	// Directory search is optional
	var directory service.DirectoryServiceInterface
	if cfg.LDAPConfigured() {
		directory = service.NewDirectoryService(cfg)
	} else {
		log.Info("LDAP is not configured, directory search disabled")
	}

	// Initialize services
	userService := service.NewUserService(userRepo, teamRepo, directory, validator)
	teamService := service.NewTeamService(teamRepo, userRepo, validator)
	questionService := service.NewQuestionService(questionRepo, oneOnOneRepo, userRepo)
	notificationService := service.NewNotificationService(notificationRepo, actionItemRepo, userRepo, deliverer, validator)
	metricsService := service.NewMetricsService(oneOnOneRepo, answerRepo, metricsRepo)
	oneOnOneService := service.NewOneOnOneService(oneOnOneRepo, teamRepo, userRepo, notificationService, metricsService, validator)
	answerService := service.NewAnswerService(answerRepo, oneOnOneRepo, questionRepo, userRepo, validator)
	actionItemService := service.NewActionItemService(actionItemRepo, oneOnOneRepo, validator)
	analyticsService := service.NewAnalyticsService(metricsRepo, oneOnOneRepo, teamRepo, userRepo, actionItemRepo, notificationRepo)

	// Initialize auth configuration and services
	var authHandler *auth.AuthHandler
	var authMiddleware *auth.AuthMiddleware
	authConfig, err := auth.LoadAuthConfig(AuthConfigPath)
	if err != nil {
		log.WithError(err).Warn("Failed to load auth config, API routes will reject requests")
	} else {
		authService, err := auth.NewAuthService(authConfig, userRepo, cfg.IsAdminEmail)
		if err != nil {
			log.WithError(err).Warn("Failed to initialize auth service, API routes will reject requests")
		} else {
			authHandler = auth.NewAuthHandler(authService)
			authMiddleware = auth.NewAuthMiddleware(authService)
		}
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, version)
	userHandler := handlers.NewUserHandler(userService)
	teamHandler := handlers.NewTeamHandler(teamService)
	questionHandler := handlers.NewQuestionHandler(questionService)
	oneOnOneHandler := handlers.NewOneOnOneHandler(oneOnOneService)
	answerHandler := handlers.NewAnswerHandler(answerService)
	actionItemHandler := handlers.NewActionItemHandler(actionItemService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService, metricsService)

	// Health check routes
	registerHealthRoutes(router, healthHandler)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	if authHandler != nil {
		authGroup := router.Group("/api/auth")
		{
			providerGroup := authGroup.Group("/:provider")
			{
				providerGroup.GET("/start", authHandler.Start)
				providerGroup.GET("/handler/frame", authHandler.HandlerFrame)
			}
			authGroup.POST("/refresh", authHandler.Refresh)
			authGroup.POST("/logout", authHandler.Logout)
		}
	}

	// Everything under /api requires a signed-in user
	api := router.Group("/api")
	if authMiddleware != nil {
		api.Use(authMiddleware.RequireAuth(), authMiddleware.LoadActor())
	} else {
		api.Use(authUnavailable())
	}

	{
		api.GET("/me", userHandler.GetCurrentUser)
		api.GET("/questions", questionHandler.ListQuestions)
		api.GET("/dashboard", analyticsHandler.Dashboard)

		// One-on-one routes for participants
		oneOnOnes := api.Group("/one-on-ones")
		{
			oneOnOnes.GET("", oneOnOneHandler.ListOneOnOnes)
			oneOnOnes.POST("/answers", answerHandler.SubmitAnswer)
			oneOnOnes.POST("/answers/batch", answerHandler.SubmitAnswers)
			oneOnOnes.POST("/notes", answerHandler.SaveNote)
			oneOnOnes.GET("/:id", oneOnOneHandler.GetOneOnOne)
			oneOnOnes.PATCH("/:id/status", oneOnOneHandler.UpdateStatus)
			oneOnOnes.GET("/:id/questions", questionHandler.ListSessionQuestions)
			oneOnOnes.GET("/:id/metrics", analyticsHandler.SessionMetrics)
			oneOnOnes.POST("/:id/action-items", actionItemHandler.CreateActionItem)
		}

		// Action item routes
		actionItems := api.Group("/action-items")
		{
			actionItems.GET("", actionItemHandler.ListMyActionItems)
			actionItems.PATCH("/:id", actionItemHandler.UpdateActionItem)
			actionItems.DELETE("/:id", actionItemHandler.DeleteActionItem)
		}

		// Analytics routes
		analytics := api.Group("/analytics")
		{
			analytics.GET("/developers/:id/metrics", analyticsHandler.DeveloperTrend)
			analytics.GET("/teams/:id/summary", analyticsHandler.TeamSummary)
		}

		// Notification routes
		notifications := api.Group("/notifications")
		{
			notifications.GET("", notificationHandler.ListNotifications)
			notifications.GET("/unread-count", notificationHandler.UnreadCount)
			notifications.PATCH("/:id/read", notificationHandler.MarkRead)
			notifications.POST("/read-all", notificationHandler.MarkAllRead)
		}

		// Manager routes; role checks happen in the services
		manager := api.Group("/manager")
		{
			manager.GET("/teams", teamHandler.ListManagedTeams)
			manager.POST("/one-on-ones", oneOnOneHandler.CreateOneOnOne)
			manager.POST("/one-on-ones/bulk", oneOnOneHandler.BulkCreateOneOnOnes)
			manager.POST("/one-on-ones/reminders", oneOnOneHandler.SendReminders)
			manager.DELETE("/one-on-ones/:id", oneOnOneHandler.DeleteOneOnOne)
		}

		// Admin routes
		admin := api.Group("/admin")
		{
			teams := admin.Group("/teams")
			{
				teams.GET("", teamHandler.ListTeams)
				teams.POST("", teamHandler.CreateTeam)
				teams.GET("/:teamId", teamHandler.GetTeam)
				teams.PATCH("/:teamId", teamHandler.UpdateTeam)
				teams.DELETE("/:teamId", teamHandler.DeleteTeam)
			}

			users := admin.Group("/users")
			{
				users.GET("", userHandler.ListUsers)
				users.POST("", userHandler.ProvisionUser)
				users.PATCH("/:userId", userHandler.UpdateUser)
			}

			admin.GET("/directory/search", userHandler.SearchDirectory)
			admin.POST("/notifications", notificationHandler.CreateNotification)
			admin.POST("/notifications/scan", notificationHandler.RunScans)
			admin.POST("/metrics/retry", analyticsHandler.RetryMetricsJobs)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString(middleware.RequestIDKey),
		})
	})

	return &App{
		Router:        router,
		Notifications: notificationService,
		Metrics:       metricsService,
	}, nil
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB, version string) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	registerHealthRoutes(router, handlers.NewHealthHandler(db, version))
	return router
}

func registerHealthRoutes(router *gin.Engine, h *handlers.HealthHandler) {
	router.GET("/health", h.Health)
	router.GET("/health/ready", h.Ready)
	router.GET("/health/live", h.Live)
}

// authUnavailable rejects API calls when no identity provider could be configured
func authUnavailable() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "authentication is not configured"})
	}
}
