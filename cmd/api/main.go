package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yourusername/academy-api/internal/config"
	"github.com/yourusername/academy-api/internal/handler"
	"github.com/yourusername/academy-api/internal/middleware"
	pgRepo "github.com/yourusername/academy-api/internal/repository/postgres"
	redisRepo "github.com/yourusername/academy-api/internal/repository/redis"
	"github.com/yourusername/academy-api/internal/service"
	"github.com/yourusername/academy-api/pkg/auth"
	"github.com/yourusername/academy-api/pkg/database"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	// Two database handles with distinct roles. The service-role handle is
	// the only path that can read correct_answer or insert attempts; the
	// app-role handle serves every client-facing read.
	serviceDB, err := database.NewPostgresDB(cfg.Database.ServiceConnectionString())
	if err != nil {
		log.Printf("Failed to connect to database (service role): %v", err)
		os.Exit(1)
	}

	if err := database.MigrateDB(serviceDB); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		os.Exit(1)
	}

	appDB, err := database.NewPostgresDB(cfg.Database.AppConnectionString())
	if err != nil {
		log.Printf("Failed to connect to database (app role): %v", err)
		os.Exit(1)
	}

	redisClient, err := database.NewUniversalRedisClient(cfg.Redis)
	if err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		os.Exit(1)
	}
	log.Println("Successfully connected to Redis")

	// Elevated repositories (service role)
	questionRepo := pgRepo.NewQuestionRepo(serviceDB)
	attemptRepo := pgRepo.NewAttemptRepo(serviceDB)
	gradingQuizRepo := pgRepo.NewQuizRepo(serviceDB)

	// Restricted repositories (app role)
	quizRepo := pgRepo.NewQuizRepo(appDB)
	clientAttemptRepo := pgRepo.NewAttemptRepo(appDB)

	keyCache, err := redisRepo.NewKeyCache(redisClient)
	if err != nil {
		log.Printf("Failed to initialize KeyCache: %v", err)
		os.Exit(1)
	}

	jwtVerifier, err := auth.NewJWTVerifier(cfg.JWT.Secret)
	if err != nil {
		log.Printf("Failed to initialize JWT verifier: %v", err)
		os.Exit(1)
	}

	gradingService := service.NewGradingService(
		gradingQuizRepo,
		questionRepo,
		attemptRepo,
		keyCache,
		service.GradingConfig{
			MaxAttemptsPerWindow: cfg.Grading.MaxAttemptsPerWindow,
			Window:               cfg.Grading.Window(),
			RequestTimeout:       cfg.Grading.RequestTimeout(),
			KeyCacheTTL:          cfg.Grading.KeyCacheTTL(),
		},
	)
	quizService := service.NewQuizService(quizRepo, clientAttemptRepo)

	gradingHandler := handler.NewGradingHandler(gradingService)
	quizHandler := handler.NewQuizHandler(quizService)
	attemptHandler := handler.NewAttemptHandler(attemptRepo, gradingQuizRepo)

	authMW := middleware.NewAuthMiddleware(jwtVerifier)

	router := gin.Default()

	// Permissive CORS: the portal is served from a different origin. The
	// cors middleware answers OPTIONS preflights before any auth runs.
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "Accept"}
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		quizzes := api.Group("/quizzes", authMW.RequireAuth())
		{
			quizzes.POST("/submit", gradingHandler.SubmitQuiz)

			byID := quizzes.Group("/:id", middleware.ExtractUUIDParam("id", "quizID"))
			{
				byID.GET("", quizHandler.GetQuiz)
				byID.GET("/attempts", quizHandler.GetQuizAttempts)
				byID.GET("/passed", quizHandler.GetPassedStatus)
			}
		}

		admin := api.Group("/admin", authMW.RequireAuth(), authMW.AdminOnly())
		{
			admin.GET("/quizzes/:id/attempts/export",
				middleware.ExtractUUIDParam("id", "quizID"),
				attemptHandler.ExportQuizAttempts)
		}
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		log.Printf("Server listening on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Server error: %v", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Forced shutdown: %v", err)
	}

	if err := redisClient.Close(); err != nil {
		log.Printf("Error closing Redis client: %v", err)
	}

	log.Println("Server stopped")
}
