// @title Quiz Forge API
// @version 1.0
// @description Quiz management, scoring and LLM-backed quiz generation.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8090
// @BasePath /
// @schemes http https
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"quiz-forge/internal/adapter"
	"quiz-forge/internal/adapter/quizgen"
	"quiz-forge/internal/cache"
	"quiz-forge/internal/config"
	"quiz-forge/internal/database"
	"quiz-forge/internal/domain"
	"quiz-forge/internal/handler"
	"quiz-forge/internal/logger"
	"quiz-forge/internal/middleware"
	"quiz-forge/internal/repository"
	"quiz-forge/internal/service"

	_ "quiz-forge/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		)

		return err
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Connect to database
	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	quizRepository := repository.NewQuizDatabaseAdapter(db)
	resultRepository := repository.NewSQLXQuizResultRepository(db)

	// Redis is optional; without it reads simply skip the cache.
	var cacheAdapter domain.Cache
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Warn("Redis unavailable, running without cache", zap.Error(err))
	} else {
		cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
		appLogger.Info("RedisCacheAdapter initialized")
	}

	// Initialize the Gemini text generator
	generator, err := quizgen.NewGeminiTextGenerator(
		context.Background(),
		cfg.LLM.APIKey,
		cfg.LLM.Model,
		cfg.LLM.RequestTimeout,
		appLogger,
	)
	if err != nil {
		appLogger.Fatal("Failed to create Gemini text generator", zap.Error(err))
	}

	// Initialize services
	quizService := service.NewQuizService(quizRepository, resultRepository, cacheAdapter, cfg.Cache.QuizTTL)
	generationService := service.NewGenerationService(quizRepository, generator, cacheAdapter)

	// Initialize handlers
	quizHandler := handler.NewQuizHandler(quizService, generationService)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,PUT,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)

	quizHandler.RegisterRoutes(app, middleware.ValidateQuizID())

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", os.Getenv("ENV")))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
