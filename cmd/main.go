// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"algobloom/internal/config"
	"algobloom/internal/handlers"
	"algobloom/internal/middleware"
	"algobloom/internal/model"
	"algobloom/internal/repository"
	"algobloom/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	//　設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	// Configを読み込み
	if err := config.LoadConfig("./configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// === 設定に基づいて slog ロガーを初期化 ===
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}

	// dev環境は色付きのtint、それ以外はJSONハンドラ
	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		tintOpts := &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		}
		handler = tint.NewHandler(os.Stderr, tintOpts)
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		jsonOpts := &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		}
		handler = slog.NewJSONHandler(os.Stderr, jsonOpts)
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("Application starting...", slog.String("app", config.AppName), slog.String("version", config.AppVersion))

	// データベース接続 (GORM)
	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	// スキーママイグレーション
	if err := db.AutoMigrate(
		&model.User{},
		&model.Question{},
		&model.Topic{},
		&model.List{},
		&model.ListItem{},
		&model.Progress{},
	); err != nil {
		slog.Error("Error migrating database schema", slog.Any("error", err))
		os.Exit(1)
	}

	// Dependency Injection
	userRepo := repository.NewGormUserRepository()
	questionRepo := repository.NewGormQuestionRepository()
	topicRepo := repository.NewGormTopicRepository()
	listRepo := repository.NewGormListRepository()
	progressRepo := repository.NewGormProgressRepository()

	mailer := service.NewMailer(&config.Cfg)

	authService := service.NewAuthService(db, userRepo, mailer, &config.Cfg)
	userService := service.NewUserService(db, userRepo, progressRepo)
	dashboardService := service.NewDashboardService(db, userRepo, questionRepo, progressRepo, &config.Cfg)
	questionService := service.NewQuestionService(db, questionRepo, topicRepo, progressRepo, &config.Cfg)
	topicService := service.NewTopicService(db, topicRepo, questionRepo, progressRepo)
	listService := service.NewListService(db, listRepo, questionRepo, progressRepo, &config.Cfg)
	leetCodeService := service.NewLeetCodeService(db, userRepo, questionRepo, &config.Cfg)

	authHandler := handlers.NewAuthHandler(authService, logger)
	userHandler := handlers.NewUserHandler(userService, logger)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, logger)
	questionHandler := handlers.NewQuestionHandler(questionService, logger)
	topicHandler := handlers.NewTopicHandler(topicService, logger)
	listHandler := handlers.NewListHandler(listService, logger)
	leetCodeHandler := handlers.NewLeetCodeHandler(leetCodeService, logger)

	// Router
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsOptions := cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
		Debug:            false,
	}
	corsHandler := cors.New(corsOptions)
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// API Routes
	r.Route("/api/v1", func(r chi.Router) {
		// --- Public routes ---
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// --- Protected routes ---
		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuthMiddleware(&config.Cfg))

			r.Route("/users/me", func(r chi.Router) {
				r.Get("/", userHandler.GetMe)
				r.Patch("/profile", userHandler.PatchProfile)
				r.Patch("/preferences", userHandler.PatchPreferences)
				r.Delete("/", userHandler.DeleteAccount)
			})

			r.Get("/dashboard", dashboardHandler.GetDashboard)
			r.Get("/search", questionHandler.Search)

			r.Route("/questions", func(r chi.Router) {
				r.Get("/revisit", questionHandler.GetRevisitQuestions)
				r.Post("/{question_id}/toggle-solved", questionHandler.ToggleSolved)
				r.Post("/{question_id}/toggle-revisit", questionHandler.ToggleRevisit)
			})

			r.Route("/topics", func(r chi.Router) {
				r.Get("/", topicHandler.GetTopics)
				r.Get("/{topic_id}/questions", topicHandler.GetTopicQuestions)
			})

			r.Route("/lists", func(r chi.Router) {
				r.Get("/", listHandler.GetLists)
				r.Get("/{slug}/questions", listHandler.GetListQuestions)
				r.Get("/{slug}/summary", listHandler.GetListSummary)
			})

			r.Route("/leetcode", func(r chi.Router) {
				r.Get("/profile", leetCodeHandler.GetProfile)
				r.Post("/sync", leetCodeHandler.SyncSolved)
			})
		})
	})

	// Health Check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if err := sqlDB.PingContext(ctx); err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Start Server
	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
