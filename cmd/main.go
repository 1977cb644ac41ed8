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

	"law_qa_keep/internal/config"
	"law_qa_keep/internal/handlers"
	"law_qa_keep/internal/middleware"
	"law_qa_keep/internal/repository"
	"law_qa_keep/internal/service"
	"law_qa_keep/internal/store"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"law_qa_keep/internal/model"
	"law_qa_keep/internal/webutil"
)

func main() {
	// 設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)

	if err := config.LoadConfig("configs"); err != nil {
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

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("Application starting...")

	// 2. オブジェクトストレージへの接続
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	objectStore, err := store.NewMinioStore(ctx, config.Cfg.Bucket, logger)
	cancel()
	if err != nil {
		slog.Error("Error initializing object storage", slog.Any("error", err))
		os.Exit(1)
	}

	// 3. Dependency Injection
	userRepo := repository.NewBucketUserRepository(objectStore)
	progressRepo := repository.NewBucketProgressRepository(objectStore)
	studyRecordRepo := repository.NewBucketStudyRecordRepository(objectStore)
	settingsRepo := repository.NewBucketSettingsRepository(objectStore)

	userService := service.NewUserService(userRepo)
	progressService := service.NewProgressService(progressRepo)
	studyRecordService := service.NewStudyRecordService(studyRecordRepo)
	settingsService := service.NewSettingsService(settingsRepo)

	userHandler := handlers.NewUserHandler(userService, logger)
	progressHandler := handlers.NewProgressHandler(progressService, logger)
	studyRecordHandler := handlers.NewStudyRecordHandler(studyRecordService, logger)
	settingsHandler := handlers.NewSettingsHandler(settingsService, logger)
	healthHandler := handlers.NewHealthHandler(objectStore, logger)

	// 4. Setup Router
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// 未定義パスは {"error":"Not Found"} を返す (既存クライアントとの互換)
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		webutil.RespondWithJSON(w, http.StatusNotFound, model.APIErrorResponse{Error: "Not Found"}, logger)
	})

	// API Routes
	// username はクエリ/ボディで渡される無認証の文字列で、そのままキーの
	// 名前空間になる (セッション検証は行わない)。
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler)

		r.Post("/users", userHandler.CreateUser)
		r.Get("/users/{username}", userHandler.GetUser)

		r.Route("/qa-progress", func(r chi.Router) {
			r.Get("/", progressHandler.GetProgress)
			r.Post("/", progressHandler.SaveProgress)
			r.Get("/all", progressHandler.GetAllProgress)
			r.Post("/batch", progressHandler.SaveProgressBatch)
		})

		r.Get("/study-records", studyRecordHandler.GetStudyRecords)
		r.Post("/study-records", studyRecordHandler.CreateStudyRecord)

		r.Get("/user-settings", settingsHandler.GetSettings)
		r.Post("/user-settings", settingsHandler.SaveSettings)
	})

	// 5. Start Server
	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
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

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
