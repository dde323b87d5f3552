package main

import (
	"context"
	"log"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/taskflow/backend/api/handler"
	"github.com/taskflow/backend/internal/config"
	pgInfra "github.com/taskflow/backend/internal/infrastructure/postgres"
	"github.com/taskflow/backend/internal/middleware"
	"github.com/taskflow/backend/internal/router"
	"github.com/taskflow/backend/internal/services/lifecycle"
	"github.com/taskflow/backend/pkg/httpcontext"
	"github.com/taskflow/backend/pkg/logger"
	"github.com/taskflow/backend/pkg/token"
	"github.com/taskflow/backend/repository/postgres"
	authUC "github.com/taskflow/backend/usecase/auth"
	categoryUC "github.com/taskflow/backend/usecase/category"
	commentUC "github.com/taskflow/backend/usecase/comment"
	taskUC "github.com/taskflow/backend/usecase/task"
	userUC "github.com/taskflow/backend/usecase/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	if cfg.HasInsecureJWTSecret() {
		if !cfg.IsDevelopment() {
			zapLogger.Fatal("refusing to start with the built-in JWT secret outside development",
				zap.String("environment", cfg.Environment))
		}
		zapLogger.Warn("using the built-in JWT secret; set JWT_SECRET before deploying")
	}

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	if err := pgInfra.RunMigrations(cfg, zapLogger); err != nil {
		zapLogger.Fatal("migrations failed", zap.Error(err))
	}

	pool, err := pgInfra.NewPool(appCtx, cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("postgres connection failed", zap.Error(err))
	}
	manager.Register("postgres", func(ctx context.Context) error {
		pool.Close()
		return nil
	})

	userRepo := postgres.NewUserRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	commentRepo := postgres.NewCommentRepository(pool)

	tokenService := token.New(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.ExpiresIn)

	authUseCase := authUC.New(userRepo, tokenService, zapLogger)
	userUseCase := userUC.New(userRepo, zapLogger)
	taskUseCase := taskUC.New(taskRepo, categoryRepo, zapLogger)
	categoryUseCase := categoryUC.New(categoryRepo, zapLogger)
	commentUseCase := commentUC.New(commentRepo, taskRepo, userRepo, zapLogger)

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)
	debug := cfg.IsDevelopment()

	handlers := router.Handlers{
		Auth:     apiHandler.NewAuthHandler(authUseCase, ctxAdapter, zapLogger, debug),
		Task:     apiHandler.NewTaskHandler(taskUseCase, ctxAdapter, zapLogger, debug),
		Category: apiHandler.NewCategoryHandler(categoryUseCase, ctxAdapter, zapLogger, debug),
		Comment:  apiHandler.NewCommentHandler(commentUseCase, ctxAdapter, zapLogger, debug),
		User:     apiHandler.NewUserHandler(userUseCase, ctxAdapter, zapLogger, debug),
		Health:   apiHandler.NewHealthHandler(ctxAdapter, zapLogger),
	}

	authenticate := middleware.Authenticate(tokenService, userRepo, ctxAdapter, zapLogger)
	r := router.New(handlers, authenticate)

	server := &fasthttp.Server{
		Handler:      r.Handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started",
			zap.String("address", cfg.Address()),
			zap.String("environment", cfg.Environment))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.Shutdown()
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
