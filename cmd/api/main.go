package main

import (
	"log/slog"
	"os"
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/infra/token"
	"app/internal/server"
	"app/internal/usecase"
	"app/internal/validator"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

// 設定に応じたハッシュ実装を選ぶ
func newPasswordPair(cfg config.Config) (usecase.PasswordHasher, usecase.PasswordVerifier) {
	if cfg.PasswordScheme == config.PasswordSchemeBcrypt {
		return usecase.NewBcryptPasswordHasher(12), usecase.NewBcryptPasswordVerifier()
	}
	return usecase.NewSha256PasswordHasher(), usecase.NewSha256PasswordVerifier()
}

func main() {
	// .envがあれば読む（なくても環境変数だけで動く）
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("config load failed", "error", err)
		os.Exit(1)
	}

	// DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		logger.Error("db connect failed", "error", err)
		os.Exit(1)
	}
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Task{},
		&model.LoginAttempt{},
	); err != nil {
		logger.Error("db migrate failed", "error", err)
		os.Exit(1)
	}

	// Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	taskRepo := infraRepo.NewTaskGormRepository(gormDB)
	attemptRepo := infraRepo.NewLoginAttemptGormRepository(gormDB)

	// usecaseに渡す部品
	idGen := &uuidGenerator{}
	clock := &realClock{}
	hasher, verifier := newPasswordPair(cfg)
	issuer := token.NewJWTIssuer(cfg)
	authValidator := validator.NewAuthValidator()

	// Usecase生成
	authUC := usecase.NewAuthUsecase(userRepo, attemptRepo, hasher, verifier, issuer, authValidator, idGen, clock, logger)
	taskUC := usecase.NewTaskUsecase(taskRepo, logger)
	dashUC := usecase.NewDashboardUsecase(userRepo, taskRepo, clock, logger)
	adminUserUC := usecase.NewAdminUserUsecase(userRepo, logger)
	adminTaskUC := usecase.NewAdminTaskUsecase(taskRepo, userRepo, logger)

	// Handler生成
	authH := handler.NewAuthHandler(authUC)
	taskH := handler.NewTaskHandler(cfg, taskUC)
	dashH := handler.NewDashboardHandler(cfg, dashUC)
	adminDashH := handler.NewAdminDashboardHandler(cfg, adminUserUC, dashUC)
	adminTaskH := handler.NewAdminTaskHandler(cfg, adminTaskUC)

	// Server起動
	e := server.New(cfg, logger, authH, taskH, dashH, adminDashH, adminTaskH)

	addr := ":" + cfg.Port
	logger.Info("server starting", "addr", addr)
	if err := server.Start(e, addr); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
