package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	httpadapter "portfolio-dashboard/internal/adapter/http"
	repo "portfolio-dashboard/internal/adapter/repository"
	"portfolio-dashboard/internal/usecase"
	"portfolio-dashboard/pkg/config"
	"portfolio-dashboard/pkg/cosmic"
)

func main() {
	// local .env is optional; real deployments set the environment
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	client := cosmic.New(cosmic.Config{
		BucketSlug: cfg.Cosmic.BucketSlug,
		ReadKey:    cfg.Cosmic.ReadKey,
		WriteKey:   cfg.Cosmic.WriteKey,
		BaseURL:    cfg.Cosmic.BaseURL,
	})

	contentRepo := repo.NewContentRepo(client)
	dashboard := usecase.NewDashboard(contentRepo)

	app := fiber.New()
	h := httpadapter.NewHandler(contentRepo, dashboard, logger)
	h.Register(app)

	logger.Info("server starting",
		zap.String("addr", cfg.Addr()),
		zap.String("bucket", cfg.Cosmic.BucketSlug))
	if err := app.Listen(cfg.Addr()); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}
