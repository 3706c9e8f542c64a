package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/jackc/pgx/v4/pgxpool"
	"go.uber.org/zap"

	httpadapter "portfolio-server/internal/adapter/http"
	repo "portfolio-server/internal/adapter/repository"
	"portfolio-server/internal/config"
	"portfolio-server/internal/content"
	"portfolio-server/internal/infrastructure/migration"
	applogger "portfolio-server/internal/logger"
	"portfolio-server/internal/mail"
	"portfolio-server/internal/resume"
	"portfolio-server/internal/usecase"
	infra "portfolio-server/pkg/infrastructure"
)

func main() {
	cfg := config.MustLoad()

	zlog, err := applogger.New(cfg.Env)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zlog.Sync()

	ctx := context.Background()

	// optional export bookkeeping database
	var pool *pgxpool.Pool
	if cfg.DatabaseURL != "" {
		pool, err = infra.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			zlog.Warn("exports DB not available", zap.Error(err))
			pool = nil
		} else if err := migration.RunMigrations(ctx, pool, zlog); err != nil {
			zlog.Warn("migrations failed, continuing without persistence", zap.Error(err))
			pool.Close()
			pool = nil
		}
	}

	renderer := infra.NewChromedpRenderer(cfg.Export.ChromePath)
	exportsRepo := repo.NewExportsRepo(pool)
	exporter := usecase.NewExporter(renderer, exportsRepo, cfg.Export.TemplateDir, cfg.Export.OutputDir, zlog)
	store := usecase.NewResumeStore(resume.Seed)
	sessions := session.New()
	mailer := mail.New(cfg.SMTP)

	pages, err := httpadapter.NewPages(cfg.Export.TemplateDir)
	if err != nil {
		zlog.Fatal("failed to parse page templates", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		AppName: "portfolio-server",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}
			message := err.Error()
			if message == "" {
				message = "internal server error"
			}
			return c.Status(code).JSON(fiber.Map{"success": false, "error": fiber.Map{"message": message}})
		},
	})

	app.Use(fiberlogger.New())
	app.Use(recover.New(recover.Config{EnableStackTrace: cfg.Env != "production"}))
	app.Use(cors.New())
	app.Use(compress.New())
	app.Use(helmet.New())
	app.Use(healthcheck.New())

	h := httpadapter.NewHandler(store, exporter, sessions, mailer, content.Books(), cfg.AccessCode, cfg.Export.TemplateDir, zlog)
	h.Register(app, pages)

	go func() {
		if err := app.Listen(fmt.Sprintf(":%d", cfg.Port)); err != nil {
			zlog.Fatal("server failed", zap.Error(err))
		}
	}()
	zlog.Info("server started", zap.Int("port", cfg.Port), zap.String("env", cfg.Env))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down")
	if err := app.Shutdown(); err != nil {
		zlog.Error("shutdown error", zap.Error(err))
	}
	if pool != nil {
		pool.Close()
	}
}
