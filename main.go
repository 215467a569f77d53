package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"oneearth/config"
	"oneearth/handlers"
	"oneearth/logger"
	"oneearth/metrics"
	"oneearth/models"
	"oneearth/repository"
	"oneearth/services"
	"oneearth/store"
	"oneearth/utils"
	"oneearth/workers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("invalid configuration:", err)
	}

	appLog := logger.New("oneearth", cfg.LogLevel)
	metrics.Register()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend, err := store.Open(ctx, cfg)
	if err != nil {
		appLog.WithError(err).Fatal("failed to open record store")
	}
	keys := store.KeysFor(cfg.KeyPrefix)

	xpLog := appLog.Component("xp")
	repos := repository.New(backend, repository.Options{
		Keys:        keys,
		Sample:      &store.SampleData{},
		AwardXPOnce: cfg.XPAwardOnce,
		OnXPAwarded: func(u models.User, c models.ChallengeCompletion, xp int) {
			metrics.XPAwarded.Add(float64(xp))
			xpLog.WithFields(logrus.Fields{"user_id": u.ID, "completion_id": c.ID, "xp": xp}).Info("⭐ XP awarded")
		},
	})

	authService := services.NewAuthService(repos.Users, backend, keys.Session, appLog)
	challengeService := services.NewChallengeService(repos, appLog)
	rewardService := services.NewRewardService(repos, appLog)
	progressionService := services.NewProgressionService(repos)

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	app.Use(logger.Middleware(appLog))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(cfg.AllowedOrigins, ","),
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH,HEAD",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With, X-Request-ID",
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	handlers.SetupAuthRoutes(app, authService, appLog)
	handlers.SetupChallengeRoutes(app, challengeService, authService, appLog)
	handlers.SetupRewardRoutes(app, rewardService, authService, appLog)
	handlers.SetupProgressionRoutes(app, progressionService, authService, appLog)
	handlers.SetupOpsRoutes(app)

	schedOpts := workers.ScheduleOptions{
		Repos:                repos,
		GaugeRefreshInterval: cfg.GaugeRefreshInterval,
	}
	if cfg.BackupInterval > 0 {
		if !cfg.R2.Enabled() {
			appLog.Warn("⚠️  BACKUP_INTERVAL set but R2 is not configured, backups disabled")
		} else {
			client, err := utils.NewR2Client(ctx, cfg.R2)
			if err != nil {
				appLog.WithError(err).Fatal("failed to initialize R2 client")
			}
			schedOpts.Backup = workers.NewBackupWorker(backend, keys, func(prefix string) store.Store {
				return store.NewR2Store(client, cfg.R2.Bucket, prefix)
			}, appLog)
			schedOpts.BackupInterval = cfg.BackupInterval
		}
	}
	sched, err := workers.StartScheduler(ctx, schedOpts, appLog)
	if err != nil {
		appLog.WithError(err).Fatal("failed to start scheduler")
	}

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			appLog.WithError(err).Error("server error")
			stop()
		}
	}()

	appLog.Infof("✅ Server running on http://localhost:%s", cfg.Port)
	appLog.Infof("✅ Record store: %s (prefix %q)", cfg.StoreDriver, cfg.KeyPrefix)
	appLog.Infof("✅ CORS configured for origins: %s", strings.Join(cfg.AllowedOrigins, ","))

	<-ctx.Done()
	appLog.Info("Shutting down server...")

	if err := sched.Shutdown(); err != nil {
		appLog.WithError(err).Warn("scheduler shutdown")
	}
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		appLog.WithError(err).Warn("server shutdown")
	}
}
