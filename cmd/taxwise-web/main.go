package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/xxxsen/common/logger"
	"github.com/xxxsen/common/logutil"
	"github.com/xxxsen/common/webapi"
	"go.uber.org/zap"

	"github.com/mohiniBalmiki/taxwise-web/internal/authapi"
	"github.com/mohiniBalmiki/taxwise-web/internal/config"
	"github.com/mohiniBalmiki/taxwise-web/internal/db"
	"github.com/mohiniBalmiki/taxwise-web/internal/handler"
	"github.com/mohiniBalmiki/taxwise-web/internal/job"
	"github.com/mohiniBalmiki/taxwise-web/internal/middleware"
	"github.com/mohiniBalmiki/taxwise-web/internal/schedule"
	"github.com/mohiniBalmiki/taxwise-web/internal/session"
	"github.com/mohiniBalmiki/taxwise-web/internal/verification"
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "taxwise-web",
		Short: "TaxWise web frontend service",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run the frontend service",
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				return fmt.Errorf("--config is required")
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			logger.Init(
				cfg.LogConfig.File,
				cfg.LogConfig.Level,
				int(cfg.LogConfig.FileCount),
				int(cfg.LogConfig.FileSize),
				int(cfg.LogConfig.KeepDays),
				cfg.LogConfig.Console,
			)
			logutil.GetLogger(context.Background()).Info("config loaded", zap.String("config", configPath))
			return runServer(cfg)
		},
	}

	runCmd.Flags().StringVar(&configPath, "config", "", "path to config.json")
	rootCmd.AddCommand(runCmd)

	if err := rootCmd.Execute(); err != nil {
		logutil.GetLogger(context.Background()).Fatal("startup error", zap.Error(err))
	}
}

func newSessionStore(cfg *config.Config) (session.Store, error) {
	switch cfg.SessionStore.Type {
	case "postgres":
		conn, err := db.Open(cfg.SessionStore.Database)
		if err != nil {
			return nil, fmt.Errorf("open db: %w", err)
		}
		if err := db.ApplyMigrations(conn); err != nil {
			return nil, fmt.Errorf("migrations: %w", err)
		}
		return session.NewPGStore(conn), nil
	default:
		return session.NewMemoryStore(), nil
	}
}

func runServer(cfg *config.Config) error {
	logutil.GetLogger(context.Background()).Info(
		"starting server",
		zap.Int("port", cfg.Port),
		zap.String("backend", cfg.Backend.BaseURL),
		zap.String("session_store", cfg.SessionStore.Type),
	)

	sessions, err := newSessionStore(cfg)
	if err != nil {
		return err
	}

	client := authapi.New(cfg.Backend.BaseURL, time.Duration(cfg.Backend.TimeoutSeconds)*time.Second)
	cooldown := verification.NewCooldown(time.Duration(cfg.ResendCooldownSeconds) * time.Second)

	deps := handler.RouterDeps{
		Verify: handler.NewVerifyHandler(
			client,
			sessions,
			cooldown,
			cfg.Routes,
			time.Duration(cfg.RedirectDelayMS)*time.Millisecond,
			[]byte(cfg.JWTSecret),
			time.Duration(cfg.HandoffTTLMinutes)*time.Minute,
		),
		Sections:     handler.NewSectionsHandler(cfg.Routes),
		Properties:   handler.NewPropertiesHandler(cfg.Properties()),
		ResendWindow: time.Duration(cfg.ResendRateLimitMS) * time.Millisecond,
	}

	engine, err := webapi.NewEngine(
		"/api/v1",
		fmt.Sprintf("0.0.0.0:%d", cfg.Port),
		webapi.WithRegister(func(group *gin.RouterGroup) {
			handler.RegisterRoutes(group, deps)
		}),
		webapi.WithExtraMiddlewares(
			middleware.RequestID(),
			middleware.CORS(cfg.CORSAllowlist),
			gzip.Gzip(gzip.DefaultCompression),
		),
	)
	if err != nil {
		return fmt.Errorf("init web engine: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scheduler := schedule.NewCronScheduler()
	if err := scheduler.AddJob(job.NewSessionCleanupJob(sessions), cfg.CleanupSpec); err != nil {
		return err
	}
	scheduler.Start(ctx)
	defer scheduler.Stop()

	logutil.GetLogger(context.Background()).Info("http server listening", zap.String("addr", fmt.Sprintf("0.0.0.0:%d", cfg.Port)))
	go func() {
		if err := engine.Run(); err != nil && err != http.ErrServerClosed {
			logutil.GetLogger(context.Background()).Error("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logutil.GetLogger(context.Background()).Info("server stopping...")
	return nil
}
