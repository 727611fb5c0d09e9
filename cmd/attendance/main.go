// Command attendance runs the live attendance HTTP service: signup, login,
// session introspection, and teacher/student class attendance.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/ashishshah/live-attendance/internal/auth"
	"github.com/ashishshah/live-attendance/internal/classes"
	"github.com/ashishshah/live-attendance/internal/config"
	"github.com/ashishshah/live-attendance/internal/database"
	"github.com/ashishshah/live-attendance/internal/logger"
	"github.com/ashishshah/live-attendance/internal/observability"
	"github.com/ashishshah/live-attendance/internal/password"
	"github.com/ashishshah/live-attendance/internal/server"
	"github.com/ashishshah/live-attendance/internal/server/handler"
	"github.com/ashishshah/live-attendance/internal/token"
	"github.com/ashishshah/live-attendance/internal/user"
)

const serviceName = "live-attendance"

func main() {
	configFile := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		// No logger yet; the bootstrap logger reports config failures.
		boot := logger.NewDefault(serviceName)
		boot.Fatal("configuration error", logger.Fields("error", err.Error()))
	}

	log := logger.New(&cfg.Logging, serviceName)
	logger.SetGlobalLogger(log)

	if err := run(cfg, log); err != nil {
		log.Fatal("service failed", logger.Fields("error", err.Error()))
	}
}

func run(cfg *config.Config, log *logger.Logger) error {
	ctx := context.Background()

	providers, err := observability.Init(ctx, cfg.Observability, log)
	if err != nil {
		return err
	}

	db, err := database.Open(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	if err := db.AutoMigrate(&user.User{}, &classes.Class{}, &classes.AttendanceRecord{}); err != nil {
		return err
	}

	codec, err := token.NewCodec(cfg.Token)
	if err != nil {
		return err
	}

	store := user.NewGormStore(db.GormDB)
	hasher := password.NewHasher(cfg.Password)
	authSvc := auth.NewService(store, hasher, codec, log)
	classesSvc := classes.NewService(db.GormDB)

	srv := server.New(cfg.Server, log)
	handler.RegisterRoutes(
		srv.GinEngine(),
		cfg.Server,
		codec,
		handler.NewAuthHandler(authSvc, cfg.Server.SecureCookies),
		handler.NewClassesHandler(classesSvc),
		db,
		log,
	)

	if err := srv.Start(ctx); err != nil {
		return err
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info("shutdown signal received", logger.Fields("signal", sig.String()))

	if err := srv.Stop(ctx); err != nil {
		log.Error("server shutdown error", logger.Fields("error", err.Error()))
	}
	if err := db.Close(); err != nil {
		log.Error("database close error", logger.Fields("error", err.Error()))
	}
	if providers != nil {
		if err := providers.Shutdown(ctx); err != nil {
			log.Error("observability shutdown error", logger.Fields("error", err.Error()))
		}
	}

	log.Info("service stopped")
	return nil
}
