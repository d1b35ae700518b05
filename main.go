package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"investing/src/api"
	"investing/src/config"
	"investing/src/database"
	"investing/src/utils"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// Local development overrides; absence of a .env file is fine.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig("./settings", os.Getenv("ENV"))
	if err != nil {
		panic(err)
	}

	logger := utils.NewLogger(cfg.Service.LogLevel)

	if err := run(cfg, logger); err != nil {
		logger.Fatalf("server stopped: %v", err)
	}
}

func run(cfg *config.Config, logger *logrus.Logger) error {
	pool, err := database.SetupDB(cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	server := api.NewServer(cfg, pool)
	httpServer := api.NewHTTPServer(server, cfg.Service.Port)

	errC := make(chan error, 1)
	go func() {
		logger.Infof("starting server on port %s", cfg.Service.Port)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errC <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errC:
		return err
	case sig := <-stop:
		logger.Infof("received %s, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Errorf("shutdown: %v", err)
		return err
	}
	return nil
}
