package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"wedding-planner/internal/config"
	"wedding-planner/internal/handler"
	"wedding-planner/internal/logging"
	"wedding-planner/internal/server"
	"wedding-planner/internal/storage"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logging.New(cfg.Log, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(cfg.Store.Driver, cfg.StoreDSN(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing storage")
	}
	defer store.Close()

	gin.SetMode(gin.ReleaseMode)
	planner := handler.NewPlanner(store, log)
	srv := server.NewServer(cfg.Addr(), server.RouterConfig{
		Planner:     planner,
		Log:         log.With().Str("component", "http").Logger(),
		CORSOrigins: cfg.CORSOrigins,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr()).Msg("RPC server listening")
		errCh <- srv.Run()
	}()

	// Wait for interrupt signal
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	select {
	case <-c:
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("Server stopped")
		}
	}

	log.Info().Msg("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}
}
