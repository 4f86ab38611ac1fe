package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dedup-service/internal/config"
	"dedup-service/internal/dedup/service"
	"dedup-service/internal/store"
	serverhttp "dedup-service/server/http"
)

func main() {
	cfg := config.Load()
	logger := config.SetupLogger(cfg)

	policy, err := service.LoadPolicy(cfg.PolicyFile)
	if err != nil {
		logger.Fatal().Err(err).Msg("policy")
	}

	var docs service.DocumentLister
	if cfg.DBPath == "memory" {
		logger.Warn().Msg("DB_PATH=memory, documents are kept in process memory")
		docs = store.NewMemory()
	} else {
		db, err := store.OpenSQLite(cfg.DBPath, logger)
		if err != nil {
			logger.Fatal().Err(err).Msg("document store")
		}
		defer db.Close()
		docs = db
	}

	engine := service.NewEngine(docs,
		service.WithPolicy(policy),
		service.WithLogger(logger),
		service.WithWorkers(cfg.ScoreWorkers),
	)

	r := serverhttp.NewRouter(cfg, engine, logger)

	srv := &http.Server{Addr: cfg.Addr(), Handler: r, ReadHeaderTimeout: 10 * time.Second}
	logger.Info().Str("addr", cfg.Addr()).Str("policy", policy.Version).Msg("server starting")

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("listen")
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	logger.Info().Msg("bye")
}
