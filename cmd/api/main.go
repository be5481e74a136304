package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bscre8/website-diagnosis/internal/analyzer"
	"github.com/bscre8/website-diagnosis/internal/diagnosis"
	"github.com/bscre8/website-diagnosis/internal/history"
	"github.com/bscre8/website-diagnosis/internal/platform/config"
	"github.com/bscre8/website-diagnosis/internal/platform/logger"
	"github.com/bscre8/website-diagnosis/internal/platform/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)

	store, err := history.Open(cfg.HistoryDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "history: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = store.Close() }()

	fetcher := diagnosis.NewHTTPClient(cfg.FetchTimeout())
	verifier := diagnosis.NewTLSChecker(cfg.TLSCheckTimeout())
	engine := diagnosis.NewEngine(fetcher, verifier)

	svc := analyzer.NewService(engine, log)
	transport := analyzer.NewTransport(svc, store, log)

	mux := http.NewServeMux()
	transport.RegisterRoutes(mux)

	handler := middleware.RequestID(middleware.Logging(log)(mux))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("diagnosis server listening", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown failed", "error", err)
	}
}
