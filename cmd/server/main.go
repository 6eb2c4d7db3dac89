package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bfhlabs/bfhl-api-go/internal/api"
	"github.com/bfhlabs/bfhl-api-go/internal/config"
	"github.com/bfhlabs/bfhl-api-go/internal/signer"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config error", "err", err)
		os.Exit(1)
	}

	var s *signer.Signer
	if cfg.SignPrivateKey != "" {
		s, err = signer.New(cfg.SignPrivateKey)
		if err != nil {
			slog.Error("signer error", "err", err)
			os.Exit(1)
		}
		slog.Info("response signing enabled", "address", s.Address())
	}

	handler := api.New(api.Identity{
		UserName:   cfg.UserName,
		Email:      cfg.UserEmail,
		RollNumber: cfg.RollNumber,
	}, s, cfg.GenerateMaxCount)

	mux := http.NewServeMux()
	handler.Register(mux)

	srv := &http.Server{
		Addr:         cfg.ListenAddr(),
		Handler:      api.WithRequestID(mux),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)

		shutCtx, shutCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutCancel()

		if err := srv.Shutdown(shutCtx); err != nil {
			slog.Error("shutdown error", "err", err)
		}
	}()

	slog.Info("starting server",
		"addr", cfg.ListenAddr(),
		"signing", s != nil,
		"generateMaxCount", cfg.GenerateMaxCount,
	)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", "err", err)
		os.Exit(1)
	}
}
