package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"labwalk/config"
	"labwalk/lab"
	"labwalk/logger"
	"labwalk/network"
	"labwalk/session"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "labwalk:", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to a YAML config file")
	addr := flag.String("addr", "", "listen address, overrides the config")
	flag.Parse()

	envErr := config.LoadEnv()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	if envErr != nil {
		log.Debug("no .env loaded", zap.Error(envErr))
	}

	layout := lab.Default()
	if cfg.Layout != "" {
		if layout, err = lab.Load(cfg.Layout); err != nil {
			return err
		}
	}

	manager := session.NewManager(session.Options{
		TickHz:      cfg.Server.TickHz,
		BroadcastHz: cfg.Server.BroadcastHz,
		IdleTimeout: cfg.Server.IdleTimeout,
		Tuning:      cfg.Locomotion.Tuning,
		Bounds:      cfg.Locomotion.Bounds,
		Start:       cfg.Locomotion.Start.Vec3(),
		Layout:      layout,
		Log:         log.Named("session"),
	})
	defer manager.Close()

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           network.NewServer(manager, layout, log.Named("network")).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", cfg.Server.Addr), zap.String("ws", "/ws"))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
