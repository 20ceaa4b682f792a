package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"

	"github.com/diwise/postharvest/internal/pkg/application/notifications"
	"github.com/diwise/postharvest/internal/pkg/application/postharvest"
	"github.com/diwise/postharvest/internal/pkg/infrastructure/database"
	"github.com/diwise/postharvest/internal/pkg/infrastructure/router"
	api "github.com/diwise/postharvest/internal/pkg/presentation/api/postharvest"
	"github.com/diwise/postharvest/internal/pkg/presentation/api/postharvest/auth"
)

const serviceName string = "postharvest"

func main() {
	serviceVersion := buildinfo.SourceVersion()

	flags, err := parseExternalConfig(defaultFlags(context.Background()), os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	ctx, log, cleanup := o11y.Init(context.Background(), serviceName, serviceVersion, flags[logFormat])
	defer cleanup()

	cfg, err := LoadAppConfig()
	if err != nil {
		log.Error("invalid configuration", "err", err.Error())
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = run(ctx, flags, cfg)
	if err != nil {
		log.Error("service failed", "err", err.Error())
		os.Exit(1)
	}

	log.Info("shut down")
}

func run(ctx context.Context, flags FlagMap, cfg *AppConfig) error {
	log := logging.GetFromContext(ctx)

	db, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if flags[bootstrapSchema] == "true" {
		if err = database.Bootstrap(ctx, db); err != nil {
			return err
		}
		log.Info("database schema bootstrapped")
	}

	var notifier notifications.Notifier
	if cfg.NotifierEndpoint != "" {
		notifier, err = notifications.NewNotifier(ctx, cfg.NotifierEndpoint)
		if err != nil {
			return err
		}

		if err = notifier.Start(); err != nil {
			return fmt.Errorf("failed to start notifier: %w", err)
		}
		defer notifier.Stop()
	}

	tokens, err := auth.NewTokens(cfg.SecretKey, cfg.TokenTTL)
	if err != nil {
		return err
	}

	policies, err := openPolicies(flags[policiesPath])
	if err != nil {
		return err
	}
	defer policies.Close()

	app := postharvest.New(db, cfg.BcryptWorkFactor, notifier)
	r := router.New(serviceName)

	if err = api.RegisterHandlers(ctx, r, policies, app, tokens); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              net.JoinHostPort(flags[listenAddress], flags[servicePort]),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	serverErr := make(chan error, 1)

	go func() {
		log.Info("starting to listen for connections", "addr", srv.Addr)
		serverErr <- srv.ListenAndServe()
	}()

	select {
	case err = <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to listen for connections: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

func openPolicies(path string) (io.ReadCloser, error) {
	if path == "" {
		return io.NopCloser(auth.DefaultPolicies()), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open policies: %w", err)
	}

	return f, nil
}
