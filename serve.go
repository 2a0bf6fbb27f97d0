package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"insurance-agent/config"
	httpLayer "insurance-agent/http"
	"insurance-agent/logging"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.New()
		if err != nil {
			return err
		}

		logger := logging.Init(cfg.Service.LogLevel)
		defer func() { _ = logger.Sync() }()

		ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		svcs, err := newServices(ctx, cfg)
		if err != nil {
			zap.S().Named("setup").Errorw("initializing services", "error", err)
			return err
		}
		defer svcs.Close()

		router := httpLayer.NewRouter(httpLayer.Handlers{
			VehicleValue: httpLayer.NewVehicleValueHandler(svcs.value),
			RiskRating:   httpLayer.NewRiskRatingHandler(svcs.risk),
			Discount:     httpLayer.NewDiscountHandler(svcs.discount),
		}, logger)

		server := &http.Server{
			Addr:         cfg.Address(),
			Handler:      router,
			ReadTimeout:  cfg.Service.ReadTimeout,
			WriteTimeout: cfg.Service.WriteTimeout,
			IdleTimeout:  cfg.Service.IdleTimeout,
		}

		return runServer(ctx, server, cfg)
	},
}

func runServer(ctx context.Context, server *http.Server, cfg *config.Config) error {
	log := zap.S().Named("api_server")

	serverErr := make(chan error, 1)
	go func() {
		log.Infof("Listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		log.Errorw("server failed", "error", err)
		return err
	case <-ctx.Done():
		log.Info("Shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Service.ShutdownTimeout)
	defer cancel()

	server.SetKeepAlivesEnabled(false)
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorw("server shutdown", "error", err)
		return err
	}

	log.Info("Server exited")
	return nil
}
