package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campaign-metrics/internal/adapter/http"
	"campaign-metrics/internal/adapter/memory"
	"campaign-metrics/internal/adapter/rates"
	"campaign-metrics/internal/adapter/usecase"
	"campaign-metrics/internal/config"
	"campaign-metrics/internal/config/configs"
	"campaign-metrics/internal/core/port"
	"campaign-metrics/internal/seed"
)

// main loads configuration, seeds the demo campaigns, prints the report
// and converts the budgets. When the HTTP API is enabled it keeps serving
// until a termination signal arrives.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := cfg.Log.NewLogger(os.Stderr).With(slog.String("env", cfg.Env))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	svc := usecase.NewCampaignUseCase(memory.NewCampaignStore(), newRateProvider(cfg.Rates), logger)
	if err = seed.Seed(ctx, svc); err != nil {
		logger.Error("seed error", slog.Any("error", err))
		os.Exit(1)
	}

	if err = report(ctx, os.Stdout, svc, cfg.Report.Currency); err != nil {
		logger.Error("report error", slog.Any("error", err))
		os.Exit(1)
	}

	if !cfg.HTTP.Enabled {
		return
	}
	if err = serve(ctx, cfg.HTTP, svc, logger); err != nil {
		logger.Error("server error", slog.Any("error", err))
		os.Exit(1)
	}
}

func newRateProvider(cfg configs.Rates) port.RateProvider {
	if cfg.SourceName() == configs.RatesSourceHTTP {
		return rates.NewHTTPProvider(cfg.Addr, cfg.Timeout)
	}
	return rates.NewStaticProvider()
}

// report prints the average conversion rate and the top campaign, then
// converts every budget to currency.
func report(ctx context.Context, w io.Writer, svc port.CampaignUseCase, currency string) error {
	overview, err := svc.Overview(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Average Conversion Rate: %g%%\n", overview.AverageConversionRate)
	fmt.Fprintf(w, "Top-Performing Campaign: %s\n", overview.TopCampaign)

	if err = svc.ConvertBudgets(ctx, currency); err != nil {
		return err
	}
	fmt.Fprintf(w, "Budgets converted to %s successfully!\n", currency)
	return nil
}

// serve runs the HTTP API until ctx is cancelled, then shuts it down
// gracefully.
func serve(ctx context.Context, cfg configs.HTTP, svc port.CampaignUseCase, logger *slog.Logger) error {
	handler := httpadapter.NewHandler(svc, logger)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("server gracefully stopped")
	return nil
}
