package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/tanafos/bid-rules-core/internal/domain/bid"
	"github.com/tanafos/bid-rules-core/internal/domain/settings"
	"github.com/tanafos/bid-rules-core/internal/domain/values"
	"github.com/tanafos/bid-rules-core/internal/infrastructure/config"
	"github.com/tanafos/bid-rules-core/internal/infrastructure/telemetry"
	"github.com/tanafos/bid-rules-core/internal/metrics"
	"github.com/tanafos/bid-rules-core/internal/service/bidrules"
	"github.com/tanafos/bid-rules-core/internal/service/bidvalidation"
	"github.com/tanafos/bid-rules-core/internal/service/pricing"
)

type options struct {
	ConfigPath  string
	Mode        string
	Fee         string
	RequestPath string
	BidPath     string
	MetricsFile string
}

// app holds the wired services for a single invocation
type app struct {
	logger   *zap.Logger
	registry *prometheus.Registry
	settings *settings.GeneralSettings
	pricing  *pricing.Service
	rules    *bidrules.Service
}

func newApp(cfg *config.Config) (*app, error) {
	logger, err := telemetry.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	logger = logger.With(zap.String("environment", cfg.Environment))

	gs, err := cfg.Settings.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("general settings: %w", err)
	}

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	prices := pricing.NewService(logger, collector)
	validator := bidvalidation.New(
		bidvalidation.WithLogger(logger),
		bidvalidation.WithMetrics(collector),
	)

	return &app{
		logger:   logger,
		registry: registry,
		settings: gs,
		pricing:  prices,
		rules:    bidrules.NewService(validator, prices, logger),
	}, nil
}

func run(ctx context.Context, opts options, out io.Writer) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = a.logger.Sync() }()

	var result interface{}
	switch opts.Mode {
	case "settings":
		result = a.settings
	case "quote":
		result, err = a.quote(ctx, opts)
	case "prepare":
		result, err = a.prepare(ctx, opts)
	case "approve":
		result, err = a.approve(ctx, opts)
	default:
		err = fmt.Errorf("unknown mode: %s", opts.Mode)
	}

	if opts.MetricsFile != "" {
		if werr := prometheus.WriteToTextfile(opts.MetricsFile, a.registry); werr != nil {
			a.logger.Warn("failed to write metrics", zap.Error(werr))
		}
	}

	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func (a *app) quote(ctx context.Context, opts options) (pricing.Breakdown, error) {
	fee, err := values.NewMoneyFromString(opts.Fee)
	if err != nil {
		return pricing.Breakdown{}, fmt.Errorf("invalid fee %q: %w", opts.Fee, err)
	}
	return a.pricing.Quote(ctx, fee, a.settings)
}

type prepareResult struct {
	Bid     *bid.Bid          `json:"bid"`
	Outcome *bidrules.Outcome `json:"outcome"`
}

func (a *app) prepare(ctx context.Context, opts options) (*prepareResult, error) {
	if opts.RequestPath == "" {
		return nil, fmt.Errorf("request is required for prepare")
	}

	fee, err := values.NewMoneyFromString(opts.Fee)
	if err != nil {
		return nil, fmt.Errorf("invalid fee %q: %w", opts.Fee, err)
	}

	var req bid.AddressesRequest
	if err := readJSON(opts.RequestPath, &req); err != nil {
		return nil, err
	}

	var existing *bid.Bid
	target := bid.NewBid("", req.BidType)
	if opts.BidPath != "" {
		existing = &bid.Bid{}
		if err := readJSON(opts.BidPath, existing); err != nil {
			return nil, err
		}
		updated := *existing
		updated.Dates = existing.Dates.Copy()
		target = &updated
	}

	outcome, err := a.rules.PrepareBid(ctx, &req, existing, fee, a.settings, target)
	if err != nil {
		return nil, err
	}
	return &prepareResult{Bid: target, Outcome: outcome}, nil
}

func (a *app) approve(ctx context.Context, opts options) (*bid.Bid, error) {
	if opts.BidPath == "" {
		return nil, fmt.Errorf("bid is required for approve")
	}

	var b bid.Bid
	if err := readJSON(opts.BidPath, &b); err != nil {
		return nil, err
	}

	if err := a.rules.ApproveBid(ctx, &b, a.settings); err != nil {
		return nil, err
	}
	return &b, nil
}

func readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	return nil
}
