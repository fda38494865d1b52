// Package main is the entry point for the codestats report tool, which
// prints code-length distributions for the configured currency-code
// providers.
package main

import (
	"log"

	"go.uber.org/zap"

	"github.com/bikeshed-sanctuary/currency-validator/internal/config"
	"github.com/bikeshed-sanctuary/currency-validator/internal/report"
	"github.com/bikeshed-sanctuary/currency-validator/provider"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()
	sugar := zapLogger.Sugar()

	providers, err := buildProviders(cfg)
	if err != nil {
		sugar.Fatalw("Failed to build providers", "error", err)
	}

	sugar.Infow("Analyzing code-length distributions",
		"providers", len(providers), "target_length", cfg.Output.TargetLength)

	r := newRenderer(cfg.Output)
	for _, p := range providers {
		r.render(report.Analyze(p))
	}
	if len(providers) > 1 {
		combined, err := provider.NewMulti(providers...)
		if err != nil {
			sugar.Fatalw("Failed to compose providers", "error", err)
		}
		r.render(report.Analyze(combined))
	}
}

// buildProviders constructs the providers selected in the config, applying
// the optional cryptocurrency source filter.
func buildProviders(cfg *config.Config) ([]provider.CodeProvider, error) {
	var providers []provider.CodeProvider
	if cfg.Sources.Fiat {
		providers = append(providers, provider.NewFiat())
	}
	if cfg.Sources.Crypto {
		var opts []provider.CryptoOption
		if cfg.Crypto.MaxLength > 0 {
			opts = append(opts, provider.WithMaxLength(cfg.Crypto.MaxLength))
		}
		if cfg.Crypto.Percentage > 0 {
			opts = append(opts, provider.WithPercentage(cfg.Crypto.Percentage))
		}
		crypto, err := provider.NewCrypto(opts...)
		if err != nil {
			return nil, err
		}
		providers = append(providers, crypto)
	}
	return providers, nil
}
