package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/shopspring/decimal"

	domainerrors "github.com/tanafos/bid-rules-core/internal/domain/errors"
	"github.com/tanafos/bid-rules-core/internal/domain/settings"
)

// EnvPrefix marks the environment variables read by Load. Nested keys are
// separated by a double underscore, e.g. BIDRULES_SETTINGS__VAT_PERCENTAGE.
const EnvPrefix = "BIDRULES_"

type Config struct {
	Environment string `koanf:"environment"`
	LogLevel    string `koanf:"log_level"`
	LogFormat   string `koanf:"log_format"`

	Settings SettingsConfig `koanf:"settings"`
}

// SettingsConfig holds the general settings as loaded. Amounts are kept as
// strings so no precision is lost before they become decimals.
type SettingsConfig struct {
	TanfasPercentage            string `koanf:"tanfas_percentage"`
	VATPercentage               string `koanf:"vat_percentage"`
	MinTanfasOfBidDocumentPrice string `koanf:"min_tanfas_of_bid_document_price"`
	MaxBidDocumentPrice         string `koanf:"max_bid_document_price"`
	StoppingPeriodDays          int    `koanf:"stopping_period_days"`
}

func defaults() *Config {
	return &Config{
		Environment: "development",
		LogLevel:    "info",
		LogFormat:   "json",
		Settings: SettingsConfig{
			TanfasPercentage:            "0",
			VATPercentage:               "15",
			MinTanfasOfBidDocumentPrice: "0",
			MaxBidDocumentPrice:         "1000000",
			StoppingPeriodDays:          0,
		},
	}
}

// Load reads defaults, then the optional YAML file at path, then the
// environment. An empty path or a missing file is not an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaults(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Snapshot parses the configured amounts into a validated settings snapshot
func (c SettingsConfig) Snapshot() (*settings.GeneralSettings, error) {
	gs := &settings.GeneralSettings{StoppingPeriodDays: c.StoppingPeriodDays}

	fields := []struct {
		key   string
		value string
		dst   *decimal.Decimal
	}{
		{"tanfas_percentage", c.TanfasPercentage, &gs.TanfasPercentage},
		{"vat_percentage", c.VATPercentage, &gs.VATPercentage},
		{"min_tanfas_of_bid_document_price", c.MinTanfasOfBidDocumentPrice, &gs.MinTanfasOfBidDocumentPrice},
		{"max_bid_document_price", c.MaxBidDocumentPrice, &gs.MaxBidDocumentPrice},
	}

	for _, f := range fields {
		d, err := decimal.NewFromString(strings.TrimSpace(f.value))
		if err != nil {
			return nil, domainerrors.NewValidationError(settings.CodeInvalidSettings,
				fmt.Sprintf("%s is not a decimal: %q", f.key, f.value)).WithCause(err)
		}
		*f.dst = d
	}

	if err := gs.Validate(); err != nil {
		return nil, err
	}
	return gs, nil
}
