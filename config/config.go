// Package config loads engine configuration from an optional TOML file with
// environment variable overrides (prefix AMM, e.g. AMM_FEE_NUMERATOR).
package config

import (
	"cosmossdk.io/math"
	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/paw-chain/amm/types"
)

// Config holds the operator-facing engine settings.
type Config struct {
	FeeNumerator   int64  `mapstructure:"fee_numerator"`
	FeeDenominator int64  `mapstructure:"fee_denominator"`
	MinLiquidity   int64  `mapstructure:"min_liquidity"`
	LogLevel       string `mapstructure:"log_level"`
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config {
	return Config{
		FeeNumerator:   types.DefaultFeeNumerator,
		FeeDenominator: types.DefaultFeeDenominator,
		MinLiquidity:   types.DefaultMinLiquidity,
		LogLevel:       "info",
	}
}

// Load reads configuration from path (optional; empty path skips the file)
// and the environment, on top of defaults.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigType("toml")

	defaults := DefaultConfig()
	v.SetDefault("fee_numerator", defaults.FeeNumerator)
	v.SetDefault("fee_denominator", defaults.FeeDenominator)
	v.SetDefault("min_liquidity", defaults.MinLiquidity)
	v.SetDefault("log_level", defaults.LogLevel)

	v.SetEnvPrefix("AMM")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, err
		}
	}

	cfg := Config{
		FeeNumerator:   cast.ToInt64(v.Get("fee_numerator")),
		FeeDenominator: cast.ToInt64(v.Get("fee_denominator")),
		MinLiquidity:   cast.ToInt64(v.Get("min_liquidity")),
		LogLevel:       cast.ToString(v.Get("log_level")),
	}
	if err := cfg.Params().Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Params converts the configuration into engine parameters.
func (c Config) Params() types.Params {
	return types.Params{
		FeeNumerator:   math.NewInt(c.FeeNumerator),
		FeeDenominator: math.NewInt(c.FeeDenominator),
		MinLiquidity:   math.NewInt(c.MinLiquidity),
	}
}
