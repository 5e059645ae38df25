package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/paw-chain/amm/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	params := cfg.Params()
	require.Equal(t, math.NewInt(3), params.FeeNumerator)
	require.Equal(t, math.NewInt(1000), params.FeeDenominator)
	require.Equal(t, math.NewInt(1), params.MinLiquidity)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "amm.toml")
	contents := "fee_numerator = 5\nfee_denominator = 10000\nmin_liquidity = 1000\nlog_level = \"debug\"\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, int64(5), cfg.FeeNumerator)
	require.Equal(t, int64(10000), cfg.FeeDenominator)
	require.Equal(t, int64(1000), cfg.MinLiquidity)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("AMM_FEE_NUMERATOR", "30")

	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, int64(30), cfg.FeeNumerator)
}

func TestLoad_RejectsInvalidFee(t *testing.T) {
	t.Setenv("AMM_FEE_NUMERATOR", "1000")

	_, err := config.Load("")
	require.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}
