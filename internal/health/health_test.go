package health

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dallionking/cashout/internal/config"
)

func baseConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Checkout: config.CheckoutConfig{DefaultAmount: "0.10", DefaultToken: "eth", DefaultTab: "crypto-cash"},
		Log:      config.LogConfig{File: filepath.Join(t.TempDir(), "cashout.log"), Level: "info", Format: "json"},
	}
}

func resultByName(t *testing.T, r *Report, name string) CheckResult {
	t.Helper()
	for _, res := range r.Results {
		if res.Name == name {
			return res
		}
	}
	t.Fatalf("no result named %q", name)
	return CheckResult{}
}

func TestRunAllDefaults(t *testing.T) {
	t.Setenv("TERM", "xterm-256color")
	c := NewChecker(baseConfig(t), "")

	r := c.RunAll(context.Background())
	assert.Equal(t, len(c.Checks()), r.Total)
	assert.True(t, r.Healthy)
	assert.Equal(t, 0, r.Failed)

	assert.Equal(t, StatusWarn, resultByName(t, r, "config-file").Status)
	assert.Equal(t, StatusWarn, resultByName(t, r, "asset-icons").Status)

	quote := resultByName(t, r, "default-quote")
	assert.Equal(t, StatusPass, quote.Status)
	assert.Equal(t, "0.10 ETH = 450,000.00 NGN", quote.Message)

	src := resultByName(t, r, "catalog-source")
	assert.Contains(t, src.Message, "built-in: 4 tokens")
}

func TestBrokenCatalogFails(t *testing.T) {
	cfg := baseConfig(t)
	cfg.Catalog.Path = filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(cfg.Catalog.Path, []byte(`{"tokens":[{"id":"eth","name":"ETH","rate":"-1"}]}`), 0o644))

	r := NewChecker(cfg, "").RunCategory(context.Background(), "catalog")
	assert.False(t, r.Healthy)
	assert.Equal(t, 4, r.Total)
	assert.Equal(t, StatusFail, resultByName(t, r, "catalog-source").Status)
	assert.Equal(t, "catalog not loaded", resultByName(t, r, "default-quote").Message)
}

func TestCatalogSourceCountsEveryProblem(t *testing.T) {
	cfg := baseConfig(t)
	cfg.Catalog.Path = filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(cfg.Catalog.Path, []byte(`{"tokens":[{"id":"eth","name":"","rate":"-1"}]}`), 0o644))

	r := NewChecker(cfg, "").RunCheck(context.Background(), "catalog-source")
	require.Equal(t, 1, r.Total)
	assert.Equal(t, StatusFail, r.Results[0].Status)
	assert.Contains(t, r.Results[0].Message, "2 problems, first: parsing catalog")
	assert.Contains(t, r.Results[0].Message, "tokens[0].name")
}

func TestConfigValuesMismatch(t *testing.T) {
	cfg := baseConfig(t)
	cfg.Checkout.DefaultToken = "doge"

	r := NewChecker(cfg, "").RunCheck(context.Background(), "config-values")
	require.Equal(t, 1, r.Total)
	assert.Equal(t, StatusFail, r.Results[0].Status)
	assert.Contains(t, r.Results[0].Message, "doge")
}

func TestAssetIcons(t *testing.T) {
	dir := t.TempDir()
	cfg := baseConfig(t)
	cfg.Assets.Dir = dir

	r := NewChecker(cfg, "").RunCheck(context.Background(), "asset-icons")
	assert.Equal(t, StatusWarn, r.Results[0].Status)
	assert.Contains(t, r.Results[0].Message, "problems")

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "assets"), 0o755))
	for _, icon := range []string{
		"eth.svg", "celo.svg", "ton.svg", "bnb.svg",
		"metamask.svg", "rainbow.svg", "walletConnect.svg", "otherCryptoWallets.svg",
		"nigeria.svg",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "assets", icon), []byte("<svg/>"), 0o644))
	}

	r = NewChecker(cfg, "").RunCheck(context.Background(), "asset-icons")
	assert.Equal(t, StatusPass, r.Results[0].Status)
	assert.Equal(t, "all 9 icon files found", r.Results[0].Message)
}

func TestConfigFilePresent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cashout.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: info\n"), 0o644))

	r := NewChecker(baseConfig(t), path).RunCheck(context.Background(), "config-file")
	assert.Equal(t, StatusPass, r.Results[0].Status)
}

func TestTerminal(t *testing.T) {
	t.Setenv("TERM", "dumb")
	r := NewChecker(baseConfig(t), "").RunCheck(context.Background(), "terminal")
	assert.Equal(t, StatusWarn, r.Results[0].Status)
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewChecker(baseConfig(t), "").RunAll(ctx)
	assert.Equal(t, r.Total, r.Failed)
	assert.Equal(t, "context cancelled", r.Results[0].Message)
}

func TestFormatReport(t *testing.T) {
	t.Setenv("TERM", "xterm")
	r := NewChecker(baseConfig(t), "").RunAll(context.Background())
	out := FormatReport(r)
	assert.Contains(t, out, "Checkout Health Check")
	assert.Contains(t, out, "Rates & Reference Data")
	assert.Contains(t, out, "DEGRADED")
}

func TestStatusStrings(t *testing.T) {
	assert.Equal(t, "pass", StatusPass.String())
	assert.Equal(t, "!", StatusWarn.Symbol())
	assert.Equal(t, "x", StatusFail.Symbol())
	assert.Equal(t, "unknown", Status(9).String())
}
