package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	assert.Empty(t, Validate(c))
	require.NotEmpty(t, c.Tokens)
	assert.Equal(t, "eth", c.Tokens[0].ID, "first token is the default selection")
	assert.True(t, c.Tokens[0].Rate.Equal(decimal.NewFromInt(4500000)))
	assert.Len(t, c.Wallets, 4)
	assert.Len(t, c.Banks, 5)
	assert.Len(t, c.PaymentMethods, 1)
	assert.Equal(t, "NGN", c.Currency.Code)

	t.Run("fresh copy per call", func(t *testing.T) {
		a := Default()
		a.Tokens[0].Name = "changed"
		assert.Equal(t, "ETH", Default().Tokens[0].Name)
	})
}

func TestLookups(t *testing.T) {
	c := Default()

	tok, ok := c.Token("usdt-ton")
	require.True(t, ok)
	assert.Equal(t, "USDT - TON", tok.Name)

	_, ok = c.Token("doge")
	assert.False(t, ok)

	w, ok := c.Wallet("rainbow")
	require.True(t, ok)
	assert.Equal(t, "Rainbow", w.Name)

	b, ok := c.Bank("bank-2")
	require.True(t, ok)
	assert.Equal(t, "GTBank", b.Name)

	pm, ok := c.PaymentMethod("bank-transfer")
	require.True(t, ok)
	assert.Equal(t, "Bank", pm.Name)

	assert.True(t, c.HasTab(TabLoan))
	assert.False(t, c.HasTab("savings"))

	opts := c.TokenOptions()
	require.Len(t, opts, len(c.Tokens))
	assert.Equal(t, Option{ID: "eth", Name: "ETH", Icon: "/assets/eth.svg"}, opts[0])
}

func TestShortName(t *testing.T) {
	assert.Equal(t, "USDT", ShortName("USDT - CELO"))
	assert.Equal(t, "ETH", ShortName("ETH"))
	assert.Equal(t, "", ShortName(""))
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
		check   func(t *testing.T, c *Catalog)
	}{
		{
			name:  "tokens override keeps other sections",
			input: `{"tokens":[{"id":"btc","name":"BTC","symbol":"BTC","icon":"/assets/btc.svg","rate":"98000000"}]}`,
			check: func(t *testing.T, c *Catalog) {
				require.Len(t, c.Tokens, 1)
				assert.Equal(t, "btc", c.Tokens[0].ID)
				assert.True(t, c.Tokens[0].Rate.Equal(decimal.NewFromInt(98000000)))
				assert.Len(t, c.Banks, 5)
			},
		},
		{
			name:  "numeric rate",
			input: `{"tokens":[{"id":"eth","name":"ETH","rate":4600000.5}]}`,
			check: func(t *testing.T, c *Catalog) {
				assert.Equal(t, "4600000.5", c.Tokens[0].Rate.String())
			},
		},
		{
			name:  "empty object yields defaults",
			input: `{}`,
			check: func(t *testing.T, c *Catalog) {
				assert.Equal(t, Default(), c)
			},
		},
		{
			name:    "zero rate rejected",
			input:   `{"tokens":[{"id":"eth","name":"ETH","rate":0}]}`,
			wantErr: "tokens[0].rate",
		},
		{
			name:    "duplicate bank id rejected",
			input:   `{"banks":[{"id":"b","name":"One"},{"id":"b","name":"Two"}]}`,
			wantErr: `duplicate id "b"`,
		},
		{
			name:    "malformed json",
			input:   `{"tokens":`,
			wantErr: "unexpected end of JSON input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse([]byte(tt.input))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, c)
		})
	}
}

func TestParseReportsEveryProblem(t *testing.T) {
	_, err := Parse([]byte(`{"tokens":[{"id":"eth","name":"","rate":0}],"currency":{"code":"GHS"},"banks":[{"id":"b","name":"One"},{"id":"b","name":"Two"}]}`))
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "tokens[0].name")
	assert.Contains(t, msg, "tokens[0].rate")
	assert.Contains(t, msg, `duplicate id "b"`)

	var ve ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestValidateReportsAllProblems(t *testing.T) {
	c := &Catalog{
		Tokens: []Token{{ID: "", Name: "", Rate: decimal.NewFromInt(-1)}},
	}
	errs := Validate(c)

	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	assert.Contains(t, fields, "tokens[0].id")
	assert.Contains(t, fields, "tokens[0].name")
	assert.Contains(t, fields, "tokens[0].rate")
	assert.Contains(t, fields, "wallets")
	assert.Contains(t, fields, "banks")
	assert.Contains(t, fields, "paymentMethods")
	assert.Contains(t, fields, "tabs")
	assert.Contains(t, fields, "currency.code")
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"currency":{"code":"GHS","icon":"/assets/ghana.svg"}}`), 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "GHS", c.Currency.Code)

	_, err = LoadFile(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading catalog")
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()
	w.debounce = 10 * time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	events := w.Watch(ctx)

	// Unrelated files in the same directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.json"), []byte(`{}`), 0o644))
	require.NoError(t, os.WriteFile(path, []byte(`{"tokens":[{"id":"eth","name":"ETH","rate":5000000}]}`), 0o644))

	select {
	case ev := <-events:
		require.NoError(t, ev.Err)
		require.NotNil(t, ev.Catalog)
		assert.Equal(t, w.Path(), ev.Path)
		assert.True(t, ev.Catalog.Tokens[0].Rate.Equal(decimal.NewFromInt(5000000)))
	case <-ctx.Done():
		t.Fatal("timed out waiting for reload event")
	}
}

func TestWatcherReportsInvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()
	w.debounce = 10 * time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	events := w.Watch(ctx)

	require.NoError(t, os.WriteFile(path, []byte(`{"tokens":[]}`), 0o644))

	select {
	case ev := <-events:
		require.Error(t, ev.Err)
		assert.Nil(t, ev.Catalog)
	case <-ctx.Done():
		t.Fatal("timed out waiting for reload event")
	}
}
