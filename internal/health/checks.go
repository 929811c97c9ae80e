package health

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Dallionking/cashout/internal/catalog"
	"github.com/Dallionking/cashout/internal/checkout"
	"github.com/Dallionking/cashout/internal/config"
)

// registerChecks registers every check across the four categories.
func (c *Checker) registerChecks() {
	// Config checks
	c.add("config-file", "config", c.checkConfigFile)
	c.add("log-file", "config", c.checkLogFile)

	// Catalog checks
	c.add("catalog-source", "catalog", c.checkCatalogSource)
	c.add("catalog-data", "catalog", c.checkCatalogData)
	c.add("config-values", "catalog", c.checkConfigValues)
	c.add("default-quote", "catalog", c.checkDefaultQuote)

	// Asset checks
	c.add("asset-icons", "assets", c.checkAssetIcons)

	// Terminal checks
	c.add("terminal", "terminal", c.checkTerminal)
}

// ---------------------------------------------------------------------------
// Config checks
// ---------------------------------------------------------------------------

func (c *Checker) checkConfigFile(ctx context.Context) CheckResult {
	if c.configFile == "" {
		return CheckResult{Status: StatusWarn, Message: "no cashout.yaml found, using defaults (run `cashout config init`)"}
	}
	if _, err := os.Stat(c.configFile); err != nil {
		return CheckResult{Status: StatusFail, Message: fmt.Sprintf("cannot read %s", c.configFile)}
	}
	return CheckResult{Status: StatusPass, Message: c.configFile}
}

func (c *Checker) checkLogFile(ctx context.Context) CheckResult {
	path := c.cfg.Log.File
	if path == "" {
		return CheckResult{Status: StatusFail, Message: "log.file is empty"}
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return CheckResult{Status: StatusFail, Message: fmt.Sprintf("not writable: %v", err)}
	}
	f.Close()
	return CheckResult{Status: StatusPass, Message: fmt.Sprintf("%s (%s, %s)", path, c.cfg.Log.Level, c.cfg.Log.Format)}
}

// ---------------------------------------------------------------------------
// Catalog checks
// ---------------------------------------------------------------------------

func (c *Checker) checkCatalogSource(ctx context.Context) CheckResult {
	cat, err := c.loadCatalog()
	if err != nil {
		lines := strings.Split(err.Error(), "\n")
		return CheckResult{Status: StatusFail, Message: summarize(len(lines), lines[0])}
	}
	src := "built-in"
	if c.cfg.Catalog.Path != "" {
		src = c.cfg.Catalog.Path
	}
	return CheckResult{
		Status:  StatusPass,
		Message: fmt.Sprintf("%s: %d tokens, %d wallets, %d banks", src, len(cat.Tokens), len(cat.Wallets), len(cat.Banks)),
	}
}

func (c *Checker) checkCatalogData(ctx context.Context) CheckResult {
	cat, err := c.loadCatalog()
	if err != nil {
		return CheckResult{Status: StatusFail, Message: "catalog not loaded"}
	}
	errs := catalog.Validate(cat)
	if len(errs) > 0 {
		return CheckResult{Status: StatusFail, Message: summarize(len(errs), errs[0].Error())}
	}
	if len(cat.Banks) == 0 {
		return CheckResult{Status: StatusWarn, Message: "no banks defined; recipient step cannot complete"}
	}
	return CheckResult{Status: StatusPass, Message: "all sections valid"}
}

func (c *Checker) checkConfigValues(ctx context.Context) CheckResult {
	cat, err := c.loadCatalog()
	if err != nil {
		return CheckResult{Status: StatusFail, Message: "catalog not loaded"}
	}
	errs := config.Validate(c.cfg, cat)
	if len(errs) > 0 {
		return CheckResult{Status: StatusFail, Message: summarize(len(errs), errs[0].Error())}
	}
	return CheckResult{Status: StatusPass, Message: "defaults match the catalog"}
}

func (c *Checker) checkDefaultQuote(ctx context.Context) CheckResult {
	cat, err := c.loadCatalog()
	if err != nil {
		return CheckResult{Status: StatusFail, Message: "catalog not loaded"}
	}
	tok := cat.Tokens[0]
	if id := c.cfg.Checkout.DefaultToken; id != "" {
		t, ok := cat.Token(id)
		if !ok {
			return CheckResult{Status: StatusFail, Message: fmt.Sprintf("unknown token %q", id)}
		}
		tok = t
	}
	amount := c.cfg.Checkout.DefaultAmount
	if amount == "" {
		amount = checkout.DefaultPayAmount
	}
	q := checkout.NewQuote(amount, tok, cat.Currency.Code)
	if q.Receive == checkout.ZeroAmount {
		return CheckResult{Status: StatusWarn, Message: fmt.Sprintf("%s %s quotes to zero", amount, tok.Symbol)}
	}
	return CheckResult{Status: StatusPass, Message: fmt.Sprintf("%s %s = %s %s", amount, tok.Symbol, q.Receive, q.Currency)}
}

// ---------------------------------------------------------------------------
// Asset checks
// ---------------------------------------------------------------------------

func (c *Checker) checkAssetIcons(ctx context.Context) CheckResult {
	dir := c.cfg.Assets.Dir
	if dir == "" {
		return CheckResult{Status: StatusWarn, Message: "assets.dir not set, icons not checked"}
	}
	cat, err := c.loadCatalog()
	if err != nil {
		return CheckResult{Status: StatusFail, Message: "catalog not loaded"}
	}

	icons := iconPaths(cat)
	var missing []string
	for _, icon := range icons {
		if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(icon))); err != nil {
			missing = append(missing, icon)
		}
	}
	if len(missing) == 0 {
		return CheckResult{Status: StatusPass, Message: fmt.Sprintf("all %d icon files found", len(icons))}
	}
	return CheckResult{Status: StatusWarn, Message: summarize(len(missing), "missing "+missing[0])}
}

// iconPaths returns the distinct file-path icons in the catalog. Named icons
// such as "landmark" are drawn by the UI and are skipped.
func iconPaths(cat *catalog.Catalog) []string {
	seen := make(map[string]bool)
	var out []string
	addIcon := func(icon string) {
		if !strings.Contains(icon, "/") || seen[icon] {
			return
		}
		seen[icon] = true
		out = append(out, icon)
	}

	for _, t := range cat.Tokens {
		addIcon(t.Icon)
	}
	for _, group := range [][]catalog.Option{cat.Wallets, cat.Banks, cat.PaymentMethods} {
		for _, o := range group {
			addIcon(o.Icon)
		}
	}
	addIcon(cat.Currency.Icon)
	return out
}

// ---------------------------------------------------------------------------
// Terminal checks
// ---------------------------------------------------------------------------

func (c *Checker) checkTerminal(ctx context.Context) CheckResult {
	term := os.Getenv("TERM")
	switch term {
	case "":
		return CheckResult{Status: StatusWarn, Message: "TERM is not set; the checkout may render without colors"}
	case "dumb":
		return CheckResult{Status: StatusWarn, Message: "TERM=dumb cannot run the interactive checkout"}
	}
	return CheckResult{Status: StatusPass, Message: "TERM=" + term}
}

// summarize prefixes first with a count when there is more than one problem.
func summarize(n int, first string) string {
	if n == 1 {
		return first
	}
	return fmt.Sprintf("%d problems, first: %s", n, first)
}
