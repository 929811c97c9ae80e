package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Dallionking/cashout/internal/catalog"
	"github.com/Dallionking/cashout/internal/checkout"
)

// ValidationError describes a single config validation failure.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface for a single validation error.
func (ve ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ve.Field, ve.Message)
}

var (
	validLevels  = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	validFormats = map[string]bool{"json": true, "console": true}
)

// Validate checks the Config for completeness and consistency against the
// catalog it will be used with. It returns a slice of all discovered issues
// rather than stopping at the first one.
func Validate(cfg *Config, cat *catalog.Catalog) []ValidationError {
	var errs []ValidationError

	// --- Checkout defaults ---
	amount := cfg.Checkout.DefaultAmount
	if amount != "" && !checkout.IsAmountInput(amount) {
		errs = append(errs, ValidationError{
			Field:   "checkout.default_amount",
			Message: fmt.Sprintf("must be a decimal number, got %q", amount),
		})
	}
	if tok := cfg.Checkout.DefaultToken; tok != "" {
		if _, ok := cat.Token(tok); !ok {
			errs = append(errs, ValidationError{
				Field:   "checkout.default_token",
				Message: fmt.Sprintf("references undefined token %q", tok),
			})
		}
	}
	if tab := cfg.Checkout.DefaultTab; tab != "" && !cat.HasTab(catalog.TabID(tab)) {
		errs = append(errs, ValidationError{
			Field:   "checkout.default_tab",
			Message: fmt.Sprintf("references undefined tab %q", tab),
		})
	}

	// --- Catalog ---
	if cfg.Catalog.Watch && cfg.Catalog.Path == "" {
		errs = append(errs, ValidationError{
			Field:   "catalog.watch",
			Message: "requires catalog.path to be set",
		})
	}
	if p := cfg.Catalog.Path; p != "" {
		if _, err := os.Stat(p); err != nil {
			errs = append(errs, ValidationError{
				Field:   "catalog.path",
				Message: fmt.Sprintf("file not found: %s", p),
			})
		}
	}

	// --- Logging ---
	if cfg.Log.File == "" {
		errs = append(errs, ValidationError{Field: "log.file", Message: "required field is empty"})
	} else if dir := filepath.Dir(cfg.Log.File); dir != "." {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			errs = append(errs, ValidationError{
				Field:   "log.file",
				Message: fmt.Sprintf("directory not found: %s", dir),
			})
		}
	}
	if !validLevels[cfg.Log.Level] {
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Message: fmt.Sprintf("must be one of debug, info, warn, error; got %q", cfg.Log.Level),
		})
	}
	if !validFormats[cfg.Log.Format] {
		errs = append(errs, ValidationError{
			Field:   "log.format",
			Message: fmt.Sprintf("must be json or console, got %q", cfg.Log.Format),
		})
	}

	// --- Assets ---
	if d := cfg.Assets.Dir; d != "" {
		if info, err := os.Stat(d); err != nil || !info.IsDir() {
			errs = append(errs, ValidationError{
				Field:   "assets.dir",
				Message: fmt.Sprintf("directory not found: %s", d),
			})
		}
	}

	return errs
}
