package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable override, e.g.
// CASHOUT_CHECKOUT_DEFAULT_TOKEN.
const EnvPrefix = "CASHOUT"

// FileName is the config file base name searched for in the config paths.
const FileName = "cashout"

// Config represents the full cashout.yaml schema.
type Config struct {
	Checkout CheckoutConfig `mapstructure:"checkout"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Assets   AssetsConfig   `mapstructure:"assets"`
	Log      LogConfig      `mapstructure:"log"`
	UI       UIConfig       `mapstructure:"ui"`
}

// CheckoutConfig holds the initial wizard values.
type CheckoutConfig struct {
	DefaultAmount string `mapstructure:"default_amount"`
	DefaultToken  string `mapstructure:"default_token"`
	DefaultTab    string `mapstructure:"default_tab"`
	AccountName   string `mapstructure:"account_name"`
}

// CatalogConfig points at an optional reference-data override file.
type CatalogConfig struct {
	Path  string `mapstructure:"path"`
	Watch bool   `mapstructure:"watch"`
}

// AssetsConfig locates the icon files referenced by the catalog.
type AssetsConfig struct {
	Dir string `mapstructure:"dir"`
}

// LogConfig controls the zap logger. The TUI owns stdout, so logs always go
// to a file.
type LogConfig struct {
	File   string `mapstructure:"file"`
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// UIConfig holds terminal rendering preferences.
type UIConfig struct {
	AltScreen bool `mapstructure:"alt_screen"`
}

// defaults mirrors the built-in checkout behaviour.
var defaults = map[string]any{
	"checkout.default_amount": "0.10",
	"checkout.default_token":  "eth",
	"checkout.default_tab":    "crypto-cash",
	"checkout.account_name":   "ODUTUGA GBEKE",
	"catalog.path":            "",
	"catalog.watch":           false,
	"assets.dir":              "",
	"log.file":                "cashout.log",
	"log.level":               "info",
	"log.format":              "json",
	"ui.alt_screen":           true,
}

// SetDefaults registers every default on v and wires the environment
// override scheme.
func SetDefaults(v *viper.Viper) {
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// SearchPaths returns the directories searched for cashout.yaml, in order.
func SearchPaths() []string {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "cashout"))
	}
	return paths
}

// Load unmarshals v into a Config.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return &cfg, nil
}

// WriteDefault writes a config file containing every default to path. It
// refuses to overwrite an existing file.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	v := viper.New()
	for k, val := range defaults {
		v.Set(k, val)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
