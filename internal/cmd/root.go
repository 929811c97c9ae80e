package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Dallionking/cashout/internal/catalog"
	"github.com/Dallionking/cashout/internal/config"
)

var (
	cfgFile   string
	noColor   bool
	configErr error
)

var rootCmd = &cobra.Command{
	Use:   "cashout",
	Short: "Crypto-to-cash checkout in the terminal",
	Long: `cashout: convert crypto to local cash from the terminal

A two-step checkout: choose how much to pay and from which wallet,
then where the cash should land. Rates come from a built-in catalog
or a JSON file that can be reloaded while the checkout is open.

Running cashout without a subcommand opens the checkout.`,
	SilenceUsage: true,
	RunE:         runCheckout,
}

// Execute runs the root command. Cancelling ctx quits the checkout.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./cashout.yaml or ~/.config/cashout/cashout.yaml)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable color output")
	addCheckoutFlags(rootCmd)
}

func initConfig() {
	if noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	// .env is optional; variables already set in the environment win.
	_ = godotenv.Load()

	v := viper.GetViper()
	config.SetDefaults(v)
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(config.FileName)
		v.SetConfigType("yaml")
		for _, p := range config.SearchPaths() {
			v.AddConfigPath(p)
		}
	}

	configErr = nil
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			configErr = fmt.Errorf("reading config: %w", err)
		}
	}
}

// loadConfig decodes the effective configuration. A missing config file is
// not an error; a broken one is.
func loadConfig() (*config.Config, error) {
	if configErr != nil {
		return nil, configErr
	}
	return config.Load(viper.GetViper())
}

// loadCatalog returns the override catalog at path, or the built-in one
// when path is empty.
func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	c, err := catalog.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	return c, nil
}
