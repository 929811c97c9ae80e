package cmd

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Dallionking/cashout/internal/config"
	"github.com/Dallionking/cashout/internal/tui/styles"
)

// --- config (parent) ---

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
	Long: `View and manage cashout configuration.

When run without subcommands, displays the effective configuration:
defaults, then cashout.yaml, then CASHOUT_* environment variables.

Subcommands:
  init       Write a config file with every default
  validate   Check the config against the catalog`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		printConfig(cmd.OutOrStdout(), cfg, viper.ConfigFileUsed())
		return nil
	},
}

func printConfig(w io.Writer, cfg *config.Config, file string) {
	if file == "" {
		file = styles.Dim("(none, using defaults)")
	}
	orNone := func(s string) string {
		if s == "" {
			return styles.Dim("-")
		}
		return s
	}

	fmt.Fprintln(w, styles.Title.Render("Configuration"))
	fmt.Fprintln(w)
	fmt.Fprintln(w, styles.Label.Render("FILE")+"      "+styles.Value.Render(file))
	fmt.Fprintln(w)
	fmt.Fprintln(w, styles.Divider(50))
	fmt.Fprintln(w)

	fmt.Fprintln(w, styles.Subtitle.Render("Checkout"))
	fmt.Fprintln(w, styles.Label.Render("  AMOUNT")+"    "+styles.Value.Render(orNone(cfg.Checkout.DefaultAmount)))
	fmt.Fprintln(w, styles.Label.Render("  TOKEN")+"     "+styles.Value.Render(orNone(cfg.Checkout.DefaultToken)))
	fmt.Fprintln(w, styles.Label.Render("  TAB")+"       "+styles.Value.Render(orNone(cfg.Checkout.DefaultTab)))
	fmt.Fprintln(w, styles.Label.Render("  NAME")+"      "+styles.Value.Render(orNone(cfg.Checkout.AccountName)))
	fmt.Fprintln(w)

	fmt.Fprintln(w, styles.Subtitle.Render("Catalog"))
	fmt.Fprintln(w, styles.Label.Render("  PATH")+"      "+styles.Value.Render(orNone(cfg.Catalog.Path)))
	fmt.Fprintln(w, styles.Label.Render("  WATCH")+"     "+styles.Value.Render(fmt.Sprintf("%t", cfg.Catalog.Watch)))
	fmt.Fprintln(w, styles.Label.Render("  ASSETS")+"    "+styles.Value.Render(orNone(cfg.Assets.Dir)))
	fmt.Fprintln(w)

	fmt.Fprintln(w, styles.Subtitle.Render("Logging"))
	fmt.Fprintln(w, styles.Label.Render("  FILE")+"      "+styles.Value.Render(orNone(cfg.Log.File)))
	fmt.Fprintln(w, styles.Label.Render("  LEVEL")+"     "+styles.Value.Render(cfg.Log.Level))
	fmt.Fprintln(w, styles.Label.Render("  FORMAT")+"    "+styles.Value.Render(cfg.Log.Format))
	fmt.Fprintln(w)

	fmt.Fprintln(w, styles.Subtitle.Render("Terminal"))
	fmt.Fprintln(w, styles.Label.Render("  ALTSCREEN")+" "+styles.Value.Render(fmt.Sprintf("%t", cfg.UI.AltScreen)))
}

// --- config init ---

var configInitGlobal bool

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with every default",
	Long: `Write cashout.yaml with every default value. By default the file is
written to the current directory; --global writes it to the user config
directory instead. An existing file is never overwritten.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configInitPath(configInitGlobal)
		if err != nil {
			return err
		}
		if err := config.WriteDefault(path); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), styles.Green("Wrote")+" "+styles.Value.Render(path))
		return nil
	},
}

func configInitPath(global bool) (string, error) {
	name := config.FileName + ".yaml"
	if !global {
		return name, nil
	}
	paths := config.SearchPaths()
	if len(paths) < 2 {
		return "", fmt.Errorf("no user config directory available")
	}
	return filepath.Join(paths[1], name), nil
}

// --- config validate ---

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the config against the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		cat, err := loadCatalog(cfg.Catalog.Path)
		if err != nil {
			return err
		}

		errs := config.Validate(cfg, cat)
		out := cmd.OutOrStdout()
		if len(errs) == 0 {
			fmt.Fprintln(out, styles.Green("Config is valid"))
			return nil
		}
		for _, e := range errs {
			fmt.Fprintln(out, "  "+styles.Red("x")+" "+styles.Bold(e.Field)+"  "+styles.Dim(e.Message))
		}
		return fmt.Errorf("%d config problem(s)", len(errs))
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configInitGlobal, "global", false, "write to the user config directory")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configValidateCmd)
	rootCmd.AddCommand(configCmd)
}
