package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Dallionking/cashout/internal/catalog"
	"github.com/Dallionking/cashout/internal/checkout"
	"github.com/Dallionking/cashout/internal/config"
	"github.com/Dallionking/cashout/internal/logging"
	"github.com/Dallionking/cashout/internal/tui/styles"
	"github.com/Dallionking/cashout/internal/tui/views"
)

var checkoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Open the interactive checkout",
	Long: `Open the two-step checkout.

Step 1 takes the amount to pay, the token, the wallet to pay from and
how the cash is paid out. Step 2 takes the recipient bank and account
number. Submitting records the request in the log; no payment is made.

Flags override the checkout.* and catalog.* config keys for this run.`,
	Example: `  cashout checkout --amount 25 --token usdt-celo
  cashout checkout --catalog rates.json --watch`,
	RunE: runCheckout,
}

func init() {
	addCheckoutFlags(checkoutCmd)
	rootCmd.AddCommand(checkoutCmd)
}

func addCheckoutFlags(c *cobra.Command) {
	f := c.Flags()
	f.String("amount", "", "initial pay amount (default from checkout.default_amount)")
	f.String("token", "", "initial token id, e.g. eth or usdt-celo")
	f.String("tab", "", "initial tab: crypto-cash, cash-crypto or loan")
	f.String("catalog", "", "JSON file overriding rates and reference data")
	f.Bool("watch", false, "reload the catalog file when it changes")
	f.Bool("no-alt-screen", false, "render inline instead of in the alternate screen")
}

// applyCheckoutFlags copies explicitly set flags over cfg.
func applyCheckoutFlags(c *cobra.Command, cfg *config.Config) {
	f := c.Flags()
	if f.Changed("amount") {
		cfg.Checkout.DefaultAmount, _ = f.GetString("amount")
	}
	if f.Changed("token") {
		cfg.Checkout.DefaultToken, _ = f.GetString("token")
	}
	if f.Changed("tab") {
		cfg.Checkout.DefaultTab, _ = f.GetString("tab")
	}
	if f.Changed("catalog") {
		cfg.Catalog.Path, _ = f.GetString("catalog")
	}
	if f.Changed("watch") {
		cfg.Catalog.Watch, _ = f.GetBool("watch")
	}
	if f.Changed("no-alt-screen") {
		inline, _ := f.GetBool("no-alt-screen")
		cfg.UI.AltScreen = !inline
	}
}

func runCheckout(c *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyCheckoutFlags(c, cfg)

	cat, err := loadCatalog(cfg.Catalog.Path)
	if err != nil {
		return err
	}
	if err := validationError(config.Validate(cfg, cat)); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	w, err := checkout.New(cat, checkout.Options{
		PayAmount:   cfg.Checkout.DefaultAmount,
		TokenID:     cfg.Checkout.DefaultToken,
		Tab:         catalog.TabID(cfg.Checkout.DefaultTab),
		AccountName: cfg.Checkout.AccountName,
	})
	if err != nil {
		return fmt.Errorf("starting checkout: %w", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	sub, err := views.RunCheckout(c.Context(), views.CheckoutOptions{
		Wizard:      w,
		Logger:      logger,
		CatalogPath: cfg.Catalog.Path,
		Watch:       cfg.Catalog.Watch,
		AltScreen:   cfg.UI.AltScreen,
	})
	if err != nil {
		logger.Error("checkout failed", zap.Error(err))
		return err
	}

	if sub != nil {
		out := c.OutOrStdout()
		fmt.Fprintln(out, styles.Green("Request recorded")+"  "+
			styles.Value.Render(fmt.Sprintf("%s %s → %s %s", sub.PayAmount, w.Token().Symbol, sub.ReceiveAmount, sub.Currency)))
		fmt.Fprintln(out, styles.Dim("Details were written to "+cfg.Log.File+". No payment was made."))
	}
	return nil
}

// validationError joins config problems into one error, or returns nil.
func validationError(errs []config.ValidationError) error {
	if len(errs) == 0 {
		return nil
	}
	joined := make([]error, len(errs))
	for i, e := range errs {
		joined[i] = e
	}
	return errors.Join(joined...)
}
