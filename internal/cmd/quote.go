package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Dallionking/cashout/internal/checkout"
	"github.com/Dallionking/cashout/internal/tui/styles"
)

var (
	quoteToken   string
	quoteCatalog string
	quoteJSON    bool
)

var quoteCmd = &cobra.Command{
	Use:   "quote <amount>",
	Short: "Show how much cash an amount of crypto converts to",
	Long: `Convert an amount of crypto at the catalog rate without opening the
checkout. The result is rounded to 2 decimal places.`,
	Example: `  cashout quote 0.1
  cashout quote 25 --token usdt-ton --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		path := cfg.Catalog.Path
		if quoteCatalog != "" {
			path = quoteCatalog
		}
		cat, err := loadCatalog(path)
		if err != nil {
			return err
		}

		tokenID := quoteToken
		if tokenID == "" {
			tokenID = cfg.Checkout.DefaultToken
		}
		if len(cat.Tokens) == 0 {
			return fmt.Errorf("catalog has no tokens")
		}
		tok := cat.Tokens[0]
		if tokenID != "" {
			t, ok := cat.Token(tokenID)
			if !ok {
				return fmt.Errorf("token %q: %w", tokenID, checkout.ErrUnknownOption)
			}
			tok = t
		}

		amount := args[0]
		errs := checkout.ValidateStep1(checkout.Step1Input{PayAmount: amount})
		if msg, ok := errs[checkout.FieldPayAmount]; ok {
			return errors.New(msg)
		}

		q := checkout.NewQuote(amount, tok, cat.Currency.Code)
		return writeQuote(c.OutOrStdout(), q, quoteJSON)
	},
}

func init() {
	quoteCmd.Flags().StringVar(&quoteToken, "token", "", "token id (default from checkout.default_token)")
	quoteCmd.Flags().StringVar(&quoteCatalog, "catalog", "", "JSON file overriding rates")
	quoteCmd.Flags().BoolVar(&quoteJSON, "json", false, "print the quote as JSON")
	rootCmd.AddCommand(quoteCmd)
}

func writeQuote(w io.Writer, q checkout.Quote, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(q)
	}

	fmt.Fprintln(w, styles.Label.Render("YOU PAY")+"      "+styles.Value.Render(q.PayAmount+" "+q.Symbol))
	fmt.Fprintln(w, styles.Label.Render("YOU RECEIVE")+"  "+styles.Amount.Render(q.Receive+" "+q.Currency))
	fmt.Fprintln(w, styles.Label.Render("RATE")+"         "+
		styles.Dim(fmt.Sprintf("1 %s = %s %s", q.Symbol, checkout.FormatAmount(q.Rate), q.Currency)))
	return nil
}
