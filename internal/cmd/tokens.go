package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/Dallionking/cashout/internal/catalog"
	"github.com/Dallionking/cashout/internal/checkout"
)

var (
	tokensSymbol  string
	tokensCatalog string
	tokensJSON    bool
)

var tokensCmd = &cobra.Command{
	Use:   "tokens",
	Short: "List supported tokens and their rates",
	RunE: func(c *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		path := cfg.Catalog.Path
		if tokensCatalog != "" {
			path = tokensCatalog
		}
		cat, err := loadCatalog(path)
		if err != nil {
			return err
		}

		tokens := filterTokens(cat.Tokens, tokensSymbol)
		if tokensJSON {
			enc := json.NewEncoder(c.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(tokens)
		}

		md := tokenTable(tokens, cat.Currency.Code)
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(100),
		)
		if err != nil {
			return fmt.Errorf("creating renderer: %w", err)
		}
		out, err := r.Render(md)
		if err != nil {
			return fmt.Errorf("rendering table: %w", err)
		}
		fmt.Fprint(c.OutOrStdout(), out)
		return nil
	},
}

func init() {
	tokensCmd.Flags().StringVar(&tokensSymbol, "symbol", "", "only list tokens with this symbol, e.g. USDT")
	tokensCmd.Flags().StringVar(&tokensCatalog, "catalog", "", "JSON file overriding rates")
	tokensCmd.Flags().BoolVar(&tokensJSON, "json", false, "print tokens as JSON")
	rootCmd.AddCommand(tokensCmd)
}

// filterTokens keeps tokens whose symbol matches, case-insensitively. An
// empty symbol keeps everything.
func filterTokens(tokens []catalog.Token, symbol string) []catalog.Token {
	if symbol == "" {
		return tokens
	}
	var out []catalog.Token
	for _, t := range tokens {
		if strings.EqualFold(t.Symbol, symbol) {
			out = append(out, t)
		}
	}
	return out
}

// tokenTable renders tokens as a markdown table for glamour.
func tokenTable(tokens []catalog.Token, currency string) string {
	var b strings.Builder
	b.WriteString("## Tokens\n\n")
	if len(tokens) == 0 {
		b.WriteString("_No tokens match._\n")
		return b.String()
	}
	fmt.Fprintf(&b, "| ID | Token | Symbol | Rate (%s) |\n", currency)
	b.WriteString("|---|---|---|---:|\n")
	for _, t := range tokens {
		fmt.Fprintf(&b, "| `%s` | %s | %s | %s |\n", t.ID, t.Name, t.Symbol, checkout.FormatAmount(t.Rate))
	}
	return b.String()
}
