package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ValidationError describes a single catalog problem.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface for a single validation error.
func (ve ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ve.Field, ve.Message)
}

// LoadFile reads a JSON catalog override from path and layers it over the
// built-in data. Sections absent from the file keep their defaults. The
// merged catalog is validated before it is returned.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a JSON catalog override and merges it over Default.
func Parse(data []byte) (*Catalog, error) {
	var override Catalog
	if err := json.Unmarshal(data, &override); err != nil {
		return nil, err
	}

	c := Default()
	if override.Tabs != nil {
		c.Tabs = override.Tabs
	}
	if override.Tokens != nil {
		c.Tokens = override.Tokens
	}
	if override.Wallets != nil {
		c.Wallets = override.Wallets
	}
	if override.Banks != nil {
		c.Banks = override.Banks
	}
	if override.PaymentMethods != nil {
		c.PaymentMethods = override.PaymentMethods
	}
	if override.Currency.Code != "" {
		c.Currency = override.Currency
	}

	if errs := Validate(c); len(errs) > 0 {
		joined := make([]error, len(errs))
		for i, e := range errs {
			joined[i] = e
		}
		return nil, errors.Join(joined...)
	}
	return c, nil
}

// Validate checks the catalog for completeness and consistency. It returns
// every problem found rather than stopping at the first one.
func Validate(c *Catalog) []ValidationError {
	var errs []ValidationError

	if len(c.Tokens) == 0 {
		errs = append(errs, ValidationError{Field: "tokens", Message: "at least one token is required"})
	}
	seen := make(map[string]bool)
	for i, t := range c.Tokens {
		field := fmt.Sprintf("tokens[%d]", i)
		if t.ID == "" {
			errs = append(errs, ValidationError{Field: field + ".id", Message: "required field is empty"})
		} else if seen[t.ID] {
			errs = append(errs, ValidationError{Field: field + ".id", Message: fmt.Sprintf("duplicate id %q", t.ID)})
		}
		seen[t.ID] = true
		if t.Name == "" {
			errs = append(errs, ValidationError{Field: field + ".name", Message: "required field is empty"})
		}
		if !t.Rate.IsPositive() {
			errs = append(errs, ValidationError{
				Field:   field + ".rate",
				Message: fmt.Sprintf("must be > 0, got %s", t.Rate.String()),
			})
		}
	}

	errs = append(errs, validateOptions("wallets", c.Wallets)...)
	errs = append(errs, validateOptions("banks", c.Banks)...)
	errs = append(errs, validateOptions("paymentMethods", c.PaymentMethods)...)

	if len(c.Tabs) == 0 {
		errs = append(errs, ValidationError{Field: "tabs", Message: "at least one tab is required"})
	}
	if c.Currency.Code == "" {
		errs = append(errs, ValidationError{Field: "currency.code", Message: "required field is empty"})
	}

	return errs
}

func validateOptions(section string, opts []Option) []ValidationError {
	var errs []ValidationError
	if len(opts) == 0 {
		errs = append(errs, ValidationError{Field: section, Message: "at least one entry is required"})
	}
	seen := make(map[string]bool)
	for i, o := range opts {
		field := fmt.Sprintf("%s[%d]", section, i)
		if o.ID == "" {
			errs = append(errs, ValidationError{Field: field + ".id", Message: "required field is empty"})
		} else if seen[o.ID] {
			errs = append(errs, ValidationError{Field: field + ".id", Message: fmt.Sprintf("duplicate id %q", o.ID)})
		}
		seen[o.ID] = true
		if o.Name == "" {
			errs = append(errs, ValidationError{Field: field + ".name", Message: "required field is empty"})
		}
	}
	return errs
}
