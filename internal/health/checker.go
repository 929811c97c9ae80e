package health

import (
	"context"
	"sync"
	"time"

	"github.com/Dallionking/cashout/internal/catalog"
	"github.com/Dallionking/cashout/internal/config"
)

// Status represents the result of a single health check.
type Status int

const (
	StatusPass Status = iota
	StatusWarn
	StatusFail
)

// String returns the lowercase text representation of the status.
func (s Status) String() string {
	switch s {
	case StatusPass:
		return "pass"
	case StatusWarn:
		return "warn"
	case StatusFail:
		return "fail"
	default:
		return "unknown"
	}
}

// Symbol returns the display symbol for the status.
func (s Status) Symbol() string {
	switch s {
	case StatusPass:
		return "+"
	case StatusWarn:
		return "!"
	case StatusFail:
		return "x"
	default:
		return "?"
	}
}

// CheckResult holds the result of a single check.
type CheckResult struct {
	Name     string
	Category string // "config", "catalog", "assets", "terminal"
	Status   Status
	Message  string
	Duration time.Duration
}

// Report holds results of all checks.
type Report struct {
	Results  []CheckResult
	Passed   int
	Warned   int
	Failed   int
	Total    int
	Duration time.Duration
	Healthy  bool
}

// Check is a named, categorized health check function.
type Check struct {
	Name     string
	Category string
	Fn       func(ctx context.Context) CheckResult
}

// Checker runs the registered diagnostics against a loaded configuration.
type Checker struct {
	checks     []Check
	cfg        *config.Config
	configFile string // file viper read, "" when running on defaults

	catalogOnce sync.Once
	catalog     *catalog.Catalog
	catalogErr  error
}

// NewChecker creates a health checker for cfg. configFile is the path of
// the config file in use, or "" when only defaults and env apply.
func NewChecker(cfg *config.Config, configFile string) *Checker {
	c := &Checker{
		cfg:        cfg,
		configFile: configFile,
	}
	c.registerChecks()
	return c
}

// add registers a single check.
func (c *Checker) add(name, category string, fn func(ctx context.Context) CheckResult) {
	c.checks = append(c.checks, Check{
		Name:     name,
		Category: category,
		Fn:       fn,
	})
}

// Checks lists the registered checks in run order.
func (c *Checker) Checks() []Check {
	return append([]Check(nil), c.checks...)
}

// RunAll runs every registered check and returns a report.
func (c *Checker) RunAll(ctx context.Context) *Report {
	return c.run(ctx, func(Check) bool { return true })
}

// RunCategory runs only the checks matching the given category.
func (c *Checker) RunCategory(ctx context.Context, category string) *Report {
	return c.run(ctx, func(ch Check) bool { return ch.Category == category })
}

// RunCheck runs the single check with the given name. The report is empty
// when no check has that name.
func (c *Checker) RunCheck(ctx context.Context, name string) *Report {
	return c.run(ctx, func(ch Check) bool { return ch.Name == name })
}

func (c *Checker) run(ctx context.Context, include func(Check) bool) *Report {
	start := time.Now()
	var results []CheckResult

	for _, ch := range c.checks {
		if !include(ch) {
			continue
		}
		if ctx.Err() != nil {
			results = append(results, CheckResult{
				Name:     ch.Name,
				Category: ch.Category,
				Status:   StatusFail,
				Message:  "context cancelled",
			})
			continue
		}
		t := time.Now()
		r := ch.Fn(ctx)
		r.Duration = time.Since(t)
		r.Name = ch.Name
		r.Category = ch.Category
		results = append(results, r)
	}

	return buildReport(results, time.Since(start))
}

// loadCatalog resolves the catalog once: the override file when configured,
// the built-in data otherwise.
func (c *Checker) loadCatalog() (*catalog.Catalog, error) {
	c.catalogOnce.Do(func() {
		if c.cfg.Catalog.Path == "" {
			c.catalog = catalog.Default()
			return
		}
		c.catalog, c.catalogErr = catalog.LoadFile(c.cfg.Catalog.Path)
	})
	return c.catalog, c.catalogErr
}

// buildReport aggregates a slice of results into a Report.
func buildReport(results []CheckResult, dur time.Duration) *Report {
	r := &Report{
		Results:  results,
		Total:    len(results),
		Duration: dur,
	}
	for _, res := range results {
		switch res.Status {
		case StatusPass:
			r.Passed++
		case StatusWarn:
			r.Warned++
		case StatusFail:
			r.Failed++
		}
	}
	r.Healthy = r.Failed == 0
	return r
}
