package views

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/Dallionking/cashout/internal/catalog"
	"github.com/Dallionking/cashout/internal/checkout"
	"github.com/Dallionking/cashout/internal/tui/models"
)

// CheckoutOptions configures RunCheckout.
type CheckoutOptions struct {
	Wizard      *checkout.Wizard
	Logger      *zap.Logger
	CatalogPath string // file to watch; ignored unless Watch is set
	Watch       bool
	AltScreen   bool
}

// RunCheckout launches the interactive checkout and blocks until the user
// quits. It returns the last submission, or nil when nothing was submitted.
//
// With Watch set, a catalog.Watcher reloads CatalogPath on change and
// delivers each result to the program as a models.CatalogReloadedMsg.
func RunCheckout(ctx context.Context, opts CheckoutOptions) (*checkout.Submission, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	model := models.NewCheckoutModel(opts.Wizard, logger)

	progOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	p := tea.NewProgram(model, progOpts...)

	if opts.Watch && opts.CatalogPath != "" {
		w, err := catalog.NewWatcher(opts.CatalogPath)
		if err != nil {
			return nil, fmt.Errorf("watching catalog: %w", err)
		}
		defer w.Close()

		watchCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		logger.Info("watching catalog", zap.String("path", w.Path()))
		go forwardReloads(watchCtx, w.Watch(watchCtx), p)
	}

	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("running checkout: %w", err)
	}
	if m, ok := final.(models.CheckoutModel); ok {
		return m.Submitted(), nil
	}
	return nil, nil
}

// sender is the part of *tea.Program that receives reload messages.
type sender interface {
	Send(msg tea.Msg)
}

// forwardReloads turns watcher events into program messages until ctx is
// done or the event channel closes.
func forwardReloads(ctx context.Context, events <-chan catalog.Event, p sender) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			p.Send(models.CatalogReloadedMsg{Path: ev.Path, Catalog: ev.Catalog, Err: ev.Err})
		}
	}
}
