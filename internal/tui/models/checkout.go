package models

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/glamour"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Dallionking/cashout/internal/catalog"
	"github.com/Dallionking/cashout/internal/checkout"
	"github.com/Dallionking/cashout/internal/tui/components"
	"github.com/Dallionking/cashout/internal/tui/styles"
)

// ---------------------------------------------------------------------------
// Focus ring
// ---------------------------------------------------------------------------

type focusTarget int

const (
	focusTabs focusTarget = iota
	focusPayAmount
	focusToken
	focusWallet
	focusPaymentMethod
	focusBank
	focusAccountNumber
	focusButton
)

var (
	payerRing     = []focusTarget{focusTabs, focusPayAmount, focusToken, focusWallet, focusPaymentMethod, focusButton}
	recipientRing = []focusTarget{focusBank, focusAccountNumber, focusButton}
)

const tokenField = "token"

// ---------------------------------------------------------------------------
// Tea messages
// ---------------------------------------------------------------------------

// CatalogReloadedMsg carries the result of re-reading the catalog file.
// Err is set when the file could not be loaded; the current data stays.
type CatalogReloadedMsg struct {
	Path    string
	Catalog *catalog.Catalog
	Err     error
}

// ---------------------------------------------------------------------------
// CheckoutModel
// ---------------------------------------------------------------------------

// CheckoutModel implements tea.Model for the two-step checkout:
//
//	1. Payment           -- tabs, pay amount + token, receive amount,
//	                        wallet, payment method, "Convert now"
//	2. Recipient details -- bank, account number, account name, "Next"
//
// All durable state lives in the checkout.Wizard; the model only keeps
// focus, dropdown and overlay state.
type CheckoutModel struct {
	wizard    *checkout.Wizard
	logger    *zap.Logger
	sessionID string
	keys      keyMap

	focus int // index into the current step's ring

	pay         components.CurrencyInput
	receive     components.CurrencyInput
	token       components.Select
	wallet      components.Select
	method      components.Select
	bank        components.Select
	account     components.Input
	accountName components.Input

	confirming bool
	dialog     components.ConfirmDialog

	explain   bool
	notice    string
	submitted *checkout.Submission
	quitting  bool

	width  int
	height int
}

// NewCheckoutModel wraps w in a checkout program. A nil logger discards
// logs. Focus starts on the pay amount.
func NewCheckoutModel(w *checkout.Wizard, logger *zap.Logger) CheckoutModel {
	if logger == nil {
		logger = zap.NewNop()
	}
	sessionID := uuid.NewString()
	c := w.Catalog()

	m := CheckoutModel{
		wizard:    w,
		logger:    logger.With(zap.String("session_id", sessionID)),
		sessionID: sessionID,
		keys:      defaultKeyMap(),

		pay:         components.NewPayInput(string(checkout.FieldPayAmount), w.PayAmount()),
		receive:     components.NewReceiveInput(w.ReceiveAmount()),
		token:       components.NewSelect(tokenField, "Token", c.TokenOptions()),
		wallet:      components.NewSelect(string(checkout.FieldSourceWallet), "Pay from", c.Wallets),
		method:      components.NewSelect(string(checkout.FieldPaymentMethod), "Pay to", c.PaymentMethods),
		bank:        components.NewSelect(string(checkout.FieldRecipientBank), "Bank", c.Banks),
		account:     components.NewInput(string(checkout.FieldAccountNumber), "Account number", "Enter your account number"),
		accountName: components.NewDisabledInput("Account Name", w.AccountName()),

		focus:  1,
		width:  80,
		height: 40,
	}
	m.pay.Focus()
	m.resize(m.width, m.height)
	m.sync()

	m.logger.Info("checkout session started",
		zap.String("tab", string(w.Tab())),
		zap.String("token", w.Token().ID),
		zap.String("pay_amount", w.PayAmount()),
	)
	return m
}

// SessionID identifies this checkout in the log.
func (m CheckoutModel) SessionID() string { return m.sessionID }

// Wizard exposes the underlying state machine.
func (m CheckoutModel) Wizard() *checkout.Wizard { return m.wizard }

// Submitted returns the last submission, or nil.
func (m CheckoutModel) Submitted() *checkout.Submission { return m.submitted }

// ---------------------------------------------------------------------------
// tea.Model interface
// ---------------------------------------------------------------------------

// Init starts the cursor blinking in the pay amount.
func (m CheckoutModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update processes messages and key events. Every path ends by pushing the
// wizard state back into the widgets.
func (m CheckoutModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case CatalogReloadedMsg:
		m.applyCatalog(msg)
	case components.OptionSelectedMsg:
		m.applySelection(msg)
	case components.ValueChangedMsg:
		m.applyValue(msg)
	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	default:
		cmd = m.updateFocused(msg)
	}

	m.sync()
	return m, cmd
}

// View renders the checkout card and footer, or the quit dialog.
func (m CheckoutModel) View() string {
	if m.quitting {
		return ""
	}
	if m.confirming {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.dialog.View())
	}

	inner := m.fieldWidth()
	var sections []string

	if m.wizard.Step() == checkout.StepRecipient {
		sections = append(sections, m.viewRecipient(inner)...)
	} else {
		sections = append(sections, m.viewPayer(inner)...)
	}

	if m.notice != "" {
		sections = append(sections, "", lipgloss.NewStyle().Width(inner).Render(styles.Gold(m.notice)))
	}

	card := styles.Card.Width(m.cardWidth()).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
	out := []string{card}

	if m.explain {
		if text := m.explainContent(); text != "" {
			out = append(out, renderMarkdown(text, m.cardWidth()))
		}
	}

	out = append(out, m.renderFooter())
	return lipgloss.JoinVertical(lipgloss.Left, out...)
}

// ---------------------------------------------------------------------------
// Key handling
// ---------------------------------------------------------------------------

func (m *CheckoutModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	// Quit confirmation takes priority.
	if m.confirming {
		var cmd tea.Cmd
		m.dialog, cmd = m.dialog.Update(msg)
		if !m.dialog.Done {
			return cmd
		}
		m.confirming = false
		if !m.dialog.Confirmed {
			return cmd
		}
		m.quitting = true
		m.logger.Info("checkout session ended",
			zap.String("step", m.wizard.Step().String()),
			zap.Bool("submitted", m.submitted != nil),
		)
		return tea.Quit
	}

	if msg.String() == "ctrl+c" {
		m.askQuit()
		return nil
	}

	// An open dropdown owns every key except focus moves, including esc.
	if sel := m.openSelect(); sel != nil && !key.Matches(msg, m.keys.Next, m.keys.Prev) {
		var cmd tea.Cmd
		*sel, cmd = sel.Update(msg)
		return cmd
	}

	typing := m.focused() == focusAccountNumber

	switch {
	case key.Matches(msg, m.keys.Quit) && !typing:
		m.askQuit()
		return nil
	case key.Matches(msg, m.keys.Explain) && !typing:
		m.explain = !m.explain
		return nil
	case key.Matches(msg, m.keys.Next):
		return m.setFocus(m.focus + 1)
	case key.Matches(msg, m.keys.Prev):
		return m.setFocus(m.focus - 1)
	case key.Matches(msg, m.keys.Back):
		if m.wizard.Step() == checkout.StepRecipient {
			return m.back()
		}
		return nil
	}

	switch m.focused() {
	case focusTabs:
		switch {
		case key.Matches(msg, m.keys.TabLeft):
			m.switchTab(-1)
		case key.Matches(msg, m.keys.TabNext):
			m.switchTab(1)
		}
		return nil
	case focusButton:
		if key.Matches(msg, m.keys.Enter) {
			return m.press()
		}
		return nil
	case focusPayAmount, focusAccountNumber:
		if key.Matches(msg, m.keys.Enter) {
			return m.setFocus(m.focus + 1)
		}
	}

	return m.updateFocused(msg)
}

func (m *CheckoutModel) askQuit() {
	m.dialog = components.NewConfirmDialog("Leave checkout?", "Your details will not be saved.")
	m.confirming = true
}

func (m *CheckoutModel) switchTab(delta int) {
	tabs := components.TabBar{Tabs: m.wizard.Catalog().Tabs, Active: m.wizard.Tab()}
	next := tabs.Neighbor(delta)
	if err := m.wizard.SetTab(next); err != nil {
		m.logger.Warn("tab change rejected", zap.String("tab", string(next)), zap.Error(err))
		return
	}
	m.logger.Debug("tab changed", zap.String("tab", string(next)))
}

// press handles enter on the step button: Next on step 1, Submit on step 2.
// A blocked step marks all of its fields touched so every problem shows.
func (m *CheckoutModel) press() tea.Cmd {
	if m.wizard.Step() == checkout.StepPayer {
		if err := m.wizard.Next(); err != nil {
			for _, f := range checkout.Step1Fields {
				m.wizard.Touch(f)
			}
			return nil
		}
		m.logger.Info("step changed",
			zap.String("from", checkout.StepPayer.String()),
			zap.String("to", checkout.StepRecipient.String()),
		)
		m.notice = ""
		m.focus = 0
		return m.focusWidget(m.focused())
	}

	sub, err := m.wizard.Submit()
	if err != nil {
		for _, f := range checkout.Step2Fields {
			m.wizard.Touch(f)
		}
		return nil
	}
	m.submitted = &sub
	m.logger.Info("checkout submitted",
		zap.String("tab", string(sub.Tab)),
		zap.String("pay_amount", sub.PayAmount),
		zap.String("token", sub.Token),
		zap.String("receive_amount", sub.ReceiveAmount),
		zap.String("currency", sub.Currency),
		zap.String("wallet", sub.Wallet),
		zap.String("payment_method", sub.PaymentMethod),
		zap.String("recipient_bank", sub.RecipientBank),
		zap.String("account_number", maskAccount(sub.AccountNumber)),
		zap.String("account_name", sub.AccountName),
	)

	bankName := sub.RecipientBank
	if b := m.wizard.RecipientBank(); b != nil {
		bankName = b.Name
	}
	m.notice = fmt.Sprintf("Request recorded: %s %s → %s %s to %s %s. Nothing has been sent.",
		sub.PayAmount, m.wizard.Token().Symbol, sub.ReceiveAmount, sub.Currency,
		bankName, maskAccount(sub.AccountNumber))
	return nil
}

// back returns to step 1 with focus on the pay amount.
func (m *CheckoutModel) back() tea.Cmd {
	m.blur(m.focused())
	m.wizard.Back()
	m.logger.Info("step changed",
		zap.String("from", checkout.StepRecipient.String()),
		zap.String("to", checkout.StepPayer.String()),
	)
	m.notice = ""
	m.focus = 1
	return m.focusWidget(m.focused())
}

// ---------------------------------------------------------------------------
// Focus management
// ---------------------------------------------------------------------------

func (m CheckoutModel) ring() []focusTarget {
	if m.wizard.Step() == checkout.StepRecipient {
		return recipientRing
	}
	return payerRing
}

func (m CheckoutModel) focused() focusTarget {
	r := m.ring()
	if m.focus < 0 || m.focus >= len(r) {
		return r[0]
	}
	return r[m.focus]
}

func (m *CheckoutModel) setFocus(idx int) tea.Cmd {
	m.blur(m.focused())
	n := len(m.ring())
	m.focus = (idx%n + n) % n
	return m.focusWidget(m.focused())
}

// blur drops focus from t. Leaving the account number marks it touched.
func (m *CheckoutModel) blur(t focusTarget) {
	switch t {
	case focusPayAmount:
		m.pay.Blur()
	case focusToken:
		m.token.Blur()
	case focusWallet:
		m.wallet.Blur()
	case focusPaymentMethod:
		m.method.Blur()
	case focusBank:
		m.bank.Blur()
	case focusAccountNumber:
		m.account.Blur()
		m.wizard.Touch(checkout.FieldAccountNumber)
	}
}

func (m *CheckoutModel) focusWidget(t focusTarget) tea.Cmd {
	switch t {
	case focusPayAmount:
		return m.pay.Focus()
	case focusToken:
		m.token.Focus()
	case focusWallet:
		m.wallet.Focus()
	case focusPaymentMethod:
		m.method.Focus()
	case focusBank:
		m.bank.Focus()
	case focusAccountNumber:
		return m.account.Focus()
	}
	return nil
}

// openSelect returns the focused select when its list is showing.
func (m *CheckoutModel) openSelect() *components.Select {
	var sel *components.Select
	switch m.focused() {
	case focusToken:
		sel = &m.token
	case focusWallet:
		sel = &m.wallet
	case focusPaymentMethod:
		sel = &m.method
	case focusBank:
		sel = &m.bank
	default:
		return nil
	}
	if !sel.IsOpen() {
		return nil
	}
	return sel
}

func (m *CheckoutModel) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focused() {
	case focusPayAmount:
		m.pay, cmd = m.pay.Update(msg)
	case focusToken:
		m.token, cmd = m.token.Update(msg)
	case focusWallet:
		m.wallet, cmd = m.wallet.Update(msg)
	case focusPaymentMethod:
		m.method, cmd = m.method.Update(msg)
	case focusBank:
		m.bank, cmd = m.bank.Update(msg)
	case focusAccountNumber:
		m.account, cmd = m.account.Update(msg)
	}
	return cmd
}

// ---------------------------------------------------------------------------
// Wizard updates
// ---------------------------------------------------------------------------

func (m *CheckoutModel) applySelection(msg components.OptionSelectedMsg) {
	var err error
	switch msg.Field {
	case tokenField:
		err = m.wizard.SelectToken(msg.Option.ID)
	case string(checkout.FieldSourceWallet):
		err = m.wizard.SelectWallet(msg.Option.ID)
	case string(checkout.FieldPaymentMethod):
		err = m.wizard.SelectPaymentMethod(msg.Option.ID)
	case string(checkout.FieldRecipientBank):
		err = m.wizard.SelectRecipientBank(msg.Option.ID)
	}
	if err != nil {
		m.logger.Warn("selection rejected", zap.String("field", msg.Field), zap.Error(err))
	}
}

func (m *CheckoutModel) applyValue(msg components.ValueChangedMsg) {
	switch msg.Field {
	case string(checkout.FieldPayAmount):
		m.wizard.SetPayAmount(msg.Value)
	case string(checkout.FieldAccountNumber):
		m.wizard.SetAccountNumber(msg.Value)
	}
}

func (m *CheckoutModel) applyCatalog(msg CatalogReloadedMsg) {
	err := msg.Err
	if err == nil {
		err = m.wizard.ReplaceCatalog(msg.Catalog)
	}
	if err != nil {
		m.logger.Warn("catalog reload failed", zap.String("path", msg.Path), zap.Error(err))
		m.notice = "Catalog reload failed; keeping current rates."
		return
	}

	c := m.wizard.Catalog()
	m.token.Options = c.TokenOptions()
	m.wallet.Options = c.Wallets
	m.method.Options = c.PaymentMethods
	m.bank.Options = c.Banks

	m.logger.Info("catalog reloaded",
		zap.String("path", msg.Path),
		zap.Int("tokens", len(c.Tokens)),
		zap.String("token", m.wizard.Token().ID),
		zap.String("receive_amount", m.wizard.ReceiveAmount()),
	)
	m.notice = "Rates updated."
}

// sync copies wizard state into the widgets.
func (m *CheckoutModel) sync() {
	w := m.wizard
	tok := w.Token()
	m.token.Selected = &catalog.Option{ID: tok.ID, Name: tok.Name, Icon: tok.Icon}
	m.wallet.Selected = w.Wallet()
	m.method.Selected = w.PaymentMethod()
	m.bank.Selected = w.RecipientBank()

	m.pay.Error = w.VisibleError(checkout.FieldPayAmount)
	m.receive.SetValue(w.ReceiveAmount())
	m.receive.Badge = styles.Badge(w.Catalog().Currency.Code, false)
	m.wallet.Error = w.VisibleError(checkout.FieldSourceWallet)
	m.method.Error = w.VisibleError(checkout.FieldPaymentMethod)
	m.bank.Error = w.VisibleError(checkout.FieldRecipientBank)
	m.account.Error = w.VisibleError(checkout.FieldAccountNumber)
	m.accountName.SetValue(w.AccountName())
}

// ---------------------------------------------------------------------------
// Layout
// ---------------------------------------------------------------------------

func (m *CheckoutModel) resize(width, height int) {
	m.width = width
	if m.width < 40 {
		m.width = 40
	}
	m.height = height

	w := m.fieldWidth()
	m.pay.Width = w
	m.receive.Width = w
	m.token.Width = w
	m.wallet.Width = w
	m.method.Width = w
	m.bank.Width = w
	m.account.Width = w
	m.accountName.Width = w
}

func (m CheckoutModel) cardWidth() int {
	return clampWidth(m.width-4, 60)
}

// fieldWidth is the card width minus border and padding.
func (m CheckoutModel) fieldWidth() int {
	return m.cardWidth() - 6
}

// ---------------------------------------------------------------------------
// Rendering
// ---------------------------------------------------------------------------

func (m CheckoutModel) viewPayer(width int) []string {
	w := m.wizard
	progress := components.ProgressStep{
		Steps:   []string{checkout.StepPayer.String(), checkout.StepRecipient.String()},
		Current: 0,
	}
	tabs := components.TabBar{
		Tabs:    w.Catalog().Tabs,
		Active:  w.Tab(),
		Focused: m.focused() == focusTabs,
	}

	pay := m.pay
	pay.Badge = m.token.BadgeView()

	sections := []string{
		components.Header{Width: width}.Render(),
		progress.Render(),
		"",
		tabs.Render(),
		"",
		pay.View(),
	}
	if m.token.IsOpen() {
		sections = append(sections, m.token.ListView())
	}
	sections = append(sections,
		m.receive.View(),
		styles.Dim(fmt.Sprintf("1 %s = %s %s", w.Token().Symbol,
			checkout.FormatAmount(w.Token().Rate), w.Catalog().Currency.Code)),
		"",
		m.wallet.View(),
		"",
		m.method.View(),
		"",
		components.Button{
			Label:    "Convert now",
			Disabled: !w.Step1Valid(),
			Focused:  m.focused() == focusButton,
			Width:    width,
		}.Render(),
	)
	return sections
}

func (m CheckoutModel) viewRecipient(width int) []string {
	w := m.wizard
	progress := components.ProgressStep{
		Steps:   []string{checkout.StepPayer.String(), checkout.StepRecipient.String()},
		Current: 1,
	}
	return []string{
		components.Header{Title: checkout.StepRecipient.String(), BackHint: true, Width: width}.Render(),
		progress.Render(),
		"",
		m.bank.View(),
		"",
		m.account.View(),
		"",
		m.accountName.View(),
		"",
		components.Button{
			Label:    "Next",
			Disabled: !w.Step2Valid(),
			Focused:  m.focused() == focusButton,
			Width:    width,
		}.Render(),
	}
}

func (m CheckoutModel) renderFooter() string {
	back := m.keys.Back
	back.SetEnabled(m.wizard.Step() == checkout.StepRecipient)
	tabs := m.keys.TabLeft
	tabs.SetEnabled(m.focused() == focusTabs)

	return components.Footer{
		Bindings: []key.Binding{
			m.keys.Next, m.keys.Prev, m.keys.Enter, back, tabs, m.keys.Explain, m.keys.Quit,
		},
		Width: m.cardWidth(),
	}.Render()
}

func (m CheckoutModel) explainContent() string {
	w := m.wizard
	if w.Step() == checkout.StepRecipient {
		return fmt.Sprintf(`### Recipient details

Choose the bank that receives the **%s** and enter an account number of
**at least %d digits**. The account name is filled in for you.

Submitting only records the request. No payment is made.`,
			w.Catalog().Currency.Code, checkout.MinAccountNumberLength)
	}
	return fmt.Sprintf(`### How the quote works

You receive *pay amount × rate*, rounded to 2 decimals.

| Token | Rate |
|---|---|
| %s | 1 = %s %s |

Pick the wallet you pay from and where the cash goes, then choose **Convert now**.`,
		w.Token().Name, checkout.FormatAmount(w.Token().Rate), w.Catalog().Currency.Code)
}

// ---------------------------------------------------------------------------
// Utilities
// ---------------------------------------------------------------------------

func renderMarkdown(md string, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

// maskAccount keeps the last four digits of an account number.
func maskAccount(s string) string {
	if len(s) <= 4 {
		return s
	}
	return strings.Repeat("•", len(s)-4) + s[len(s)-4:]
}

func clampWidth(val, max int) int {
	if val > max {
		return max
	}
	if val < 20 {
		return 20
	}
	return val
}
