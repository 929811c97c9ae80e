package checkout

import (
	"errors"
	"fmt"

	"github.com/Dallionking/cashout/internal/catalog"
)

// Step is one of the two wizard screens.
type Step int

const (
	StepPayer     Step = 1 // amount, token, wallet, payment method
	StepRecipient Step = 2 // bank, account number, account name
)

// String returns the screen title for the step.
func (s Step) String() string {
	switch s {
	case StepPayer:
		return "Payment"
	case StepRecipient:
		return "Recipient details"
	default:
		return "unknown"
	}
}

// Defaults applied when a wizard is created.
const (
	DefaultPayAmount   = "0.10"
	DefaultAccountName = "ODUTUGA GBEKE"
)

var (
	// ErrStepIncomplete is returned when moving forward from a step whose
	// fields do not validate.
	ErrStepIncomplete = errors.New("step has invalid or missing fields")

	// ErrUnknownOption is returned when a selection id is not in the catalog.
	ErrUnknownOption = errors.New("unknown option")
)

// Options customise a new Wizard. Zero values fall back to the defaults.
type Options struct {
	PayAmount   string
	TokenID     string
	Tab         catalog.TabID
	AccountName string
}

// Submission summarises a completed checkout. Nothing is executed with it;
// callers only log it.
type Submission struct {
	Tab           catalog.TabID `json:"tab"`
	PayAmount     string        `json:"payAmount"`
	Token         string        `json:"token"`
	ReceiveAmount string        `json:"receiveAmount"`
	Currency      string        `json:"currency"`
	Wallet        string        `json:"wallet"`
	PaymentMethod string        `json:"paymentMethod"`
	RecipientBank string        `json:"recipientBank"`
	AccountNumber string        `json:"accountNumber"`
	AccountName   string        `json:"accountName"`
}

// Wizard owns the durable state of a checkout session: the current step,
// every field value, the derived receive amount, the touched set and the
// error map. Every mutation recomputes the receive amount and re-validates
// the owning step before returning, so readers always observe consistent
// state.
//
// A Wizard is not safe for concurrent use; it is driven from a single
// event loop.
type Wizard struct {
	catalog *catalog.Catalog

	step Step
	tab  catalog.TabID

	// Step 1
	payAmount     string
	receiveAmount string
	token         catalog.Token
	wallet        *catalog.Option
	paymentMethod *catalog.Option

	// Step 2
	recipientBank *catalog.Option
	accountNumber string
	accountName   string

	touched map[Field]bool
	errors  Errors
}

// New creates a wizard on step 1 with the default pay amount and the first
// catalog token selected. The pay amount starts touched because it is
// pre-filled.
func New(c *catalog.Catalog, opts Options) (*Wizard, error) {
	if c == nil || len(c.Tokens) == 0 {
		return nil, fmt.Errorf("catalog has no tokens")
	}

	w := &Wizard{
		catalog:     c,
		step:        StepPayer,
		payAmount:   DefaultPayAmount,
		token:       c.Tokens[0],
		accountName: DefaultAccountName,
		touched:     map[Field]bool{FieldPayAmount: true},
		errors:      Errors{},
	}
	if len(c.Tabs) > 0 {
		w.tab = c.Tabs[0].ID
	}

	if opts.PayAmount != "" {
		if !IsAmountInput(opts.PayAmount) {
			return nil, fmt.Errorf("default amount %q is not a decimal number", opts.PayAmount)
		}
		w.payAmount = opts.PayAmount
	}
	if opts.TokenID != "" {
		tok, ok := c.Token(opts.TokenID)
		if !ok {
			return nil, fmt.Errorf("default token %q: %w", opts.TokenID, ErrUnknownOption)
		}
		w.token = tok
	}
	if opts.Tab != "" {
		if !c.HasTab(opts.Tab) {
			return nil, fmt.Errorf("default tab %q: %w", opts.Tab, ErrUnknownOption)
		}
		w.tab = opts.Tab
	}
	if opts.AccountName != "" {
		w.accountName = opts.AccountName
	}

	w.recomputeQuote()
	w.validateStep1()
	w.validateStep2()
	return w, nil
}

// ---------------------------------------------------------------------------
// Transitions
// ---------------------------------------------------------------------------

// Next advances from step 1 to step 2. It returns ErrStepIncomplete and
// stays on step 1 when the payer fields are invalid. On step 2 it is a no-op;
// use Submit.
func (w *Wizard) Next() error {
	if w.step != StepPayer {
		return nil
	}
	if !w.Step1Valid() {
		return ErrStepIncomplete
	}
	w.step = StepRecipient
	return nil
}

// Back returns to step 1. Recipient fields keep their values.
func (w *Wizard) Back() {
	w.step = StepPayer
}

// Submit is the terminal action of step 2. It performs no payment; it only
// returns a summary of the entered details for the caller to log.
func (w *Wizard) Submit() (Submission, error) {
	if w.step != StepRecipient || !w.Step2Valid() {
		return Submission{}, ErrStepIncomplete
	}
	return Submission{
		Tab:           w.tab,
		PayAmount:     w.payAmount,
		Token:         w.token.ID,
		ReceiveAmount: w.receiveAmount,
		Currency:      w.catalog.Currency.Code,
		Wallet:        w.wallet.ID,
		PaymentMethod: w.paymentMethod.ID,
		RecipientBank: w.recipientBank.ID,
		AccountNumber: w.accountNumber,
		AccountName:   w.accountName,
	}, nil
}

// ---------------------------------------------------------------------------
// Field setters
// ---------------------------------------------------------------------------

// SetTab switches the active tab.
func (w *Wizard) SetTab(id catalog.TabID) error {
	if !w.catalog.HasTab(id) {
		return fmt.Errorf("tab %q: %w", id, ErrUnknownOption)
	}
	w.tab = id
	return nil
}

// SetPayAmount stores the raw pay amount and marks it touched.
func (w *Wizard) SetPayAmount(s string) {
	w.payAmount = s
	w.touched[FieldPayAmount] = true
	w.recomputeQuote()
	w.validateStep1()
}

// SelectToken changes the token being paid with.
func (w *Wizard) SelectToken(id string) error {
	tok, ok := w.catalog.Token(id)
	if !ok {
		return fmt.Errorf("token %q: %w", id, ErrUnknownOption)
	}
	w.token = tok
	w.recomputeQuote()
	w.validateStep1()
	return nil
}

// SelectWallet chooses the source wallet.
func (w *Wizard) SelectWallet(id string) error {
	opt, ok := w.catalog.Wallet(id)
	if !ok {
		return fmt.Errorf("wallet %q: %w", id, ErrUnknownOption)
	}
	w.wallet = &opt
	w.touched[FieldSourceWallet] = true
	w.validateStep1()
	return nil
}

// SelectPaymentMethod chooses how the fiat is paid out.
func (w *Wizard) SelectPaymentMethod(id string) error {
	opt, ok := w.catalog.PaymentMethod(id)
	if !ok {
		return fmt.Errorf("payment method %q: %w", id, ErrUnknownOption)
	}
	w.paymentMethod = &opt
	w.touched[FieldPaymentMethod] = true
	w.validateStep1()
	return nil
}

// SelectRecipientBank chooses the recipient's bank.
func (w *Wizard) SelectRecipientBank(id string) error {
	opt, ok := w.catalog.Bank(id)
	if !ok {
		return fmt.Errorf("bank %q: %w", id, ErrUnknownOption)
	}
	w.recipientBank = &opt
	w.touched[FieldRecipientBank] = true
	w.validateStep2()
	return nil
}

// SetAccountNumber stores the recipient account number. The field is only
// marked touched on blur, via Touch.
func (w *Wizard) SetAccountNumber(s string) {
	w.accountNumber = s
	w.validateStep2()
}

// Touch marks field as interacted with so its error becomes visible.
func (w *Wizard) Touch(field Field) {
	w.touched[field] = true
}

// ReplaceCatalog swaps the reference data. Selections are re-resolved by id
// and dropped when no longer present; the token falls back to the first
// token of the new catalog.
func (w *Wizard) ReplaceCatalog(c *catalog.Catalog) error {
	if c == nil || len(c.Tokens) == 0 {
		return fmt.Errorf("catalog has no tokens")
	}
	w.catalog = c

	if tok, ok := c.Token(w.token.ID); ok {
		w.token = tok
	} else {
		w.token = c.Tokens[0]
	}
	w.wallet = reresolve(w.wallet, c.Wallet)
	w.paymentMethod = reresolve(w.paymentMethod, c.PaymentMethod)
	w.recipientBank = reresolve(w.recipientBank, c.Bank)
	if !c.HasTab(w.tab) && len(c.Tabs) > 0 {
		w.tab = c.Tabs[0].ID
	}

	w.recomputeQuote()
	w.validateStep1()
	w.validateStep2()
	return nil
}

func reresolve(cur *catalog.Option, lookup func(string) (catalog.Option, bool)) *catalog.Option {
	if cur == nil {
		return nil
	}
	opt, ok := lookup(cur.ID)
	if !ok {
		return nil
	}
	return &opt
}

// ---------------------------------------------------------------------------
// Derived state
// ---------------------------------------------------------------------------

func (w *Wizard) recomputeQuote() {
	w.receiveAmount = ReceiveAmount(w.payAmount, w.token)
}

func (w *Wizard) validateStep1() {
	w.mergeErrors(Step1Fields, ValidateStep1(Step1Input{
		PayAmount:     w.payAmount,
		Wallet:        w.wallet,
		PaymentMethod: w.paymentMethod,
	}))
}

func (w *Wizard) validateStep2() {
	w.mergeErrors(Step2Fields, ValidateStep2(Step2Input{
		RecipientBank: w.recipientBank,
		AccountNumber: w.accountNumber,
	}))
}

// mergeErrors replaces the entries for fields with the fresh results, leaving
// the other step's errors untouched.
func (w *Wizard) mergeErrors(fields []Field, fresh Errors) {
	for _, f := range fields {
		if msg, ok := fresh[f]; ok {
			w.errors[f] = msg
		} else {
			delete(w.errors, f)
		}
	}
}

// ---------------------------------------------------------------------------
// Queries
// ---------------------------------------------------------------------------

func (w *Wizard) Step() Step                     { return w.step }
func (w *Wizard) Tab() catalog.TabID             { return w.tab }
func (w *Wizard) Catalog() *catalog.Catalog      { return w.catalog }
func (w *Wizard) PayAmount() string              { return w.payAmount }
func (w *Wizard) ReceiveAmount() string          { return w.receiveAmount }
func (w *Wizard) Token() catalog.Token           { return w.token }
func (w *Wizard) Wallet() *catalog.Option        { return w.wallet }
func (w *Wizard) PaymentMethod() *catalog.Option { return w.paymentMethod }
func (w *Wizard) RecipientBank() *catalog.Option { return w.recipientBank }
func (w *Wizard) AccountNumber() string          { return w.accountNumber }
func (w *Wizard) AccountName() string            { return w.accountName }

// Errors returns a copy of the full error map, touched or not.
func (w *Wizard) Errors() Errors {
	out := make(Errors, len(w.errors))
	for k, v := range w.errors {
		out[k] = v
	}
	return out
}

// Touched reports whether field has been interacted with.
func (w *Wizard) Touched(field Field) bool {
	return w.touched[field]
}

// VisibleError returns the error to display for field: empty until the field
// is touched.
func (w *Wizard) VisibleError(field Field) string {
	if !w.touched[field] {
		return ""
	}
	return w.errors[field]
}

// Step1Valid reports whether the payer step may be left.
func (w *Wizard) Step1Valid() bool {
	return !w.errors.Has(FieldPayAmount) &&
		!w.errors.Has(FieldSourceWallet) &&
		!w.errors.Has(FieldPaymentMethod) &&
		w.wallet != nil && w.paymentMethod != nil
}

// Step2Valid reports whether the recipient step may be submitted.
func (w *Wizard) Step2Valid() bool {
	return !w.errors.Has(FieldRecipientBank) &&
		!w.errors.Has(FieldAccountNumber) &&
		w.recipientBank != nil && w.accountNumber != ""
}

// CanAdvance reports whether the forward action of the current step is
// enabled.
func (w *Wizard) CanAdvance() bool {
	if w.step == StepRecipient {
		return w.Step2Valid()
	}
	return w.Step1Valid()
}
