package checkout

import (
	"regexp"
	"strings"

	"github.com/Dallionking/cashout/internal/catalog"
)

// Field names a wizard input. Field names key both the error map and the
// touched set.
type Field string

const (
	FieldPayAmount     Field = "payAmount"
	FieldSourceWallet  Field = "sourceWallet"
	FieldPaymentMethod Field = "paymentMethod"
	FieldRecipientBank Field = "recipientBank"
	FieldAccountNumber Field = "accountNumber"
)

// MinAccountNumberLength is the shortest accepted recipient account number.
const MinAccountNumberLength = 10

// Validation messages.
const (
	MsgAmountRequired        = "Amount is required"
	MsgAmountNotNumber       = "Amount must be a number"
	MsgAmountNotPositive     = "Amount must be greater than 0"
	MsgWalletRequired        = "Please select a wallet"
	MsgPaymentMethodRequired = "Please select a payment method"
	MsgBankRequired          = "Bank is required"
	MsgAccountRequired       = "Account number is required"
	MsgAccountDigitsOnly     = "Account number must contain digits only"
	MsgAccountTooShort       = "Account number must be at least 10 digits"
)

var digitsOnly = regexp.MustCompile(`^\d+$`)

// Errors maps a field to its validation message. Valid fields have no entry.
type Errors map[Field]string

// Has reports whether field has an error.
func (e Errors) Has(field Field) bool {
	_, ok := e[field]
	return ok
}

// Step1Fields lists the fields validated on the payer step.
var Step1Fields = []Field{FieldPayAmount, FieldSourceWallet, FieldPaymentMethod}

// Step2Fields lists the fields validated on the recipient step.
var Step2Fields = []Field{FieldRecipientBank, FieldAccountNumber}

// Step1Input holds the values checked by ValidateStep1.
type Step1Input struct {
	PayAmount     string
	Wallet        *catalog.Option
	PaymentMethod *catalog.Option
}

// Step2Input holds the values checked by ValidateStep2.
type Step2Input struct {
	RecipientBank *catalog.Option
	AccountNumber string
}

// ValidateStep1 checks the payer step and reports every failing field.
func ValidateStep1(in Step1Input) Errors {
	errs := Errors{}

	if msg := validatePayAmount(in.PayAmount); msg != "" {
		errs[FieldPayAmount] = msg
	}
	if in.Wallet == nil {
		errs[FieldSourceWallet] = MsgWalletRequired
	}
	if in.PaymentMethod == nil {
		errs[FieldPaymentMethod] = MsgPaymentMethodRequired
	}
	return errs
}

// ValidateStep2 checks the recipient step and reports every failing field.
func ValidateStep2(in Step2Input) Errors {
	errs := Errors{}

	if in.RecipientBank == nil {
		errs[FieldRecipientBank] = MsgBankRequired
	}
	if msg := validateAccountNumber(in.AccountNumber); msg != "" {
		errs[FieldAccountNumber] = msg
	}
	return errs
}

func validatePayAmount(s string) string {
	if strings.TrimSpace(s) == "" {
		return MsgAmountRequired
	}
	amount, ok := ParseAmount(s)
	if !ok {
		return MsgAmountNotNumber
	}
	if !amount.IsPositive() {
		return MsgAmountNotPositive
	}
	return ""
}

func validateAccountNumber(s string) string {
	switch {
	case s == "":
		return MsgAccountRequired
	case !digitsOnly.MatchString(s):
		return MsgAccountDigitsOnly
	case len(s) < MinAccountNumberLength:
		return MsgAccountTooShort
	}
	return ""
}
