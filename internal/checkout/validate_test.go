package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Dallionking/cashout/internal/catalog"
)

func TestValidateStep1(t *testing.T) {
	wallet := &catalog.Option{ID: "metamask", Name: "Metamask"}
	method := &catalog.Option{ID: "bank-transfer", Name: "Bank"}

	tests := []struct {
		name string
		in   Step1Input
		want Errors
	}{
		{
			name: "all valid",
			in:   Step1Input{PayAmount: "0.10", Wallet: wallet, PaymentMethod: method},
			want: Errors{},
		},
		{
			name: "everything missing",
			in:   Step1Input{},
			want: Errors{
				FieldPayAmount:     MsgAmountRequired,
				FieldSourceWallet:  MsgWalletRequired,
				FieldPaymentMethod: MsgPaymentMethodRequired,
			},
		},
		{
			name: "non numeric amount",
			in:   Step1Input{PayAmount: ".", Wallet: wallet, PaymentMethod: method},
			want: Errors{FieldPayAmount: MsgAmountNotNumber},
		},
		{
			name: "zero amount",
			in:   Step1Input{PayAmount: "0.00", Wallet: wallet, PaymentMethod: method},
			want: Errors{FieldPayAmount: MsgAmountNotPositive},
		},
		{
			name: "negative amount",
			in:   Step1Input{PayAmount: "-3", Wallet: wallet, PaymentMethod: method},
			want: Errors{FieldPayAmount: MsgAmountNotPositive},
		},
		{
			name: "missing wallet only",
			in:   Step1Input{PayAmount: "1", PaymentMethod: method},
			want: Errors{FieldSourceWallet: MsgWalletRequired},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateStep1(tt.in))
		})
	}
}

func TestValidateStep2(t *testing.T) {
	bank := &catalog.Option{ID: "bank-2", Name: "GTBank"}

	tests := []struct {
		name string
		in   Step2Input
		want Errors
	}{
		{
			name: "ten digits",
			in:   Step2Input{RecipientBank: bank, AccountNumber: "0123456789"},
			want: Errors{},
		},
		{
			name: "longer than ten digits",
			in:   Step2Input{RecipientBank: bank, AccountNumber: "012345678901234"},
			want: Errors{},
		},
		{
			name: "five digits",
			in:   Step2Input{RecipientBank: bank, AccountNumber: "12345"},
			want: Errors{FieldAccountNumber: "Account number must be at least 10 digits"},
		},
		{
			name: "letters",
			in:   Step2Input{RecipientBank: bank, AccountNumber: "01234x6789"},
			want: Errors{FieldAccountNumber: MsgAccountDigitsOnly},
		},
		{
			name: "spaces are not digits",
			in:   Step2Input{RecipientBank: bank, AccountNumber: "01234 56789"},
			want: Errors{FieldAccountNumber: MsgAccountDigitsOnly},
		},
		{
			name: "nothing entered",
			in:   Step2Input{},
			want: Errors{
				FieldRecipientBank: MsgBankRequired,
				FieldAccountNumber: MsgAccountRequired,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateStep2(tt.in))
		})
	}
}

func TestErrorsHas(t *testing.T) {
	e := Errors{FieldPayAmount: MsgAmountRequired}
	assert.True(t, e.Has(FieldPayAmount))
	assert.False(t, e.Has(FieldAccountNumber))
}
