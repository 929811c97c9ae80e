package catalog

import "github.com/shopspring/decimal"

const bankIcon = "landmark"

// Default returns the built-in reference data. Every call returns a fresh
// copy so callers may not mutate shared state.
func Default() *Catalog {
	return &Catalog{
		Tabs: []Tab{
			{ID: TabCryptoToCash, Label: "Crypto to cash"},
			{ID: TabCashToCrypto, Label: "Cash to crypto"},
			{ID: TabLoan, Label: "Crypto to fiat loan"},
		},
		Tokens: []Token{
			{ID: "eth", Name: "ETH", Symbol: "ETH", Icon: "/assets/eth.svg", Rate: decimal.NewFromInt(4500000)},
			{ID: "usdt-celo", Name: "USDT - CELO", Symbol: "USDT", Icon: "/assets/celo.svg", Rate: decimal.NewFromInt(1650)},
			{ID: "usdt-ton", Name: "USDT - TON", Symbol: "USDT", Icon: "/assets/ton.svg", Rate: decimal.NewFromInt(1645)},
			{ID: "usdt-bnb", Name: "USDT - BNB", Symbol: "USDT", Icon: "/assets/bnb.svg", Rate: decimal.NewFromInt(1655)},
		},
		Wallets: []Option{
			{ID: "metamask", Name: "Metamask", Icon: "/assets/metamask.svg"},
			{ID: "rainbow", Name: "Rainbow", Icon: "/assets/rainbow.svg"},
			{ID: "walletconnect", Name: "WalletConnect", Icon: "/assets/walletConnect.svg"},
			{ID: "other", Name: "Other Crypto Wallets (Binance, Coinbase, Bybit etc)", Icon: "/assets/otherCryptoWallets.svg"},
		},
		Banks: []Option{
			{ID: "bank-1", Name: "First Bank", Icon: bankIcon},
			{ID: "bank-2", Name: "GTBank", Icon: bankIcon},
			{ID: "bank-3", Name: "Access Bank", Icon: bankIcon},
			{ID: "bank-4", Name: "UBA", Icon: bankIcon},
			{ID: "bank-5", Name: "Zenith Bank", Icon: bankIcon},
		},
		PaymentMethods: []Option{
			{ID: "bank-transfer", Name: "Bank", Icon: bankIcon},
		},
		Currency: Currency{Code: "NGN", Icon: "/assets/nigeria.svg"},
	}
}
