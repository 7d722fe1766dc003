// src/models/tax.go
package models

import "github.com/shopspring/decimal"

// CapitalGain is one matched (buy leg, sell leg, quantity) triple.
type CapitalGain struct {
	ISIN                   string              `json:"isin"`
	Symbol                 string              `json:"symbol"`
	Description            string              `json:"description"`
	AssetCategory          string              `json:"assetCategory"`
	PurchaseDate           Date                `json:"purchaseDate"`
	SaleDate               Date                `json:"saleDate"`
	PurchasePrice          decimal.NullDecimal `json:"purchasePrice"`
	SalePrice              decimal.NullDecimal `json:"salePrice"`
	Quantity               decimal.Decimal     `json:"quantity"`
	RealizedGain           decimal.NullDecimal `json:"realizedGain"`
	Commission             decimal.NullDecimal `json:"commission"`
	Currency               string              `json:"currency"`
	TransactionDescription string              `json:"transactionDescription"`
	IsShortTerm            bool                `json:"isShortTerm"`
}

// Dividend is one dividend payment inside the requested tax year.
type Dividend struct {
	ISIN                   string              `json:"isin"`
	Symbol                 string              `json:"symbol"`
	Description            string              `json:"description"`
	PaymentDate            Date                `json:"paymentDate"`
	GrossAmount            decimal.NullDecimal `json:"grossAmount"`
	NetAmount              decimal.NullDecimal `json:"netAmount"`
	WithholdingTax         decimal.NullDecimal `json:"withholdingTax"`
	ForeignTax             decimal.NullDecimal `json:"foreignTax"`
	Currency               string              `json:"currency"`
	Country                string              `json:"country"`
	TransactionDescription string              `json:"transactionDescription"`
}

type ForeignTax struct {
	Country   string              `json:"country"`
	Currency  string              `json:"currency"`
	Amount    decimal.NullDecimal `json:"amount"`
	Date      Date                `json:"date"`
	Reference string              `json:"reference"`
}

// OpenLot is the unmatched remainder of a buy after all sells were applied.
type OpenLot struct {
	Symbol        string              `json:"symbol"`
	Description   string              `json:"description"`
	AssetCategory string              `json:"assetCategory"`
	PurchaseDate  Date                `json:"purchaseDate"`
	PurchasePrice decimal.NullDecimal `json:"purchasePrice"`
	Quantity      decimal.Decimal     `json:"quantity"`
	Currency      string              `json:"currency"`
}

type TaxSummary struct {
	TotalCapitalGains    decimal.Decimal `json:"totalCapitalGains"`
	TotalCapitalLosses   decimal.Decimal `json:"totalCapitalLosses"`
	NetCapitalGains      decimal.Decimal `json:"netCapitalGains"`
	TotalDividends       decimal.Decimal `json:"totalDividends"`
	TotalWithholdingTax  decimal.Decimal `json:"totalWithholdingTax"`
	TotalForeignTax      decimal.Decimal `json:"totalForeignTax"`
	TotalCommissions     decimal.Decimal `json:"totalCommissions"`
	NumberOfTransactions int             `json:"numberOfTransactions"`
}

// TaxRelevantData is everything derived from one report for one tax year.
type TaxRelevantData struct {
	TaxpayerID    string        `json:"taxpayerId"`
	AccountNumber string        `json:"accountNumber"`
	BrokerName    string        `json:"brokerName"`
	TaxYear       int           `json:"taxYear"`
	CapitalGains  []CapitalGain `json:"capitalGains"`
	Dividends     []Dividend    `json:"dividends"`
	ForeignTaxes  []ForeignTax  `json:"foreignTaxes"`
	OpenLots      []OpenLot     `json:"openLots"`
	Summary       TaxSummary    `json:"summary"`
}
