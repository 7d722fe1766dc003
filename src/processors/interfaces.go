// src/processors/interfaces.go
package processors

import "github.com/username/brokertax/src/models"

// StockSalesProcessor matches sells against earlier buys of the same symbol.
type StockSalesProcessor interface {
	Process(trades *models.SectionData, layout models.FieldLayout) ([]models.CapitalGain, []models.OpenLot)
}

// DividendProcessor extracts the dividend payments of one tax year.
type DividendProcessor interface {
	Process(dividends *models.SectionData, layout models.FieldLayout, taxYear int) []models.Dividend
}

// ForeignTaxProcessor extracts tax withheld at source for one tax year.
type ForeignTaxProcessor interface {
	FromWithholding(section *models.SectionData, layout models.FieldLayout, taxYear int) []models.ForeignTax
	FromTrades(trades *models.SectionData, layout models.FieldLayout, taxYear int) []models.ForeignTax
}

type SummaryProcessor interface {
	Summarize(gains []models.CapitalGain, dividends []models.Dividend, foreignTaxes []models.ForeignTax) models.TaxSummary
}

// StatementProcessor reads account metadata from the statement sections.
type StatementProcessor interface {
	Process(report *models.Report, layouts []models.FieldLayout) StatementInfo
}

type StatementInfo struct {
	BrokerName    string
	AccountNumber string
}
