package processors

import (
	"github.com/shopspring/decimal"
	"github.com/username/brokertax/src/models"
)

type summaryProcessorImpl struct{}

func NewSummaryProcessor() SummaryProcessor {
	return &summaryProcessorImpl{}
}

// Summarize folds the extracted collections. Absent amounts are left out.
// A realized gain of exactly zero counts towards losses, which leaves both totals unchanged.
func (p *summaryProcessorImpl) Summarize(gains []models.CapitalGain, dividends []models.Dividend, foreignTaxes []models.ForeignTax) models.TaxSummary {
	summary := models.TaxSummary{
		TotalCapitalGains:   decimal.Zero,
		TotalCapitalLosses:  decimal.Zero,
		TotalCommissions:    decimal.Zero,
		TotalDividends:      decimal.Zero,
		TotalWithholdingTax: decimal.Zero,
		TotalForeignTax:     decimal.Zero,
	}

	for _, g := range gains {
		if g.RealizedGain.Valid {
			if g.RealizedGain.Decimal.IsPositive() {
				summary.TotalCapitalGains = summary.TotalCapitalGains.Add(g.RealizedGain.Decimal)
			} else {
				summary.TotalCapitalLosses = summary.TotalCapitalLosses.Add(g.RealizedGain.Decimal.Abs())
			}
		}
		if g.Commission.Valid {
			summary.TotalCommissions = summary.TotalCommissions.Add(g.Commission.Decimal)
		}
	}
	summary.NetCapitalGains = summary.TotalCapitalGains.Sub(summary.TotalCapitalLosses)

	for _, d := range dividends {
		if d.GrossAmount.Valid {
			summary.TotalDividends = summary.TotalDividends.Add(d.GrossAmount.Decimal)
		}
		if d.WithholdingTax.Valid {
			summary.TotalWithholdingTax = summary.TotalWithholdingTax.Add(d.WithholdingTax.Decimal)
		}
	}

	for _, ft := range foreignTaxes {
		if ft.Amount.Valid {
			summary.TotalForeignTax = summary.TotalForeignTax.Add(ft.Amount.Decimal)
		}
	}

	summary.NumberOfTransactions = len(gains) + len(dividends)
	return summary
}
