package processors

import (
	"github.com/username/brokertax/src/models"
	"github.com/username/brokertax/src/utils"
)

type foreignTaxProcessorImpl struct {
	codes *CodeBook
}

func NewForeignTaxProcessor(codes *CodeBook) ForeignTaxProcessor {
	return &foreignTaxProcessorImpl{codes: codes}
}

// FromWithholding turns every withholding-tax row of taxYear into a ForeignTax.
func (p *foreignTaxProcessorImpl) FromWithholding(section *models.SectionData, layout models.FieldLayout, taxYear int) []models.ForeignTax {
	taxes := []models.ForeignTax{}
	if section == nil {
		return taxes
	}
	for _, row := range section.Rows {
		date, ok := p.codes.inYear(row.Get(layout.Date), taxYear)
		if !ok {
			continue
		}
		taxes = append(taxes, p.newForeignTax(row, layout, date, layout.Amount))
	}
	return taxes
}

// FromTrades reports the commission of every closing, liquidation or transfer
// trade of taxYear. The amount keeps the sign it has in the export.
func (p *foreignTaxProcessorImpl) FromTrades(trades *models.SectionData, layout models.FieldLayout, taxYear int) []models.ForeignTax {
	taxes := []models.ForeignTax{}
	if trades == nil {
		return taxes
	}
	for _, row := range trades.Rows {
		date, ok := p.codes.inYear(row.Get(layout.DateTime), taxYear)
		if !ok {
			continue
		}
		code, present := row.Lookup(layout.Code)
		if !present || !p.codes.IsSaleCode(code) {
			continue
		}
		taxes = append(taxes, p.newForeignTax(row, layout, date, layout.Commission))
	}
	return taxes
}

func (p *foreignTaxProcessorImpl) newForeignTax(row models.Row, layout models.FieldLayout, date models.Date, amountField string) models.ForeignTax {
	currency := row.Get(layout.Currency)
	return models.ForeignTax{
		Country:   p.codes.CountryForCurrency(currency),
		Currency:  currency,
		Amount:    utils.ParseDecimal(row.Get(amountField)),
		Date:      date,
		Reference: row.Get(layout.Description),
	}
}
