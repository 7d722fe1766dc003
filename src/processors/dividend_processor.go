package processors

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/username/brokertax/src/models"
	"github.com/username/brokertax/src/utils"
)

// dividendProcessorImpl implements the DividendProcessor interface.
type dividendProcessorImpl struct {
	codes *CodeBook
}

// NewDividendProcessor creates a new instance of DividendProcessor.
func NewDividendProcessor(codes *CodeBook) DividendProcessor {
	return &dividendProcessorImpl{codes: codes}
}

// Process keeps rows whose payment date falls in taxYear. The description is
// split on single spaces: the first token is the symbol, the rest the description.
func (p *dividendProcessorImpl) Process(section *models.SectionData, layout models.FieldLayout, taxYear int) []models.Dividend {
	dividends := []models.Dividend{}
	if section == nil {
		return dividends
	}

	for _, row := range section.Rows {
		date, ok := p.codes.inYear(row.Get(layout.Date), taxYear)
		if !ok {
			continue
		}

		tokens := strings.Split(row.Get(layout.Description), " ")
		currency := row.Get(layout.Currency)
		dividend := models.Dividend{
			Symbol:                 tokens[0],
			PaymentDate:            date,
			GrossAmount:            utils.ParseDecimal(row.Get(layout.Amount)),
			Currency:               currency,
			Country:                p.codes.CountryForCurrency(currency),
			TransactionDescription: p.codes.TranslateTransactionCode(row.Get(layout.Code)),
		}
		if len(tokens) > 1 {
			dividend.Description = strings.Join(tokens[1:], " ")
		}

		if tax := utils.ParseDecimal(row.Get(layout.Tax)); tax.Valid {
			withheld := tax.Decimal.Abs()
			dividend.WithholdingTax = decimal.NewNullDecimal(withheld)
			if dividend.GrossAmount.Valid {
				dividend.NetAmount = decimal.NewNullDecimal(dividend.GrossAmount.Decimal.Sub(withheld))
			}
		}

		dividends = append(dividends, dividend)
	}
	return dividends
}
