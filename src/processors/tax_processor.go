// src/processors/tax_processor.go
package processors

import (
	"slices"

	"github.com/username/brokertax/src/logger"
	"github.com/username/brokertax/src/models"
)

// TaxProcessor derives TaxRelevantData from a parsed report. It holds only
// read-only tables and is safe for concurrent use.
type TaxProcessor struct {
	tables     models.CodeTables
	stockSales StockSalesProcessor
	dividends  DividendProcessor
	foreignTax ForeignTaxProcessor
	summary    SummaryProcessor
	statement  StatementProcessor
}

func NewTaxProcessor(tables models.CodeTables) *TaxProcessor {
	codes := NewCodeBook(tables)
	return &TaxProcessor{
		tables:     tables,
		stockSales: NewStockSalesProcessor(codes),
		dividends:  NewDividendProcessor(codes),
		foreignTax: NewForeignTaxProcessor(codes),
		summary:    NewSummaryProcessor(),
		statement:  NewStatementProcessor(),
	}
}

// ExtractTaxData recomputes everything from report for taxYear. Capital gains
// are not restricted to taxYear; dividends and foreign taxes are. Missing
// sections give empty collections.
func (p *TaxProcessor) ExtractTaxData(report *models.Report, taxYear int) models.TaxRelevantData {
	logger.L.Info("Extracting tax relevant data", "taxYear", taxYear)

	data := models.TaxRelevantData{TaxYear: taxYear}
	if report == nil {
		report = models.NewReport()
	}

	trades, tradeLayout := p.resolveSection(report,
		func(l models.FieldLayout) []string { return l.TradeSections },
		func(l models.FieldLayout) string { return l.Quantity })
	divSection, divLayout := p.resolveSection(report,
		func(l models.FieldLayout) []string { return l.DividendSections },
		func(l models.FieldLayout) string { return l.Amount })
	whtSection, whtLayout := p.resolveSection(report,
		func(l models.FieldLayout) []string { return l.WithholdingSections },
		func(l models.FieldLayout) string { return l.Amount })

	data.CapitalGains, data.OpenLots = p.stockSales.Process(trades, tradeLayout)
	data.Dividends = p.dividends.Process(divSection, divLayout, taxYear)
	data.ForeignTaxes = append(
		p.foreignTax.FromWithholding(whtSection, whtLayout, taxYear),
		p.foreignTax.FromTrades(trades, tradeLayout, taxYear)...)

	data.Summary = p.summary.Summarize(data.CapitalGains, data.Dividends, data.ForeignTaxes)

	info := p.statement.Process(report, p.tables.Layouts)
	data.BrokerName = info.BrokerName
	data.AccountNumber = info.AccountNumber

	logger.L.Info("Extracted tax data",
		"taxYear", taxYear,
		"capitalGains", len(data.CapitalGains),
		"dividends", len(data.Dividends),
		"foreignTaxes", len(data.ForeignTaxes),
		"openLots", len(data.OpenLots))
	return data
}

// resolveSection picks the section and layout for one concern. A layout whose
// section exists and carries its key column is preferred; failing that, the
// first layout whose section exists at all is used. A nil section means
// the report has none.
func (p *TaxProcessor) resolveSection(
	report *models.Report,
	sectionsOf func(models.FieldLayout) []string,
	keyColumn func(models.FieldLayout) string,
) (*models.SectionData, models.FieldLayout) {
	for _, layout := range p.tables.Layouts {
		if s, _, ok := report.FindSection(sectionsOf(layout)...); ok && slices.Contains(s.Headers, keyColumn(layout)) {
			return s, layout
		}
	}
	for _, layout := range p.tables.Layouts {
		if s, _, ok := report.FindSection(sectionsOf(layout)...); ok {
			return s, layout
		}
	}
	if len(p.tables.Layouts) > 0 {
		return nil, p.tables.Layouts[0]
	}
	return nil, models.GermanLayout
}
