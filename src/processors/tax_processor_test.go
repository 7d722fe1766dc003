package processors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/username/brokertax/src/models"
	"github.com/username/brokertax/src/parsers"
)

const germanExport = `Statement,Header,Feldname,Feldwert
Statement,Data,BrokerName,Interactive Brokers Ireland Limited
Kontoinformationen,Header,Feldname,Feldwert
Kontoinformationen,Data,Konto,U1234567
Transaktionen,Header,DataDiscriminator,Vermögenswertkategorie,Währung,Symbol,Datum/Zeit,Menge,T.-Kurs,Prov./Gebühr,Code
Transaktionen,Data,Order,STK,USD,X,"2023-11-02, 10:00:00",10,10,-1,O
Transaktionen,Data,Order,STK,USD,X,"2024-01-03, 10:00:00",5,12,-1,O
Transaktionen,Data,Order,STK,USD,X,"2024-02-01, 15:30:00",-12,20,-1,C
Transaktionen,SubTotal,,STK,USD,X,,3,,-3,
Dividenden,Header,Währung,Datum,Beschreibung,Betrag
Dividenden,Data,USD,2024-03-01,X Cash Dividend,"2,50"
Dividenden,Data,USD,2023-03-01,X Cash Dividend,"2,00"
Dividenden,Total,,,,"4,50"
Quellensteuer,Header,Währung,Datum,Beschreibung,Betrag,Code
Quellensteuer,Data,USD,2024-03-01,X US Tax,"-0,38",
`

const englishExport = `Statement,Header,Field Name,Field Value
Statement,Data,BrokerName,Interactive Brokers LLC
Account Information,Header,Field Name,Field Value
Account Information,Data,Account,U7654321
Trades,Header,DataDiscriminator,Asset Category,Currency,Symbol,Date/Time,Quantity,T. Price,Comm/Fee,Code
Trades,Data,Order,STK,USD,AAPL,"2024-01-10, 09:30:00",4,150,-1,O
Trades,Data,Order,STK,USD,AAPL,"2024-06-10, 09:30:00",-4,170,-1,C
Dividends,Header,Currency,Date,Description,Amount
Dividends,Data,USD,2024-05-16,AAPL(US0378331005) Cash Dividend,1.00
Withholding Tax,Header,Currency,Date,Description,Amount,Code
Withholding Tax,Data,USD,2024-05-16,AAPL US Tax,-0.15,
`

func importReport(t *testing.T, csv string) *models.Report {
	t.Helper()
	report, err := parsers.Import(strings.NewReader(csv))
	require.NoError(t, err)
	return report
}

func TestExtractTaxDataGermanExport(t *testing.T) {
	report := importReport(t, germanExport)
	data := NewTaxProcessor(models.DefaultCodeTables()).ExtractTaxData(report, 2024)

	assert.Equal(t, 2024, data.TaxYear)
	assert.Equal(t, "Interactive Brokers Ireland Limited", data.BrokerName)
	assert.Equal(t, "U1234567", data.AccountNumber)

	require.Len(t, data.CapitalGains, 2)
	assertNullDecimal(t, "98", data.CapitalGains[0].RealizedGain)
	assertNullDecimal(t, "14", data.CapitalGains[1].RealizedGain)
	assert.True(t, data.CapitalGains[0].IsShortTerm)
	require.Len(t, data.OpenLots, 1)
	assertDecimal(t, "3", data.OpenLots[0].Quantity)

	require.Len(t, data.Dividends, 1)
	assertNullDecimal(t, "2.50", data.Dividends[0].GrossAmount)

	require.Len(t, data.ForeignTaxes, 2)
	assert.Equal(t, "X US Tax", data.ForeignTaxes[0].Reference)
	assertNullDecimal(t, "-1", data.ForeignTaxes[1].Amount)

	s := data.Summary
	assertDecimal(t, "112", s.TotalCapitalGains)
	assertDecimal(t, "0", s.TotalCapitalLosses)
	assertDecimal(t, "112", s.NetCapitalGains)
	assertDecimal(t, "4", s.TotalCommissions)
	assertDecimal(t, "2.5", s.TotalDividends)
	assertDecimal(t, "-1.38", s.TotalForeignTax)
	assert.Equal(t, 3, s.NumberOfTransactions)
}

func TestExtractTaxDataEnglishExport(t *testing.T) {
	report := importReport(t, englishExport)
	data := NewTaxProcessor(models.DefaultCodeTables()).ExtractTaxData(report, 2024)

	assert.Equal(t, "Interactive Brokers LLC", data.BrokerName)
	assert.Equal(t, "U7654321", data.AccountNumber)

	require.Len(t, data.CapitalGains, 1)
	assertNullDecimal(t, "78", data.CapitalGains[0].RealizedGain)
	assert.Equal(t, "Aktie (Stock)", data.CapitalGains[0].AssetCategory)

	require.Len(t, data.Dividends, 1)
	assert.Equal(t, "AAPL(US0378331005)", data.Dividends[0].Symbol)

	require.Len(t, data.ForeignTaxes, 2)
	assertNullDecimal(t, "-0.15", data.ForeignTaxes[0].Amount)
	assertNullDecimal(t, "-1", data.ForeignTaxes[1].Amount)
	assertDecimal(t, "-1.15", data.Summary.TotalForeignTax)
}

func TestExtractTaxDataYearFilterIsIdempotent(t *testing.T) {
	report := importReport(t, germanExport)
	p := NewTaxProcessor(models.DefaultCodeTables())

	first := p.ExtractTaxData(report, 2024)
	other := p.ExtractTaxData(report, 2023)
	second := p.ExtractTaxData(report, 2024)

	for _, d := range first.Dividends {
		assert.Equal(t, 2024, d.PaymentDate.Year())
	}
	require.Len(t, other.Dividends, 1)
	assert.Equal(t, 2023, other.Dividends[0].PaymentDate.Year())
	assert.Equal(t, first, second)
	assert.Len(t, other.CapitalGains, 2, "capital gains are not filtered by year")
}

func TestExtractTaxDataEmptyReport(t *testing.T) {
	data := NewTaxProcessor(models.DefaultCodeTables()).ExtractTaxData(models.NewReport(), 2024)
	assert.NotNil(t, data.CapitalGains)
	assert.NotNil(t, data.Dividends)
	assert.NotNil(t, data.ForeignTaxes)
	assert.NotNil(t, data.OpenLots)
	assert.Empty(t, data.CapitalGains)
	assertDecimal(t, "0", data.Summary.NetCapitalGains)

	data = NewTaxProcessor(models.DefaultCodeTables()).ExtractTaxData(nil, 2024)
	assert.Empty(t, data.Dividends)
}

func TestResolveSectionPrefersLayoutWithKeyColumn(t *testing.T) {
	report := importReport(t, englishExport)
	p := NewTaxProcessor(models.DefaultCodeTables())

	s, layout := p.resolveSection(report,
		func(l models.FieldLayout) []string { return l.TradeSections },
		func(l models.FieldLayout) string { return l.Quantity })
	require.NotNil(t, s)
	assert.Equal(t, "en", layout.Name, "German layout also lists trades but lacks Menge")
}
