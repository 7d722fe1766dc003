package processors

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/username/brokertax/src/models"
)

var de = models.GermanLayout

func testCodes() *CodeBook {
	return NewCodeBook(models.DefaultCodeTables())
}

// order builds a German trade row of record type Data.
func order(symbol, dateTime, qty, price, commission, code string) models.Row {
	return models.Row{
		"DataDiscriminator":      "Order",
		"Vermögenswertkategorie": "STK",
		"Währung":                "USD",
		"Symbol":                 symbol,
		"Datum/Zeit":             dateTime,
		"Menge":                  qty,
		"T.-Kurs":                price,
		"Prov./Gebühr":           commission,
		"Code":                   code,
		models.RecordTypeKey:     models.RecordTypeData,
		models.SectionKey:        "Transaktionen",
	}
}

func section(name string, headers []string, rows ...models.Row) *models.SectionData {
	s := models.NewSectionData(name)
	s.Headers = headers
	s.Rows = rows
	return s
}

var tradeHeaders = []string{"DataDiscriminator", "Vermögenswertkategorie", "Währung", "Symbol", "Datum/Zeit", "Menge", "T.-Kurs", "Prov./Gebühr", "Code"}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.Truef(t, dec(t, want).Equal(got), "want %s, got %s", want, got.String())
}

func assertNullDecimal(t *testing.T, want string, got decimal.NullDecimal) {
	t.Helper()
	require.Truef(t, got.Valid, "want %s, got null", want)
	assertDecimal(t, want, got.Decimal)
}
