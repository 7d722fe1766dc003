package flexible

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/username/brokertax/src/models"
)

func group(key string, rows ...[]string) models.RecordGroup {
	g := models.RecordGroup{Key: key}
	for i, cells := range rows {
		g.Records = append(g.Records, models.RawRecord{Line: i + 1, Cells: cells})
	}
	return g
}

func TestInterpretHeaderWidening(t *testing.T) {
	g := group("Trades",
		[]string{"Trades", "Header", "Symbol", "Menge"},
		[]string{"Trades", "Data", "AAPL", "10", "ignored"},
		[]string{"Trades", "Header", "Symbol", "Menge", "T.-Kurs"},
		[]string{"Trades", "Data", "MSFT", "5", "300,10"},
	)

	sections := NewParser().Interpret(g)
	require.Len(t, sections, 1)
	assert.Equal(t, "trades", sections[0].Key)

	s := sections[0].Section
	assert.Equal(t, "Trades", s.Name)
	assert.Equal(t, []string{"Symbol", "Menge", "T.-Kurs"}, s.Headers)
	require.Len(t, s.Rows, 2)

	first := s.Rows[0]
	assert.Equal(t, "AAPL", first["Symbol"])
	assert.Equal(t, "10", first["Menge"])
	_, hasPrice := first["T.-Kurs"]
	assert.False(t, hasPrice, "row before widening uses the narrower headers")

	second := s.Rows[1]
	assert.Equal(t, "300,10", second["T.-Kurs"])
	assert.Equal(t, "Data", second.RecordType())
	assert.Equal(t, "Trades", second[models.SectionKey])
}

func TestInterpretNarrowerHeaderKeepsStoredHeaders(t *testing.T) {
	g := group("Dividenden",
		[]string{"Dividenden", "Header", "Währung", "Datum", "Beschreibung", "Betrag"},
		[]string{"Dividenden", "Header", "Währung", "Betrag"},
		[]string{"Dividenden", "Data", "USD", "12,50"},
	)

	s := NewParser().Interpret(g)[0].Section
	assert.Equal(t, []string{"Währung", "Datum", "Beschreibung", "Betrag"}, s.Headers)
	require.Len(t, s.Rows, 1)
	assert.Equal(t, "12,50", s.Rows[0]["Betrag"], "rows align to the active header row")
}

func TestInterpretRecordTypes(t *testing.T) {
	g := group("Trades",
		[]string{"Trades", "Data", "before-header"},
		[]string{"Trades", "Header", " Symbol ", "", "Menge"},
		[]string{"Trades", "Data", " AAPL ", "10"},
		[]string{"Trades", "SubTotal", "", "10"},
		[]string{"Trades", "Total", "", "10"},
		[]string{"Trades", "Notes", "x", "y"},
		[]string{"Trades"},
	)

	s := NewParser().Interpret(g)[0].Section
	assert.Equal(t, []string{"Symbol", "Menge"}, s.Headers)
	require.Len(t, s.Rows, 3)
	assert.Equal(t, "AAPL", s.Rows[0]["Symbol"], "values are trimmed")
	assert.Equal(t, "SubTotal", s.Rows[1].RecordType())
	assert.Equal(t, "Total", s.Rows[2].RecordType())
}

func TestInterpretShortRowsStopAtShorterSide(t *testing.T) {
	g := group("Fees",
		[]string{"Fees", "Header", "A", "B", "C"},
		[]string{"Fees", "Data", "1"},
		[]string{"Fees", "Data", "1", "2", "3", "4"},
	)

	rows := NewParser().Interpret(g)[0].Section.Rows
	require.Len(t, rows, 2)
	assert.Equal(t, models.Row{"A": "1", models.RecordTypeKey: "Data", models.SectionKey: "Fees"}, rows[0])
	assert.Len(t, rows[1], 5)
}

func TestInterpretWithoutLabelDropsRecords(t *testing.T) {
	g := group("",
		[]string{"", "Header", "A"},
		[]string{"", "Data", "1"},
	)
	assert.Empty(t, NewParser().Interpret(g))
}

func TestInterpretNormalizesKey(t *testing.T) {
	g := group("Withholding Tax",
		[]string{"Withholding Tax", "Header", "Amount"},
		[]string{"Withholding Tax", "Data", "-1.50"},
	)
	sections := NewParser().Interpret(g)
	require.Len(t, sections, 1)
	assert.Equal(t, "withholding_tax", sections[0].Key)
	assert.Equal(t, "Withholding Tax", sections[0].Section.Name)
}
