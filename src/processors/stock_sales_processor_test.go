package processors

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/username/brokertax/src/models"
)

func TestFIFOMatchesOldestLotFirst(t *testing.T) {
	trades := section("Transaktionen", tradeHeaders,
		order("X", "2024-01-02, 10:00:00", "10", "10", "", "O"),
		order("X", "2024-01-03, 10:00:00", "5", "12", "", "O"),
		order("X", "2024-02-01, 10:00:00", "-12", "20", "", "C"),
	)

	gains, open := NewStockSalesProcessor(testCodes()).Process(trades, de)
	require.Len(t, gains, 2)

	assertDecimal(t, "10", gains[0].Quantity)
	assertNullDecimal(t, "100", gains[0].RealizedGain)
	assertNullDecimal(t, "10", gains[0].PurchasePrice)
	assertNullDecimal(t, "20", gains[0].SalePrice)

	assertDecimal(t, "2", gains[1].Quantity)
	assertNullDecimal(t, "16", gains[1].RealizedGain)
	assertNullDecimal(t, "12", gains[1].PurchasePrice)

	require.Len(t, open, 1)
	assertDecimal(t, "3", open[0].Quantity)
	assertNullDecimal(t, "12", open[0].PurchasePrice)
	assert.Equal(t, models.NewDate(2024, time.January, 3), open[0].PurchaseDate)
}

func TestFIFOPartialLotCarriesOver(t *testing.T) {
	trades := section("Transaktionen", tradeHeaders,
		order("X", "2023-03-01", "10", "50", "", "O"),
		order("X", "2023-06-01", "-4", "60", "", "C;P"),
		order("X", "2024-01-15", "-6", "40", "", "C"),
	)

	gains, open := NewStockSalesProcessor(testCodes()).Process(trades, de)
	require.Len(t, gains, 2)
	assert.Empty(t, open)

	second := gains[1]
	assertDecimal(t, "6", second.Quantity)
	assertNullDecimal(t, "50", second.PurchasePrice)
	assert.Equal(t, models.NewDate(2023, time.March, 1), second.PurchaseDate)
	assertNullDecimal(t, "-60", second.RealizedGain)
	assert.Equal(t, "Kauf: Eröffnung (Opening), Verkauf: Schließung (Closing)", second.TransactionDescription)
	assert.Equal(t, "Kauf: Eröffnung (Opening), Verkauf: Schließung (Closing) + Teilweise (Partial)", gains[0].TransactionDescription)
}

func TestFIFOUnmatchedSellProducesNothing(t *testing.T) {
	trades := section("Transaktionen", tradeHeaders,
		order("Y", "2024-05-01", "-3", "10", "-1", "C"),
	)
	gains, open := NewStockSalesProcessor(testCodes()).Process(trades, de)
	assert.Empty(t, gains)
	assert.Empty(t, open)
}

func TestFIFOSellExceedingLotsMatchesWhatExists(t *testing.T) {
	trades := section("Transaktionen", tradeHeaders,
		order("Y", "2024-01-01", "2", "10", "", "O"),
		order("Y", "2024-05-01", "-5", "11", "", "C"),
		order("Y", "2024-06-01", "1", "9", "", "O"),
	)
	gains, open := NewStockSalesProcessor(testCodes()).Process(trades, de)
	require.Len(t, gains, 1)
	assertDecimal(t, "2", gains[0].Quantity)
	require.Len(t, open, 1, "later buy is not consumed by the earlier oversized sell")
	assertDecimal(t, "1", open[0].Quantity)
}

func TestFIFOSortsByTradeDateWithinSymbol(t *testing.T) {
	trades := section("Transaktionen", tradeHeaders,
		order("Z", "2024-03-01", "-1", "30", "", "C"),
		order("Z", "2024-01-01", "1", "10", "", "O"),
	)
	gains, _ := NewStockSalesProcessor(testCodes()).Process(trades, de)
	require.Len(t, gains, 1)
	assertNullDecimal(t, "20", gains[0].RealizedGain)
}

func TestFIFOSortsSameDayOrdersByTimeOfDay(t *testing.T) {
	trades := section("Transaktionen", tradeHeaders,
		order("Z", "2024-03-01, 15:00:00", "5", "12", "", "O"),
		order("Z", "2024-03-01, 09:00:00", "5", "10", "", "O"),
		order("Z", "2024-03-01, 16:00:00", "-5", "20", "", "C"),
	)
	gains, open := NewStockSalesProcessor(testCodes()).Process(trades, de)
	require.Len(t, gains, 1)
	assertNullDecimal(t, "10", gains[0].PurchasePrice)
	assertNullDecimal(t, "50", gains[0].RealizedGain)
	require.Len(t, open, 1)
	assertNullDecimal(t, "12", open[0].PurchasePrice)
	assert.Equal(t, models.NewDate(2024, time.March, 1), open[0].PurchaseDate)
}

func TestFIFOKeepsSymbolsApart(t *testing.T) {
	trades := section("Transaktionen", tradeHeaders,
		order("A", "2024-01-01", "1", "10", "", "O"),
		order("B", "2024-01-02", "1", "100", "", "O"),
		order("B", "2024-02-01", "-1", "110", "", "C"),
		order("A", "2024-02-02", "-1", "15", "", "C"),
	)
	gains, _ := NewStockSalesProcessor(testCodes()).Process(trades, de)
	require.Len(t, gains, 2)
	assert.Equal(t, "A", gains[0].Symbol, "symbols in order of first appearance")
	assertNullDecimal(t, "5", gains[0].RealizedGain)
	assert.Equal(t, "B", gains[1].Symbol)
	assertNullDecimal(t, "10", gains[1].RealizedGain)
}

func TestFIFOCommissionAndCategory(t *testing.T) {
	trades := section("Transaktionen", tradeHeaders,
		order("C", "2024-01-01", "10", "10", "-1,50", "O"),
		order("C", "2024-02-01", "-10", "12", "-2", "C"),
	)
	gains, _ := NewStockSalesProcessor(testCodes()).Process(trades, de)
	require.Len(t, gains, 1)
	assertNullDecimal(t, "3.5", gains[0].Commission)
	assertNullDecimal(t, "16.5", gains[0].RealizedGain)
	assert.Equal(t, "Aktie (Stock)", gains[0].AssetCategory)
	assert.Equal(t, "USD", gains[0].Currency)
}

func TestFIFOMissingValuesStayAbsent(t *testing.T) {
	trades := section("Transaktionen", tradeHeaders,
		order("D", "2024-01-01", "1", "-", "-1", "O"),
		order("D", "2024-02-01", "-1", "12", "", "C"),
	)
	gains, _ := NewStockSalesProcessor(testCodes()).Process(trades, de)
	require.Len(t, gains, 1)
	assert.False(t, gains[0].PurchasePrice.Valid)
	assert.False(t, gains[0].Commission.Valid, "commission needs both legs")
	assert.False(t, gains[0].RealizedGain.Valid)
}

func TestFIFOSkipsNonOrderAndUnparseableRows(t *testing.T) {
	execution := order("E", "2024-01-01", "5", "10", "", "O")
	execution["DataDiscriminator"] = "Execution"
	noDate := order("E", "sometime", "5", "10", "", "O")
	noQty := order("E", "2024-01-01", "-", "10", "", "O")

	trades := section("Transaktionen", tradeHeaders,
		execution, noDate, noQty,
		order("E", "2024-02-01", "-5", "12", "", "C"),
	)
	gains, open := NewStockSalesProcessor(testCodes()).Process(trades, de)
	assert.Empty(t, gains)
	assert.Empty(t, open)
}

func TestFIFOMissingSymbolColumnGroupsAsUnknown(t *testing.T) {
	buy := order("", "2024-01-01", "1", "10", "", "O")
	delete(buy, "Symbol")
	sell := order("", "2024-02-01", "-1", "11", "", "C")
	delete(sell, "Symbol")

	gains, _ := NewStockSalesProcessor(testCodes()).Process(section("Transaktionen", tradeHeaders, buy, sell), de)
	require.Len(t, gains, 1)
	assert.Equal(t, "", gains[0].Symbol)
}

func TestShortTermBoundary(t *testing.T) {
	tests := []struct {
		name      string
		sale      string
		shortTerm bool
	}{
		{"one day before anniversary", "2024-05-31", true},
		{"exactly one year", "2024-06-01", false},
		{"after anniversary", "2024-06-02", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trades := section("Transaktionen", tradeHeaders,
				order("S", "2023-06-01", "1", "10", "", "O"),
				order("S", tt.sale, "-1", "11", "", "C"),
			)
			gains, _ := NewStockSalesProcessor(testCodes()).Process(trades, de)
			require.Len(t, gains, 1)
			assert.Equal(t, tt.shortTerm, gains[0].IsShortTerm)
		})
	}
}

func TestShortTermLeapDay(t *testing.T) {
	trades := section("Transaktionen", tradeHeaders,
		order("L", "2024-02-29", "1", "10", "", "O"),
		order("L", "2025-02-28", "-1", "11", "", "C"),
	)
	gains, _ := NewStockSalesProcessor(testCodes()).Process(trades, de)
	require.Len(t, gains, 1)
	assert.False(t, gains[0].IsShortTerm, "anniversary of 29 February is 28 February")
}

func TestFIFONeverMatchesMoreThanBought(t *testing.T) {
	trades := section("Transaktionen", tradeHeaders,
		order("Q", "2024-01-01", "3", "10", "", "O"),
		order("Q", "2024-01-02", "4", "10", "", "O"),
		order("Q", "2024-02-01", "-2", "11", "", "C"),
		order("Q", "2024-02-02", "-2", "11", "", "C"),
		order("Q", "2024-02-03", "-10", "11", "", "C"),
	)
	gains, open := NewStockSalesProcessor(testCodes()).Process(trades, de)

	matched := dec(t, "0")
	for _, g := range gains {
		require.True(t, g.Quantity.IsPositive())
		matched = matched.Add(g.Quantity)
	}
	assertDecimal(t, "7", matched)
	assert.Empty(t, open)
	assert.Len(t, gains, 4)
}
