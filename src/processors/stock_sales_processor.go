// src/processors/stock_sales_processor.go
package processors

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/username/brokertax/src/logger"
	"github.com/username/brokertax/src/models"
	"github.com/username/brokertax/src/utils"
)

// tradeLeg is an order row with its timestamp and signed quantity parsed.
type tradeLeg struct {
	row      models.Row
	at       time.Time
	date     models.Date
	quantity decimal.Decimal
}

type stockSalesProcessorImpl struct {
	codes *CodeBook
}

func NewStockSalesProcessor(codes *CodeBook) StockSalesProcessor {
	return &stockSalesProcessorImpl{codes: codes}
}

// Process groups order rows by symbol, sorts each group by trade timestamp and
// matches sells against the oldest open buys first. Symbols are handled in
// order of first appearance. It returns every matched piece and the open
// remainder of every buy.
func (p *stockSalesProcessorImpl) Process(trades *models.SectionData, layout models.FieldLayout) ([]models.CapitalGain, []models.OpenLot) {
	gains := []models.CapitalGain{}
	open := []models.OpenLot{}
	if trades == nil {
		return gains, open
	}

	bySymbol, order := p.groupOrdersBySymbol(trades, layout)
	for _, symbol := range order {
		legs := bySymbol[symbol]
		sort.SliceStable(legs, func(i, j int) bool {
			return legs[i].at.Before(legs[j].at)
		})
		symbolGains, symbolOpen := p.matchFIFO(legs, layout)
		gains = append(gains, symbolGains...)
		open = append(open, symbolOpen...)
	}
	return gains, open
}

func (p *stockSalesProcessorImpl) groupOrdersBySymbol(trades *models.SectionData, layout models.FieldLayout) (map[string][]tradeLeg, []string) {
	bySymbol := make(map[string][]tradeLeg)
	var order []string

	for _, row := range trades.Rows {
		if row.Get(layout.Discriminator) != layout.OrderValue {
			continue
		}
		at, ok := p.codes.ParseTimestamp(row.Get(layout.DateTime))
		if !ok {
			logger.L.Warn("Skipping order with unparseable trade date",
				"symbol", row.Get(layout.Symbol), "value", row.Get(layout.DateTime))
			continue
		}
		qty := utils.ParseDecimal(row.Get(layout.Quantity))
		if !qty.Valid {
			continue
		}

		symbol, found := row.Lookup(layout.Symbol)
		if !found {
			symbol = models.UnknownSymbol
		}
		if _, seen := bySymbol[symbol]; !seen {
			order = append(order, symbol)
		}
		bySymbol[symbol] = append(bySymbol[symbol], tradeLeg{row: row, at: at, date: models.DateOf(at), quantity: qty.Decimal})
	}
	return bySymbol, order
}

// matchFIFO keeps open buys in an index-addressed buffer. head points at the
// oldest lot that still has quantity; a partial match replaces the lot at head
// with a copy carrying the reduced quantity.
func (p *stockSalesProcessorImpl) matchFIFO(legs []tradeLeg, layout models.FieldLayout) ([]models.CapitalGain, []models.OpenLot) {
	var gains []models.CapitalGain
	lots := make([]tradeLeg, 0, len(legs))
	head := 0

	for _, leg := range legs {
		if leg.quantity.IsPositive() {
			lots = append(lots, leg)
			continue
		}

		remaining := leg.quantity.Abs()
		for remaining.IsPositive() && head < len(lots) {
			lot := lots[head]
			if lot.quantity.LessThanOrEqual(remaining) {
				gains = append(gains, p.createCapitalGain(lot, leg, lot.quantity, layout))
				remaining = remaining.Sub(lot.quantity)
				lots[head] = tradeLeg{row: lot.row, at: lot.at, date: lot.date, quantity: decimal.Zero}
				head++
			} else {
				gains = append(gains, p.createCapitalGain(lot, leg, remaining, layout))
				lots[head] = tradeLeg{row: lot.row, at: lot.at, date: lot.date, quantity: lot.quantity.Sub(remaining)}
				remaining = decimal.Zero
			}
		}
		if remaining.IsPositive() {
			logger.L.Debug("Sell quantity exceeds open lots, remainder left unmatched",
				"symbol", leg.row.Get(layout.Symbol), "unmatched", remaining.String())
		}
	}

	open := make([]models.OpenLot, 0, len(lots)-head)
	for _, lot := range lots[head:] {
		open = append(open, models.OpenLot{
			Symbol:        lot.row.Get(layout.Symbol),
			Description:   lot.row.Get(layout.TradeDescription),
			AssetCategory: p.codes.TranslateAssetCategory(lot.row.Get(layout.AssetCategory)),
			PurchaseDate:  lot.date,
			PurchasePrice: utils.ParseDecimal(lot.row.Get(layout.Price)),
			Quantity:      lot.quantity,
			Currency:      lot.row.Get(layout.Currency),
		})
	}
	return gains, open
}

func (p *stockSalesProcessorImpl) createCapitalGain(buy, sell tradeLeg, matched decimal.Decimal, layout models.FieldLayout) models.CapitalGain {
	gain := models.CapitalGain{
		Symbol:        buy.row.Get(layout.Symbol),
		Description:   buy.row.Get(layout.TradeDescription),
		AssetCategory: p.codes.TranslateAssetCategory(buy.row.Get(layout.AssetCategory)),
		Quantity:      matched,
		Currency:      buy.row.Get(layout.Currency),
		PurchaseDate:  buy.date,
		SaleDate:      sell.date,
		PurchasePrice: utils.ParseDecimal(buy.row.Get(layout.Price)),
		SalePrice:     utils.ParseDecimal(sell.row.Get(layout.Price)),
	}

	buyCommission := utils.ParseDecimal(buy.row.Get(layout.Commission))
	sellCommission := utils.ParseDecimal(sell.row.Get(layout.Commission))
	if buyCommission.Valid && sellCommission.Valid {
		gain.Commission = decimal.NewNullDecimal(buyCommission.Decimal.Abs().Add(sellCommission.Decimal.Abs()))
	}

	if gain.PurchasePrice.Valid && gain.SalePrice.Valid {
		net := gain.SalePrice.Decimal.Sub(gain.PurchasePrice.Decimal).Mul(matched)
		if gain.Commission.Valid {
			net = net.Sub(gain.Commission.Decimal)
		}
		gain.RealizedGain = decimal.NewNullDecimal(net)
	}

	// Exactly one year after purchase is long-term.
	gain.IsShortTerm = gain.SaleDate.Before(gain.PurchaseDate.AddYears(1).Time)

	gain.TransactionDescription = "Kauf: " + p.codes.TranslateTransactionCode(buy.row.Get(layout.Code)) +
		", Verkauf: " + p.codes.TranslateTransactionCode(sell.row.Get(layout.Code))
	return gain
}
