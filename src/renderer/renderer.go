// Package renderer turns reports and tax data into Markdown for the terminal.
package renderer

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
	"github.com/username/brokertax/src/models"
)

// Amount formats v in its currency, e.g. "$1,234.50". Currencies unknown to
// go-money fall back to the plain decimal followed by the code. Absent values
// render as "-".
func Amount(v decimal.NullDecimal, currency string) string {
	if !v.Valid {
		return "-"
	}
	cur := money.GetCurrency(strings.ToUpper(currency))
	if cur == nil {
		return strings.TrimSpace(v.Decimal.StringFixed(2) + " " + currency)
	}
	fraction := int32(cur.Fraction)
	return cur.Formatter().Format(v.Decimal.Round(fraction).Shift(fraction).IntPart())
}

// total formats a cross-currency sum, which has no currency of its own.
func total(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func date(d models.Date) string {
	if !d.Valid() {
		return "-"
	}
	return d.String()
}

// cell escapes characters that would break a Markdown table row.
func cell(s string) string {
	if s == "" {
		return " "
	}
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}

func tableHeader(b *strings.Builder, columns ...string) {
	fmt.Fprintf(b, "| %s |\n", strings.Join(columns, " | "))
	aligns := make([]string, len(columns))
	for i := range aligns {
		aligns[i] = "---"
	}
	fmt.Fprintf(b, "|%s|\n", strings.Join(aligns, "|"))
}

func tableRow(b *strings.Builder, cells ...string) {
	escaped := make([]string, len(cells))
	for i, c := range cells {
		escaped[i] = cell(c)
	}
	fmt.Fprintf(b, "| %s |\n", strings.Join(escaped, " | "))
}

// SectionsMarkdown lists every section of report in registration order.
func SectionsMarkdown(report *models.Report) string {
	var b strings.Builder
	keys := report.Keys()

	fmt.Fprintf(&b, "# Abschnitte (%d)\n\n", len(keys))
	if len(keys) == 0 {
		b.WriteString("Keine Abschnitte gefunden.\n")
		return b.String()
	}
	tableHeader(&b, "Schlüssel", "Name", "Spalten", "Zeilen")
	for _, key := range keys {
		s, _ := report.Section(key)
		tableRow(&b, key, s.Name, fmt.Sprint(len(s.Headers)), fmt.Sprint(len(s.Rows)))
	}
	fmt.Fprintf(&b, "\nZeilen gesamt: %d\n", report.TotalRows())
	return b.String()
}

// SectionMarkdown prints one section as a table, columns in header order.
func SectionMarkdown(key string, s *models.SectionData) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", cell(s.Name))
	fmt.Fprintf(&b, "Schlüssel: `%s`, %d Zeilen\n\n", key, len(s.Rows))
	if len(s.Headers) == 0 {
		return b.String()
	}

	columns := append([]string{"Typ"}, s.Headers...)
	tableHeader(&b, columns...)
	for _, row := range s.Rows {
		cells := make([]string, 0, len(columns))
		cells = append(cells, row.RecordType())
		for _, h := range s.Headers {
			cells = append(cells, row.Get(h))
		}
		tableRow(&b, cells...)
	}
	return b.String()
}

func term(short bool) string {
	if short {
		return "kurzfristig"
	}
	return "langfristig"
}

// TaxMarkdown renders the full tax report of one year.
func TaxMarkdown(data models.TaxRelevantData) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Steuerreport %d\n\n", data.TaxYear)
	if data.BrokerName != "" {
		fmt.Fprintf(&b, "Broker: %s\n\n", cell(data.BrokerName))
	}
	if data.AccountNumber != "" {
		fmt.Fprintf(&b, "Konto: %s\n\n", cell(data.AccountNumber))
	}

	sum := data.Summary
	b.WriteString("## Zusammenfassung\n\n")
	tableHeader(&b, "Posten", "Betrag")
	tableRow(&b, "Veräußerungsgewinne", total(sum.TotalCapitalGains))
	tableRow(&b, "Veräußerungsverluste", total(sum.TotalCapitalLosses))
	tableRow(&b, "Netto", total(sum.NetCapitalGains))
	tableRow(&b, "Dividenden", total(sum.TotalDividends))
	tableRow(&b, "Quellensteuer", total(sum.TotalWithholdingTax))
	tableRow(&b, "Ausländische Steuern", total(sum.TotalForeignTax))
	tableRow(&b, "Provisionen", total(sum.TotalCommissions))
	tableRow(&b, "Transaktionen", fmt.Sprint(sum.NumberOfTransactions))
	b.WriteString("\n")

	b.WriteString("## Veräußerungsgewinne\n\n")
	if len(data.CapitalGains) == 0 {
		b.WriteString("Keine Verkäufe.\n\n")
	} else {
		tableHeader(&b, "Symbol", "Kauf", "Verkauf", "Menge", "Kaufkurs", "Verkaufskurs", "Gewinn", "Provision", "Frist")
		for _, g := range data.CapitalGains {
			tableRow(&b,
				g.Symbol,
				date(g.PurchaseDate),
				date(g.SaleDate),
				g.Quantity.String(),
				Amount(g.PurchasePrice, g.Currency),
				Amount(g.SalePrice, g.Currency),
				Amount(g.RealizedGain, g.Currency),
				Amount(g.Commission, g.Currency),
				term(g.IsShortTerm),
			)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Dividenden\n\n")
	if len(data.Dividends) == 0 {
		b.WriteString("Keine Dividenden.\n\n")
	} else {
		tableHeader(&b, "Symbol", "Datum", "Brutto", "Land", "Beschreibung")
		for _, d := range data.Dividends {
			tableRow(&b, d.Symbol, date(d.PaymentDate), Amount(d.GrossAmount, d.Currency), d.Country, d.Description)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Ausländische Steuern\n\n")
	if len(data.ForeignTaxes) == 0 {
		b.WriteString("Keine ausländischen Steuern.\n\n")
	} else {
		tableHeader(&b, "Datum", "Land", "Betrag", "Referenz")
		for _, t := range data.ForeignTaxes {
			tableRow(&b, date(t.Date), t.Country, Amount(t.Amount, t.Currency), t.Reference)
		}
		b.WriteString("\n")
	}

	if len(data.OpenLots) > 0 {
		b.WriteString("## Offene Positionen\n\n")
		tableHeader(&b, "Symbol", "Kaufdatum", "Menge", "Kaufkurs")
		for _, l := range data.OpenLots {
			tableRow(&b, l.Symbol, date(l.PurchaseDate), l.Quantity.String(), Amount(l.PurchasePrice, l.Currency))
		}
		b.WriteString("\n")
	}

	return b.String()
}
