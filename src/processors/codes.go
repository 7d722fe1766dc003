package processors

import (
	"strings"
	"time"

	"github.com/username/brokertax/src/models"
	"github.com/username/brokertax/src/utils"
)

// CodeBook answers lookups against a set of CodeTables.
type CodeBook struct {
	tables    models.CodeTables
	saleCodes map[string]bool
}

func NewCodeBook(tables models.CodeTables) *CodeBook {
	sale := make(map[string]bool, len(tables.SaleCodes))
	for _, c := range tables.SaleCodes {
		sale[c] = true
	}
	return &CodeBook{tables: tables, saleCodes: sale}
}

// TranslateTransactionCode renders codes such as "C;P" as
// "Schließung (Closing) + Teilweise (Partial)". Unknown parts pass through.
func (c *CodeBook) TranslateTransactionCode(code string) string {
	if strings.TrimSpace(code) == "" {
		return models.UnknownCode
	}
	parts := strings.Split(code, ";")
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if name, ok := c.tables.TransactionCodes[part]; ok {
			part = name
		}
		parts[i] = part
	}
	return strings.Join(parts, " + ")
}

func (c *CodeBook) TranslateAssetCategory(category string) string {
	if name, ok := c.tables.AssetCategories[category]; ok {
		return name
	}
	return category
}

func (c *CodeBook) CountryForCurrency(currency string) string {
	if country, ok := c.tables.CurrencyCountries[currency]; ok {
		return country
	}
	return models.UnknownCountry
}

func (c *CodeBook) IsSaleCode(code string) bool {
	return c.saleCodes[code]
}

func (c *CodeBook) ParseDate(s string) (models.Date, bool) {
	return utils.ParseDate(s, c.tables.DateLayouts)
}

// ParseTimestamp keeps the time of day that ParseDate drops.
func (c *CodeBook) ParseTimestamp(s string) (time.Time, bool) {
	return utils.ParseTimestamp(s, c.tables.DateLayouts)
}

// inYear parses s and reports whether it falls in taxYear.
func (c *CodeBook) inYear(s string, taxYear int) (models.Date, bool) {
	d, ok := c.ParseDate(s)
	if !ok || d.Year() != taxYear {
		return models.Date{}, false
	}
	return d, true
}
