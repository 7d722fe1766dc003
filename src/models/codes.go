package models

// FieldLayout names the sections and columns of one export language.
type FieldLayout struct {
	Name string `json:"name"`

	TradeSections       []string `json:"tradeSections"`
	DividendSections    []string `json:"dividendSections"`
	WithholdingSections []string `json:"withholdingSections"`
	StatementSections   []string `json:"statementSections"`

	Discriminator    string `json:"discriminator"`
	OrderValue       string `json:"orderValue"`
	Symbol           string `json:"symbol"`
	TradeDescription string `json:"tradeDescription"`
	AssetCategory    string `json:"assetCategory"`
	Currency         string `json:"currency"`
	DateTime         string `json:"dateTime"`
	Quantity         string `json:"quantity"`
	Price            string `json:"price"`
	Commission       string `json:"commission"`
	Code             string `json:"code"`
	Description      string `json:"description"`
	Date             string `json:"date"`
	Amount           string `json:"amount"`
	Tax              string `json:"tax"`

	FieldName   string   `json:"fieldName"`
	FieldValue  string   `json:"fieldValue"`
	BrokerKeys  []string `json:"brokerKeys"`
	AccountKeys []string `json:"accountKeys"`
}

// CodeTables holds the read-only lookup tables used during tax extraction.
type CodeTables struct {
	AssetCategories   map[string]string `json:"assetCategories"`
	TransactionCodes  map[string]string `json:"transactionCodes"`
	SaleCodes         []string          `json:"saleCodes"`
	CurrencyCountries map[string]string `json:"currencyCountries"`
	DateLayouts       []string          `json:"dateLayouts"`
	Layouts           []FieldLayout     `json:"layouts"`
}

const (
	UnknownCode    = "Unbekannt"
	UnknownCountry = "Unknown"
	UnknownSymbol  = "Unknown"
)

// GermanLayout matches the German Interactive Brokers activity statement.
var GermanLayout = FieldLayout{
	Name:                "de",
	TradeSections:       []string{"Trades", "transaktionen", "transactions", "trades"},
	DividendSections:    []string{"Dividenden", "dividenden", "Dividends"},
	WithholdingSections: []string{"quellensteuer"},
	StatementSections:   []string{"statement", "kontoinformationen"},
	Discriminator:       "DataDiscriminator",
	OrderValue:          "Order",
	Symbol:              "Symbol",
	TradeDescription:    "Description",
	AssetCategory:       "Vermögenswertkategorie",
	Currency:            "Währung",
	DateTime:            "Datum/Zeit",
	Quantity:            "Menge",
	Price:               "T.-Kurs",
	Commission:          "Prov./Gebühr",
	Code:                "Code",
	Description:         "Beschreibung",
	Date:                "Datum",
	Amount:              "Betrag",
	Tax:                 "Tax",
	FieldName:           "Feldname",
	FieldValue:          "Feldwert",
	BrokerKeys:          []string{"BrokerName", "Brokername"},
	AccountKeys:         []string{"Konto", "Kontonummer"},
}

// EnglishLayout matches the English Interactive Brokers activity statement.
var EnglishLayout = FieldLayout{
	Name:                "en",
	TradeSections:       []string{"trades"},
	DividendSections:    []string{"dividends"},
	WithholdingSections: []string{"withholding_tax"},
	StatementSections:   []string{"statement", "account_information"},
	Discriminator:       "DataDiscriminator",
	OrderValue:          "Order",
	Symbol:              "Symbol",
	TradeDescription:    "Description",
	AssetCategory:       "Asset Category",
	Currency:            "Currency",
	DateTime:            "Date/Time",
	Quantity:            "Quantity",
	Price:               "T. Price",
	Commission:          "Comm/Fee",
	Code:                "Code",
	Description:         "Description",
	Date:                "Date",
	Amount:              "Amount",
	Tax:                 "Tax",
	FieldName:           "Field Name",
	FieldValue:          "Field Value",
	BrokerKeys:          []string{"BrokerName"},
	AccountKeys:         []string{"Account"},
}

// Clone copies l so that the result shares no slices with l.
func (l FieldLayout) Clone() FieldLayout {
	c := l
	c.TradeSections = append([]string(nil), l.TradeSections...)
	c.DividendSections = append([]string(nil), l.DividendSections...)
	c.WithholdingSections = append([]string(nil), l.WithholdingSections...)
	c.StatementSections = append([]string(nil), l.StatementSections...)
	c.BrokerKeys = append([]string(nil), l.BrokerKeys...)
	c.AccountKeys = append([]string(nil), l.AccountKeys...)
	return c
}

// DefaultCodeTables returns a fresh copy of the built-in tables.
func DefaultCodeTables() CodeTables {
	return CodeTables{
		AssetCategories: map[string]string{
			"STK":    "Aktie (Stock)",
			"OPT":    "Option",
			"FUT":    "Future",
			"CASH":   "Bargeld (Cash)",
			"BOND":   "Anleihe (Bond)",
			"FUND":   "Fonds",
			"ETF":    "ETF",
			"CFD":    "CFD",
			"CRYPTO": "Kryptowährung",
			"FOREX":  "Devisen",
		},
		TransactionCodes: map[string]string{
			"A":    "Auftrag (Assignment)",
			"O":    "Eröffnung (Opening)",
			"C":    "Schließung (Closing)",
			"IA":   "Interne Abrechnung (Internal Assignment)",
			"IM":   "Interne Bewegung (Internal Movement)",
			"P":    "Teilweise (Partial)",
			"E":    "Ausübung (Exercise)",
			"Ex":   "Verfallen (Expired)",
			"L":    "Liquidation",
			"T":    "Transfer",
			"D":    "Dividende",
			"F":    "Gebühr (Fee)",
			"W":    "Auszahlung (Withdrawal)",
			"DEP":  "Einzahlung (Deposit)",
			"INT":  "Zinsen (Interest)",
			"DIV":  "Dividende",
			"TAX":  "Steuer (Tax)",
			"FEE":  "Gebühr (Fee)",
			"ADJ":  "Anpassung (Adjustment)",
			"CORP": "Corporate Action",
		},
		SaleCodes: []string{"C", "L", "T"},
		CurrencyCountries: map[string]string{
			"EUR": "Deutschland",
			"USD": "USA",
			"GBP": "Vereinigtes Königreich",
			"CHF": "Schweiz",
			"JPY": "Japan",
			"CAD": "Kanada",
		},
		DateLayouts: []string{"2006-01-02", "02.01.2006", "01/02/2006", "2006/01/02"},
		Layouts:     []FieldLayout{GermanLayout.Clone(), EnglishLayout.Clone()},
	}
}
