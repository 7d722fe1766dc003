// src/parsers/flexible/parser.go
package flexible

import (
	"strings"

	"github.com/username/brokertax/src/logger"
	"github.com/username/brokertax/src/models"
)

// Parser recognises the "label, record type, cells..." layout used by
// Interactive Brokers activity statements regardless of export language.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Name() string {
	return "flexible"
}

// Interpret walks the group in source order. A new non-empty label switches
// the current section and clears the active headers. Header records replace
// the active headers; the section keeps the widest header list it has seen.
// Data, Total and SubTotal records become rows aligned to the active headers.
func (p *Parser) Interpret(group models.RecordGroup) []models.KeyedSection {
	var (
		sections      []models.KeyedSection
		byKey         = make(map[string]*models.SectionData)
		currentLabel  string
		current       *models.SectionData
		activeHeaders []string
		dropped       int
	)

	for _, rec := range group.Records {
		cells := rec.Cells
		if len(cells) == 0 {
			continue
		}

		label := cells[0]
		if label != "" && (current == nil || label != currentLabel) {
			currentLabel = label
			key := models.NormalizeSectionName(label)
			section, seen := byKey[key]
			if !seen {
				section = models.NewSectionData(label)
				byKey[key] = section
				sections = append(sections, models.KeyedSection{Key: key, Section: section})
			}
			current = section
			activeHeaders = nil
		}

		if current == nil {
			dropped++
			continue
		}

		switch {
		case isHeaderRecord(cells):
			headers := extractHeaders(cells)
			if len(headers) == 0 {
				continue
			}
			activeHeaders = headers
			if len(headers) >= len(current.Headers) {
				current.Headers = headers
			}
		case isDataRecord(cells):
			if len(activeHeaders) == 0 {
				dropped++
				continue
			}
			current.Rows = append(current.Rows, buildRow(cells, activeHeaders, currentLabel))
		}
	}

	if dropped > 0 {
		logger.L.Debug("Dropped records without section or headers", "group", group.Key, "count", dropped)
	}
	return sections
}

func isHeaderRecord(cells []string) bool {
	return len(cells) > 1 && cells[1] == models.RecordTypeHeader
}

func isDataRecord(cells []string) bool {
	if len(cells) <= 1 {
		return false
	}
	switch cells[1] {
	case models.RecordTypeData, models.RecordTypeTotal, models.RecordTypeSubTotal:
		return true
	}
	return false
}

// extractHeaders returns cells[2:] trimmed, without empty names.
func extractHeaders(cells []string) []string {
	headers := make([]string, 0, len(cells))
	for _, c := range cells[2:] {
		if h := strings.TrimSpace(c); h != "" {
			headers = append(headers, h)
		}
	}
	return headers
}

// buildRow pairs cells[2:] with headers positionally, stopping at the shorter.
func buildRow(cells, headers []string, label string) models.Row {
	row := make(models.Row, len(headers)+2)
	values := cells[2:]
	for i := 0; i < len(values) && i < len(headers); i++ {
		row[headers[i]] = strings.TrimSpace(values[i])
	}
	row[models.RecordTypeKey] = cells[1]
	row[models.SectionKey] = label
	return row
}
