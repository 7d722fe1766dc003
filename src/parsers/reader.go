package parsers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/username/brokertax/src/models"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ParseError reports input that cannot be read as CSV at all.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed csv input at line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ReadRecords reads every CSV record from r. A leading byte order mark is
// removed; records may have any number of fields. Malformed CSV gives a
// *ParseError, a failing reader gives its own error wrapped.
func ReadRecords(r io.Reader) ([]models.RawRecord, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	reader := csv.NewReader(decoded)
	reader.FieldsPerRecord = -1

	var records []models.RawRecord
	for {
		cells, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var csvErr *csv.ParseError
			if errors.As(err, &csvErr) {
				return nil, &ParseError{Line: csvErr.StartLine, Err: err}
			}
			return nil, fmt.Errorf("failed to read csv input: %w", err)
		}
		line, _ := reader.FieldPos(0)
		records = append(records, models.RawRecord{Line: line, Cells: cells})
	}
	return records, nil
}

// GroupRecords groups records by their raw first cell. Groups keep the order
// in which their key first appeared and records keep source order.
func GroupRecords(records []models.RawRecord) []models.RecordGroup {
	index := make(map[string]int)
	var groups []models.RecordGroup
	for _, rec := range records {
		if len(rec.Cells) == 0 {
			continue
		}
		key := rec.Cells[0]
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, models.RecordGroup{Key: key})
		}
		groups[i].Records = append(groups[i].Records, rec)
	}
	return groups
}
