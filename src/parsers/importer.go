package parsers

import (
	"io"

	"github.com/username/brokertax/src/logger"
	"github.com/username/brokertax/src/models"
)

// Import reads r as a broker export and builds its report. Only unreadable
// CSV yields an error.
func Import(r io.Reader, interpreters ...Interpreter) (*models.Report, error) {
	records, err := ReadRecords(r)
	if err != nil {
		return nil, err
	}
	return ParseSections(GroupRecords(records), interpreters...), nil
}

// ParseSections applies every interpreter to every group, in order, and merges
// the resulting sections into one report. Sections landing on an existing key
// append their rows; the stored headers widen but never shrink.
func ParseSections(groups []models.RecordGroup, interpreters ...Interpreter) *models.Report {
	if len(interpreters) == 0 {
		interpreters = DefaultInterpreters()
	}

	report := models.NewReport()
	for _, interp := range interpreters {
		for _, group := range groups {
			for _, ks := range interp.Interpret(group) {
				mergeSection(report, ks)
			}
		}
	}

	logger.L.Debug("Parsed report sections",
		"groups", len(groups), "sections", len(report.Sections), "rows", report.TotalRows())
	return report
}

func mergeSection(report *models.Report, ks models.KeyedSection) {
	existing, ok := report.Section(ks.Key)
	if !ok {
		report.AddSection(ks.Key, ks.Section)
		return
	}
	if len(ks.Section.Headers) > 0 && len(ks.Section.Headers) >= len(existing.Headers) {
		existing.Headers = ks.Section.Headers
	}
	existing.Rows = append(existing.Rows, ks.Section.Rows...)
	if existing.Metadata == nil {
		existing.Metadata = map[string]string{}
	}
	for k, v := range ks.Section.Metadata {
		existing.Metadata[k] = v
	}
}
