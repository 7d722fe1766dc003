package processors

import (
	"slices"

	"github.com/username/brokertax/src/models"
)

type statementProcessorImpl struct{}

func NewStatementProcessor() StatementProcessor {
	return &statementProcessorImpl{}
}

// Process scans the name/value rows of every statement section any layout
// knows about. The first non-empty value for each field wins.
func (p *statementProcessorImpl) Process(report *models.Report, layouts []models.FieldLayout) StatementInfo {
	var info StatementInfo
	for _, layout := range layouts {
		for _, candidate := range layout.StatementSections {
			section, _, ok := report.FindSection(candidate)
			if !ok {
				continue
			}
			for _, row := range section.Rows {
				name, value := row.Get(layout.FieldName), row.Get(layout.FieldValue)
				if value == "" {
					continue
				}
				if info.BrokerName == "" && slices.Contains(layout.BrokerKeys, name) {
					info.BrokerName = value
				}
				if info.AccountNumber == "" && slices.Contains(layout.AccountKeys, name) {
					info.AccountNumber = value
				}
			}
		}
	}
	return info
}
