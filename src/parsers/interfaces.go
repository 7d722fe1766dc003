// src/parsers/interfaces.go
package parsers

import "github.com/username/brokertax/src/models"

// Interpreter turns one group of raw records into report sections.
// Implementations must not retain or modify the group.
type Interpreter interface {
	Name() string
	Interpret(group models.RecordGroup) []models.KeyedSection
}
