// src/parsers/factory.go
package parsers

import (
	"fmt"

	"github.com/username/brokertax/src/parsers/flexible"
)

func GetInterpreter(name string) (Interpreter, error) {
	switch name {
	case "flexible", "":
		return flexible.NewParser(), nil
	default:
		return nil, fmt.Errorf("no interpreter available for: %s", name)
	}
}

// DefaultInterpreters is the ordered set applied when the caller names none.
func DefaultInterpreters() []Interpreter {
	return []Interpreter{flexible.NewParser()}
}
