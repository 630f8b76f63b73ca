package attribute

import (
	"math"
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/KirkDiggler/ducttape-items/internal/errors"
	"github.com/KirkDiggler/ducttape-items/internal/text"
)

// Operation is the arithmetic a modifier applies to the running total
type Operation uint8

const (
	// OpMultiply scales the running total
	OpMultiply Operation = iota
	// OpAdd offsets the running total
	OpAdd
	// OpSet replaces the running total
	OpSet
)

// String returns the operation name as written in template files
func (o Operation) String() string {
	switch o {
	case OpMultiply:
		return "Multiply"
	case OpAdd:
		return "Add"
	case OpSet:
		return "Set"
	default:
		return "Unknown"
	}
}

// ParseOperation resolves an operation name
func ParseOperation(s string) (Operation, error) {
	switch s {
	case "Multiply", "multiply":
		return OpMultiply, nil
	case "Add", "add":
		return OpAdd, nil
	case "Set", "set":
		return OpSet, nil
	default:
		return 0, errors.InvalidArgumentf("unknown modifier operation %q", s)
	}
}

// Classification buckets a modifier for display
type Classification uint8

const (
	// Unclassified is reported for values that compare false to everything, such as NaN
	Unclassified Classification = iota
	Buff
	Neutral
	Debuff
)

// Modifier is a single numeric operation applied during aggregation
type Modifier struct {
	Op    Operation `json:"op"`
	Value float64   `json:"value"`
}

// Multiply returns a modifier that scales the total by f
func Multiply(f float64) Modifier {
	return Modifier{Op: OpMultiply, Value: f}
}

// Add returns a modifier that offsets the total by d
func Add(d float64) Modifier {
	return Modifier{Op: OpAdd, Value: d}
}

// Set returns a modifier that replaces the total with v
func Set(v float64) Modifier {
	return Modifier{Op: OpSet, Value: v}
}

// Apply folds the modifier into acc
func (m Modifier) Apply(acc float64) float64 {
	switch m.Op {
	case OpMultiply:
		return acc * m.Value
	case OpAdd:
		return acc + m.Value
	case OpSet:
		return m.Value
	default:
		return acc
	}
}

// IsBuff reports whether the modifier raises the total
func (m Modifier) IsBuff() bool {
	switch m.Op {
	case OpMultiply:
		return m.Value > 1
	case OpAdd:
		return m.Value > 0
	default:
		return false
	}
}

// IsNeutral reports whether the modifier leaves the total unchanged.
// Set is always neutral.
func (m Modifier) IsNeutral() bool {
	switch m.Op {
	case OpMultiply:
		return m.Value == 1
	case OpAdd:
		return m.Value == 0
	case OpSet:
		return true
	default:
		return false
	}
}

// IsDebuff reports whether the modifier lowers the total
func (m Modifier) IsDebuff() bool {
	switch m.Op {
	case OpMultiply:
		return m.Value < 1
	case OpAdd:
		return m.Value < 0
	default:
		return false
	}
}

// Classify returns the display bucket of the modifier
func (m Modifier) Classify() Classification {
	switch {
	case m.IsBuff():
		return Buff
	case m.IsNeutral():
		return Neutral
	case m.IsDebuff():
		return Debuff
	default:
		return Unclassified
	}
}

// Color returns the display colour for the modifier's classification
func (m Modifier) Color() tcell.Color {
	switch m.Classify() {
	case Buff:
		return text.Green
	case Neutral:
		return text.Yellow
	case Debuff:
		return text.Red
	default:
		return text.White
	}
}

// String renders the operator and value, for example " x 1.5" or " - 10"
func (m Modifier) String() string {
	switch m.Op {
	case OpMultiply:
		return " x " + formatValue(m.Value)
	case OpAdd:
		if m.Value > 0 {
			return " + " + formatValue(m.Value)
		}
		return " - " + formatValue(math.Abs(m.Value))
	case OpSet:
		return " = " + formatValue(m.Value)
	default:
		return ""
	}
}

// Text renders the modifier coloured by its classification
func (m Modifier) Text() text.Text {
	return text.Colored(m.String(), m.Color())
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
