package layout

import (
	"fmt"
	"strconv"
)

// LengthKind is the shape of a size constraint.
type LengthKind int

const (
	LengthFill     LengthKind = iota // all remaining usable length
	LengthAbsolute                   // fixed number of cells
	LengthRelative                   // percentage of the parent extent
	LengthAtLeast                    // lower bound, may overflow the parent
	LengthAtMost                     // upper bound
)

// Length is a size constraint along one axis. The zero value is Fill.
type Length struct {
	Kind  LengthKind
	Value int
}

// Absolute returns a fixed length of n cells.
func Absolute(n int) Length { return Length{Kind: LengthAbsolute, Value: n} }

// Relative returns pct percent of the parent extent.
func Relative(pct int) Length { return Length{Kind: LengthRelative, Value: pct} }

// AtLeast returns a length of at least n cells.
func AtLeast(n int) Length { return Length{Kind: LengthAtLeast, Value: n} }

// AtMost returns a length of at most n cells.
func AtMost(n int) Length { return Length{Kind: LengthAtMost, Value: n} }

// Fill returns a length consuming everything left.
func Fill() Length { return Length{} }

// Resolve turns l into an absolute extent given the parent's extent and the
// extent already consumed by earlier siblings.
//
// Extents and values are cells and never negative: a negative parent or
// Value is treated as 0. Callers are expected to keep netSibling <= parent. If
// they don't, the usable length is taken as 0 rather than going negative;
// AtLeast can still report more than is usable and so overflow the parent.
func (l Length) Resolve(parent, netSibling int) int {
	parent = max(parent, 0)
	value := max(l.Value, 0)
	usable := max(parent-max(netSibling, 0), 0)
	switch l.Kind {
	case LengthAbsolute, LengthAtMost:
		return min(usable, value)
	case LengthRelative:
		return min(usable, parent*value/100)
	case LengthAtLeast:
		return max(usable, value)
	default:
		return usable
	}
}

// unit suffixes of the textual encoding.
const (
	unitAbsolute = 'a'
	unitRelative = '%'
	unitAtLeast  = 'l'
	unitAtMost   = 'm'
	unitFill     = 'f'
)

func (l Length) String() string {
	switch l.Kind {
	case LengthAbsolute:
		return fmt.Sprintf("%d%c", l.Value, unitAbsolute)
	case LengthRelative:
		return fmt.Sprintf("%d%c", l.Value, unitRelative)
	case LengthAtLeast:
		return fmt.Sprintf("%d%c", l.Value, unitAtLeast)
	case LengthAtMost:
		return fmt.Sprintf("%d%c", l.Value, unitAtMost)
	default:
		return fmt.Sprintf("0%c", unitFill)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (l Length) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Length) UnmarshalText(text []byte) error {
	parsed, err := ParseLength(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ParseLength decodes "<n>a", "<n>%", "<n>l", "<n>m" or "<n>f". The prefix is
// an unsigned 16-bit integer. Percentages above 100 are accepted; Resolve caps
// them at the usable length.
func ParseLength(s string) (Length, error) {
	if len(s) < 2 {
		return Length{}, fmt.Errorf("%w: %q (want <number><unit>)", ErrInvalidLength, s)
	}
	unit := s[len(s)-1]
	n, err := strconv.ParseUint(s[:len(s)-1], 10, 16)
	if err != nil {
		return Length{}, fmt.Errorf("%w: %q has a non-numeric value", ErrInvalidLength, s)
	}
	v := int(n)

	switch unit {
	case unitAbsolute:
		return Absolute(v), nil
	case unitRelative:
		return Relative(v), nil
	case unitAtLeast:
		return AtLeast(v), nil
	case unitAtMost:
		return AtMost(v), nil
	case unitFill:
		return Fill(), nil
	default:
		return Length{}, fmt.Errorf("%w: %q has unknown unit %q (want a, %%, l, m or f)", ErrInvalidLength, s, unit)
	}
}
