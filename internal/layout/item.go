package layout

import "fmt"

// Split is the axis along which a node's children are placed in sequence.
type Split int

const (
	Vertical   Split = iota // children stacked top to bottom
	Horizontal              // children placed left to right
)

func (s Split) String() string {
	switch s {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Split) MarshalText() ([]byte, error) {
	if s != Vertical && s != Horizontal {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSplit, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Split) UnmarshalText(text []byte) error {
	switch string(text) {
	case "vertical":
		*s = Vertical
	case "horizontal":
		*s = Horizontal
	default:
		return fmt.Errorf("%w: %q (want vertical or horizontal)", ErrInvalidSplit, string(text))
	}
	return nil
}

// Item is the flat, serializable description of one node.
type Item struct {
	Identifier Identifier   `toml:"identifier" json:"identifier"`
	Size       Length       `toml:"size" json:"size"`
	Children   []Identifier `toml:"children" json:"children"`
	Split      Split        `toml:"split" json:"split"`
}

// clone returns a deep copy of it.
func (it Item) clone() Item {
	if it.Children != nil {
		children := make([]Identifier, len(it.Children))
		copy(children, it.Children)
		it.Children = children
	}
	return it
}
