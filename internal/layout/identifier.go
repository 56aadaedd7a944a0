// Package layout computes absolute terminal rectangles for a declarative tree
// of named screen areas.
//
// A flat list of Items (usually decoded from trellis.toml) is linked into an
// ItemTree, and the solver walks that tree against the current terminal
// rectangle to produce one Rect per node. The rendering layer looks gadget
// identifiers up in the result to place its widgets.
package layout

import (
	"fmt"
	"strings"
)

// IdentifierKind separates author-named containers from reserved gadget leaves.
type IdentifierKind int

const (
	KindContainer IdentifierKind = iota // structural node, may hold children
	KindGadget                          // reserved leaf placeholder
)

// gadgetSeparator joins a parent container name and a gadget name when a
// gadget instance is disambiguated during tree construction.
const gadgetSeparator = "->"

// reservedGadgets is the fixed gadget vocabulary. Any other name is a container.
var reservedGadgets = []string{
	"searchbar",
	"shortcuts",
	"panetab",
	"result_pane",
	"gauge",
}

// Identifier names a node in the layout tree. It is comparable and is used
// directly as a map key.
type Identifier struct {
	Kind IdentifierKind
	Name string
}

// Container returns a container identifier.
func Container(name string) Identifier {
	return Identifier{Kind: KindContainer, Name: name}
}

// Gadget returns a gadget identifier. name may be a bare gadget name or a
// disambiguated "Parent->gadget" name.
func Gadget(name string) Identifier {
	return Identifier{Kind: KindGadget, Name: name}
}

// Disambiguate returns the identifier a gadget instance receives when it is
// attached under parent.
func Disambiguate(parent, gadget Identifier) Identifier {
	return Gadget(parent.Name + gadgetSeparator + gadget.Base())
}

// ReservedGadgets returns a copy of the gadget vocabulary.
func ReservedGadgets() []string {
	out := make([]string, len(reservedGadgets))
	copy(out, reservedGadgets)
	return out
}

// IsContainer reports whether id names a container.
func (id Identifier) IsContainer() bool { return id.Kind == KindContainer }

// IsGadget reports whether id names a gadget.
func (id Identifier) IsGadget() bool { return id.Kind == KindGadget }

// Base returns the gadget name without any "Parent->" prefix. For containers
// it returns the name unchanged.
func (id Identifier) Base() string {
	if id.Kind != KindGadget {
		return id.Name
	}
	if i := strings.LastIndex(id.Name, gadgetSeparator); i >= 0 {
		return id.Name[i+len(gadgetSeparator):]
	}
	return id.Name
}

func (id Identifier) String() string { return id.Name }

// MarshalText implements encoding.TextMarshaler.
func (id Identifier) MarshalText() ([]byte, error) {
	if id.Name == "" {
		return nil, fmt.Errorf("%w: empty identifier", ErrInvalidIdentifier)
	}
	return []byte(id.Name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *Identifier) UnmarshalText(text []byte) error {
	parsed, err := ParseIdentifier(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// ParseIdentifier decodes the textual identifier encoding. Reserved gadget
// names, and "Parent->gadget" overrides of them, become gadgets; every other
// string must be a valid container name.
func ParseIdentifier(s string) (Identifier, error) {
	if s == "" {
		return Identifier{}, fmt.Errorf("%w: empty identifier", ErrInvalidIdentifier)
	}
	if isReservedGadget(s) {
		return Gadget(s), nil
	}
	if parent, gadget, ok := strings.Cut(s, gadgetSeparator); ok {
		if !isContainerName(parent) || !isReservedGadget(gadget) {
			return Identifier{}, fmt.Errorf("%w: %q is not a <container>->%s override", ErrInvalidIdentifier, s, gadgetList())
		}
		return Gadget(s), nil
	}
	if !isContainerName(s) {
		return Identifier{}, fmt.Errorf("%w: %q (containers start with a letter and use only letters, digits and _)", ErrInvalidIdentifier, s)
	}
	return Container(s), nil
}

func isReservedGadget(name string) bool {
	for _, g := range reservedGadgets {
		if g == name {
			return true
		}
	}
	return false
}

func isContainerName(name string) bool {
	if name == "" {
		return false
	}
	for i, c := range name {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case i > 0 && (c == '_' || (c >= '0' && c <= '9')):
		default:
			return false
		}
	}
	return true
}

func gadgetList() string {
	return "{" + strings.Join(reservedGadgets, "|") + "}"
}
