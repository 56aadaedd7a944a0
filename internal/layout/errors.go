package layout

import "errors"

// Parse errors for the textual encodings.
var (
	ErrInvalidIdentifier = errors.New("layout: invalid identifier")
	ErrInvalidLength     = errors.New("layout: invalid length")
	ErrInvalidSplit      = errors.New("layout: invalid split")
)

// Tree construction errors. Each is wrapped with the offending identifier.
var (
	ErrEmptyItemSet            = errors.New("layout: empty item set")
	ErrUnknownIdentifier       = errors.New("layout: unknown identifier")
	ErrMissingGadgetDefinition = errors.New("layout: missing gadget definition")
	ErrDuplicateIdentifier     = errors.New("layout: duplicate identifier")
	ErrCyclicReference         = errors.New("layout: cyclic reference")
	ErrRootNotContainer        = errors.New("layout: root must be a container")
)
