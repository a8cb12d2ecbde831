package schematic

import "errors"

var (
	ErrUnknownKind      = errors.New("schematic: unknown component kind")
	ErrDuplicateID      = errors.New("schematic: duplicate component id")
	ErrUnknownComponent = errors.New("schematic: unknown component")
	ErrUnknownPin       = errors.New("schematic: unknown pin")
	ErrBadReference     = errors.New("schematic: pin reference must have the form id.pin")
	ErrBadRotation      = errors.New("schematic: rotation must be 0, 90, 180 or 270 degrees")
	ErrBadLink          = errors.New("schematic: not a simulator link")
)
