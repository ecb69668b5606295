package types

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindFormat      ErrKind = iota // malformed file (bad size, bad sector signature)
	ErrKindBounds                     // offset/width access outside a view's length
	ErrKindUnmapped                   // no canonical<->raw mapping for an identifier
	ErrKindRosterCount                // roster count field exceeds the variant maximum
	ErrKindReconstruct                // reconstruction aborted; no partial buffer produced
	ErrKindState                      // invalid operation for current state
	ErrKindNotFound                   // missing sector, slot, or mapping table
)

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind, so errors.Is(err, ErrOutOfBounds)
// holds for every bounds failure regardless of the wrapped detail.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels commonly returned by implementations.
var (
	// ErrNotSave indicates the buffer is not a recognizable save file.
	ErrNotSave = &Error{Kind: ErrKindFormat, Msg: "not a supported save file"}
	// ErrOutOfBounds indicates a read or write fell outside a view's bounds.
	ErrOutOfBounds = &Error{Kind: ErrKindBounds, Msg: "access out of view bounds"}
	// ErrUnmappedID indicates a canonical identifier has no in-game representation.
	ErrUnmappedID = &Error{Kind: ErrKindUnmapped, Msg: "identifier has no in-game representation"}
	// ErrRosterCount indicates the roster count field exceeds the variant maximum.
	ErrRosterCount = &Error{Kind: ErrKindRosterCount, Msg: "invalid roster count"}
	// ErrReconstruct indicates a failed reconstruction; the original buffer is untouched.
	ErrReconstruct = &Error{Kind: ErrKindReconstruct, Msg: "reconstruction failed"}
	// ErrSectorMissing indicates a required logical sector was absent from the active slot.
	ErrSectorMissing = &Error{Kind: ErrKindNotFound, Msg: "required sector not present in active slot"}
)
