package save

import "github.com/gbakit/savekit/pkg/types"

// Re-export commonly used types from pkg/types so users only need to import pkg/save

// Value types.
type (
	Stats    = types.Stats
	EVs      = types.EVs
	IVs      = types.IVs
	Moves    = types.Moves
	PP       = types.PP
	Nature   = types.Nature
	MapEntry = types.MapEntry
	PlayTime = types.PlayTime
)

// Canonical stat order constants.
const (
	StatHP        = types.StatHP
	StatAttack    = types.StatAttack
	StatDefense   = types.StatDefense
	StatSpeed     = types.StatSpeed
	StatSpAttack  = types.StatSpAttack
	StatSpDefense = types.StatSpDefense
	StatCount     = types.StatCount
	MoveCount     = types.MoveCount
)

// Error types.
type (
	Error   = types.Error
	ErrKind = types.ErrKind
)

// Error kind constants.
const (
	ErrKindFormat      = types.ErrKindFormat
	ErrKindBounds      = types.ErrKindBounds
	ErrKindUnmapped    = types.ErrKindUnmapped
	ErrKindRosterCount = types.ErrKindRosterCount
	ErrKindReconstruct = types.ErrKindReconstruct
	ErrKindState       = types.ErrKindState
	ErrKindNotFound    = types.ErrKindNotFound
)

// Common error sentinels.
var (
	ErrNotSave       = types.ErrNotSave
	ErrOutOfBounds   = types.ErrOutOfBounds
	ErrUnmappedID    = types.ErrUnmappedID
	ErrRosterCount   = types.ErrRosterCount
	ErrReconstruct   = types.ErrReconstruct
	ErrSectorMissing = types.ErrSectorMissing
)
