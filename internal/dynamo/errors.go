package dynamo

import "errors"

// Domain errors for level and configuration handling.
var (
	// ErrInvalidLevel indicates level data that violates a body, craft or win invariant.
	ErrInvalidLevel = errors.New("dynamo: invalid level")

	// ErrUnknownLevel indicates a level name that is not in the catalog.
	ErrUnknownLevel = errors.New("dynamo: unknown level")

	// ErrInvalidWinCondition indicates an unrecognised or malformed win condition.
	ErrInvalidWinCondition = errors.New("dynamo: invalid win condition")

	// ErrInvalidConfig indicates a run configuration outside valid bounds.
	ErrInvalidConfig = errors.New("dynamo: invalid configuration")
)

// LevelError wraps a validation failure with the offending level and field.
type LevelError struct {
	Level   string
	Field   string
	Wrapped error
}

func (e *LevelError) Error() string {
	if e.Level == "" {
		return e.Wrapped.Error() + ": " + e.Field
	}
	return e.Wrapped.Error() + ": " + e.Level + ": " + e.Field
}

func (e *LevelError) Unwrap() error {
	return e.Wrapped
}
