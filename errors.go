package sprig

import "errors"

var (
	// ErrInvalidHeading is the panic value for a CardinalDirection outside the
	// eight defined headings. It is only reachable by assigning a raw value.
	ErrInvalidHeading = errors.New("sprig: invalid heading")

	// ErrInvalidReaction is returned when parsing an unknown BoundsReaction name.
	ErrInvalidReaction = errors.New("sprig: invalid bounds reaction")

	// ErrInvalidOffset is returned for a GridOffset outside None/Center/CellSize.
	ErrInvalidOffset = errors.New("sprig: invalid grid offset")

	// ErrCellOutOfRange is returned by BoundedSquareGrid lookups with a negative
	// index or one past the grid's cell count.
	ErrCellOutOfRange = errors.New("sprig: cell out of range")

	// ErrNilInterpolator is returned by NewTargetValue when no interpolator is given.
	ErrNilInterpolator = errors.New("sprig: nil interpolator")

	// ErrDuplicateKey is returned when a registry key is registered twice.
	ErrDuplicateKey = errors.New("sprig: duplicate registry key")

	// ErrUnknownKey is returned by Registry.New for a key with no factory.
	ErrUnknownKey = errors.New("sprig: unknown registry key")

	// ErrEmptyScenePath is returned when registering a scene without a path.
	ErrEmptyScenePath = errors.New("sprig: empty scene path")

	// ErrAlreadyLaunched is returned by WorkerHost.Launch after the first call.
	ErrAlreadyLaunched = errors.New("sprig: workers already launched")

	// ErrScriptExpectation is wrapped by MoverScript.Run when an expect step fails.
	ErrScriptExpectation = errors.New("sprig: script expectation failed")
)
