package feature

import "errors"

// Predefined errors for the feature package.
var (
	// ErrFlagNotFound indicates that the requested feature flag was not found.
	ErrFlagNotFound = errors.New("feature flag not found")

	// ErrInvalidFlag indicates that the provided flag parameters are invalid.
	ErrInvalidFlag = errors.New("invalid feature flag parameters")

	// ErrConfigLoad indicates that a flag config source could not be loaded.
	// Loading is fail-open: the registry keeps its previous state and
	// callers may treat this error as advisory.
	ErrConfigLoad = errors.New("failed to load feature flag config")
)
