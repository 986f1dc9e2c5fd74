package furnish

import (
	"errors"
	"fmt"
)

var (
	// ErrMetadataNotFound is returned when neither metadata path exists
	ErrMetadataNotFound = errors.New("metadata not found")

	// ErrLoad marks a model that exists but could not be decoded
	ErrLoad = errors.New("failed to load model")
)

// Input stages reported by FatalInputError
const (
	StageShell    = "shell"
	StageMetadata = "metadata"
)

// FatalInputError aborts a run before any furniture is placed
type FatalInputError struct {
	Stage string
	Path  string
	Err   error
}

func (e *FatalInputError) Error() string {
	return fmt.Sprintf("failed to read %s %s: %v", e.Stage, e.Path, e.Err)
}

func (e *FatalInputError) Unwrap() error {
	return e.Err
}

// FatalExportError aborts a run after composition; no output is guaranteed
type FatalExportError struct {
	Path string
	Err  error
}

func (e *FatalExportError) Error() string {
	return fmt.Sprintf("failed to export %s: %v", e.Path, e.Err)
}

func (e *FatalExportError) Unwrap() error {
	return e.Err
}
