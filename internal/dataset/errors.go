package dataset

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinels matched through errors.Is by the typed errors below.
var (
	ErrSourceUnreadable      = errors.New("source unreadable")
	ErrMissingRequiredColumn = errors.New("missing required column")
)

// SourceError indicates the input could not be opened or parsed into tabular form.
type SourceError struct {
	Path string
	Err  error
}

func (e *SourceError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("source unreadable: %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("source unreadable: %v", e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

func (e *SourceError) Is(target error) bool { return target == ErrSourceUnreadable }

// MissingColumnError lists required columns absent after renaming.
type MissingColumnError struct {
	Columns []string
}

func (e *MissingColumnError) Error() string {
	if len(e.Columns) == 1 {
		return fmt.Sprintf("missing required column: %s", e.Columns[0])
	}
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Columns, ", "))
}

func (e *MissingColumnError) Is(target error) bool { return target == ErrMissingRequiredColumn }

func sourceErr(path string, format string, args ...any) error {
	return &SourceError{Path: path, Err: fmt.Errorf(format, args...)}
}
