package views

import (
	"errors"
	"fmt"
	"strings"

	"github.com/KaramelBytes/beanview/internal/dataset"
)

// Sentinels matched through errors.Is by the typed render errors.
var (
	ErrInvalidCategory  = errors.New("invalid category")
	ErrUnknownCountry   = errors.New("unknown country")
	ErrInvalidParameter = errors.New("invalid parameter")
)

// CategoryError reports a name outside the nine quality categories.
type CategoryError struct{ Name string }

func (e *CategoryError) Error() string {
	names := make([]string, 0, 9)
	for _, c := range dataset.Categories() {
		names = append(names, string(c))
	}
	return fmt.Sprintf("invalid category %q (valid: %s)", e.Name, strings.Join(names, ", "))
}

func (e *CategoryError) Is(target error) bool { return target == ErrInvalidCategory }

// CountryError reports a country absent from the table's observed values.
type CountryError struct{ Name string }

func (e *CountryError) Error() string {
	return fmt.Sprintf("unknown country %q: not present in country_of_origin", e.Name)
}

func (e *CountryError) Is(target error) bool { return target == ErrUnknownCountry }

// ParameterError reports an out-of-range or malformed view parameter.
type ParameterError struct {
	Name   string
	Value  string
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Name, e.Value, e.Reason)
}

func (e *ParameterError) Is(target error) bool { return target == ErrInvalidParameter }

// Stable error codes surfaced to view consumers.
const (
	CodeSourceUnreadable      = "SOURCE_UNREADABLE"
	CodeMissingRequiredColumn = "MISSING_REQUIRED_COLUMN"
	CodeInvalidCategory       = "INVALID_CATEGORY"
	CodeUnknownCountry        = "UNKNOWN_COUNTRY"
	CodeInvalidParameter      = "INVALID_PARAMETER"
	CodeInternal              = "INTERNAL_ERROR"
)

// Code returns the stable code for a load or render error.
func Code(err error) string {
	switch {
	case errors.Is(err, dataset.ErrSourceUnreadable):
		return CodeSourceUnreadable
	case errors.Is(err, dataset.ErrMissingRequiredColumn):
		return CodeMissingRequiredColumn
	case errors.Is(err, ErrInvalidCategory):
		return CodeInvalidCategory
	case errors.Is(err, ErrUnknownCountry):
		return CodeUnknownCountry
	case errors.Is(err, ErrInvalidParameter):
		return CodeInvalidParameter
	default:
		return CodeInternal
	}
}

// IsRenderError reports whether err is a parameter-level failure local to one view.
func IsRenderError(err error) bool {
	return errors.Is(err, ErrInvalidCategory) || errors.Is(err, ErrUnknownCountry) || errors.Is(err, ErrInvalidParameter)
}
