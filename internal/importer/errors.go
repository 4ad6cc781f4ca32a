package importer

import "errors"

var (
	// ErrInvalidURL is returned when the submitted URL is not an http or
	// https URL even after prepending a scheme.
	ErrInvalidURL = errors.New("importer: invalid URL")

	// ErrNoRecipeFound is returned when every extraction strategy for the
	// page was exhausted without finding a recipe.
	ErrNoRecipeFound = errors.New("importer: no recipe found")
)

// NetworkError wraps a failure to reach the page or the import API. The
// import attempt is terminal; the caller may resubmit the URL.
type NetworkError struct {
	Cause error
}

func (e *NetworkError) Error() string {
	return "importer: network error: " + e.Cause.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Cause
}

// ParsingError reports that a page or API response was reached but could
// not be understood, with a message suitable for showing to the user.
type ParsingError struct {
	Message string
}

func (e *ParsingError) Error() string {
	return "importer: parsing error: " + e.Message
}
