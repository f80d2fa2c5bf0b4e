package board

import "fmt"

// FetchError reports a failed page fetch: either a non-2xx response
// (StatusCode is set) or a transport failure (Err is set).
type FetchError struct {
	URL        string
	StatusCode int
	Status     string
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("fetch %s: %d %s", e.URL, e.StatusCode, e.Status)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// NotFoundError reports an unknown group or target identifier.
// Kind says which of the two the ID names.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// ValidationError reports a missing or unusable required parameter.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s is required", e.Field)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}
