package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Content store errors. Storage failures carry a generic message only;
// the underlying cause stays in Cause for logging and is never shown to
// the caller.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrSlugConflict  = errors.New("slug conflict")
	ErrStorage       = errors.New("storage operation failed")
)

func NewNotFound(entity string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		err:        fmt.Errorf("%s %w", entity, ErrNotFound),
	}
}

func NewAlreadyExists(entity string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusConflict,
		err:        fmt.Errorf("%s %w", entity, ErrAlreadyExists),
	}
}

// NewSlugConflict reports a rename whose target slug is already taken by
// another post.
func NewSlugConflict(message string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusConflict,
		err:        fmt.Errorf("%w: %s", ErrSlugConflict, message),
	}
}

// NewStorageError wraps a filesystem failure. The operation and entity feed
// the Details string; the raw error is kept as Cause only.
func NewStorageError(operation, entity string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrStorage,
		Details:    fmt.Sprintf("Failed to %s %s", operation, entity),
		Cause:      cause,
	}
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

func IsSlugConflict(err error) bool {
	return errors.Is(err, ErrSlugConflict)
}

func IsStorageError(err error) bool {
	return errors.Is(err, ErrStorage)
}
