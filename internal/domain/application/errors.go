package application

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound            = errors.New("loan application not found")
	ErrDuplicateNationalID = errors.New("national id already used by another application")
	ErrInvalidTransition   = errors.New("invalid status transition")
)

// ValidationError carries the names of missing or invalid fields and document
// slots so the caller can correct and resubmit.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid application: %s", strings.Join(e.Fields, ", "))
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
