package errs

import (
	"errors"
	"fmt"
)

// ErrDuplicateKey is the sentinel error matched by errors.Is for every
// DuplicateKeyError.
var ErrDuplicateKey = errors.New("duplicate key")

// DuplicateKeyError reports that a natural key occurred more than once while
// building a reference repository. Reference data must hold at most one
// record per key, so a duplicate is a fatal integrity error detected at load
// time rather than at first lookup.
type DuplicateKeyError struct {
	ParamName string
	Key       any
}

// NewDuplicateKeyError creates a DuplicateKeyError for the given natural key.
func NewDuplicateKeyError(paramName string, key any) *DuplicateKeyError {
	return &DuplicateKeyError{
		ParamName: paramName,
		Key:       key,
	}
}

func (e *DuplicateKeyError) Error() string {
	return sanitize(fmt.Sprintf("%s: param is: %s, key is: %s", ErrDuplicateKey, e.ParamName, e.Key))
}

func (e *DuplicateKeyError) Unwrap() error {
	return ErrDuplicateKey
}
