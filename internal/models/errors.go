package models

import "errors"

// ErrNotFound is returned by repositories when no row matches a lookup.
var ErrNotFound = errors.New("product not found")

// DataValidationError reports a malformed or incomplete transport payload,
// or a lifecycle call that is invalid for the record's current state
// (update or delete on a record that was never created).
type DataValidationError struct {
	Field   string // the offending field, empty when the whole payload is bad
	Message string
}

func (e *DataValidationError) Error() string {
	return e.Message
}

// IsDataValidationError reports whether err is (or wraps) a DataValidationError.
func IsDataValidationError(err error) bool {
	var dve *DataValidationError
	return errors.As(err, &dve)
}
