package errs

import "errors"

// Error kinds shared by the domain, usecase and handler layers.
// Concrete errors are marked with one of these so callers can classify them with errors.Is.
var (
	// Referenced booking/line/guest/room/property does not exist
	ErrNotFound = errors.New("not found")

	// Input rejected before any mutation
	ErrInvalidArgument = errors.New("invalid argument")

	// Unique-code collision or room already held on overlapping dates
	ErrConflict = errors.New("conflict")

	// Delete blocked by foreign references
	ErrIntegrityViolation = errors.New("integrity violation")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

// Kind returns the first error kind err is marked with, or nil.
func Kind(err error) error {
	for _, kind := range []error{ErrNotFound, ErrInvalidArgument, ErrConflict, ErrIntegrityViolation, ErrDatabaseOperationFailed} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
