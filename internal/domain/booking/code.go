package booking

import (
	"fmt"

	"hotel-inventory/internal/pkg/errs"
)

// ErrInvalidSequence means the stored counter returned a non-positive value.
var ErrInvalidSequence = errs.Mark(errs.New("booking code sequence must start at 1"), errs.ErrDatabaseOperationFailed)

// FormatCode renders the property-scoped booking code, e.g. B-2024-0001.
func FormatCode(year int, seq int64) (string, error) {
	if seq < 1 {
		return "", errs.Wrapf(ErrInvalidSequence, "seq=%d", seq)
	}
	return fmt.Sprintf("B-%d-%04d", year, seq), nil
}
