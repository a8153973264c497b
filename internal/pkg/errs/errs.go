package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

func New(msg string) error {
	return cr.New(msg)
}

func Newf(format string, args ...any) error {
	return cr.Newf(format, args...)
}

// WithCause returns err with cause attached for diagnostics only: the message
// and errors.Is identity are those of err.
func WithCause(err, cause error) error {
	if cause == nil {
		return err
	}
	return cr.WithSecondaryError(err, cause)
}

// Mark tags err with markErr. Both errors.Is from the standard library and
// cockroachdb/errors.Is report a match for markErr afterwards.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return &markedError{error: cr.Mark(err, markErr), mark: markErr}
}

type markedError struct {
	error
	mark error
}

func (m *markedError) Unwrap() error { return m.error }

func (m *markedError) Is(target error) bool {
	return target == m.mark || cr.Is(m.error, target)
}

func (m *markedError) Format(s fmt.State, verb rune) {
	if f, ok := m.error.(fmt.Formatter); ok {
		f.Format(s, verb)
		return
	}
	fmt.Fprint(s, m.error.Error())
}

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
