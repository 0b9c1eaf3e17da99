// Package errortypes carries positional detail on parse errors. Unlike a
// file-based error position (file/line/col), a MessageFormat pattern is a
// single in-memory string with no line breaks worth tracking, so an
// ErrPatternPos instead carries the code-point index where the failure
// was detected plus a short rendered snippet of source around it — the
// index is a cursor into the original pattern, the context is already
// formatted for display and needs no further line/column arithmetic by
// the caller.
package errortypes

import "fmt"

// ErrPatternPos extends the error interface with the position in the
// pattern text where the error was detected.
type ErrPatternPos interface {
	error
	Index() int
	Context() string
}

// NewErrPatternPosf creates an error conforming to the ErrPatternPos
// interface. context should already be a bounded, display-ready snippet
// of the source around index, not the full pattern string.
func NewErrPatternPosf(index int, context string, format string, args ...interface{}) error {
	return &errPatternPos{
		error:   fmt.Errorf(format, args...),
		index:   index,
		context: context,
	}
}

// IsErrPatternPos reports whether the root cause of err carries a pattern
// position. Wrapped errors are unwrapped via Cause().
func IsErrPatternPos(err error) bool {
	if err == nil {
		return false
	}
	_, ok := rootCause(err).(ErrPatternPos)
	return ok
}

// ToErrPatternPos converts err to an ErrPatternPos if possible, or returns
// nil if not. If IsErrPatternPos returns true, this does not return nil.
func ToErrPatternPos(err error) ErrPatternPos {
	if err == nil {
		return nil
	}
	if out, ok := rootCause(err).(ErrPatternPos); ok {
		return out
	}
	return nil
}

func rootCause(err error) error {
	type causer interface {
		Cause() error
	}
	for {
		if e, ok := err.(causer); ok {
			err = e.Cause()
		} else {
			return err
		}
	}
}

var _ ErrPatternPos = &errPatternPos{}

type errPatternPos struct {
	error
	index   int
	context string
}

func (e *errPatternPos) Index() int {
	return e.index
}

func (e *errPatternPos) Context() string {
	return e.context
}
