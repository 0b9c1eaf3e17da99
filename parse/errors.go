package parse

import (
	"fmt"

	"github.com/robfig/msgpattern/errortypes"
)

// Kind is the closed taxonomy of parse-time failures.
type Kind int

const (
	InvalidArgument Kind = iota
	UnmatchedBraces
	BadChoicePatternSyntax
	BadPluralSelectPatternSyntax
	InvalidNumericValue
	OutOfBounds
)

var kindNames = [...]string{
	"InvalidArgument",
	"UnmatchedBraces",
	"BadChoicePatternSyntax",
	"BadPluralSelectPatternSyntax",
	"InvalidNumericValue",
	"OutOfBounds",
}

func (k Kind) String() string {
	if int(k) < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// SyntaxError is a parse failure with a Kind and positional context. It
// implements errortypes.ErrPatternPos.
type SyntaxError struct {
	Kind    Kind
	Message string
	index   int
	context string
}

func (e *SyntaxError) Error() string {
	if e.context == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Message, e.context)
}

func (e *SyntaxError) Index() int      { return e.index }
func (e *SyntaxError) Context() string { return e.context }

var _ errortypes.ErrPatternPos = (*SyntaxError)(nil)

func newSyntaxError(kind Kind, index int, context string, format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		index:   index,
		context: context,
	}
}
