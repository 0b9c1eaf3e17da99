package msgpattern

import (
	"github.com/robfig/msgpattern/parse"
	"github.com/robfig/msgpattern/part"
)

// ApostropheMode re-exports parse.ApostropheMode at the façade boundary,
// so callers of this package never need to import package parse just to
// name a mode constant.
type ApostropheMode = parse.ApostropheMode

const (
	// DoubleOptional is the default, post-ICU-4.8 apostrophe mode.
	DoubleOptional = parse.DoubleOptional
	// DoubleRequired is the legacy apostrophe mode.
	DoubleRequired = parse.DoubleRequired
)

// MessagePattern is the library's entry point: it owns one
// parser/ParseContext pair, parses a pattern string into it, and exposes
// the parsed result through PartAccessor and a handful of summary
// queries. A MessagePattern may be reused: every Parse* method clears and
// reparses from scratch, mirroring java.text.MessagePattern's own
// mutable-and-reusable contract.
type MessagePattern struct {
	parser *parse.Parser
	source string
}

// New returns an empty MessagePattern configured with the default
// DoubleOptional apostrophe mode. Call one of the Parse* methods before
// querying it.
func New() *MessagePattern {
	return NewWithMode(DoubleOptional)
}

// NewWithMode returns an empty MessagePattern configured with mode.
func NewWithMode(mode ApostropheMode) *MessagePattern {
	return &MessagePattern{parser: parse.NewParser(mode)}
}

// NewFromPattern returns a MessagePattern that has already parsed s under
// the default apostrophe mode, the same convenience a single-argument
// constructor offers in the Java/ICU original this type mirrors.
func NewFromPattern(s string) (*MessagePattern, error) {
	mp := New()
	if err := mp.Parse(s); err != nil {
		return nil, err
	}
	return mp, nil
}

// Parse parses a full MessageFormat pattern, replacing any previously
// parsed state.
func (mp *MessagePattern) Parse(s string) error {
	_, err := mp.parser.Parse(s)
	mp.source = s
	return err
}

// ParseChoiceStyle parses a bare choice style with no outer braces.
func (mp *MessagePattern) ParseChoiceStyle(s string) error {
	_, err := mp.parser.ParseChoiceStyle(s)
	mp.source = s
	return err
}

// ParsePluralStyle parses a bare plural style with no outer braces.
func (mp *MessagePattern) ParsePluralStyle(s string) error {
	_, err := mp.parser.ParsePluralStyle(s)
	mp.source = s
	return err
}

// ParseSelectStyle parses a bare select style with no outer braces.
func (mp *MessagePattern) ParseSelectStyle(s string) error {
	_, err := mp.parser.ParseSelectStyle(s)
	mp.source = s
	return err
}

// Clear resets mp to the empty state, as if it had just been constructed
// by New with its current apostrophe mode.
func (mp *MessagePattern) Clear() {
	mp.parser.Context().Clear()
	mp.source = ""
}

// ClearPatternAndSetApostropheMode clears mp and switches it to mode for
// the next parse.
func (mp *MessagePattern) ClearPatternAndSetApostropheMode(mode ApostropheMode) {
	mp.Clear()
	mp.parser.Context().SetApostropheMode(mode)
}

// Parts returns a read-only accessor over the most recent parse. Valid
// even after a failed parse: parts emitted before the failure remain
// inspectable.
func (mp *MessagePattern) Parts() *parse.PartAccessor {
	return parse.NewPartAccessor(mp.parser.Context())
}

// GetApostropheMode returns the apostrophe mode mp is currently
// configured with.
func (mp *MessagePattern) GetApostropheMode() ApostropheMode {
	return mp.parser.Context().ApostropheMode()
}

// GetPatternString returns the source string installed by the most
// recent Parse* call, or "" if none has run or Clear was called since.
func (mp *MessagePattern) GetPatternString() string {
	return mp.parser.Context().Source()
}

// HasNamedArguments reports whether at least one named argument appeared
// in the most recent parse.
func (mp *MessagePattern) HasNamedArguments() bool {
	return mp.parser.Context().HasArgNames()
}

// HasNumberedArguments reports whether at least one numbered argument
// appeared in the most recent parse.
func (mp *MessagePattern) HasNumberedArguments() bool {
	return mp.parser.Context().HasArgNumbers()
}

// NeedsAutoQuoting reports whether the most recent parse recorded a loose
// apostrophe that AutoQuoteApostropheDeep would double.
func (mp *MessagePattern) NeedsAutoQuoting() bool {
	return mp.parser.Context().NeedsAutoQuoting()
}

// AutoQuoteApostropheDeep returns a source string equivalent to
// GetPatternString but with every loose apostrophe doubled, so that
// re-parsing it under DoubleRequired mode yields the same literal output.
func (mp *MessagePattern) AutoQuoteApostropheDeep() string {
	return parse.AutoQuoteApostropheDeep(mp.parser.Context(), mp.source)
}

// Each calls fn with the index and value of every Part in parse order,
// stopping early if fn returns false.
func (mp *MessagePattern) Each(fn func(i int, p part.Part) bool) {
	parts := mp.parser.Context().Parts()
	for i, p := range parts {
		if !fn(i, p) {
			return
		}
	}
}

// ValidateArgumentName classifies s the way the parser classifies an
// argument name token: a non-negative ARG_NUMBER value, or one of
// ArgNameNotNumber / ArgNameNotValid.
func ValidateArgumentName(s string) int {
	return parse.ValidateArgumentName(s)
}

// AppendReducedApostrophes copies s[start:limit) to out, collapsing every
// run of two consecutive ASCII apostrophes into one.
func AppendReducedApostrophes(s string, start, limit int, out []rune) []rune {
	return parse.AppendReducedApostrophes(s, start, limit, out)
}

// Sentinel classifications re-exported from package parse for callers of
// ValidateArgumentName.
const (
	ArgNameNotNumber = parse.ArgNameNotNumber
	ArgNameNotValid  = parse.ArgNameNotValid
)
