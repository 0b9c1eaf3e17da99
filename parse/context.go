package parse

import "github.com/robfig/msgpattern/part"

// ApostropheMode selects how a lone apostrophe is interpreted.
type ApostropheMode int

const (
	// DoubleOptional is the default, post-ICU-4.8 mode: a lone apostrophe
	// only begins a quoted literal before a syntax-triggering character.
	DoubleOptional ApostropheMode = iota
	// DoubleRequired is the legacy mode: a lone apostrophe always begins
	// a quoted literal.
	DoubleRequired
)

// ParseContext is the mutable shared state of a single parse: the source
// text, the growing Part list, the side table of double values, the
// start→limit index map, and the parse-wide flags. It is owned by exactly
// one parser/MessagePattern instance and is reset in place by PreParse
// for every new parse, so no state carries over from one parse to the
// next.
type ParseContext struct {
	cs     *CharStream
	source string

	parts            []part.Part
	doubleValues     []float64
	limitPartIndexes map[int]int // part index of a *_START -> part index of its *_LIMIT

	hasArgNames      bool
	hasArgNumbers    bool
	needsAutoQuoting bool

	apostropheMode ApostropheMode
}

// NewParseContext returns an empty context with the given apostrophe mode.
// Use PreParse to install a pattern to parse.
func NewParseContext(mode ApostropheMode) *ParseContext {
	return &ParseContext{apostropheMode: mode}
}

// PreParse fully resets ctx and installs src as the pattern to parse.
func (ctx *ParseContext) PreParse(src string) {
	ctx.source = src
	ctx.cs = NewCharStream(src)
	ctx.parts = nil
	ctx.doubleValues = nil
	ctx.limitPartIndexes = make(map[int]int)
	ctx.hasArgNames = false
	ctx.hasArgNumbers = false
	ctx.needsAutoQuoting = false
}

// Clear resets ctx to the empty state, as if no parse had ever run.
func (ctx *ParseContext) Clear() {
	ctx.source = ""
	ctx.cs = NewCharStream("")
	ctx.parts = nil
	ctx.doubleValues = nil
	ctx.limitPartIndexes = make(map[int]int)
	ctx.hasArgNames = false
	ctx.hasArgNumbers = false
	ctx.needsAutoQuoting = false
}

// ApostropheMode returns the mode this context was configured with.
func (ctx *ParseContext) ApostropheMode() ApostropheMode {
	return ctx.apostropheMode
}

// SetApostropheMode changes the apostrophe mode for the next parse. It
// does not itself clear any existing parse; callers that want a fresh
// parse under the new mode should call Clear (or PreParse again).
func (ctx *ParseContext) SetApostropheMode(mode ApostropheMode) {
	ctx.apostropheMode = mode
}

// Source returns the pattern text installed by the most recent PreParse,
// or "" after Clear.
func (ctx *ParseContext) Source() string {
	return ctx.source
}

// HasArgNames reports whether at least one named argument appeared.
func (ctx *ParseContext) HasArgNames() bool { return ctx.hasArgNames }

// HasArgNumbers reports whether at least one numbered argument appeared.
func (ctx *ParseContext) HasArgNumbers() bool { return ctx.hasArgNumbers }

// NeedsAutoQuoting reports whether at least one INSERT_CHAR part (a
// synthetic apostrophe) was emitted.
func (ctx *ParseContext) NeedsAutoQuoting() bool { return ctx.needsAutoQuoting }

// Parts returns the flat Part list produced by the most recent parse.
func (ctx *ParseContext) Parts() []part.Part { return ctx.parts }

// addPart appends a Part and returns its index.
func (ctx *ParseContext) addPart(typ part.TokenType, index part.Pos, length, value int) int {
	ctx.parts = append(ctx.parts, part.Part{Type: typ, Index: index, Length: length, Value: value})
	return len(ctx.parts) - 1
}

// addLimitPart appends a *_LIMIT part and records it as the match for the
// *_START part at index startPartIndex.
func (ctx *ParseContext) addLimitPart(startPartIndex int, typ part.TokenType, index part.Pos, length, value int) int {
	limitIndex := ctx.addPart(typ, index, length, value)
	ctx.limitPartIndexes[startPartIndex] = limitIndex
	return limitIndex
}

// addArgDoublePart appends numericValue to the double-value side table
// and emits an ARG_DOUBLE part referencing the new slot. It fails with
// OutOfBounds if the new slot index would exceed part.MaxValue (the table
// holds at most part.MaxValue+1 entries).
func (ctx *ParseContext) addArgDoublePart(numericValue float64, start, length int) error {
	if len(ctx.doubleValues) > part.MaxValue {
		return newSyntaxError(OutOfBounds, start, ctx.cs.ErrorContext(start),
			"too many numeric values in pattern")
	}
	slot := len(ctx.doubleValues)
	ctx.doubleValues = append(ctx.doubleValues, numericValue)
	ctx.addPart(part.ArgDouble, part.Pos(start), length, slot)
	return nil
}

// replacePartValue back-patches the Value of the part at startIndex. It is
// used only to set an ARG_START part's resolved ArgType once the
// argument's kind has been lexed, before the matching ARG_LIMIT is
// appended.
func (ctx *ParseContext) replacePartValue(startIndex int, newValue int) {
	ctx.parts[startIndex].Value = newValue
}

// doubleValueAt returns the value stored at doubleValues[slot], and
// whether slot was in range.
func (ctx *ParseContext) doubleValueAt(slot int) (float64, bool) {
	if slot < 0 || slot >= len(ctx.doubleValues) {
		return 0, false
	}
	return ctx.doubleValues[slot], true
}
