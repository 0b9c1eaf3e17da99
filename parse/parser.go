// Package parse implements the hand-written recursive descent
// MessagePattern parser: CharStream, NumericParser, ParseContext,
// MessagePatternParser, and PartAccessor.
//
// The parser follows a single mutable state struct threaded through
// peek-and-dispatch helper methods, each of which returns its error up
// to the public entry point (no panics), generalized here to the
// MessageFormat grammar.
package parse

import "github.com/robfig/msgpattern/part"

// Parser drives a single recursive-descent parse against one
// ParseContext. Use NewParser to obtain one; call one of the entry
// points (Parse, ParseChoiceStyle, ParsePluralStyle, ParseSelectStyle)
// to run a parse. A Parser may be reused for subsequent parses; each
// entry point calls ctx.PreParse to reset state first.
type Parser struct {
	ctx *ParseContext

	// inMessageFormatPattern is true for a parse entered through Parse
	// (a full "{...}" message, where every argument is reached via
	// parseArg) and false for a parse entered through one of the bare
	// style entry points. It is fixed for the lifetime of one parse: the
	// formula "(nesting_level > 0) || part[0].type == MSG_START" always
	// evaluates true whenever a complex argument is reached via parseArg
	// (parseArg is only ever invoked from parseMessage, which always
	// emits a MSG_START before any argument can be parsed), so the value
	// is a parse-wide constant rather than something recomputed per
	// recursive call.
	inMessageFormatPattern bool
}

// NewParser returns a Parser with the given apostrophe mode.
func NewParser(mode ApostropheMode) *Parser {
	return &Parser{ctx: NewParseContext(mode)}
}

// Context returns the underlying ParseContext, valid after an entry
// point has run (successfully or not: partially populated parts remain
// inspectable even after a failed parse).
func (p *Parser) Context() *ParseContext {
	return p.ctx
}

// Parse parses a full MessageFormat pattern.
func (p *Parser) Parse(src string) (*ParseContext, error) {
	p.ctx.PreParse(src)
	p.inMessageFormatPattern = true
	if _, err := p.parseMessage(0, 0, 0, part.None); err != nil {
		return p.ctx, err
	}
	return p.ctx, nil
}

// ParseChoiceStyle parses a bare choice style with no outer braces.
func (p *Parser) ParseChoiceStyle(src string) (*ParseContext, error) {
	p.ctx.PreParse(src)
	p.inMessageFormatPattern = false
	if _, err := p.parseChoice(0, 0); err != nil {
		return p.ctx, err
	}
	return p.ctx, nil
}

// ParsePluralStyle parses a bare plural style with no outer braces.
func (p *Parser) ParsePluralStyle(src string) (*ParseContext, error) {
	return p.parseBarePluralOrSelect(part.Plural, src)
}

// ParseSelectStyle parses a bare select style with no outer braces.
func (p *Parser) ParseSelectStyle(src string) (*ParseContext, error) {
	return p.parseBarePluralOrSelect(part.Select, src)
}

func (p *Parser) parseBarePluralOrSelect(kind part.ArgType, src string) (*ParseContext, error) {
	p.ctx.PreParse(src)
	p.inMessageFormatPattern = false
	// Sub-messages sit one level below the (absent) enclosing message, as
	// they do when parseArgKindAndStyle reaches this style from level 0.
	if _, err := p.parsePluralOrSelect(kind, 0, 1); err != nil {
		return p.ctx, err
	}
	return p.ctx, nil
}

// parseMessage parses the message body shared by every style: plain
// text runs interleaved with arguments, terminated by the enclosing
// style's limit character.
func (p *Parser) parseMessage(index, msgStartLength, nestingLevel int, parentType part.ArgType) (int, error) {
	ctx := p.ctx
	if nestingLevel > part.MaxNesting {
		return 0, newSyntaxError(OutOfBounds, index, ctx.cs.ErrorContext(index), "nesting level exceeds maximum value")
	}

	msgStartPartIndex := len(ctx.parts)
	ctx.addPart(part.MsgStart, part.Pos(index), msgStartLength, nestingLevel)
	index += msgStartLength

	for {
		if index >= ctx.cs.Length() {
			if nestingLevel > 0 && p.inMessageFormatPattern {
				return 0, newSyntaxError(UnmatchedBraces, index, ctx.cs.ErrorContext(index), "unmatched braces")
			}
			ctx.addLimitPart(msgStartPartIndex, part.MsgLimit, part.Pos(index), 0, nestingLevel)
			return index, nil
		}

		c := ctx.cs.CharAt(index)
		switch {
		case c == '\'':
			index = p.handleApostrophe(index, parentType)
		case c == '#' && parentType.HasPluralStyle():
			ctx.addPart(part.ReplaceNumber, part.Pos(index), 1, 0)
			index++
		case c == '{':
			next, err := p.parseArg(index, nestingLevel)
			if err != nil {
				return 0, err
			}
			index = next
		case c == '}' && nestingLevel > 0:
			ctx.addLimitPart(msgStartPartIndex, part.MsgLimit, part.Pos(index), 1, nestingLevel)
			return index + 1, nil
		case c == '}' && nestingLevel == 0:
			return 0, newSyntaxError(UnmatchedBraces, index, ctx.cs.ErrorContext(index), "unexpected closing brace")
		case c == '|' && parentType == part.Choice:
			ctx.addLimitPart(msgStartPartIndex, part.MsgLimit, part.Pos(index), 0, nestingLevel)
			return index, nil
		default:
			index++
		}
	}
}

// handleApostrophe applies apostrophe-quoting rules. index is the position of the
// apostrophe itself (the caller only reaches here when CharAt(index) is
// '\''); it returns the index at which parseMessage's loop should resume.
func (p *Parser) handleApostrophe(index int, parentType part.ArgType) int {
	ctx := p.ctx
	length := ctx.cs.Length()
	next := index + 1

	if next >= length {
		// A lone trailing apostrophe is always just a literal character.
		ctx.addPart(part.InsertChar, part.Pos(index), 0, 0x27)
		ctx.needsAutoQuoting = true
		return index + 1
	}

	nc := ctx.cs.CharAt(next)
	if nc == '\'' {
		ctx.addPart(part.SkipSyntax, part.Pos(next), 1, 0)
		return next + 1
	}

	if p.isQuoteTrigger(nc, parentType) {
		closeAt := findQuoteClose(ctx.cs, next, length)
		if closeAt < 0 {
			// No closing apostrophe before end-of-input: the quote still
			// opens here and consumes every remaining rune as its literal
			// content (doubling pairs along the way), closed by a
			// synthetic INSERT_CHAR at end-of-input rather than ever
			// letting the trigger character fall back to live syntax.
			ctx.addPart(part.SkipSyntax, part.Pos(index), 1, 0)
			i := next
			for i < length {
				if ctx.cs.CharAt(i) == '\'' && i+1 < length && ctx.cs.CharAt(i+1) == '\'' {
					ctx.addPart(part.SkipSyntax, part.Pos(i), 1, 0)
					ctx.addPart(part.SkipSyntax, part.Pos(i+1), 1, 0)
					i += 2
					continue
				}
				i++
			}
			ctx.addPart(part.InsertChar, part.Pos(length), 0, 0x27)
			ctx.needsAutoQuoting = true
			return length
		}

		ctx.addPart(part.SkipSyntax, part.Pos(index), 1, 0)
		i := next
		for i < closeAt {
			if ctx.cs.CharAt(i) == '\'' && i+1 < closeAt && ctx.cs.CharAt(i+1) == '\'' {
				ctx.addPart(part.SkipSyntax, part.Pos(i), 1, 0)
				ctx.addPart(part.SkipSyntax, part.Pos(i+1), 1, 0)
				i += 2
				continue
			}
			i++
		}
		ctx.addPart(part.SkipSyntax, part.Pos(closeAt), 1, 0)
		return closeAt + 1
	}

	// Literal apostrophe, not syntactically active.
	ctx.addPart(part.InsertChar, part.Pos(index), 0, 0x27)
	ctx.needsAutoQuoting = true
	return index + 1
}

// findQuoteClose scans [start, length) for the apostrophe that would
// close a quoted literal opened just before start, skipping over doubled
// ("escaped") apostrophe pairs along the way. It returns -1 if no closing
// apostrophe is found before length.
func findQuoteClose(cs *CharStream, start, length int) int {
	i := start
	for i < length {
		if cs.CharAt(i) == '\'' {
			if i+1 < length && cs.CharAt(i+1) == '\'' {
				i += 2
				continue
			}
			return i
		}
		i++
	}
	return -1
}

func (p *Parser) isQuoteTrigger(c rune, parentType part.ArgType) bool {
	if p.ctx.apostropheMode == DoubleRequired {
		return true
	}
	if c == '{' || c == '}' {
		return true
	}
	if c == '|' && parentType == part.Choice {
		return true
	}
	if c == '#' && parentType.HasPluralStyle() {
		return true
	}
	return false
}

// parseArg parses one {argument} from the opening brace through its
// matching ARG_LIMIT.
func (p *Parser) parseArg(braceIndex, nestingLevel int) (int, error) {
	ctx := p.ctx
	argStartIndex := ctx.addPart(part.ArgStart, part.Pos(braceIndex), 1, int(part.None))

	index := ctx.cs.SkipWhitespace(braceIndex + 1)
	if index >= ctx.cs.Length() {
		return 0, newSyntaxError(UnmatchedBraces, index, ctx.cs.ErrorContext(index), "unmatched braces")
	}

	nameStart := index
	nameEnd := ctx.cs.SkipIdentifier(index)
	num := ctx.cs.ParseArgNumber(nameStart, nameEnd)
	switch {
	case num >= 0:
		ctx.addPart(part.ArgNumber, part.Pos(nameStart), nameEnd-nameStart, num)
		ctx.hasArgNumbers = true
	case num == ArgNameNotNumber:
		length := nameEnd - nameStart
		if length > part.MaxLength {
			return 0, newSyntaxError(OutOfBounds, nameStart, ctx.cs.ErrorContext(nameStart), "argument name too long")
		}
		ctx.addPart(part.ArgName, part.Pos(nameStart), length, 0)
		ctx.hasArgNames = true
	case num == ArgValueOverflow:
		return 0, newSyntaxError(OutOfBounds, nameStart, ctx.cs.ErrorContext(nameStart), "argument number too large")
	default: // ArgNameNotValid
		return 0, newSyntaxError(InvalidArgument, nameStart, ctx.cs.ErrorContext(nameStart), "bad argument syntax")
	}

	index = ctx.cs.SkipWhitespace(nameEnd)
	if index >= ctx.cs.Length() {
		return 0, newSyntaxError(UnmatchedBraces, index, ctx.cs.ErrorContext(index), "unmatched braces")
	}

	argType := part.None
	switch ctx.cs.CharAt(index) {
	case '}':
		// NONE arg; fall through to the closing check below.
	case ',':
		var err error
		argType, index, err = p.parseArgKindAndStyle(index+1, nestingLevel, argStartIndex)
		if err != nil {
			return 0, err
		}
	default:
		return 0, newSyntaxError(InvalidArgument, index, ctx.cs.ErrorContext(index), "bad argument syntax")
	}

	if ctx.cs.CharAt(index) != '}' {
		return 0, newSyntaxError(UnmatchedBraces, index, ctx.cs.ErrorContext(index), "unmatched braces")
	}
	ctx.addLimitPart(argStartIndex, part.ArgLimit, part.Pos(index), 1, int(argType))
	return index + 1, nil
}

// parseArgKindAndStyle resolves the argument's kind keyword and, for
// complex kinds, dispatches to the matching style parser.
func (p *Parser) parseArgKindAndStyle(index, nestingLevel, argStartIndex int) (part.ArgType, int, error) {
	ctx := p.ctx

	index = ctx.cs.SkipWhitespace(index)
	kindStart := index
	for index < ctx.cs.Length() && IsArgTypeChar(ctx.cs.CharAt(index)) {
		index++
	}
	kindEnd := index
	k := kindEnd - kindStart

	afterKind := ctx.cs.SkipWhitespace(kindEnd)
	nextChar := ctx.cs.CharAt(afterKind)
	if k == 0 || (nextChar != '}' && nextChar != ',') {
		return part.None, 0, newSyntaxError(InvalidArgument, kindStart, ctx.cs.ErrorContext(kindStart), "bad argument syntax")
	}
	if k > part.MaxLength {
		return part.None, 0, newSyntaxError(OutOfBounds, kindStart, ctx.cs.ErrorContext(kindStart), "argument kind too long")
	}

	kindSlice := ctx.cs.Slice(kindStart, kindEnd)
	argType := part.Simple
	switch {
	case k == 6 && kindSlice == "choice":
		argType = part.Choice
	case k == 6 && kindSlice == "plural":
		argType = part.Plural
	case k == 6 && kindSlice == "select":
		argType = part.Select
	case k == 13 && kindSlice == "selectordinal":
		argType = part.Selectordinal
	}

	ctx.replacePartValue(argStartIndex, int(argType))
	if argType == part.Simple {
		ctx.addPart(part.ArgTypeTok, part.Pos(kindStart), kindEnd-kindStart, 0)
	}

	if nextChar == '}' {
		if argType != part.Simple {
			return part.None, 0, newSyntaxError(InvalidArgument, afterKind, ctx.cs.ErrorContext(afterKind), "no style field for complex argument")
		}
		return argType, afterKind, nil
	}

	styleIndex := afterKind + 1 // consume the comma
	var next int
	var err error
	switch argType {
	case part.Simple:
		next, err = p.parseSimpleStyle(styleIndex)
	case part.Choice:
		next, err = p.parseChoice(styleIndex, nestingLevel+1)
	case part.Plural, part.Selectordinal, part.Select:
		next, err = p.parsePluralOrSelect(argType, styleIndex, nestingLevel+1)
	}
	if err != nil {
		return part.None, 0, err
	}
	return argType, next, nil
}

// parseSimpleStyle parses a simple argument's style text, starting just
// after the comma that follows the type keyword, and returns the index of
// the argument's closing brace.
func (p *Parser) parseSimpleStyle(start int) (int, error) {
	ctx := p.ctx
	index := start
	depth := 0
	for {
		if index >= ctx.cs.Length() {
			return 0, newSyntaxError(UnmatchedBraces, index, ctx.cs.ErrorContext(index), "unmatched braces")
		}
		switch ctx.cs.CharAt(index) {
		case '\'':
			j := index + 1
			for {
				if j >= ctx.cs.Length() {
					return 0, newSyntaxError(InvalidArgument, start, ctx.cs.ErrorContext(start),
						"quoted literal argument style text reaches to the end of the message")
				}
				if ctx.cs.CharAt(j) == '\'' {
					break
				}
				j++
			}
			index = j + 1
		case '{':
			depth++
			index++
		case '}':
			if depth > 0 {
				depth--
				index++
				continue
			}
			length := index - start
			if length > part.MaxLength {
				return 0, newSyntaxError(OutOfBounds, start, ctx.cs.ErrorContext(start), "argument style text too long")
			}
			ctx.addPart(part.ArgStyle, part.Pos(start), length, 0)
			return index, nil
		default:
			index++
		}
	}
}

// parseChoice parses a {..., choice, ...} style's interval/message pairs.
func (p *Parser) parseChoice(index, nestingLevel int) (int, error) {
	ctx := p.ctx
	count := 0
	for {
		index = ctx.cs.SkipWhitespace(index)
		numStart := index
		numEnd := ctx.cs.SkipDouble(index)
		if numEnd == numStart {
			return 0, newSyntaxError(BadChoicePatternSyntax, index, ctx.cs.ErrorContext(index), "expected a choice boundary number")
		}
		if numEnd-numStart > part.MaxLength {
			return 0, newSyntaxError(OutOfBounds, numStart, ctx.cs.ErrorContext(numStart), "choice number too long")
		}
		if err := ctx.ParseDoubleValue(numStart, numEnd, true); err != nil {
			return 0, err
		}

		if numEnd >= ctx.cs.Length() {
			return 0, newSyntaxError(BadChoicePatternSyntax, numEnd, ctx.cs.ErrorContext(numEnd), "missing choice operator")
		}
		op := ctx.cs.CharAt(numEnd)
		if op != '<' && op != '#' && op != '≤' {
			return 0, newSyntaxError(BadChoicePatternSyntax, numEnd, ctx.cs.ErrorContext(numEnd), "invalid choice operator")
		}
		ctx.addPart(part.ArgSelector, part.Pos(numEnd), 1, 0)

		next, err := p.parseMessage(numEnd+1, 0, nestingLevel, part.Choice)
		if err != nil {
			return 0, err
		}
		count++

		if next >= ctx.cs.Length() {
			if !p.inMessageFormatPattern {
				return next, nil
			}
			return 0, newSyntaxError(UnmatchedBraces, next, ctx.cs.ErrorContext(next), "unmatched braces")
		}
		if ctx.cs.CharAt(next) == '|' {
			index = next + 1
			continue
		}
		if next > 0 && ctx.cs.CharAt(next-1) == '}' {
			return next - 1, nil
		}
		return 0, newSyntaxError(BadChoicePatternSyntax, next, ctx.cs.ErrorContext(next), "expected '|' or '}' after choice message")
	}
}

// parsePluralOrSelect parses a {..., plural|selectordinal|select, ...}
// style's optional offset and its selector/message clauses.
func (p *Parser) parsePluralOrSelect(kind part.ArgType, index, nestingLevel int) (int, error) {
	ctx := p.ctx
	isEmpty := true
	hasOther := false

	for {
		index = ctx.cs.SkipWhitespace(index)
		eos := index >= ctx.cs.Length()
		if eos || ctx.cs.CharAt(index) == '}' {
			if eos && ctx.unmatchedDepth() > 0 {
				return 0, newSyntaxError(UnmatchedBraces, index, ctx.cs.ErrorContext(index), "unmatched braces")
			}
			if eos == p.inMessageFormatPattern {
				return 0, newSyntaxError(BadPluralSelectPatternSyntax, index, ctx.cs.ErrorContext(index), "unexpected end of %s style", kindLabel(kind))
			}
			if !hasOther {
				return 0, newSyntaxError(BadPluralSelectPatternSyntax, index, ctx.cs.ErrorContext(index), "missing 'other' case")
			}
			return index, nil
		}

		selectorIndex := index
		if kind.HasPluralStyle() && ctx.cs.CharAt(index) == '=' {
			eqEnd := index + 1
			numEnd := ctx.cs.SkipDouble(eqEnd)
			if numEnd == eqEnd {
				return 0, newSyntaxError(BadPluralSelectPatternSyntax, index, ctx.cs.ErrorContext(index), "empty explicit-value selector")
			}
			selLen := numEnd - selectorIndex
			if selLen < 2 || selLen > part.MaxLength {
				return 0, newSyntaxError(OutOfBounds, selectorIndex, ctx.cs.ErrorContext(selectorIndex), "selector too long")
			}
			ctx.addPart(part.ArgSelector, part.Pos(selectorIndex), selLen, 0)
			if err := ctx.ParseDoubleValue(eqEnd, numEnd, false); err != nil {
				return 0, err
			}
			index = numEnd
		} else {
			idEnd := ctx.cs.SkipIdentifier(index)
			idLen := idEnd - index
			if idLen == 0 {
				return 0, newSyntaxError(BadPluralSelectPatternSyntax, index, ctx.cs.ErrorContext(index), "empty selector")
			}
			if idLen > part.MaxLength {
				return 0, newSyntaxError(OutOfBounds, index, ctx.cs.ErrorContext(index), "selector too long")
			}
			ident := ctx.cs.Slice(index, idEnd)
			if kind.HasPluralStyle() && ident == "offset" && ctx.cs.CharAt(idEnd) == ':' {
				if !isEmpty {
					return 0, newSyntaxError(InvalidArgument, index, ctx.cs.ErrorContext(index), "'offset:' must precede key-message pairs")
				}
				colonEnd := ctx.cs.SkipWhitespace(idEnd + 1)
				numEnd := ctx.cs.SkipDouble(colonEnd)
				if numEnd == colonEnd {
					return 0, newSyntaxError(BadPluralSelectPatternSyntax, colonEnd, ctx.cs.ErrorContext(colonEnd), "missing offset value")
				}
				if err := ctx.ParseDoubleValue(colonEnd, numEnd, true); err != nil {
					return 0, err
				}
				isEmpty = false
				index = numEnd
				continue
			}
			ctx.addPart(part.ArgSelector, part.Pos(index), idLen, 0)
			if ident == "other" {
				hasOther = true
			}
			index = idEnd
		}

		index = ctx.cs.SkipWhitespace(index)
		if index >= ctx.cs.Length() || ctx.cs.CharAt(index) != '{' {
			return 0, newSyntaxError(InvalidArgument, index, ctx.cs.ErrorContext(index), "no message fragment after %s selector", kindLabel(kind))
		}
		next, err := p.parseMessage(index, 1, nestingLevel, kind)
		if err != nil {
			return 0, err
		}
		isEmpty = false
		index = next
	}
}

func kindLabel(kind part.ArgType) string {
	switch kind {
	case part.Plural:
		return "plural"
	case part.Selectordinal:
		return "selectordinal"
	case part.Select:
		return "select"
	default:
		return kind.String()
	}
}

// unmatchedDepth returns the running MSG_START/MSG_LIMIT balance across
// all parts emitted so far; zero means every opened message fragment has
// been closed.
func (ctx *ParseContext) unmatchedDepth() int {
	depth := 0
	for _, p := range ctx.parts {
		switch p.Type {
		case part.MsgStart:
			depth++
		case part.MsgLimit:
			depth--
		}
	}
	return depth
}
