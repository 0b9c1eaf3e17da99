package parse

import "github.com/robfig/msgpattern/part"

// ValidateArgumentName classifies s the same way the parser classifies an
// argument name token: a non-negative ARG_NUMBER value, or one of
// ArgNameNotNumber / ArgNameNotValid.
func ValidateArgumentName(s string) int {
	runes := []rune(s)
	num := ParseArgNumberFromRunes(runes, 0, len(runes))
	if num == ArgValueOverflow {
		return ArgNameNotValid
	}
	if num != ArgNameNotNumber {
		return num
	}
	if !IsIdentifier(s) {
		return ArgNameNotValid
	}
	return ArgNameNotNumber
}

// AutoQuoteApostropheDeep returns a copy of pattern with every apostrophe
// that the parser treated as a literal (recorded as an INSERT_CHAR part)
// doubled, so that re-parsing the result under DoubleRequired mode
// reproduces the same literal text. Pattern must be the
// exact source string that produced ctx's part list; passing any other
// string yields unspecified results.
func AutoQuoteApostropheDeep(ctx *ParseContext, pattern string) string {
	if !ctx.NeedsAutoQuoting() {
		return pattern
	}
	runes := []rune(pattern)
	out := make([]rune, 0, len(runes)+8)
	cursor := 0
	for _, p := range ctx.parts {
		if p.Type != part.InsertChar {
			continue
		}
		at := int(p.Index)
		if at >= len(runes) || runes[at] != '\'' {
			// Not a physical apostrophe at this position; nothing to double.
			continue
		}
		out = append(out, runes[cursor:at]...)
		out = append(out, '\'', '\'')
		cursor = at + 1
	}
	out = append(out, runes[cursor:]...)
	return string(out)
}
