package parse

import (
	"math"
	"strconv"
	"strings"

	"github.com/robfig/msgpattern/part"
)

// Sentinel classifications returned by ParseArgNumberFromRunes /
// ParseArgNumberFromString / (*CharStream).ParseArgNumber.
const (
	ArgNameNotNumber = -1
	ArgNameNotValid  = -2
	ArgValueOverflow = -3
)

// maxArgNumberDigits is the digit count of part.ArgNumberMax
// ("2147483647"); anything longer is unconditionally an overflow, which
// lets the digit-by-digit accumulation below use plain int arithmetic
// without itself overflowing.
const maxArgNumberDigits = 10

// ParseArgNumberFromRunes classifies runes[start:limit) as a non-negative
// integer argument number. It returns the parsed value (>= 0), or one of
// ArgNameNotNumber / ArgValueOverflow / ArgNameNotValid.
func ParseArgNumberFromRunes(runes []rune, start, limit int) int {
	if start >= limit {
		return ArgNameNotValid
	}
	for i := start; i < limit; i++ {
		if runes[i] < '0' || runes[i] > '9' {
			return ArgNameNotNumber
		}
	}
	if limit-start > 1 && runes[start] == '0' {
		return ArgNameNotValid
	}
	if limit-start > maxArgNumberDigits {
		return ArgValueOverflow
	}
	value := 0
	for i := start; i < limit; i++ {
		value = value*10 + int(runes[i]-'0')
	}
	if value > part.ArgNumberMax {
		return ArgValueOverflow
	}
	return value
}

// ParseArgNumberFromString is ParseArgNumberFromRunes over the code points
// of s.
func ParseArgNumberFromString(s string, start, limit int) int {
	return ParseArgNumberFromRunes([]rune(s), start, limit)
}

// ParseArgNumber applies ParseArgNumberFromRunes to the stream's own
// source, between nameStart and nameLimit.
func (cs *CharStream) ParseArgNumber(nameStart, nameLimit int) int {
	return ParseArgNumberFromRunes(cs.runes, nameStart, nameLimit)
}

// ParseDoubleValue parses ctx's source in [start, limit) as a signed
// double and emits the appropriate numeric Part into ctx: an ARG_INT part
// if the value is integral and fits losslessly in
// [-part.MaxValue, part.MaxValue], otherwise an ARG_DOUBLE part
// referencing a new slot in ctx's double-value side table.
//
// It fails with an InvalidNumericValue SyntaxError if the slice does not
// parse as a double, or with OutOfBounds if the double side table would
// grow past part.MaxValue+1 entries.
func (ctx *ParseContext) ParseDoubleValue(start, limit int, negativeSyntaxAllowed bool) error {
	raw := ctx.cs.Slice(start, limit)
	goForm := strings.Replace(raw, "∞", "Inf", 1)
	value, err := strconv.ParseFloat(goForm, 64)
	if err != nil {
		return newSyntaxError(InvalidNumericValue, start, ctx.cs.ErrorContext(start),
			"invalid numeric value %q", raw)
	}
	if value < 0 && !negativeSyntaxAllowed {
		return newSyntaxError(InvalidNumericValue, start, ctx.cs.ErrorContext(start),
			"negative value %q not allowed here", raw)
	}
	if value == math.Trunc(value) && value >= -float64(part.MaxValue) && value <= float64(part.MaxValue) {
		ctx.addPart(part.ArgInt, part.Pos(start), limit-start, int(value))
		return nil
	}
	return ctx.addArgDoublePart(value, start, limit-start)
}
