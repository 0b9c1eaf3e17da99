package parse

import "github.com/robfig/msgpattern/part"

// PartAccessor provides read-only, index-based navigation over a parsed
// Part stream, favoring thin accessor methods over exposing raw slices.
type PartAccessor struct {
	ctx *ParseContext
}

// NewPartAccessor wraps ctx. The accessor is a view: it does not copy the
// part list, so it always reflects the context's current state, including
// any later re-parse of the same context.
func NewPartAccessor(ctx *ParseContext) *PartAccessor {
	return &PartAccessor{ctx: ctx}
}

// CountParts returns the number of parts in the stream.
func (a *PartAccessor) CountParts() int {
	return len(a.ctx.parts)
}

// GetPart returns the part at i, or a *SyntaxError of Kind OutOfBounds if
// i is not a valid part index.
func (a *PartAccessor) GetPart(i int) (part.Part, error) {
	if i < 0 || i >= len(a.ctx.parts) {
		return part.Part{}, newSyntaxError(OutOfBounds, i, "", "part index %d out of range [0,%d)", i, len(a.ctx.parts))
	}
	return a.ctx.parts[i], nil
}

// GetPartType returns the Type of the part at i.
func (a *PartAccessor) GetPartType(i int) part.TokenType {
	return a.ctx.parts[i].Type
}

// GetPatternIndex returns the source code-point index of the part at i.
func (a *PartAccessor) GetPatternIndex(i int) part.Pos {
	return a.ctx.parts[i].Index
}

// GetSubstring returns the source text spanned by the part at i.
func (a *PartAccessor) GetSubstring(i int) string {
	p := a.ctx.parts[i]
	return a.ctx.cs.Slice(int(p.Index), int(p.Limit()))
}

// PartSubstringMatches reports whether the part at i's source span equals s.
func (a *PartAccessor) PartSubstringMatches(i int, s string) bool {
	p := a.ctx.parts[i]
	length := int(p.Limit()) - int(p.Index)
	if length != len([]rune(s)) {
		return false
	}
	return a.GetSubstring(i) == s
}

// GetNumericValue returns the numeric value carried by an ARG_INT or
// ARG_DOUBLE part at i, or part.NoNumericValue if the part does not carry
// one.
func (a *PartAccessor) GetNumericValue(i int) float64 {
	p := a.ctx.parts[i]
	switch p.Type {
	case part.ArgInt:
		return float64(p.Value)
	case part.ArgDouble:
		if v, ok := a.ctx.doubleValueAt(p.Value); ok {
			return v
		}
	}
	return part.NoNumericValue
}

// GetPluralOffset returns the plural offset value for the plural/
// selectordinal style that starts at the part type at i (an ARG_START
// part whose style opens with an ARG_INT/ARG_DOUBLE-carrying offset), or
// 0 if there is none. An explicit offset: clause is always the first
// part emitted inside the style, immediately after the ARG_NAME/
// ARG_NUMBER that follows ARG_START.
func (a *PartAccessor) GetPluralOffset(i int) float64 {
	if i+2 >= len(a.ctx.parts) {
		return 0
	}
	next := a.ctx.parts[i+2]
	if next.Type == part.ArgInt || next.Type == part.ArgDouble {
		return a.GetNumericValue(i + 2)
	}
	return 0
}

// GetLimitPartIndex returns the index of the *_LIMIT part matching the
// *_START part at startIndex, or startIndex itself if it does not name a
// *_START part or has no recorded match (the latter only happens after a
// failed parse leaves a dangling start).
func (a *PartAccessor) GetLimitPartIndex(startIndex int) int {
	if limit, ok := a.ctx.limitPartIndexes[startIndex]; ok {
		return limit
	}
	return startIndex
}
