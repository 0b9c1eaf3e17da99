package validate

import (
	"github.com/robfig/msgpattern/parse"
	"github.com/robfig/msgpattern/part"
)

// complexEntry is one (argument_name, complex_arg_type) occurrence
// extracted from a pattern in source order.
type complexEntry struct {
	name string
	typ  part.ArgType
}

// PatternComparator checks that every complex-argument occurrence in a
// source pattern has a compatible occurrence in a target pattern,
// admitting differing branch counts via multiset matching.
type PatternComparator struct {
	source *PatternValidator
	target *PatternValidator
}

// NewPatternComparator builds a comparator from raw locale/pattern pairs.
func NewPatternComparator(sourceLocale, targetLocale, sourcePattern, targetPattern string) *PatternComparator {
	return &PatternComparator{
		source: NewPatternValidator(sourceLocale).SetPatternString(sourcePattern),
		target: NewPatternValidator(targetLocale).SetPatternString(targetPattern),
	}
}

// FromValidators builds a comparator from two already-configured validators.
func FromValidators(source, target *PatternValidator) *PatternComparator {
	return &PatternComparator{source: source, target: target}
}

// FromPatterns builds a comparator from two already-parsed contexts.
func FromPatterns(sourceLocale, targetLocale string, source, target *parse.ParseContext) *PatternComparator {
	return &PatternComparator{
		source: FromPattern(sourceLocale, source),
		target: FromPattern(targetLocale, target),
	}
}

// SourceContainsComplexSyntax reports whether the source pattern has any
// CHOICE/SELECT/plural-style argument.
func (c *PatternComparator) SourceContainsComplexSyntax() bool {
	return c.source.ContainsComplexSyntax()
}

// TargetContainsComplexSyntax reports whether the target pattern has any
// CHOICE/SELECT/plural-style argument.
func (c *PatternComparator) TargetContainsComplexSyntax() bool {
	return c.target.ContainsComplexSyntax()
}

func extractComplexEntries(v *PatternValidator) ([]complexEntry, error) {
	ctx, err := v.GetPattern()
	if err != nil {
		return nil, err
	}
	a := parse.NewPartAccessor(ctx)
	parts := ctx.Parts()
	var entries []complexEntry
	for i, p := range parts {
		if p.Type != part.ArgStart {
			continue
		}
		argType := part.ArgType(p.Value)
		if !argType.IsComplexType() {
			continue
		}
		name := ""
		if i+1 < len(parts) {
			switch parts[i+1].Type {
			case part.ArgName, part.ArgNumber:
				name = a.GetSubstring(i + 1)
			}
		}
		entries = append(entries, complexEntry{name: name, typ: argType})
	}
	return entries, nil
}

// Validate compares complex-argument occurrences between source and
// target using a unified signature. If either pattern fails to parse it
// returns a nil *ComparisonResult and the parse error. Otherwise it
// returns a non-nil *ComparisonResult, together with a non-nil error only
// when the target is missing an occurrence the source requires outright
// (MissingComplexForm).
// If the source contains no complex syntax at all, Validate is a no-op.
func (c *PatternComparator) Validate() (*ComparisonResult, error) {
	if !c.SourceContainsComplexSyntax() {
		return &ComparisonResult{}, nil
	}

	sourceEntries, err := extractComplexEntries(c.source)
	if err != nil {
		return nil, err
	}
	targetEntries, err := extractComplexEntries(c.target)
	if err != nil {
		return nil, err
	}

	// A (name, type) pair is only an error if the target has ZERO total
	// occurrences of it anywhere; any nonzero-but-unequal count is a
	// warning, admitting source/target branch counts to differ (e.g. a
	// four-case SELECTORDINAL each wrapping a PLURAL vs. a two-case one).
	targetTotal := make(map[complexEntry]int, len(targetEntries))
	firstTargetType := make(map[string]part.ArgType)
	for _, e := range targetEntries {
		targetTotal[e]++
		if _, ok := firstTargetType[e.name]; !ok {
			firstTargetType[e.name] = e.typ
		}
	}

	sourceTotal := make(map[complexEntry]int, len(sourceEntries))
	for _, e := range sourceEntries {
		sourceTotal[e]++
	}

	result := &ComparisonResult{}
	seen := make(map[complexEntry]bool, len(sourceEntries))

	for _, e := range sourceEntries {
		if seen[e] {
			continue
		}
		seen[e] = true

		tc := targetTotal[e]
		sc := sourceTotal[e]

		if tc == 0 {
			targetType := ""
			if t, ok := firstTargetType[e.name]; ok {
				targetType = t.String()
			}
			return result, &MissingComplexForm{
				ArgumentName: e.name,
				SourceType:   e.typ.String(),
				TargetType:   targetType,
				SourceLocale: c.source.GetLanguage(),
				TargetLocale: c.target.GetLanguage(),
			}
		}
		if sc > tc {
			result.HasWarnings = true
			result.SourceWarnings = append(result.SourceWarnings, ComparisonWarning{
				ArgumentName: e.name, ArgType: e.typ.String(), SourceCount: sc, TargetCount: tc,
			})
		} else if sc < tc {
			result.HasWarnings = true
			result.TargetWarnings = append(result.TargetWarnings, ComparisonWarning{
				ArgumentName: e.name, ArgType: e.typ.String(), SourceCount: sc, TargetCount: tc,
			})
		}
	}

	return result, nil
}
