package validate

import (
	"github.com/robfig/msgpattern/parse"
	"github.com/robfig/msgpattern/part"
	"github.com/robfig/msgpattern/plural"
)

// PatternValidator checks a single pattern's plural/selectordinal
// selectors for CLDR compliance against a locale. It caches
// one parsed pattern; replacing the pattern string clears the cache.
type PatternValidator struct {
	locale  string
	source  string
	ctx     *parse.ParseContext
	parsed  bool
	parseErr error
}

// NewPatternValidator returns a validator for locale, with no pattern
// installed yet. Call SetPatternString before any query that needs a
// parse.
func NewPatternValidator(locale string) *PatternValidator {
	return &PatternValidator{locale: locale}
}

// FromPattern returns a validator wrapping an already-parsed pattern,
// skipping the lazy-parse step entirely.
func FromPattern(locale string, ctx *parse.ParseContext) *PatternValidator {
	return &PatternValidator{locale: locale, ctx: ctx, parsed: true}
}

// SetPatternString installs a new pattern string to validate, clearing
// any previously cached parse or parse error, and returns v for chaining.
func (v *PatternValidator) SetPatternString(s string) *PatternValidator {
	v.source = s
	v.ctx = nil
	v.parsed = false
	v.parseErr = nil
	return v
}

// GetLanguage returns the locale this validator checks against.
func (v *PatternValidator) GetLanguage() string {
	return v.locale
}

func (v *PatternValidator) ensureParsed() {
	if v.parsed {
		return
	}
	ctx, err := parse.NewParser(parse.DoubleOptional).Parse(v.source)
	v.ctx = ctx
	v.parseErr = err
	v.parsed = true
}

// IsValidSyntax reports whether the cached parse (triggering one if
// needed) succeeded.
func (v *PatternValidator) IsValidSyntax() bool {
	v.ensureParsed()
	return v.parseErr == nil
}

// GetSyntaxException returns the stored parse error, if any.
func (v *PatternValidator) GetSyntaxException() error {
	v.ensureParsed()
	return v.parseErr
}

// GetPattern triggers a parse if needed and returns the parsed context.
func (v *PatternValidator) GetPattern() (*parse.ParseContext, error) {
	v.ensureParsed()
	return v.ctx, v.parseErr
}

// ContainsComplexSyntax reports whether any part's ArgType is CHOICE,
// SELECT, or has a plural style. It never raises: a failed parse that
// still produced partial parts is consulted as-is.
func (v *PatternValidator) ContainsComplexSyntax() bool {
	v.ensureParsed()
	if v.ctx == nil {
		return false
	}
	for _, p := range v.ctx.Parts() {
		if p.Type != part.ArgStart {
			continue
		}
		t := part.ArgType(p.Value)
		if t == part.Choice || t == part.Select || t.HasPluralStyle() {
			return true
		}
	}
	return false
}

// ValidatePluralCompliance walks every plural/selectordinal selector in
// the pattern and returns
// (nil, *PluralCompliance) if any selector was not a valid CLDR category
// name, (*PluralComplianceWarning, nil) if every selector was valid but
// some were locale-inapplicable or a required category was missing, or
// (nil, nil) if there are no issues.
func (v *PatternValidator) ValidatePluralCompliance() (*PluralComplianceWarning, error) {
	ctx, err := v.GetPattern()
	if err != nil {
		return nil, err
	}
	a := parse.NewPartAccessor(ctx)
	parts := ctx.Parts()

	var errSelectors, foundUnion, missingUnion []string
	var warnings []ArgumentWarning

	for i, p := range parts {
		if p.Type != part.ArgStart {
			continue
		}
		argType := part.ArgType(p.Value)
		if !argType.HasPluralStyle() {
			continue
		}
		limit := a.GetLimitPartIndex(i)
		if limit == i {
			continue
		}

		name := ""
		if i+1 < len(parts) {
			switch parts[i+1].Type {
			case part.ArgName, part.ArgNumber:
				name = a.GetSubstring(i + 1)
			}
		}

		var expected []string
		typeLabel := "plural"
		if argType == part.Selectordinal {
			expected = plural.GetOrdinalCategories(v.locale)
			typeLabel = "selectordinal"
		} else {
			expected = plural.GetCardinalCategories(v.locale)
		}
		expectedSet := make(map[string]bool, len(expected))
		for _, e := range expected {
			expectedSet[e] = true
		}

		var found, numeric, wrongLocale, invalid []string
		seen := make(map[string]bool)

		depth := 0
		for j := i + 1; j < limit; j++ {
			switch parts[j].Type {
			case part.MsgStart:
				depth++
			case part.MsgLimit:
				depth--
			case part.ArgSelector:
				if depth != 0 {
					continue
				}
				sel := a.GetSubstring(j)
				if isNumericSelector(sel) {
					numeric = append(numeric, sel)
					continue
				}
				if sel == plural.Other {
					if !seen[sel] {
						seen[sel] = true
						found = append(found, sel)
					}
					continue
				}
				if !plural.IsValidCategory(sel) {
					invalid = append(invalid, sel)
					continue
				}
				if !seen[sel] {
					seen[sel] = true
					found = append(found, sel)
				}
				if !expectedSet[sel] {
					wrongLocale = append(wrongLocale, sel)
				}
			}
		}

		if len(invalid) > 0 {
			errSelectors = append(errSelectors, invalid...)
			foundUnion = append(foundUnion, found...)
			missingUnion = append(missingUnion, missingCategories(expected, seen)...)
			continue
		}

		missing := missingCategories(expected, seen)
		if len(wrongLocale) > 0 || len(missing) > 0 {
			warnings = append(warnings, ArgumentWarning{
				ArgumentName: name,
				ArgumentType: typeLabel,
				Expected:     expected,
				Found:        found,
				Numeric:      numeric,
				WrongLocale:  wrongLocale,
				Missing:      missing,
			})
		}
	}

	if len(errSelectors) > 0 {
		return nil, &PluralCompliance{
			Locale:  v.locale,
			Errors:  dedupe(errSelectors),
			Found:   dedupe(foundUnion),
			Missing: dedupe(missingUnion),
		}
	}
	if len(warnings) > 0 {
		return &PluralComplianceWarning{Locale: v.locale, Arguments: warnings}, nil
	}
	return nil, nil
}

func isNumericSelector(sel string) bool {
	if len(sel) < 2 || sel[0] != '=' {
		return false
	}
	for _, r := range sel[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func missingCategories(expected []string, seen map[string]bool) []string {
	var missing []string
	for _, e := range expected {
		if e == plural.Other {
			continue
		}
		if !seen[e] {
			missing = append(missing, e)
		}
	}
	return missing
}

func dedupe(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
