// Package validate implements PatternValidator and PatternComparator:
// plural-category compliance checking for a single pattern, and
// structural compatibility checking between a source and target pattern
// pair.
//
// Grounded on soymsg/pomsg/pomsg.go's newBundle, which already pairs a
// source message ID against a target locale's translated plural-form
// array and rejects count mismatches; this package generalises that
// pairing into an ordered-list/multiset matching rule for arbitrary
// nested complex arguments.
package validate

import (
	"fmt"
	"strings"
)

// PluralCompliance is raised by PatternValidator.ValidatePluralCompliance
// when a pattern's plural/selectordinal argument contains a selector that
// is not a valid CLDR category name at all (not merely inapplicable to
// the locale).
type PluralCompliance struct {
	Locale   string
	Errors   []string // invalid selector text, union across all offending arguments
	Found    []string // all non-numeric selectors seen, union across offending arguments
	Missing  []string // union of expected-but-absent categories
}

func (e *PluralCompliance) Error() string {
	return fmt.Sprintf("invalid plural category selector(s) %s for locale %q (found %s, missing %s)",
		strings.Join(e.Errors, ", "), e.Locale, strings.Join(e.Found, ", "), strings.Join(e.Missing, ", "))
}

// ArgumentWarning is one offending plural/selectordinal argument recorded
// by PluralComplianceWarning.
type ArgumentWarning struct {
	ArgumentName   string
	ArgumentType   string // "plural" or "selectordinal"
	Expected       []string
	Found          []string
	Numeric        []string // selectors of the form =N
	WrongLocale    []string // valid CLDR names, but not in Expected
	Missing        []string
}

// PluralComplianceWarning is returned (not raised) when every selector is
// at least a valid CLDR category name, but one or more arguments use
// categories inapplicable to the locale or omit a required category.
type PluralComplianceWarning struct {
	Locale    string
	Arguments []ArgumentWarning
}

func (w *PluralComplianceWarning) Error() string {
	return fmt.Sprintf("plural compliance warnings for locale %q on %d argument(s)", w.Locale, len(w.Arguments))
}

// MissingComplexForm is raised by PatternComparator.Validate when the
// target pattern has no occurrence at all of a (name, type) pair the
// source requires.
type MissingComplexForm struct {
	ArgumentName  string
	SourceType    string
	TargetType    string // "" if the name is absent from target entirely
	SourceLocale  string
	TargetLocale  string
}

func (e *MissingComplexForm) Error() string {
	if e.TargetType == "" {
		return fmt.Sprintf("target pattern (%s) has no %s argument named %q present in source (%s)",
			e.TargetLocale, e.SourceType, e.ArgumentName, e.SourceLocale)
	}
	return fmt.Sprintf("target pattern (%s) argument %q is %s, source (%s) requires %s",
		e.TargetLocale, e.ArgumentName, e.TargetType, e.SourceLocale, e.SourceType)
}

// ComparisonWarning records a (name, type) pair that source and target
// both use, but a different number of times — allowed, but surfaced for
// review. It is listed in SourceWarnings when the source has more
// occurrences and in TargetWarnings when the target has more.
type ComparisonWarning struct {
	ArgumentName string
	ArgType      string
	SourceCount  int
	TargetCount  int
}

// ComparisonResult is returned by PatternComparator.Validate. Validate
// returns a *ComparisonResult (possibly with empty warning slices)
// whenever both patterns parse, together with a non-nil error only when a
// required form is missing outright; on a parse failure it returns nil
// and the parse error.
type ComparisonResult struct {
	HasWarnings     bool
	SourceWarnings  []ComparisonWarning
	TargetWarnings  []ComparisonWarning
}
