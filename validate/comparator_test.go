package validate

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/robfig/msgpattern/parse"
)

func mustParseCtx(t *testing.T, src string) *parse.ParseContext {
	t.Helper()
	ctx, err := parse.NewParser(parse.DoubleOptional).Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	return ctx
}

func TestComparatorNoopWhenSourceHasNoComplexSyntax(t *testing.T) {
	c := NewPatternComparator("en", "fr", "hello {name}", "bonjour")
	result, err := c.Validate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.HasWarnings {
		t.Errorf("expected no warnings, got %+v", result)
	}
}

func TestComparatorExactMatch(t *testing.T) {
	c := NewPatternComparator("en", "fr",
		"{count, plural, one{# item} other{# items}}",
		"{count, plural, one{# article} other{# articles}}")
	result, err := c.Validate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.HasWarnings {
		t.Errorf("expected no warnings for a matching PLURAL/PLURAL pair, got %+v", result)
	}
}

func TestComparatorMissingComplexFormRaises(t *testing.T) {
	c := NewPatternComparator("en", "fr",
		"{count, plural, one{# item} other{# items}}",
		"no plural here")
	_, err := c.Validate()
	mf, ok := err.(*MissingComplexForm)
	if !ok {
		t.Fatalf("err = %v (%T), want *MissingComplexForm", err, err)
	}
	if mf.ArgumentName != "count" || mf.SourceType != "PLURAL" {
		t.Errorf("MissingComplexForm = %+v, unexpected fields", mf)
	}
	if mf.TargetType != "" {
		t.Errorf("TargetType = %q, want empty (name absent from target)", mf.TargetType)
	}
}

func TestComparatorTypeMismatchRaises(t *testing.T) {
	c := NewPatternComparator("en", "fr",
		"{count, plural, one{# item} other{# items}}",
		"{count, select, male{x} other{y}}")
	_, err := c.Validate()
	mf, ok := err.(*MissingComplexForm)
	if !ok {
		t.Fatalf("err = %v (%T), want *MissingComplexForm", err, err)
	}
	if mf.TargetType != "SELECT" {
		t.Errorf("TargetType = %q, want SELECT (same name, incompatible type)", mf.TargetType)
	}
}

func TestComparatorAdmitsDifferingBranchCounts(t *testing.T) {
	// Source nests two PLURAL branches under a SELECTORDINAL; target
	// nests only one. The extra source PLURAL occurrence should surface
	// as a warning, not an error, since the target has at least one.
	source := "{n, selectordinal, one{{m, plural, one{#} other{#}}} other{{m, plural, one{#} other{#}}}}"
	target := "{n, selectordinal, one{{m, plural, one{#} other{#}}} other{x}}"
	c := NewPatternComparator("en", "en", source, target)
	result, err := c.Validate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.HasWarnings {
		t.Error("expected a warning for the source's excess PLURAL occurrence")
	}
	if len(result.SourceWarnings) == 0 {
		t.Error("expected at least one source warning")
	}
}

// TestComparatorS6 checks that a SELECTORDINAL nesting two PLURAL branches
// in source, compared against a target that drops the PLURAL entirely, raises
// MissingComplexForm naming "totalYears" / PLURAL / an empty target type.
func TestComparatorS6(t *testing.T) {
	source := "{currentYear, selectordinal, " +
		"one{{totalYears, plural, one{a} other{b} many{c}}} " +
		"other{{totalYears, plural, one{a} other{b} many{c}}}}"
	target := "{currentYear, selectordinal, one{x} other{y}}"
	c := NewPatternComparator("en", "fr", source, target)
	_, err := c.Validate()
	mf, ok := err.(*MissingComplexForm)
	if !ok {
		t.Fatalf("err = %v (%T), want *MissingComplexForm", err, err)
	}
	want := &MissingComplexForm{
		ArgumentName: "totalYears",
		SourceType:   "PLURAL",
		TargetType:   "",
		SourceLocale: "en",
		TargetLocale: "fr",
	}
	if diff := cmp.Diff(want, mf); diff != "" {
		t.Errorf("MissingComplexForm mismatch (-want +got):\n%s", diff)
	}
}

func TestComparatorFromPatterns(t *testing.T) {
	srcCtx := mustParseCtx(t, "{g, select, male{he} other{they}}")
	tgtCtx := mustParseCtx(t, "{g, select, male{il} other{ils}}")
	c := FromPatterns("en", "fr", srcCtx, tgtCtx)
	result, err := c.Validate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.HasWarnings {
		t.Errorf("expected no warnings, got %+v", result)
	}
}
