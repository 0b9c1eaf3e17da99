package msgpattern

import (
	"strings"
	"testing"

	"github.com/andreyvit/diff"

	"github.com/robfig/msgpattern/part"
)

// TestMessagePatternS1 checks "Hello {name}." under en.
func TestMessagePatternS1(t *testing.T) {
	mp := New()
	if err := mp.Parse("Hello {name}."); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !mp.HasNamedArguments() {
		t.Error("HasNamedArguments() = false, want true")
	}
	if mp.HasNumberedArguments() {
		t.Error("HasNumberedArguments() = true, want false")
	}
	if mp.NeedsAutoQuoting() {
		t.Error("NeedsAutoQuoting() = true, want false")
	}

	a := mp.Parts()
	if a.CountParts() != 5 {
		t.Fatalf("CountParts() = %d, want 5 (MSG_START, ARG_START, ARG_NAME, ARG_LIMIT, MSG_LIMIT)", a.CountParts())
	}
	wantTypes := []part.TokenType{part.MsgStart, part.ArgStart, part.ArgName, part.ArgLimit, part.MsgLimit}
	for i, want := range wantTypes {
		if got := a.GetPartType(i); got != want {
			t.Errorf("parts[%d].Type = %v, want %v", i, got, want)
		}
	}
	if !a.PartSubstringMatches(2, "name") {
		t.Errorf("GetSubstring(2) = %q, want %q", a.GetSubstring(2), "name")
	}
}

func TestMessagePatternEmptyInput(t *testing.T) {
	mp := New()
	if err := mp.Parse(""); err != nil {
		t.Fatalf("Parse(\"\"): %v", err)
	}
	a := mp.Parts()
	if a.CountParts() != 2 {
		t.Fatalf("CountParts() = %d, want 2", a.CountParts())
	}
	if a.GetPartType(0) != part.MsgStart || a.GetPartType(1) != part.MsgLimit {
		t.Errorf("parts = [%v, %v], want [MSG_START, MSG_LIMIT]", a.GetPartType(0), a.GetPartType(1))
	}
}

// TestAutoQuoteApostropheDeepS5 checks that a loose apostrophe round-trips
// through auto-quoting.
func TestAutoQuoteApostropheDeepS5(t *testing.T) {
	mp := New()
	src := "I don't like it"
	if err := mp.Parse(src); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !mp.NeedsAutoQuoting() {
		t.Fatal("NeedsAutoQuoting() = false, want true")
	}

	var inserts int
	mp.Each(func(i int, p part.Part) bool {
		if p.Type == part.InsertChar {
			inserts++
			if p.Value != 0x27 {
				t.Errorf("INSERT_CHAR value = %#x, want 0x27", p.Value)
			}
		}
		return true
	})
	if inserts != 1 {
		t.Errorf("saw %d INSERT_CHAR parts, want 1", inserts)
	}

	got := mp.AutoQuoteApostropheDeep()
	want := "I don''t like it"
	if got != want {
		t.Errorf("AutoQuoteApostropheDeep() = %q, want %q\n%s", got, want, diff.LineDiff(got, want))
	}

	// Re-parsing the doubled form under DoubleRequired must need no
	// further auto-quoting, and its literal output must match the
	// original.
	reparsed := NewWithMode(DoubleRequired)
	if err := reparsed.Parse(got); err != nil {
		t.Fatalf("re-parse: %v", err)
	}
	if reparsed.NeedsAutoQuoting() {
		t.Error("re-parsed NeedsAutoQuoting() = true, want false")
	}
	if lit := string(AppendReducedApostrophes(got, 0, len([]rune(got)), nil)); lit != src {
		t.Errorf("literal output of %q = %q, want %q", got, lit, src)
	}
}

func TestMessagePatternClear(t *testing.T) {
	mp := New()
	if err := mp.Parse("{x, plural, one{#} other{#}}"); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	mp.Clear()
	if mp.Parts().CountParts() != 0 {
		t.Errorf("CountParts() after Clear = %d, want 0", mp.Parts().CountParts())
	}
	if mp.HasNamedArguments() || mp.HasNumberedArguments() || mp.NeedsAutoQuoting() {
		t.Error("flags not reset by Clear")
	}
	if mp.GetPatternString() != "" {
		t.Errorf("GetPatternString() after Clear = %q, want \"\"", mp.GetPatternString())
	}
}

func TestMessagePatternClearPatternAndSetApostropheMode(t *testing.T) {
	mp := New()
	if mp.GetApostropheMode() != DoubleOptional {
		t.Fatalf("default mode = %v, want DoubleOptional", mp.GetApostropheMode())
	}
	if err := mp.Parse("it's fine"); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	mp.ClearPatternAndSetApostropheMode(DoubleRequired)
	if mp.GetApostropheMode() != DoubleRequired {
		t.Errorf("mode after switch = %v, want DoubleRequired", mp.GetApostropheMode())
	}
	if mp.Parts().CountParts() != 0 {
		t.Errorf("CountParts() after mode switch = %d, want 0", mp.Parts().CountParts())
	}
}

func TestMessagePatternUnmatchedBracesError(t *testing.T) {
	mp := New()
	err := mp.Parse("Hello {name")
	if err == nil {
		t.Fatal("Parse(unmatched brace) = nil error, want an error")
	}
	if !strings.Contains(err.Error(), "UnmatchedBraces") {
		t.Errorf("Parse error = %q, want it to mention UnmatchedBraces", err.Error())
	}
	// Parts emitted before the failure remain inspectable.
	if mp.Parts().CountParts() == 0 {
		t.Error("CountParts() after failed parse = 0, want partial parts retained")
	}
}

func TestValidateArgumentName(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"0", 0},
		{"count", ArgNameNotNumber},
		{"", ArgNameNotValid},
	}
	for _, tt := range tests {
		if got := ValidateArgumentName(tt.in); got != tt.want {
			t.Errorf("ValidateArgumentName(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestAppendReducedApostrophes(t *testing.T) {
	got := AppendReducedApostrophes("it''s", 0, 5, nil)
	want := "it's"
	if string(got) != want {
		t.Errorf("AppendReducedApostrophes = %q, want %q", string(got), want)
	}
}

func TestMessagePatternParsePluralStyleBare(t *testing.T) {
	mp := New()
	if err := mp.ParsePluralStyle("one{# item} other{# items}"); err != nil {
		t.Fatalf("ParsePluralStyle: %v", err)
	}
	if mp.Parts().CountParts() == 0 {
		t.Error("CountParts() = 0 after ParsePluralStyle")
	}
}

func TestMessagePatternParseSelectStyleBare(t *testing.T) {
	mp := New()
	if err := mp.ParseSelectStyle("male{He} female{She} other{They}"); err != nil {
		t.Fatalf("ParseSelectStyle: %v", err)
	}
	if mp.Parts().CountParts() == 0 {
		t.Error("CountParts() = 0 after ParseSelectStyle")
	}
}

func TestMessagePatternParseChoiceStyleBare(t *testing.T) {
	mp := New()
	if err := mp.ParseChoiceStyle("0#no items|1#one item|1<{n} items"); err != nil {
		t.Fatalf("ParseChoiceStyle: %v", err)
	}
	if mp.Parts().CountParts() == 0 {
		t.Error("CountParts() = 0 after ParseChoiceStyle")
	}
}
