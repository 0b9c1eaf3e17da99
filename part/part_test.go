package part

import "testing"

func TestArgTypePredicates(t *testing.T) {
	cases := []struct {
		typ              ArgType
		hasPluralStyle   bool
		isComplexType    bool
	}{
		{None, false, false},
		{Simple, false, false},
		{Choice, false, true},
		{Plural, true, true},
		{Select, false, true},
		{Selectordinal, true, true},
	}
	for _, c := range cases {
		if got := c.typ.HasPluralStyle(); got != c.hasPluralStyle {
			t.Errorf("%v.HasPluralStyle() = %v, want %v", c.typ, got, c.hasPluralStyle)
		}
		if got := c.typ.IsComplexType(); got != c.isComplexType {
			t.Errorf("%v.IsComplexType() = %v, want %v", c.typ, got, c.isComplexType)
		}
	}
}

func TestTokenTypeString(t *testing.T) {
	if got, want := MsgStart.String(), "MSG_START"; got != want {
		t.Errorf("MsgStart.String() = %q, want %q", got, want)
	}
	if got, want := ReplaceNumber.String(), "REPLACE_NUMBER"; got != want {
		t.Errorf("ReplaceNumber.String() = %q, want %q", got, want)
	}
}

func TestPartLimit(t *testing.T) {
	p := Part{Type: ArgName, Index: 7, Length: 4}
	if got, want := p.Limit(), Pos(11); got != want {
		t.Errorf("Limit() = %d, want %d", got, want)
	}
}
