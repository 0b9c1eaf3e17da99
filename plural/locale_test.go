package plural

import "testing"

func TestNormalizeLocale(t *testing.T) {
	cases := map[string]string{
		"en":      "en",
		"EN":      "en",
		"en-US":   "en",
		"en_US":   "en",
		"pt_br":   "pt",
		"pt-BR":   "pt",
		"":        "",
		"zh-Hant": "zh",
		"x":       "x",
	}
	for in, want := range cases {
		if got := normalizeLocale(in); got != want {
			t.Errorf("normalizeLocale(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCanonicalLocaleReducesToBase(t *testing.T) {
	if got := canonicalLocale("pt-Latn-BR"); got != "pt" {
		t.Errorf("canonicalLocale(pt-Latn-BR) = %q, want pt", got)
	}
	if got := canonicalLocale("not a real locale!!"); got == "" {
		t.Error("canonicalLocale on an unparseable string should still return something usable")
	}
}

func TestResolveLocaleKeyFallsBackToCanonical(t *testing.T) {
	known := func(k string) bool { return k == "pt" }
	if got := resolveLocaleKey("pt-Latn-BR", known); got != "pt" {
		t.Errorf("resolveLocaleKey(pt-Latn-BR) = %q, want pt", got)
	}

	// "iw" is the deprecated ISO 639 code for Hebrew; the cheap normalizer
	// leaves it as "iw" (already 2 ASCII letters), which isn't a known
	// key, so resolution must fall back to BCP 47 parsing to land on the
	// canonical "he".
	known = func(k string) bool { return k == "he" }
	if got := resolveLocaleKey("iw", known); got != "he" {
		t.Errorf("resolveLocaleKey(iw) = %q, want he (via canonical fallback)", got)
	}
}
