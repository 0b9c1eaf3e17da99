package plural

import (
	"strings"

	"golang.org/x/text/language"
)

// normalizeLocale implements CLDR locale key derivation: lowercase,
// split on '-' or '_', take the first non-empty part, and use it as the
// rule-table key if it is 2-3 ASCII letters; otherwise use the whole
// lowercased string verbatim. This reduces "pt_br" and "pt-BR" to the
// same key as plain "pt" — only the primary language subtag reaches
// localeToCardinalRule.
func normalizeLocale(locale string) string {
	lower := strings.ToLower(locale)
	if lower == "" {
		return ""
	}
	parts := strings.FieldsFunc(lower, func(r rune) bool { return r == '-' || r == '_' })
	if len(parts) == 0 {
		return lower
	}
	first := parts[0]
	if len(first) >= 2 && len(first) <= 3 && isASCIILetters(first) {
		return first
	}
	return lower
}

func isASCIILetters(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// canonicalLocale uses golang.org/x/text/language (grounded on
// soymsg/pomsg/fallback.go's tag.Raw() fallback chain) to resolve a locale
// string that the plain-string normalizer above doesn't recognize directly
// (e.g. language tags with scripts or alternate casings) down to its base
// language subtag before falling back further.
func canonicalLocale(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return normalizeLocale(locale)
	}
	base, _ := tag.Base()
	return strings.ToLower(base.String())
}

// resolveLocaleKey tries the cheap normalizer first, then falls back to
// BCP 47 parsing for anything the cheap path wouldn't have handled
// correctly (e.g. "pt-Latn-BR" reducing to "pt").
func resolveLocaleKey(locale string, known func(string) bool) string {
	key := normalizeLocale(locale)
	if known(key) {
		return key
	}
	if canon := canonicalLocale(locale); canon != key && known(canon) {
		return canon
	}
	return key
}
