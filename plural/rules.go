package plural

// GetCardinalFormIndex returns the index within GetCardinalCategories(locale)
// that n classifies into.
func GetCardinalFormIndex(locale string, n int64) int {
	return cardinalRuleForLocale(locale).Classify(n)
}

// GetCardinalCategoryName returns the CLDR cardinal category name for n
// under locale.
func GetCardinalCategoryName(locale string, n int64) string {
	return cardinalRuleForLocale(locale).CategoryName(n)
}

// GetCardinalCategories returns the ordered category list a locale's
// cardinal rule distinguishes between.
func GetCardinalCategories(locale string) []string {
	return cardinalRuleForLocale(locale).Categories
}

// GetOrdinalFormIndex returns the index within GetOrdinalCategories(locale)
// that n classifies into.
func GetOrdinalFormIndex(locale string, n int64) int {
	return ordinalRuleForLocale(locale).Classify(n)
}

// GetOrdinalCategoryName returns the CLDR ordinal category name for n
// under locale.
func GetOrdinalCategoryName(locale string, n int64) string {
	return ordinalRuleForLocale(locale).CategoryName(n)
}

// GetOrdinalCategories returns the ordered category list a locale's
// ordinal rule distinguishes between.
func GetOrdinalCategories(locale string) []string {
	return ordinalRuleForLocale(locale).Categories
}

// GetPluralCount returns len(GetCardinalCategories(locale)).
func GetPluralCount(locale string) int {
	return len(GetCardinalCategories(locale))
}

func cardinalRuleForLocale(locale string) *Rule {
	key := resolveLocaleKey(locale, func(k string) bool {
		_, ok := localeToCardinalRule[k]
		return ok
	})
	return cardinalRuleFor(key)
}

func ordinalRuleForLocale(locale string) *Rule {
	key := resolveLocaleKey(locale, func(k string) bool {
		_, ok := localeToOrdinalRule[k]
		return ok
	})
	return ordinalRuleFor(key)
}
