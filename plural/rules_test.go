package plural

import "testing"

func TestGetCardinalCategoriesEnglish(t *testing.T) {
	cats := GetCardinalCategories("en")
	if len(cats) != 2 || cats[0] != One || cats[1] != Other {
		t.Errorf("en cardinal categories = %v, want [one other]", cats)
	}
	if got := GetCardinalCategoryName("en", 1); got != One {
		t.Errorf("en cardinal(1) = %q, want one", got)
	}
	if got := GetCardinalCategoryName("en", 2); got != Other {
		t.Errorf("en cardinal(2) = %q, want other", got)
	}
}

func TestGetCardinalCategoriesArabic(t *testing.T) {
	cats := GetCardinalCategories("ar")
	want := []string{Zero, One, Two, Few, Many, Other}
	if len(cats) != len(want) {
		t.Fatalf("ar cardinal categories = %v, want %v", cats, want)
	}
	for i := range want {
		if cats[i] != want[i] {
			t.Errorf("ar cardinal categories[%d] = %q, want %q", i, cats[i], want[i])
		}
	}
}

func TestGetPluralCount(t *testing.T) {
	if got := GetPluralCount("ja"); got != 1 {
		t.Errorf("GetPluralCount(ja) = %d, want 1", got)
	}
	if got := GetPluralCount("ar"); got != 6 {
		t.Errorf("GetPluralCount(ar) = %d, want 6", got)
	}
}

func TestGetOrdinalCategoriesDefaultsToOther(t *testing.T) {
	cats := GetOrdinalCategories("ja")
	if len(cats) != 1 || cats[0] != Other {
		t.Errorf("ja ordinal categories = %v, want [other]", cats)
	}
}

func TestGetOrdinalFormIndexEnglish(t *testing.T) {
	if got := GetOrdinalFormIndex("en", 1); got != 0 {
		t.Errorf("en ordinal index(1) = %d, want 0", got)
	}
	if got := GetOrdinalCategoryName("en", 11); got != Other {
		t.Errorf("en ordinal(11) = %q, want other", got)
	}
}

func TestLocaleCasingAndRegionDoNotChangeClassification(t *testing.T) {
	variants := []string{"en", "EN", "en-US", "en_US"}
	for _, v := range variants {
		if got := GetCardinalCategoryName(v, 2); got != Other {
			t.Errorf("GetCardinalCategoryName(%q, 2) = %q, want other", v, got)
		}
	}
}

func TestAllCardinalRulesClassifyWithinBounds(t *testing.T) {
	for idx, r := range cardinalRules {
		for n := int64(0); n < 200; n++ {
			i := r.Classify(n)
			if i < 0 || i >= len(r.Categories) {
				t.Fatalf("cardinal rule %d: Classify(%d) = %d out of bounds for categories %v", idx, n, i, r.Categories)
			}
		}
	}
}
