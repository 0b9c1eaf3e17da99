package plural

// Ordinal rules. Default is rule 0 ([other]).

var ordinalRule0 = &Rule{
	Categories: []string{Other},
	Classify:   func(n int64) int { return 0 },
}

// English-like: one, two, few, other (1st, 2nd, 3rd, 4th...).
var ordinalRuleEnglish = &Rule{
	Categories: []string{One, Two, Few, Other},
	Classify: func(n int64) int {
		m10, m100 := n%10, n%100
		switch {
		case m10 == 1 && m100 != 11:
			return 0
		case m10 == 2 && m100 != 12:
			return 1
		case m10 == 3 && m100 != 13:
			return 2
		default:
			return 3
		}
	},
}

// French-like: one, other.
var ordinalRuleFrench = &Rule{
	Categories: []string{One, Other},
	Classify: func(n int64) int {
		if n == 1 {
			return 0
		}
		return 1
	},
}

// Macedonian: one, two, many, other.
var ordinalRuleMacedonian = &Rule{
	Categories: []string{One, Two, Many, Other},
	Classify: func(n int64) int {
		m10, m100 := n%10, n%100
		switch {
		case m10 == 1 && m100 != 11:
			return 0
		case m10 == 2 && m100 != 12:
			return 1
		case m10 == 7 || m10 == 8:
			if m100 != 17 && m100 != 18 {
				return 2
			}
			return 3
		default:
			return 3
		}
	},
}

// Welsh: zero, one, two, few, many, other.
var ordinalRuleWelsh = &Rule{
	Categories: []string{Zero, One, Two, Few, Many, Other},
	Classify: func(n int64) int {
		switch {
		case n == 0 || n == 7 || n == 8 || n == 9:
			return 0
		case n == 1:
			return 1
		case n == 2:
			return 2
		case n == 3 || n == 4:
			return 3
		case n == 5 || n == 6:
			return 4
		default:
			return 5
		}
	},
}

// Scottish Gaelic: one, two, few, other.
var ordinalRuleScottishGaelic = &Rule{
	Categories: []string{One, Two, Few, Other},
	Classify: func(n int64) int {
		switch {
		case n == 1 || n == 11:
			return 0
		case n == 2 || n == 12:
			return 1
		case n == 3 || n == 13:
			return 2
		default:
			return 3
		}
	},
}

// Italian: many, other.
var ordinalRuleItalian = &Rule{
	Categories: []string{Many, Other},
	Classify: func(n int64) int {
		if n == 8 || n == 11 || n == 80 || n == 800 {
			return 0
		}
		return 1
	},
}

// Kazakh/Azerbaijani/Georgian-like: many, other.
var ordinalRuleKazakh = &Rule{
	Categories: []string{Many, Other},
	Classify: func(n int64) int {
		m10, m100 := n%10, n%100
		if (m10 == 6 || m100 == 6 || m10 == 9 || m100 == 9) && m100 != 12 && m100 != 19 && m100 != 16 {
			return 0
		}
		return 1
	},
}

// Hungarian/Ukrainian/Turkmen-like: few, other.
var ordinalRuleHungarian = &Rule{
	Categories: []string{Few, Other},
	Classify: func(n int64) int {
		if n == 1 || n == 5 {
			return 0
		}
		return 1
	},
}

// Bengali/Assamese/Hindi-like: one, other.
var ordinalRuleBengali = &Rule{
	Categories: []string{One, Other},
	Classify: func(n int64) int {
		if n == 1 || n == 5 || n == 7 || n == 8 || n == 9 || n == 10 {
			return 0
		}
		return 1
	},
}

// Gujarati: one, two, few, many, other.
var ordinalRuleGujarati = &Rule{
	Categories: []string{One, Two, Few, Many, Other},
	Classify: func(n int64) int {
		switch {
		case n == 1:
			return 0
		case n == 2 || n == 3:
			return 1
		case n == 4:
			return 2
		case n == 6:
			return 3
		default:
			return 4
		}
	},
}

// Kannada: one, two, few, other.
var ordinalRuleKannada = &Rule{
	Categories: []string{One, Two, Few, Other},
	Classify: func(n int64) int {
		if n == 1 || n == 2 || n == 3 {
			return 0
		}
		if n == 6 {
			return 2
		}
		return 3
	},
}

// Marathi: one, other.
var ordinalRuleMarathi = &Rule{
	Categories: []string{One, Other},
	Classify: func(n int64) int {
		if n == 1 {
			return 0
		}
		return 1
	},
}

// Odia: one, two, few, many, other.
var ordinalRuleOdia = &Rule{
	Categories: []string{One, Two, Few, Many, Other},
	Classify: func(n int64) int {
		switch {
		case n == 1:
			return 0
		case n == 2 || n == 3:
			return 1
		case n == 4:
			return 2
		case n == 6:
			return 3
		default:
			return 4
		}
	},
}

// Telugu: one, two, many, other.
var ordinalRuleTelugu = &Rule{
	Categories: []string{One, Two, Many, Other},
	Classify: func(n int64) int {
		switch {
		case n == 1:
			return 0
		case n == 2 || n == 3:
			return 1
		case n == 6:
			return 2
		default:
			return 3
		}
	},
}

// Nepali: one, few, other.
var ordinalRuleNepali = &Rule{
	Categories: []string{One, Few, Other},
	Classify: func(n int64) int {
		switch {
		case n >= 1 && n <= 4:
			return 0
		case n >= 5 && n <= 9 || n == 0:
			return 1
		default:
			return 2
		}
	},
}

// Albanian: one, two, few, other.
var ordinalRuleAlbanian = &Rule{
	Categories: []string{One, Two, Few, Other},
	Classify: func(n int64) int {
		m10, m100 := n%10, n%100
		switch {
		case n == 1:
			return 0
		case m10 == 2 && m100 != 12:
			return 1
		case m10 == 4 && m100 != 14:
			return 2
		default:
			return 3
		}
	},
}

var ordinalRules = []*Rule{
	ordinalRule0, ordinalRuleEnglish, ordinalRuleFrench, ordinalRuleMacedonian,
	ordinalRuleWelsh, ordinalRuleScottishGaelic, ordinalRuleItalian, ordinalRuleKazakh,
	ordinalRuleHungarian, ordinalRuleBengali, ordinalRuleGujarati, ordinalRuleKannada,
	ordinalRuleMarathi, ordinalRuleOdia, ordinalRuleTelugu, ordinalRuleNepali,
	ordinalRuleAlbanian,
}

var localeToOrdinalRule = map[string]int{
	"en": 1,
	"fr": 2, "ca": 2, "lij": 2, "sc": 2, "scn": 2, "vec": 2,
	"mk": 3,
	"cy": 4,
	"gd": 5,
	"it": 6,
	"kk": 7, "az": 7, "ka": 7,
	"hu": 8, "uk": 8, "tk": 8,
	"bn": 9, "as": 9, "hi": 9,
	"gu": 10,
	"kn": 11,
	"mr": 12,
	"or": 13,
	"te": 14,
	"ne": 15,
	"sq": 16,
}

func ordinalRuleFor(key string) *Rule {
	if id, ok := localeToOrdinalRule[key]; ok {
		return ordinalRules[id]
	}
	return ordinalRule0
}
