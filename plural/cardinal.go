package plural

// Cardinal rules. m10/m100 below always name n mod 10 and n mod 100,
// the standard CLDR shorthand for these rules.

var cardinalRule0 = &Rule{
	Categories: []string{Other},
	Classify:   func(n int64) int { return 0 },
}

var cardinalRule1 = &Rule{
	Categories: []string{One, Other},
	Classify: func(n int64) int {
		if n == 1 {
			return 0
		}
		return 1
	},
}

var cardinalRule2 = &Rule{
	Categories: []string{One, Other},
	Classify: func(n int64) int {
		if n <= 1 {
			return 0
		}
		return 1
	},
}

// Rule 3 exposes four categories per the CLDR-49-aligned convention:
// one, few, many, other; "many" absorbs everything that doesn't satisfy
// one/few.
var cardinalRule3 = &Rule{
	Categories: []string{One, Few, Many, Other},
	Classify: func(n int64) int {
		m10, m100 := n%10, n%100
		switch {
		case m10 == 1 && m100 != 11:
			return 0 // one
		case (m10 >= 2 && m10 <= 4) && !(m100 >= 12 && m100 <= 14):
			return 1 // few
		default:
			return 2 // many
		}
	},
}

var cardinalRule4 = &Rule{
	Categories: []string{One, Few, Other},
	Classify: func(n int64) int {
		switch {
		case n == 1:
			return 0
		case n >= 2 && n <= 4:
			return 1
		default:
			return 2
		}
	},
}

var cardinalRule5 = &Rule{
	Categories: []string{One, Two, Few, Many, Other},
	Classify: func(n int64) int {
		switch {
		case n == 1:
			return 0
		case n == 2:
			return 1
		case n >= 3 && n <= 6:
			return 2
		case n >= 7 && n <= 10:
			return 3
		default:
			return 4
		}
	},
}

var cardinalRule6 = &Rule{
	Categories: []string{One, Few, Other},
	Classify: func(n int64) int {
		m10, m100 := n%10, n%100
		switch {
		case m10 == 1 && !(m100 >= 11 && m100 <= 19):
			return 0
		case (m10 >= 2 && m10 <= 9) && !(m100 >= 11 && m100 <= 19):
			return 1
		default:
			return 2
		}
	},
}

var cardinalRule7 = &Rule{
	Categories: []string{One, Two, Few, Other},
	Classify: func(n int64) int {
		m100 := n % 100
		switch m100 {
		case 1:
			return 0
		case 2:
			return 1
		case 3, 4:
			return 2
		default:
			return 3
		}
	},
}

var cardinalRule8 = &Rule{
	Categories: []string{One, Other},
	Classify: func(n int64) int {
		m10, m100 := n%10, n%100
		if m10 == 1 && m100 != 11 {
			return 0
		}
		return 1
	},
}

var cardinalRule9 = &Rule{
	Categories: []string{One, Few, Many, Other},
	Classify: func(n int64) int {
		m100 := n % 100
		switch {
		case n == 1:
			return 0
		case n == 0 || (m100 >= 2 && m100 <= 10):
			return 1
		case m100 >= 11 && m100 <= 19:
			return 2
		default:
			return 3
		}
	},
}

var cardinalRule10 = &Rule{
	Categories: []string{Zero, One, Other},
	Classify: func(n int64) int {
		m10, m100 := n%10, n%100
		switch {
		case n == 0:
			return 0
		case m10 == 1 && m100 != 11:
			return 1
		default:
			return 2
		}
	},
}

// Rule 11 (Polish) also follows the CLDR-49-aligned 4-category
// convention (one, few, many, other) per Open Question 1.
var cardinalRule11 = &Rule{
	Categories: []string{One, Few, Many, Other},
	Classify: func(n int64) int {
		m10, m100 := n%10, n%100
		switch {
		case n == 1:
			return 0
		case (m10 >= 2 && m10 <= 4) && !(m100 >= 12 && m100 <= 14):
			return 1
		default:
			return 2
		}
	},
}

var cardinalRule12 = &Rule{
	Categories: []string{One, Few, Other},
	Classify: func(n int64) int {
		m100 := n % 100
		switch {
		case n == 1:
			return 0
		case n == 0 || (m100 >= 1 && m100 <= 19):
			return 1
		default:
			return 2
		}
	},
}

var cardinalRule13 = &Rule{
	Categories: []string{Zero, One, Two, Few, Many, Other},
	Classify: func(n int64) int {
		m100 := n % 100
		switch {
		case n == 0:
			return 0
		case n == 1:
			return 1
		case n == 2:
			return 2
		case m100 >= 3 && m100 <= 10:
			return 3
		case m100 >= 11 && m100 <= 99:
			return 4
		default:
			return 5
		}
	},
}

var cardinalRule14 = &Rule{
	Categories: []string{Zero, One, Two, Few, Many, Other},
	Classify: func(n int64) int {
		switch n {
		case 0:
			return 0
		case 1:
			return 1
		case 2:
			return 2
		case 3:
			return 3
		case 6:
			return 4
		default:
			return 5
		}
	},
}

var cardinalRule15 = &Rule{
	Categories: []string{One, Other},
	Classify: func(n int64) int {
		m10, m100 := n%10, n%100
		if m10 == 1 && m100 != 11 {
			return 0
		}
		return 1
	},
}

var cardinalRule16 = &Rule{
	Categories: []string{One, Two, Few, Other},
	Classify: func(n int64) int {
		switch {
		case n == 1 || n == 11:
			return 0
		case n == 2 || n == 12:
			return 1
		case n > 2 && n < 20:
			return 2
		default:
			return 3
		}
	},
}

var cardinalRule17 = &Rule{
	Categories: []string{One, Two, Few, Many, Other},
	Classify: func(n int64) int {
		m10, m100 := n%10, n%100
		switch {
		case m10 == 1 && m100 != 11 && m100 != 71 && m100 != 91:
			return 0
		case m10 == 2 && m100 != 12 && m100 != 72 && m100 != 92:
			return 1
		case (m10 == 3 || m10 == 4 || m10 == 9) &&
			!((m100 >= 10 && m100 <= 19) || (m100 >= 70 && m100 <= 79) || (m100 >= 90 && m100 <= 99)):
			return 2
		case n != 0 && n%1000000 == 0:
			return 3
		default:
			return 4
		}
	},
}

var cardinalRule18 = &Rule{
	Categories: []string{One, Two, Few, Other},
	Classify: func(n int64) int {
		m10 := n % 10
		switch {
		case m10 == 1:
			return 0
		case m10 == 2:
			return 1
		case n%20 == 0:
			return 2
		default:
			return 3
		}
	},
}

var cardinalRule19 = &Rule{
	Categories: []string{One, Two, Many, Other},
	Classify: func(n int64) int {
		m10 := n % 10
		switch {
		case n == 1:
			return 0
		case n == 2:
			return 1
		case n > 10 && m10 == 0:
			return 2
		default:
			return 3
		}
	},
}

var cardinalRule20 = &Rule{
	Categories: []string{One, Many, Other},
	Classify: func(n int64) int {
		switch {
		case n == 1:
			return 0
		case n != 0 && n%1000000 == 0:
			return 1
		default:
			return 2
		}
	},
}

var cardinalRules = []*Rule{
	cardinalRule0, cardinalRule1, cardinalRule2, cardinalRule3, cardinalRule4,
	cardinalRule5, cardinalRule6, cardinalRule7, cardinalRule8, cardinalRule9,
	cardinalRule10, cardinalRule11, cardinalRule12, cardinalRule13, cardinalRule14,
	cardinalRule15, cardinalRule16, cardinalRule17, cardinalRule18, cardinalRule19,
	cardinalRule20,
}

// localeToCardinalRule maps a normalised locale key to an
// index into cardinalRules. Unknown keys fall back to rule 0.
var localeToCardinalRule = map[string]int{
	"ja": 0, "zh": 0, "ko": 0, "vi": 0, "th": 0, "id": 0, "ms": 0, "my": 0, "lo": 0,

	"en": 1, "de": 1, "nl": 1, "sv": 1, "no": 1, "nb": 1, "nn": 1, "da": 1,
	"el": 1, "hu": 1, "fi": 1, "et": 1, "bg": 1,

	"fil": 2, "tl": 2, "tr": 2, "oc": 2, "ti": 2, "ln": 2,

	"ru": 3, "uk": 3, "sr": 3, "hr": 3, "be": 3, "bs": 3,

	"cs": 4, "sk": 4,

	"ga": 5,

	"lt": 6,

	"sl": 7,

	"mk": 8,

	"mt": 9,

	"lv": 10,

	"pl": 11,

	"ro": 12, "mo": 12,

	"ar": 13,

	"cy": 14,

	"is": 15,

	"gd": 16,

	"br": 17,

	"gv": 18,

	"he": 19, "iw": 19,

	"it": 20, "es": 20, "fr": 20, "pt": 20, "ca": 20,
}

// cardinalRuleFor returns the Rule for a normalised locale key.
func cardinalRuleFor(key string) *Rule {
	if id, ok := localeToCardinalRule[key]; ok {
		return cardinalRules[id]
	}
	return cardinalRule0
}
