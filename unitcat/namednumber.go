package unitcat

import "github.com/shopspring/decimal"

// NamedNumber is one of the large-scale number words recognized by the
// lexer (spec.md §4.2's PercentChar disambiguation already treats
// NamedNumber as a Modulo-triggering successor token). Grounded on
// original_source/src/lookup.rs.
type NamedNumber int

const (
	Hundred NamedNumber = iota
	Thousand
	Million
	Billion
	Trillion
	Quadrillion
	Quintillion
	Sextillion
	Septillion
	Octillion
	Nonillion
	Decillion
	Undecillion
	Duodecillion
	Tredecillion
	Quattuordecillion
	Quindecillion
	Sexdecillion
	Septendecillion
	Octodecillion
	Novemdecillion
	Vigintillion
	Centillion
	Googol
)

var namedNumberWords = map[string]NamedNumber{
	"hundred":           Hundred,
	"thousand":          Thousand,
	"million":           Million,
	"billion":           Billion,
	"trillion":          Trillion,
	"quadrillion":       Quadrillion,
	"quintillion":       Quintillion,
	"sextillion":        Sextillion,
	"septillion":        Septillion,
	"octillion":         Octillion,
	"nonillion":         Nonillion,
	"decillion":         Decillion,
	"undecillion":       Undecillion,
	"duodecillion":      Duodecillion,
	"tredecillion":      Tredecillion,
	"quattuordecillion": Quattuordecillion,
	"quindecillion":     Quindecillion,
	"sexdecillion":      Sexdecillion,
	"septendecillion":   Septendecillion,
	"octodecillion":     Octodecillion,
	"novemdecillion":    Novemdecillion,
	"vigintillion":      Vigintillion,
	"centillion":        Centillion,
	"googol":            Googol,
}

var namedNumberValues = map[NamedNumber]string{
	Hundred:           "100",
	Thousand:          "1000",
	Million:           "1000000",
	Billion:           "1000000000",
	Trillion:          "1000000000000",
	Quadrillion:       "1000000000000000",
	Quintillion:       "1000000000000000000",
	Sextillion:        "1000000000000000000000",
	Septillion:        "1000000000000000000000000",
	Octillion:         "1000000000000000000000000000",
	Nonillion:         "1000000000000000000000000000000",
	Decillion:         "1000000000000000000000000000000000",
	Undecillion:       "1000000000000000000000000000000000000",
	Duodecillion:      "1000000000000000000000000000000000000000",
	Tredecillion:      "1000000000000000000000000000000000000000000",
	Quattuordecillion: "1000000000000000000000000000000000000000000000",
	Quindecillion:     "1000000000000000000000000000000000000000000000000",
	Sexdecillion:      "1000000000000000000000000000000000000000000000000000",
	Septendecillion:   "1000000000000000000000000000000000000000000000000000000",
	Octodecillion:     "1000000000000000000000000000000000000000000000000000000000",
	Novemdecillion:    "1000000000000000000000000000000000000000000000000000000000000",
	Vigintillion:      "1000000000000000000000000000000000000000000000000000000000000000",
	Centillion:        "1e303",
	Googol:            "1e100",
}

// LookupNamedNumber resolves a NamedNumber to its exact scalar value,
// grounded on original_source/src/lookup.rs's lookup_named_number.
func LookupNamedNumber(n NamedNumber) decimal.Decimal {
	return decimal.RequireFromString(namedNumberValues[n])
}

// MatchNamedNumber looks up a lowercase word against the recognized scale
// vocabulary. Used by the lexer's word-matching pass.
func MatchNamedNumber(word string) (NamedNumber, bool) {
	n, ok := namedNumberWords[word]
	return n, ok
}

func (n NamedNumber) String() string {
	for word, v := range namedNumberWords {
		if v == n {
			return word
		}
	}
	return "unknown"
}
