package validator

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// StartCase turns a field name into words with a leading capital:
// "officeEmail" -> "Office Email", "first_name" -> "First Name",
// "XMLHttpRequest" -> "XML Http Request", "address2" -> "Address 2".
// Letters after the first one in a word keep their case.
func StartCase(s string) string {
	words := splitWords(s)
	if len(words) == 0 {
		return ""
	}
	// cases.Caser is stateful, so one per call.
	return cases.Title(language.English, cases.NoLower).String(strings.Join(words, " "))
}

func splitWords(s string) []string {
	runes := []rune(s)
	var words []string
	var cur []rune

	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = nil
		}
	}

	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}
		if len(cur) > 0 {
			prev := cur[len(cur)-1]
			switch {
			case unicode.IsLower(prev) && unicode.IsUpper(r):
				flush()
			case unicode.IsUpper(prev) && unicode.IsUpper(r) &&
				i+1 < len(runes) && unicode.IsLower(runes[i+1]):
				// acronym followed by a capitalised word: "XMLHttp"
				flush()
			case unicode.IsDigit(prev) != unicode.IsDigit(r):
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()

	return words
}
