package domain

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// EmailPattern is the minimal address shape a non-empty email must match.
// It is evaluated by PostgreSQL as a POSIX regex.
const EmailPattern = `^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`

var (
	// Two tokens separated by a single space, entirely upper- or lower-case.
	upperNameRe = regexp.MustCompile(`^\p{Lu}+ \p{Lu}+$`)
	lowerNameRe = regexp.MustCompile(`^\p{Ll}+ \p{Ll}+$`)
)

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizePhone strips everything but digits. A value without any digit is
// returned unchanged so that placeholder text is not silently erased.
func NormalizePhone(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return s
	}
	return b.String()
}

// NormalizeStateCode trims and upper-cases a state code.
func NormalizeStateCode(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// TitleCase trims s and converts it to title case ("road bikes" -> "Road Bikes").
func TitleCase(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return cases.Title(language.English).String(s)
}

// TitleCaseName title-cases a customer name only when it is a two-token name
// written entirely in upper or lower case. Any other shape is returned as is
// and ok is false.
func TitleCaseName(name string) (string, bool) {
	if !upperNameRe.MatchString(name) && !lowerNameRe.MatchString(name) {
		return name, false
	}
	return cases.Title(language.English).String(name), true
}

// RoundMoney rounds d to two decimal places.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
