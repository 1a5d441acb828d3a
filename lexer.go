package airp

import (
	"regexp"
	"strings"
	"unicode"
)

// numberRegex matches the longest numeral at the start of a string. The
// exponent part is accepted in addition to plain decimals.
var numberRegex = regexp.MustCompile(`^-?(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?`)

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

func isSpace(b byte) bool {
	return b < 0x80 && unicode.IsSpace(rune(b))
}

// skipSpace returns the number of leading whitespace bytes of s.
func skipSpace(s string) int {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return i
}

// hasLiteral reports whether s starts with lit. A string shorter than lit
// never matches.
func hasLiteral(s, lit string) bool {
	return len(s) >= len(lit) && s[:len(lit)] == lit
}

// readUntil copies s up to the first unescaped delim. A backslash is copied
// together with the byte following it. It returns the copied text and the
// index of delim in s, or ok == false if s ends first.
func readUntil(s string, delim byte) (text string, end int, ok bool) {
	var b strings.Builder
	i := 0
	for i < len(s) {
		switch c := s[i]; {
		case c == delim:
			return b.String(), i, true
		case c == '\\' && i+1 < len(s):
			b.WriteByte(c)
			b.WriteByte(s[i+1])
			i += 2
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String(), i, false
}

// scanNumber returns the length of the numeral at the start of s, zero if
// there is none, and whether it has to be stored as floating point.
func scanNumber(s string) (n int, float bool) {
	loc := numberRegex.FindStringIndex(s)
	if loc == nil {
		return 0, false
	}
	num := s[:loc[1]]
	return loc[1], strings.ContainsAny(num, ".eE")
}
