package naming

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Capitalize upper-cases the first character of s and leaves the rest
// untouched. Full case mapping is used, so "ß" becomes "SS".
// Example: "getPet" -> "GetPet"
func Capitalize(s string) string {
	return mapFirst(s, cases.Upper(language.Und))
}

// Uncapitalize lower-cases the first character of s.
// Example: "PetId" -> "petId"
func Uncapitalize(s string) string {
	return mapFirst(s, cases.Lower(language.Und))
}

func mapFirst(s string, c cases.Caser) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return c.String(s[:size]) + s[size:]
}

// SnakeToCamel replaces every underscore followed by a word character
// (ASCII letter, digit or underscore) with that character upper-cased.
// Example: "created_at" -> "createdAt"
func SnakeToCamel(s string) string {
	if !strings.Contains(s, "_") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '_' && i+1 < len(s) && isWordByte(s[i+1]) {
			b.WriteString(strings.ToUpper(s[i+1 : i+2]))
			i++
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func isWordByte(c byte) bool {
	return c == '_' ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z') ||
		('0' <= c && c <= '9')
}

// IsIdentifier reports whether s can be written as a bare TypeScript
// property name or identifier.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_' || c == '$':
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
