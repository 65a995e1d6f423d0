package common

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/iancoleman/strcase"
)

// SanitizeLeadingDigit prefixes names that start with a digit with "Num"
// to keep identifiers valid in target languages.
func SanitizeLeadingDigit(name string) string {
	if name == "" {
		return ""
	}
	if name[0] >= '0' && name[0] <= '9' {
		return "Num" + name
	}
	return name
}

// ExportedName turns a GraphQL name into an exported Go identifier.
// Names without underscores keep their casing apart from the first letter
// ("userID" -> "UserID"); others are camel cased ("user_input" -> "UserInput").
func ExportedName(name string) string {
	if name == "" {
		return ""
	}
	if strings.Contains(name, "_") {
		return SanitizeLeadingDigit(strcase.ToCamel(name))
	}
	r, size := utf8.DecodeRuneInString(name)
	return SanitizeLeadingDigit(string(unicode.ToUpper(r)) + name[size:])
}

// ConfigKey converts a Go field name to the snake_case key kong's
// configuration resolvers look up.
func ConfigKey(field string) string {
	return strcase.ToSnake(field)
}

// QuoteSingle renders s as a single-quoted JavaScript string literal.
func QuoteSingle(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\'':
			b.WriteString(`\'`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\u2028':
			b.WriteString(`\u2028`)
		case '\u2029':
			b.WriteString(`\u2029`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	return b.String()
}
