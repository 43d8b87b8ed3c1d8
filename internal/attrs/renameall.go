package attrs

import (
	"strings"
	"unicode"
)

// RenameAll is the field-naming convention applied to every non-renamed
// field/variant of a record or sum type.
type RenameAll int

const (
	LowerCase RenameAll = iota
	UpperCase
	PascalCase
	CamelCase // default
	SnakeCase
	ScreamingSnakeCase
	KebabCase
	ScreamingKebabCase
)

// DefaultRenameAll is applied when no rename_all attribute is present.
const DefaultRenameAll = CamelCase

var renameAllNames = map[string]RenameAll{
	"lowercase":             LowerCase,
	"UPPERCASE":             UpperCase,
	"PascalCase":            PascalCase,
	"camelCase":             CamelCase,
	"snake_case":            SnakeCase,
	"SCREAMING_SNAKE_CASE":  ScreamingSnakeCase,
	"kebab-case":            KebabCase,
	"SCREAMING-KEBAB-CASE":  ScreamingKebabCase,
}

// ParseRenameAll matches a literal against the eight recognized
// conventions; the bool is false for anything else (UnknownValueOfRenameAll).
func ParseRenameAll(literal string) (RenameAll, bool) {
	v, ok := renameAllNames[literal]
	return v, ok
}

// Convert rewrites name according to the convention. There is no
// case-conversion library in the dependency pack (the Rust original
// leans on the `heck` crate), so word-splitting is done by hand over
// ASCII letter/digit runs and camel/Pascal boundaries.
func (r RenameAll) Convert(name string) string {
	words := splitWords(name)
	if len(words) == 0 {
		return name
	}

	switch r {
	case LowerCase:
		return strings.ToLower(strings.Join(words, ""))
	case UpperCase:
		return strings.ToUpper(strings.Join(words, ""))
	case PascalCase:
		return joinCased(words, true, "")
	case CamelCase:
		return joinCased(words, false, "")
	case SnakeCase:
		return strings.ToLower(strings.Join(words, "_"))
	case ScreamingSnakeCase:
		return strings.ToUpper(strings.Join(words, "_"))
	case KebabCase:
		return strings.ToLower(strings.Join(words, "-"))
	case ScreamingKebabCase:
		return strings.ToUpper(strings.Join(words, "-"))
	default:
		return name
	}
}

// joinCased title-cases every word (or every word but the first, for
// camelCase) and concatenates them.
func joinCased(words []string, capitalizeFirst bool, sep string) string {
	var b strings.Builder
	for i, w := range words {
		if i == 0 && !capitalizeFirst {
			b.WriteString(strings.ToLower(w))
			continue
		}
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(titleWord(w))
	}
	return b.String()
}

func titleWord(w string) string {
	if w == "" {
		return w
	}
	r := []rune(strings.ToLower(w))
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// splitWords breaks an identifier like "parentId", "parent_id", or
// "ParentID" into its constituent words, keeping their original case
// ("parent"/"Id", "parent"/"id", "Parent"/"ID"); Convert applies the
// casing afterwards.
func splitWords(name string) []string {
	var words []string
	var cur []rune

	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = nil
		}
	}

	runes := []rune(name)
	for i, r := range runes {
		switch {
		case r == '_' || r == '-' || unicode.IsSpace(r):
			flush()
		case unicode.IsUpper(r):
			prevLower := i > 0 && (unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1]))
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if prevLower || (len(cur) > 0 && nextLower && allUpper(cur)) {
				flush()
			}
			cur = append(cur, r)
		default:
			cur = append(cur, r)
		}
	}
	flush()
	return words
}

func allUpper(rs []rune) bool {
	for _, r := range rs {
		if unicode.IsLetter(r) && !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}
