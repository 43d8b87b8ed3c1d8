package attrs

import (
	"fmt"
	"strings"
)

// ErrUnknownValueOfRenameAll is returned when a rename_all literal
// doesn't match one of the eight recognized conventions.
type ErrUnknownValueOfRenameAll struct {
	Value string
}

func (e *ErrUnknownValueOfRenameAll) Error() string {
	return fmt.Sprintf("unknown value of rename_all: %s", e.Value)
}

const (
	namespaceExtension = "te"
	namespaceSerde     = "serde"
)

// arg is one parsed `ident` or `ident = "literal"` entry inside an
// attribute's parentheses.
type arg struct {
	key      string
	value    string
	hasValue bool
}

// Parse accumulates the recognized keys across every raw `#[...]`
// attribute text attached to one item/variant/field. Later occurrences
// of a key overwrite earlier ones, per spec.md §4.B.
func Parse(rawAttrs []string) (Info, error) {
	var info Info
	for _, raw := range rawAttrs {
		namespace, argsText, ok := splitAttribute(raw)
		if !ok {
			continue
		}
		if namespace != namespaceExtension && namespace != namespaceSerde {
			continue
		}

		args, err := parseArgs(argsText)
		if err != nil {
			return info, err
		}

		for _, a := range args {
			if err := applyArg(&info, namespace, a); err != nil {
				return info, err
			}
		}
	}
	return info, nil
}

func applyArg(info *Info, namespace string, a arg) error {
	switch {
	case namespace == namespaceExtension && a.key == "entry":
		info.Entry = unitSlot(a)
	case namespace == namespaceExtension && a.key == "retype":
		info.Retype = stringSlot(a)
	case a.key == "rename": // extension + serde
		info.Rename = stringSlot(a)
	case namespace == namespaceSerde && a.key == "rename_all":
		if !a.hasValue {
			info.RenameAll = EmptySlot[RenameAll]()
			break
		}
		v, ok := ParseRenameAll(a.value)
		if !ok {
			return &ErrUnknownValueOfRenameAll{Value: a.value}
		}
		info.RenameAll = SetSlot(v)
	case namespace == namespaceSerde && a.key == "tag":
		info.Tag = stringSlot(a)
	case namespace == namespaceSerde && a.key == "content":
		info.Content = stringSlot(a)
	case namespace == namespaceSerde && a.key == "skip":
		info.Skip = unitSlot(a)
	case namespace == namespaceSerde && a.key == "skip_serializing":
		info.SkipSerializing = unitSlot(a)
	// unrecognized keys in a recognized namespace are silently ignored.
	}
	return nil
}

func unitSlot(a arg) Slot[struct{}] {
	return SetSlot(struct{}{})
}

func stringSlot(a arg) Slot[string] {
	if a.hasValue {
		return SetSlot(a.value)
	}
	return EmptySlot[string]()
}

// splitAttribute pulls the namespace segment and the raw parenthesized
// argument text out of one "#[namespace(args)]" attribute.
func splitAttribute(raw string) (namespace, argsText string, ok bool) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "#!")
	s = strings.TrimPrefix(s, "#")
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	s = strings.TrimSpace(s)

	open := strings.IndexByte(s, '(')
	if open < 0 {
		return "", "", false
	}
	close := strings.LastIndexByte(s, ')')
	if close < open {
		return "", "", false
	}

	namespace = strings.TrimSpace(s[:open])
	if idx := strings.LastIndex(namespace, "::"); idx >= 0 {
		namespace = namespace[idx+2:]
	}
	return namespace, s[open+1 : close], true
}

// parseArgs splits a comma-separated `ident` / `ident = "literal"` list,
// respecting double-quoted literals so commas inside them aren't treated
// as separators.
func parseArgs(text string) ([]arg, error) {
	var args []arg
	for _, tok := range splitTopLevelCommas(text) {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if eq := strings.IndexByte(tok, '='); eq >= 0 {
			key := strings.TrimSpace(tok[:eq])
			val := strings.TrimSpace(tok[eq+1:])
			val = strings.Trim(val, "\"")
			args = append(args, arg{key: key, value: val, hasValue: true})
		} else {
			args = append(args, arg{key: tok})
		}
	}
	return args, nil
}

func splitTopLevelCommas(s string) []string {
	var parts []string
	var cur strings.Builder
	inQuotes := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"':
			inQuotes = !inQuotes
			cur.WriteByte(c)
		case c == ',' && !inQuotes:
			parts = append(parts, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	parts = append(parts, cur.String())
	return parts
}
