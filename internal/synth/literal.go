package synth

import (
	"fmt"
	"strings"

	"javagen/internal/ident"
	"javagen/internal/model"
)

// AddAnnotationValue appends a member-assignment literal for one annotation
// value to w. List payloads fan out into one assignment per element under
// the same member name; all other kinds emit a single `name = token` entry.
func AddAnnotationValue(w *Writer, v model.AnnotationValue) error {
	if v.Value() == nil {
		return fmt.Errorf("constant non-null value expected for %s", v.Name)
	}
	if !ident.IsValid(v.Name) {
		return fmt.Errorf("%q is not a valid annotation member name", v.Name)
	}

	switch v.Kind {
	case model.ValueList:
		for _, elem := range v.List {
			elem.Name = v.Name
			if err := AddAnnotationValue(w, elem); err != nil {
				return err
			}
		}
		return nil
	case model.ValueAnnotation:
		nested, err := AnnotationLiteral(*v.Nested)
		if err != nil {
			return err
		}
		writeAssignment(w, v.Name, nested)
		return nil
	case model.ValueEnum:
		writeAssignment(w, v.Name, SafeTypeName(v.Enum.Type)+"."+v.Enum.Constant)
		return nil
	case model.ValueType:
		writeAssignment(w, v.Name, SafeTypeName(*v.Type)+".class")
		return nil
	case model.ValueString:
		writeAssignment(w, v.Name, quoteString(v.Str))
		return nil
	case model.ValueFloat:
		writeAssignment(w, v.Name, fmt.Sprintf("%vf", v.Float))
		return nil
	case model.ValueChar:
		writeAssignment(w, v.Name, "'"+escapeChar(v.Char)+"'")
		return nil
	case model.ValueConst:
		writeAssignment(w, v.Name, fmt.Sprintf("%v", v.Const))
		return nil
	default:
		return fmt.Errorf("unsupported value kind %v for %s", v.Kind, v.Name)
	}
}

func writeAssignment(w *Writer, name, token string) {
	w.Item()
	w.WriteString(name)
	w.WriteString(" = ")
	w.WriteString(token)
}

// escapeChar maps a rune to its char-literal spelling. A double quote stays
// unescaped inside a single-quoted literal; unmapped ISO control characters
// fall back to a 4-digit unicode escape.
func escapeChar(c rune) string {
	switch c {
	case '\b':
		return `\b`
	case '\t':
		return `\t`
	case '\n':
		return `\n`
	case '\f':
		return `\u000c`
	case '\r':
		return `\r`
	case '"':
		return `"`
	case '\'':
		return `\'`
	case '\\':
		return `\\`
	default:
		if isISOControl(c) {
			return fmt.Sprintf(`\u%04x`, c)
		}
		return string(c)
	}
}

// quoteString renders a double-quoted string literal. The escaping table is
// the char-literal one with the quote roles swapped: a single quote stays
// unescaped, a double quote is escaped.
func quoteString(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\'':
			sb.WriteByte('\'')
		case '"':
			sb.WriteString(`\"`)
		default:
			sb.WriteString(escapeChar(r))
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

func isISOControl(c rune) bool {
	return (c >= 0x00 && c <= 0x1f) || (c >= 0x7f && c <= 0x9f)
}
