package model

import "fmt"

// ValueKind tags the payload carried by an AnnotationValue. The constant
// order matches the dispatch precedence of the literal synthesizer.
type ValueKind uint8

const (
	ValueList ValueKind = iota
	ValueAnnotation
	ValueEnum
	ValueType
	ValueString
	ValueFloat
	ValueChar
	ValueConst
)

func (k ValueKind) String() string {
	switch k {
	case ValueList:
		return "list"
	case ValueAnnotation:
		return "annotation"
	case ValueEnum:
		return "enum"
	case ValueType:
		return "type"
	case ValueString:
		return "string"
	case ValueFloat:
		return "float"
	case ValueChar:
		return "char"
	case ValueConst:
		return "const"
	default:
		return fmt.Sprintf("ValueKind(%d)", k)
	}
}

// EnumConstant is an enum-constant payload: the declaring type plus the
// constant's simple name.
type EnumConstant struct {
	Type     TypeRef
	Constant string
}

// AnnotationValue is one named value slot of an annotation instance. Exactly
// one payload field is populated, selected by Kind; instances are built
// through the Make*Value constructors and never mutated afterwards.
type AnnotationValue struct {
	Name string
	Kind ValueKind

	List   []AnnotationValue
	Nested *AnnotationInstance
	Enum   *EnumConstant
	Type   *TypeRef
	Str    string
	Float  float32
	Char   rune
	Const  any
}

// AnnotationInstance is an annotation class plus its member values in
// declaration order. Names may repeat when a repeated member is modeled as
// individual entries.
type AnnotationInstance struct {
	Class  TypeRef
	Values []AnnotationValue
}

// MakeListValue wraps member values that expand to repeated assignments
// under the same member name.
func MakeListValue(name string, elems ...AnnotationValue) AnnotationValue {
	list := make([]AnnotationValue, len(elems))
	copy(list, elems)
	return AnnotationValue{Name: name, Kind: ValueList, List: list}
}

// MakeAnnotationValue wraps a nested annotation payload.
func MakeAnnotationValue(name string, nested AnnotationInstance) AnnotationValue {
	return AnnotationValue{Name: name, Kind: ValueAnnotation, Nested: &nested}
}

// MakeEnumValue wraps an enum-constant payload.
func MakeEnumValue(name string, declaring TypeRef, constant string) AnnotationValue {
	return AnnotationValue{Name: name, Kind: ValueEnum, Enum: &EnumConstant{Type: declaring, Constant: constant}}
}

// MakeTypeValue wraps a class-literal payload.
func MakeTypeValue(name string, t TypeRef) AnnotationValue {
	return AnnotationValue{Name: name, Kind: ValueType, Type: &t}
}

// MakeStringValue wraps a string payload.
func MakeStringValue(name, s string) AnnotationValue {
	return AnnotationValue{Name: name, Kind: ValueString, Str: s}
}

// MakeFloatValue wraps a single-precision float payload.
func MakeFloatValue(name string, f float32) AnnotationValue {
	return AnnotationValue{Name: name, Kind: ValueFloat, Float: f}
}

// MakeCharValue wraps a character payload.
func MakeCharValue(name string, ch rune) AnnotationValue {
	return AnnotationValue{Name: name, Kind: ValueChar, Char: ch}
}

// MakeConstValue wraps any other constant payload (booleans, integers,
// longs, doubles, pre-rendered references) emitted in its natural form.
func MakeConstValue(name string, v any) AnnotationValue {
	return AnnotationValue{Name: name, Kind: ValueConst, Const: v}
}

// Value returns the payload selected by Kind. A nil result marks a malformed
// instance and is rejected by the literal synthesizer.
func (v AnnotationValue) Value() any {
	switch v.Kind {
	case ValueList:
		if v.List == nil {
			return nil
		}
		return v.List
	case ValueAnnotation:
		if v.Nested == nil {
			return nil
		}
		return *v.Nested
	case ValueEnum:
		if v.Enum == nil {
			return nil
		}
		return *v.Enum
	case ValueType:
		if v.Type == nil {
			return nil
		}
		return *v.Type
	case ValueString:
		return v.Str
	case ValueFloat:
		return v.Float
	case ValueChar:
		return v.Char
	case ValueConst:
		return v.Const
	default:
		return nil
	}
}
