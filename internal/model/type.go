// Package model defines the resolved type/annotation/member snapshots the
// synthesis engine consumes, plus the msgpack bundle the resolution front
// end delivers them in. Everything here is immutable after construction.
package model

import (
	"fmt"
	"strings"
)

// TypeKind enumerates all supported kinds of resolved type references.
type TypeKind uint8

const (
	// KindNone marks the absence of a concrete type (unresolved slot).
	KindNone TypeKind = iota
	KindPrimitive
	KindDeclared
	KindTypeVar
	KindArray
)

func (k TypeKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindPrimitive:
		return "primitive"
	case KindDeclared:
		return "declared"
	case KindTypeVar:
		return "typevar"
	case KindArray:
		return "array"
	default:
		return fmt.Sprintf("TypeKind(%d)", k)
	}
}

// TypeRef is an immutable snapshot of a type as resolved by the front end.
// The synthesis engine only reads it; substitution of type variables against
// the owning type has already happened upstream.
type TypeRef struct {
	Kind TypeKind
	Name string    // qualified name, primitive keyword, or variable name
	Args []TypeRef // type arguments of a parameterized instantiation
	Elem *TypeRef  // element type for arrays
	Vars []string  // type-variable names declared by the type itself
}

// Descriptor helpers ---------------------------------------------------------

// MakeNone describes the NONE sentinel (no resolvable type).
func MakeNone() TypeRef {
	return TypeRef{Kind: KindNone}
}

// MakePrimitive describes a primitive type by its keyword, e.g. "int".
func MakePrimitive(name string) TypeRef {
	return TypeRef{Kind: KindPrimitive, Name: name}
}

// MakeDeclared describes a class or interface type by qualified name,
// optionally instantiated with type arguments.
func MakeDeclared(name string, args ...TypeRef) TypeRef {
	return TypeRef{Kind: KindDeclared, Name: name, Args: cloneArgs(args)}
}

// MakeTypeVar describes a reference to a type variable, e.g. "T".
func MakeTypeVar(name string) TypeRef {
	return TypeRef{Kind: KindTypeVar, Name: name}
}

// MakeArray describes an array of the element type.
func MakeArray(elem TypeRef) TypeRef {
	return TypeRef{Kind: KindArray, Elem: &elem}
}

// Capability set --------------------------------------------------------------

// IsNone reports whether the reference carries no concrete type.
func (t TypeRef) IsNone() bool {
	return t.Kind == KindNone
}

// IsParameterized reports whether the reference is a generic instantiation.
func (t TypeRef) IsParameterized() bool {
	return t.Kind == KindDeclared && len(t.Args) > 0
}

// IsBoxedPrimitive reports whether the reference names a primitive wrapper
// class such as java.lang.Integer.
func (t TypeRef) IsBoxedPrimitive() bool {
	if t.Kind != KindDeclared || len(t.Args) > 0 {
		return false
	}
	_, ok := primitiveByWrapper[t.Name]
	return ok
}

// RawForm returns the unparameterized form of a generic instantiation and
// every other reference unchanged.
func (t TypeRef) RawForm() TypeRef {
	if !t.IsParameterized() {
		return t
	}
	return TypeRef{Kind: KindDeclared, Name: t.Name, Vars: t.Vars}
}

// TypeVariables returns the names of type variables declared by the type.
func (t TypeRef) TypeVariables() []string {
	if len(t.Vars) == 0 {
		return nil
	}
	out := make([]string, len(t.Vars))
	copy(out, t.Vars)
	return out
}

// DisplayName renders the reference as target-language source text. The NONE
// kind renders empty; callers that emit source must route through the
// normalizer's safe form instead.
func (t TypeRef) DisplayName() string {
	switch t.Kind {
	case KindNone:
		return ""
	case KindPrimitive, KindTypeVar:
		return t.Name
	case KindArray:
		if t.Elem == nil {
			return "[]"
		}
		return t.Elem.DisplayName() + "[]"
	case KindDeclared:
		if len(t.Args) == 0 {
			return t.Name
		}
		var sb strings.Builder
		sb.WriteString(t.Name)
		sb.WriteByte('<')
		for i, a := range t.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(a.DisplayName())
		}
		sb.WriteByte('>')
		return sb.String()
	default:
		return t.Name
	}
}

func cloneArgs(args []TypeRef) []TypeRef {
	if len(args) == 0 {
		return nil
	}
	out := make([]TypeRef, len(args))
	copy(out, args)
	return out
}
