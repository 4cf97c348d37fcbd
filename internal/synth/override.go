package synth

import (
	"strings"

	"javagen/internal/model"
)

// ParamSpec is one rendered parameter of a method skeleton.
type ParamSpec struct {
	Name  string
	Type  string
	Final bool
}

// MethodSkeleton is the rendered shape of an overriding method: everything a
// generator needs to materialize the stub, with types already reduced to
// source tokens.
type MethodSkeleton struct {
	Name       string
	Visibility model.Visibility
	TypeParams []string
	Params     []ParamSpec
	ReturnType string
	Throws     []string
	Varargs    bool
}

// Overriding builds a skeleton that overrides member exactly: same type
// parameters, parameters, visibility, thrown types, return type and varargs
// flag, with the override marker attached on render.
func Overriding(member model.ResolvedMember) MethodSkeleton {
	return overriding(member, false)
}

// OverridingWithFinalParams is Overriding with every parameter marked
// non-reassignable. No other property differs.
func OverridingWithFinalParams(member model.ResolvedMember) MethodSkeleton {
	return overriding(member, true)
}

func overriding(member model.ResolvedMember, finalParams bool) MethodSkeleton {
	sk := MethodSkeleton{
		Name:       member.Name,
		Visibility: member.Visibility,
		Varargs:    member.Varargs,
		ReturnType: SafeTypeName(member.Return),
	}
	if len(member.TypeParams) > 0 {
		sk.TypeParams = make([]string, len(member.TypeParams))
		copy(sk.TypeParams, member.TypeParams)
	}
	if len(member.Params) > 0 {
		sk.Params = make([]ParamSpec, 0, len(member.Params))
		for _, p := range member.Params {
			sk.Params = append(sk.Params, ParamSpec{
				Name:  p.Name,
				Type:  SafeTypeName(p.Type),
				Final: finalParams,
			})
		}
	}
	if len(member.Throws) > 0 {
		sk.Throws = make([]string, 0, len(member.Throws))
		for _, t := range member.Throws {
			sk.Throws = append(sk.Throws, SafeTypeName(RawTypeName(t)))
		}
	}
	return sk
}

// Format renders the skeleton as source text with an empty body.
func (s MethodSkeleton) Format(w *Writer) {
	w.WriteString("@Override")
	w.Newline()
	switch s.Visibility {
	case model.VisibilityPublic:
		w.WriteString("public ")
	case model.VisibilityProtected:
		w.WriteString("protected ")
	}
	if len(s.TypeParams) > 0 {
		w.WriteByte('<')
		w.StartList(", ")
		for _, tp := range s.TypeParams {
			w.Item()
			w.WriteString(tp)
		}
		w.WriteByte('>')
		w.Space()
	}
	w.WriteString(s.ReturnType)
	w.Space()
	w.WriteString(s.Name)
	w.WriteByte('(')
	w.StartList(", ")
	for i, p := range s.Params {
		w.Item()
		if p.Final {
			w.WriteString("final ")
		}
		typ := p.Type
		if s.Varargs && i == len(s.Params)-1 {
			typ = strings.TrimSuffix(typ, "[]") + "..."
		}
		w.WriteString(typ)
		w.Space()
		w.WriteString(p.Name)
	}
	w.WriteByte(')')
	if len(s.Throws) > 0 {
		w.WriteString(" throws ")
		w.StartList(", ")
		for _, t := range s.Throws {
			w.Item()
			w.WriteString(t)
		}
	}
	w.WriteString(" {")
	w.Newline()
	w.WriteByte('}')
	w.Newline()
}

// String renders the skeleton into a fresh writer.
func (s MethodSkeleton) String() string {
	w := NewWriter()
	s.Format(w)
	return w.String()
}
