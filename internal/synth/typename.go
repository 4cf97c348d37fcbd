package synth

import "javagen/internal/model"

// NoTypeName is the placeholder class name substituted when the resolved
// model reports the NONE kind. Emitted source must never contain an empty
// type token, even when upstream resolution legitimately has no type yet
// (e.g. a self-referential bound mid-resolution).
const NoTypeName = "error.NonExistentClass"

// RawTypeName strips the type arguments off a generic instantiation and
// returns every other reference unchanged. Idempotent.
func RawTypeName(t model.TypeRef) model.TypeRef {
	if t.IsParameterized() {
		return t.RawForm()
	}
	return t
}

// TryUnbox maps a primitive-wrapper reference to its primitive type and
// returns every other reference unchanged.
func TryUnbox(t model.TypeRef) model.TypeRef {
	if !t.IsBoxedPrimitive() {
		return t
	}
	p, ok := model.PrimitiveOf(t.Name)
	if !ok {
		return t
	}
	return model.MakePrimitive(p)
}

// TryBox maps a primitive reference to its wrapper type. Boxing is a
// best-effort convenience: when no wrapper form exists the input is returned
// unchanged instead of failing.
func TryBox(t model.TypeRef) model.TypeRef {
	boxed, ok := boxedForm(t)
	if !ok {
		return t
	}
	return boxed
}

func boxedForm(t model.TypeRef) (model.TypeRef, bool) {
	if t.Kind != model.KindPrimitive {
		return model.TypeRef{}, false
	}
	w, ok := model.WrapperOf(t.Name)
	if !ok {
		return model.TypeRef{}, false
	}
	return model.MakeDeclared(w), true
}

// SafeTypeName renders a reference as a type token, substituting NoTypeName
// when the reference has no concrete type. Never returns an empty string.
func SafeTypeName(t model.TypeRef) string {
	if t.IsNone() {
		return NoTypeName
	}
	name := t.DisplayName()
	if name == "" {
		return NoTypeName
	}
	return name
}
