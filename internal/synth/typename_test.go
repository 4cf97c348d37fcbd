package synth

import (
	"testing"

	"javagen/internal/model"
)

func TestRawTypeNameStripsArguments(t *testing.T) {
	list := model.MakeDeclared("java.util.List", model.MakeDeclared("java.lang.String"))
	raw := RawTypeName(list)
	if raw.IsParameterized() {
		t.Fatalf("raw form still parameterized: %s", raw.DisplayName())
	}
	if raw.DisplayName() != "java.util.List" {
		t.Fatalf("raw form = %q, want %q", raw.DisplayName(), "java.util.List")
	}
}

func TestRawTypeNameIdempotent(t *testing.T) {
	refs := []model.TypeRef{
		model.MakeDeclared("java.util.Map", model.MakeDeclared("K"), model.MakeDeclared("V")),
		model.MakeDeclared("java.lang.Object"),
		model.MakePrimitive("int"),
		model.MakeArray(model.MakePrimitive("byte")),
		model.MakeTypeVar("T"),
		model.MakeNone(),
	}
	for _, ref := range refs {
		once := RawTypeName(ref)
		twice := RawTypeName(once)
		if once.DisplayName() != twice.DisplayName() || once.Kind != twice.Kind {
			t.Errorf("RawTypeName not idempotent for %s: %q vs %q",
				ref.Kind, once.DisplayName(), twice.DisplayName())
		}
	}
}

func TestBoxUnboxRoundTrip(t *testing.T) {
	primitives := []string{"boolean", "byte", "short", "int", "long", "char", "float", "double", "void"}
	for _, p := range primitives {
		orig := model.MakePrimitive(p)
		boxed := TryBox(orig)
		if !boxed.IsBoxedPrimitive() {
			t.Errorf("TryBox(%s) = %s, not a wrapper", p, boxed.DisplayName())
			continue
		}
		back := TryUnbox(boxed)
		if back.Kind != model.KindPrimitive || back.Name != p {
			t.Errorf("TryUnbox(TryBox(%s)) = %s, want %s", p, back.DisplayName(), p)
		}
	}
}

func TestTryBoxNonBoxableReturnsInput(t *testing.T) {
	refs := []model.TypeRef{
		model.MakeDeclared("com.example.Widget"),
		model.MakeTypeVar("T"),
		model.MakeArray(model.MakePrimitive("int")),
		model.MakeNone(),
		model.MakePrimitive("notAPrimitive"),
	}
	for _, ref := range refs {
		got := TryBox(ref)
		if got.Kind != ref.Kind || got.DisplayName() != ref.DisplayName() {
			t.Errorf("TryBox(%s) changed a non-boxable input to %s",
				ref.DisplayName(), got.DisplayName())
		}
	}
}

func TestTryUnboxLeavesNonWrappers(t *testing.T) {
	ref := model.MakeDeclared("java.lang.String")
	if got := TryUnbox(ref); got.DisplayName() != "java.lang.String" {
		t.Fatalf("TryUnbox(String) = %s", got.DisplayName())
	}
	// A parameterized type never unboxes even if its raw name matches.
	gen := model.MakeDeclared("java.lang.Integer", model.MakeTypeVar("T"))
	if got := TryUnbox(gen); got.Kind != model.KindDeclared || len(got.Args) != 1 {
		t.Fatalf("TryUnbox(Integer<T>) = %s", got.DisplayName())
	}
}

func TestSafeTypeNameNeverEmpty(t *testing.T) {
	refs := []model.TypeRef{
		model.MakeNone(),
		{Kind: model.KindDeclared}, // malformed: declared with no name
		model.MakePrimitive("int"),
		model.MakeDeclared("java.util.List", model.MakeTypeVar("E")),
		model.MakeArray(model.MakeDeclared("java.lang.String")),
	}
	for _, ref := range refs {
		name := SafeTypeName(ref)
		if name == "" {
			t.Errorf("SafeTypeName(%s) returned empty name", ref.Kind)
		}
	}
	if got := SafeTypeName(model.MakeNone()); got != NoTypeName {
		t.Fatalf("SafeTypeName(none) = %q, want %q", got, NoTypeName)
	}
}

func TestSafeTypeNameRendersGenerics(t *testing.T) {
	ref := model.MakeDeclared("java.util.Map",
		model.MakeDeclared("java.lang.String"),
		model.MakeTypeVar("V"),
	)
	want := "java.util.Map<java.lang.String, V>"
	if got := SafeTypeName(ref); got != want {
		t.Fatalf("SafeTypeName = %q, want %q", got, want)
	}
}
