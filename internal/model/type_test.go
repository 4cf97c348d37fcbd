package model

import "testing"

func TestDisplayName(t *testing.T) {
	cases := []struct {
		ref  TypeRef
		want string
	}{
		{MakePrimitive("int"), "int"},
		{MakeTypeVar("T"), "T"},
		{MakeDeclared("java.lang.String"), "java.lang.String"},
		{MakeDeclared("java.util.List", MakeTypeVar("E")), "java.util.List<E>"},
		{MakeDeclared("java.util.Map", MakeDeclared("K"), MakeDeclared("V")), "java.util.Map<K, V>"},
		{MakeArray(MakePrimitive("byte")), "byte[]"},
		{MakeArray(MakeArray(MakeDeclared("java.lang.Object"))), "java.lang.Object[][]"},
		{MakeNone(), ""},
	}
	for _, tc := range cases {
		if got := tc.ref.DisplayName(); got != tc.want {
			t.Errorf("DisplayName(%s) = %q, want %q", tc.ref.Kind, got, tc.want)
		}
	}
}

func TestRawFormDropsOnlyArguments(t *testing.T) {
	ref := MakeDeclared("java.util.List", MakeTypeVar("E"))
	ref.Vars = []string{"E"}
	raw := ref.RawForm()
	if raw.IsParameterized() {
		t.Fatal("raw form still parameterized")
	}
	if raw.Name != "java.util.List" {
		t.Fatalf("raw name = %q", raw.Name)
	}
	if len(raw.TypeVariables()) != 1 || raw.TypeVariables()[0] != "E" {
		t.Fatal("declared type variables must survive raw extraction")
	}
}

func TestIsBoxedPrimitive(t *testing.T) {
	if !MakeDeclared("java.lang.Integer").IsBoxedPrimitive() {
		t.Error("java.lang.Integer should be a boxed primitive")
	}
	if MakeDeclared("java.lang.String").IsBoxedPrimitive() {
		t.Error("java.lang.String is not a boxed primitive")
	}
	if MakePrimitive("int").IsBoxedPrimitive() {
		t.Error("a primitive is not its own wrapper")
	}
	if MakeDeclared("java.lang.Integer", MakeTypeVar("T")).IsBoxedPrimitive() {
		t.Error("a parameterized reference cannot be a wrapper")
	}
}

func TestBoxingTablesAreInverse(t *testing.T) {
	for p := range wrapperByPrimitive {
		w, ok := WrapperOf(p)
		if !ok {
			t.Fatalf("no wrapper for %s", p)
		}
		back, ok := PrimitiveOf(w)
		if !ok || back != p {
			t.Fatalf("PrimitiveOf(WrapperOf(%s)) = %q, %v", p, back, ok)
		}
	}
}

func TestTypeVariablesCopied(t *testing.T) {
	ref := MakeDeclared("com.example.Box")
	ref.Vars = []string{"T"}
	vars := ref.TypeVariables()
	vars[0] = "X"
	if ref.Vars[0] != "T" {
		t.Fatal("TypeVariables must not alias internal storage")
	}
}

func TestAnnotationValuePayloads(t *testing.T) {
	cases := []struct {
		name    string
		value   AnnotationValue
		wantNil bool
	}{
		{"string", MakeStringValue("v", "x"), false},
		{"empty string still non-null", MakeStringValue("v", ""), false},
		{"char", MakeCharValue("v", 'x'), false},
		{"float", MakeFloatValue("v", 0), false},
		{"const", MakeConstValue("v", int64(0)), false},
		{"list", MakeListValue("v"), false},
		{"nil const", AnnotationValue{Name: "v", Kind: ValueConst}, true},
		{"nil nested", AnnotationValue{Name: "v", Kind: ValueAnnotation}, true},
		{"nil enum", AnnotationValue{Name: "v", Kind: ValueEnum}, true},
		{"nil type", AnnotationValue{Name: "v", Kind: ValueType}, true},
		{"nil list", AnnotationValue{Name: "v", Kind: ValueList}, true},
	}
	for _, tc := range cases {
		got := tc.value.Value()
		if tc.wantNil && got != nil {
			t.Errorf("%s: Value() = %v, want nil", tc.name, got)
		}
		if !tc.wantNil && got == nil {
			t.Errorf("%s: Value() = nil, want payload", tc.name)
		}
	}
}

func TestMakeValueKinds(t *testing.T) {
	cases := []struct {
		value AnnotationValue
		want  ValueKind
	}{
		{MakeListValue("v"), ValueList},
		{MakeAnnotationValue("v", AnnotationInstance{Class: MakeDeclared("A")}), ValueAnnotation},
		{MakeEnumValue("v", MakeDeclared("E"), "X"), ValueEnum},
		{MakeTypeValue("v", MakeDeclared("T")), ValueType},
		{MakeStringValue("v", "s"), ValueString},
		{MakeFloatValue("v", 1), ValueFloat},
		{MakeCharValue("v", 'c'), ValueChar},
		{MakeConstValue("v", 1), ValueConst},
	}
	for _, tc := range cases {
		if tc.value.Kind != tc.want {
			t.Errorf("constructor produced kind %v, want %v", tc.value.Kind, tc.want)
		}
	}
}
