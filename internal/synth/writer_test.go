package synth

import "testing"

func TestWriterListSeparation(t *testing.T) {
	w := NewWriter()
	w.WriteByte('(')
	w.StartList(", ")
	for _, s := range []string{"a", "b", "c"} {
		w.Item()
		w.WriteString(s)
	}
	w.WriteByte(')')
	if got := w.String(); got != "(a, b, c)" {
		t.Fatalf("got %q", got)
	}
}

func TestWriterEmptyList(t *testing.T) {
	w := NewWriter()
	w.StartList(", ")
	if w.Len() != 0 {
		t.Fatal("StartList must not write anything")
	}
}
