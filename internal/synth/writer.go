// Package synth emits target-language source fragments from the resolved
// model: annotation literals and member override skeletons. Every function
// is a pure transformation of its immutable inputs; the only side effect is
// appending to a caller-owned Writer.
package synth

import "strings"

// Writer is a single-writer output buffer for one synthesis call. It must
// not be shared between concurrent calls without external serialization.
type Writer struct {
	buf  strings.Builder
	sep  string
	need bool
}

func NewWriter() *Writer {
	return &Writer{}
}

func (w *Writer) WriteString(s string) {
	w.buf.WriteString(s)
}

func (w *Writer) WriteByte(b byte) {
	w.buf.WriteByte(b)
}

func (w *Writer) Space() {
	w.buf.WriteByte(' ')
}

func (w *Writer) Newline() {
	w.buf.WriteByte('\n')
}

// StartList begins a separated list; Item then inserts sep before every
// entry but the first.
func (w *Writer) StartList(sep string) {
	w.sep = sep
	w.need = false
}

// Item marks the start of the next list entry.
func (w *Writer) Item() {
	if w.need {
		w.buf.WriteString(w.sep)
	}
	w.need = true
}

func (w *Writer) Len() int {
	return w.buf.Len()
}

// String returns the accumulated source text.
func (w *Writer) String() string {
	return w.buf.String()
}
