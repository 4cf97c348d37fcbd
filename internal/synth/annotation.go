package synth

import "javagen/internal/model"

// AnnotationLiteral renders a full annotation-attachment fragment, e.g.
//
//	@com.example.Cache(key = "user", ttl = 30)
//
// Values are emitted in declaration order; an instance without values
// renders as a bare marker annotation.
func AnnotationLiteral(inst model.AnnotationInstance) (string, error) {
	w := NewWriter()
	w.WriteByte('@')
	w.WriteString(SafeTypeName(RawTypeName(inst.Class)))
	if len(inst.Values) == 0 {
		return w.String(), nil
	}
	w.WriteByte('(')
	w.StartList(", ")
	for _, v := range inst.Values {
		if err := AddAnnotationValue(w, v); err != nil {
			return "", err
		}
	}
	w.WriteByte(')')
	return w.String(), nil
}
