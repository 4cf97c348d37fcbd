package model

// Primitive/wrapper correspondence for the target language. Both directions
// are total over the nine primitive types, including void.
var wrapperByPrimitive = map[string]string{
	"boolean": "java.lang.Boolean",
	"byte":    "java.lang.Byte",
	"short":   "java.lang.Short",
	"int":     "java.lang.Integer",
	"long":    "java.lang.Long",
	"char":    "java.lang.Character",
	"float":   "java.lang.Float",
	"double":  "java.lang.Double",
	"void":    "java.lang.Void",
}

var primitiveByWrapper = func() map[string]string {
	m := make(map[string]string, len(wrapperByPrimitive))
	for p, w := range wrapperByPrimitive {
		m[w] = p
	}
	return m
}()

// WrapperOf returns the wrapper class name for a primitive keyword.
func WrapperOf(primitive string) (string, bool) {
	w, ok := wrapperByPrimitive[primitive]
	return w, ok
}

// PrimitiveOf returns the primitive keyword for a wrapper class name.
func PrimitiveOf(wrapper string) (string, bool) {
	p, ok := primitiveByWrapper[wrapper]
	return p, ok
}
