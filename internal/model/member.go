package model

import "fmt"

// Visibility classifies a member's access level. Package-private and any
// other visibility collapse into VisibilityPackage: the synthesizer emits no
// modifier for them.
type Visibility uint8

const (
	VisibilityPackage Visibility = iota
	VisibilityPublic
	VisibilityProtected
)

func (v Visibility) String() string {
	switch v {
	case VisibilityPackage:
		return "package"
	case VisibilityPublic:
		return "public"
	case VisibilityProtected:
		return "protected"
	default:
		return fmt.Sprintf("Visibility(%d)", v)
	}
}

// Param is one formal parameter of a resolved member.
type Param struct {
	Name string
	Type TypeRef
}

// ResolvedMember is an executable member as seen from one concrete owning
// type. All generic substitution has been applied by the resolution layer;
// the types below are final.
type ResolvedMember struct {
	Name       string
	Owner      TypeRef
	TypeParams []string // type-variable names declared by the member itself
	Params     []Param
	Return     TypeRef
	Throws     []TypeRef
	Varargs    bool
	Visibility Visibility
}
