package compare

// TypeFlag describes the shape of a non-union static type. A type with none of
// the flags set is object-class: some structural or reference type whose
// details the checker never inspects.
type TypeFlag uint16

const (
	FlagString TypeFlag = 1 << iota
	FlagNumber
	FlagBoolean
	FlagNull
	FlagUndefined
	FlagVoid
	FlagAny
)

// StaticType is the resolved static type of an operand, detached from any
// syntax tree or host type representation. A union carries its members and its
// own flags are ignored; a non-union type is described by Flags alone.
type StaticType struct {
	Flags   TypeFlag
	Members []StaticType
}

// IsUnion reports whether the type is a union of members.
func (t StaticType) IsUnion() bool {
	return len(t.Members) > 0
}

func StringType() StaticType    { return StaticType{Flags: FlagString} }
func NumberType() StaticType    { return StaticType{Flags: FlagNumber} }
func BooleanType() StaticType   { return StaticType{Flags: FlagBoolean} }
func NullType() StaticType      { return StaticType{Flags: FlagNull} }
func UndefinedType() StaticType { return StaticType{Flags: FlagUndefined} }
func VoidType() StaticType      { return StaticType{Flags: FlagVoid} }
func AnyType() StaticType       { return StaticType{Flags: FlagAny} }
func ObjectType() StaticType    { return StaticType{} }

// UnionOf builds a union type from the given members. A single member is
// returned as-is; zero members yield the unconstrained type.
func UnionOf(members ...StaticType) StaticType {
	switch len(members) {
	case 0:
		return AnyType()
	case 1:
		return members[0]
	default:
		return StaticType{Members: members}
	}
}
