package ir

import "fmt"

type Type int

const (
	StringType Type = iota
	NumberType
	BoolType
	ObjectType
	ArrayType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		StringType: "String",
		NumberType: "Number",
		BoolType:   "Bool",
		ObjectType: "Object",
		ArrayType:  "Array",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"String": StringType,
		"Number": NumberType,
		"Bool":   BoolType,
		"Object": ObjectType,
		"Array":  ArrayType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		StringType,
		NumberType,
		BoolType,
		ObjectType,
		ArrayType,
	}
}

func (t Type) IsScalar() bool {
	switch t {
	case ObjectType, ArrayType:
		return false
	default:
		return true
	}
}
