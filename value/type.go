package value

import "fmt"

type Type int

const (
	NullType Type = iota
	BoolType
	IntType
	FloatType
	StringType
	Uint8ListType
	Int32ListType
	Int64ListType
	FloatListType
	ListType
	MapType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NullType:      "Null",
		BoolType:      "Bool",
		IntType:       "Int",
		FloatType:     "Float",
		StringType:    "String",
		Uint8ListType: "Uint8List",
		Int32ListType: "Int32List",
		Int64ListType: "Int64List",
		FloatListType: "FloatList",
		ListType:      "List",
		MapType:       "Map",
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
		"Null":      NullType,
		"Bool":      BoolType,
		"Int":       IntType,
		"Float":     FloatType,
		"String":    StringType,
		"Uint8List": Uint8ListType,
		"Int32List": Int32ListType,
		"Int64List": Int64ListType,
		"FloatList": FloatListType,
		"List":      ListType,
		"Map":       MapType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		NullType,
		BoolType,
		IntType,
		FloatType,
		StringType,
		Uint8ListType,
		Int32ListType,
		Int64ListType,
		FloatListType,
		ListType,
		MapType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case ListType, MapType:
		return false
	default:
		return true
	}
}
