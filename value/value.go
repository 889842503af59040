package value

import (
	"maps"
	"slices"
	"strconv"
	"strings"
)

type Value struct {
	Type Type

	Bool  bool
	Int   int64
	Float float64
	Text  string

	Uint8List []uint8
	Int32List []int32
	Int64List []int64
	FloatList []float64

	// Keys is parallel to Values for MapType. ListType uses Values alone.
	Keys   []*Value
	Values []*Value
}

func Null() *Value {
	return &Value{Type: NullType}
}

func FromBool(v bool) *Value {
	return &Value{Type: BoolType, Bool: v}
}

func FromInt(v int64) *Value {
	return &Value{Type: IntType, Int: v}
}

func FromFloat(v float64) *Value {
	return &Value{Type: FloatType, Float: v}
}

func FromString(v string) *Value {
	return &Value{Type: StringType, Text: v}
}

// FromStringSized constructs a string value from raw bytes, which may
// contain embedded NUL.
func FromStringSized(d []byte) *Value {
	return &Value{Type: StringType, Text: string(d)}
}

func FromUint8List(v []uint8) *Value {
	return &Value{Type: Uint8ListType, Uint8List: v}
}

func FromInt32List(v []int32) *Value {
	return &Value{Type: Int32ListType, Int32List: v}
}

func FromInt64List(v []int64) *Value {
	return &Value{Type: Int64ListType, Int64List: v}
}

func FromFloatList(v []float64) *Value {
	return &Value{Type: FloatListType, FloatList: v}
}

func NewList() *Value {
	return &Value{Type: ListType}
}

func FromSlice(vs []*Value) *Value {
	return &Value{Type: ListType, Values: vs}
}

func NewMap() *Value {
	return &Value{Type: MapType}
}

type KeyVal struct {
	Key *Value
	Val *Value
}

func FromKeyVals(kvs []KeyVal) *Value {
	res := NewMap()
	for i := range kvs {
		res.Set(kvs[i].Key, kvs[i].Val)
	}
	return res
}

// FromMap builds a map value with string keys in sorted key order. Use
// FromKeyVals when insertion order matters.
func FromMap(m map[string]*Value) *Value {
	res := NewMap()
	for _, key := range slices.Sorted(maps.Keys(m)) {
		res.Set(FromString(key), m[key])
	}
	return res
}

// Len returns the number of elements for list variants and the number of
// entries for maps, 0 otherwise.
func (v *Value) Len() int {
	switch v.Type {
	case Uint8ListType:
		return len(v.Uint8List)
	case Int32ListType:
		return len(v.Int32List)
	case Int64ListType:
		return len(v.Int64List)
	case FloatListType:
		return len(v.FloatList)
	case ListType, MapType:
		return len(v.Values)
	default:
		return 0
	}
}

// Append adds an element to a ListType value.
func (v *Value) Append(child *Value) {
	v.Values = append(v.Values, child)
}

// Set inserts key:val into a MapType value. If a deep-equal key is
// already present its value is replaced in place, preserving the position
// of the original entry; otherwise the pair is appended.
func (v *Value) Set(key, val *Value) {
	for i, k := range v.Keys {
		if Equal(k, key) {
			v.Values[i] = val
			return
		}
	}
	v.Keys = append(v.Keys, key)
	v.Values = append(v.Values, val)
}

// Get returns the value stored under a deep-equal key, or nil.
func (v *Value) Get(key *Value) *Value {
	for i, k := range v.Keys {
		if Equal(k, key) {
			return v.Values[i]
		}
	}
	return nil
}

// GetString returns the value stored under a string key, or nil.
func (v *Value) GetString(field string) *Value {
	for i, k := range v.Keys {
		if k.Type == StringType && k.Text == field {
			return v.Values[i]
		}
	}
	return nil
}

func (v *Value) Clone() *Value {
	res := &Value{}
	return v.CloneTo(res)
}

func (v *Value) CloneTo(dst *Value) *Value {
	dst.Type = v.Type
	dst.Bool = v.Bool
	dst.Int = v.Int
	dst.Float = v.Float
	dst.Text = v.Text
	if v.Uint8List != nil {
		dst.Uint8List = append([]uint8(nil), v.Uint8List...)
	}
	if v.Int32List != nil {
		dst.Int32List = append([]int32(nil), v.Int32List...)
	}
	if v.Int64List != nil {
		dst.Int64List = append([]int64(nil), v.Int64List...)
	}
	if v.FloatList != nil {
		dst.FloatList = append([]float64(nil), v.FloatList...)
	}
	if v.Keys != nil {
		dst.Keys = make([]*Value, len(v.Keys))
		for i, k := range v.Keys {
			dst.Keys[i] = k.Clone()
		}
	}
	if v.Values != nil {
		dst.Values = make([]*Value, len(v.Values))
		for i, vv := range v.Values {
			dst.Values[i] = vv.Clone()
		}
	}
	return dst
}

// Visit walks the value tree in pre- and post-order, diving into children
// when f returns true for the pre-order call.
func (v *Value) Visit(f func(v *Value, isPost bool) (bool, error)) error {
	dive, err := f(v, false)
	if err != nil {
		return err
	}
	if dive {
		for _, k := range v.Keys {
			if err := k.Visit(f); err != nil {
				return err
			}
		}
		for _, vv := range v.Values {
			if err := vv.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(v, true); err != nil {
		return err
	}
	return nil
}

// String renders a debug representation. It is not the wire form; use the
// jsoncodec package for that.
func (v *Value) String() string {
	if v == nil {
		return "null"
	}
	var sb strings.Builder
	v.render(&sb)
	return sb.String()
}

func (v *Value) render(sb *strings.Builder) {
	switch v.Type {
	case NullType:
		sb.WriteString("null")
	case BoolType:
		sb.WriteString(strconv.FormatBool(v.Bool))
	case IntType:
		sb.WriteString(strconv.FormatInt(v.Int, 10))
	case FloatType:
		sb.WriteString(strconv.FormatFloat(v.Float, 'g', -1, 64))
	case StringType:
		sb.WriteString(strconv.Quote(v.Text))
	case Uint8ListType:
		sb.WriteByte('[')
		for i, e := range v.Uint8List {
			if i != 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.FormatUint(uint64(e), 10))
		}
		sb.WriteByte(']')
	case Int32ListType:
		sb.WriteByte('[')
		for i, e := range v.Int32List {
			if i != 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.FormatInt(int64(e), 10))
		}
		sb.WriteByte(']')
	case Int64ListType:
		sb.WriteByte('[')
		for i, e := range v.Int64List {
			if i != 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.FormatInt(e, 10))
		}
		sb.WriteByte(']')
	case FloatListType:
		sb.WriteByte('[')
		for i, e := range v.FloatList {
			if i != 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.FormatFloat(e, 'g', -1, 64))
		}
		sb.WriteByte(']')
	case ListType:
		sb.WriteByte('[')
		for i, e := range v.Values {
			if i != 0 {
				sb.WriteString(", ")
			}
			e.render(sb)
		}
		sb.WriteByte(']')
	case MapType:
		sb.WriteByte('{')
		for i := range v.Keys {
			if i != 0 {
				sb.WriteString(", ")
			}
			v.Keys[i].render(sb)
			sb.WriteString(": ")
			v.Values[i].render(sb)
		}
		sb.WriteByte('}')
	}
}
