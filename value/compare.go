package value

import (
	"cmp"
	"slices"
	"strings"
)

// Equal reports deep equality: same variant, same payload, same order of
// list elements and map entries.
func Equal(a, b *Value) bool {
	return Compare(a, b) == 0
}

// Compare returns an integer comparing two values.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Values of different variants order by variant rank.
func Compare(a, b *Value) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case NullType:
		return 0
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case IntType:
		return cmp.Compare(a.Int, b.Int)
	case FloatType:
		return cmp.Compare(a.Float, b.Float)
	case StringType:
		return strings.Compare(a.Text, b.Text)
	case Uint8ListType:
		return slices.Compare(a.Uint8List, b.Uint8List)
	case Int32ListType:
		return slices.Compare(a.Int32List, b.Int32List)
	case Int64ListType:
		return slices.Compare(a.Int64List, b.Int64List)
	case FloatListType:
		return slices.Compare(a.FloatList, b.FloatList)
	case ListType:
		return compareLists(a, b)
	case MapType:
		return compareMaps(a, b)
	}
	return 0
}

// rank returns the sorting rank of a variant.
// Order: Null < Bool < Int < Float < String < packed lists < List < Map
func rank(t Type) int {
	switch t {
	case NullType:
		return 0
	case BoolType:
		return 1
	case IntType:
		return 2
	case FloatType:
		return 3
	case StringType:
		return 4
	case Uint8ListType:
		return 5
	case Int32ListType:
		return 6
	case Int64ListType:
		return 7
	case FloatListType:
		return 8
	case ListType:
		return 9
	case MapType:
		return 10
	}
	return 100
}

func compareLists(a, b *Value) int {
	lenA := len(a.Values)
	lenB := len(b.Values)
	for i := 0; i < min(lenA, lenB); i++ {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

func compareMaps(a, b *Value) int {
	lenA := len(a.Keys)
	lenB := len(b.Keys)
	for i := 0; i < min(lenA, lenB); i++ {
		if c := Compare(a.Keys[i], b.Keys[i]); c != 0 {
			return c
		}
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}
