package value

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMapSetReplacesEqualKey(t *testing.T) {
	m := NewMap()
	m.Set(FromString("a"), FromInt(1))
	m.Set(FromString("b"), FromInt(2))
	m.Set(FromString("a"), FromInt(3))

	if m.Len() != 2 {
		t.Fatalf("got %d entries, want 2", m.Len())
	}
	// replacement keeps the original entry position
	if m.Keys[0].Text != "a" || m.Values[0].Int != 3 {
		t.Errorf("entry 0 got %s:%s", m.Keys[0], m.Values[0])
	}
	if m.Keys[1].Text != "b" || m.Values[1].Int != 2 {
		t.Errorf("entry 1 got %s:%s", m.Keys[1], m.Values[1])
	}
}

func TestMapNonStringKeys(t *testing.T) {
	m := NewMap()
	m.Set(FromInt(7), FromString("seven"))
	m.Set(Null(), FromBool(true))

	if got := m.Get(FromInt(7)); got == nil || got.Text != "seven" {
		t.Errorf("Get(7) = %s", got)
	}
	if got := m.Get(Null()); got == nil || !got.Bool {
		t.Errorf("Get(null) = %s", got)
	}
	if got := m.Get(FromInt(8)); got != nil {
		t.Errorf("Get(8) = %s, want nil", got)
	}
}

func TestMapGetString(t *testing.T) {
	m := NewMap()
	m.Set(FromString("name"), FromString("count"))
	m.Set(FromInt(1), FromString("not this"))

	if got := m.GetString("name"); got == nil || got.Text != "count" {
		t.Errorf("GetString(name) = %s", got)
	}
	if got := m.GetString("missing"); got != nil {
		t.Errorf("GetString(missing) = %s, want nil", got)
	}
}

func TestLen(t *testing.T) {
	lts := []struct {
		v *Value
		n int
	}{
		{Null(), 0},
		{FromString("xy"), 0},
		{FromUint8List([]uint8{1, 2, 3}), 3},
		{FromInt32List([]int32{1}), 1},
		{FromInt64List(nil), 0},
		{FromFloatList([]float64{0.5, 0.25}), 2},
		{FromSlice([]*Value{Null(), Null()}), 2},
		{NewMap(), 0},
	}
	for _, lt := range lts {
		if got := lt.v.Len(); got != lt.n {
			t.Errorf("Len(%s) = %d, want %d", lt.v, got, lt.n)
		}
	}
}

func TestCloneIsDeep(t *testing.T) {
	m := NewMap()
	m.Set(FromString("list"), FromSlice([]*Value{FromInt(1), FromInt(2)}))
	m.Set(FromString("bytes"), FromUint8List([]uint8{1, 2}))

	c := m.Clone()
	if d := cmp.Diff(m, c); d != "" {
		t.Fatalf("clone differs: %s", d)
	}
	c.Values[0].Values[0].Int = 99
	c.Values[1].Uint8List[0] = 99
	if m.Values[0].Values[0].Int != 1 {
		t.Error("clone shares list elements")
	}
	if m.Values[1].Uint8List[0] != 1 {
		t.Error("clone shares packed list backing array")
	}
}

func TestSharedChild(t *testing.T) {
	shared := FromString("shared")
	a := FromSlice([]*Value{shared})
	b := FromSlice([]*Value{shared})
	if a.Values[0] != b.Values[0] {
		t.Error("shared child duplicated")
	}
}

func TestVisit(t *testing.T) {
	m := NewMap()
	m.Set(FromString("a"), FromSlice([]*Value{FromInt(1), FromInt(2)}))

	pre := 0
	err := m.Visit(func(v *Value, isPost bool) (bool, error) {
		if !isPost {
			pre++
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	// map + key + list + 2 ints
	if pre != 5 {
		t.Errorf("visited %d nodes, want 5", pre)
	}
}

func TestString(t *testing.T) {
	sts := []struct {
		v    *Value
		want string
	}{
		{nil, "null"},
		{Null(), "null"},
		{FromBool(true), "true"},
		{FromInt(-42), "-42"},
		{FromFloat(0.5), "0.5"},
		{FromString("hi"), `"hi"`},
		{FromInt32List([]int32{0, -1}), "[0, -1]"},
		{FromSlice([]*Value{FromInt(1), FromString("x")}), `[1, "x"]`},
	}
	for _, st := range sts {
		if got := st.v.String(); got != st.want {
			t.Errorf("String() = %q, want %q", got, st.want)
		}
	}

	m := NewMap()
	m.Set(FromString("k"), FromInt(1))
	if got, want := m.String(), `{"k": 1}`; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
