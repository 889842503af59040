package jsoncodec

import (
	"bytes"
	"strings"
	"testing"

	"github.com/embedkit/jsonwire/value"
)

func renderToString(t *testing.T, v *value.Value, opts ...RenderOption) string {
	t.Helper()
	buf := bytes.NewBuffer(nil)
	if err := Render(v, buf, opts...); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestRenderScalars(t *testing.T) {
	rts := []struct {
		v    *value.Value
		want string
	}{
		{nil, "null\n"},
		{value.Null(), "null\n"},
		{value.FromBool(true), "true\n"},
		{value.FromInt(42), "42\n"},
		{value.FromFloat(1), "1.0\n"},
		{value.FromString("hi"), "\"hi\"\n"},
		{value.FromInt32List([]int32{1, -2}), "[1,-2]\n"},
		{value.NewList(), "[]\n"},
		{value.NewMap(), "{}\n"},
	}
	for _, rt := range rts {
		if got := renderToString(t, rt.v); got != rt.want {
			t.Errorf("render %s = %q, want %q", rt.v, got, rt.want)
		}
	}
}

func TestRenderIndented(t *testing.T) {
	m := value.NewMap()
	m.Set(value.FromString("a"), value.FromInt(1))
	m.Set(value.FromString("b"), value.FromSlice([]*value.Value{
		value.FromInt(2), value.FromInt(3),
	}))

	want := `{
  "a": 1,
  "b": [
    2,
    3
  ]
}
`
	if got := renderToString(t, m); got != want {
		t.Errorf("render = %q, want %q", got, want)
	}
}

func TestRenderKeyColorUsesKeyType(t *testing.T) {
	m := value.NewMap()
	m.Set(value.FromInt(7), value.FromString("seven"))
	m.Set(value.FromString("k"), value.FromInt(1))

	tagged := func(rs *RenderState) {
		rs.Color = func(t value.Type, a ColorAttr, s string) string {
			if a != KeyColor {
				return s
			}
			return "<" + t.String() + ">" + s
		}
	}
	got := renderToString(t, m, tagged)
	for _, want := range []string{`<Int>7`, `<String>"k"`} {
		if !strings.Contains(got, want) {
			t.Errorf("render = %q, missing %q", got, want)
		}
	}
}

func TestRenderDecodesToSameValue(t *testing.T) {
	jc := New()
	for _, v := range roundTripValues() {
		text := renderToString(t, v)
		got, err := jc.DecodeString(text[:len(text)-1])
		if err != nil {
			t.Errorf("decode rendered %q: %v", text, err)
			continue
		}
		if v == nil {
			v = value.Null()
		}
		if !value.Equal(got, v) {
			t.Errorf("rendered %s decodes to %s", v, got)
		}
	}
}
