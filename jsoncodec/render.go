package jsoncodec

import (
	"io"
	"strings"

	"github.com/embedkit/jsonwire/value"
)

// RenderState carries the indented-rendering settings. The wire form from
// EncodeMessage stays compact; Render exists for humans.
type RenderState struct {
	indent, depth int

	Color func(value.Type, ColorAttr, string) string
}

type RenderOption func(*RenderState)

func RenderIndent(n int) RenderOption {
	return func(rs *RenderState) { rs.indent = n }
}
func RenderDepth(n int) RenderOption {
	return func(rs *RenderState) { rs.depth = n }
}
func RenderColors(c *Colors) RenderOption {
	return func(rs *RenderState) { rs.Color = c.Color }
}

// Render writes v as indented JSON text followed by a newline. The output
// decodes to the same value as the compact form; only whitespace differs.
func Render(v *value.Value, w io.Writer, opts ...RenderOption) error {
	rs := &RenderState{indent: 2}
	for _, opt := range opts {
		opt(rs)
	}
	if err := render(v, w, rs); err != nil {
		return err
	}
	return writeText(w, "\n")
}

func writeText(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func (rs *RenderState) color(t value.Type, a ColorAttr, s string) string {
	if rs.Color == nil {
		return s
	}
	return rs.Color(t, a, s)
}

func (rs *RenderState) newline() string {
	return "\n" + strings.Repeat(strings.Repeat(" ", rs.indent), rs.depth)
}

// scalarText reuses the wire writer for leaf values so rendered scalars
// match the wire byte-for-byte.
func scalarText(v *value.Value) (string, error) {
	w := &writer{}
	if err := w.writeValue(v); err != nil {
		return "", err
	}
	return w.buf.String(), nil
}

func render(v *value.Value, w io.Writer, rs *RenderState) error {
	if v == nil || v.Type.IsLeaf() {
		t := value.NullType
		if v != nil {
			t = v.Type
		}
		text, err := scalarText(v)
		if err != nil {
			return err
		}
		return writeText(w, rs.color(t, ValueColor, text))
	}

	switch v.Type {
	case value.ListType:
		return renderList(v, w, rs)
	case value.MapType:
		return renderMap(v, w, rs)
	default:
		panic("type")
	}
}

func renderList(v *value.Value, w io.Writer, rs *RenderState) error {
	if len(v.Values) == 0 {
		return writeText(w, rs.color(value.ListType, SepColor, "[]"))
	}
	if err := writeText(w, rs.color(value.ListType, SepColor, "[")); err != nil {
		return err
	}
	rs.depth++
	for i, e := range v.Values {
		if i != 0 {
			if err := writeText(w, rs.color(value.ListType, SepColor, ",")); err != nil {
				return err
			}
		}
		if err := writeText(w, rs.newline()); err != nil {
			return err
		}
		if err := render(e, w, rs); err != nil {
			return err
		}
	}
	rs.depth--
	if err := writeText(w, rs.newline()); err != nil {
		return err
	}
	return writeText(w, rs.color(value.ListType, SepColor, "]"))
}

func renderMap(v *value.Value, w io.Writer, rs *RenderState) error {
	if len(v.Keys) == 0 {
		return writeText(w, rs.color(value.MapType, SepColor, "{}"))
	}
	if err := writeText(w, rs.color(value.MapType, SepColor, "{")); err != nil {
		return err
	}
	rs.depth++
	for i := range v.Keys {
		if i != 0 {
			if err := writeText(w, rs.color(value.MapType, SepColor, ",")); err != nil {
				return err
			}
		}
		if err := writeText(w, rs.newline()); err != nil {
			return err
		}
		key := v.Keys[i]
		if key != nil && key.Type.IsLeaf() {
			text, err := scalarText(key)
			if err != nil {
				return err
			}
			if err := writeText(w, rs.color(key.Type, KeyColor, text)); err != nil {
				return err
			}
		} else {
			if err := render(key, w, rs); err != nil {
				return err
			}
		}
		if err := writeText(w, rs.color(value.MapType, SepColor, ": ")); err != nil {
			return err
		}
		if err := render(v.Values[i], w, rs); err != nil {
			return err
		}
	}
	rs.depth--
	if err := writeText(w, rs.newline()); err != nil {
		return err
	}
	return writeText(w, rs.color(value.MapType, SepColor, "}"))
}
