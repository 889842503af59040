package jsoncodec

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/embedkit/jsonwire/codec"
	"github.com/embedkit/jsonwire/value"

	"github.com/google/go-cmp/cmp"
)

var _ codec.MessageCodec = New()

func roundTripValues() []*value.Value {
	deep := value.NewMap()
	deep.Set(value.FromString("method"), value.FromString("TextInput.setClient"))
	args := value.NewList()
	args.Append(value.FromInt(1))
	opts := value.NewMap()
	opts.Set(value.FromString("inputAction"), value.FromString("TextInputAction.done"))
	opts.Set(value.FromString("obscureText"), value.FromBool(false))
	args.Append(opts)
	deep.Set(value.FromString("args"), args)

	return []*value.Value{
		value.Null(),
		value.FromBool(true),
		value.FromBool(false),
		value.FromInt(0),
		value.FromInt(math.MinInt64),
		value.FromInt(math.MaxInt64),
		value.FromFloat(0),
		value.FromFloat(-1.5),
		value.FromFloat(3.25),
		value.FromString(""),
		value.FromString("hello\nworld\t\"quoted\" \\ 日本語 \x01"),
		value.NewList(),
		value.FromSlice([]*value.Value{value.Null(), value.FromInt(1), value.FromString("x")}),
		value.NewMap(),
		deep,
	}
}

func TestRoundTrip(t *testing.T) {
	jc := New()
	for _, v := range roundTripValues() {
		d, err := jc.EncodeMessage(v)
		if err != nil {
			t.Errorf("encode %s: %v", v, err)
			continue
		}
		got, err := jc.DecodeMessage(d)
		if err != nil {
			t.Errorf("decode %q: %v", d, err)
			continue
		}
		if !value.Equal(got, v) {
			t.Errorf("round trip %s via %q = %s", v, d, got)
		}
	}
}

func TestRoundTripPackedLists(t *testing.T) {
	// packed numeric lists encode as plain JSON arrays; they decode as
	// ListType with the element values preserved
	jc := New()
	d, err := jc.EncodeMessage(value.FromInt32List([]int32{0, -1, 2, -3, 4}))
	if err != nil {
		t.Fatal(err)
	}
	got, err := jc.DecodeMessage(d)
	if err != nil {
		t.Fatal(err)
	}
	want := value.FromSlice([]*value.Value{
		value.FromInt(0), value.FromInt(-1), value.FromInt(2),
		value.FromInt(-3), value.FromInt(4),
	})
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("packed list round trip differs: %s", diff)
	}
}

func TestRoundTripMinInt64Text(t *testing.T) {
	jc := New()
	text, err := jc.EncodeString(value.FromInt(math.MinInt64))
	if err != nil {
		t.Fatal(err)
	}
	if text != "-9223372036854775808" {
		t.Fatalf("minInt64 text = %q", text)
	}
	v, err := jc.DecodeString(text)
	if err != nil {
		t.Fatal(err)
	}
	if v.Type != value.IntType || v.Int != math.MinInt64 {
		t.Errorf("minInt64 decoded as %s", v)
	}
}

func TestDecodeFreshResults(t *testing.T) {
	// each decode allocates a fresh result
	jc := New()
	a, err := jc.DecodeString("[1,2]")
	if err != nil {
		t.Fatal(err)
	}
	b, err := jc.DecodeString("[1,2]")
	if err != nil {
		t.Fatal(err)
	}
	b.Values[0].Int = 9
	if a.Values[0].Int != 1 {
		t.Error("decode results share state")
	}
}

func TestConcurrentUse(t *testing.T) {
	jc := New()
	values := roundTripValues()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				v := values[j%len(values)]
				d, err := jc.EncodeMessage(v)
				if err != nil {
					t.Error(err)
					return
				}
				got, err := jc.DecodeMessage(d)
				if err != nil {
					t.Error(err)
					return
				}
				if !value.Equal(got, v) {
					t.Errorf("round trip %s", v)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestNonStringKeysEncodeOnly(t *testing.T) {
	// the writer emits non-string keys for the peer decoder; this
	// reader only accepts string keys
	jc := New()
	m := value.NewMap()
	m.Set(value.FromInt(1), value.FromString("one"))
	text, err := jc.EncodeString(m)
	if err != nil {
		t.Fatal(err)
	}
	if text != `{1:"one"}` {
		t.Fatalf("text = %q", text)
	}
	if _, err := jc.DecodeString(text); !errors.Is(err, ErrInvalidObjectKeyType) {
		t.Errorf("err = %v, want ErrInvalidObjectKeyType", err)
	}
}

func TestAdditionalDataCount(t *testing.T) {
	jc := New()
	_, err := jc.DecodeString("1 xyz")
	if err == nil {
		t.Fatal("expected error")
	}
	if got, want := err.Error(), "additional data: unused 3 bytes after JSON message"; got != want {
		t.Errorf("err = %q, want %q", got, want)
	}
}
