// Package value provides the dynamically-typed value model exchanged over
// platform message channels.
//
// # Overview
//
// A Value is a recursive tagged union covering the types the wire codecs
// understand: null, booleans, 64-bit integers, IEEE-754 doubles, UTF-8
// strings, four packed numeric list flavors, ordered lists, and ordered
// maps. Codec packages construct Values while decoding and read them while
// encoding; they never mutate a Value handed to them.
//
// # Value Structure
//
// The Type field selects the variant, and the payload lives in the field
// matching that variant. A Value's variant never changes after
// construction.
//
// # Creating Values
//
// Use constructor functions to create values:
//
//	v := value.FromString("hello")
//	n := value.FromInt(42)
//	list := value.FromSlice([]*value.Value{value.FromInt(1), value.FromInt(2)})
//	m := value.NewMap()
//	m.Set(value.FromString("key"), value.FromString("val"))
//
// # Maps
//
// For MapType values, Keys[i] is the key for the value at Values[i], so
// there are always as many keys as values. Keys are arbitrary Values and
// are not required to be strings. Insertion order is preserved. Set
// replaces the value at the first deep-equal key and appends otherwise,
// so duplicate keys cannot be introduced through Set.
//
// # Lists
//
// ListType values hold their elements in Values. Children are owned by
// their container; sharing a child between two containers is allowed, in
// which case its lifetime is that of the longest-lived holder.
//
// # Comparison
//
// Values can be compared for deep equality and ordered:
//
//	equal := value.Equal(a, b)
//	c := value.Compare(a, b)
//
// # Thread Safety
//
// Values are not synchronized. Construct-then-share is safe as long as no
// goroutine mutates a shared Value.
//
// # Related Packages
//
//   - github.com/embedkit/jsonwire/codec - message codec contract
//   - github.com/embedkit/jsonwire/jsoncodec - JSON wire codec over Values
package value
