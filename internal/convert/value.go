// Package convert transforms a parsed EVE API response document into a
// generic nested key-value structure that is usable without a predefined
// schema.
//
// The output shape is uniform regardless of the (unknown, evolving) shape of
// the source documents:
//
//   - an element's simple text content is reachable under its "text" key,
//   - an element's own attributes are reachable under its "attributes" key,
//   - nested elements are reachable by tag name,
//   - tabular <rowset> collections become maps keyed by each row's designated
//     key attribute, so rows are randomly addressable instead of positionally
//     enumerated.
//
// Values are preserved as raw strings through the whole conversion; no
// numeric, boolean, or date coercion happens here. Conversion is a pure
// function of its input tree: it performs no I/O, never logs, and is safe to
// invoke concurrently on independent documents.
package convert

// Value is a single entry in a converted document: either a String leaf or a
// nested Map. The set of implementations is closed; callers can switch over
// the two cases exhaustively.
type Value interface {
	isValue()
}

// String is a leaf value. Leaves carry raw attribute or text content exactly
// as it appeared on the wire.
type String string

func (String) isValue() {}

// Map is an inner node: a mapping from key to Value. Map is the result type
// of a whole-document conversion.
type Map map[string]Value

func (Map) isValue() {}

// Lookup walks path through m and returns the value found there. The second
// return is false when any segment is absent or crosses a leaf.
func (m Map) Lookup(path ...string) (Value, bool) {
	cur := m
	for i, seg := range path {
		v, ok := cur[seg]
		if !ok {
			return nil, false
		}
		if i == len(path)-1 {
			return v, true
		}
		next, ok := v.(Map)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, len(path) > 0
}

// Leaf returns the string leaf at path. It is false when path is absent or
// names an inner node.
func (m Map) Leaf(path ...string) (string, bool) {
	v, ok := m.Lookup(path...)
	if !ok {
		return "", false
	}
	s, ok := v.(String)
	return string(s), ok
}

// Node returns the inner Map at path. It is false when path is absent or
// names a leaf.
func (m Map) Node(path ...string) (Map, bool) {
	v, ok := m.Lookup(path...)
	if !ok {
		return nil, false
	}
	n, ok := v.(Map)
	return n, ok
}

// Text returns the text content recorded for the element at path, i.e. the
// leaf at path + "text".
func (m Map) Text(path ...string) (string, bool) {
	return m.Leaf(append(append([]string(nil), path...), textKey)...)
}

// attrsValue copies a parser attribute map into a Map of String leaves.
func attrsValue(attrs map[string]string) Map {
	out := make(Map, len(attrs))
	for k, v := range attrs {
		out[k] = String(v)
	}
	return out
}
