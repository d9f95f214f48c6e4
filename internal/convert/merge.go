package convert

// pathMap builds a singly-nested Map whose sole leaf is v at the given key
// path: pathMap([k1 k2 k3], v) == {k1: {k2: {k3: v}}}.
//
// path must not be empty; every caller extends an existing non-empty path, so
// an empty path is a programming error and panics.
func pathMap(path []string, v Value) Map {
	if len(path) == 0 {
		panic("convert: pathMap called with empty path")
	}
	root := Map{}
	cur := root
	for _, seg := range path[:len(path)-1] {
		next := Map{}
		cur[seg] = next
		cur = next
	}
	cur[path[len(path)-1]] = v
	return root
}

// merge folds src into dst recursively and returns dst. For each key in src:
// when both sides hold a Map the sub-maps are merged (union of sub-keys);
// otherwise the incoming value replaces whatever dst held, whether leaf or
// map. This asymmetry lets the converter build one partial Map per child in
// isolation and fold them together without losing siblings that share a
// prefix.
//
// merge mutates dst and owns it afterwards. Map values taken from src are
// merged into fresh maps, so dst never aliases src's sub-maps.
func merge(dst, src Map) Map {
	for k, v := range src {
		if sv, ok := v.(Map); ok {
			dv, ok := dst[k].(Map)
			if !ok {
				dv = Map{}
			}
			dst[k] = merge(dv, sv)
			continue
		}
		dst[k] = v
	}
	return dst
}

// extend returns a new path slice holding base followed by segs. The copy
// keeps sibling conversions from sharing a backing array.
func extend(base []string, segs ...string) []string {
	out := make([]string, 0, len(base)+len(segs))
	out = append(out, base...)
	return append(out, segs...)
}
