package convert

import (
	"reflect"
	"testing"
)

func TestPathMapPlacesValueAtPath(t *testing.T) {
	t.Parallel()

	m := pathMap([]string{"a", "b", "c"}, String("v"))

	got, ok := m.Leaf("a", "b", "c")
	if !ok || got != "v" {
		t.Fatalf("Leaf(a,b,c) = %q, %v; want \"v\", true", got, ok)
	}
	if _, ok := m.Lookup("a", "b", "c", "d"); ok {
		t.Fatalf("lookup past a leaf should fail")
	}
}

func TestPathMapSingleSegment(t *testing.T) {
	t.Parallel()

	m := pathMap([]string{"only"}, String("v"))
	want := Map{"only": String("v")}
	if !reflect.DeepEqual(m, want) {
		t.Fatalf("pathMap = %#v, want %#v", m, want)
	}
}

func TestPathMapEmptyPathPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatalf("pathMap(nil, v) did not panic")
		}
	}()
	pathMap(nil, String("v"))
}

func TestMergeDisjointKeys(t *testing.T) {
	t.Parallel()

	dst := Map{"a": String("1")}
	got := merge(dst, Map{"b": String("2")})

	want := Map{"a": String("1"), "b": String("2")}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("merge = %#v, want %#v", got, want)
	}
}

func TestMergeRecursesIntoSharedMaps(t *testing.T) {
	t.Parallel()

	dst := Map{"a": Map{"b": String("1")}}
	got := merge(dst, Map{"a": Map{"c": String("2")}})

	want := Map{"a": Map{"b": String("1"), "c": String("2")}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("merge = %#v, want %#v", got, want)
	}
}

func TestMergeReplacesOnKindMismatch(t *testing.T) {
	t.Parallel()

	// Leaf replaced by map.
	got := merge(Map{"a": String("1")}, Map{"a": Map{"b": String("2")}})
	want := Map{"a": Map{"b": String("2")}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("leaf->map merge = %#v, want %#v", got, want)
	}

	// Map replaced by leaf.
	got = merge(Map{"a": Map{"b": String("1")}}, Map{"a": String("2")})
	want = Map{"a": String("2")}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("map->leaf merge = %#v, want %#v", got, want)
	}
}

func TestMergeDoesNotAliasSourceMaps(t *testing.T) {
	t.Parallel()

	src := Map{"a": Map{"b": String("1")}}
	dst := merge(Map{}, src)

	dst["a"].(Map)["b"] = String("mutated")
	if got, _ := src.Leaf("a", "b"); got != "1" {
		t.Fatalf("mutating merged result changed src: %q", got)
	}
}

func TestExtendCopiesBase(t *testing.T) {
	t.Parallel()

	base := make([]string, 1, 4)
	base[0] = "root"

	p1 := extend(base, "x")
	p2 := extend(base, "y")
	if p1[1] != "x" || p2[1] != "y" {
		t.Fatalf("sibling paths share a backing array: %v, %v", p1, p2)
	}
	if len(base) != 1 || base[0] != "root" {
		t.Fatalf("extend mutated base: %v", base)
	}
}
