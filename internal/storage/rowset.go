package storage

import (
	"fmt"
	"sort"
	"strings"

	"eveapi/internal/convert"
)

// Rowset is the tabular slice of a converted document, ready for
// persistence. Rows are ordered by key value so extraction is deterministic
// even though the source map is unordered.
type Rowset struct {
	// Name is the rowset's map key (the rowset element's "name" attribute).
	Name string

	// KeyAttr names the attribute that uniquely identifies each row.
	KeyAttr string

	// Columns is the insert-order column list: the rowset's advertised
	// "columns" attribute when present, otherwise the union of row fields.
	// KeyAttr is always included.
	Columns []string

	// Rows holds one attribute bag per row, keyed column name to raw value.
	Rows []Row
}

// ExtractRowset pulls the rowset at path out of a converted document. The
// last path segment is the rowset's name; its metadata (key attribute,
// advertised columns) is read from the sibling "attributes" entry that the
// converter places next to it.
//
// Example: for a characters response, path is "eveapi", "result",
// "characters".
func ExtractRowset(doc convert.Map, path ...string) (Rowset, error) {
	if len(path) == 0 {
		return Rowset{}, fmt.Errorf("storage: rowset path must not be empty")
	}
	loc := strings.Join(path, ".")

	node, ok := doc.Node(path...)
	if !ok {
		return Rowset{}, fmt.Errorf("storage: no rowset at %s", loc)
	}

	parent := path[:len(path)-1]
	attrs, ok := doc.Node(append(append([]string(nil), parent...), "attributes")...)
	if !ok {
		return Rowset{}, fmt.Errorf("storage: %s has no sibling attributes entry; not a converted rowset", loc)
	}
	keyAttr, ok := attrs.Leaf("key")
	if !ok {
		return Rowset{}, fmt.Errorf("storage: %s: rowset attributes carry no key", loc)
	}

	rs := Rowset{
		Name:    path[len(path)-1],
		KeyAttr: keyAttr,
	}

	// Deterministic row order: sort by key value.
	keys := make([]string, 0, len(node))
	for k := range node {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		rowNode, ok := node[k].(convert.Map)
		if !ok {
			return Rowset{}, fmt.Errorf("storage: %s: entry %q is not a row map", loc, k)
		}
		row := make(Row, len(rowNode))
		for field, v := range rowNode {
			s, ok := v.(convert.String)
			if !ok {
				return Rowset{}, fmt.Errorf("storage: %s: row %q field %q is not a leaf", loc, k, field)
			}
			row[field] = string(s)
		}
		rs.Rows = append(rs.Rows, row)
	}

	rs.Columns = columnsFor(attrs, rs.Rows, keyAttr)
	return rs, nil
}

// columnsFor resolves the column list: the rowset's advertised "columns"
// attribute when present, otherwise the sorted union of observed row fields.
// The key attribute is prepended when the advertised list omits it.
func columnsFor(attrs convert.Map, rows []Row, keyAttr string) []string {
	if adv, ok := attrs.Leaf("columns"); ok && adv != "" {
		cols := strings.Split(adv, ",")
		for i := range cols {
			cols[i] = strings.TrimSpace(cols[i])
		}
		for _, c := range cols {
			if c == keyAttr {
				return cols
			}
		}
		return append([]string{keyAttr}, cols...)
	}

	seen := map[string]bool{}
	for _, row := range rows {
		for field := range row {
			seen[field] = true
		}
	}
	seen[keyAttr] = true
	cols := make([]string, 0, len(seen))
	for c := range seen {
		cols = append(cols, c)
	}
	sort.Strings(cols)
	return cols
}
