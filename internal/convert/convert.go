package convert

import (
	"fmt"
	"strings"

	"eveapi/internal/xmldom"
)

// Reserved vocabulary of the response-document contract. These names must
// match exactly for rowset detection to trigger; any other element tag is
// treated as a plain nested element regardless of its attributes.
const (
	rowsetTag     = "rowset"
	rowsetNameAtt = "name"
	rowsetKeyAtt  = "key"

	textKey = "text"
	attrKey = "attributes"
)

// Document converts a parsed response document into a Map. The root element's
// tag seeds the key path, so a ServerStatus response becomes
//
//	{eveapi: {attributes: {version: "2"},
//	          currentTime: {text: "..."},
//	          result: {serverOpen: {text: "True"}, ...},
//	          cachedUntil: {text: "..."}}}
//
// The returned Map is newly constructed and shares nothing with the input
// tree. Document fails only on malformed rowset structure (see
// StructureError); it never partially commits a result.
func Document(root *xmldom.Node) (Map, error) {
	if root == nil || root.Kind != xmldom.Element {
		return nil, &StructureError{Msg: "document has no root element"}
	}
	path := []string{root.Name}
	out := Map{}
	if len(root.Attr) > 0 {
		merge(out, pathMap(extend(path, attrKey), attrsValue(root.Attr)))
	}
	sub, err := element(root, path)
	if err != nil {
		return nil, err
	}
	return merge(out, sub), nil
}

// element converts the children of el, located at path, into a partial Map
// that the caller merges into its accumulating result.
//
// Per child, in document order:
//
//   - text with non-empty trimmed content lands at path + "text"
//     (whitespace-only nodes are formatting artifacts and are skipped),
//   - a rowset element contributes its attributes at path + "attributes" and
//     its rows at path + <its "name" attribute>,
//   - any other element contributes its attributes at
//     path + <tag> + "attributes" and recurses at path + <tag>.
func element(el *xmldom.Node, path []string) (Map, error) {
	result := Map{}
	for _, child := range el.Children {
		switch child.Kind {
		case xmldom.Text:
			text := strings.TrimSpace(child.Text)
			if text == "" {
				continue
			}
			merge(result, pathMap(extend(path, textKey), String(text)))

		case xmldom.Element:
			if child.Name == rowsetTag {
				name, ok := child.Attr[rowsetNameAtt]
				if !ok {
					return nil, &StructureError{Path: path, Msg: `rowset element has no "name" attribute`}
				}
				key, ok := child.Attr[rowsetKeyAtt]
				if !ok {
					return nil, &StructureError{Path: path, Msg: `rowset element has no "key" attribute`}
				}
				merge(result, pathMap(extend(path, attrKey), attrsValue(child.Attr)))
				rows, err := rowset(child, extend(path, name), key)
				if err != nil {
					return nil, err
				}
				merge(result, rows)
				continue
			}

			childPath := extend(path, child.Name)
			if len(child.Attr) > 0 {
				merge(result, pathMap(extend(childPath, attrKey), attrsValue(child.Attr)))
			}
			sub, err := element(child, childPath)
			if err != nil {
				return nil, err
			}
			merge(result, sub)
		}
	}
	return result, nil
}

// rowset converts a repeated-row collection into a Map at path, keyed by each
// row's key attribute value, with the row's full attribute map as the entry.
// Rows are processed in document order; when two rows share a key value the
// later row's attribute map replaces the earlier one wholesale; there is no
// field-level merge across distinct rows.
func rowset(el *xmldom.Node, path []string, key string) (Map, error) {
	rows := Map{}
	for _, child := range el.Children {
		if child.Kind != xmldom.Element {
			continue
		}
		kv, ok := child.Attr[key]
		if !ok {
			return nil, &StructureError{Path: path, Msg: fmt.Sprintf("row has no %q attribute", key)}
		}
		rows[kv] = attrsValue(child.Attr)
	}
	return pathMap(path, rows), nil
}
