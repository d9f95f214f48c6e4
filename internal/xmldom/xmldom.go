// Package xmldom builds a minimal, read-only DOM from an XML byte stream.
//
// The tree is the input contract of the convert package: element nodes carry
// a tag name, an attribute map, and ordered children; text nodes carry raw
// character data. Comments, processing instructions, and directives are
// dropped. The package does not validate against any schema; it only demands
// well-formed XML from encoding/xml.
package xmldom

import (
	"errors"
	"fmt"
	"io"

	"encoding/xml"
)

// Kind discriminates node types.
type Kind int

const (
	// Element is a tagged node with attributes and children.
	Element Kind = iota
	// Text is a character-data node.
	Text
)

// Node is one node of a parsed document. Owned by the parser; callers treat
// it as read-only.
type Node struct {
	Kind     Kind
	Name     string            // element tag (local name); empty for text nodes
	Attr     map[string]string // element attributes; nil when there are none
	Text     string            // character data; empty for element nodes
	Children []*Node           // element children in document order
}

// maxDepth caps element nesting. Real API responses stay within a handful of
// levels; anything deeper is treated as hostile input and fails the parse.
const maxDepth = 512

// Parse reads a single XML document from r and returns its root element.
// Character data is kept verbatim; whitespace trimming is the converter's
// concern.
func Parse(r io.Reader) (*Node, error) {
	dec := xml.NewDecoder(r)

	var (
		root  *Node
		stack []*Node
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("xmldom: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if len(stack) >= maxDepth {
				return nil, fmt.Errorf("xmldom: element nesting exceeds %d levels", maxDepth)
			}
			n := &Node{Kind: Element, Name: t.Name.Local}
			if len(t.Attr) > 0 {
				n.Attr = make(map[string]string, len(t.Attr))
				for _, a := range t.Attr {
					n.Attr[a.Name.Local] = a.Value
				}
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("xmldom: multiple root elements (<%s> after </%s>)", n.Name, root.Name)
				}
				root = n
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			}
			stack = append(stack, n)

		case xml.EndElement:
			stack = stack[:len(stack)-1]

		case xml.CharData:
			if len(stack) == 0 {
				continue // whitespace around the root
			}
			parent := stack[len(stack)-1]
			// CharData's backing array is reused by the decoder; copy it.
			parent.Children = append(parent.Children, &Node{Kind: Text, Text: string(t)})
		}
	}

	if root == nil {
		return nil, errors.New("xmldom: no root element")
	}
	if len(stack) != 0 {
		return nil, fmt.Errorf("xmldom: unexpected end of input inside <%s>", stack[len(stack)-1].Name)
	}
	return root, nil
}
