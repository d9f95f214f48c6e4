package xmldom

import (
	"strings"
	"testing"
)

func TestParseStructure(t *testing.T) {
	t.Parallel()

	root, err := Parse(strings.NewReader(`<root a="1" b="2"><child>hi</child><child/></root>`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if root.Kind != Element || root.Name != "root" {
		t.Fatalf("root = %+v", root)
	}
	if root.Attr["a"] != "1" || root.Attr["b"] != "2" {
		t.Fatalf("root attrs = %v", root.Attr)
	}
	if len(root.Children) != 2 {
		t.Fatalf("got %d children, want 2", len(root.Children))
	}

	first := root.Children[0]
	if first.Name != "child" || len(first.Children) != 1 {
		t.Fatalf("first child = %+v", first)
	}
	text := first.Children[0]
	if text.Kind != Text || text.Text != "hi" {
		t.Fatalf("text node = %+v", text)
	}

	second := root.Children[1]
	if second.Name != "child" || second.Attr != nil || len(second.Children) != 0 {
		t.Fatalf("empty child = %+v", second)
	}
}

func TestParseKeepsTextVerbatim(t *testing.T) {
	t.Parallel()

	root, err := Parse(strings.NewReader("<root>  padded  </root>"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := root.Children[0].Text; got != "  padded  " {
		t.Fatalf("text = %q, want untouched whitespace", got)
	}
}

func TestParseDropsCommentsAndPIs(t *testing.T) {
	t.Parallel()

	root, err := Parse(strings.NewReader(`<?xml version="1.0"?><root><!-- note --><a/></root>`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(root.Children) != 1 || root.Children[0].Name != "a" {
		t.Fatalf("children = %+v", root.Children)
	}
}

func TestParseMultipleRoots(t *testing.T) {
	t.Parallel()

	_, err := Parse(strings.NewReader("<a/><b/>"))
	if err == nil || !strings.Contains(err.Error(), "multiple root") {
		t.Fatalf("err = %v, want multiple root error", err)
	}
}

func TestParseEmptyInput(t *testing.T) {
	t.Parallel()

	_, err := Parse(strings.NewReader(""))
	if err == nil || !strings.Contains(err.Error(), "no root element") {
		t.Fatalf("err = %v, want no root element error", err)
	}
}

func TestParseTruncatedInput(t *testing.T) {
	t.Parallel()

	_, err := Parse(strings.NewReader("<root><child>"))
	if err == nil {
		t.Fatalf("truncated document parsed without error")
	}
}

func TestParseMalformedXML(t *testing.T) {
	t.Parallel()

	_, err := Parse(strings.NewReader("<root></mismatch>"))
	if err == nil {
		t.Fatalf("mismatched tags parsed without error")
	}
}

func TestParseDepthLimit(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	for i := 0; i <= maxDepth; i++ {
		b.WriteString("<e>")
	}
	_, err := Parse(strings.NewReader(b.String()))
	if err == nil || !strings.Contains(err.Error(), "nesting exceeds") {
		t.Fatalf("err = %v, want nesting limit error", err)
	}
}

func TestParseDeepButLegalNesting(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	for i := 0; i < maxDepth; i++ {
		b.WriteString("<e>")
	}
	for i := 0; i < maxDepth; i++ {
		b.WriteString("</e>")
	}
	if _, err := Parse(strings.NewReader(b.String())); err != nil {
		t.Fatalf("nesting at the limit failed: %v", err)
	}
}
