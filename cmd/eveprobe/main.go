// Command eveprobe inspects a saved EVE API XML response and prints a JSON
// report describing its structure: the root tag, a content hash, every leaf
// path the converter produces, and each rowset with its key and columns.
//
// It is the offline companion to evefetch: point it at a captured response
// (from -raw-out, or stdin) to see what a conversion will yield before wiring
// the document into storage.
//
// Example usage:
//
//	eveprobe -i response.xml -pretty
//	curl -s https://api.eveonline.com/server/ServerStatus.xml.aspx | eveprobe
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"
	"unicode"

	"github.com/zeebo/xxh3"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"eveapi/internal/convert"
	"eveapi/internal/xmldom"
)

// Report is the JSON document eveprobe emits.
type Report struct {
	RootTag string `json:"root_tag"`
	Bytes   int    `json:"bytes"`
	Hash    string `json:"hash"` // xxh3 of the raw input

	// LeafPaths lists every dotted path to a string leaf in the converted
	// document, sorted.
	LeafPaths []string `json:"leaf_paths"`

	// Rowsets describes each <rowset> element found in the source tree.
	Rowsets []RowsetInfo `json:"rowsets,omitempty"`

	// NonNFCPaths lists leaf paths whose value is not NFC-normalized or
	// contains invisible format characters. Such values compare unequal to
	// their visually identical forms and tend to break downstream joins.
	NonNFCPaths []string `json:"non_nfc_paths,omitempty"`
}

// RowsetInfo summarizes one <rowset> element.
type RowsetInfo struct {
	Path    string   `json:"path"` // dotted path of the enclosing elements
	Name    string   `json:"name"`
	Key     string   `json:"key"`
	Columns []string `json:"columns,omitempty"`
	Rows    int      `json:"rows"`
}

func main() {
	input := flag.String("i", "", "input XML file (default: stdin)")
	pretty := flag.Bool("pretty", false, "pretty-print JSON output")
	flag.Parse()

	raw, err := readInput(*input)
	if err != nil {
		log.Fatalf("%v", err)
	}

	report, err := buildReport(raw)
	if err != nil {
		log.Fatalf("%v", err)
	}

	var out []byte
	if *pretty {
		out, err = json.MarshalIndent(report, "", "  ")
	} else {
		out, err = json.Marshal(report)
	}
	if err != nil {
		log.Fatalf("encode report: %v", err)
	}
	fmt.Println(string(out))
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// buildReport parses and converts raw and assembles the full report.
func buildReport(raw []byte) (Report, error) {
	root, err := xmldom.Parse(bytes.NewReader(raw))
	if err != nil {
		return Report{}, fmt.Errorf("parse: %w", err)
	}
	doc, err := convert.Document(root)
	if err != nil {
		return Report{}, err
	}

	report := Report{
		RootTag: root.Name,
		Bytes:   len(raw),
		Hash:    fmt.Sprintf("%016x", xxh3.Hash(raw)),
	}

	leafWalk(doc, nil, func(path []string, value string) {
		dotted := strings.Join(path, ".")
		report.LeafPaths = append(report.LeafPaths, dotted)
		if !isNFCClean(value) {
			report.NonNFCPaths = append(report.NonNFCPaths, dotted)
		}
	})
	sort.Strings(report.LeafPaths)
	sort.Strings(report.NonNFCPaths)

	report.Rowsets = collectRowsets(root, nil)
	return report, nil
}

// leafWalk invokes fn for every String leaf in m, depth first. The path slice
// passed to fn is only valid for the duration of the call.
func leafWalk(m convert.Map, path []string, fn func(path []string, value string)) {
	for k, v := range m {
		switch val := v.(type) {
		case convert.String:
			fn(append(path, k), string(val))
		case convert.Map:
			leafWalk(val, append(path, k), fn)
		}
	}
}

// collectRowsets walks the parsed tree and records every rowset element with
// its declared metadata and row count.
func collectRowsets(n *xmldom.Node, path []string) []RowsetInfo {
	var out []RowsetInfo
	if n.Kind != xmldom.Element {
		return out
	}

	if n.Name == "rowset" {
		info := RowsetInfo{
			Path: strings.Join(path, "."),
			Name: n.Attr["name"],
			Key:  n.Attr["key"],
		}
		if cols := n.Attr["columns"]; cols != "" {
			for _, c := range strings.Split(cols, ",") {
				info.Columns = append(info.Columns, strings.TrimSpace(c))
			}
		}
		for _, child := range n.Children {
			if child.Kind == xmldom.Element {
				info.Rows++
			}
		}
		return append(out, info)
	}

	childPath := append(path, n.Name)
	for _, child := range n.Children {
		if child.Kind != xmldom.Element {
			continue
		}
		out = append(out, collectRowsets(child, childPath)...)
	}
	return out
}

// isNFCClean reports whether s is already NFC-normalized and free of
// invisible format characters (category Cf, e.g. zero-width joiners).
func isNFCClean(s string) bool {
	clean, _, err := transform.String(transform.Chain(
		norm.NFC,
		runes.Remove(runes.In(unicode.Cf)),
	), s)
	if err != nil {
		return false
	}
	return clean == s
}
