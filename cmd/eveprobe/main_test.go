package main

import (
	"reflect"
	"strings"
	"testing"
)

const charactersXML = `<eveapi version="2">
  <currentTime>2010-10-05 20:28:55</currentTime>
  <result>
    <rowset name="characters" key="characterID" columns="name,characterID,corporationName">
      <row name="Alexis Prey" characterID="1365215823" corporationName="Puppies To the Rescue"/>
      <row name="Second Pilot" characterID="499939401" corporationName="Another Corp"/>
    </rowset>
  </result>
  <cachedUntil>2010-10-05 20:30:55</cachedUntil>
</eveapi>`

func TestBuildReport(t *testing.T) {
	t.Parallel()

	report, err := buildReport([]byte(charactersXML))
	if err != nil {
		t.Fatalf("buildReport: %v", err)
	}

	if report.RootTag != "eveapi" {
		t.Fatalf("root tag = %q", report.RootTag)
	}
	if report.Bytes != len(charactersXML) {
		t.Fatalf("bytes = %d, want %d", report.Bytes, len(charactersXML))
	}
	if len(report.Hash) != 16 {
		t.Fatalf("hash = %q, want 16 hex digits", report.Hash)
	}

	for _, want := range []string{
		"eveapi.attributes.version",
		"eveapi.currentTime.text",
		"eveapi.result.attributes.key",
		"eveapi.result.characters.1365215823.name",
		"eveapi.result.characters.499939401.corporationName",
		"eveapi.cachedUntil.text",
	} {
		if !containsString(report.LeafPaths, want) {
			t.Fatalf("leaf path %q missing from %v", want, report.LeafPaths)
		}
	}
	if !sortedStrings(report.LeafPaths) {
		t.Fatalf("leaf paths not sorted: %v", report.LeafPaths)
	}

	if len(report.Rowsets) != 1 {
		t.Fatalf("rowsets = %+v", report.Rowsets)
	}
	rs := report.Rowsets[0]
	if rs.Path != "eveapi.result" || rs.Name != "characters" || rs.Key != "characterID" || rs.Rows != 2 {
		t.Fatalf("rowset = %+v", rs)
	}
	if want := []string{"name", "characterID", "corporationName"}; !reflect.DeepEqual(rs.Columns, want) {
		t.Fatalf("columns = %v, want %v", rs.Columns, want)
	}

	if len(report.NonNFCPaths) != 0 {
		t.Fatalf("clean document flagged non-NFC paths: %v", report.NonNFCPaths)
	}
}

func TestBuildReportFlagsNonNFCValues(t *testing.T) {
	t.Parallel()

	// A decomposed accent (e + combining acute) plus a zero-width space.
	src := "<eveapi><result><name>Cafe\u0301 Corp</name><alias>tri\u200bck</alias></result></eveapi>"

	report, err := buildReport([]byte(src))
	if err != nil {
		t.Fatalf("buildReport: %v", err)
	}
	if !containsString(report.NonNFCPaths, "eveapi.result.name.text") {
		t.Fatalf("decomposed value not flagged: %v", report.NonNFCPaths)
	}
}

func TestBuildReportRejectsBrokenXML(t *testing.T) {
	t.Parallel()

	if _, err := buildReport([]byte("<broken")); err == nil {
		t.Fatalf("broken XML produced a report")
	}
}

func TestIsNFCClean(t *testing.T) {
	t.Parallel()

	if !isNFCClean("plain ascii") || !isNFCClean("Caf\u00e9") {
		t.Fatalf("clean strings flagged")
	}
	if isNFCClean("Cafe\u0301") {
		t.Fatalf("decomposed string passed")
	}
	if isNFCClean("zero\u200bwidth") {
		t.Fatalf("format character passed")
	}
}

func containsString(ss []string, want string) bool {
	for _, s := range ss {
		if s == want {
			return true
		}
	}
	return false
}

func sortedStrings(ss []string) bool {
	for i := 1; i < len(ss); i++ {
		if strings.Compare(ss[i-1], ss[i]) > 0 {
			return false
		}
	}
	return true
}
