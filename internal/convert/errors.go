package convert

import (
	"fmt"
	"strings"
)

// StructureError reports a response document whose shape violates the rowset
// contract: a rowset element missing its "name" or "key" attribute, or a row
// missing the designated key attribute. It is distinct from generic lookup
// failures so protocol drift is easy to spot in logs and tests.
type StructureError struct {
	// Path is the key path of the enclosing element, root first. It may be
	// empty when the document has no usable root.
	Path []string
	Msg  string
}

func (e *StructureError) Error() string {
	if len(e.Path) == 0 {
		return "malformed response structure: " + e.Msg
	}
	return fmt.Sprintf("malformed response structure at %s: %s", strings.Join(e.Path, "."), e.Msg)
}
