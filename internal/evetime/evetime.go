// Package evetime parses the timestamp format used throughout EVE API
// responses (currentTime, cachedUntil, rowset date columns).
package evetime

import (
	"fmt"
	"time"
)

// Layout is the wire format of EVE timestamps.
const Layout = "2006-01-02 15:04:05"

// Parse parses s as an EVE timestamp in UTC. Empty input is "no value" and
// returns ok=false with no error. Input longer than the layout (sub-second
// precision) is truncated before parsing.
func Parse(s string) (t time.Time, ok bool, err error) {
	if s == "" {
		return time.Time{}, false, nil
	}
	if len(s) > len(Layout) {
		s = s[:len(Layout)]
	}
	t, err = time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("evetime: %w", err)
	}
	return t, true, nil
}
