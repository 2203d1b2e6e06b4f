// Package addr splits free-form US address strings into components for
// providers that want structured parameters. Parsing is best-effort and
// never fails: missing pieces come back as empty strings and callers treat
// them as legitimately unknown.
package addr

import (
	"regexp"
	"strings"
)

var (
	reZIP   = regexp.MustCompile(`\b\d{5}(?:-\d{4})?\b`)
	reState = regexp.MustCompile(`\b[A-Z]{2}\b`)
)

// Parts holds the components of a parsed address. Any field may be empty.
type Parts struct {
	StreetAddress string
	City          string
	State         string
	ZipCode       string
}

// Parse extracts zip and state tokens from anywhere in the string, then
// splits what remains on commas: first component is the street, second is
// the city when three or more components are present. With exactly two
// components the city is whatever precedes the state/zip tokens in the last
// one. No commas leaves the whole input as the street address.
func Parse(address string) Parts {
	var p Parts
	s := strings.TrimSpace(address)
	if s == "" {
		return p
	}

	// Zip first so a trailing "CO 80212" doesn't leak digits into the city.
	// Take the last match: leading 5-digit house numbers are more common
	// than anything after the zip.
	if locs := reZIP.FindAllStringIndex(s, -1); len(locs) > 0 {
		last := locs[len(locs)-1]
		p.ZipCode = s[last[0]:last[1]]
		s = s[:last[0]] + s[last[1]:]
	}
	if locs := reState.FindAllStringIndex(s, -1); len(locs) > 0 {
		last := locs[len(locs)-1]
		p.State = s[last[0]:last[1]]
		s = s[:last[0]] + s[last[1]:]
	}

	parts := strings.Split(s, ",")
	p.StreetAddress = strings.TrimSpace(parts[0])
	if len(parts) >= 2 {
		// With three or more components this is the city outright; with two,
		// the state/zip tokens are already stripped so whatever precedes them
		// in the last component is the city.
		p.City = strings.TrimSpace(parts[1])
	}
	return p
}

// Line2 renders the "city, state zip" half the way ATTOM's address2
// parameter expects it.
func (p Parts) Line2() string {
	return p.City + ", " + p.State + " " + p.ZipCode
}

// Empty reports whether nothing at all was extracted.
func (p Parts) Empty() bool {
	return p.StreetAddress == "" && p.City == "" && p.State == "" && p.ZipCode == ""
}
