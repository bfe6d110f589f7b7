// Package output applies rendered code to the filesystem through
// marker-delimited merging. The region algebra lives in pure functions so
// splicing is testable without touching a disk.
package output

import (
	"fmt"
	"strings"

	"github.com/modelgen-labs/modelgen-cli/internal/core/domain"
)

const (
	// identityPrefix starts the identity marker line naming the schema a
	// file was generated from.
	identityPrefix = "// GENERATED BY modelgen - schema: "

	// BeginMarker opens the regenerable region.
	BeginMarker = "// <modelgen:begin>"

	// EndMarker closes the regenerable region.
	EndMarker = "// <modelgen:end>"
)

// IdentityLine returns the identity marker line for a schema.
func IdentityLine(schemaName string) string {
	return identityPrefix + schemaName
}

// ComposeNew lays out a fresh generated file: the identity marker line
// followed by the body wrapped in the begin/end marker pair.
func ComposeNew(schemaName, body string) string {
	if !strings.HasSuffix(body, "\n") {
		body += "\n"
	}
	return IdentityLine(schemaName) + "\n" + BeginMarker + "\n" + body + EndMarker + "\n"
}

// Splice replaces the byte range between the begin/end markers of an
// existing file with body, preserving everything outside the markers
// byte-for-byte. It fails with domain.ErrMarkerConflict when the identity
// line is missing, when either marker is absent, when the markers are out
// of order, or when more than one pair is present. With multiple pairs
// there is no way to know which region to replace, so it is rejected.
func Splice(existing []byte, schemaName, body string) ([]byte, error) {
	text := string(existing)

	if !containsLine(text, IdentityLine(schemaName)) {
		return nil, fmt.Errorf("identity marker for schema %q not found: %w", schemaName, domain.ErrMarkerConflict)
	}
	begin, err := locateLine(text, BeginMarker)
	if err != nil {
		return nil, err
	}
	end, err := locateLine(text, EndMarker)
	if err != nil {
		return nil, err
	}
	if end.start < begin.end {
		return nil, fmt.Errorf("end marker precedes begin marker: %w", domain.ErrMarkerConflict)
	}

	if !strings.HasSuffix(body, "\n") {
		body += "\n"
	}
	return []byte(text[:begin.end] + body + text[end.start:]), nil
}

// span is a half-open byte range.
type span struct {
	start int
	end   int
}

// locateLine finds the single line equal to marker, returning the span
// covering the line including its trailing newline.
func locateLine(text, marker string) (span, error) {
	offset := 0
	found := span{start: -1}
	for _, line := range strings.SplitAfter(text, "\n") {
		if strings.TrimRight(line, "\r\n") == marker {
			if found.start >= 0 {
				return span{}, fmt.Errorf("marker %q appears more than once: %w", marker, domain.ErrMarkerConflict)
			}
			found = span{start: offset, end: offset + len(line)}
		}
		offset += len(line)
	}
	if found.start < 0 {
		return span{}, fmt.Errorf("marker %q not found: %w", marker, domain.ErrMarkerConflict)
	}
	return found, nil
}

func containsLine(text, want string) bool {
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimRight(line, "\r") == want {
			return true
		}
	}
	return false
}
