// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transcript

import (
	"fmt"
	"regexp"
)

// videoIDPatterns covers the URL shapes a video identifier can arrive in.
var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`youtube\.com/watch\?(?:[^&\s]*&)*v=([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`youtu\.be/([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/embed/([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/v/([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/shorts/([a-zA-Z0-9_-]{11})`),
}

// bareIDPattern matches a raw 11-character video id passed without a URL.
var bareIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)

// ParseVideoID extracts the 11-character video id from a watch, youtu.be,
// embed, /v/, or shorts URL, or accepts a bare id as-is.
func ParseVideoID(input string) (string, error) {
	for _, re := range videoIDPatterns {
		if m := re.FindStringSubmatch(input); m != nil {
			return m[1], nil
		}
	}
	if bareIDPattern.MatchString(input) {
		return input, nil
	}
	return "", fmt.Errorf("cannot parse video id from %q", input)
}

// ParseVideoIDs maps each input to a video id, keeping input order and
// deduplicating repeats. Unparsable inputs are returned separately.
func ParseVideoIDs(inputs []string) (ids []string, bad []string) {
	seen := make(map[string]bool)
	for _, in := range inputs {
		id, err := ParseVideoID(in)
		if err != nil {
			bad = append(bad, in)
			continue
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids, bad
}
