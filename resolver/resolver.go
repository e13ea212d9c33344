// Package resolver extracts video identifiers from free-form YouTube links.
package resolver

import (
	"errors"
	"regexp"
	"strings"
)

// ErrURLNotRecognized is returned when no link form matches. It is an expected,
// user-facing outcome rather than a failure of the service.
var ErrURLNotRecognized = errors.New("url not recognized as a YouTube video link")

type rule struct {
	name  string
	re    *regexp.Regexp
	group int
}

// Checked in order; the generic v= rule must stay last so short-link paths are
// never parsed as query parameters.
var rules = []rule{
	{"short", regexp.MustCompile(`^(https?://)?(www\.)?youtu\.be/([^?&]+)`), 3},
	{"watch", regexp.MustCompile(`^(https?://)?(www\.|m\.)?youtube\.com/watch\?v=([^&]+)`), 3},
	{"query", regexp.MustCompile(`v=([^&]+)`), 1},
}

// Resolve returns the video identifier carried by url.
func Resolve(url string) (string, error) {
	id, _, err := ResolveRule(url)
	return id, err
}

// ResolveRule is Resolve, additionally naming the rule that matched
// ("short", "watch" or "query").
// Surrounding whitespace is dropped first, so a pasted link with a leading space
// still matches the anchored rules and a trailing space never ends up in the id.
func ResolveRule(url string) (string, string, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return "", "", ErrURLNotRecognized
	}

	for _, r := range rules {
		if m := r.re.FindStringSubmatch(url); m != nil {
			return m[r.group], r.name, nil
		}
	}
	return "", "", ErrURLNotRecognized
}
