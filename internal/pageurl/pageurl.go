// Package pageurl extracts page identifiers and default file names from
// shareable Notion page URLs. It does no network access.
package pageurl

import (
	"errors"
	"net/url"
	"strings"
)

// NotionDomain is the host fragment every accepted URL must contain.
const NotionDomain = "notion.so"

// FallbackFilename is used when no name can be derived from a URL.
const FallbackFilename = "notion-page.md"

var (
	ErrUnparsableURL = errors.New("url cannot be parsed")
	ErrNotNotionURL  = errors.New("url host is not a notion domain")
	ErrEmptyPath     = errors.New("url has no path segments")
	ErrEmptyPageID   = errors.New("url has no page id after the slug")
)

// ExtractPageID returns the page identifier embedded in rawURL.
//
// The identifier is the last non-empty path segment. If that segment
// contains a hyphen, only the part after the final hyphen is returned
// ("My-Page-1234abcd" -> "1234abcd"). A segment ending in a hyphen has no
// identifier and yields [ErrEmptyPageID].
func ExtractPageID(rawURL string) (string, error) {
	last, err := lastSegment(rawURL)
	if err != nil {
		return "", err
	}

	if i := strings.LastIndex(last, "-"); i >= 0 {
		last = last[i+1:]
	}
	if last == "" {
		return "", ErrEmptyPageID
	}
	return last, nil
}

// DefaultFilename derives a Markdown file name from the page slug:
// everything before the final hyphen-delimited ID, suffixed with ".md".
// It falls back to [FallbackFilename] when the URL cannot be parsed or no
// slug is present.
func DefaultFilename(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return FallbackFilename
	}

	segments := splitPath(u.Path)
	if len(segments) == 0 {
		return FallbackFilename
	}

	last := segments[len(segments)-1]
	i := strings.LastIndex(last, "-")
	if i <= 0 {
		return FallbackFilename
	}
	return last[:i] + ".md"
}

func lastSegment(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", ErrUnparsableURL
	}
	if !strings.Contains(u.Hostname(), NotionDomain) {
		return "", ErrNotNotionURL
	}

	segments := splitPath(u.Path)
	if len(segments) == 0 {
		return "", ErrEmptyPath
	}
	return segments[len(segments)-1], nil
}

func splitPath(p string) []string {
	parts := strings.Split(p, "/")
	segments := parts[:0]
	for _, part := range parts {
		if part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}
