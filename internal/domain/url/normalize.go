// Package url normalizes page addresses typed on the command line.
package url

import (
	"net/url"
	"strings"
)

var schemes = []string{"http://", "https://", "file://", "about:"}

func hasScheme(input string) bool {
	for _, s := range schemes {
		if strings.HasPrefix(strings.ToLower(input), s) {
			return true
		}
	}
	return false
}

// Normalize adds an https:// prefix to bare host inputs such as "example.com/docs".
// Inputs with a scheme, or that don't look like a URL, are returned trimmed but unchanged.
func Normalize(input string) string {
	input = strings.TrimSpace(input)
	if input == "" || hasScheme(input) {
		return input
	}
	if LooksLikeURL(input) {
		return "https://" + input
	}
	return input
}

// LooksLikeURL reports whether input has a known scheme or looks like a host
// (contains a dot and no spaces).
func LooksLikeURL(input string) bool {
	if input == "" {
		return false
	}
	if hasScheme(input) {
		return true
	}
	return strings.Contains(input, ".") && !strings.Contains(input, " ")
}

// ExtractDomain returns the host of rawURL without a leading "www.".
func ExtractDomain(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	parsed, err := url.Parse(Normalize(rawURL))
	if err != nil || parsed.Host == "" {
		return ""
	}
	return strings.TrimPrefix(parsed.Hostname(), "www.")
}
