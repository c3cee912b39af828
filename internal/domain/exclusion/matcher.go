// Package exclusion decides whether font replacement is suppressed on a page.
package exclusion

import (
	"errors"
	"net/url"
	"strings"

	"github.com/bnema/fontify/internal/domain/entity"
)

var errNotAbsolute = errors.New("url is not absolute")

// location is the normalized view of a URL used for matching:
// origin + path, no query, no fragment.
type location struct {
	origin   string
	hostname string
	path     string
}

func parseLocation(raw string) (location, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return location{}, err
	}
	if u.Scheme == "" {
		return location{}, errNotAbsolute
	}

	scheme := strings.ToLower(u.Scheme)
	hostname := strings.ToLower(u.Hostname())
	port := u.Port()
	if (scheme == "http" && port == "80") || (scheme == "https" && port == "443") {
		port = ""
	}

	host := hostname
	if port != "" {
		host += ":" + port
	}

	p := u.EscapedPath()
	if p == "" && u.Opaque == "" {
		p = "/"
	}
	if u.Opaque != "" {
		p = u.Opaque
	}

	return location{
		origin:   scheme + "://" + host,
		hostname: hostname,
		path:     p,
	}, nil
}

// InferKind infers the kind of a legacy plain-string rule:
// an empty or "/" path is a domain rule, a path ending in "/" is a prefix
// rule, anything else is exact. Unparseable patterns are prefix rules.
func InferKind(pattern string) entity.ExclusionKind {
	loc, err := parseLocation(pattern)
	if err != nil {
		return entity.ExclusionKindPrefix
	}
	switch {
	case loc.path == "" || loc.path == "/":
		return entity.ExclusionKindDomain
	case strings.HasSuffix(loc.path, "/"):
		return entity.ExclusionKindPrefix
	default:
		return entity.ExclusionKindExact
	}
}

// Normalize converts a legacy rule into a structured one.
func Normalize(rule entity.ExclusionRule) entity.ExclusionRule {
	if rule.IsLegacy() {
		rule.Kind = InferKind(rule.Pattern)
	}
	return rule
}

// Matches reports whether currentURL is excluded by a single rule.
// When either URL fails to parse, or the rule kind is unknown, it falls back
// to a raw string-prefix comparison.
func Matches(currentURL string, rule entity.ExclusionRule) bool {
	rule = Normalize(rule)

	current, err := parseLocation(currentURL)
	if err != nil {
		return strings.HasPrefix(currentURL, rule.Pattern)
	}
	target, err := parseLocation(rule.Pattern)
	if err != nil {
		return strings.HasPrefix(currentURL, rule.Pattern)
	}

	switch rule.Kind {
	case entity.ExclusionKindExact:
		return current.origin+current.path == target.origin+target.path
	case entity.ExclusionKindDomain:
		return current.hostname == target.hostname ||
			strings.HasSuffix(current.hostname, "."+target.hostname)
	case entity.ExclusionKindPrefix:
		return current.origin == target.origin && strings.HasPrefix(current.path, target.path)
	default:
		return strings.HasPrefix(currentURL, rule.Pattern)
	}
}

// IsExcluded reports whether any rule matches currentURL. Rule order is
// irrelevant; evaluation stops at the first match.
func IsExcluded(currentURL string, rules []entity.ExclusionRule) bool {
	if currentURL == "" || len(rules) == 0 {
		return false
	}
	for _, rule := range rules {
		if Matches(currentURL, rule) {
			return true
		}
	}
	return false
}

// FirstMatch returns the first rule excluding currentURL.
func FirstMatch(currentURL string, rules []entity.ExclusionRule) (entity.ExclusionRule, bool) {
	if currentURL == "" {
		return entity.ExclusionRule{}, false
	}
	for _, rule := range rules {
		if Matches(currentURL, rule) {
			return rule, true
		}
	}
	return entity.ExclusionRule{}, false
}
