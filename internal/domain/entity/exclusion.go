package entity

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExclusionKind describes how an exclusion pattern is compared against a page URL.
type ExclusionKind string

const (
	// ExclusionKindLegacy marks a rule stored as a plain string.
	// Its kind is inferred from the pattern when matching.
	ExclusionKindLegacy ExclusionKind = ""
	// ExclusionKindExact matches origin + path, ignoring query and fragment.
	ExclusionKindExact ExclusionKind = "exact"
	// ExclusionKindDomain matches the hostname and all of its subdomains.
	ExclusionKindDomain ExclusionKind = "domain"
	// ExclusionKindPrefix matches same-origin URLs whose path starts with the rule path.
	ExclusionKindPrefix ExclusionKind = "prefix"
)

// IsKnown reports whether the kind is one of exact, domain or prefix.
func (k ExclusionKind) IsKnown() bool {
	switch k {
	case ExclusionKindExact, ExclusionKindDomain, ExclusionKindPrefix:
		return true
	}
	return false
}

// Label returns the short human label used in listings.
func (k ExclusionKind) Label() string {
	switch k {
	case ExclusionKindExact:
		return "page"
	case ExclusionKindDomain:
		return "site"
	case ExclusionKindPrefix:
		return "section"
	default:
		return "pattern"
	}
}

// ParseExclusionKind converts user input to an ExclusionKind.
func ParseExclusionKind(s string) (ExclusionKind, error) {
	switch kind := ExclusionKind(strings.ToLower(strings.TrimSpace(s))); kind {
	case ExclusionKindExact, ExclusionKindDomain, ExclusionKindPrefix, ExclusionKindLegacy:
		return kind, nil
	default:
		return "", fmt.Errorf("unknown exclusion kind %q (want exact, domain or prefix)", s)
	}
}

// ExclusionRule suppresses font replacement on matching pages.
// A rule with ExclusionKindLegacy is a plain-string rule from older settings.
type ExclusionRule struct {
	Pattern string
	Kind    ExclusionKind
}

// NewLegacyRule creates a plain-string rule.
func NewLegacyRule(pattern string) ExclusionRule {
	return ExclusionRule{Pattern: pattern}
}

// IsLegacy reports whether the rule was stored without an explicit kind.
func (r ExclusionRule) IsLegacy() bool {
	return r.Kind == ExclusionKindLegacy
}

type exclusionRuleJSON struct {
	URL     string        `json:"url,omitempty"`
	Pattern string        `json:"pattern,omitempty"`
	Type    ExclusionKind `json:"type,omitempty"`
	Kind    ExclusionKind `json:"kind,omitempty"`
}

// MarshalJSON encodes legacy rules as bare strings and structured rules as
// {"url": ..., "type": ...}.
func (r ExclusionRule) MarshalJSON() ([]byte, error) {
	if r.IsLegacy() {
		return json.Marshal(r.Pattern)
	}
	return json.Marshal(exclusionRuleJSON{URL: r.Pattern, Type: r.Kind})
}

// UnmarshalJSON accepts a bare string or an object carrying url|pattern and type|kind.
func (r *ExclusionRule) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*r = NewLegacyRule(s)
		return nil
	}

	var obj exclusionRuleJSON
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("exclusion rule must be a string or an object: %w", err)
	}
	r.Pattern = obj.URL
	if r.Pattern == "" {
		r.Pattern = obj.Pattern
	}
	r.Kind = obj.Type
	if r.Kind == ExclusionKindLegacy {
		r.Kind = obj.Kind
	}
	return nil
}

// String returns the rule pattern with its kind, for logs and listings.
func (r ExclusionRule) String() string {
	if r.IsLegacy() {
		return r.Pattern
	}
	return fmt.Sprintf("%s (%s)", r.Pattern, r.Kind)
}
