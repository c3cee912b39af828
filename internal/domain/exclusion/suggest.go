package exclusion

import (
	"fmt"
	"strings"

	"github.com/bnema/fontify/internal/domain/entity"
)

// Suggest returns the recommended rule for excluding the page at currentURL:
//   - a file-like path ("/blog/post") excludes just that page,
//   - a directory deeper than the root ("/docs/") excludes that section,
//   - the site root excludes the whole domain.
func Suggest(currentURL string) (entity.ExclusionRule, error) {
	loc, err := parseLocation(currentURL)
	if err != nil || loc.hostname == "" {
		return entity.ExclusionRule{}, fmt.Errorf("cannot derive exclusion from %q: not an absolute URL", currentURL)
	}

	if loc.path != "/" && !strings.HasSuffix(loc.path, "/") {
		return entity.ExclusionRule{Pattern: loc.origin + loc.path, Kind: entity.ExclusionKindExact}, nil
	}

	parts := strings.Split(loc.path, "/")
	directory := strings.Join(parts[:len(parts)-1], "/") + "/"
	if directory != "/" && len(parts) > 2 {
		return entity.ExclusionRule{Pattern: loc.origin + directory, Kind: entity.ExclusionKindPrefix}, nil
	}

	return entity.ExclusionRule{Pattern: loc.origin + "/", Kind: entity.ExclusionKindDomain}, nil
}

// ForKind builds a rule of the requested kind covering currentURL.
func ForKind(currentURL string, kind entity.ExclusionKind) (entity.ExclusionRule, error) {
	loc, err := parseLocation(currentURL)
	if err != nil || loc.hostname == "" {
		return entity.ExclusionRule{}, fmt.Errorf("cannot derive exclusion from %q: not an absolute URL", currentURL)
	}

	switch kind {
	case entity.ExclusionKindExact:
		return entity.ExclusionRule{Pattern: loc.origin + loc.path, Kind: kind}, nil
	case entity.ExclusionKindPrefix:
		directory := loc.path
		if !strings.HasSuffix(directory, "/") {
			directory = directory[:strings.LastIndex(directory, "/")+1]
		}
		return entity.ExclusionRule{Pattern: loc.origin + directory, Kind: kind}, nil
	case entity.ExclusionKindDomain:
		return entity.ExclusionRule{Pattern: loc.origin + "/", Kind: kind}, nil
	default:
		return Suggest(currentURL)
	}
}
