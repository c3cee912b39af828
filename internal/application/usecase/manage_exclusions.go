package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/bnema/fontify/internal/domain/entity"
	"github.com/bnema/fontify/internal/domain/exclusion"
	"github.com/bnema/fontify/internal/domain/repository"
	"github.com/bnema/fontify/internal/logging"
)

var (
	// ErrInvalidExclusionURL is returned for exclusion patterns that are not absolute URLs.
	ErrInvalidExclusionURL = errors.New("invalid exclusion URL")
	// ErrExclusionExists is returned when the pattern is already in the list.
	ErrExclusionExists = errors.New("exclusion already exists")
	// ErrAlreadyExcluded is returned when the page is already covered by a rule.
	ErrAlreadyExcluded = errors.New("page is already excluded")
	// ErrExclusionNotFound is returned when removing a pattern that is not listed.
	ErrExclusionNotFound = errors.New("exclusion not found")
)

// ExclusionCheck reports whether a URL is excluded, and by which rule.
type ExclusionCheck struct {
	URL      string                `json:"url"`
	Excluded bool                  `json:"excluded"`
	Rule     *entity.ExclusionRule `json:"rule,omitempty"`
}

// ManageExclusionsUseCase maintains the exclusion list.
type ManageExclusionsUseCase struct {
	settingsRepo repository.SettingsRepository
}

// NewManageExclusionsUseCase creates a new exclusion list use case.
func NewManageExclusionsUseCase(settingsRepo repository.SettingsRepository) *ManageExclusionsUseCase {
	return &ManageExclusionsUseCase{settingsRepo: settingsRepo}
}

// List returns the stored exclusion rules in order.
func (uc *ManageExclusionsUseCase) List(ctx context.Context) ([]entity.ExclusionRule, error) {
	settings, err := uc.settingsRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load exclusions: %w", err)
	}
	return settings.ExcludeURLs, nil
}

// Add appends a rule. An empty kind stores a legacy plain-string rule.
func (uc *ManageExclusionsUseCase) Add(ctx context.Context, rule entity.ExclusionRule) (entity.ExclusionRule, error) {
	log := logging.FromContext(ctx)

	rule.Pattern = strings.TrimSpace(rule.Pattern)
	if !isAbsoluteURL(rule.Pattern) {
		return entity.ExclusionRule{}, fmt.Errorf("%w: %q", ErrInvalidExclusionURL, rule.Pattern)
	}

	rules, err := uc.List(ctx)
	if err != nil {
		return entity.ExclusionRule{}, err
	}

	if slices.ContainsFunc(rules, func(r entity.ExclusionRule) bool { return r.Pattern == rule.Pattern }) {
		return entity.ExclusionRule{}, fmt.Errorf("%w: %s", ErrExclusionExists, rule.Pattern)
	}

	rules = append(slices.Clone(rules), rule)
	if err := uc.settingsRepo.SaveExclusions(ctx, rules); err != nil {
		return entity.ExclusionRule{}, fmt.Errorf("failed to save exclusions: %w", err)
	}

	log.Info().Str("pattern", rule.Pattern).Str("kind", string(rule.Kind)).Msg("exclusion added")
	return rule, nil
}

// AddCurrent excludes the page at currentURL. With an empty kind the
// suggested rule is used.
func (uc *ManageExclusionsUseCase) AddCurrent(
	ctx context.Context,
	currentURL string,
	kind entity.ExclusionKind,
) (entity.ExclusionRule, error) {
	rules, err := uc.List(ctx)
	if err != nil {
		return entity.ExclusionRule{}, err
	}
	if exclusion.IsExcluded(currentURL, rules) {
		return entity.ExclusionRule{}, ErrAlreadyExcluded
	}

	rule, err := exclusion.ForKind(currentURL, kind)
	if err != nil {
		return entity.ExclusionRule{}, fmt.Errorf("%w: %v", ErrInvalidExclusionURL, err)
	}

	return uc.Add(ctx, rule)
}

// Remove deletes the rule with the given pattern.
func (uc *ManageExclusionsUseCase) Remove(ctx context.Context, pattern string) error {
	log := logging.FromContext(ctx)

	rules, err := uc.List(ctx)
	if err != nil {
		return err
	}

	idx := slices.IndexFunc(rules, func(r entity.ExclusionRule) bool { return r.Pattern == pattern })
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrExclusionNotFound, pattern)
	}

	rules = slices.Delete(slices.Clone(rules), idx, idx+1)
	if err := uc.settingsRepo.SaveExclusions(ctx, rules); err != nil {
		return fmt.Errorf("failed to save exclusions: %w", err)
	}

	log.Info().Str("pattern", pattern).Msg("exclusion removed")
	return nil
}

// Check reports whether rawURL is excluded by the stored rules.
func (uc *ManageExclusionsUseCase) Check(ctx context.Context, rawURL string) (*ExclusionCheck, error) {
	rules, err := uc.List(ctx)
	if err != nil {
		return nil, err
	}

	result := &ExclusionCheck{URL: rawURL}
	if rule, ok := exclusion.FirstMatch(rawURL, rules); ok {
		result.Excluded = true
		result.Rule = &rule
	}
	return result, nil
}

// Suggest returns the recommended rule for excluding rawURL.
func (uc *ManageExclusionsUseCase) Suggest(rawURL string) (entity.ExclusionRule, error) {
	rule, err := exclusion.Suggest(rawURL)
	if err != nil {
		return entity.ExclusionRule{}, fmt.Errorf("%w: %v", ErrInvalidExclusionURL, err)
	}
	return rule, nil
}
