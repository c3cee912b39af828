package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/bnema/fontify/internal/application/port"
	"github.com/bnema/fontify/internal/domain/entity"
	"github.com/bnema/fontify/internal/domain/exclusion"
	"github.com/bnema/fontify/internal/logging"
	"golang.org/x/sync/errgroup"
)

const defaultReloadConcurrency = 8

// BroadcastResult lists page IDs by outcome.
type BroadcastResult struct {
	Reloaded []string `json:"reloaded"`
	Skipped  []string `json:"skipped"`
	Failed   []string `json:"failed"`
}

// BroadcastReloadUseCase reloads every open page not excluded by a reload signal.
type BroadcastReloadUseCase struct {
	pages       port.PageController
	concurrency int
}

// NewBroadcastReloadUseCase creates a new reload broadcaster.
func NewBroadcastReloadUseCase(pages port.PageController) *BroadcastReloadUseCase {
	return &BroadcastReloadUseCase{
		pages:       pages,
		concurrency: defaultReloadConcurrency,
	}
}

// Execute reloads matching pages concurrently. Per-page failures are logged
// and reported in the result; only failing to list pages returns an error.
func (uc *BroadcastReloadUseCase) Execute(ctx context.Context, signal entity.ReloadSignal) (*BroadcastResult, error) {
	log := logging.FromContext(ctx)

	pages, err := uc.pages.ListPages(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pages: %w", err)
	}

	result := &BroadcastResult{
		Reloaded: []string{},
		Skipped:  []string{},
		Failed:   []string{},
	}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.concurrency)

	for _, page := range pages {
		if page.URL == "" || exclusion.IsExcluded(page.URL, signal.ExcludeURLs) {
			result.Skipped = append(result.Skipped, page.ID)
			continue
		}

		g.Go(func() error {
			reloadErr := uc.pages.ReloadPage(gctx, page.ID)

			mu.Lock()
			defer mu.Unlock()
			if reloadErr != nil {
				log.Debug().Err(reloadErr).Str("page_id", page.ID).Str("url", page.URL).Msg("could not reload page")
				result.Failed = append(result.Failed, page.ID)
				return nil
			}
			result.Reloaded = append(result.Reloaded, page.ID)
			return nil
		})
	}

	_ = g.Wait()

	sort.Strings(result.Reloaded)
	sort.Strings(result.Failed)

	log.Info().
		Int("reloaded", len(result.Reloaded)).
		Int("skipped", len(result.Skipped)).
		Int("failed", len(result.Failed)).
		Msg("reload broadcast finished")
	return result, nil
}
