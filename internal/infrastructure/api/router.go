// Package api exposes the settings, exclusion, preset and page operations
// over a JSON HTTP control plane.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/bnema/fontify/internal/application/usecase"
	"github.com/bnema/fontify/internal/infrastructure/pages"
	"github.com/bnema/fontify/internal/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// Services groups the use cases served by the router.
type Services struct {
	Settings    *usecase.ManageSettingsUseCase
	Exclusions  *usecase.ManageExclusionsUseCase
	Presets     *usecase.ManagePresetsUseCase
	ApplyPreset *usecase.ApplyPresetUseCase
	Transfer    *usecase.TransferSettingsUseCase
	Validate    *usecase.ValidateFontURLUseCase
	FontCache   *usecase.ClearFontCacheUseCase
	Pages       *pages.Registry
}

type handler struct {
	svc    Services
	logger zerolog.Logger
}

// NewRouter builds the control plane. Every request context carries logger.
func NewRouter(svc Services, logger zerolog.Logger) http.Handler {
	h := &handler{svc: svc, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(h.withLogger)

	r.Get("/healthz", h.health)
	r.Route("/api", func(r chi.Router) {
		registerSettingsRoutes(r, h)
		registerExclusionRoutes(r, h)
		registerPresetRoutes(r, h)
		registerCacheRoutes(r, h)
		if svc.Pages != nil {
			registerPageRoutes(r, h)
		}
	})
	return r
}

// ListenAndServe serves handler on addr until ctx is cancelled.
func ListenAndServe(ctx context.Context, addr string, handler http.Handler) error {
	log := logging.FromContext(ctx)

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("control API listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("control API failed: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (h *handler) withLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := h.logger.With().
			Str("request_id", middleware.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Logger()
		next.ServeHTTP(w, r.WithContext(logging.WithContext(r.Context(), logger)))
	})
}

func (h *handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
