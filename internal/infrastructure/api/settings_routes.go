package api

import (
	"fmt"
	"io"
	"net/http"

	"github.com/bnema/fontify/internal/application/usecase"
	"github.com/bnema/fontify/internal/domain/entity"
	"github.com/go-chi/chi/v5"
)

const maxImportBytes = 1 << 20

type settingsView struct {
	IsEnabled     bool                   `json:"isEnabled"`
	FontURL       string                 `json:"fontUrl"`
	FontSizeScale float64                `json:"fontSizeScale"`
	FontWeight    string                 `json:"fontWeight"`
	LineHeight    float64                `json:"lineHeight"`
	ExcludeURLs   []entity.ExclusionRule `json:"excludeUrls"`
	FontPresets   []entity.Preset        `json:"fontPresets"`
	ActivePreset  *string                `json:"activePreset"`
}

type fontRequest struct {
	FontURL        string  `json:"fontUrl"`
	FontSizeScale  float64 `json:"fontSizeScale"`
	FontWeight     string  `json:"fontWeight"`
	LineHeight     float64 `json:"lineHeight"`
	SkipValidation bool    `json:"skipValidation"`
}

type fontView struct {
	FontURL       string  `json:"fontUrl"`
	FontSizeScale float64 `json:"fontSizeScale"`
	FontWeight    string  `json:"fontWeight"`
	LineHeight    float64 `json:"lineHeight"`
}

type enabledRequest struct {
	Enabled *bool `json:"enabled"`
}

type urlRequest struct {
	URL string `json:"url"`
}

func registerSettingsRoutes(r chi.Router, h *handler) {
	r.Route("/settings", func(r chi.Router) {
		r.Get("/", h.getSettings)
		r.Put("/enabled", h.setEnabled)
		r.Post("/toggle", h.toggle)
	})
	r.Route("/font", func(r chi.Router) {
		r.Put("/", h.saveFont)
		r.Post("/reset", h.resetAdjustments)
		r.Post("/validate", h.validateFont)
	})
	r.Get("/export", h.exportSettings)
	r.Post("/import", h.importSettings)
}

func toSettingsView(s *entity.Settings) settingsView {
	return settingsView{
		IsEnabled:     s.IsEnabled,
		FontURL:       s.Font.FontURL,
		FontSizeScale: s.Font.FontSizeScale,
		FontWeight:    s.Font.FontWeight,
		LineHeight:    s.Font.LineHeight,
		ExcludeURLs:   s.ExcludeURLs,
		FontPresets:   s.FontPresets,
		ActivePreset:  s.ActivePreset,
	}
}

func (h *handler) getSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.svc.Settings.Get(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSettingsView(settings))
}

func (h *handler) setEnabled(w http.ResponseWriter, r *http.Request) {
	var req enabledRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if req.Enabled == nil {
		writeError(w, r, fmt.Errorf("%w: enabled is required", errBadBody))
		return
	}
	if err := h.svc.Settings.SetEnabled(r.Context(), *req.Enabled); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"enabled": *req.Enabled})
}

func (h *handler) toggle(w http.ResponseWriter, r *http.Request) {
	enabled, err := h.svc.Settings.Toggle(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"enabled": enabled})
}

func (h *handler) saveFont(w http.ResponseWriter, r *http.Request) {
	var req fontRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	spec, err := h.svc.Settings.SaveFont(r.Context(), usecase.SaveFontInput{
		FontURL:        req.FontURL,
		FontSizeScale:  req.FontSizeScale,
		FontWeight:     req.FontWeight,
		LineHeight:     req.LineHeight,
		SkipValidation: req.SkipValidation,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, fontView{
		FontURL:       spec.FontURL,
		FontSizeScale: spec.FontSizeScale,
		FontWeight:    spec.FontWeight,
		LineHeight:    spec.LineHeight,
	})
}

func (h *handler) resetAdjustments(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Settings.ResetAdjustments(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) validateFont(w http.ResponseWriter, r *http.Request) {
	var req urlRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.svc.Validate.Execute(r.Context(), req.URL))
}

func (h *handler) exportSettings(w http.ResponseWriter, r *http.Request) {
	doc, err := h.svc.Transfer.Export(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	filename := fmt.Sprintf("fontify-settings-%s.json", doc.ExportDate.Format("2006-01-02"))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	writeJSON(w, http.StatusOK, doc)
}

func (h *handler) importSettings(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	data, err := io.ReadAll(io.LimitReader(r.Body, maxImportBytes))
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: %v", errBadBody, err))
		return
	}

	out, err := h.svc.Transfer.Import(r.Context(), data)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"keys": out.Keys})
}
