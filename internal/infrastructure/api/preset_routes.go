package api

import (
	"net/http"

	"github.com/bnema/fontify/internal/application/usecase"
	"github.com/bnema/fontify/internal/domain/entity"
	"github.com/go-chi/chi/v5"
)

type presetRequest struct {
	Name          string  `json:"name"`
	FontURL       string  `json:"fontUrl"`
	FontSizeScale float64 `json:"fontSizeScale"`
	FontWeight    string  `json:"fontWeight"`
	LineHeight    float64 `json:"lineHeight"`
}

type presetList struct {
	Presets      []entity.Preset `json:"presets"`
	ActivePreset string          `json:"activePreset"`
}

type applyResponse struct {
	Preset    entity.Preset            `json:"preset"`
	Broadcast *usecase.BroadcastResult `json:"broadcast,omitempty"`
}

func registerPresetRoutes(r chi.Router, h *handler) {
	r.Route("/presets", func(r chi.Router) {
		r.Get("/", h.listPresets)
		r.Post("/", h.savePreset)
		r.Route("/{name}", func(r chi.Router) {
			r.Get("/", h.getPreset)
			r.Delete("/", h.deletePreset)
			r.Post("/apply", h.applyPreset)
		})
	})
}

func (h *handler) listPresets(w http.ResponseWriter, r *http.Request) {
	presets, active, err := h.svc.Presets.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, presetList{Presets: presets, ActivePreset: active})
}

func (h *handler) savePreset(w http.ResponseWriter, r *http.Request) {
	var req presetRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.svc.Presets.Save(r.Context(), usecase.SavePresetInput{
		Name:          req.Name,
		FontURL:       req.FontURL,
		FontSizeScale: req.FontSizeScale,
		FontWeight:    req.FontWeight,
		LineHeight:    req.LineHeight,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	status := http.StatusOK
	if out.Created {
		status = http.StatusCreated
	}
	writeJSON(w, status, out.Preset)
}

func (h *handler) getPreset(w http.ResponseWriter, r *http.Request) {
	preset, err := h.svc.Presets.Get(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, preset)
}

func (h *handler) deletePreset(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Presets.Delete(r.Context(), chi.URLParam(r, "name")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) applyPreset(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.ApplyPreset.Execute(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, applyResponse{Preset: out.Preset, Broadcast: out.Broadcast})
}
