package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/bnema/fontify/internal/domain/entity"
	"github.com/go-chi/chi/v5"
)

type ruleRequest struct {
	URL  string `json:"url"`
	Type string `json:"type"`
}

func registerExclusionRoutes(r chi.Router, h *handler) {
	r.Route("/exclusions", func(r chi.Router) {
		r.Get("/", h.listExclusions)
		r.Post("/", h.addExclusion)
		r.Delete("/", h.removeExclusion)
		r.Post("/current", h.addCurrentExclusion)
		r.Get("/check", h.checkExclusion)
		r.Get("/suggest", h.suggestExclusion)
	})
}

func (req ruleRequest) kind() (entity.ExclusionKind, error) {
	kind, err := entity.ParseExclusionKind(req.Type)
	if err != nil {
		return "", errors.Join(errBadBody, err)
	}
	return kind, nil
}

func (h *handler) listExclusions(w http.ResponseWriter, r *http.Request) {
	rules, err := h.svc.Exclusions.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rules)
}

func (h *handler) addExclusion(w http.ResponseWriter, r *http.Request) {
	var req ruleRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	kind, err := req.kind()
	if err != nil {
		writeError(w, r, err)
		return
	}

	rule, err := h.svc.Exclusions.Add(r.Context(), entity.ExclusionRule{Pattern: req.URL, Kind: kind})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, rule)
}

func (h *handler) addCurrentExclusion(w http.ResponseWriter, r *http.Request) {
	var req ruleRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	kind, err := req.kind()
	if err != nil {
		writeError(w, r, err)
		return
	}

	rule, err := h.svc.Exclusions.AddCurrent(r.Context(), req.URL, kind)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, rule)
}

func (h *handler) removeExclusion(w http.ResponseWriter, r *http.Request) {
	pattern := r.URL.Query().Get("url")
	if pattern == "" {
		writeError(w, r, fmt.Errorf("%w: url query parameter is required", errBadBody))
		return
	}
	if err := h.svc.Exclusions.Remove(r.Context(), pattern); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) checkExclusion(w http.ResponseWriter, r *http.Request) {
	check, err := h.svc.Exclusions.Check(r.Context(), r.URL.Query().Get("url"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, check)
}

func (h *handler) suggestExclusion(w http.ResponseWriter, r *http.Request) {
	rule, err := h.svc.Exclusions.Suggest(r.URL.Query().Get("url"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rule)
}
