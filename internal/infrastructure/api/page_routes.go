package api

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/bnema/fontify/internal/application/port"
	"github.com/go-chi/chi/v5"
)

const settleTimeout = 5 * time.Second

type pageView struct {
	ID       string    `json:"id"`
	URL      string    `json:"url"`
	State    string    `json:"state"`
	OpenedAt time.Time `json:"openedAt"`
}

func toPageView(p port.PageInfo) pageView {
	return pageView{ID: p.ID, URL: p.URL, State: p.State, OpenedAt: p.OpenedAt}
}

func registerCacheRoutes(r chi.Router, h *handler) {
	r.Route("/cache", func(r chi.Router) {
		r.Get("/", h.listCache)
		r.Delete("/", h.clearCache)
	})
}

func registerPageRoutes(r chi.Router, h *handler) {
	r.Route("/pages", func(r chi.Router) {
		r.Get("/", h.listPages)
		r.Post("/", h.openPage)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.getPage)
			r.Delete("/", h.closePage)
			r.Post("/reload", h.reloadPage)
			r.Get("/html", h.pageHTML)
		})
	})
}

func (h *handler) listCache(w http.ResponseWriter, r *http.Request) {
	urls, err := h.svc.FontCache.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"urls": urls})
}

func (h *handler) clearCache(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.FontCache.Execute(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"cleared": n})
}

func (h *handler) listPages(w http.ResponseWriter, r *http.Request) {
	infos, err := h.svc.Pages.ListPages(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	views := make([]pageView, len(infos))
	for i, p := range infos {
		views[i] = toPageView(p)
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *handler) openPage(w http.ResponseWriter, r *http.Request) {
	var req urlRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if req.URL == "" {
		writeError(w, r, fmt.Errorf("%w: url is required", errBadBody))
		return
	}

	info, err := h.svc.Pages.Open(r.Context(), req.URL)
	if err != nil {
		writeJSON(w, http.StatusBadGateway, ErrorResponse{Message: err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, toPageView(info))
}

func (h *handler) getPage(w http.ResponseWriter, r *http.Request) {
	info, err := h.svc.Pages.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPageView(info))
}

func (h *handler) reloadPage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.svc.Pages.ReloadPage(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	info, err := h.svc.Pages.Get(id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPageView(info))
}

// pageHTML waits briefly for the engine to settle, then renders the page.
func (h *handler) pageHTML(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), settleTimeout)
	defer cancel()
	if err := h.svc.Pages.Settle(ctx, id); err != nil && ctx.Err() == nil {
		writeError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := h.svc.Pages.Render(id, &buf); err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (h *handler) closePage(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Pages.Close(chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
