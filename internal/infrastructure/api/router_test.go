package api_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/bnema/fontify/internal/application/port"
	"github.com/bnema/fontify/internal/application/usecase"
	"github.com/bnema/fontify/internal/infrastructure/api"
	"github.com/bnema/fontify/internal/infrastructure/htmldoc"
	"github.com/bnema/fontify/internal/infrastructure/pages"
	"github.com/bnema/fontify/internal/infrastructure/persistence/kvstore"
	"github.com/bnema/fontify/internal/override"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type okProber struct{}

func (okProber) Probe(_ context.Context, rawURL string) (*port.ProbeResult, error) {
	ct := "font/woff2"
	if strings.Contains(rawURL, ".css") {
		ct = "text/css"
	}
	return &port.ProbeResult{StatusCode: http.StatusOK, ContentType: ct}, nil
}

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	store := kvstore.NewMemoryStore()
	settings := kvstore.NewSettingsRepository(store)
	cache := kvstore.NewFontCacheRepository(store)

	loader := pages.LoaderFunc(func(_ context.Context, pageURL string) (port.Document, error) {
		return htmldoc.Parse(strings.NewReader(`<html><head></head><body>hi</body></html>`), pageURL)
	})
	reg := pages.NewRegistry(override.Deps{Settings: settings}, override.Options{WatchdogMaxTicks: -1}, loader)
	t.Cleanup(reg.Shutdown)

	validator := usecase.NewValidateFontURLUseCase(okProber{})
	svc := api.Services{
		Settings:    usecase.NewManageSettingsUseCase(settings, validator),
		Exclusions:  usecase.NewManageExclusionsUseCase(settings),
		Presets:     usecase.NewManagePresetsUseCase(settings),
		ApplyPreset: usecase.NewApplyPresetUseCase(settings, usecase.NewBroadcastReloadUseCase(reg)),
		Transfer:    usecase.NewTransferSettingsUseCase(settings),
		Validate:    validator,
		FontCache:   usecase.NewClearFontCacheUseCase(cache),
		Pages:       reg,
	}

	srv := httptest.NewServer(api.NewRouter(svc, zerolog.Nop()))
	t.Cleanup(srv.Close)
	return srv
}

func call(t *testing.T, srv *httptest.Server, method, path, body string) (int, []byte) {
	t.Helper()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, srv.URL+path, r)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func decode[T any](t *testing.T, data []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(data, &v))
	return v
}

func TestRouter_Health(t *testing.T) {
	srv := newServer(t)

	status, body := call(t, srv, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
}

func TestRouter_SettingsAndFont(t *testing.T) {
	srv := newServer(t)

	status, body := call(t, srv, http.MethodGet, "/api/settings", "")
	require.Equal(t, http.StatusOK, status)
	settings := decode[map[string]any](t, body)
	assert.Equal(t, true, settings["isEnabled"])
	assert.Equal(t, 1.0, settings["fontSizeScale"])

	status, body = call(t, srv, http.MethodPost, "/api/settings/toggle", "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"enabled":false}`, string(body))

	status, _ = call(t, srv, http.MethodPut, "/api/settings/enabled", `{}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = call(t, srv, http.MethodPut, "/api/settings/enabled", `{"enabled":true}`)
	assert.Equal(t, http.StatusOK, status)

	status, body = call(t, srv, http.MethodPut, "/api/font",
		`{"fontUrl":"https://cdn.example.com/inter.woff2","fontSizeScale":1.2,"fontWeight":"500","lineHeight":1.6}`)
	require.Equal(t, http.StatusOK, status, string(body))
	assert.JSONEq(t,
		`{"fontUrl":"https://cdn.example.com/inter.woff2","fontSizeScale":1.2,"fontWeight":"500","lineHeight":1.6}`,
		string(body))

	status, _ = call(t, srv, http.MethodPut, "/api/font", `{"fontUrl":"https://cdn.example.com/font.exe"}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = call(t, srv, http.MethodPut, "/api/font", `{"fontUrl":""}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = call(t, srv, http.MethodPost, "/api/font/reset", "")
	assert.Equal(t, http.StatusNoContent, status)

	_, body = call(t, srv, http.MethodGet, "/api/settings", "")
	settings = decode[map[string]any](t, body)
	assert.Equal(t, "https://cdn.example.com/inter.woff2", settings["fontUrl"])
	assert.Equal(t, 1.0, settings["fontSizeScale"])
}

func TestRouter_ValidateFont(t *testing.T) {
	srv := newServer(t)

	status, body := call(t, srv, http.MethodPost, "/api/font/validate", `{"url":"https://cdn.example.com/a.css"}`)
	require.Equal(t, http.StatusOK, status)
	result := decode[usecase.FontURLValidation](t, body)
	assert.True(t, result.Valid)
	assert.Equal(t, usecase.FontURLStylesheet, result.Kind)

	_, body = call(t, srv, http.MethodPost, "/api/font/validate", `{"url":"not a url"}`)
	result = decode[usecase.FontURLValidation](t, body)
	assert.False(t, result.Valid)
	assert.Equal(t, "malformed URL", result.Reason)

	status, _ = call(t, srv, http.MethodPost, "/api/font/validate", `{`)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestRouter_Exclusions(t *testing.T) {
	srv := newServer(t)

	status, _ := call(t, srv, http.MethodPost, "/api/exclusions", `{"url":"https://a.com/","type":"domain"}`)
	require.Equal(t, http.StatusCreated, status)

	status, _ = call(t, srv, http.MethodPost, "/api/exclusions", `{"url":"https://a.com/","type":"domain"}`)
	assert.Equal(t, http.StatusConflict, status)

	status, _ = call(t, srv, http.MethodPost, "/api/exclusions", `{"url":"relative/path"}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = call(t, srv, http.MethodPost, "/api/exclusions", `{"url":"https://b.com/","type":"regex"}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = call(t, srv, http.MethodPost, "/api/exclusions/current", `{"url":"https://docs.a.com/page"}`)
	assert.Equal(t, http.StatusConflict, status)

	status, body := call(t, srv, http.MethodPost, "/api/exclusions/current", `{"url":"https://b.com/docs/intro","type":"exact"}`)
	require.Equal(t, http.StatusCreated, status)
	assert.JSONEq(t, `{"url":"https://b.com/docs/intro","type":"exact"}`, string(body))

	status, body = call(t, srv, http.MethodGet, "/api/exclusions", "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t,
		`[{"url":"https://a.com/","type":"domain"},{"url":"https://b.com/docs/intro","type":"exact"}]`,
		string(body))

	_, body = call(t, srv, http.MethodGet, "/api/exclusions/check?url="+url.QueryEscape("https://sub.a.com/x"), "")
	check := decode[usecase.ExclusionCheck](t, body)
	assert.True(t, check.Excluded)
	require.NotNil(t, check.Rule)
	assert.Equal(t, "https://a.com/", check.Rule.Pattern)

	status, _ = call(t, srv, http.MethodGet, "/api/exclusions/suggest?url=nope", "")
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = call(t, srv, http.MethodDelete, "/api/exclusions?url="+url.QueryEscape("https://a.com/"), "")
	assert.Equal(t, http.StatusNoContent, status)

	status, _ = call(t, srv, http.MethodDelete, "/api/exclusions?url="+url.QueryEscape("https://a.com/"), "")
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = call(t, srv, http.MethodDelete, "/api/exclusions", "")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestRouter_PresetsApplyReloadsPages(t *testing.T) {
	srv := newServer(t)

	status, body := call(t, srv, http.MethodPost, "/api/pages", `{"url":"https://news.example.com/"}`)
	require.Equal(t, http.StatusCreated, status)
	opened := decode[map[string]any](t, body)
	pageID := opened["id"].(string)

	status, _ = call(t, srv, http.MethodPost, "/api/presets", `{"name":"Reading","fontUrl":"https://fonts.googleapis.com/css2?family=Lora"}`)
	require.Equal(t, http.StatusCreated, status)

	status, _ = call(t, srv, http.MethodPost, "/api/presets", `{"name":"Reading","fontUrl":"https://fonts.googleapis.com/css2?family=Merriweather"}`)
	require.Equal(t, http.StatusOK, status)

	status, _ = call(t, srv, http.MethodPost, "/api/presets", `{"name":"  "}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = call(t, srv, http.MethodPost, "/api/presets/Reading/apply", "")
	require.Equal(t, http.StatusOK, status, string(body))
	applied := decode[struct {
		Broadcast usecase.BroadcastResult `json:"broadcast"`
	}](t, body)
	assert.Equal(t, []string{pageID}, applied.Broadcast.Reloaded)

	_, body = call(t, srv, http.MethodGet, "/api/presets", "")
	assert.Contains(t, string(body), `"activePreset":"Reading"`)

	status, body = call(t, srv, http.MethodGet, "/api/pages/"+pageID+"/html", "")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body), "family=Merriweather")

	status, _ = call(t, srv, http.MethodPost, "/api/presets/Missing/apply", "")
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = call(t, srv, http.MethodDelete, "/api/presets/Reading", "")
	assert.Equal(t, http.StatusNoContent, status)

	status, _ = call(t, srv, http.MethodGet, "/api/presets/Reading", "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestRouter_Pages(t *testing.T) {
	srv := newServer(t)

	status, _ := call(t, srv, http.MethodPost, "/api/pages", `{}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, body := call(t, srv, http.MethodPost, "/api/pages", `{"url":"https://a.com/"}`)
	require.Equal(t, http.StatusCreated, status)
	id := decode[map[string]any](t, body)["id"].(string)

	status, body = call(t, srv, http.MethodGet, "/api/pages", "")
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decode[[]map[string]any](t, body), 1)

	status, _ = call(t, srv, http.MethodPost, "/api/pages/"+id+"/reload", "")
	assert.Equal(t, http.StatusOK, status)

	status, _ = call(t, srv, http.MethodDelete, "/api/pages/"+id, "")
	assert.Equal(t, http.StatusNoContent, status)

	status, _ = call(t, srv, http.MethodGet, "/api/pages/"+id, "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestRouter_ExportImportAndCache(t *testing.T) {
	srv := newServer(t)

	status, body := call(t, srv, http.MethodPost, "/api/import",
		`{"fontUrl":"https://cdn.example.com/a.woff","excludeUrls":["https://legacy.com/"],"isEnabled":false,"fontSizeScale":1.3}`)
	require.Equal(t, http.StatusOK, status, string(body))
	assert.Contains(t, string(body), `"fontUrl"`)

	status, _ = call(t, srv, http.MethodPost, "/api/import", `[1,2]`)
	assert.Equal(t, http.StatusBadRequest, status)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/export", nil)
	require.NoError(t, err)
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "fontify-settings-")

	var doc map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))
	assert.Equal(t, "https://cdn.example.com/a.woff", doc["fontUrl"])
	assert.Equal(t, false, doc["isEnabled"])
	assert.Equal(t, []any{"https://legacy.com/"}, doc["excludeUrls"])

	status, body = call(t, srv, http.MethodDelete, "/api/cache", "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"cleared":0}`, string(body))

	_, body = call(t, srv, http.MethodGet, "/api/cache", "")
	assert.JSONEq(t, `{"urls":[]}`, string(body))
}
