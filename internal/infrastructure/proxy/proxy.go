// Package proxy is an HTTP proxy that applies the font override to HTML
// responses before they reach the browser.
package proxy

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/bnema/fontify/internal/logging"
	"github.com/bnema/fontify/internal/override"
	"github.com/elazarl/goproxy"
	"github.com/rs/zerolog"
)

const (
	defaultSettleTimeout = 5 * time.Second
	defaultMaxBodyBytes  = 20 << 20
	shutdownTimeout      = 5 * time.Second
)

// Config tunes the proxy.
type Config struct {
	// MITM intercepts HTTPS with the goproxy CA so HTTPS pages are rewritten too.
	MITM bool
	// SettleTimeout bounds how long a response waits for the engine.
	SettleTimeout time.Duration
	// MaxBodyBytes caps the HTML size the proxy rewrites, measured both on the
	// wire and decoded. Larger responses pass through untouched.
	MaxBodyBytes int64
	Engine       override.Options
}

// Server rewrites proxied HTML responses.
type Server struct {
	deps   override.Deps
	cfg    Config
	logger zerolog.Logger
	proxy  *goproxy.ProxyHttpServer
}

// New creates a proxy bound to deps. The logger in ctx is used for every request.
func New(ctx context.Context, deps override.Deps, cfg Config) *Server {
	if cfg.SettleTimeout <= 0 {
		cfg.SettleTimeout = defaultSettleTimeout
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = defaultMaxBodyBytes
	}

	s := &Server{
		deps:   deps,
		cfg:    cfg,
		logger: logging.FromContext(logging.WithComponent(ctx, "proxy")).With().Logger(),
		proxy:  goproxy.NewProxyHttpServer(),
	}
	s.proxy.Logger = log.New(io.Discard, "", 0)
	// Upstream bodies arrive as sent; onResponse decodes the ones it rewrites.
	s.proxy.KeepAcceptEncoding = true
	s.proxy.Tr.DisableCompression = true

	if cfg.MITM {
		s.proxy.OnRequest().HandleConnect(goproxy.AlwaysMitm)
	}
	s.proxy.OnRequest().DoFunc(onRequest)
	s.proxy.OnResponse().DoFunc(s.onResponse)
	return s
}

// Handler returns the proxy as an http.Handler.
func (s *Server) Handler() http.Handler {
	return s.proxy
}

// ListenAndServe serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.proxy,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	s.logger.Info().Str("addr", addr).Bool("mitm", s.cfg.MITM).Msg("font proxy listening")

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("proxy server failed: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// onRequest narrows Accept-Encoding to the encodings decodeBody handles.
func onRequest(req *http.Request, _ *goproxy.ProxyCtx) (*http.Request, *http.Response) {
	if accepted := supportedEncodings(req.Header.Get("Accept-Encoding")); accepted != "" {
		req.Header.Set("Accept-Encoding", accepted)
	} else {
		req.Header.Del("Accept-Encoding")
	}
	return req, nil
}

func (s *Server) onResponse(resp *http.Response, pctx *goproxy.ProxyCtx) *http.Response {
	if resp == nil || pctx.Req == nil || !isHTML(resp) {
		return resp
	}

	pageURL := pctx.Req.URL.String()
	ctx := logging.WithURL(s.logger.WithContext(pctx.Req.Context()), pageURL)
	log := logging.FromContext(ctx)

	encoding := resp.Header.Get("Content-Encoding")
	if !canDecode(encoding) {
		log.Debug().Str("encoding", encoding).Msg("unsupported encoding, passing through")
		return resp
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, s.cfg.MaxBodyBytes+1))
	if err != nil {
		_ = resp.Body.Close()
		log.Warn().Err(err).Msg("failed to read html response")
		return goproxy.NewResponse(pctx.Req, goproxy.ContentTypeText, http.StatusBadGateway, "fontify: failed to read upstream response")
	}
	if int64(len(raw)) > s.cfg.MaxBodyBytes {
		log.Debug().Int64("limit", s.cfg.MaxBodyBytes).Msg("html response too large, passing through")
		resp.Body = readCloser{io.MultiReader(bytes.NewReader(raw), resp.Body), resp.Body}
		return resp
	}
	_ = resp.Body.Close()
	resp.Body = io.NopCloser(bytes.NewReader(raw))

	data, err := decodeBody(encoding, bytes.NewReader(raw), s.cfg.MaxBodyBytes)
	if err != nil {
		log.Debug().Err(err).Str("encoding", encoding).Msg("cannot decode html response, passing through")
		return resp
	}

	out, changed, err := Rewrite(ctx, s.deps, s.cfg.Engine, s.cfg.SettleTimeout, pageURL, data)
	if err != nil {
		log.Warn().Err(err).Msg("failed to rewrite page, serving original")
		return resp
	}
	if !changed {
		log.Debug().Msg("html response left unchanged")
		return resp
	}

	resp.Body = io.NopCloser(bytes.NewReader(out))
	resp.ContentLength = int64(len(out))
	resp.Header.Set("Content-Length", strconv.Itoa(len(out)))
	resp.Header.Del("Content-Encoding")

	log.Debug().Int("bytes", len(out)).Msg("html response rewritten")
	return resp
}

// readCloser reads the buffered prefix and the rest of the upstream body,
// closing upstream on Close.
type readCloser struct {
	io.Reader
	io.Closer
}

func isHTML(resp *http.Response) bool {
	mediaType, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	return err == nil && (mediaType == "text/html" || mediaType == "application/xhtml+xml")
}
