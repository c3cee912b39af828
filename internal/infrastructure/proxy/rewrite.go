package proxy

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/bnema/fontify/internal/infrastructure/htmldoc"
	"github.com/bnema/fontify/internal/logging"
	"github.com/bnema/fontify/internal/override"
)

// Rewrite runs a one-shot engine over an HTML page and returns the
// serialized result. changed is false when the engine left the page alone.
func Rewrite(ctx context.Context, deps override.Deps, opts override.Options, settle time.Duration, pageURL string, page []byte) (out []byte, changed bool, err error) {
	log := logging.FromContext(ctx)

	doc, err := htmldoc.Parse(bytes.NewReader(page), pageURL)
	if err != nil {
		return nil, false, err
	}

	// A static response has no later mutations to watch for.
	opts.WatchdogMaxTicks = -1

	engine := override.New(deps, opts)
	engine.Start(ctx, doc)
	defer engine.Stop()

	select {
	case <-engine.Settled():
	case <-time.After(settle):
		log.Warn().Str("url", pageURL).Dur("timeout", settle).Msg("override did not settle, serving page unchanged")
		return page, false, nil
	case <-ctx.Done():
		return nil, false, ctx.Err()
	}

	if engine.State() != override.StateMaintaining {
		return page, false, nil
	}

	out, err = doc.Bytes()
	if err != nil {
		return nil, false, fmt.Errorf("failed to render page: %w", err)
	}
	return out, true, nil
}

var errBodyTooLarge = errors.New("decoded body exceeds limit")

func canDecode(encoding string) bool {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "", "identity", "gzip", "x-gzip", "br":
		return true
	}
	return false
}

// supportedEncodings keeps the codings of an Accept-Encoding value that
// canDecode accepts, with their quality values.
func supportedEncodings(header string) string {
	var kept []string
	for _, part := range strings.Split(header, ",") {
		coding, _, _ := strings.Cut(strings.TrimSpace(part), ";")
		if coding = strings.TrimSpace(coding); coding != "" && canDecode(coding) {
			kept = append(kept, strings.TrimSpace(part))
		}
	}
	return strings.Join(kept, ", ")
}

// decodeBody returns the decompressed body, failing once it grows past limit.
func decodeBody(encoding string, body io.Reader, limit int64) ([]byte, error) {
	var r io.Reader
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "", "identity":
		r = body
	case "gzip", "x-gzip":
		zr, err := gzip.NewReader(body)
		if err != nil {
			return nil, fmt.Errorf("failed to open gzip body: %w", err)
		}
		defer zr.Close()
		r = zr
	case "br":
		r = brotli.NewReader(body)
	default:
		return nil, fmt.Errorf("unsupported content encoding %q", encoding)
	}

	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %q body: %w", encoding, err)
	}
	if int64(len(data)) > limit {
		return nil, errBodyTooLarge
	}
	return data, nil
}
