// Package usecase contains application use cases that orchestrate domain logic.
package usecase

import (
	"context"
	"encoding/base64"
	"mime"
	"strings"

	"github.com/bnema/fontify/internal/application/port"
	"github.com/bnema/fontify/internal/domain/entity"
	"github.com/bnema/fontify/internal/domain/repository"
	"github.com/bnema/fontify/internal/logging"
)

// ResolveFontUseCase turns a direct font file URL into an inline payload,
// reading through the persistent font cache.
type ResolveFontUseCase struct {
	cache   repository.FontCacheRepository
	fetcher port.FontFetcher
}

// NewResolveFontUseCase creates a new font resolver.
func NewResolveFontUseCase(cache repository.FontCacheRepository, fetcher port.FontFetcher) *ResolveFontUseCase {
	return &ResolveFontUseCase{
		cache:   cache,
		fetcher: fetcher,
	}
}

// Resolve returns the inline payload for fontURL.
// It returns (nil, nil) when the URL is not a direct font file or when the
// font cannot be fetched; callers fall back to native fonts. A failed cache
// write is logged and the payload is still returned.
func (uc *ResolveFontUseCase) Resolve(ctx context.Context, fontURL string) (*entity.FontPayload, error) {
	log := logging.FromContext(ctx)

	if !entity.IsDirectFontFile(fontURL) {
		return nil, nil
	}

	cached, err := uc.cache.Get(ctx, fontURL)
	if err != nil {
		log.Warn().Err(err).Str("font_url", fontURL).Msg("font cache read failed, fetching")
	} else if cached != nil {
		log.Debug().Str("font_url", fontURL).Int("size", cached.Size).Msg("font cache hit")
		return cached, nil
	}

	fetched, err := uc.fetcher.Fetch(ctx, fontURL)
	if err != nil {
		log.Warn().Err(err).Str("font_url", fontURL).Msg("failed to fetch font")
		return nil, nil
	}

	payload := encodePayload(fontURL, fetched)

	if err := uc.cache.Put(ctx, payload); err != nil {
		log.Warn().Err(err).Str("font_url", fontURL).Msg("failed to cache font")
	} else {
		log.Debug().Str("font_url", fontURL).Int("size", payload.Size).Msg("font cached")
	}

	return payload, nil
}

func encodePayload(fontURL string, fetched *port.FetchedFont) *entity.FontPayload {
	mimeType := fontContentType(fetched.ContentType)
	if mimeType == "" {
		mimeType = entity.FontMIMEType(fontURL)
	}
	return &entity.FontPayload{
		URL:      fontURL,
		DataURL:  "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(fetched.Body),
		MIMEType: mimeType,
		Size:     len(fetched.Body),
	}
}

// fontContentType keeps the response media type only when it names a font.
func fontContentType(contentType string) string {
	if contentType == "" {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	mediaType = strings.ToLower(mediaType)
	if strings.HasPrefix(mediaType, "font/") ||
		strings.HasPrefix(mediaType, "application/font") ||
		strings.HasPrefix(mediaType, "application/x-font") ||
		mediaType == "application/vnd.ms-fontobject" {
		return mediaType
	}
	return ""
}
