package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/patrickmn/go-cache"

	"studio-portfolio/pkg/logging"
	"studio-portfolio/pkg/media"
	"studio-portfolio/pkg/models"
)

const (
	vimeoOEmbedURL = "https://vimeo.com/api/oembed.json"

	// failedLookupTTL is how long a failed Vimeo lookup is remembered
	failedLookupTTL = time.Minute
)

// ErrNoThumbnail is returned while a failed Vimeo lookup is remembered
var ErrNoThumbnail = errors.New("vimeo thumbnail unavailable")

// vimeoOEmbed is the part of the Vimeo oEmbed response we use
type vimeoOEmbed struct {
	Title        string `json:"title"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// VimeoThumbnail looks up the poster image of a Vimeo video. Results are
// cached alongside the gallery. A failure is cached as "" for
// failedLookupTTL so a broken video costs one request per minute.
func (s *Service) VimeoThumbnail(ctx context.Context, videoID string) (string, error) {
	key := "vimeo:" + videoID

	s.mu.RLock()
	if cached, found := s.galleryCache.Get(key); found {
		s.mu.RUnlock()
		if cached.(string) == "" {
			return "", ErrNoThumbnail
		}
		return cached.(string), nil
	}
	s.mu.RUnlock()

	thumb, err := s.fetchVimeoThumbnail(ctx, videoID)
	if err != nil {
		if ctx.Err() == nil {
			s.mu.Lock()
			s.galleryCache.Set(key, "", failedLookupTTL)
			s.mu.Unlock()
		}
		return "", err
	}

	s.mu.Lock()
	s.galleryCache.Set(key, thumb, cache.DefaultExpiration)
	s.mu.Unlock()

	return thumb, nil
}

func (s *Service) fetchVimeoThumbnail(ctx context.Context, videoID string) (string, error) {
	lookupURL := fmt.Sprintf("%s?url=%s", s.vimeoEndpoint, url.QueryEscape("https://vimeo.com/"+videoID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		return "", err
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to query vimeo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("vimeo oEmbed error (status %d): %s", resp.StatusCode, string(body))
	}

	var result vimeoOEmbed
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode vimeo response: %w", err)
	}
	if result.ThumbnailURL == "" {
		return "", fmt.Errorf("no thumbnail available for vimeo video %s", videoID)
	}
	return result.ThumbnailURL, nil
}

// ThumbnailURL returns the grid thumbnail of an item, asking Vimeo for
// embeds that have no explicit thumbnail. Lookup failures fall back to the
// placeholder.
func (s *Service) ThumbnailURL(ctx context.Context, item models.GalleryItem) string {
	base := s.config.AssetsBase
	embed, ok := item.(*models.EmbedItem)
	if !ok || embed.Provider != models.ProviderVimeo || embed.Thumbnail != "" || embed.VideoID == "" {
		return media.ThumbnailURL(base, item)
	}

	thumb, err := s.VimeoThumbnail(ctx, embed.VideoID)
	if err != nil {
		if !errors.Is(err, ErrNoThumbnail) {
			logging.Logger.Warn("Vimeo thumbnail lookup failed", "id", embed.ID, "err", err)
		}
		return media.PlaceholderURL
	}
	return thumb
}
