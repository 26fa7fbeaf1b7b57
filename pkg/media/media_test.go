package media

import (
	"testing"

	"studio-portfolio/pkg/models"
)

func TestResolveURL(t *testing.T) {
	tests := []struct {
		base     string
		filename string
		expected string
	}{
		{"/gallery-assets/", "photo.jpg", "/gallery-assets/photo.jpg"},
		{"", "photo.jpg", "/gallery-assets/photo.jpg"},
		{"/media/", "/static/photo.jpg", "/static/photo.jpg"},
		{"/media/", "https://cdn.example.com/p.jpg", "https://cdn.example.com/p.jpg"},
		{"/media/", "http://cdn.example.com/p.jpg", "http://cdn.example.com/p.jpg"},
	}

	for _, test := range tests {
		if got := ResolveURL(test.base, test.filename); got != test.expected {
			t.Errorf("ResolveURL(%q, %q) = %q, expected %q", test.base, test.filename, got, test.expected)
		}
	}
}

func TestEmbedURL(t *testing.T) {
	tests := []struct {
		name     string
		item     models.GalleryItem
		expected string
		ok       bool
	}{
		{
			name:     "youtube",
			item:     &models.EmbedItem{Provider: models.ProviderYouTube, VideoID: "abc123"},
			expected: "https://www.youtube.com/embed/abc123?autoplay=1&enablejsapi=1&rel=0",
			ok:       true,
		},
		{
			name:     "vimeo",
			item:     &models.EmbedItem{Provider: models.ProviderVimeo, VideoID: "76979871"},
			expected: "https://player.vimeo.com/video/76979871?autoplay=1&title=0&byline=0&portrait=0",
			ok:       true,
		},
		{
			name:     "other",
			item:     &models.EmbedItem{Provider: models.ProviderOther, EmbedURL: "https://player.example.com/x"},
			expected: "https://player.example.com/x",
			ok:       true,
		},
		{name: "other without url", item: &models.EmbedItem{Provider: models.ProviderOther}},
		{name: "youtube without id", item: &models.EmbedItem{Provider: models.ProviderYouTube}},
		{name: "image", item: &models.ImageItem{Filename: "a.jpg"}},
	}

	for _, test := range tests {
		got, ok := EmbedURL(test.item)
		if got != test.expected || ok != test.ok {
			t.Errorf("%s: EmbedURL() = %q, %v; expected %q, %v", test.name, got, ok, test.expected, test.ok)
		}
	}
}

func TestSourceAndThumbnailURL(t *testing.T) {
	base := "/gallery-assets/"
	img := &models.ImageItem{Filename: "w1.jpg"}
	vid := &models.VideoItem{Filename: "promo.mp4"}
	vidWithPoster := &models.VideoItem{ItemBase: models.ItemBase{Thumbnail: "promo.jpg"}, Filename: "promo.mp4"}
	yt := &models.EmbedItem{Provider: models.ProviderYouTube, VideoID: "abc"}
	vimeo := &models.EmbedItem{Provider: models.ProviderVimeo, VideoID: "1"}

	if got := Source(base, img); got != "/gallery-assets/w1.jpg" {
		t.Errorf("Source(image) = %q", got)
	}
	if got := Source(base, vid); got != "/gallery-assets/promo.mp4" {
		t.Errorf("Source(video) = %q", got)
	}
	if got := Source(base, yt); got != "" {
		t.Errorf("Source(embed) = %q, expected empty", got)
	}

	thumbs := []struct {
		item     models.GalleryItem
		expected string
	}{
		{img, "/gallery-assets/w1.jpg"},
		{vid, PlaceholderURL},
		{vidWithPoster, "/gallery-assets/promo.jpg"},
		{yt, "https://img.youtube.com/vi/abc/maxresdefault.jpg"},
		{vimeo, PlaceholderURL},
	}
	for _, test := range thumbs {
		if got := ThumbnailURL(base, test.item); got != test.expected {
			t.Errorf("ThumbnailURL(%T) = %q, expected %q", test.item, got, test.expected)
		}
	}
}
