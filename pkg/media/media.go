package media

import (
	"fmt"
	"strings"

	"studio-portfolio/pkg/models"
)

// DefaultAssetsBase is where locally hosted gallery files are served from
const DefaultAssetsBase = "/gallery-assets/"

// PlaceholderURL is shown when no thumbnail can be derived
const PlaceholderURL = "/placeholder.svg"

// ResolveURL maps a filename to a URL. Absolute paths and http(s) URLs are
// returned unchanged; bare filenames are prefixed with the assets base.
func ResolveURL(base, filename string) string {
	if strings.HasPrefix(filename, "/") || strings.HasPrefix(filename, "http") {
		return filename
	}
	if base == "" {
		base = DefaultAssetsBase
	}
	return base + filename
}

// EmbedURL builds the player URL of an embed item. It returns false when
// the item is not an embed or lacks what its provider needs.
func EmbedURL(item models.GalleryItem) (string, bool) {
	embed, ok := item.(*models.EmbedItem)
	if !ok {
		return "", false
	}

	switch embed.Provider {
	case models.ProviderYouTube:
		if embed.VideoID != "" {
			return fmt.Sprintf("https://www.youtube.com/embed/%s?autoplay=1&enablejsapi=1&rel=0", embed.VideoID), true
		}
	case models.ProviderVimeo:
		if embed.VideoID != "" {
			return fmt.Sprintf("https://player.vimeo.com/video/%s?autoplay=1&title=0&byline=0&portrait=0", embed.VideoID), true
		}
	case models.ProviderOther:
		if embed.EmbedURL != "" {
			return embed.EmbedURL, true
		}
	}
	return "", false
}

// Source returns the direct media URL of images and local videos
func Source(base string, item models.GalleryItem) string {
	switch it := item.(type) {
	case *models.ImageItem:
		return ResolveURL(base, it.Filename)
	case *models.VideoItem:
		return ResolveURL(base, it.Filename)
	case *models.EmbedItem:
		return ""
	default:
		panic(fmt.Sprintf("media: unhandled gallery item %T", item))
	}
}

// ThumbnailURL returns the grid thumbnail of an item
func ThumbnailURL(base string, item models.GalleryItem) string {
	if thumb := item.Base().Thumbnail; thumb != "" {
		return ResolveURL(base, thumb)
	}

	switch it := item.(type) {
	case *models.ImageItem:
		return ResolveURL(base, it.Filename)
	case *models.VideoItem:
		return PlaceholderURL
	case *models.EmbedItem:
		if it.Provider == models.ProviderYouTube && it.VideoID != "" {
			return fmt.Sprintf("https://img.youtube.com/vi/%s/maxresdefault.jpg", it.VideoID)
		}
		return PlaceholderURL
	default:
		panic(fmt.Sprintf("media: unhandled gallery item %T", item))
	}
}
