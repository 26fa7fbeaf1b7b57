package lightbox

import (
	"fmt"

	"studio-portfolio/pkg/i18n"
	"studio-portfolio/pkg/media"
	"studio-portfolio/pkg/models"
)

// ContentKind says how the lightbox body is drawn
type ContentKind string

const (
	ContentImage       ContentKind = "image"
	ContentVideo       ContentKind = "video"
	ContentEmbed       ContentKind = "embed"
	ContentUnavailable ContentKind = "unavailable"
)

// Content is the rendered body of the lightbox for one item
type Content struct {
	Kind     ContentKind
	ID       string
	Alt      string
	Src      string
	Poster   string
	EmbedURL string
	// Message is the video fallback text or the unavailable notice
	Message  string
	Controls bool
	Autoplay bool
}

// Render builds the lightbox body for item in lang
func Render(item models.GalleryItem, lang models.Language, assetsBase string) Content {
	base := item.Base()
	c := Content{ID: base.ID, Alt: base.Alt.In(lang)}

	switch it := item.(type) {
	case *models.ImageItem:
		c.Kind = ContentImage
		c.Src = media.Source(assetsBase, it)
	case *models.VideoItem:
		c.Kind = ContentVideo
		c.Src = media.Source(assetsBase, it)
		if it.Thumbnail != "" {
			c.Poster = media.ResolveURL(assetsBase, it.Thumbnail)
		}
		c.Controls = true
		c.Autoplay = true
		c.Message = i18n.T(lang, "Your browser does not support video playback.")
	case *models.EmbedItem:
		url, ok := media.EmbedURL(it)
		if !ok {
			c.Kind = ContentUnavailable
			c.Message = i18n.T(lang, "Video unavailable")
			break
		}
		c.Kind = ContentEmbed
		c.EmbedURL = url
		c.Autoplay = true
	default:
		panic(fmt.Sprintf("lightbox: unhandled gallery item %T", item))
	}
	return c
}
