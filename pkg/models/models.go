package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Language is one of the two languages the site is published in
type Language string

const (
	Romanian Language = "ro"
	English  Language = "en"
)

// ParseLanguage returns the language for a code, defaulting to Romanian
func ParseLanguage(code string) Language {
	if code == string(English) {
		return English
	}
	return Romanian
}

// Text is a bilingual string
type Text struct {
	RO string `json:"ro"`
	EN string `json:"en"`
}

// In returns the text for the given language
func (t Text) In(lang Language) string {
	if lang == English {
		return t.EN
	}
	return t.RO
}

// Category is the flat category stored on every gallery item
type Category string

const (
	CategoryWeddings     Category = "weddings"
	CategoryBaptisms     Category = "baptisms"
	CategoryPortraits    Category = "portraits"
	CategoryCorporate    Category = "corporate"
	CategoryArchitecture Category = "architecture"
)

// Categories lists the known flat categories
var Categories = []Category{
	CategoryWeddings,
	CategoryBaptisms,
	CategoryPortraits,
	CategoryCorporate,
	CategoryArchitecture,
}

// AspectRatio hints the grid cell shape
type AspectRatio string

const (
	Landscape AspectRatio = "landscape"
	Portrait  AspectRatio = "portrait"
	Square    AspectRatio = "square"
)

// MediaType is the discriminator of a gallery item
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
	MediaEmbed MediaType = "embed"
)

// EmbedProvider is the external host of an embedded video
type EmbedProvider string

const (
	ProviderYouTube EmbedProvider = "youtube"
	ProviderVimeo   EmbedProvider = "vimeo"
	ProviderOther   EmbedProvider = "other"
)

// ItemBase holds the fields shared by every gallery item
type ItemBase struct {
	ID          string      `json:"id"`
	Alt         Text        `json:"alt"`
	Category    Category    `json:"category"`
	SubCategory string      `json:"subCategory,omitempty"`
	AspectRatio AspectRatio `json:"aspectRatio,omitempty"`
	Thumbnail   string      `json:"thumbnail,omitempty"`
	Featured    bool        `json:"featured,omitempty"`
}

// GalleryItem is one of *ImageItem, *VideoItem or *EmbedItem
type GalleryItem interface {
	Base() *ItemBase
	Type() MediaType
	isGalleryItem()
}

// ImageItem is a still photo
type ImageItem struct {
	ItemBase
	Filename string `json:"filename"`
}

// VideoItem is a locally hosted video file
type VideoItem struct {
	ItemBase
	Filename string `json:"filename"`
}

// EmbedItem is a video played through a provider's embedded player
type EmbedItem struct {
	ItemBase
	Provider EmbedProvider `json:"provider"`
	VideoID  string        `json:"videoId,omitempty"`
	EmbedURL string        `json:"embedUrl,omitempty"`
}

func (i *ImageItem) Base() *ItemBase { return &i.ItemBase }
func (i *VideoItem) Base() *ItemBase { return &i.ItemBase }
func (i *EmbedItem) Base() *ItemBase { return &i.ItemBase }

func (*ImageItem) Type() MediaType { return MediaImage }
func (*VideoItem) Type() MediaType { return MediaVideo }
func (*EmbedItem) Type() MediaType { return MediaEmbed }

func (*ImageItem) isGalleryItem() {}
func (*VideoItem) isGalleryItem() {}
func (*EmbedItem) isGalleryItem() {}

// Playable reports whether an embed carries what its provider needs
func (i *EmbedItem) Playable() bool {
	switch i.Provider {
	case ProviderYouTube, ProviderVimeo:
		return i.VideoID != ""
	case ProviderOther:
		return i.EmbedURL != ""
	}
	return false
}

func (i *ImageItem) MarshalJSON() ([]byte, error) {
	type alias ImageItem
	return json.Marshal(struct {
		Type MediaType `json:"type"`
		*alias
	}{MediaImage, (*alias)(i)})
}

func (i *VideoItem) MarshalJSON() ([]byte, error) {
	type alias VideoItem
	return json.Marshal(struct {
		Type MediaType `json:"type"`
		*alias
	}{MediaVideo, (*alias)(i)})
}

func (i *EmbedItem) MarshalJSON() ([]byte, error) {
	type alias EmbedItem
	return json.Marshal(struct {
		Type MediaType `json:"type"`
		*alias
	}{MediaEmbed, (*alias)(i)})
}

// ErrUnknownMediaType is returned when an item's type is not image, video or embed
var ErrUnknownMediaType = errors.New("unknown media type")

// ErrDuplicateID is returned when two items share an id
var ErrDuplicateID = errors.New("duplicate item id")

// ErrMissingID is returned when an item has no id
var ErrMissingID = errors.New("item without id")

// ErrMissingItems is returned for a document without an items array
var ErrMissingItems = errors.New("gallery document has no items array")

// Document is the gallery JSON document
type Document struct {
	Items []GalleryItem `json:"items"`
}

// DecodeItem decodes a single item using its "type" discriminator
func DecodeItem(raw json.RawMessage) (GalleryItem, error) {
	var head struct {
		Type MediaType `json:"type"`
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		return nil, err
	}

	var item GalleryItem
	switch head.Type {
	case MediaImage:
		item = &ImageItem{}
	case MediaVideo:
		item = &VideoItem{}
	case MediaEmbed:
		item = &EmbedItem{}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMediaType, head.Type)
	}

	if err := json.Unmarshal(raw, item); err != nil {
		return nil, err
	}
	return item, nil
}

// UnmarshalJSON decodes the whole document or fails; no partial data is kept
func (d *Document) UnmarshalJSON(data []byte) error {
	var wire struct {
		Items *[]json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if wire.Items == nil {
		return ErrMissingItems
	}

	items := make([]GalleryItem, 0, len(*wire.Items))
	for i, raw := range *wire.Items {
		item, err := DecodeItem(raw)
		if err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
		items = append(items, item)
	}
	d.Items = items
	return nil
}

// Validate checks that every item has a unique, non-empty id
func (d *Document) Validate() error {
	seen := make(map[string]bool, len(d.Items))
	for i, item := range d.Items {
		id := item.Base().ID
		if id == "" {
			return fmt.Errorf("item %d: %w", i, ErrMissingID)
		}
		if seen[id] {
			return fmt.Errorf("%w: %s", ErrDuplicateID, id)
		}
		seen[id] = true
	}
	return nil
}

// IndexOf returns the position of the item with the given id, or -1
func IndexOf(items []GalleryItem, id string) int {
	for i, item := range items {
		if item.Base().ID == id {
			return i
		}
	}
	return -1
}

// SubCategory is the second level of the portfolio taxonomy
type SubCategory struct {
	ID    string `json:"id"`
	Label Text   `json:"label"`
}

// TopGroup is the first level of the portfolio taxonomy
type TopGroup struct {
	ID            string        `json:"id"`
	Label         Text          `json:"label"`
	SubCategories []SubCategory `json:"subCategories"`
}

// Placement is where an item sits in the taxonomy
type Placement struct {
	GroupID       string `json:"groupId"`
	SubCategoryID string `json:"subCategoryId"`
}
