package handlers

import (
	"context"
	"fmt"
	"net/url"

	"studio-portfolio/pkg/i18n"
	"studio-portfolio/pkg/lightbox"
	"studio-portfolio/pkg/models"
	"studio-portfolio/pkg/portfolio"
	"studio-portfolio/pkg/services"
	"studio-portfolio/pkg/taxonomy"
)

// Link is a rendered navigation control
type Link struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	URL    string `json:"url"`
	Count  int    `json:"count"`
	Active bool   `json:"active"`
	Class  string `json:"-"`
}

// Card is one grid cell
type Card struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	URL       string `json:"url"`
	Thumbnail string `json:"thumbnail"`
	Alt       string `json:"alt"`
	Playable  bool   `json:"playable"`
	Class     string `json:"-"`
}

// Page holds what every template needs
type Page struct {
	Lang          string `json:"lang"`
	Title         string `json:"title"`
	SwitchLangURL string `json:"-"`
	SwitchLang    string `json:"-"`
	Error         string `json:"error,omitempty"`
}

// PortfolioPage is the full filterable portfolio
type PortfolioPage struct {
	Page
	Selection  portfolio.Selection `json:"selection"`
	Corrected  bool                `json:"corrected"`
	MediaLinks []Link              `json:"media"`
	GroupLinks []Link              `json:"groups"`
	SubLinks   []Link              `json:"subCategories"`
	Cards      []Card              `json:"items"`
	Empty      bool                `json:"empty"`
	EmptyText  string              `json:"-"`
	ResetURL   string              `json:"resetUrl"`
	ResetLabel string              `json:"-"`
}

// HomePage is the featured preview
type HomePage struct {
	Page
	Cards          []Card `json:"items"`
	PortfolioURL   string `json:"portfolioUrl"`
	PortfolioLabel string `json:"-"`
}

// LightboxPage is a single open item with its neighbours
type LightboxPage struct {
	Page
	Content   lightbox.Content `json:"content"`
	Caption   string           `json:"caption"`
	Position  string           `json:"position"`
	PrevID    string           `json:"prevId,omitempty"`
	NextID    string           `json:"nextId,omitempty"`
	PrevURL   string           `json:"prevUrl,omitempty"`
	NextURL   string           `json:"nextUrl,omitempty"`
	CloseURL  string           `json:"closeUrl"`
	PrevLabel string           `json:"-"`
	NextLabel string           `json:"-"`
	CloseText string           `json:"-"`
	IsImage   bool             `json:"-"`
	IsVideo   bool             `json:"-"`
	IsEmbed   bool             `json:"-"`
}

// withLang adds the language to a selection's query
func withLang(path string, sel portfolio.Selection, lang models.Language) string {
	return path + "?" + withLangValues(sel, lang).Encode()
}

func newPage(lang models.Language, title, currentPath string, query url.Values) Page {
	other := i18n.Toggle(lang)
	switched := url.Values{}
	for k, v := range query {
		switched[k] = v
	}
	switched.Set("lang", string(other))
	return Page{
		Lang:          string(lang),
		Title:         title,
		SwitchLangURL: currentPath + "?" + switched.Encode(),
		SwitchLang:    string(other),
	}
}

func activeClass(active bool) string {
	if active {
		return "active"
	}
	return ""
}

func aspectClass(ratio models.AspectRatio) string {
	switch ratio {
	case models.Portrait:
		return "aspect-portrait"
	case models.Square:
		return "aspect-square"
	}
	return "aspect-landscape"
}

func portfolioLink(sel portfolio.Selection, lang models.Language) func(string) string {
	return func(id string) string {
		return withLang("/portfolio/"+url.PathEscape(id), sel, lang)
	}
}

func featuredLink(lang models.Language) func(string) string {
	return func(id string) string {
		return "/portfolio/" + url.PathEscape(id) + "?featured=1&lang=" + string(lang)
	}
}

func (h *Handler) cards(ctx context.Context, items []models.GalleryItem, link func(string) string, lang models.Language) []Card {
	cards := make([]Card, 0, len(items))
	for _, item := range items {
		base := item.Base()
		playable := item.Type() == models.MediaVideo
		if embed, ok := item.(*models.EmbedItem); ok {
			playable = embed.Playable()
		}
		cards = append(cards, Card{
			ID:        base.ID,
			Type:      string(item.Type()),
			URL:       link(base.ID),
			Thumbnail: h.svc.ThumbnailURL(ctx, item),
			Alt:       base.Alt.In(lang),
			Playable:  playable,
			Class:     aspectClass(base.AspectRatio),
		})
	}
	return cards
}

// BuildPortfolioPage renders the filter view of items for one selection
func (h *Handler) BuildPortfolioPage(ctx context.Context, items []models.GalleryItem, sel portfolio.Selection, lang models.Language) PortfolioPage {
	view := portfolio.BuildView(items, sel)
	sel = view.Selection

	page := PortfolioPage{
		Page:       newPage(lang, i18n.T(lang, "Portfolio"), "/portfolio", withLangValues(sel, lang)),
		Selection:  sel,
		Corrected:  view.Corrected,
		Cards:      h.cards(ctx, view.Items, portfolioLink(sel, lang), lang),
		Empty:      view.Empty(),
		EmptyText:  i18n.T(lang, "No items in this category"),
		ResetURL:   withLang("/portfolio", portfolio.NewSelection(), lang),
		ResetLabel: i18n.T(lang, "Show all"),
	}

	mediaLabels := []struct {
		filter portfolio.MediaFilter
		label  string
	}{
		{portfolio.MediaAll, "All"},
		{portfolio.MediaPhotos, "Photos"},
		{portfolio.MediaVideos, "Videos"},
	}
	for _, m := range mediaLabels {
		target := sel
		target.SelectMedia(items, m.filter)
		page.MediaLinks = append(page.MediaLinks, Link{
			ID:     string(m.filter),
			Label:  i18n.T(lang, m.label),
			URL:    withLang("/portfolio", target, lang),
			Count:  portfolio.CountsByGroup(items, m.filter)[taxonomy.AllGroupID],
			Active: sel.Media == m.filter,
			Class:  activeClass(sel.Media == m.filter),
		})
	}

	for _, group := range view.Groups {
		target := sel
		target.SelectGroup(items, group.ID)
		active := sel.Group == group.ID
		page.GroupLinks = append(page.GroupLinks, Link{
			ID:     group.ID,
			Label:  group.Label.In(lang),
			URL:    withLang("/portfolio", target, lang),
			Count:  view.GroupCounts[group.ID],
			Active: active,
			Class:  activeClass(active),
		})
	}

	for _, sc := range view.SubCategories {
		target := sel
		target.SelectSubCategory(items, sc.ID)
		active := sel.SubCategory == sc.ID
		page.SubLinks = append(page.SubLinks, Link{
			ID:     sc.ID,
			Label:  sc.Label.In(lang),
			URL:    withLang("/portfolio", target, lang),
			Count:  view.SubCategoryCounts[sc.ID],
			Active: active,
			Class:  activeClass(active),
		})
	}

	return page
}

func withLangValues(sel portfolio.Selection, lang models.Language) url.Values {
	values := sel.Values()
	values.Set("lang", string(lang))
	return values
}

// BuildHomePage renders the featured preview
func (h *Handler) BuildHomePage(ctx context.Context, items []models.GalleryItem, lang models.Language) HomePage {
	featured := services.Featured(items)
	return HomePage{
		Page:           newPage(lang, i18n.T(lang, "Portfolio"), "/", url.Values{}),
		Cards:          h.cards(ctx, featured, featuredLink(lang), lang),
		PortfolioURL:   withLang("/portfolio", portfolio.NewSelection(), lang),
		PortfolioLabel: i18n.T(lang, "View full portfolio"),
	}
}

// BuildLightboxPage opens id inside the list the visitor came from: the
// filtered portfolio for sel, or the featured preview. It returns false
// when the item is not part of that list.
func (h *Handler) BuildLightboxPage(items []models.GalleryItem, sel portfolio.Selection, featured bool, id string, lang models.Language) (LightboxPage, bool) {
	var list []models.GalleryItem
	var link func(string) string
	closeURL := ""
	if featured {
		list = services.Featured(items)
		link = featuredLink(lang)
		closeURL = "/?lang=" + string(lang)
	} else {
		view := portfolio.BuildView(items, sel)
		sel = view.Selection
		list = view.Items
		link = portfolioLink(sel, lang)
		closeURL = withLang("/portfolio", sel, lang)
	}

	nav := lightbox.NewNavigator(list)
	if !nav.OpenID(id) {
		return LightboxPage{}, false
	}

	item := nav.Current()
	content := lightbox.Render(item, lang, h.cfg.AssetsBase)
	query := withLangValues(sel, lang)
	if featured {
		query = url.Values{"featured": {"1"}, "lang": {string(lang)}}
	}
	page := LightboxPage{
		Page:      newPage(lang, item.Base().Alt.In(lang), "/portfolio/"+url.PathEscape(id), query),
		Content:   content,
		Caption:   item.Base().Alt.In(lang),
		Position:  fmt.Sprintf("%d / %d", nav.Index()+1, len(list)),
		CloseURL:  closeURL,
		PrevLabel: i18n.T(lang, "Previous"),
		NextLabel: i18n.T(lang, "Next"),
		CloseText: i18n.T(lang, "Close"),
		IsImage:   content.Kind == lightbox.ContentImage,
		IsVideo:   content.Kind == lightbox.ContentVideo,
		IsEmbed:   content.Kind == lightbox.ContentEmbed,
	}

	prev, next := nav.Neighbours()
	if prev != nil {
		page.PrevID = prev.Base().ID
		page.PrevURL = link(page.PrevID)
	}
	if next != nil {
		page.NextID = next.Base().ID
		page.NextURL = link(page.NextID)
	}
	return page, true
}
