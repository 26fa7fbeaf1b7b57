// Package portfolio filters gallery items by media type and taxonomy position
// and keeps the active filter selection pointing at something non-empty.
package portfolio

import (
	"studio-portfolio/pkg/models"
	"studio-portfolio/pkg/taxonomy"
)

// MediaFilter restricts items by media type
type MediaFilter string

const (
	MediaAll    MediaFilter = "all"
	MediaPhotos MediaFilter = "photos"
	MediaVideos MediaFilter = "videos"
)

// ParseMediaFilter parses a media filter value
func ParseMediaFilter(s string) (MediaFilter, bool) {
	switch MediaFilter(s) {
	case MediaAll, MediaPhotos, MediaVideos:
		return MediaFilter(s), true
	case "":
		return MediaAll, true
	}
	return MediaAll, false
}

// Matches reports whether an item passes the media filter
func (m MediaFilter) Matches(item models.GalleryItem) bool {
	switch m {
	case MediaPhotos:
		return item.Type() == models.MediaImage
	case MediaVideos:
		return item.Type() == models.MediaVideo || item.Type() == models.MediaEmbed
	}
	return true
}

// Filter returns the items matching the media filter, group and optional
// sub-category, in source order. Items that cannot be placed in the
// taxonomy only show up under the all group.
func Filter(items []models.GalleryItem, media MediaFilter, group, subCategory string) []models.GalleryItem {
	filtered := make([]models.GalleryItem, 0, len(items))
	for _, item := range items {
		if !media.Matches(item) {
			continue
		}
		if group != taxonomy.AllGroupID && group != "" {
			placement, ok := taxonomy.ResolveItem(item)
			if !ok || placement.GroupID != group {
				continue
			}
			if subCategory != "" && placement.SubCategoryID != subCategory {
				continue
			}
		}
		filtered = append(filtered, item)
	}
	return filtered
}

// CountsByGroup counts media-filtered items per group. The all entry holds
// the media-filtered total and every taxonomy group has an entry.
func CountsByGroup(items []models.GalleryItem, media MediaFilter) map[string]int {
	counts := make(map[string]int, len(taxonomy.TopGroups))
	for _, group := range taxonomy.TopGroups {
		counts[group.ID] = 0
	}
	for _, item := range items {
		if !media.Matches(item) {
			continue
		}
		counts[taxonomy.AllGroupID]++
		if placement, ok := taxonomy.ResolveItem(item); ok {
			counts[placement.GroupID]++
		}
	}
	return counts
}

// CountsBySubCategory counts media-filtered items per sub-category of a group
func CountsBySubCategory(items []models.GalleryItem, media MediaFilter, group string) map[string]int {
	counts := make(map[string]int)
	for _, id := range taxonomy.SubCategoryIDs(group) {
		counts[id] = 0
	}
	for _, item := range items {
		if !media.Matches(item) {
			continue
		}
		placement, ok := taxonomy.ResolveItem(item)
		if !ok || placement.GroupID != group {
			continue
		}
		counts[placement.SubCategoryID]++
	}
	return counts
}

// VisibleGroups returns the all group plus every group with items
func VisibleGroups(items []models.GalleryItem, media MediaFilter) []models.TopGroup {
	counts := CountsByGroup(items, media)
	groups := make([]models.TopGroup, 0, len(taxonomy.TopGroups))
	for _, group := range taxonomy.TopGroups {
		if group.ID == taxonomy.AllGroupID || counts[group.ID] > 0 {
			groups = append(groups, group)
		}
	}
	return groups
}

// VisibleSubCategories returns the sub-categories of a group that have items
func VisibleSubCategories(items []models.GalleryItem, media MediaFilter, group string) []models.SubCategory {
	g, ok := taxonomy.Group(group)
	if !ok {
		return nil
	}
	counts := CountsBySubCategory(items, media, group)
	var subs []models.SubCategory
	for _, sc := range g.SubCategories {
		if counts[sc.ID] > 0 {
			subs = append(subs, sc)
		}
	}
	return subs
}

// ChooseSubCategory picks the sub-category to activate when a group is
// selected: the first one with items, else the first one so the empty
// state can name it. Groups without sub-categories get "".
func ChooseSubCategory(items []models.GalleryItem, media MediaFilter, group string) string {
	g, ok := taxonomy.Group(group)
	if !ok || len(g.SubCategories) == 0 {
		return ""
	}
	counts := CountsBySubCategory(items, media, group)
	for _, sc := range g.SubCategories {
		if counts[sc.ID] > 0 {
			return sc.ID
		}
	}
	return g.SubCategories[0].ID
}
