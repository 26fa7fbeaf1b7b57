package portfolio

import (
	"net/url"

	"studio-portfolio/pkg/models"
	"studio-portfolio/pkg/taxonomy"
)

// Selection is the active filter state of a portfolio view
type Selection struct {
	Media       MediaFilter `json:"media"`
	Group       string      `json:"group"`
	SubCategory string      `json:"subCategory,omitempty"`
}

// NewSelection returns the unfiltered selection
func NewSelection() Selection {
	return Selection{Media: MediaAll, Group: taxonomy.AllGroupID}
}

// IsAll reports whether no group restriction is active
func (s Selection) IsAll() bool {
	return s.Group == taxonomy.AllGroupID || s.Group == ""
}

// Reset clears the group and sub-category, keeping the media filter
func (s *Selection) Reset() {
	s.Group = taxonomy.AllGroupID
	s.SubCategory = ""
}

// Reconcile moves the selection off anything that has no items under the
// current media filter. A sub-category without items is replaced by its
// first sibling with items; a group without items falls back to all.
// It reports whether the selection changed.
func (s *Selection) Reconcile(items []models.GalleryItem) bool {
	before := *s
	if s.Media == "" {
		s.Media = MediaAll
	}

	if s.IsAll() {
		s.Reset()
		return *s != before
	}

	if _, ok := taxonomy.Group(s.Group); !ok {
		s.Reset()
		return true
	}

	if CountsByGroup(items, s.Media)[s.Group] == 0 {
		s.Reset()
		return true
	}

	if s.SubCategory != "" {
		subCounts := CountsBySubCategory(items, s.Media, s.Group)
		if subCounts[s.SubCategory] == 0 {
			replacement := ""
			for _, id := range taxonomy.SubCategoryIDs(s.Group) {
				if subCounts[id] > 0 {
					replacement = id
					break
				}
			}
			if replacement == "" {
				s.Reset()
			} else {
				s.SubCategory = replacement
			}
		}
	}

	return *s != before
}

// SelectGroup activates a group, picks its sub-category and reconciles
func (s *Selection) SelectGroup(items []models.GalleryItem, groupID string) {
	if groupID == taxonomy.AllGroupID || groupID == "" {
		s.Reset()
		return
	}
	if _, ok := taxonomy.Group(groupID); !ok {
		s.Reset()
		return
	}
	s.Group = groupID
	s.SubCategory = ChooseSubCategory(items, s.Media, groupID)
	s.Reconcile(items)
}

// SelectSubCategory activates a sub-category of the current group.
// Ids outside the current group are ignored.
func (s *Selection) SelectSubCategory(items []models.GalleryItem, id string) {
	if s.IsAll() {
		return
	}
	if _, ok := taxonomy.SubCategory(s.Group, id); !ok {
		return
	}
	s.SubCategory = id
	s.Reconcile(items)
}

// SelectMedia changes the media filter and reconciles
func (s *Selection) SelectMedia(items []models.GalleryItem, media MediaFilter) {
	s.Media = media
	s.Reconcile(items)
}

// ParseSelection reads a selection from query parameters media, group and sub.
// Unknown values fall back to the unfiltered defaults.
func ParseSelection(values url.Values) Selection {
	sel := NewSelection()
	if media, ok := ParseMediaFilter(values.Get("media")); ok {
		sel.Media = media
	}
	group := values.Get("group")
	if _, ok := taxonomy.Group(group); !ok || group == taxonomy.AllGroupID {
		return sel
	}
	sel.Group = group
	if sub := values.Get("sub"); sub != "" {
		if _, ok := taxonomy.SubCategory(group, sub); ok {
			sel.SubCategory = sub
		}
	}
	return sel
}

// Values encodes the selection as query parameters, omitting defaults
func (s Selection) Values() url.Values {
	values := url.Values{}
	if s.Media != "" && s.Media != MediaAll {
		values.Set("media", string(s.Media))
	}
	if !s.IsAll() {
		values.Set("group", s.Group)
		if s.SubCategory != "" {
			values.Set("sub", s.SubCategory)
		}
	}
	return values
}

// Query is Values encoded, prefixed with "?" when not empty
func (s Selection) Query() string {
	encoded := s.Values().Encode()
	if encoded == "" {
		return ""
	}
	return "?" + encoded
}
