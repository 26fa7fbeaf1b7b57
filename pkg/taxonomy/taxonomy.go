// Package taxonomy holds the fixed two-level navigation structure of the
// portfolio and the mapping from flat item categories onto it.
package taxonomy

import (
	"studio-portfolio/pkg/models"
)

// AllGroupID is the group that matches every item
const AllGroupID = "all"

// TopGroups is the navigation taxonomy in display order
var TopGroups = []models.TopGroup{
	{
		ID:    AllGroupID,
		Label: models.Text{RO: "Toate", EN: "All"},
	},
	{
		ID:    "weddings",
		Label: models.Text{RO: "Nunți", EN: "Weddings"},
		SubCategories: []models.SubCategory{
			{ID: "wedding", Label: models.Text{RO: "Nuntă", EN: "Wedding"}},
			{ID: "civil", Label: models.Text{RO: "Stare civilă", EN: "Civil ceremony"}},
			{ID: "save-the-date", Label: models.Text{RO: "Save the date", EN: "Save the date"}},
			{ID: "proposal", Label: models.Text{RO: "Proposal / Logodnă", EN: "Proposal / Engagement"}},
			{ID: "trash-the-dress", Label: models.Text{RO: "Trash the dress", EN: "Trash the dress"}},
		},
	},
	{
		ID:    "other-events",
		Label: models.Text{RO: "Alte Evenimente", EN: "Other Events"},
		SubCategories: []models.SubCategory{
			{ID: "baptism", Label: models.Text{RO: "Botez", EN: "Baptism"}},
			{ID: "coming-of-age", Label: models.Text{RO: "Majorat", EN: "Coming of age"}},
			{ID: "anniversary", Label: models.Text{RO: "Aniversare", EN: "Anniversary"}},
		},
	},
	{
		ID:    "portrait-personal",
		Label: models.Text{RO: "Portret & Ședințe Personale", EN: "Portrait & Personal Sessions"},
		SubCategories: []models.SubCategory{
			{ID: "portrait", Label: models.Text{RO: "Portret", EN: "Portrait"}},
			{ID: "couple", Label: models.Text{RO: "Cuplu", EN: "Couple"}},
			{ID: "family", Label: models.Text{RO: "Familie", EN: "Family"}},
			{ID: "baby", Label: models.Text{RO: "Baby", EN: "Baby"}},
			{ID: "themed-sessions", Label: models.Text{RO: "Ședințe tematice", EN: "Themed sessions"}},
		},
	},
	{
		ID:    "corporate-business",
		Label: models.Text{RO: "Corporate & Business", EN: "Corporate & Business"},
		SubCategories: []models.SubCategory{
			{ID: "portraits-teams", Label: models.Text{RO: "Portrete & Echipe", EN: "Corporate portraits & teams"}},
			{ID: "business-branding", Label: models.Text{RO: "Business Branding", EN: "Business branding"}},
			{ID: "corporate-events", Label: models.Text{RO: "Evenimente Corporate", EN: "Corporate events"}},
		},
	},
	{
		ID:    "real-estate-architecture",
		Label: models.Text{RO: "Imobiliar & Arhitectură", EN: "Real Estate & Architecture"},
		SubCategories: []models.SubCategory{
			{ID: "real-estate", Label: models.Text{RO: "Imobiliar", EN: "Real estate"}},
			{ID: "architectural", Label: models.Text{RO: "Arhitectural", EN: "Architectural"}},
			{ID: "virtual-tours", Label: models.Text{RO: "Tururi virtuale 360", EN: "360 virtual tours"}},
			{ID: "aerial", Label: models.Text{RO: "Imagini aeriene", EN: "Aerial imagery"}},
		},
	},
}

// CategoryMapping places flat categories when an item has no sub-category
var CategoryMapping = map[models.Category]models.Placement{
	models.CategoryWeddings:     {GroupID: "weddings", SubCategoryID: "wedding"},
	models.CategoryBaptisms:     {GroupID: "other-events", SubCategoryID: "baptism"},
	models.CategoryPortraits:    {GroupID: "portrait-personal", SubCategoryID: "portrait"},
	models.CategoryCorporate:    {GroupID: "corporate-business", SubCategoryID: "portraits-teams"},
	models.CategoryArchitecture: {GroupID: "real-estate-architecture", SubCategoryID: "architectural"},
}

// Resolve finds the group and sub-category of an item. An explicit
// sub-category known to the taxonomy wins over the flat category mapping.
func Resolve(category models.Category, subCategory string) (models.Placement, bool) {
	if subCategory != "" {
		for _, group := range TopGroups {
			for _, sc := range group.SubCategories {
				if sc.ID == subCategory {
					return models.Placement{GroupID: group.ID, SubCategoryID: sc.ID}, true
				}
			}
		}
	}

	placement, ok := CategoryMapping[category]
	return placement, ok
}

// ResolveItem is Resolve applied to an item's own fields
func ResolveItem(item models.GalleryItem) (models.Placement, bool) {
	base := item.Base()
	return Resolve(base.Category, base.SubCategory)
}

// Group returns the group with the given id
func Group(id string) (models.TopGroup, bool) {
	for _, group := range TopGroups {
		if group.ID == id {
			return group, true
		}
	}
	return models.TopGroup{}, false
}

// SubCategory returns the sub-category with the given id inside a group
func SubCategory(groupID, id string) (models.SubCategory, bool) {
	group, ok := Group(groupID)
	if !ok {
		return models.SubCategory{}, false
	}
	for _, sc := range group.SubCategories {
		if sc.ID == id {
			return sc, true
		}
	}
	return models.SubCategory{}, false
}

// SubCategoryIDs returns the sub-category ids of a group in display order
func SubCategoryIDs(groupID string) []string {
	group, ok := Group(groupID)
	if !ok {
		return nil
	}
	ids := make([]string, 0, len(group.SubCategories))
	for _, sc := range group.SubCategories {
		ids = append(ids, sc.ID)
	}
	return ids
}

// CategoriesForGroup returns the flat categories whose mapping lands in a group
func CategoriesForGroup(groupID string) []models.Category {
	if groupID == AllGroupID {
		return nil
	}
	var categories []models.Category
	for _, category := range models.Categories {
		if CategoryMapping[category].GroupID == groupID {
			categories = append(categories, category)
		}
	}
	return categories
}
