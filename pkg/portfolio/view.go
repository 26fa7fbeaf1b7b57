package portfolio

import (
	"studio-portfolio/pkg/models"
)

// View is everything a portfolio page needs to render one selection
type View struct {
	Selection         Selection
	Items             []models.GalleryItem
	Groups            []models.TopGroup
	SubCategories     []models.SubCategory
	GroupCounts       map[string]int
	SubCategoryCounts map[string]int
	// Corrected is set when the requested selection had no items and was moved
	Corrected bool
}

// Empty reports whether the selection matches nothing
func (v View) Empty() bool {
	return len(v.Items) == 0
}

// BuildView reconciles the selection against the items and computes the view
func BuildView(items []models.GalleryItem, sel Selection) View {
	corrected := sel.Reconcile(items)

	view := View{
		Selection:   sel,
		Items:       Filter(items, sel.Media, sel.Group, sel.SubCategory),
		Groups:      VisibleGroups(items, sel.Media),
		GroupCounts: CountsByGroup(items, sel.Media),
		Corrected:   corrected,
	}
	if !sel.IsAll() {
		view.SubCategories = VisibleSubCategories(items, sel.Media, sel.Group)
		view.SubCategoryCounts = CountsBySubCategory(items, sel.Media, sel.Group)
	}
	return view
}
