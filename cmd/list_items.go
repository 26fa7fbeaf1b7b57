package cmd

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"studio-portfolio/pkg/models"
	"studio-portfolio/pkg/portfolio"
	"studio-portfolio/pkg/taxonomy"
)

// newListItemsCmd creates a new command for listing the items of a selection
func newListItemsCmd() *cobra.Command {
	var media, group, sub, lang string
	cmd := &cobra.Command{
		Use:   "list-items",
		Short: "List portfolio items",
		Long:  `List the portfolio items visible for a media filter, category group and sub-category, in display order.`,
		Run: func(cmd *cobra.Command, args []string) {
			items := loadItems(cmd.Context())
			sel := portfolio.ParseSelection(url.Values{
				"media": {media},
				"group": {group},
				"sub":   {sub},
			})
			listItems(items, sel, languageOrDefault(lang))
		},
	}

	cmd.Flags().StringVarP(&media, "media", "m", "all", "Media filter: all, photos or videos")
	cmd.Flags().StringVar(&group, "group", taxonomy.AllGroupID, "Category group id")
	cmd.Flags().StringVar(&sub, "sub", "", "Sub-category id")
	cmd.Flags().StringVarP(&lang, "lang", "l", "", "Caption language: ro or en (defaults to DEFAULT_LANGUAGE)")
	return cmd
}

// listItems displays the items of one selection
func listItems(items []models.GalleryItem, sel portfolio.Selection, lang models.Language) {
	view := portfolio.BuildView(items, sel)
	if view.Corrected {
		fmt.Printf("Selection adjusted to media=%s group=%s sub=%s\n\n", view.Selection.Media, view.Selection.Group, view.Selection.SubCategory)
	}

	fmt.Println("Portfolio Items:")
	fmt.Println("================")

	for i, item := range view.Items {
		base := item.Base()
		placement, _ := taxonomy.ResolveItem(item)
		fmt.Printf("%d. [%s] %s\n", i+1, item.Type(), base.Alt.In(lang))
		fmt.Printf("   ID: %s\n", base.ID)
		fmt.Printf("   Placement: %s / %s\n", placement.GroupID, placement.SubCategoryID)
		fmt.Println()
	}

	if view.Empty() {
		fmt.Println("No items in this selection")
	}
	fmt.Printf("Total: %d of %d items\n", len(view.Items), len(items))
}
