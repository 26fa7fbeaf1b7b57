package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"studio-portfolio/pkg/lightbox"
	"studio-portfolio/pkg/media"
	"studio-portfolio/pkg/models"
	"studio-portfolio/pkg/services"
	"studio-portfolio/pkg/taxonomy"
)

// newShowItemCmd creates a new command for showing item details
func newShowItemCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show-item [id]",
		Short: "Show a single portfolio item",
		Long:  `Show detailed information about a portfolio item identified by its id.`,
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			items := loadItems(cmd.Context())
			item, err := services.FindItem(items, args[0])
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
			showItem(cmd, items, item)
		},
	}
}

// showItem displays details about a single item
func showItem(cmd *cobra.Command, items []models.GalleryItem, item models.GalleryItem) {
	svc := services.Default()
	base := item.Base()
	assets := svc.Config().AssetsBase

	fmt.Printf("Item: %s\n", base.ID)
	fmt.Printf("Type: %s\n", item.Type())
	fmt.Printf("Caption (ro): %s\n", base.Alt.RO)
	fmt.Printf("Caption (en): %s\n", base.Alt.EN)
	fmt.Printf("Category: %s\n", base.Category)
	if placement, ok := taxonomy.ResolveItem(item); ok {
		fmt.Printf("Placement: %s / %s\n", placement.GroupID, placement.SubCategoryID)
	} else {
		fmt.Println("Placement: none (only listed under all)")
	}
	fmt.Printf("Featured: %v\n", base.Featured)
	fmt.Println("================")

	switch it := item.(type) {
	case *models.ImageItem, *models.VideoItem:
		fmt.Printf("URL: %s\n", media.Source(assets, it))
	case *models.EmbedItem:
		fmt.Printf("Provider: %s\n", it.Provider)
		if embedURL, ok := media.EmbedURL(it); ok {
			fmt.Printf("Embed URL: %s\n", embedURL)
		} else {
			fmt.Println("Embed URL: unavailable")
		}
	}
	fmt.Printf("Thumbnail: %s\n", svc.ThumbnailURL(cmd.Context(), item))

	nav := lightbox.NewNavigator(items)
	nav.Open(item)
	prev, next := nav.Neighbours()
	if prev != nil {
		fmt.Printf("Previous: %s\n", prev.Base().ID)
	}
	if next != nil {
		fmt.Printf("Next: %s\n", next.Base().ID)
	}
}
