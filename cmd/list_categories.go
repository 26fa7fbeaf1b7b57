package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"studio-portfolio/pkg/logging"
	"studio-portfolio/pkg/models"
	"studio-portfolio/pkg/portfolio"
	"studio-portfolio/pkg/services"
	"studio-portfolio/pkg/taxonomy"
)

// newListCategoriesCmd creates a new command for listing the category tree
func newListCategoriesCmd() *cobra.Command {
	var media, lang string
	cmd := &cobra.Command{
		Use:   "list-categories",
		Short: "List the category groups and sub-categories",
		Long:  `List every category group and sub-category with the number of items in each under a media filter.`,
		Run: func(cmd *cobra.Command, args []string) {
			items := loadItems(cmd.Context())
			filter, ok := portfolio.ParseMediaFilter(media)
			if !ok {
				logging.Logger.Fatal("Unknown media filter", "media", media)
			}
			listCategories(cmd.OutOrStdout(), items, filter, languageOrDefault(lang))
		},
	}

	cmd.Flags().StringVarP(&media, "media", "m", "all", "Media filter: all, photos or videos")
	cmd.Flags().StringVarP(&lang, "lang", "l", "", "Label language: ro or en (defaults to DEFAULT_LANGUAGE)")
	return cmd
}

// languageOrDefault returns lang, or the configured default when lang is empty
func languageOrDefault(lang string) models.Language {
	if lang == "" {
		return models.ParseLanguage(services.Default().Config().DefaultLanguage)
	}
	return models.ParseLanguage(lang)
}

// listCategories displays the groups, the flat categories feeding each
// group, and their sub-categories with counts
func listCategories(w io.Writer, items []models.GalleryItem, media portfolio.MediaFilter, lang models.Language) {
	groupCounts := portfolio.CountsByGroup(items, media)

	fmt.Fprintf(w, "Categories (%s):\n", media)
	fmt.Fprintln(w, "================")

	for _, group := range taxonomy.TopGroups {
		fmt.Fprintf(w, "%s [%s]: %d\n", group.Label.In(lang), group.ID, groupCounts[group.ID])
		if group.ID == taxonomy.AllGroupID {
			fmt.Fprintln(w)
			continue
		}
		if categories := taxonomy.CategoriesForGroup(group.ID); len(categories) > 0 {
			names := make([]string, 0, len(categories))
			for _, category := range categories {
				names = append(names, string(category))
			}
			fmt.Fprintf(w, "  from: %s\n", strings.Join(names, ", "))
		}
		subCounts := portfolio.CountsBySubCategory(items, media, group.ID)
		for _, sc := range group.SubCategories {
			fmt.Fprintf(w, "  - %s [%s]: %d\n", sc.Label.In(lang), sc.ID, subCounts[sc.ID])
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Visible: %d of %d groups\n", len(portfolio.VisibleGroups(items, media)), len(taxonomy.TopGroups))
}
