package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"studio-portfolio/pkg/models"
)

// newExportCmd creates a new command for exporting gallery data
func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [format]",
		Short: "Export gallery data",
		Long:  `Export the validated gallery document in the specified format. Currently supported formats: json.`,
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			format := "json"
			if len(args) > 0 {
				format = args[0]
			}
			if format != "json" {
				fmt.Printf("Unsupported export format: %s\n", format)
				fmt.Println("Supported formats: json")
				os.Exit(1)
			}
			exportData(loadItems(cmd.Context()))
		},
	}
}

// exportData prints the gallery document in document order
func exportData(items []models.GalleryItem) {
	data, err := json.MarshalIndent(models.Document{Items: items}, "", "  ")
	if err != nil {
		fmt.Printf("Error marshaling data: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(string(data))
}
