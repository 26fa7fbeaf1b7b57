package cmd

import (
	"bytes"
	"strings"
	"testing"

	"studio-portfolio/pkg/models"
	"studio-portfolio/pkg/portfolio"
)

func TestListCategories(t *testing.T) {
	items := []models.GalleryItem{
		&models.ImageItem{ItemBase: models.ItemBase{ID: "w1", Category: models.CategoryWeddings, SubCategory: "wedding"}, Filename: "w1.jpg"},
		&models.ImageItem{ItemBase: models.ItemBase{ID: "w2", Category: models.CategoryWeddings}, Filename: "w2.jpg"},
		&models.VideoItem{ItemBase: models.ItemBase{ID: "a1", Category: models.CategoryArchitecture}, Filename: "a1.mp4"},
	}

	var out bytes.Buffer
	listCategories(&out, items, portfolio.MediaAll, models.English)
	got := out.String()

	for _, expected := range []string{
		"Categories (all):",
		"All [all]: 3",
		"Weddings [weddings]: 2\n  from: weddings\n",
		"  - Wedding [wedding]: 2",
		"  from: architecture\n",
		"  - Architectural [architectural]: 1",
		"  from: baptisms\n",
	} {
		if !strings.Contains(got, expected) {
			t.Errorf("output is missing %q:\n%s", expected, got)
		}
	}
	if strings.Contains(got, "All [all]: 3\n  from:") {
		t.Error("the all group has no source categories")
	}
}
