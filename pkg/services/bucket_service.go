package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"studio-portfolio/pkg/logging"
	"studio-portfolio/pkg/models"
)

// Allowed extensions for bucket imports
var (
	videoExtensions = []string{".mp4", ".m4v", ".webm", ".mov"}
	imageExtensions = []string{".jpg", ".jpeg", ".png", ".webp"}
)

// naturalLess compares strings in a way that treats numbers as numbers rather than characters
// For example: "file2" < "file10" when using naturalLess
func naturalLess(s1, s2 string) bool {
	i, j := 0, 0
	for i < len(s1) && j < len(s2) {
		if unicode.IsDigit(rune(s1[i])) && unicode.IsDigit(rune(s2[j])) {
			start1, start2 := i, j
			for i < len(s1) && unicode.IsDigit(rune(s1[i])) {
				i++
			}
			for j < len(s2) && unicode.IsDigit(rune(s2[j])) {
				j++
			}
			n1, _ := strconv.Atoi(s1[start1:i])
			n2, _ := strconv.Atoi(s2[start2:j])
			if n1 != n2 {
				return n1 < n2
			}
			continue
		}
		if s1[i] != s2[j] {
			return s1[i] < s2[j]
		}
		i++
		j++
	}
	return len(s1)-i < len(s2)-j
}

func hasExtension(name string, extensions []string) bool {
	ext := strings.ToLower(path.Ext(name))
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}

func knownCategory(s string) (models.Category, bool) {
	for _, c := range models.Categories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// itemID derives a stable id from the object name so re-imports keep ids
func itemID(objectName string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(objectName)).String()
}

// captionFromFilename turns "first-dance_02.jpg" into "First dance 02"
func captionFromFilename(name string) string {
	base := strings.TrimSuffix(path.Base(name), path.Ext(name))
	base = strings.NewReplacer("-", " ", "_", " ").Replace(base)
	base = strings.Join(strings.Fields(base), " ")
	if base == "" {
		return base
	}
	runes := []rune(base)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// BuildDocument turns bucket object names into a gallery document. Objects
// are laid out as <category>/<file> or <category>/<subCategory>/<file>.
// An image sharing its base name with a video becomes that video's
// thumbnail. Objects outside a known category are skipped.
func BuildDocument(objectNames []string) *models.Document {
	names := append([]string(nil), objectNames...)
	sort.Slice(names, func(i, j int) bool {
		return naturalLess(names[i], names[j])
	})

	type placed struct {
		category    models.Category
		subCategory string
	}
	place := func(name string) (placed, bool) {
		parts := strings.Split(name, "/")
		if len(parts) < 2 || len(parts) > 3 || parts[len(parts)-1] == "" {
			return placed{}, false
		}
		category, ok := knownCategory(parts[0])
		if !ok {
			return placed{}, false
		}
		p := placed{category: category}
		if len(parts) == 3 {
			p.subCategory = parts[1]
		}
		return p, true
	}

	stem := func(name string) string {
		return strings.TrimSuffix(name, path.Ext(name))
	}

	// First pass: find the videos so their posters are not imported as photos
	videos := make(map[string]*models.VideoItem)
	items := []models.GalleryItem{}
	for _, name := range names {
		p, ok := place(name)
		if !ok || !hasExtension(name, videoExtensions) {
			continue
		}
		if _, dup := videos[stem(name)]; dup {
			continue
		}
		caption := captionFromFilename(name)
		video := &models.VideoItem{
			ItemBase: models.ItemBase{
				ID:          itemID(name),
				Alt:         models.Text{RO: caption, EN: caption},
				Category:    p.category,
				SubCategory: p.subCategory,
				AspectRatio: models.Landscape,
			},
			Filename: name,
		}
		videos[stem(name)] = video
	}

	// Second pass: emit items in natural order
	emitted := make(map[string]bool)
	for _, name := range names {
		p, ok := place(name)
		if !ok {
			logging.Logger.Debug("Skipping object outside a known category", "object", name)
			continue
		}
		switch {
		case hasExtension(name, videoExtensions):
			if emitted[stem(name)] {
				continue
			}
			emitted[stem(name)] = true
			items = append(items, videos[stem(name)])
		case hasExtension(name, imageExtensions):
			if video, ok := videos[stem(name)]; ok {
				video.Thumbnail = name
				continue
			}
			caption := captionFromFilename(name)
			items = append(items, &models.ImageItem{
				ItemBase: models.ItemBase{
					ID:          itemID(name),
					Alt:         models.Text{RO: caption, EN: caption},
					Category:    p.category,
					SubCategory: p.subCategory,
				},
				Filename: name,
			})
		}
	}

	return &models.Document{Items: items}
}

// ScanBucket lists every object in a bucket and builds a gallery document
func (s *Service) ScanBucket(ctx context.Context, bucketName string) (*models.Document, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	defer client.Close()

	logging.Logger.Info("Scanning bucket", "bucket", bucketName)

	var names []string
	it := client.Bucket(bucketName).Objects(ctx, nil)
	for {
		obj, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error iterating objects: %w", err)
		}
		names = append(names, obj.Name)
	}

	doc := BuildDocument(names)
	logging.Logger.Info("Bucket scanned", "objects", len(names), "items", len(doc.Items))
	return doc, nil
}

// UploadDocument writes doc as JSON to an object in the bucket
func (s *Service) UploadDocument(ctx context.Context, bucketName, objectName string, doc *models.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode gallery document: %w", err)
	}

	client, err := storage.NewClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to create storage client: %w", err)
	}
	defer client.Close()

	writer := client.Bucket(bucketName).Object(objectName).NewWriter(ctx)
	writer.ContentType = "application/json"
	writer.CacheControl = "no-cache"

	if _, err := writer.Write(data); err != nil {
		writer.Close()
		return fmt.Errorf("Writer.Write: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("Writer.Close: %w", err)
	}

	logging.Logger.Info("Uploaded gallery document", "bucket", bucketName, "object", objectName, "items", len(doc.Items))
	return nil
}
