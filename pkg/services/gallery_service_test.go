package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"studio-portfolio/pkg/config"
	"studio-portfolio/pkg/models"
)

const fiveItemGallery = `{"items": [
  {"id": "w1", "type": "image", "category": "weddings", "subCategory": "wedding", "filename": "w1.jpg", "alt": {"ro": "a", "en": "a"}, "featured": true},
  {"id": "w2", "type": "image", "category": "weddings", "subCategory": "wedding", "filename": "w2.jpg", "alt": {"ro": "b", "en": "b"}},
  {"id": "w3", "type": "image", "category": "weddings", "subCategory": "wedding", "filename": "w3.jpg", "alt": {"ro": "c", "en": "c"}, "featured": true},
  {"id": "a1", "type": "image", "category": "architecture", "filename": "a1.jpg", "alt": {"ro": "d", "en": "d"}},
  {"id": "c1", "type": "image", "category": "corporate", "filename": "c1.jpg", "alt": {"ro": "e", "en": "e"}}
]}`

func newTestService(source string) *Service {
	return NewService(&config.Config{
		GallerySource: source,
		AssetsBase:    "/gallery-assets/",
		CacheTTL:      time.Minute,
	})
}

func TestLoad_FromHTTP(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, fiveItemGallery)
	}))
	defer server.Close()

	svc := newTestService(server.URL + "/gallery.json")
	result := svc.Load(context.Background())
	if !result.Ready() {
		t.Fatalf("expected ready, got %s: %v", result.Status, result.Err)
	}

	var ids []string
	for _, item := range result.Items {
		ids = append(ids, item.Base().ID)
	}
	if strings.Join(ids, ",") != "w1,w2,w3,a1,c1" {
		t.Errorf("items not in document order: %v", ids)
	}

	svc.Load(context.Background())
	if atomic.LoadInt32(&hits) != 1 {
		t.Errorf("expected cached second load, got %d fetches", hits)
	}

	svc.Reload()
	svc.Load(context.Background())
	if atomic.LoadInt32(&hits) != 2 {
		t.Errorf("expected a fetch after Reload, got %d fetches", hits)
	}
}

func TestLoad_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		check  func(t *testing.T, err error)
	}{
		{
			name:   "non-success status",
			status: http.StatusNotFound,
			body:   "missing",
			check: func(t *testing.T, err error) {
				var loadErr *LoadError
				if !errors.As(err, &loadErr) || loadErr.StatusCode != http.StatusNotFound {
					t.Errorf("expected LoadError with status 404, got %v", err)
				}
				if !errors.Is(err, ErrBadStatus) {
					t.Errorf("expected ErrBadStatus, got %v", err)
				}
			},
		},
		{
			name:   "null items",
			status: http.StatusOK,
			body:   `{"items": null}`,
			check: func(t *testing.T, err error) {
				if !errors.Is(err, models.ErrMissingItems) {
					t.Errorf("expected ErrMissingItems, got %v", err)
				}
			},
		},
		{
			name:   "malformed json",
			status: http.StatusOK,
			body:   `{"items": [`,
			check: func(t *testing.T, err error) {
				var loadErr *LoadError
				if !errors.As(err, &loadErr) {
					t.Errorf("expected LoadError, got %v", err)
				}
			},
		},
		{
			name:   "duplicate ids",
			status: http.StatusOK,
			body:   `{"items": [{"id": "x", "type": "image", "category": "weddings", "filename": "a.jpg"}, {"id": "x", "type": "image", "category": "weddings", "filename": "b.jpg"}]}`,
			check: func(t *testing.T, err error) {
				if !errors.Is(err, models.ErrDuplicateID) {
					t.Errorf("expected ErrDuplicateID, got %v", err)
				}
			},
		},
		{
			name:   "unknown item type",
			status: http.StatusOK,
			body:   `{"items": [{"id": "x", "type": "gif", "category": "weddings"}]}`,
			check: func(t *testing.T, err error) {
				if !errors.Is(err, models.ErrUnknownMediaType) {
					t.Errorf("expected ErrUnknownMediaType, got %v", err)
				}
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var hits int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				atomic.AddInt32(&hits, 1)
				w.WriteHeader(test.status)
				fmt.Fprint(w, test.body)
			}))
			defer server.Close()

			svc := newTestService(server.URL)
			result := svc.Load(context.Background())
			if result.Status != StatusError {
				t.Fatalf("expected error status, got %s", result.Status)
			}
			if len(result.Items) != 0 {
				t.Errorf("expected no partial items, got %d", len(result.Items))
			}
			if result.ErrorMessage() == "" {
				t.Error("expected an error message")
			}
			test.check(t, result.Err)

			// failures are not cached
			svc.Load(context.Background())
			if atomic.LoadInt32(&hits) != 2 {
				t.Errorf("expected failed load to be fetched again, got %d fetches", hits)
			}
		})
	}
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gallery.json")
	if err := os.WriteFile(path, []byte(fiveItemGallery), 0o644); err != nil {
		t.Fatal(err)
	}

	result := newTestService(path).Load(context.Background())
	if !result.Ready() || len(result.Items) != 5 {
		t.Fatalf("expected 5 items, got %s %d (%v)", result.Status, len(result.Items), result.Err)
	}

	missing := newTestService(filepath.Join(dir, "missing.json")).Load(context.Background())
	if missing.Status != StatusError {
		t.Errorf("expected error for missing file, got %s", missing.Status)
	}
}

func TestLoad_InvalidStoragePath(t *testing.T) {
	result := newTestService("gs://bucket-only").Load(context.Background())
	if result.Status != StatusError {
		t.Errorf("expected error for invalid storage path, got %s", result.Status)
	}
}

func TestFeatured(t *testing.T) {
	var items []models.GalleryItem
	for i := 0; i < 30; i++ {
		items = append(items, &models.ImageItem{ItemBase: models.ItemBase{
			ID:       fmt.Sprintf("i%d", i),
			Featured: i%2 == 0 || i > 20,
		}})
	}

	featured := Featured(items)
	if len(featured) != MaxFeatured {
		t.Fatalf("expected %d featured items, got %d", MaxFeatured, len(featured))
	}
	last := -1
	for _, item := range featured {
		if !item.Base().Featured {
			t.Errorf("non-featured item %s in preview", item.Base().ID)
		}
		idx := models.IndexOf(items, item.Base().ID)
		if idx <= last {
			t.Errorf("featured items out of order at %s", item.Base().ID)
		}
		last = idx
	}

	if got := Featured(items[:3]); len(got) != 2 {
		t.Errorf("expected 2 featured items in a short list, got %d", len(got))
	}
}

func TestFindItem(t *testing.T) {
	items := []models.GalleryItem{&models.ImageItem{ItemBase: models.ItemBase{ID: "a"}}}
	if item, err := FindItem(items, "a"); err != nil || item.Base().ID != "a" {
		t.Errorf("FindItem(a) = %v, %v", item, err)
	}
	if _, err := FindItem(items, "b"); err == nil {
		t.Error("expected error for unknown id")
	}
}
