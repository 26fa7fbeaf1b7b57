package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"cloud.google.com/go/storage"
	"github.com/patrickmn/go-cache"

	"studio-portfolio/pkg/config"
	"studio-portfolio/pkg/logging"
	"studio-portfolio/pkg/models"
)

// MaxFeatured caps the homepage preview
const MaxFeatured = 18

const galleryCacheKey = "gallery"

// Status is the state of a finished gallery load. The loading state is the
// Load call itself.
type Status string

const (
	StatusError   Status = "error"
	StatusReady   Status = "ready"
)

// LoadResult is the outcome of loading the gallery document. Items is only
// set when Status is ready; a failed load never carries partial data.
type LoadResult struct {
	Status Status
	Items  []models.GalleryItem
	Err    error
}

// Ready reports whether the items are available
func (r LoadResult) Ready() bool {
	return r.Status == StatusReady
}

// ErrorMessage returns the failure text, or "" when there is none
func (r LoadResult) ErrorMessage() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}

// LoadError describes a failed fetch or decode of the gallery document
type LoadError struct {
	Source     string
	StatusCode int
	Err        error
}

func (e *LoadError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("failed to load gallery from %s: status %d", e.Source, e.StatusCode)
	}
	return fmt.Sprintf("failed to load gallery from %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// ErrBadStatus is wrapped by LoadError when the source answers with a non-2xx status
var ErrBadStatus = errors.New("unexpected response status")

// Service loads the gallery document and derives views from it
type Service struct {
	config       *config.Config
	galleryCache *cache.Cache
	httpClient   *http.Client
	mu           sync.RWMutex

	// vimeoEndpoint is the oEmbed API used to look up Vimeo thumbnails
	vimeoEndpoint string
}

var (
	// defaultService is the singleton instance of Service
	defaultService *Service
	once           sync.Once
)

// NewService creates a service for cfg
func NewService(cfg *config.Config) *Service {
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Service{
		config:        cfg,
		galleryCache:  cache.New(ttl, 2*ttl),
		httpClient:    &http.Client{Timeout: 30 * time.Second},
		vimeoEndpoint: vimeoOEmbedURL,
	}
}

// InitService initializes the default service with the given configuration
func InitService(cfg *config.Config) {
	once.Do(func() {
		defaultService = NewService(cfg)
	})
}

// Default returns the service created by InitService
func Default() *Service {
	return defaultService
}

// Load loads the gallery through the default service
func Load(ctx context.Context) LoadResult {
	return defaultService.Load(ctx)
}

// Reload forgets the cached gallery of the default service
func Reload() {
	defaultService.Reload()
}

// Config returns the configuration the service was created with
func (s *Service) Config() *config.Config {
	return s.config
}

// Load returns the gallery items in document order. A successful load is
// cached for the configured TTL; failures are not cached and not retried.
func (s *Service) Load(ctx context.Context) LoadResult {
	s.mu.RLock()
	if cached, found := s.galleryCache.Get(galleryCacheKey); found {
		s.mu.RUnlock()
		logging.Logger.Debug("Using cached gallery")
		return LoadResult{Status: StatusReady, Items: cached.([]models.GalleryItem)}
	}
	s.mu.RUnlock()

	logging.Logger.Info("Loading gallery", "source", s.config.GallerySource)

	doc, err := s.fetch(ctx)
	if err != nil {
		logging.Logger.Error("Gallery load failed", "err", err)
		return LoadResult{Status: StatusError, Err: err}
	}

	s.mu.Lock()
	s.galleryCache.Set(galleryCacheKey, doc.Items, cache.DefaultExpiration)
	s.mu.Unlock()

	logging.Logger.Info("Gallery loaded", "items", len(doc.Items))
	return LoadResult{Status: StatusReady, Items: doc.Items}
}

// Reload flushes the cache so the next Load fetches again
func (s *Service) Reload() {
	s.mu.Lock()
	s.galleryCache.Flush()
	s.mu.Unlock()
}

func (s *Service) fetch(ctx context.Context) (*models.Document, error) {
	source := s.config.GallerySource

	body, err := s.open(ctx, source)
	if err != nil {
		var loadErr *LoadError
		if errors.As(err, &loadErr) {
			return nil, err
		}
		return nil, &LoadError{Source: source, Err: err}
	}
	defer body.Close()

	doc, err := DecodeDocument(body)
	if err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}
	return doc, nil
}

// DecodeDocument parses and validates a gallery document
func DecodeDocument(r io.Reader) (*models.Document, error) {
	var doc models.Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("malformed gallery document: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// open returns the raw document from an http(s) URL, a gs://bucket/object
// path or a local file
func (s *Service) open(ctx context.Context, source string) (io.ReadCloser, error) {
	switch {
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
		if err != nil {
			return nil, err
		}
		resp, err := s.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			resp.Body.Close()
			return nil, &LoadError{Source: source, StatusCode: resp.StatusCode, Err: ErrBadStatus}
		}
		return resp.Body, nil

	case strings.HasPrefix(source, "gs://"):
		bucketName, objectName, ok := strings.Cut(strings.TrimPrefix(source, "gs://"), "/")
		if !ok || bucketName == "" || objectName == "" {
			return nil, fmt.Errorf("invalid storage path %q", source)
		}
		return openStorageObject(ctx, bucketName, objectName)

	default:
		return os.Open(source)
	}
}

// storageReader closes the storage client together with the object reader
type storageReader struct {
	*storage.Reader
	client *storage.Client
}

func (r *storageReader) Close() error {
	err := r.Reader.Close()
	if cerr := r.client.Close(); err == nil {
		err = cerr
	}
	return err
}

func openStorageObject(ctx context.Context, bucketName, objectName string) (io.ReadCloser, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	reader, err := client.Bucket(bucketName).Object(objectName).NewReader(ctx)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to read gs://%s/%s: %w", bucketName, objectName, err)
	}
	return &storageReader{Reader: reader, client: client}, nil
}

// Featured returns the featured items in document order, at most MaxFeatured
func Featured(items []models.GalleryItem) []models.GalleryItem {
	featured := make([]models.GalleryItem, 0, MaxFeatured)
	for _, item := range items {
		if !item.Base().Featured {
			continue
		}
		featured = append(featured, item)
		if len(featured) == MaxFeatured {
			break
		}
	}
	return featured
}

// FindItem returns the item with the given id
func FindItem(items []models.GalleryItem, id string) (models.GalleryItem, error) {
	if idx := models.IndexOf(items, id); idx >= 0 {
		return items[idx], nil
	}
	return nil, fmt.Errorf("item not found: %s", id)
}
