package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"studio-portfolio/pkg/i18n"
	"studio-portfolio/pkg/models"
)

const embedGallery = `{"items": [
  {"id": "e1", "type": "embed", "category": "weddings", "provider": "youtube", "videoId": "abc123", "alt": {"ro": "Film", "en": "Film"}},
  {"id": "e2", "type": "embed", "category": "weddings", "provider": "other", "alt": {"ro": "Teaser", "en": "Teaser"}},
  {"id": "p1", "type": "image", "category": "weddings", "filename": "p1.jpg", "alt": {"ro": "Poza", "en": "Photo"}},
  {"id": "v1", "type": "video", "category": "weddings", "filename": "v1.mp4", "alt": {"ro": "Clip", "en": "Clip"}}
]}`

const photoGallery = `{"items": [
  {"id": "p1", "type": "image", "category": "weddings", "filename": "p1.jpg", "alt": {"ro": "a", "en": "a"}},
  {"id": "p2", "type": "image", "category": "portraits", "filename": "p2.jpg", "alt": {"ro": "b", "en": "b"}}
]}`

// assertHTML checks the status and content type of a page and returns its body
func assertHTML(t *testing.T, rr *httptest.ResponseRecorder, status int, contains ...string) string {
	t.Helper()
	body := rr.Body.String()
	if rr.Code != status {
		t.Fatalf("expected %d, got %d: %s", status, rr.Code, body)
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("expected an HTML response, got %q", ct)
	}
	for _, s := range contains {
		if !strings.Contains(body, s) {
			t.Errorf("page is missing %q:\n%s", s, body)
		}
	}
	return body
}

func TestHomeHandler(t *testing.T) {
	h := newTestHandler(t, testGallery, "")

	body := assertHTML(t, serve(h, http.MethodGet, "/?lang=en", nil), http.StatusOK,
		`<html lang="en"`,
		`/portfolio/w1?featured=1`,
		`/portfolio/w3?featured=1`,
		`src="/gallery-assets/w1.jpg"`,
		i18n.T(models.English, "View full portfolio"),
	)
	if strings.Contains(body, "/portfolio/w2?featured=1") {
		t.Error("only featured items belong on the home page")
	}

	assertHTML(t, serve(h, http.MethodGet, "/", nil), http.StatusOK, `<html lang="ro"`, i18n.T(models.Romanian, "View full portfolio"))
}

func TestPortfolioHandler(t *testing.T) {
	h := newTestHandler(t, testGallery, "")

	body := assertHTML(t, serve(h, http.MethodGet, "/portfolio?group=weddings&sub=wedding&lang=en", nil), http.StatusOK,
		`/portfolio/w1?`,
		`/portfolio/v1?`,
		`class="active"`,
		"Weddings (4)",
		"Wedding (4)",
	)
	if strings.Contains(body, "/portfolio/a1?") {
		t.Error("items outside the selected group must not be rendered")
	}
	if strings.Contains(body, "button reset") {
		t.Error("a non-empty selection must not show the empty state")
	}
}

func TestPortfolioHandler_EmptyState(t *testing.T) {
	h := newTestHandler(t, photoGallery, "")

	body := assertHTML(t, serve(h, http.MethodGet, "/portfolio?media=videos&lang=en", nil), http.StatusOK,
		i18n.T(models.English, "No items in this category"),
		`button reset`,
		`href="/portfolio?lang=en"`,
		">"+i18n.T(models.English, "Show all")+"</a>",
	)
	if strings.Contains(body, `class="card`) {
		t.Error("the empty state must not render cards")
	}

	assertHTML(t, serve(h, http.MethodGet, "/portfolio?media=videos", nil), http.StatusOK, i18n.T(models.Romanian, "No items in this category"))
}

func TestLightboxHandler(t *testing.T) {
	h := newTestHandler(t, embedGallery, "")

	tests := []struct {
		name     string
		target   string
		status   int
		contains []string
		absent   string
	}{
		{
			name:     "youtube embed",
			target:   "/portfolio/e1?lang=en",
			status:   http.StatusOK,
			contains: []string{"<iframe", `src="https://www.youtube.com/embed/abc123?autoplay=1`, "1 / 4"},
		},
		{
			name:     "embed without a url",
			target:   "/portfolio/e2?lang=en",
			status:   http.StatusOK,
			contains: []string{`class="unavailable"`, i18n.T(models.English, "Video unavailable"), "2 / 4"},
			absent:   "<iframe",
		},
		{
			name:     "localized placeholder",
			target:   "/portfolio/e2",
			status:   http.StatusOK,
			contains: []string{i18n.T(models.Romanian, "Video unavailable")},
			absent:   "<iframe",
		},
		{
			name:     "image",
			target:   "/portfolio/p1?lang=en",
			status:   http.StatusOK,
			contains: []string{`src="/gallery-assets/p1.jpg"`, `alt="Photo"`, "/portfolio/e2?", "/portfolio/v1?"},
			absent:   "<iframe",
		},
		{
			name:     "video",
			target:   "/portfolio/v1?lang=en",
			status:   http.StatusOK,
			contains: []string{"<video", `src="/gallery-assets/v1.mp4"`},
		},
		{
			name:     "unknown item",
			target:   "/portfolio/missing?lang=en",
			status:   http.StatusNotFound,
			contains: []string{i18n.T(models.English, "Item not found")},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			body := assertHTML(t, serve(h, http.MethodGet, test.target, nil), test.status, test.contains...)
			if test.absent != "" && strings.Contains(body, test.absent) {
				t.Errorf("page must not contain %q", test.absent)
			}
		})
	}
}

func TestPageHandlers_LoadFailure(t *testing.T) {
	h := newTestHandler(t, `{"items": [`, "")

	for _, target := range []string{"/", "/portfolio", "/portfolio/w1"} {
		assertHTML(t, serve(h, http.MethodGet, target+"?lang=en", nil), http.StatusBadGateway, i18n.T(models.English, "Failed to load gallery"))
		assertHTML(t, serve(h, http.MethodGet, target, nil), http.StatusBadGateway, i18n.T(models.Romanian, "Failed to load gallery"))
	}
}

func TestPageHandlers_BrokenViews(t *testing.T) {
	failing := newTestHandler(t, `{"items": [`, "")
	failing.cfg.ViewsDir = t.TempDir()

	rr := serve(failing, http.MethodGet, "/portfolio?lang=en", nil)
	if rr.Code != http.StatusBadGateway {
		t.Fatalf("expected 502 without views, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), i18n.T(models.English, "Failed to load gallery")) {
		t.Errorf("expected the localized notice, got %q", rr.Body.String())
	}

	ready := newTestHandler(t, testGallery, "")
	ready.cfg.ViewsDir = t.TempDir()
	if rr := serve(ready, http.MethodGet, "/portfolio", nil); rr.Code != http.StatusInternalServerError {
		t.Errorf("expected 500 when a page view is missing, got %d", rr.Code)
	}
}

func TestCards_Playable(t *testing.T) {
	h := newTestHandler(t, embedGallery, "")

	rr := serve(h, http.MethodGet, "/api/portfolio?lang=en", nil)
	var body portfolioResponse
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}

	expected := map[string]bool{"e1": true, "e2": false, "p1": false, "v1": true}
	if len(body.Items) != len(expected) {
		t.Fatalf("expected %d cards, got %d", len(expected), len(body.Items))
	}
	for _, card := range body.Items {
		if card.Playable != expected[card.ID] {
			t.Errorf("card %s: playable = %v, expected %v", card.ID, card.Playable, expected[card.ID])
		}
	}
}
