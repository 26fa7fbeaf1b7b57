package lightbox

import (
	"fmt"
	"testing"
	"time"

	"studio-portfolio/pkg/models"
)

type countingStopper struct {
	stops int
}

func (s *countingStopper) Stop() { s.stops++ }

func makeItems(n int) []models.GalleryItem {
	items := make([]models.GalleryItem, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, &models.ImageItem{
			ItemBase: models.ItemBase{ID: fmt.Sprintf("item-%d", i), Category: models.CategoryWeddings},
			Filename: fmt.Sprintf("%d.jpg", i),
		})
	}
	return items
}

func TestNavigator_KeyboardScenario(t *testing.T) {
	items := makeItems(5)
	keys := NewDispatcher()
	nav := NewNavigator(items, WithKeySource(keys))

	nav.Open(items[2])
	keys.Dispatch(KeyArrowRight)
	keys.Dispatch(KeyArrowRight)
	keys.Dispatch(KeyArrowLeft)

	if nav.Current() != items[3] {
		t.Fatalf("expected item-3 open, got %s", nav.Current().Base().ID)
	}
	if nav.Direction() != DirectionRight {
		t.Errorf("expected direction right after prev, got %q", nav.Direction())
	}
}

func TestNavigator_BoundsAreNoOps(t *testing.T) {
	items := makeItems(3)
	stopper := &countingStopper{}
	nav := NewNavigator(items, WithStoppers(stopper))

	nav.Open(items[2])
	stopsAfterOpen := stopper.stops
	if nav.Next() {
		t.Error("Next() at the last item should not move")
	}
	if nav.Index() != 2 || stopper.stops != stopsAfterOpen {
		t.Errorf("state changed on no-op Next(): index=%d stops=%d", nav.Index(), stopper.stops)
	}

	nav.Open(items[0])
	if nav.Prev() {
		t.Error("Prev() at the first item should not move")
	}
	if nav.Index() != 0 {
		t.Errorf("expected index 0, got %d", nav.Index())
	}

	for i := 0; i < 10; i++ {
		nav.Next()
		if idx := nav.Index(); idx < 0 || idx > len(items)-1 {
			t.Fatalf("index %d out of range", idx)
		}
	}
	if nav.Index() != 2 {
		t.Errorf("expected to stop at the last index, got %d", nav.Index())
	}
}

func TestNavigator_StopsMediaOnEveryTransition(t *testing.T) {
	items := makeItems(3)
	video := &countingStopper{}
	embed := &countingStopper{}
	nav := NewNavigator(items, WithStoppers(video))
	nav.AddStopper(embed)

	nav.Open(items[0])
	nav.Next()
	nav.Prev()
	nav.Close()

	if video.stops != 4 || embed.stops != 4 {
		t.Errorf("expected 4 stops per widget, got video=%d embed=%d", video.stops, embed.stops)
	}
	if nav.IsOpen() || nav.Index() != -1 {
		t.Error("expected closed navigator")
	}
}

func TestNavigator_RecomputesIndexAfterFilterChange(t *testing.T) {
	items := makeItems(5)
	nav := NewNavigator(items)
	nav.Open(items[3])

	// the filtered list shrinks around the open item
	nav.SetItems([]models.GalleryItem{items[1], items[3]})
	if nav.Index() != 1 {
		t.Fatalf("expected index 1 in the new list, got %d", nav.Index())
	}
	if nav.Next() {
		t.Error("Next() should be a no-op at the end of the new list")
	}
	if !nav.Prev() || nav.Current() != items[1] {
		t.Errorf("expected Prev() to open item-1, got %s", nav.Current().Base().ID)
	}

	// the open item is filtered out entirely
	nav.SetItems([]models.GalleryItem{items[0], items[4]})
	if nav.Next() || nav.Prev() {
		t.Error("navigation should be a no-op when the open item left the list")
	}
	if !nav.IsOpen() {
		t.Error("lightbox should stay open")
	}
}

func TestNavigator_KeyBindingsOnlyWhileOpen(t *testing.T) {
	items := makeItems(3)
	keys := NewDispatcher()
	nav := NewNavigator(items, WithKeySource(keys))

	keys.Dispatch(KeyArrowRight)
	if nav.IsOpen() || keys.Listeners() != 0 {
		t.Fatal("closed navigator must not listen or react")
	}

	nav.Open(items[0])
	nav.Open(items[1])
	if keys.Listeners() != 1 {
		t.Errorf("expected exactly one listener while open, got %d", keys.Listeners())
	}

	keys.Dispatch(KeyEscape)
	if nav.IsOpen() {
		t.Error("Escape should close the lightbox")
	}
	if keys.Listeners() != 0 {
		t.Errorf("expected listener removed after close, got %d", keys.Listeners())
	}

	if nav.HandleKey(KeyArrowLeft) {
		t.Error("HandleKey should ignore keys while closed")
	}
}

func TestNavigator_OpenIDAndNeighbours(t *testing.T) {
	items := makeItems(3)
	nav := NewNavigator(items)

	if nav.OpenID("missing") {
		t.Error("OpenID should fail for unknown ids")
	}
	if !nav.OpenID("item-1") {
		t.Fatal("OpenID(item-1) failed")
	}
	prev, next := nav.Neighbours()
	if prev != items[0] || next != items[2] {
		t.Errorf("unexpected neighbours %v, %v", prev, next)
	}
	if !nav.HasPrev() || !nav.HasNext() {
		t.Error("expected both neighbours available")
	}

	nav.OpenID("item-0")
	prev, _ = nav.Neighbours()
	if prev != nil || nav.HasPrev() {
		t.Error("expected no previous item at the start")
	}
}

func TestNavigator_SwipeHandlers(t *testing.T) {
	items := makeItems(3)
	nav := NewNavigator(items)
	nav.Open(items[1])
	start := time.Now()

	desktop := nav.SwipeHandlers(false)
	desktop.TouchStart(300, 100, start)
	desktop.TouchEnd(100, 100, start.Add(100*time.Millisecond))
	if nav.Index() != 1 {
		t.Errorf("swipes must not navigate on large viewports, index=%d", nav.Index())
	}

	mobile := nav.SwipeHandlers(true)
	mobile.TouchStart(300, 100, start)
	if got := mobile.TouchEnd(100, 110, start.Add(100*time.Millisecond)); got != SwipeLeft {
		t.Fatalf("expected left swipe, got %s", got)
	}
	if nav.Index() != 2 {
		t.Errorf("left swipe should show the next item, index=%d", nav.Index())
	}

	mobile.TouchStart(100, 100, start)
	mobile.TouchEnd(300, 100, start.Add(100*time.Millisecond))
	if nav.Index() != 1 {
		t.Errorf("right swipe should show the previous item, index=%d", nav.Index())
	}
}
