// Package lightbox drives the full-screen viewer over a filtered list of
// gallery items: which item is open, moving between neighbours, and
// stopping playback whenever the visible media changes.
package lightbox

import (
	"studio-portfolio/pkg/models"
)

// Stopper halts playback of one media widget. Stop must be idempotent.
type Stopper interface {
	Stop()
}

// StopFunc adapts a function to Stopper
type StopFunc func()

// Stop calls f
func (f StopFunc) Stop() { f() }

// Direction is the slide transition hint of the last navigation
type Direction string

const (
	DirectionNone  Direction = ""
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

// Navigator is the lightbox state. It is owned by a single caller.
type Navigator struct {
	items       []models.GalleryItem
	current     models.GalleryItem
	direction   Direction
	stoppers    []Stopper
	keys        KeySource
	unsubscribe func()
}

// Option configures a Navigator
type Option func(*Navigator)

// WithStoppers registers media widgets to stop on every transition
func WithStoppers(stoppers ...Stopper) Option {
	return func(n *Navigator) {
		n.stoppers = append(n.stoppers, stoppers...)
	}
}

// WithKeySource binds keyboard handling while an item is open
func WithKeySource(keys KeySource) Option {
	return func(n *Navigator) {
		n.keys = keys
	}
}

// NewNavigator creates a closed navigator over items
func NewNavigator(items []models.GalleryItem, opts ...Option) *Navigator {
	n := &Navigator{items: items}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// AddStopper registers another media widget
func (n *Navigator) AddStopper(s Stopper) {
	n.stoppers = append(n.stoppers, s)
}

// SetItems replaces the filtered list. The open item stays open; if it is
// no longer in the list, next and prev do nothing until it is reopened.
func (n *Navigator) SetItems(items []models.GalleryItem) {
	n.items = items
}

// Items returns the list navigated over
func (n *Navigator) Items() []models.GalleryItem {
	return n.items
}

// IsOpen reports whether an item is displayed
func (n *Navigator) IsOpen() bool {
	return n.current != nil
}

// Current returns the open item, or nil
func (n *Navigator) Current() models.GalleryItem {
	return n.current
}

// Direction returns the slide hint of the last navigation
func (n *Navigator) Direction() Direction {
	return n.direction
}

// Index returns the position of the open item in the current list, or -1
func (n *Navigator) Index() int {
	if n.current == nil {
		return -1
	}
	return models.IndexOf(n.items, n.current.Base().ID)
}

// HasPrev reports whether Prev would move
func (n *Navigator) HasPrev() bool {
	return n.Index() > 0
}

// HasNext reports whether Next would move
func (n *Navigator) HasNext() bool {
	idx := n.Index()
	return idx >= 0 && idx < len(n.items)-1
}

// Neighbours returns the items before and after the open one, nil at the edges
func (n *Navigator) Neighbours() (prev, next models.GalleryItem) {
	idx := n.Index()
	if idx < 0 {
		return nil, nil
	}
	if idx > 0 {
		prev = n.items[idx-1]
	}
	if idx < len(n.items)-1 {
		next = n.items[idx+1]
	}
	return prev, next
}

// StopAll stops every registered media widget
func (n *Navigator) StopAll() {
	for _, s := range n.stoppers {
		s.Stop()
	}
}

// Open stops playing media and shows item
func (n *Navigator) Open(item models.GalleryItem) {
	n.StopAll()
	n.direction = DirectionNone
	n.current = item
	n.bindKeys()
}

// OpenID opens the item with the given id from the current list
func (n *Navigator) OpenID(id string) bool {
	idx := models.IndexOf(n.items, id)
	if idx < 0 {
		return false
	}
	n.Open(n.items[idx])
	return true
}

// Close stops playing media and hides the lightbox
func (n *Navigator) Close() {
	n.StopAll()
	n.current = nil
	n.direction = DirectionNone
	n.unbindKeys()
}

// Next moves to the following item. It is a no-op at the last position.
func (n *Navigator) Next() bool {
	idx := n.Index()
	if idx < 0 || idx >= len(n.items)-1 {
		return false
	}
	n.navigate(n.items[idx+1], DirectionLeft)
	return true
}

// Prev moves to the preceding item. It is a no-op at the first position.
func (n *Navigator) Prev() bool {
	idx := n.Index()
	if idx <= 0 {
		return false
	}
	n.navigate(n.items[idx-1], DirectionRight)
	return true
}

func (n *Navigator) navigate(item models.GalleryItem, direction Direction) {
	n.StopAll()
	n.direction = direction
	n.current = item
}

// HandleKey applies a key press. Keys are ignored while closed.
func (n *Navigator) HandleKey(key Key) bool {
	if n.current == nil {
		return false
	}
	switch key {
	case KeyEscape:
		n.Close()
		return true
	case KeyArrowLeft:
		return n.Prev()
	case KeyArrowRight:
		return n.Next()
	}
	return false
}

func (n *Navigator) bindKeys() {
	if n.keys == nil || n.unsubscribe != nil {
		return
	}
	n.unsubscribe = n.keys.Subscribe(func(key Key) {
		n.HandleKey(key)
	})
}

func (n *Navigator) unbindKeys() {
	if n.unsubscribe == nil {
		return
	}
	n.unsubscribe()
	n.unsubscribe = nil
}
