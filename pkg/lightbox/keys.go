package lightbox

import (
	"sync"
)

// Key is a named key press understood by the lightbox
type Key string

const (
	KeyEscape     Key = "Escape"
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
)

// KeySource delivers key presses to subscribers. The returned function
// removes the subscription.
type KeySource interface {
	Subscribe(handler func(Key)) (unsubscribe func())
}

// Dispatcher is an in-process KeySource
type Dispatcher struct {
	mu       sync.Mutex
	nextID   int
	handlers map[int]func(Key)
}

// NewDispatcher creates a dispatcher without subscribers
func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[int]func(Key))}
}

// Subscribe registers handler until the returned function is called
func (d *Dispatcher) Subscribe(handler func(Key)) func() {
	d.mu.Lock()
	defer d.mu.Unlock()
	id := d.nextID
	d.nextID++
	d.handlers[id] = handler
	return func() {
		d.mu.Lock()
		delete(d.handlers, id)
		d.mu.Unlock()
	}
}

// Listeners returns the number of active subscriptions
func (d *Dispatcher) Listeners() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.handlers)
}

// Dispatch delivers key to every subscriber. Handlers may unsubscribe
// themselves while being called.
func (d *Dispatcher) Dispatch(key Key) {
	d.mu.Lock()
	handlers := make([]func(Key), 0, len(d.handlers))
	for _, h := range d.handlers {
		handlers = append(handlers, h)
	}
	d.mu.Unlock()

	for _, h := range handlers {
		h(key)
	}
}

// DecodeTerminalKey maps raw terminal input to a key. A lone ESC byte or
// "q" closes; the ANSI cursor sequences move.
func DecodeTerminalKey(input []byte) (Key, bool) {
	switch string(input) {
	case "\x1b", "q", "Q":
		return KeyEscape, true
	case "\x1b[D", "\x1bOD", "h":
		return KeyArrowLeft, true
	case "\x1b[C", "\x1bOC", "l":
		return KeyArrowRight, true
	}
	return "", false
}
