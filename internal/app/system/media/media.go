// Package media tracks the load state of the remote images the site shows.
//
// Each image moves from Pending to either Loaded or Errored exactly once.
// Templates use the state to choose between a skeleton, the image, and a
// fallback placeholder.
package media

import (
	"sync"
)

// State is the load state of one image.
type State int

const (
	Pending State = iota
	Loaded
	Errored
)

func (s State) String() string {
	switch s {
	case Loaded:
		return "loaded"
	case Errored:
		return "errored"
	default:
		return "pending"
	}
}

// Terminal reports whether no further transition is possible.
func (s State) Terminal() bool { return s != Pending }

// Image is the state machine for a single resource.
type Image struct {
	mu    sync.Mutex
	state State
}

// State returns the current state.
func (img *Image) State() State {
	img.mu.Lock()
	defer img.mu.Unlock()
	return img.state
}

// MarkLoaded moves Pending to Loaded. It reports whether the transition
// happened.
func (img *Image) MarkLoaded() bool { return img.transition(Loaded) }

// MarkErrored moves Pending to Errored. It reports whether the transition
// happened.
func (img *Image) MarkErrored() bool { return img.transition(Errored) }

func (img *Image) transition(to State) bool {
	img.mu.Lock()
	defer img.mu.Unlock()
	if img.state.Terminal() {
		return false
	}
	img.state = to
	return true
}

// Counts summarizes a Tracker.
type Counts struct {
	Pending int `json:"pending"`
	Loaded  int `json:"loaded"`
	Errored int `json:"errored"`
}

// Tracker holds one Image per URL. The URL set is fixed at construction.
type Tracker struct {
	urls   []string
	images map[string]*Image
}

// NewTracker creates a Tracker for urls, all Pending. Duplicates are ignored.
func NewTracker(urls ...string) *Tracker {
	t := &Tracker{images: make(map[string]*Image, len(urls))}
	for _, u := range urls {
		if _, ok := t.images[u]; ok {
			continue
		}
		t.images[u] = &Image{}
		t.urls = append(t.urls, u)
	}
	return t
}

// URLs returns the tracked URLs in construction order.
func (t *Tracker) URLs() []string {
	out := make([]string, len(t.urls))
	copy(out, t.urls)
	return out
}

// Image returns the state machine for url.
func (t *Tracker) Image(url string) (*Image, bool) {
	img, ok := t.images[url]
	return img, ok
}

// State returns the state for url. Untracked URLs are reported as Pending so
// the page falls back to letting the browser load them.
func (t *Tracker) State(url string) State {
	if img, ok := t.images[url]; ok {
		return img.State()
	}
	return Pending
}

// Counts tallies images by state.
func (t *Tracker) Counts() Counts {
	var c Counts
	for _, img := range t.images {
		switch img.State() {
		case Loaded:
			c.Loaded++
		case Errored:
			c.Errored++
		default:
			c.Pending++
		}
	}
	return c
}
