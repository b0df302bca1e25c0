package workfilter

import (
	"context"
	"sync"
	"time"

	"github.com/dalemusser/studiosite/internal/domain/models"
	"go.uber.org/zap"
)

// DefaultDelay is the artificial latency between a selection and its result.
const DefaultDelay = 800 * time.Millisecond

// State is a snapshot of a Controller.
//
// While Loading is true, Items still holds the previously committed result;
// Filter already names the pending selection.
type State struct {
	Filter  Filter            `json:"filter"`
	Loading bool              `json:"loading"`
	Items   []models.WorkItem `json:"items"`
}

// Scheduler runs fn once after d and returns a function that cancels it.
// The cancel function reports whether fn was prevented from running, like
// (*time.Timer).Stop.
type Scheduler func(d time.Duration, fn func()) (cancel func() bool)

func afterFunc(d time.Duration, fn func()) func() bool {
	return time.AfterFunc(d, fn).Stop
}

// Option configures a Controller.
type Option func(*Controller)

// WithScheduler replaces the timer implementation. Tests use it to fire
// tasks by hand.
func WithScheduler(s Scheduler) Option {
	return func(c *Controller) { c.schedule = s }
}

// WithLogger sets the logger used for commit and drop events.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// Controller owns one visitor's filter state.
//
// Every selection bumps a request token and schedules a commit carrying that
// token. A commit whose token is no longer current does nothing, so only the
// latest selection ever reaches Items.
type Controller struct {
	mu       sync.Mutex
	items    []models.WorkItem
	delay    time.Duration
	schedule Scheduler
	log      *zap.Logger

	filter  Filter
	loading bool
	visible []models.WorkItem

	token   uint64
	cancel  func() bool
	settled chan struct{} // closed when the pending selection commits
	closed  bool
}

// New returns a Controller over items. It starts in the loading state with
// All selected and the full list visible; the first commit happens after
// delay.
func New(items []models.WorkItem, delay time.Duration, opts ...Option) *Controller {
	if delay < 0 {
		delay = 0
	}
	c := &Controller{
		items:    clone(items),
		delay:    delay,
		schedule: afterFunc,
		log:      zap.NewNop(),
		filter:   All,
		visible:  clone(items),
		settled:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.mu.Lock()
	c.begin(All)
	c.mu.Unlock()
	return c
}

// Select switches to f. Selecting the current filter changes nothing.
// Otherwise the controller enters the loading state immediately and any
// pending selection is superseded.
func (c *Controller) Select(f Filter) State {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || f == c.filter {
		return c.snapshot()
	}
	c.begin(f)
	return c.snapshot()
}

// Reset selects All. It is the way out of an empty result.
func (c *Controller) Reset() State {
	return c.Select(All)
}

// Remount starts a new page view: the full list becomes visible again and f
// is pending. Unlike Select it restarts the delay even when f is already the
// current filter, and it supersedes any pending selection.
func (c *Controller) Remount(f Filter) State {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return c.snapshot()
	}
	c.visible = clone(c.items)
	c.begin(f)
	return c.snapshot()
}

// State returns the current snapshot.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

// Settled blocks until no selection is pending, the controller is closed, or
// ctx is done. On ctx expiry it returns the current snapshot with ctx.Err().
func (c *Controller) Settled(ctx context.Context) (State, error) {
	for {
		c.mu.Lock()
		if !c.loading || c.closed {
			s := c.snapshot()
			c.mu.Unlock()
			return s, nil
		}
		ch := c.settled
		c.mu.Unlock()

		select {
		case <-ch:
			// A newer selection may have started; check again.
		case <-ctx.Done():
			return c.State(), ctx.Err()
		}
	}
}

// Close cancels the pending selection. Nothing commits after Close.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	if c.loading {
		close(c.settled)
	}
}

// begin records a new selection and schedules its commit. c.mu must be held.
func (c *Controller) begin(f Filter) {
	c.token++
	tok := c.token

	if c.cancel != nil {
		c.cancel()
	}
	c.filter = f
	if !c.loading {
		c.loading = true
		c.settled = make(chan struct{})
	}
	c.cancel = c.schedule(c.delay, func() { c.commit(tok, f) })
}

func (c *Controller) commit(tok uint64, f Filter) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || tok != c.token {
		c.log.Debug("work filter: dropped superseded selection",
			zap.String("filter", string(f)),
			zap.Uint64("token", tok),
			zap.Uint64("current", c.token))
		return
	}

	c.visible = Apply(c.items, f)
	c.loading = false
	c.cancel = nil
	close(c.settled)

	c.log.Debug("work filter: committed",
		zap.String("filter", string(f)),
		zap.Int("visible", len(c.visible)))
}

func (c *Controller) snapshot() State {
	return State{
		Filter:  c.filter,
		Loading: c.loading,
		Items:   clone(c.visible),
	}
}

func clone(items []models.WorkItem) []models.WorkItem {
	out := make([]models.WorkItem, len(items))
	copy(out, items)
	return out
}
