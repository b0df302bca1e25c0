// Package visitors gives each anonymous visitor their own Work filter
// controller, keyed by an id kept in a signed cookie.
package visitors

import (
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/dalemusser/studiosite/internal/app/system/workfilter"
	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const visitorIDKey = "visitor_id"

/*─────────────────────────────────────────────────────────────────────────────*
| Cookie store                                                               |
*─────────────────────────────────────────────────────────────────────────────*/

// NewCookieStore builds the signed cookie store for visitor ids.
//
// An empty key gets a random one, which is fine for a single instance in
// development: visitors simply receive a new id after a restart. Production
// should configure a key of 32+ characters. The secure flag marks cookies
// Secure (prod over HTTPS); dev over http://localhost needs it off.
func NewCookieStore(key string, secure bool, logger *zap.Logger) (*sessions.CookieStore, error) {
	var hashKey []byte
	switch {
	case key == "":
		hashKey = securecookie.GenerateRandomKey(32)
		if hashKey == nil {
			return nil, errors.New("generate visitor cookie key: random source failed")
		}
		logger.Warn("session key not configured; using a random key for this process")
	default:
		if len(key) < 32 {
			logger.Warn("session key is short; 32+ chars recommended",
				zap.Int("length", len(key)))
		}
		hashKey = []byte(key)
	}

	store := sessions.NewCookieStore(hashKey)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return store, nil
}

/*─────────────────────────────────────────────────────────────────────────────*
| Registry                                                                   |
*─────────────────────────────────────────────────────────────────────────────*/

// Factory creates a fresh controller for a new visitor.
type Factory func() *workfilter.Controller

type entry struct {
	ctrl     *workfilter.Controller
	lastSeen time.Time
}

// Registry maps visitor ids to controllers. It holds at most max visitors;
// beyond that the least recently seen visitor is evicted.
type Registry struct {
	store      sessions.Store
	cookieName string
	max        int
	factory    Factory
	log        *zap.Logger
	now        func() time.Time

	mu      sync.Mutex
	entries map[string]*entry
	closed  bool
}

// NewRegistry creates a Registry. max <= 0 means unbounded.
func NewRegistry(store sessions.Store, cookieName string, max int, factory Factory, logger *zap.Logger) *Registry {
	return &Registry{
		store:      store,
		cookieName: cookieName,
		max:        max,
		factory:    factory,
		log:        logger,
		now:        time.Now,
		entries:    make(map[string]*entry),
	}
}

// Controller returns the controller for the requesting visitor, issuing a
// visitor cookie on first contact. A tampered or unreadable cookie is
// replaced with a new id.
func (reg *Registry) Controller(w http.ResponseWriter, r *http.Request) (*workfilter.Controller, error) {
	// On a decode error gorilla still returns a usable new session.
	sess, err := reg.store.Get(r, reg.cookieName)
	if sess == nil {
		return nil, fmt.Errorf("load visitor session: %w", err)
	}

	id, _ := sess.Values[visitorIDKey].(string)
	if _, perr := uuid.Parse(id); perr != nil {
		id = uuid.NewString()
		sess.Values[visitorIDKey] = id
		if err := sess.Save(r, w); err != nil {
			return nil, fmt.Errorf("save visitor session: %w", err)
		}
	}

	return reg.lookup(id), nil
}

func (reg *Registry) lookup(id string) *workfilter.Controller {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	now := reg.now()
	if e, ok := reg.entries[id]; ok {
		e.lastSeen = now
		return e.ctrl
	}

	if reg.max > 0 && len(reg.entries) >= reg.max {
		reg.evictOldest()
	}

	ctrl := reg.factory()
	if reg.closed {
		// Shutting down: hand out a controller that never commits.
		ctrl.Close()
		return ctrl
	}
	reg.entries[id] = &entry{ctrl: ctrl, lastSeen: now}
	return ctrl
}

// evictOldest drops the least recently seen visitor. reg.mu must be held.
func (reg *Registry) evictOldest() {
	var oldestID string
	var oldest time.Time
	for id, e := range reg.entries {
		if oldestID == "" || e.lastSeen.Before(oldest) {
			oldestID, oldest = id, e.lastSeen
		}
	}
	if oldestID == "" {
		return
	}
	reg.entries[oldestID].ctrl.Close()
	delete(reg.entries, oldestID)
	reg.log.Debug("evicted visitor at capacity", zap.Int("max", reg.max))
}

// Sweep closes and forgets visitors not seen within idle. It returns the
// number removed.
func (reg *Registry) Sweep(idle time.Duration) int {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	cutoff := reg.now().Add(-idle)
	n := 0
	for id, e := range reg.entries {
		if e.lastSeen.Before(cutoff) {
			e.ctrl.Close()
			delete(reg.entries, id)
			n++
		}
	}
	return n
}

// Len returns the number of tracked visitors.
func (reg *Registry) Len() int {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	return len(reg.entries)
}

// Close closes every controller. Later lookups get closed controllers.
func (reg *Registry) Close() {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	for id, e := range reg.entries {
		e.ctrl.Close()
		delete(reg.entries, id)
	}
	reg.closed = true
}
