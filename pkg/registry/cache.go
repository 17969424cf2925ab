// Package registry caches field-type metadata fetched from an external
// service.
//
// The cache holds one immutable snapshot of every entry. A snapshot older
// than TTL (or none at all) is refreshed on the next consistent access;
// concurrent callers share a single in-flight fetch. A failed fetch leaves
// an empty snapshot behind so best-effort readers never see an unset cache,
// and the next consistent access retries.
package registry

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/dkoosis/fieldkit/pkg/field"
)

// TTL is how long a fetched snapshot stays fresh.
const TTL = 5 * time.Minute

// refreshKey is the single singleflight key; there is one registry per cache.
const refreshKey = "field-types"

// ErrNoFetcher is returned by a nil Fetcher.
var ErrNoFetcher = errors.New("registry: no fetcher configured")

// Fetcher lists every field-type entry from the metadata service.
type Fetcher interface {
	List(ctx context.Context) ([]field.Entry, error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context) ([]field.Entry, error)

// List calls f.
func (f FetcherFunc) List(ctx context.Context) ([]field.Entry, error) {
	return f(ctx)
}

type snapshot struct {
	byID      map[string]field.Entry
	order     []field.Entry
	fetchedAt time.Time // zero after a failed fetch
}

var emptySnapshot = &snapshot{byID: map[string]field.Entry{}}

// Cache is a TTL cache over a Fetcher with single-flight refresh.
// The zero value is not usable; construct with New.
type Cache struct {
	fetcher      Fetcher
	now          func() time.Time
	fetchTimeout time.Duration
	log          *logrus.Entry

	mu         sync.RWMutex
	snap       *snapshot
	generation uint64

	group singleflight.Group
}

// Option configures a Cache.
type Option func(*Cache)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

// WithFetchTimeout bounds each fetch. Zero means no timeout.
func WithFetchTimeout(d time.Duration) Option {
	return func(c *Cache) { c.fetchTimeout = d }
}

// WithLogger sets the logger used for fetch failures.
func WithLogger(log *logrus.Entry) Option {
	return func(c *Cache) {
		if log != nil {
			c.log = log
		}
	}
}

// New creates a cache over f.
func New(f Fetcher, opts ...Option) *Cache {
	c := &Cache{
		fetcher: f,
		now:     time.Now,
		log:     logrus.WithField("component", "registry"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the entry for typeID, refreshing the snapshot first when it
// is unset or stale.
func (c *Cache) Get(ctx context.Context, typeID string) (field.Entry, bool) {
	e, ok := c.ensure(ctx).byID[typeID]
	return e, ok
}

// GetSync returns whatever is cached for typeID. It never fetches.
func (c *Cache) GetSync(typeID string) (field.Entry, bool) {
	c.mu.RLock()
	s := c.snap
	c.mu.RUnlock()
	if s == nil {
		return field.Entry{}, false
	}
	e, ok := s.byID[typeID]
	return e, ok
}

// All returns every entry in service order.
func (c *Cache) All(ctx context.Context) []field.Entry {
	s := c.ensure(ctx)
	out := make([]field.Entry, len(s.order))
	copy(out, s.order)
	return out
}

// ByCategory returns the entries of one registry category in service order.
func (c *Cache) ByCategory(ctx context.Context, cat field.EntryCategory) []field.Entry {
	var out []field.Entry
	for _, e := range c.ensure(ctx).order {
		if e.Category == cat {
			out = append(out, e)
		}
	}
	return out
}

// Preload refreshes the snapshot if needed. Safe to call redundantly.
func (c *Cache) Preload(ctx context.Context) {
	c.ensure(ctx)
}

// Clear drops the snapshot. A fetch already in flight is still returned to
// its waiters but is not stored.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.snap = nil
	c.generation++
	c.mu.Unlock()
	c.group.Forget(refreshKey)
}

// Generation increments on every stored refresh and on Clear. Two reads
// with the same generation observed the same snapshot.
func (c *Cache) Generation() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.generation
}

func (c *Cache) fresh(s *snapshot) bool {
	return s != nil && !s.fetchedAt.IsZero() && c.now().Sub(s.fetchedAt) < TTL
}

func (c *Cache) ensure(ctx context.Context) *snapshot {
	c.mu.RLock()
	s := c.snap
	c.mu.RUnlock()
	if c.fresh(s) {
		return s
	}
	if ctx == nil {
		ctx = context.Background()
	}
	v, _, _ := c.group.Do(refreshKey, func() (any, error) {
		return c.refresh(ctx), nil
	})
	return v.(*snapshot)
}

// refresh runs inside the single flight.
func (c *Cache) refresh(ctx context.Context) *snapshot {
	c.mu.RLock()
	s, gen := c.snap, c.generation
	c.mu.RUnlock()
	// Another flight may have stored a fresh snapshot between our stale
	// read and joining the group.
	if c.fresh(s) {
		return s
	}

	entries, err := c.fetch(ctx)
	next := emptySnapshot
	if err != nil {
		c.log.WithError(err).Warn("field type registry fetch failed, caching empty")
	} else {
		next = &snapshot{
			byID:      make(map[string]field.Entry, len(entries)),
			order:     make([]field.Entry, 0, len(entries)),
			fetchedAt: c.now(),
		}
		for _, e := range entries {
			if e.ID == "" {
				continue
			}
			if _, dup := next.byID[e.ID]; dup {
				continue
			}
			next.byID[e.ID] = e
			next.order = append(next.order, e)
		}
		c.log.WithField("entries", len(next.order)).Debug("field type registry refreshed")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generation != gen {
		c.log.Debug("registry cleared during fetch, discarding result")
		return next
	}
	c.snap = next
	if err == nil {
		c.generation++
	}
	return next
}

func (c *Cache) fetch(ctx context.Context) (entries []field.Entry, err error) {
	if c.fetcher == nil {
		return nil, ErrNoFetcher
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("registry: fetcher panicked: %v", r)
		}
	}()
	fctx := context.WithoutCancel(ctx)
	if c.fetchTimeout > 0 {
		var cancel context.CancelFunc
		fctx, cancel = context.WithTimeout(fctx, c.fetchTimeout)
		defer cancel()
	}
	return c.fetcher.List(fctx)
}
