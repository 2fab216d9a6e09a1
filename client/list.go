// Package client provides the consumer-side list state machine used by
// programs embedding the turfhub API: debounced search, paging, and
// optimistic local edits over any paginated collection.
package client

import (
	"context"
	"sync"
	"time"

	"turfhub/models"
)

// RequestState tags where a list stands in its fetch lifecycle.
type RequestState string

const (
	StateIdle    RequestState = "idle"
	StateLoading RequestState = "loading"
	StateError   RequestState = "error"
	StateLoaded  RequestState = "loaded"
)

const searchDebounce = 500 * time.Millisecond

// Fetcher loads one page of a collection.
type Fetcher[T any] func(ctx context.Context, params models.ListParams) (*models.Page[T], error)

// Snapshot is a consistent view of the list at one instant.
type Snapshot[T any] struct {
	State       RequestState
	Items       []T
	TotalPages  int
	CurrentPage int
	Err         error
}

// ListClient drives one paginated collection. Search and status edits are
// debounced and reset paging; every fetch carries a sequence number and
// responses that arrive after a newer request started are discarded, so a
// slow early page can never overwrite a fresh one.
type ListClient[T any] struct {
	fetch Fetcher[T]

	mu      sync.Mutex
	params  models.ListParams
	state   RequestState
	items   []T
	total   int
	err     error
	seq     uint64
	timer   *time.Timer
	applied func() // test hook, signalled after a response lands or is dropped
}

// NewListClient builds an idle client around a fetcher.
func NewListClient[T any](fetch Fetcher[T]) *ListClient[T] {
	return &ListClient[T]{
		fetch:  fetch,
		params: models.ListParams{Page: 1}.WithDefaults(),
		state:  StateIdle,
	}
}

// Snapshot returns the current state and a copy of the items.
func (c *ListClient[T]) Snapshot() Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := make([]T, len(c.items))
	copy(items, c.items)
	return Snapshot[T]{
		State:       c.state,
		Items:       items,
		TotalPages:  c.total,
		CurrentPage: c.params.Page,
		Err:         c.err,
	}
}

// SetSearch updates the search term, resets to page one and schedules a
// debounced fetch. Rapid edits collapse into one request.
func (c *ListClient[T]) SetSearch(term string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.params.Search == term {
		return
	}
	c.params.Search = term
	c.params.Page = 1
	c.scheduleLocked()
}

// SetStatus updates the status filter, resets to page one and schedules a
// debounced fetch.
func (c *ListClient[T]) SetStatus(status string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.params.Status == status {
		return
	}
	c.params.Status = status
	c.params.Page = 1
	c.scheduleLocked()
}

// SetPage jumps to a page and fetches immediately.
func (c *ListClient[T]) SetPage(page int) {
	c.mu.Lock()
	if page < 1 {
		page = 1
	}
	c.params.Page = page
	c.mu.Unlock()
	c.RefreshData()
}

// RefreshData re-fetches the current page with the current filters,
// bypassing the debounce.
func (c *ListClient[T]) RefreshData() {
	c.mu.Lock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	seq, params := c.beginLocked()
	c.mu.Unlock()
	go c.run(seq, params)
}

func (c *ListClient[T]) scheduleLocked() {
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(searchDebounce, func() {
		c.mu.Lock()
		c.timer = nil
		seq, params := c.beginLocked()
		c.mu.Unlock()
		c.run(seq, params)
	})
}

// beginLocked bumps the sequence and flips to loading. Callers hold mu.
func (c *ListClient[T]) beginLocked() (uint64, models.ListParams) {
	c.seq++
	c.state = StateLoading
	c.err = nil
	return c.seq, c.params
}

func (c *ListClient[T]) run(seq uint64, params models.ListParams) {
	page, err := c.fetch(context.Background(), params)

	c.mu.Lock()
	defer c.mu.Unlock()
	defer c.signalLocked()

	// A newer request started while this one was in flight.
	if seq != c.seq {
		return
	}
	if err != nil {
		c.state = StateError
		c.err = err
		return
	}
	c.state = StateLoaded
	c.items = page.Items
	c.total = page.TotalPages
}

// UpdateItemOptimistically patches every matching item in place without a
// round trip. The next fetch replaces the list wholesale.
func (c *ListClient[T]) UpdateItemOptimistically(match func(T) bool, patch func(*T)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if match(c.items[i]) {
			patch(&c.items[i])
		}
	}
}

// RemoveItemOptimistically drops every matching item locally.
func (c *ListClient[T]) RemoveItemOptimistically(match func(T) bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.items[:0]
	for _, item := range c.items {
		if !match(item) {
			kept = append(kept, item)
		}
	}
	c.items = kept
}

func (c *ListClient[T]) signalLocked() {
	if c.applied != nil {
		c.applied()
	}
}
