// Package pagecursor drives infinite-scroll catalog loading. A Cursor
// translates "sentinel visible" signals into at most one in-flight page
// fetch, stopping for good once the server reports no further pages.
package pagecursor

import (
	"sync"

	"noteshop/pkg/song"
)

// FetchFunc fetches one catalog page.
type FetchFunc func(page int) (*song.Page, error)

type Cursor struct {
	OnPage  func(*song.Page)
	OnError func(error)

	mu       sync.Mutex
	fetch    FetchFunc
	page     int
	hasMore  bool
	inFlight bool
}

func New(fetch FetchFunc) *Cursor {
	return &Cursor{
		fetch:   fetch,
		page:    1,
		hasMore: true,
	}
}

// Observe signals that the sentinel is visible. It starts the next page
// fetch only when more pages remain and none is in flight, and reports
// whether a fetch was started. The fetch runs asynchronously; the result
// lands in OnPage or OnError. A failed fetch leaves the cursor on the
// same page, so the next signal retries it.
func (c *Cursor) Observe() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.hasMore || c.inFlight {
		return false
	}

	c.inFlight = true
	go c.run(c.fetch, c.page)
	return true
}

// Reset points the cursor at page 1 of a new query. A stale in-flight
// fetch from before the reset is discarded when it completes.
func (c *Cursor) Reset(fetch FetchFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fetch = fetch
	c.page = 1
	c.hasMore = true
	c.inFlight = false
}

// HasMore reports whether the server may still have pages to give.
func (c *Cursor) HasMore() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hasMore
}

func (c *Cursor) run(fetch FetchFunc, page int) {
	result, err := fetch(page)

	c.mu.Lock()
	// A Reset while we were fetching makes this result stale.
	stale := c.page != page || !c.inFlight
	if !stale {
		c.inFlight = false
		if err == nil {
			c.page = page + 1
			c.hasMore = result.Pagination.HasMore
		}
	}
	onPage, onError := c.OnPage, c.OnError
	c.mu.Unlock()

	if stale {
		return
	}
	if err != nil {
		if onError != nil {
			onError(err)
		}
		return
	}
	if onPage != nil {
		onPage(result)
	}
}
