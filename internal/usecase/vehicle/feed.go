package vehicle

import (
	"context"
	"sync"
	"time"

	"fleet-admin-backend/internal/domain/fleeterr"
)

// DefaultSearchDebounce is the quiet period applied to search keystrokes
// before a query is issued.
const DefaultSearchDebounce = 400 * time.Millisecond

type fetchFunc func(ctx context.Context, page int, search string) (*BatchResult, error)

// Feed is the incremental-loading controller behind the vehicle grid. It owns
// the accumulated row list, the page cursor, the has-more flag and the
// debounced search term. A newer fetch always wins over a stale one: applying
// a search term or refreshing cancels any in-flight fetch and bumps a
// generation counter, so a slow earlier page-0 response can never overwrite
// results that belong to a later state.
type Feed struct {
	fetch    fetchFunc
	debounce time.Duration

	mu        sync.Mutex
	timer     *time.Timer
	term      string
	page      int
	hasMore   bool
	loading   bool
	items     []VehicleDTO
	refreshes int
	lastErr   error
	gen       uint64
	cancel    context.CancelFunc
}

// FeedState is a point-in-time copy of the controller state.
type FeedState struct {
	Items   []VehicleDTO
	HasMore bool
	Loading bool
	Err     error
}

func NewFeed(u *Usecase, debounce time.Duration) *Feed {
	if debounce <= 0 {
		debounce = DefaultSearchDebounce
	}
	return &Feed{fetch: u.Batch, debounce: debounce, hasMore: true}
}

func newFeedWithFetch(fetch fetchFunc, debounce time.Duration) *Feed {
	return &Feed{fetch: fetch, debounce: debounce, hasMore: true}
}

// Start loads the first batch. Called once on mount.
func (f *Feed) Start() {
	f.mu.Lock()
	f.reset()
	f.mu.Unlock()
	f.load(0)
}

// SetSearch records a keystroke. Only the value settled after the quiet
// period is applied; intermediate values never reach the repository.
func (f *Feed) SetSearch(term string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.timer != nil {
		f.timer.Stop()
	}
	f.timer = time.AfterFunc(f.debounce, func() { f.applyTerm(term) })
}

func (f *Feed) applyTerm(term string) {
	f.mu.Lock()
	f.term = term
	f.reset()
	f.mu.Unlock()
	f.load(0)
}

// Advance moves to the next page when the sensor at the bottom of the grid
// fires. A no-op while a fetch is in flight or the feed is exhausted.
func (f *Feed) Advance() {
	f.mu.Lock()
	if f.loading || !f.hasMore {
		f.mu.Unlock()
		return
	}
	next := f.page + 1
	f.mu.Unlock()
	f.load(next)
}

// Refresh forces a reload of the current term from the first page.
func (f *Feed) Refresh() {
	f.mu.Lock()
	f.reset()
	f.refreshes++
	f.mu.Unlock()
	f.load(0)
}

// Close cancels any in-flight fetch and pending debounce timer.
func (f *Feed) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.timer != nil {
		f.timer.Stop()
	}
	if f.cancel != nil {
		f.cancel()
	}
	f.gen++
}

func (f *Feed) Snapshot() FeedState {
	f.mu.Lock()
	defer f.mu.Unlock()
	items := make([]VehicleDTO, len(f.items))
	copy(items, f.items)
	return FeedState{Items: items, HasMore: f.hasMore, Loading: f.loading, Err: f.lastErr}
}

// reset must be called with the mutex held. It supersedes any in-flight
// fetch.
func (f *Feed) reset() {
	f.items = nil
	f.page = 0
	f.hasMore = true
	f.lastErr = nil
	f.gen++
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
}

func (f *Feed) load(page int) {
	f.mu.Lock()
	f.loading = true
	gen := f.gen
	term := f.term
	ctx, cancel := context.WithCancel(context.Background())
	f.cancel = cancel
	f.mu.Unlock()

	res, err := f.fetch(ctx, page, term)
	cancel()

	f.mu.Lock()
	defer f.mu.Unlock()
	if gen != f.gen {
		// Superseded while in flight; a newer state owns the view now.
		return
	}
	f.loading = false
	if err != nil {
		if fleeterr.IsAborted(err) {
			return
		}
		f.lastErr = err
		return
	}
	if page == 0 {
		f.items = res.Items
	} else {
		f.items = append(f.items, res.Items...)
	}
	f.page = page
	f.hasMore = res.HasMore
	f.lastErr = nil
}
