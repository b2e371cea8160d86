// Package viewtrack reports "song viewed" events at most once per song per
// session. Rapid signals for the same song collapse into a single report
// through a per-song debounce timer; confirmed reports are remembered in a
// durable set that expires as a whole after the session TTL.
package viewtrack

import (
	"log/slog"
	"sync"
	"time"

	"noteshop/pkg/storage"
)

// ViewedKey is the fixed storage key for the confirmed-view set.
const ViewedKey = "viewed_songs"

const (
	DefaultDebounce = time.Second
	DefaultTTL      = 24 * time.Hour
)

// Reporter delivers the view event to the server.
type Reporter interface {
	ReportView(songID string) error
}

// viewedRecord couples the confirmed ids with their shared expiry so both
// are always written and cleared together.
type viewedRecord struct {
	IDs       []string `json:"ids"`
	ExpiresAt int64    `json:"expiresAt"`
}

// Tracker drives the per-song view state machine:
//
//	unseen -> debouncing -> attempted -> confirmed
//
// A song enters debouncing on its first signal; a later signal within the
// window restarts the timer. When the window elapses the song is marked
// attempted and the report fires. Success confirms the song durably; a
// failed report writes nothing, but the attempted marker still blocks
// further reports for the lifetime of this process. That is a deliberate
// one-attempt-per-process rule: transient failures under-count views
// rather than retry.
type Tracker struct {
	Store    storage.Store
	Reporter Reporter
	Logger   *slog.Logger

	// Debounce and TTL may be adjusted before the first RecordView call.
	Debounce time.Duration
	TTL      time.Duration

	mu        sync.Mutex
	timers    map[string]*time.Timer
	attempted map[string]bool
}

func New(store storage.Store, reporter Reporter, logger *slog.Logger) *Tracker {
	return &Tracker{
		Store:     store,
		Reporter:  reporter,
		Logger:    logger,
		Debounce:  DefaultDebounce,
		TTL:       DefaultTTL,
		timers:    make(map[string]*time.Timer),
		attempted: make(map[string]bool),
	}
}

// RecordView signals that the song is being viewed. Signals for songs
// already attempted or confirmed are dropped; otherwise the song's
// debounce timer is (re)started.
func (t *Tracker) RecordView(songID string) {
	if songID == "" {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.attempted[songID] || t.confirmedLocked(songID) {
		return
	}

	if timer, ok := t.timers[songID]; ok {
		timer.Stop()
	}
	t.timers[songID] = time.AfterFunc(t.Debounce, func() {
		t.fire(songID)
	})
}

// HasViewed reports whether the song is in the unexpired confirmed set.
func (t *Tracker) HasViewed(songID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.confirmedLocked(songID)
}

// Clear drops the whole confirmed set, e.g. on logout. In-process
// attempted markers survive: a song reported once this process is not
// reported again.
func (t *Tracker) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.Store.Remove(ViewedKey); err != nil {
		t.Logger.Error("failed to clear viewed set", "error", err)
	}
}

// Stop cancels all pending debounce timers.
func (t *Tracker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for id, timer := range t.timers {
		timer.Stop()
		delete(t.timers, id)
	}
}

func (t *Tracker) fire(songID string) {
	t.mu.Lock()
	delete(t.timers, songID)
	if t.attempted[songID] {
		t.mu.Unlock()
		return
	}
	t.attempted[songID] = true
	t.mu.Unlock()

	// Network call runs outside the lock.
	if err := t.Reporter.ReportView(songID); err != nil {
		t.Logger.Error("view report failed", "song", songID, "error", err)
		return
	}

	t.mu.Lock()
	t.confirmLocked(songID)
	t.mu.Unlock()
}

// confirmedLocked reads the durable set, invalidating it wholesale when
// expired. Storage failures and malformed data read as "nothing viewed".
func (t *Tracker) confirmedLocked(songID string) bool {
	record, ok := t.loadLocked()
	if !ok {
		return false
	}
	for _, id := range record.IDs {
		if id == songID {
			return true
		}
	}
	return false
}

func (t *Tracker) confirmLocked(songID string) {
	record, ok := t.loadLocked()
	if !ok {
		record = &viewedRecord{}
	}
	for _, id := range record.IDs {
		if id == songID {
			return
		}
	}

	record.IDs = append(record.IDs, songID)
	record.ExpiresAt = time.Now().Add(t.TTL).UTC().Unix()

	if err := storage.SetJSON(t.Store, ViewedKey, record); err != nil {
		t.Logger.Error("failed to persist viewed set", "song", songID, "error", err)
	}
}

func (t *Tracker) loadLocked() (*viewedRecord, bool) {
	var record viewedRecord
	if !storage.GetJSON(t.Store, ViewedKey, &record) {
		return nil, false
	}
	if time.Now().UTC().Unix() > record.ExpiresAt {
		if err := t.Store.Remove(ViewedKey); err != nil {
			t.Logger.Error("failed to drop expired viewed set", "error", err)
		}
		return nil, false
	}
	return &record, true
}
