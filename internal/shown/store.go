package shown

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver

	dbutil "github.com/example/reel/internal/db"
)

const (
	appName    = "reel"
	dbFileName = "reel.db"

	observeBufferSize = 16
)

// Manager is the sqlite-backed shown-progress store. It keeps an
// in-memory cache refreshed by Load and Set so Get stays synchronous.
//
// There is no ambient singleton: Open returns a handle that the caller
// owns and injects wherever a Store is needed.
type Manager struct {
	db *sql.DB

	mu     sync.RWMutex
	cache  []Record
	subs   []chan []Record
	closed bool
}

// Open opens the store at the default xdg data location.
func Open() (*Manager, error) {
	dbPath, err := xdg.DataFile(filepath.Join(appName, dbFileName))
	if err != nil {
		return nil, err
	}
	return OpenPath(dbPath)
}

// OpenPath opens the store at the given path, creating parent directories
// and the schema as needed.
func OpenPath(dbPath string) (*Manager, error) {
	if dir := filepath.Dir(dbPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Manager{db: db}, nil
}

// Load reads all records from the database and refreshes the cache.
func (m *Manager) Load(ctx context.Context) ([]Record, error) {
	rows, err := m.db.QueryContext(ctx, `
		SELECT stories_id, max_shown_slide_index, shown FROM shown_stories
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		var shownInt int
		if err := rows.Scan(&r.StoriesID, &r.MaxShownSlideIndex, &shownInt); err != nil {
			return nil, err
		}
		r.Shown = shownInt != 0
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.cache = records
	m.mu.Unlock()

	return cloneRecords(records), nil
}

// Get returns the cached records from the last Load or Set.
func (m *Manager) Get() []Record {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return cloneRecords(m.cache)
}

// Set upserts the given records and notifies observers.
func (m *Manager) Set(records ...Record) error {
	if len(records) == 0 {
		return nil
	}

	err := dbutil.WithTx(m.db, func(tx *sql.Tx) error {
		for _, r := range records {
			_, err := tx.Exec(`
				INSERT INTO shown_stories (stories_id, max_shown_slide_index, shown)
				VALUES (?, ?, ?)
				ON CONFLICT(stories_id) DO UPDATE SET
					max_shown_slide_index = excluded.max_shown_slide_index,
					shown = excluded.shown
			`, r.StoriesID, r.MaxShownSlideIndex, boolToInt(r.Shown))
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	m.mu.Lock()
	for _, r := range records {
		m.cache = upsertRecord(m.cache, r)
	}
	snapshot := cloneRecords(m.cache)
	subs := m.subs
	m.mu.Unlock()

	for _, sub := range subs {
		select {
		case sub <- snapshot:
		default:
			// Drop if the observer is not keeping up.
		}
	}

	return nil
}

// Observe returns a stream of record snapshots emitted after every
// successful Set.
func (m *Manager) Observe() <-chan []Record {
	ch := make(chan []Record, observeBufferSize)
	m.mu.Lock()
	m.subs = append(m.subs, ch)
	m.mu.Unlock()
	return ch
}

// Actualize drops records for stories not in keepIDs. An empty keep set
// is a no-op.
func (m *Manager) Actualize(keepIDs []string) error {
	if len(keepIDs) == 0 {
		return nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(keepIDs)), ",")
	args := make([]any, len(keepIDs))
	for i, id := range keepIDs {
		args[i] = id
	}

	_, err := m.db.Exec(
		`DELETE FROM shown_stories WHERE stories_id NOT IN (`+placeholders+`)`,
		args...,
	)
	if err != nil {
		return err
	}

	keep := make(map[string]struct{}, len(keepIDs))
	for _, id := range keepIDs {
		keep[id] = struct{}{}
	}

	m.mu.Lock()
	kept := m.cache[:0]
	for _, r := range m.cache {
		if _, ok := keep[r.StoriesID]; ok {
			kept = append(kept, r)
		}
	}
	m.cache = kept
	m.mu.Unlock()

	return nil
}

// DeleteAll removes every record.
func (m *Manager) DeleteAll() error {
	if _, err := m.db.Exec(`DELETE FROM shown_stories`); err != nil {
		return err
	}
	m.mu.Lock()
	m.cache = nil
	m.mu.Unlock()
	return nil
}

// Close closes the database and all observer streams.
func (m *Manager) Close() error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil
	}
	m.closed = true
	subs := m.subs
	m.subs = nil
	m.mu.Unlock()

	for _, sub := range subs {
		close(sub)
	}
	return m.db.Close()
}

func upsertRecord(records []Record, r Record) []Record {
	for i := range records {
		if records[i].StoriesID == r.StoriesID {
			records[i] = r
			return records
		}
	}
	return append(records, r)
}

func cloneRecords(records []Record) []Record {
	out := make([]Record, len(records))
	copy(out, records)
	return out
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
