package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

// Bucket names
var (
	bucketSearches = []byte("searches")
	bucketSession  = []byte("session")
)

var (
	keyRecent       = []byte("recent")
	keyLastSelected = []byte("last_selected")
)

// SessionStore persists small bits of UI state between runs: recent search
// queries and the last selected movie. The catalog itself is never persisted;
// it is reloaded from the server on every start.
type SessionStore struct {
	db      *bolt.DB
	maxKeep int
}

// Open opens (or creates) the session database under dir. An empty dir
// returns a no-op store that remembers nothing.
func Open(dir string, maxKeep int) (*SessionStore, error) {
	if maxKeep <= 0 {
		maxKeep = 10
	}
	if dir == "" {
		return &SessionStore{maxKeep: maxKeep}, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dir, "session.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open session db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{bucketSearches, bucketSession} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &SessionStore{db: db, maxKeep: maxKeep}, nil
}

// Close closes the underlying database
func (s *SessionStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecentSearches returns saved queries, newest first
func (s *SessionStore) RecentSearches() []string {
	if s.db == nil {
		return nil
	}

	var recent []string
	s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucketSearches).Get(keyRecent)
		if data == nil {
			return nil
		}
		return json.Unmarshal(data, &recent)
	})
	return recent
}

// RememberSearch saves a query at the front of the recent list, deduplicating
// and trimming to the configured size. Blank queries are ignored.
func (s *SessionStore) RememberSearch(query string) error {
	if s.db == nil || query == "" {
		return nil
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketSearches)

		var recent []string
		if data := bucket.Get(keyRecent); data != nil {
			if err := json.Unmarshal(data, &recent); err != nil {
				recent = nil
			}
		}

		updated := make([]string, 0, len(recent)+1)
		updated = append(updated, query)
		for _, q := range recent {
			if q != query {
				updated = append(updated, q)
			}
		}
		if len(updated) > s.maxKeep {
			updated = updated[:s.maxKeep]
		}

		data, err := json.Marshal(updated)
		if err != nil {
			return err
		}
		return bucket.Put(keyRecent, data)
	})
}

// LastSelected returns the movie ID selected when the app last exited
func (s *SessionStore) LastSelected() string {
	if s.db == nil {
		return ""
	}

	var id string
	s.db.View(func(tx *bolt.Tx) error {
		if data := tx.Bucket(bucketSession).Get(keyLastSelected); data != nil {
			id = string(data)
		}
		return nil
	})
	return id
}

// SetLastSelected records the currently selected movie ID
func (s *SessionStore) SetLastSelected(id string) error {
	if s.db == nil {
		return nil
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSession).Put(keyLastSelected, []byte(id))
	})
}
