// Package store implements the durable local store of the storyshare client
// on top of bbolt.
//
// Each logical partition lives in its own bucket:
//
//   - stories   — server-confirmed stories, replaced wholesale on each
//     successful list fetch;
//   - pending   — locally created stories awaiting upload. Keeping them out
//     of the stories bucket means a full-list refresh can never silently
//     drop an unsynced user write;
//   - favorites — user-curated story copies, keyed independently;
//   - responses — cached raw list payloads, a last-resort read source;
//   - session   — the durable bearer token.
//
// All multi-record operations run inside a single bbolt transaction, so a
// concurrent reader observes either the old or the new partition contents,
// never a partial mix.
package store

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/aulrahman/storyshare/internal/logger"
	"github.com/aulrahman/storyshare/models"
)

var (
	storiesBucket   = []byte("stories")
	pendingBucket   = []byte("pending")
	favoritesBucket = []byte("favorites")
	responsesBucket = []byte("responses")
	sessionBucket   = []byte("session")
)

var sessionKey = []byte("current")

// Store is the bbolt-backed local store shared by every component of the
// client. It holds no mutable state of its own beyond the database handle,
// so a single instance can be used from multiple goroutines.
type Store struct {
	db     *bolt.DB
	logger *logger.Logger
}

// New opens (or creates) the database file at path and ensures all partition
// buckets exist.
func New(path string, log *logger.Logger) (*Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open local store: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{storiesBucket, pendingBucket, favoritesBucket, responsesBucket, sessionBucket} {
			if _, createErr := tx.CreateBucketIfNotExists(bucket); createErr != nil {
				return createErr
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("create store buckets: %w", err)
	}

	return &Store{db: db, logger: log}, nil
}

// Close releases the underlying database file.
func (s *Store) Close() error {
	return s.db.Close()
}

// seqKey encodes a bucket sequence number as a big-endian key, preserving
// insertion order under bbolt's byte-sorted iteration.
func seqKey(seq uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, seq)
	return key
}

func marshalStory(story models.Story) ([]byte, error) {
	data, err := json.Marshal(story)
	if err != nil {
		return nil, fmt.Errorf("encode story %s: %w", story.ID, err)
	}
	return data, nil
}
