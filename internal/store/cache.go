package store

import (
	"fmt"

	bolt "go.etcd.io/bbolt"
)

// CacheListResponse stores the raw payload of a successful list response
// under key. The responses partition is a coarse last-resort read source,
// only consulted when the story partitions are empty.
func (s *Store) CacheListResponse(key string, payload []byte) error {
	if key == "" {
		return ErrMissingID
	}

	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(responsesBucket).Put([]byte(key), payload)
	})
	if err != nil {
		return fmt.Errorf("cache response %s: %w", key, err)
	}

	return nil
}

// CachedListResponse returns the payload cached under key, or nil when there
// is no match.
func (s *Store) CachedListResponse(key string) ([]byte, error) {
	if key == "" {
		return nil, nil
	}

	var payload []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		if data := tx.Bucket(responsesBucket).Get([]byte(key)); data != nil {
			payload = append([]byte(nil), data...)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read cached response %s: %w", key, err)
	}

	return payload, nil
}
