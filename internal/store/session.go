package store

import (
	"encoding/json"
	"fmt"

	bolt "go.etcd.io/bbolt"

	"github.com/aulrahman/storyshare/models"
)

// SaveSession durably stores the authentication state, replacing any
// previous session.
func (s *Store) SaveSession(session models.Session) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		data, marshalErr := json.Marshal(session)
		if marshalErr != nil {
			return fmt.Errorf("encode session: %w", marshalErr)
		}
		return tx.Bucket(sessionBucket).Put(sessionKey, data)
	})
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	return nil
}

// Session returns the stored authentication state, or nil when the user has
// never logged in on this device.
func (s *Store) Session() (*models.Session, error) {
	var session *models.Session
	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(sessionBucket).Get(sessionKey)
		if data == nil {
			return nil
		}
		var decoded models.Session
		if decodeErr := json.Unmarshal(data, &decoded); decodeErr != nil {
			return fmt.Errorf("decode session: %w", decodeErr)
		}
		session = &decoded
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}

	return session, nil
}

// ClearSession removes the stored authentication state. Clearing an absent
// session is a no-op.
func (s *Store) ClearSession() error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(sessionBucket).Delete(sessionKey)
	})
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	return nil
}
