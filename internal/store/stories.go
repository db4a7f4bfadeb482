package store

import (
	"encoding/json"
	"fmt"

	bolt "go.etcd.io/bbolt"

	"github.com/aulrahman/storyshare/models"
)

// GetAll returns every stored story: the synced partition in insertion order,
// followed by the pending partition in creation order. An empty slice (not an
// error) is returned when nothing is stored.
func (s *Store) GetAll() ([]models.Story, error) {
	stories := make([]models.Story, 0)

	err := s.db.View(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{storiesBucket, pendingBucket} {
			if err := forEachStory(tx.Bucket(bucket), func(story models.Story) {
				stories = append(stories, story)
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read stories: %w", err)
	}

	return stories, nil
}

// GetOne returns the story with the given id from either story partition, or
// nil when absent. A falsy id is not an error.
func (s *Store) GetOne(id string) (*models.Story, error) {
	if id == "" {
		return nil, nil
	}

	var found *models.Story
	err := s.db.View(func(tx *bolt.Tx) error {
		if data := tx.Bucket(pendingBucket).Get([]byte(id)); data != nil {
			story, err := unmarshalStory(data)
			if err != nil {
				return err
			}
			found = &story
			return nil
		}

		return forEachStory(tx.Bucket(storiesBucket), func(story models.Story) {
			if story.ID == id && found == nil {
				copied := story
				found = &copied
			}
		})
	})
	if err != nil {
		return nil, fmt.Errorf("read story %s: %w", id, err)
	}

	return found, nil
}

// PutMany atomically replaces the entire synced partition with stories. The
// pending partition is untouched, so a full-list refresh never drops a
// not-yet-uploaded record. Delete and re-insert happen in one transaction: a
// concurrent GetAll sees either the old set or the new set, never a partial
// union.
func (s *Store) PutMany(stories []models.Story) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(storiesBucket); err != nil {
			return err
		}
		bucket, err := tx.CreateBucket(storiesBucket)
		if err != nil {
			return err
		}

		for _, story := range stories {
			seq, seqErr := bucket.NextSequence()
			if seqErr != nil {
				return seqErr
			}
			data, marshalErr := marshalStory(story)
			if marshalErr != nil {
				return marshalErr
			}
			if putErr := bucket.Put(seqKey(seq), data); putErr != nil {
				return putErr
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("replace stories: %w", err)
	}

	return nil
}

// PutOne upserts a single story into the synced partition, matched by id.
func (s *Store) PutOne(story models.Story) error {
	if story.ID == "" {
		return ErrMissingID
	}

	err := s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(storiesBucket)

		key, err := findStoryKey(bucket, story.ID)
		if err != nil {
			return err
		}
		if key == nil {
			seq, seqErr := bucket.NextSequence()
			if seqErr != nil {
				return seqErr
			}
			key = seqKey(seq)
		}

		data, marshalErr := marshalStory(story)
		if marshalErr != nil {
			return marshalErr
		}
		return bucket.Put(key, data)
	})
	if err != nil {
		return fmt.Errorf("save story %s: %w", story.ID, err)
	}

	return nil
}

// DeleteOne removes the story with the given id from both story partitions.
// Deleting an absent id is a no-op.
func (s *Store) DeleteOne(id string) error {
	if id == "" {
		return nil
	}

	err := s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(storiesBucket)
		key, err := findStoryKey(bucket, id)
		if err != nil {
			return err
		}
		if key != nil {
			if err = bucket.Delete(key); err != nil {
				return err
			}
		}
		return tx.Bucket(pendingBucket).Delete([]byte(id))
	})
	if err != nil {
		return fmt.Errorf("delete story %s: %w", id, err)
	}

	return nil
}

// DeleteAll empties the synced partition. Pending records survive.
func (s *Store) DeleteAll() error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(storiesBucket); err != nil {
			return err
		}
		_, err := tx.CreateBucket(storiesBucket)
		return err
	})
	if err != nil {
		return fmt.Errorf("clear stories: %w", err)
	}

	return nil
}

// PutPending stores a locally created story in the pending partition, keyed
// by its client-assigned id.
func (s *Store) PutPending(story models.Story) error {
	if story.ID == "" {
		return ErrMissingID
	}

	err := s.db.Update(func(tx *bolt.Tx) error {
		data, marshalErr := marshalStory(story)
		if marshalErr != nil {
			return marshalErr
		}
		return tx.Bucket(pendingBucket).Put([]byte(story.ID), data)
	})
	if err != nil {
		return fmt.Errorf("save pending story %s: %w", story.ID, err)
	}

	return nil
}

// PendingStories returns all records of the pending partition in creation
// order (pending ids embed a millisecond timestamp, so byte order is
// chronological).
func (s *Store) PendingStories() ([]models.Story, error) {
	stories := make([]models.Story, 0)

	err := s.db.View(func(tx *bolt.Tx) error {
		return forEachStory(tx.Bucket(pendingBucket), func(story models.Story) {
			stories = append(stories, story)
		})
	})
	if err != nil {
		return nil, fmt.Errorf("read pending stories: %w", err)
	}

	return stories, nil
}

// DeletePending removes a replayed record from the pending partition.
// Deleting an absent id is a no-op.
func (s *Store) DeletePending(id string) error {
	if id == "" {
		return nil
	}

	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(pendingBucket).Delete([]byte(id))
	})
	if err != nil {
		return fmt.Errorf("delete pending story %s: %w", id, err)
	}

	return nil
}

func forEachStory(bucket *bolt.Bucket, fn func(models.Story)) error {
	return bucket.ForEach(func(_, data []byte) error {
		story, err := unmarshalStory(data)
		if err != nil {
			return err
		}
		fn(story)
		return nil
	})
}

func findStoryKey(bucket *bolt.Bucket, id string) ([]byte, error) {
	var found []byte
	err := bucket.ForEach(func(key, data []byte) error {
		if found != nil {
			return nil
		}
		story, err := unmarshalStory(data)
		if err != nil {
			return err
		}
		if story.ID == id {
			found = append([]byte(nil), key...)
		}
		return nil
	})
	return found, err
}

func unmarshalStory(data []byte) (models.Story, error) {
	var story models.Story
	if err := json.Unmarshal(data, &story); err != nil {
		return models.Story{}, fmt.Errorf("decode story record: %w", err)
	}
	return story, nil
}
