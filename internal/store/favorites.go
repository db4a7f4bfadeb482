package store

import (
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/aulrahman/storyshare/models"
)

// ToggleOutcome describes the favorite state after a toggle.
type ToggleOutcome struct {
	IsFavorite bool
	Message    string
}

// GetAllFavorites returns every favorite, ordered by story id.
func (s *Store) GetAllFavorites() ([]models.Favorite, error) {
	favorites := make([]models.Favorite, 0)

	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(favoritesBucket).ForEach(func(_, data []byte) error {
			favorite, decodeErr := unmarshalFavorite(data)
			if decodeErr != nil {
				return decodeErr
			}
			favorites = append(favorites, favorite)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("read favorites: %w", err)
	}

	return favorites, nil
}

// GetFavorite returns the favorite with the given story id, or nil when the
// story is not favorited. A falsy id is not an error.
func (s *Store) GetFavorite(id string) (*models.Favorite, error) {
	if id == "" {
		return nil, nil
	}

	var found *models.Favorite
	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(favoritesBucket).Get([]byte(id))
		if data == nil {
			return nil
		}
		favorite, decodeErr := unmarshalFavorite(data)
		if decodeErr != nil {
			return decodeErr
		}
		found = &favorite
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read favorite %s: %w", id, err)
	}

	return found, nil
}

// IsFavorite reports whether the story with the given id is favorited.
func (s *Store) IsFavorite(id string) (bool, error) {
	favorite, err := s.GetFavorite(id)
	if err != nil {
		return false, err
	}
	return favorite != nil, nil
}

// PutFavorite stores a denormalized copy of story in the favorites partition.
// FavoritedAt is stamped only when the story is not already favorited;
// re-favoriting keeps the original timestamp.
func (s *Store) PutFavorite(story models.Story) error {
	if story.ID == "" {
		return ErrMissingID
	}

	err := s.db.Update(func(tx *bolt.Tx) error {
		return putFavoriteTx(tx, story)
	})
	if err != nil {
		return fmt.Errorf("save favorite %s: %w", story.ID, err)
	}

	return nil
}

// DeleteFavorite removes the favorite with the given id. Deleting an absent
// id is a no-op.
func (s *Store) DeleteFavorite(id string) error {
	if id == "" {
		return nil
	}

	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(favoritesBucket).Delete([]byte(id))
	})
	if err != nil {
		return fmt.Errorf("delete favorite %s: %w", id, err)
	}

	return nil
}

// ToggleFavorite flips the favorite state of story. The read and the inverse
// write run inside one write transaction, so concurrent toggles of the same
// id serialize instead of losing updates.
func (s *Store) ToggleFavorite(story models.Story) (ToggleOutcome, error) {
	if story.ID == "" {
		return ToggleOutcome{}, ErrMissingID
	}

	var outcome ToggleOutcome
	err := s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(favoritesBucket)
		if bucket.Get([]byte(story.ID)) != nil {
			outcome = ToggleOutcome{IsFavorite: false, Message: "Removed from favorites"}
			return bucket.Delete([]byte(story.ID))
		}

		outcome = ToggleOutcome{IsFavorite: true, Message: "Added to favorites"}
		return putFavoriteTx(tx, story)
	})
	if err != nil {
		return ToggleOutcome{}, fmt.Errorf("toggle favorite %s: %w", story.ID, err)
	}

	return outcome, nil
}

func putFavoriteTx(tx *bolt.Tx, story models.Story) error {
	bucket := tx.Bucket(favoritesBucket)

	favorite := models.Favorite{Story: story, FavoritedAt: time.Now().UTC()}
	if data := bucket.Get([]byte(story.ID)); data != nil {
		existing, decodeErr := unmarshalFavorite(data)
		if decodeErr != nil {
			return decodeErr
		}
		favorite.FavoritedAt = existing.FavoritedAt
	}

	data, err := json.Marshal(favorite)
	if err != nil {
		return fmt.Errorf("encode favorite %s: %w", story.ID, err)
	}
	return bucket.Put([]byte(story.ID), data)
}

func unmarshalFavorite(data []byte) (models.Favorite, error) {
	var favorite models.Favorite
	if err := json.Unmarshal(data, &favorite); err != nil {
		return models.Favorite{}, fmt.Errorf("decode favorite record: %w", err)
	}
	return favorite, nil
}
