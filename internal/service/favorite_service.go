package service

import (
	"context"
	"fmt"

	"github.com/aulrahman/storyshare/internal/logger"
	"github.com/aulrahman/storyshare/internal/store"
	"github.com/aulrahman/storyshare/models"
)

type favoriteService struct {
	store  *store.Store
	logger *logger.Logger
}

// NewFavoriteService constructs a FavoriteService over the local store.
// Favorites are created and destroyed only by explicit user toggles, never
// implicitly by fetch or sync operations.
func NewFavoriteService(st *store.Store, log *logger.Logger) FavoriteService {
	return &favoriteService{store: st, logger: log}
}

func (s *favoriteService) List(_ context.Context) ([]models.Favorite, error) {
	favorites, err := s.store.GetAllFavorites()
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return favorites, nil
}

func (s *favoriteService) IsFavorite(_ context.Context, id string) (bool, error) {
	return s.store.IsFavorite(id)
}

func (s *favoriteService) Toggle(_ context.Context, story models.Story) (ToggleResult, error) {
	outcome, err := s.store.ToggleFavorite(story)
	if err != nil {
		return ToggleResult{}, fmt.Errorf("toggle favorite: %w", err)
	}

	s.logger.Debug().Str("story_id", story.ID).Bool("is_favorite", outcome.IsFavorite).Msg("favorite toggled")
	return ToggleResult{IsFavorite: outcome.IsFavorite, Message: outcome.Message}, nil
}
