package service

import (
	"github.com/aulrahman/storyshare/internal/adapter"
	"github.com/aulrahman/storyshare/internal/connectivity"
	"github.com/aulrahman/storyshare/internal/logger"
	"github.com/aulrahman/storyshare/internal/store"
)

// Services bundles every client-side service over one shared store, adapter,
// and connectivity monitor.
type Services struct {
	Auth      AuthService
	Stories   StoryService
	Favorites FavoriteService
	Push      PushService
}

// NewServices wires the service layer.
func NewServices(st *store.Store, api adapter.StoryAPI, monitor connectivity.Monitor, log *logger.Logger) *Services {
	return &Services{
		Auth:      NewAuthService(st, api, monitor, log),
		Stories:   NewStoryService(st, api, monitor, log),
		Favorites: NewFavoriteService(st, log),
		Push:      NewPushService(api, monitor, log),
	}
}
