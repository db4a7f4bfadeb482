package service

import (
	"context"

	"github.com/aulrahman/storyshare/models"
)

// StoryService is the sync engine: it decides per operation whether to go to
// the network, the local store, or the response cache, and on writes whether
// to send immediately or park the record as pending.
type StoryService interface {
	// FetchStories returns the story feed from the best available source.
	// The read path never fails: on any transport or persistence trouble it
	// degrades through local store and response cache down to an empty
	// result.
	FetchStories(ctx context.Context) FetchResult

	// CreateStory validates and submits a new story. When offline the story
	// is stored locally as pending and uploaded later; when online it is
	// submitted immediately with no pending fallback on failure.
	CreateStory(ctx context.Context, input models.NewStory) (CreateResult, error)

	// SyncPending replays every pending story against the network,
	// concurrently, and reports the per-item outcome. Returns ErrOffline when
	// the network is not reachable. Partial success is a normal outcome, not
	// an engine-level failure.
	SyncPending(ctx context.Context) (SyncReport, error)
}

// FavoriteService manages the user-curated favorites partition.
type FavoriteService interface {
	List(ctx context.Context) ([]models.Favorite, error)
	IsFavorite(ctx context.Context, id string) (bool, error)
	// Toggle flips the favorite state of story and reports the new state.
	Toggle(ctx context.Context, story models.Story) (ToggleResult, error)
}

// PushService manages the server-side push subscription. Intents issued while
// offline are queued as one-shot replays on the next online transition.
type PushService interface {
	Subscribe(ctx context.Context, sub models.PushSubscription) (PushResult, error)
	Unsubscribe(ctx context.Context, endpoint string) (PushResult, error)
}

// AuthService handles account registration and login. Both require network
// reachability; there is no offline branch for authentication.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.APIResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error)
	// Restore loads a previously persisted session token into the transport
	// layer. A missing session is not an error.
	Restore(ctx context.Context) error
	Logout(ctx context.Context) error
}
