package adapter

import (
	"context"

	"github.com/aulrahman/storyshare/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// StoryAPI is the network boundary of the client: the JSON-over-HTTPS story
// service. Implementations convert transport failures and non-2xx statuses
// into sentinel errors; callers never see a raw HTTP response.
type StoryAPI interface {
	// SetToken stores the bearer token used on authenticated requests.
	SetToken(token string)
	// Token returns the currently held bearer token, or "" if none.
	Token() string

	// Register creates a new account.
	Register(ctx context.Context, req models.RegisterRequest) (models.APIResponse, error)
	// Login exchanges credentials for a bearer token. On success the token is
	// stored via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error)

	// ListStories fetches the full story list. It returns the decoded stories
	// together with the raw response payload for response caching.
	ListStories(ctx context.Context) ([]models.Story, []byte, error)
	// CreateStory submits a new story as a multipart payload
	// (description, photo, optional lat/lon).
	CreateStory(ctx context.Context, story models.NewStory) (models.APIResponse, error)

	// SubscribePush forwards a push-subscription descriptor verbatim.
	SubscribePush(ctx context.Context, sub models.PushSubscription) (models.APIResponse, error)
	// UnsubscribePush removes the push subscription for endpoint.
	UnsubscribePush(ctx context.Context, endpoint string) (models.APIResponse, error)
}
