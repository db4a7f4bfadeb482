package service

import (
	"context"
	"fmt"

	"github.com/aulrahman/storyshare/internal/adapter"
	"github.com/aulrahman/storyshare/internal/connectivity"
	"github.com/aulrahman/storyshare/internal/logger"
	"github.com/aulrahman/storyshare/models"
)

type pushService struct {
	api     adapter.StoryAPI
	monitor connectivity.Monitor
	logger  *logger.Logger
}

// NewPushService constructs a PushService. Subscription changes issued while
// offline are queued through the monitor's one-shot mechanism: they fire once
// on the next online transition and deregister themselves, so a restored
// connection replays each intent at most once.
func NewPushService(api adapter.StoryAPI, monitor connectivity.Monitor, log *logger.Logger) PushService {
	return &pushService{api: api, monitor: monitor, logger: log}
}

func (s *pushService) Subscribe(ctx context.Context, sub models.PushSubscription) (PushResult, error) {
	if !s.monitor.IsOnline() {
		s.monitor.Once(func() {
			if _, err := s.api.SubscribePush(context.Background(), sub); err != nil {
				s.logger.Warn().Err(err).Msg("queued push subscribe failed")
				return
			}
			s.logger.Info().Msg("queued push subscribe sent")
		})
		return PushResult{
			Status:  PushQueued,
			Message: "Subscription will be processed when you are back online.",
		}, nil
	}

	resp, err := s.api.SubscribePush(ctx, sub)
	if err != nil {
		return PushResult{}, fmt.Errorf("subscribe push: %w", err)
	}

	return PushResult{Status: PushAccepted, Message: resp.Message}, nil
}

func (s *pushService) Unsubscribe(ctx context.Context, endpoint string) (PushResult, error) {
	if !s.monitor.IsOnline() {
		s.monitor.Once(func() {
			if _, err := s.api.UnsubscribePush(context.Background(), endpoint); err != nil {
				s.logger.Warn().Err(err).Msg("queued push unsubscribe failed")
				return
			}
			s.logger.Info().Msg("queued push unsubscribe sent")
		})
		return PushResult{
			Status:  PushQueued,
			Message: "Unsubscription will be processed when you are back online.",
		}, nil
	}

	resp, err := s.api.UnsubscribePush(ctx, endpoint)
	if err != nil {
		return PushResult{}, fmt.Errorf("unsubscribe push: %w", err)
	}

	return PushResult{Status: PushAccepted, Message: resp.Message}, nil
}
