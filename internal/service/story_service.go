package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aulrahman/storyshare/internal/adapter"
	"github.com/aulrahman/storyshare/internal/connectivity"
	"github.com/aulrahman/storyshare/internal/logger"
	"github.com/aulrahman/storyshare/internal/store"
	"github.com/aulrahman/storyshare/internal/validators"
	"github.com/aulrahman/storyshare/models"
)

// listCacheKey identifies the cached list-stories payload in the response
// cache partition.
const listCacheKey = "stories"

// pendingAuthorName is the placeholder shown on records that only exist
// locally; the server assigns the real author name on upload.
const pendingAuthorName = "You (pending)"

type storyService struct {
	store     *store.Store
	api       adapter.StoryAPI
	monitor   connectivity.Monitor
	validator *validators.StoryValidator

	logger *logger.Logger

	now func() time.Time
}

// NewStoryService constructs the sync engine over the given local store,
// network adapter, and connectivity monitor. The engine itself holds no
// mutable state beyond what lives in the store, so multiple instances are
// safe.
func NewStoryService(st *store.Store, api adapter.StoryAPI, monitor connectivity.Monitor, log *logger.Logger) StoryService {
	return &storyService{
		store:     st,
		api:       api,
		monitor:   monitor,
		validator: validators.NewStoryValidator(),
		logger:    log,
		now:       time.Now,
	}
}

// FetchStories implements [StoryService].
//
// Online: network first; the fetched list wholesale-replaces the synced
// partition and the raw payload refreshes the response cache. A failed
// network attempt is never fatal: it falls back to the local store and
// finally to the degraded empty result.
//
// Offline: local store first, then the response cache (opportunistically
// mirrored back into the store), then the degraded empty result.
func (s *storyService) FetchStories(ctx context.Context) FetchResult {
	if !s.monitor.IsOnline() {
		return s.fetchOffline(ctx)
	}

	stories, raw, err := s.api.ListStories(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("story list fetch failed, falling back to local store")
		return s.fetchLocal()
	}

	if err = s.store.PutMany(stories); err != nil {
		s.logger.Error().Err(err).Msg("failed to mirror fetched stories into local store")
	}
	if err = s.store.CacheListResponse(listCacheKey, raw); err != nil {
		s.logger.Error().Err(err).Msg("failed to refresh response cache")
	}

	return FetchResult{Source: SourceNetwork, Stories: stories}
}

func (s *storyService) fetchOffline(ctx context.Context) FetchResult {
	if result := s.fetchLocal(); result.Source == SourceLocal {
		return result
	}

	raw, err := s.store.CachedListResponse(listCacheKey)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to read response cache")
	}
	if raw != nil {
		var cached models.StoryListResponse
		if err = json.Unmarshal(raw, &cached); err != nil {
			s.logger.Error().Err(err).Msg("cached story list payload is corrupt")
		} else {
			// Any decodable payload is a cache hit, even one that carries no
			// stories. A non-empty list is mirrored into the store so the
			// next offline read is served from the primary source.
			if len(cached.ListStory) > 0 {
				if err = s.store.PutMany(cached.ListStory); err != nil {
					s.logger.Error().Err(err).Msg("failed to mirror cached stories into local store")
				}
			}
			stories := cached.ListStory
			if stories == nil {
				stories = []models.Story{}
			}
			return FetchResult{Source: SourceCache, Stories: stories}
		}
	}

	return FetchResult{Source: SourceOfflineEmpty, Stories: []models.Story{}}
}

func (s *storyService) fetchLocal() FetchResult {
	stories, err := s.store.GetAll()
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to read stories from local store")
	}
	if len(stories) > 0 {
		return FetchResult{Source: SourceLocal, Stories: stories}
	}
	return FetchResult{Source: SourceOfflineEmpty, Stories: []models.Story{}}
}

// CreateStory implements [StoryService].
//
// Offline: the input is validated as a draft only (an oversized photo is
// accepted for local storage and re-validated at send time) and stored into
// the pending partition with a client-assigned id.
//
// Online: the input is fully validated before any I/O, then submitted as a
// multipart payload. A successful submission triggers an asynchronous feed
// refresh; a failed one surfaces the error to the caller with no automatic
// pending fallback.
func (s *storyService) CreateStory(ctx context.Context, input models.NewStory) (CreateResult, error) {
	if !s.monitor.IsOnline() {
		return s.createPending(input)
	}

	if err := s.validator.ValidateUpload(input); err != nil {
		return CreateResult{}, err
	}

	resp, err := s.api.CreateStory(ctx, input)
	if err != nil {
		return CreateResult{}, fmt.Errorf("submit story: %w", err)
	}

	// Refresh the local mirror in the background; callers do not wait for it.
	go s.FetchStories(context.WithoutCancel(ctx))

	return CreateResult{Status: StatusCreated, Message: resp.Message}, nil
}

func (s *storyService) createPending(input models.NewStory) (CreateResult, error) {
	if err := s.validator.ValidateDraft(input); err != nil {
		return CreateResult{}, err
	}

	now := s.now().UTC()
	story := models.Story{
		ID:          pendingID(now),
		AuthorName:  pendingAuthorName,
		Description: input.Description,
		Photo:       input.Photo,
		Lat:         input.Lat,
		Lon:         input.Lon,
		CreatedAt:   now,
		IsPending:   true,
	}

	if err := s.store.PutPending(story); err != nil {
		return CreateResult{}, fmt.Errorf("save pending story: %w", err)
	}

	s.logger.Info().Str("story_id", story.ID).Msg("story saved locally, upload deferred until online")
	return CreateResult{
		Status:  StatusPendingSaved,
		Message: "Story saved locally and will be uploaded when online.",
	}, nil
}

// SyncPending implements [StoryService]. All pending records are replayed in
// parallel through the same submission path used for online creation; each
// success deletes the local record, each failure leaves it intact for a
// future pass.
func (s *storyService) SyncPending(ctx context.Context) (SyncReport, error) {
	if !s.monitor.IsOnline() {
		return SyncReport{}, ErrOffline
	}

	pending, err := s.store.PendingStories()
	if err != nil {
		return SyncReport{}, fmt.Errorf("read pending stories: %w", err)
	}
	if len(pending) == 0 {
		return SyncReport{Message: "Nothing to sync."}, nil
	}

	results := make([]SyncItemResult, len(pending))
	var wg sync.WaitGroup
	for i, story := range pending {
		wg.Add(1)
		go func(i int, story models.Story) {
			defer wg.Done()
			results[i] = s.replayPending(ctx, story)
		}(i, story)
	}
	wg.Wait()

	succeeded := 0
	for _, result := range results {
		if result.Success {
			succeeded++
		}
	}

	report := SyncReport{
		Succeeded: succeeded,
		Total:     len(pending),
		Message:   fmt.Sprintf("Synced %d of %d pending stories.", succeeded, len(pending)),
		Results:   results,
	}
	s.logger.Info().Int("succeeded", succeeded).Int("total", len(pending)).Msg("pending sync pass finished")
	return report, nil
}

func (s *storyService) replayPending(ctx context.Context, story models.Story) SyncItemResult {
	input := models.NewStory{
		Description: story.Description,
		Photo:       story.Photo,
		Lat:         story.Lat,
		Lon:         story.Lon,
	}

	// Re-validate with the full submission rules: an oversized photo that was
	// accepted for offline storage fails here and stays pending.
	if err := s.validator.ValidateUpload(input); err != nil {
		return SyncItemResult{ID: story.ID, Error: err.Error()}
	}

	if _, err := s.api.CreateStory(ctx, input); err != nil {
		s.logger.Warn().Err(err).Str("story_id", story.ID).Msg("pending story replay failed")
		return SyncItemResult{ID: story.ID, Error: err.Error()}
	}

	// Leaving the record on a failed delete means it may upload twice later;
	// reporting the item as failed keeps the caller aware of it.
	if err := s.store.DeletePending(story.ID); err != nil {
		s.logger.Error().Err(err).Str("story_id", story.ID).Msg("failed to delete replayed pending story")
		return SyncItemResult{ID: story.ID, Error: err.Error()}
	}

	return SyncItemResult{ID: story.ID, Success: true}
}

// pendingID builds a client-assigned id for a locally created story. The
// millisecond timestamp keeps ids chronologically sortable; the random suffix
// keeps two creations within the same millisecond from colliding.
func pendingID(now time.Time) string {
	return fmt.Sprintf("pending-%d-%s", now.UnixMilli(), uuid.NewString()[:8])
}
