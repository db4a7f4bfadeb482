package service

import "github.com/aulrahman/storyshare/models"

// Source identifies which data source satisfied a read.
type Source string

const (
	// SourceNetwork means the list came from a successful network fetch.
	SourceNetwork Source = "network"
	// SourceLocal means the list came from the local store.
	SourceLocal Source = "local"
	// SourceCache means the list came from the response cache.
	SourceCache Source = "cache"
	// SourceOfflineEmpty is the degraded result: no source was reachable and
	// nothing was cached yet. An empty list is a valid state, not an error.
	SourceOfflineEmpty Source = "offline-empty"
)

// FetchResult is the outcome of a story feed read.
type FetchResult struct {
	Source  Source
	Stories []models.Story
}

// CreateStatus identifies the outcome of a story creation.
type CreateStatus string

const (
	// StatusCreated means the server accepted the story.
	StatusCreated CreateStatus = "created"
	// StatusPendingSaved means the story was stored locally and will be
	// uploaded once connectivity returns.
	StatusPendingSaved CreateStatus = "pending-saved"
)

// CreateResult is the outcome of a story creation.
type CreateResult struct {
	Status  CreateStatus
	Message string
}

// SyncItemResult is the per-record outcome of a reconciliation pass.
type SyncItemResult struct {
	ID      string
	Success bool
	Error   string
}

// SyncReport aggregates a reconciliation pass. Succeeded < Total is partial
// success, which the engine treats as normal.
type SyncReport struct {
	Succeeded int
	Total     int
	Message   string
	Results   []SyncItemResult
}

// ToggleResult reports the favorite state after a toggle.
type ToggleResult struct {
	IsFavorite bool
	Message    string
}

// PushStatus identifies the outcome of a push subscription change.
type PushStatus string

const (
	// PushAccepted means the server processed the request.
	PushAccepted PushStatus = "accepted"
	// PushQueued means the request was queued while offline and will fire
	// once on the next online transition.
	PushQueued PushStatus = "queued"
)

// PushResult is the outcome of a push subscription change.
type PushResult struct {
	Status  PushStatus
	Message string
}
