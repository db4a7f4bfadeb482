package models

import "time"

// Story is the unit of content shared through the application.
//
// Two id namespaces coexist: server-assigned ids (opaque strings returned by
// the API) and client-assigned pending ids of the form
// "pending-<unix-ms>-<suffix>". A record is either confirmed by the server or
// pending locally, never both.
type Story struct {
	// ID uniquely identifies the story within its namespace.
	ID string `json:"id"`

	// AuthorName is the display name of the author. Pending records carry a
	// placeholder until the server assigns the real name.
	AuthorName string `json:"name"`

	// Description is the story text. Required, non-empty after trimming.
	Description string `json:"description"`

	// PhotoURL points at the server-hosted photo of a confirmed story.
	PhotoURL string `json:"photoUrl,omitempty"`

	// Photo holds the raw image payload of a locally pending story. It is
	// empty on server-confirmed records.
	Photo []byte `json:"photo,omitempty"`

	// Lat and Lon are optional geotag coordinates.
	Lat *float64 `json:"lat,omitempty"`
	Lon *float64 `json:"lon,omitempty"`

	// CreatedAt is the creation timestamp, client-stamped for pending records.
	CreatedAt time.Time `json:"createdAt"`

	// IsPending reports that the record exists only locally and has not yet
	// been accepted by the server.
	IsPending bool `json:"isPending,omitempty"`
}

// Favorite is a user-curated denormalized copy of a story. Its presence is
// independent of the synced story set: replacing the synced partition does
// not cascade into favorites.
type Favorite struct {
	Story

	// FavoritedAt is stamped once when the story is first favorited and is
	// not updated on re-favorite.
	FavoritedAt time.Time `json:"favoritedAt"`
}

// NewStory is the caller-supplied input for creating a story.
type NewStory struct {
	Description string
	Photo       []byte
	// PhotoName is the file name reported in the multipart upload.
	PhotoName string
	Lat       *float64
	Lon       *float64
}
