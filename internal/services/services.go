// package services defines the interface for the external music service that
// publish runs target, plus its HTTP implementation.
package services

import "context"

// Service is the narrow capability set the publisher needs from a music
// service: log in, search the catalog, create a playlist, add tracks.
type Service interface {
	// Authenticate logs into the service with account credentials.
	// A rejection is fatal to the run and is never retried.
	Authenticate(ctx context.Context, username, password string) error

	// SearchTrack searches the catalog and returns up to limit ranked hits.
	// An empty result is an expected outcome, not an error.
	SearchTrack(ctx context.Context, query string, limit int) ([]SearchHit, error)

	// CreatePlaylist creates a new playlist and returns its ID.
	CreatePlaylist(ctx context.Context, name, description string) (string, error)

	// AddTracks appends the given track IDs to a playlist in one batch,
	// preserving order.
	AddTracks(ctx context.Context, playlistID string, trackIDs []string) error

	// Name returns the display name of the service.
	Name() string
}

// SearchHit is a ranked catalog search result.
type SearchHit struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Artist string `json:"artist"`
	Album  string `json:"album"`
}
