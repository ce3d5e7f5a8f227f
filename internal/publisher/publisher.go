// package publisher recreates an extracted track listing as a playlist on an
// external music service.
//
// The pipeline is sequential: one search per track in source order, then a
// single playlist creation, then one batch add of every matched ID. A miss on
// one track never aborts the batch.
package publisher

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spotport/spotport/internal/models"
	"github.com/spotport/spotport/internal/services"
	"github.com/spotport/spotport/internal/shared"
	"golang.org/x/time/rate"
)

const defaultRateLimit = 5.0

// Engine orchestrates publish runs against a music service.
type Engine struct {
	service services.Service
	logger  *log.Logger
	limiter *rate.Limiter
	runID   string
}

// NewEngine creates an Engine. rateLimit caps catalog searches per second and
// defaults when zero or negative; this is request pacing, not retry logic.
func NewEngine(svc services.Service, logger *log.Logger, rateLimit float64) *Engine {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	if rateLimit <= 0 {
		rateLimit = defaultRateLimit
	}

	runID := shared.GenerateID()

	return &Engine{
		service: svc,
		logger:  shared.WithLogger(logger, "run", runID),
		limiter: rate.NewLimiter(rate.Limit(rateLimit), 1),
		runID:   runID,
	}
}

// MatchTracks searches the catalog for each track in source order and returns
// one Match per track plus the miss count. Zero hits, and search calls that
// fail outright, record a miss and continue.
func (e *Engine) MatchTracks(ctx context.Context, tracks []models.Track) ([]models.Match, int, error) {
	matches := make([]models.Match, 0, len(tracks))
	missed := 0
	seen := make(map[string]bool, len(tracks))

	for i, track := range tracks {
		key := shared.NormalizeTrackKey(track.Name, track.ArtistLine())
		if seen[key] {
			e.logger.Debug("duplicate track in source listing", "track", track.Name)
		}
		seen[key] = true

		if err := e.limiter.Wait(ctx); err != nil {
			return nil, 0, err
		}

		query := track.SearchQuery()
		e.logger.Debug("searching catalog", "step", fmt.Sprintf("%d/%d", i+1, len(tracks)), "query", query)

		match := models.Match{Track: track}
		hits, err := e.service.SearchTrack(ctx, query, 1)
		switch {
		case err != nil:
			e.logger.Warn("search failed, skipping track", "query", query, "err", err)
			missed++
		case len(hits) == 0:
			e.logger.Warn("no catalog hits for track", "query", query)
			missed++
		default:
			match.ExternalID = hits[0].ID
		}

		matches = append(matches, match)
	}

	return matches, missed, nil
}

// Publish searches for every track, creates a playlist named name on the
// service, and adds all matched IDs in one batch. The caller must have
// authenticated the service already.
//
// There is no rollback: if the batch add fails after creation, the created
// playlist remains and the error reports its ID.
func (e *Engine) Publish(ctx context.Context, tracks []models.Track, name string, meta models.Playlist) (*models.PublishReport, error) {
	matches, missed, err := e.MatchTracks(ctx, tracks)
	if err != nil {
		return nil, err
	}

	report := &models.PublishReport{Matches: matches, Missed: missed}

	e.logger.Info("creating playlist", "name", name, "service", e.service.Name())
	playlistID, err := e.service.CreatePlaylist(ctx, name, Description(meta))
	if err != nil {
		return report, fmt.Errorf("%w: creating %q: %v", shared.ErrPlaylistMutation, name, err)
	}
	report.PlaylistID = playlistID

	ids := report.MatchedIDs()
	if len(ids) == 0 {
		e.logger.Warn("no tracks matched, playlist left empty", "playlist", playlistID)
		return report, nil
	}

	e.logger.Debug("adding matched tracks", "playlist", playlistID, "count", len(ids))
	if err := e.service.AddTracks(ctx, playlistID, ids); err != nil {
		return report, fmt.Errorf("%w: adding %d tracks to %s: %v", shared.ErrPlaylistMutation, len(ids), playlistID, err)
	}

	e.logger.Info("publish complete", "playlist", playlistID, "matched", len(ids), "missed", missed)
	return report, nil
}

// Description generates the new playlist's description, appending the original
// playlist's canonical URL and description when present.
func Description(meta models.Playlist) string {
	var b strings.Builder
	b.WriteString("Auto-generated by spotport.")
	if meta.CanonicalURL != "" {
		b.WriteString("\nOriginal Spotify URL: ")
		b.WriteString(meta.CanonicalURL)
	}
	if meta.Description != "" {
		b.WriteString("\nOriginal Spotify description: ")
		b.WriteString(meta.Description)
	}
	return b.String()
}
