// package models defines the data model shared by the extractor, publisher, and CLI layers.
package models

import "strings"

// Track is a single playlist entry as extracted from a Spotify page.
// Immutable once built; artist order matches the source document.
type Track struct {
	Name    string   `json:"name"`
	Artists []string `json:"artists"`
	Album   string   `json:"album"`
}

// ArtistLine joins the track's artists for display, in source order.
func (t Track) ArtistLine() string {
	return strings.Join(t.Artists, ", ")
}

// SearchQuery builds the catalog search string for this track: the
// track name followed by the comma-joined artist names.
func (t Track) SearchQuery() string {
	return t.Name + " " + t.ArtistLine()
}

// Playlist holds the supplementary metadata extracted alongside the
// track listing. Either field may be empty when the page omits it.
type Playlist struct {
	Description  string `json:"description"`
	CanonicalURL string `json:"canonical_url"`
}

// Match pairs an extracted track with the catalog ID of its best search
// hit. ExternalID is empty when the search returned no hits; a miss is
// an expected outcome, not an error.
type Match struct {
	Track      Track  `json:"track"`
	ExternalID string `json:"external_id,omitempty"`
}

// Found reports whether the search produced a catalog match.
func (m Match) Found() bool {
	return m.ExternalID != ""
}

// PublishReport summarizes a publish run.
type PublishReport struct {
	PlaylistID string  `json:"playlist_id"`
	Matches    []Match `json:"matches"`
	Missed     int     `json:"missed"`
}

// MatchedIDs returns the external IDs of all matched tracks in source
// order, skipping misses.
func (r *PublishReport) MatchedIDs() []string {
	ids := make([]string, 0, len(r.Matches))
	for _, m := range r.Matches {
		if m.Found() {
			ids = append(ids, m.ExternalID)
		}
	}
	return ids
}
