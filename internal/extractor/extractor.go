// package extractor parses a track listing out of the state blob embedded in a
// Spotify playlist page.
//
// The page inlines its server-rendered state as an assignment statement inside
// a <script> block. There is no formal contract on the blob's shape, so the
// locator is a heuristic: take the longest script block, then the longest line
// inside it, and treat everything after the first " = " as a relaxed JSON
// literal. The heuristic is isolated behind [Extract] so it can be swapped for
// a documented endpoint without touching callers.
package extractor

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/hjson/hjson-go/v4"
	"github.com/spotport/spotport/internal/models"
	"github.com/spotport/spotport/internal/shared"
)

var scriptRe = regexp.MustCompile(`(?s)<script>(.*?)</script>`)

// Extract locates the embedded state blob in html and decodes it into the
// track listing and playlist metadata. It is a pure function: no I/O, and
// identical input yields identical output.
//
// Errors wrap [shared.ErrExtraction] and name the missing key path when the
// blob decodes but does not have the expected shape.
func Extract(html string) ([]models.Track, models.Playlist, error) {
	block, err := longestScriptBlock(html)
	if err != nil {
		return nil, models.Playlist{}, err
	}

	literal := stateLiteral(longestLine(block))

	var root any
	if err := hjson.Unmarshal([]byte(literal), &root); err != nil {
		return nil, models.Playlist{}, fmt.Errorf("%w: decoding state literal: %v", shared.ErrExtraction, err)
	}

	state, ok := root.(map[string]any)
	if !ok {
		return nil, models.Playlist{}, fmt.Errorf("%w: state literal is not an object", shared.ErrExtraction)
	}

	tracks, err := trackList(state)
	if err != nil {
		return nil, models.Playlist{}, err
	}

	return tracks, metadata(state), nil
}

// longestScriptBlock returns the body of the longest <script> block in the
// document. Ties go to the first block encountered.
func longestScriptBlock(html string) (string, error) {
	matches := scriptRe.FindAllStringSubmatch(html, -1)
	if len(matches) == 0 {
		return "", fmt.Errorf("%w: no script blocks found", shared.ErrExtraction)
	}

	longest := matches[0][1]
	for _, m := range matches[1:] {
		if len(m[1]) > len(longest) {
			longest = m[1]
		}
	}
	return longest, nil
}

// longestLine returns the longest line of the block, assuming the state
// assignment statement is unbroken and longer than surrounding boilerplate.
func longestLine(block string) string {
	var longest string
	for _, line := range strings.Split(block, "\n") {
		if len(line) > len(longest) {
			longest = line
		}
	}
	return longest
}

// stateLiteral strips the assignment target and the trailing statement
// terminator from a line of the form `<identifier> = <literal>;`.
func stateLiteral(line string) string {
	parts := strings.SplitN(line, " = ", 2)
	literal := ""
	if len(parts) == 2 {
		literal = parts[1]
	}
	if len(literal) > 0 {
		literal = literal[:len(literal)-1]
	}
	return literal
}

// trackList walks tracks.items and builds one Track per envelope, preserving
// source order.
func trackList(state map[string]any) ([]models.Track, error) {
	tracksObj, err := childMap(state, "tracks", "tracks")
	if err != nil {
		return nil, err
	}

	itemsVal, ok := tracksObj["items"]
	if !ok {
		return nil, missingKey("tracks.items")
	}
	items, ok := itemsVal.([]any)
	if !ok {
		return nil, wrongShape("tracks.items", "an array")
	}

	tracks := make([]models.Track, 0, len(items))
	for i, itemVal := range items {
		path := fmt.Sprintf("tracks.items[%d]", i)

		item, ok := itemVal.(map[string]any)
		if !ok {
			return nil, wrongShape(path, "an object")
		}

		track, err := childMap(item, "track", path+".track")
		if err != nil {
			return nil, err
		}

		name, err := childString(track, "name", path+".track.name")
		if err != nil {
			return nil, err
		}

		album, err := childMap(track, "album", path+".track.album")
		if err != nil {
			return nil, err
		}
		albumName, err := childString(album, "name", path+".track.album.name")
		if err != nil {
			return nil, err
		}

		artistsVal, ok := track["artists"]
		if !ok {
			return nil, missingKey(path + ".track.artists")
		}
		artistList, ok := artistsVal.([]any)
		if !ok {
			return nil, wrongShape(path+".track.artists", "an array")
		}

		artists := make([]string, 0, len(artistList))
		for j, artistVal := range artistList {
			artistPath := fmt.Sprintf("%s.track.artists[%d]", path, j)
			artist, ok := artistVal.(map[string]any)
			if !ok {
				return nil, wrongShape(artistPath, "an object")
			}
			artistName, err := childString(artist, "name", artistPath+".name")
			if err != nil {
				return nil, err
			}
			artists = append(artists, artistName)
		}

		tracks = append(tracks, models.Track{Name: name, Artists: artists, Album: albumName})
	}

	return tracks, nil
}

// metadata pulls description and external_urls.spotify from the top-level
// state object. Both are supplementary, so absence yields empty strings.
func metadata(state map[string]any) models.Playlist {
	meta := models.Playlist{}

	if desc, ok := state["description"].(string); ok {
		meta.Description = desc
	}

	if urls, ok := state["external_urls"].(map[string]any); ok {
		if canonical, ok := urls["spotify"].(string); ok {
			meta.CanonicalURL = canonical
		}
	}

	return meta
}

func childMap(parent map[string]any, key, path string) (map[string]any, error) {
	val, ok := parent[key]
	if !ok {
		return nil, missingKey(path)
	}
	child, ok := val.(map[string]any)
	if !ok {
		return nil, wrongShape(path, "an object")
	}
	return child, nil
}

func childString(parent map[string]any, key, path string) (string, error) {
	val, ok := parent[key]
	if !ok {
		return "", missingKey(path)
	}
	s, ok := val.(string)
	if !ok {
		return "", wrongShape(path, "a string")
	}
	return s, nil
}

func missingKey(path string) error {
	return fmt.Errorf("%w: missing key %q", shared.ErrExtraction, path)
}

func wrongShape(path, want string) error {
	return fmt.Errorf("%w: %q is not %s", shared.ErrExtraction, path, want)
}
