// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"net/http"
	"os"
	"testing"

	"github.com/spotport/spotport/internal/services"
)

// MockService is a configurable test double for [services.Service].
//
// Hits maps search queries to ranked results; unknown queries return zero
// hits. The zero value authenticates successfully and matches nothing.
type MockService struct {
	Hits       map[string][]services.SearchHit
	AuthErr    error
	SearchErr  error
	CreateErr  error
	AddErr     error
	PlaylistID string

	Queries      []string
	AuthUser     string
	CreatedName  string
	CreatedDesc  string
	AddedTo      string
	AddedTrackID []string
}

func (m *MockService) Authenticate(ctx context.Context, username, password string) error {
	if m.AuthErr != nil {
		return m.AuthErr
	}
	m.AuthUser = username
	return nil
}

func (m *MockService) SearchTrack(ctx context.Context, query string, limit int) ([]services.SearchHit, error) {
	m.Queries = append(m.Queries, query)
	if m.SearchErr != nil {
		return nil, m.SearchErr
	}
	hits := m.Hits[query]
	if limit > 0 && limit < len(hits) {
		hits = hits[:limit]
	}
	return hits, nil
}

func (m *MockService) CreatePlaylist(ctx context.Context, name, description string) (string, error) {
	if m.CreateErr != nil {
		return "", m.CreateErr
	}
	m.CreatedName = name
	m.CreatedDesc = description
	if m.PlaylistID == "" {
		return "PL_MOCK", nil
	}
	return m.PlaylistID, nil
}

func (m *MockService) AddTracks(ctx context.Context, playlistID string, trackIDs []string) error {
	if m.AddErr != nil {
		return m.AddErr
	}
	m.AddedTo = playlistID
	m.AddedTrackID = trackIDs
	return nil
}

func (m *MockService) Name() string { return "mock" }

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}
