// YouTube Music [Service] implementation.
//
// Communicates with a self-hosted ytmusicapi proxy. The proxy issues OAuth2
// tokens from account credentials via the password grant at /oauth/token and
// exposes catalog and playlist endpoints under /api.
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/spotport/spotport/internal/shared"
	"golang.org/x/oauth2"
)

const defaultProxyBaseURL = "http://localhost:8080"

// ProxyService implements [Service] against the ytmusicapi proxy.
type ProxyService struct {
	baseURL    string
	config     *oauth2.Config
	token      *oauth2.Token
	httpClient *http.Client
}

// NewProxyService creates a service instance for the proxy at baseURL,
// defaulting to localhost when empty.
func NewProxyService(baseURL string) *ProxyService {
	if baseURL == "" {
		baseURL = defaultProxyBaseURL
	}

	return &ProxyService{
		baseURL: baseURL,
		config: &oauth2.Config{
			Endpoint: oauth2.Endpoint{TokenURL: baseURL + "/oauth/token"},
		},
		httpClient: http.DefaultClient,
	}
}

// Name returns the service name.
func (p *ProxyService) Name() string {
	return "YouTube Music"
}

// Authenticate exchanges account credentials for a token using the OAuth2
// password grant. Subsequent requests reuse the token-bearing client.
func (p *ProxyService) Authenticate(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return fmt.Errorf("%w: username and password required", shared.ErrMissingCredentials)
	}

	token, err := p.config.PasswordCredentialsToken(ctx, username, password)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAuthFailed, err)
	}

	p.token = token
	p.httpClient = p.config.Client(ctx, token)
	return nil
}

// doRequest performs an authenticated JSON request against the proxy.
func (p *ProxyService) doRequest(ctx context.Context, method, endpoint string, body, result any) error {
	if p.token == nil {
		return fmt.Errorf("%w: call Authenticate first", shared.ErrAuthFailed)
	}

	var reqBody *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, p.baseURL+endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp struct {
			Detail string `json:"detail"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Detail != "" {
			return fmt.Errorf("proxy error (status %d): %s", resp.StatusCode, errResp.Detail)
		}
		return fmt.Errorf("proxy error: status %d", resp.StatusCode)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// SearchTrack searches the catalog for songs matching query.
//
// Calls GET /api/search?q={query}&filter=songs&limit={limit} on the proxy.
func (p *ProxyService) SearchTrack(ctx context.Context, query string, limit int) ([]SearchHit, error) {
	if limit <= 0 {
		limit = 1
	}

	endpoint := fmt.Sprintf("/api/search?q=%s&filter=songs&limit=%d", url.QueryEscape(query), limit)

	var results []struct {
		VideoID string `json:"videoId"`
		Title   string `json:"title"`
		Artists []struct {
			Name string `json:"name"`
		} `json:"artists"`
		Album *struct {
			Name string `json:"name"`
		} `json:"album"`
	}

	if err := p.doRequest(ctx, http.MethodGet, endpoint, nil, &results); err != nil {
		return nil, err
	}

	hits := make([]SearchHit, 0, len(results))
	for _, r := range results {
		hit := SearchHit{ID: r.VideoID, Title: r.Title}
		if len(r.Artists) > 0 {
			hit.Artist = r.Artists[0].Name
		}
		if r.Album != nil {
			hit.Album = r.Album.Name
		}
		hits = append(hits, hit)
	}

	return hits, nil
}

// CreatePlaylist creates a private playlist and returns its ID.
//
// Calls POST /api/playlists on the proxy.
func (p *ProxyService) CreatePlaylist(ctx context.Context, name, description string) (string, error) {
	createReq := struct {
		Title         string `json:"title"`
		Description   string `json:"description"`
		PrivacyStatus string `json:"privacy_status"`
	}{
		Title:         name,
		Description:   description,
		PrivacyStatus: "PRIVATE",
	}

	var createResp struct {
		PlaylistID string `json:"playlist_id"`
	}

	if err := p.doRequest(ctx, http.MethodPost, "/api/playlists", createReq, &createResp); err != nil {
		return "", err
	}
	if createResp.PlaylistID == "" {
		return "", fmt.Errorf("proxy returned no playlist ID")
	}

	return createResp.PlaylistID, nil
}

// AddTracks appends trackIDs to a playlist in a single batch.
//
// Calls POST /api/playlists/{id}/items on the proxy.
func (p *ProxyService) AddTracks(ctx context.Context, playlistID string, trackIDs []string) error {
	addReq := struct {
		VideoIDs []string `json:"video_ids"`
	}{
		VideoIDs: trackIDs,
	}

	endpoint := fmt.Sprintf("/api/playlists/%s/items", playlistID)
	return p.doRequest(ctx, http.MethodPost, endpoint, addReq, nil)
}
