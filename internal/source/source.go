// package source acquires the raw HTML document the extractor works on,
// either from a local file or over HTTP.
package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/spotport/spotport/internal/shared"
)

// Mode selects how the source value is interpreted. There is no
// auto-detection; the caller names the mode explicitly.
type Mode string

const (
	ModeFile Mode = "file"
	ModeURL  Mode = "url"
)

// ParseMode validates a user-supplied mode string.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeFile, ModeURL:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("%w: source mode must be 'url' or 'file', got %q", shared.ErrInvalidFlag, s)
	}
}

// Reader fetches HTML documents.
type Reader struct {
	httpClient *http.Client
}

// NewReader creates a Reader. The client defaults to [http.DefaultClient].
func NewReader(client *http.Client) *Reader {
	if client == nil {
		client = http.DefaultClient
	}
	return &Reader{httpClient: client}
}

// Read returns the HTML document named by mode and value. Failures wrap
// [shared.ErrSourceUnavailable] and are fatal to the run; there are no
// retries.
func (r *Reader) Read(ctx context.Context, mode Mode, value string) (string, error) {
	switch mode {
	case ModeFile:
		return r.readFile(value)
	case ModeURL:
		return r.fetchURL(ctx, value)
	default:
		return "", fmt.Errorf("%w: source mode must be 'url' or 'file', got %q", shared.ErrInvalidFlag, string(mode))
	}
}

func (r *Reader) readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: reading %s: %v", shared.ErrSourceUnavailable, path, err)
	}
	return string(data), nil
}

func (r *Reader) fetchURL(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("%w: building request for %s: %v", shared.ErrSourceUnavailable, rawURL, err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: fetching %s: %v", shared.ErrSourceUnavailable, rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: fetching %s: status %d", shared.ErrSourceUnavailable, rawURL, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading response from %s: %v", shared.ErrSourceUnavailable, rawURL, err)
	}

	return string(body), nil
}
