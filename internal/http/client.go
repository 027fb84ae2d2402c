package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client wraps HTTP operations with mbzcue-specific configuration.
//
// Client provides:
//   - Configured User-Agent header (MusicBrainz rejects empty agents)
//   - Timeout handling
//   - Page fetching as string and small-file fetching as bytes
//
// Example usage:
//
//	client := NewClient("Mozilla/5.0", 60*time.Second)
//
//	// Fetch page content
//	html, err := client.GetString(ctx, "https://musicbrainz.org/release/<mbid>")
//
//	// Fetch cover art
//	art, err := client.DownloadBytes(ctx, coverURL)
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a new HTTP client with the given User-Agent and
// request timeout.
func NewClient(userAgent string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		userAgent: userAgent,
	}
}

// Get performs a GET request and returns the response body as bytes.
//
// The request includes the configured User-Agent header.
//
// Returns an error if:
//   - The request fails
//   - The response status is not 200 OK
//   - Reading the body fails
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	return io.ReadAll(resp.Body)
}

// GetString performs a GET request and returns the response body as a
// string.
//
// This is a convenience wrapper around Get for fetching text content
// like HTML.
//
// Example:
//
//	html, err := client.GetString(ctx, releaseURL)
func (c *Client) GetString(ctx context.Context, url string) (string, error) {
	body, err := c.Get(ctx, url)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// DownloadBytes downloads a file and returns the bytes in memory.
//
// Use this for small files like cover art images; nothing mbzcue
// fetches warrants streaming to disk.
func (c *Client) DownloadBytes(ctx context.Context, url string) ([]byte, error) {
	return c.Get(ctx, url)
}
