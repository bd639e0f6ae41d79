// Package recommend implements the music.Recommender interface against the
// external recommendation service. The service owns the recommendation
// algorithm and its response schema; this client only carries the wire
// contract: a GET with the artist name as a query parameter and a JSON body
// whose recommended_song field is formatted as "<prefix>: <title>".
//
// Failures are classified with sentinel errors so the HTTP boundary can map
// them to short user-visible messages without inspecting error strings. A
// single attempt is made per call; there are no retries.
package recommend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"harmony-guide/pkg/music"
)

// ErrServiceUnavailable indicates the recommendation service could not be
// reached or answered with a non-success status. The wrapping error carries
// the transport or status detail for logs.
var ErrServiceUnavailable = errors.New("recommendation service unavailable")

// ErrMalformedResponse indicates the response decoded but did not contain the
// recommended_song field. This is a contract violation, never a valid empty
// result.
var ErrMalformedResponse = errors.New("unexpected response format")

// Client talks to the recommendation service. If HTTP is nil a client with a
// 10 second timeout is allocated on first use, so the zero value plus a
// BaseURL is ready for use.
type Client struct {
	// BaseURL is the recommendation endpoint, e.g.
	// "http://127.0.0.1:8000/recommend/".
	BaseURL string
	HTTP    *http.Client
}

// Compile-time check that Client satisfies the domain interface.
var _ music.Recommender = (*Client)(nil)

// GetRecommendation requests a recommendation for the given artist and
// returns the extracted song title. The artist name is transmitted verbatim
// (query-encoded only); callers reject blank input before calling so no
// request is issued for it. The title is the segment after the last ": " in
// the recommended_song field, mirroring the service's "<prefix>: <title>"
// convention.
func (c *Client) GetRecommendation(ctx context.Context, artistName string) (string, error) {
	if c.HTTP == nil {
		c.HTTP = &http.Client{Timeout: 10 * time.Second}
	}
	params := url.Values{"artist_name": {artistName}}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: %s", ErrServiceUnavailable, resp.Status)
	}
	// Decode into a map so a missing field is distinguishable from an empty
	// one. An empty-string recommended_song is treated as missing too: the
	// contract never produces a valid empty title.
	var body map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	raw, ok := body["recommended_song"]
	if !ok {
		return "", fmt.Errorf("%w: missing recommended_song", ErrMalformedResponse)
	}
	var field string
	if err := json.Unmarshal(raw, &field); err != nil {
		return "", fmt.Errorf("%w: recommended_song is not a string", ErrMalformedResponse)
	}
	title := extractTitle(field)
	if title == "" {
		return "", fmt.Errorf("%w: empty recommended_song", ErrMalformedResponse)
	}
	return title, nil
}

// extractTitle strips the service's "<prefix>: " decoration, keeping the
// segment after the last occurrence of ": ". Values without the separator are
// returned unchanged.
func extractTitle(field string) string {
	if i := strings.LastIndex(field, ": "); i >= 0 {
		return field[i+2:]
	}
	return field
}
