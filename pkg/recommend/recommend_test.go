package recommend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// roundTripper mocks HTTP responses for tests without a live server.
type roundTripper struct {
	status int
	body   string
	err    error
}

func (rt roundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	if rt.err != nil {
		return nil, rt.err
	}
	rec := httptest.NewRecorder()
	if rt.body != "" {
		rec.WriteString(rt.body)
	}
	rec.WriteHeader(rt.status)
	return rec.Result(), nil
}

// TestGetRecommendationSuccess verifies the happy path against a real test
// server: exactly one request, the artist transmitted verbatim as a query
// parameter, and the title extracted from the prefixed field.
func TestGetRecommendationSuccess(t *testing.T) {
	var calls int
	var gotArtist string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		gotArtist = r.URL.Query().Get("artist_name")
		w.Write([]byte(`{"recommended_song":"Top Pick: Yesterday"}`))
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL}
	title, err := c.GetRecommendation(context.Background(), "The Beatles ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if title != "Yesterday" {
		t.Errorf("title = %q, want %q", title, "Yesterday")
	}
	if calls != 1 {
		t.Errorf("expected exactly one request, got %d", calls)
	}
	// The trailing space must survive: the input is sent exactly as given.
	if gotArtist != "The Beatles " {
		t.Errorf("artist transmitted as %q, want verbatim %q", gotArtist, "The Beatles ")
	}
}

// TestGetRecommendationSplitsOnLastSeparator ensures only the suffix after
// the final ": " is kept.
func TestGetRecommendationSplitsOnLastSeparator(t *testing.T) {
	c := &Client{HTTP: &http.Client{Transport: roundTripper{status: 200, body: `{"recommended_song":"A: B: C"}`}}, BaseURL: "http://example.com"}
	title, err := c.GetRecommendation(context.Background(), "x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if title != "C" {
		t.Errorf("title = %q, want %q", title, "C")
	}
}

// TestGetRecommendationNoSeparator keeps the whole field when the prefix
// convention is absent.
func TestGetRecommendationNoSeparator(t *testing.T) {
	c := &Client{HTTP: &http.Client{Transport: roundTripper{status: 200, body: `{"recommended_song":"Yesterday"}`}}, BaseURL: "http://example.com"}
	title, err := c.GetRecommendation(context.Background(), "x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if title != "Yesterday" {
		t.Errorf("title = %q, want %q", title, "Yesterday")
	}
}

// TestGetRecommendationStatusError classifies non-success statuses as
// ErrServiceUnavailable.
func TestGetRecommendationStatusError(t *testing.T) {
	c := &Client{HTTP: &http.Client{Transport: roundTripper{status: 503}}, BaseURL: "http://example.com"}
	_, err := c.GetRecommendation(context.Background(), "x")
	if !errors.Is(err, ErrServiceUnavailable) {
		t.Fatalf("expected ErrServiceUnavailable, got %v", err)
	}
}

// TestGetRecommendationTransportError classifies connection failures as
// ErrServiceUnavailable.
func TestGetRecommendationTransportError(t *testing.T) {
	c := &Client{HTTP: &http.Client{Transport: roundTripper{err: errors.New("connection refused")}}, BaseURL: "http://example.com"}
	_, err := c.GetRecommendation(context.Background(), "x")
	if !errors.Is(err, ErrServiceUnavailable) {
		t.Fatalf("expected ErrServiceUnavailable, got %v", err)
	}
}

// TestGetRecommendationMissingField treats an absent recommended_song as a
// contract violation, never an empty result.
func TestGetRecommendationMissingField(t *testing.T) {
	c := &Client{HTTP: &http.Client{Transport: roundTripper{status: 200, body: `{"other":"value"}`}}, BaseURL: "http://example.com"}
	_, err := c.GetRecommendation(context.Background(), "x")
	if !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse, got %v", err)
	}
}

// TestGetRecommendationInvalidJSON classifies undecodable bodies the same way
// as a missing field.
func TestGetRecommendationInvalidJSON(t *testing.T) {
	c := &Client{HTTP: &http.Client{Transport: roundTripper{status: 200, body: `not json`}}, BaseURL: "http://example.com"}
	_, err := c.GetRecommendation(context.Background(), "x")
	if !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse, got %v", err)
	}
}
