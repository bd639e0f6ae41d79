// Package spotify wraps the official Spotify client library to implement the
// music.TrackFinder interface. It authenticates once at startup using the
// client credentials flow and performs exact-match track searches. Errors are
// returned directly from the underlying client so callers can inspect them;
// the decision to degrade a failed lookup to an absent result belongs to the
// HTTP boundary, not to this package.
//
// The wrapped library does not accept a context so cancellation is checked
// explicitly before each call.
package spotify

import (
	"context"
	"fmt"

	"github.com/zmb3/spotify"
	"golang.org/x/oauth2/clientcredentials"

	"harmony-guide/pkg/music"
)

// searcher defines the subset of the spotify.Client used by this package. It
// allows the concrete client to be replaced in tests.
type searcher interface {
	SearchOpt(query string, t spotify.SearchType, opt *spotify.Options) (*spotify.SearchResult, error)
}

// TrackFinder wraps the official Spotify client providing the exact-match
// lookup used to enrich a recommended title with display metadata.
type TrackFinder struct {
	client searcher
}

// Compile-time interface check ensuring TrackFinder satisfies the generic
// music.TrackFinder interface used by the rest of the application.
var _ music.TrackFinder = (*TrackFinder)(nil)

// NewTrackFinder authenticates using the client credentials flow and returns
// a TrackFinder ready for API calls. clientID and clientSecret are obtained
// from the Spotify developer dashboard.
func NewTrackFinder(clientID, clientSecret string) (*TrackFinder, error) {
	// The client credentials OAuth2 flow yields an application token which
	// allows searching the catalog without a user login.
	config := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     spotify.TokenURL,
	}

	token, err := config.Token(context.Background())
	if err != nil {
		return nil, err
	}

	c := spotify.Authenticator{}.NewClient(token)
	return &TrackFinder{client: &c}, nil
}

// LookupTrack searches the catalog for an exact title/artist match and
// normalizes the first result. The boolean reports whether a match was found;
// zero matches is a normal outcome and returns (zero, false, nil). Errors are
// transport or parsing failures only.
func (tf *TrackFinder) LookupTrack(ctx context.Context, songTitle, artistName string) (music.TrackMetadata, bool, error) {
	if err := ctx.Err(); err != nil {
		return music.TrackMetadata{}, false, err
	}
	// Spotify's advanced search syntax: quoting each field restricts the
	// match to the exact phrase. Only one result is requested.
	query := fmt.Sprintf(`track:"%s" artist:"%s"`, songTitle, artistName)
	limit := 1
	results, err := tf.client.SearchOpt(query, spotify.SearchTypeTrack, &spotify.Options{Limit: &limit})
	if err != nil {
		return music.TrackMetadata{}, false, err
	}
	if results.Tracks == nil || len(results.Tracks.Tracks) == 0 {
		return music.TrackMetadata{}, false, nil
	}
	return metadataFromTrack(results.Tracks.Tracks[0]), true, nil
}

// metadataFromTrack flattens a full track record into the display-ready
// metadata the handlers consume. Missing optional fields stay at their zero
// values: no preview URL, no cover art, empty release date, Explicit false.
func metadataFromTrack(t spotify.FullTrack) music.TrackMetadata {
	cover := ""
	if len(t.Album.Images) > 0 {
		cover = t.Album.Images[0].URL
	}
	return music.TrackMetadata{
		PreviewURL:   t.PreviewURL,
		Explicit:     t.Explicit,
		CatalogID:    string(t.ID),
		CoverArtURL:  cover,
		ReleaseDate:  t.Album.ReleaseDate,
		CanonicalURL: t.ExternalURLs["spotify"],
	}
}
