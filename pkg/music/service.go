// Package music defines the domain types and service interfaces shared by the
// rest of the application. Implementations wrap the external recommendation
// service and the Spotify catalog; by depending only on this package the HTTP
// handlers remain agnostic about either collaborator, which keeps them easy to
// test with fakes.
package music

import "context"

// TrackMetadata holds the display-ready fields extracted from a single catalog
// match. A value is constructed fresh per lookup and never cached or mutated.
// Optional fields are empty strings when the catalog entry does not carry
// them; Explicit defaults to false when the upstream field is missing.
type TrackMetadata struct {
	// PreviewURL points at a short playable clip. Empty when the catalog
	// has no preview licensed for the track.
	PreviewURL string `json:"preview_url,omitempty"`
	// Explicit marks the track as containing explicit content.
	Explicit bool `json:"explicit"`
	// CatalogID is the stable Spotify identifier used for deep links. It is
	// always populated on a match; an absent match is signalled by the
	// found flag on LookupTrack, never by an empty ID.
	CatalogID string `json:"catalog_id"`
	// CoverArtURL is the first image of the album's image list, or empty
	// when the entry carries no images.
	CoverArtURL string `json:"cover_art_url,omitempty"`
	// ReleaseDate is the album release date as reported by the catalog.
	// May be empty.
	ReleaseDate string `json:"release_date"`
	// CanonicalURL is the authoritative listen link on the source platform.
	// It is the fallback destination when PreviewURL is empty.
	CanonicalURL string `json:"canonical_url"`
}

// Recommender maps an artist name to one recommended song title. The
// algorithm lives in an external service; implementations only carry the wire
// contract.
type Recommender interface {
	// GetRecommendation issues exactly one request to the recommendation
	// service and returns the extracted song title. Callers must reject
	// blank artist names before calling; the value is transmitted verbatim.
	GetRecommendation(ctx context.Context, artistName string) (string, error)
}

// TrackFinder looks up exact track metadata in a music catalog.
type TrackFinder interface {
	// LookupTrack searches the catalog for the given title and artist. The
	// boolean reports whether a match was found; callers must branch on it
	// before reading any field of the returned metadata. Zero matches is a
	// normal outcome, not an error. An error indicates a transport or
	// parsing failure and the metadata is not usable.
	LookupTrack(ctx context.Context, songTitle, artistName string) (TrackMetadata, bool, error)
}
