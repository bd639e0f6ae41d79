// Package links builds the alternate-service listening links shown alongside
// a recommendation. Four destinations are produced in a fixed order: Spotify
// first, then three search pages on other platforms. Each destination has its
// own expected encoding for the combined "title artist" text — path-style
// URLs use %20 for spaces while query-style URLs use + — and the two
// conventions are not interchangeable.
package links

import (
	"net/url"
	"strings"
)

// ServiceLink pairs a human-readable service name with the URL to open.
type ServiceLink struct {
	Service string `json:"service"`
	URL     string `json:"url"`
}

// Build returns exactly four links in a fixed order: Spotify, YouTube Music,
// SoundCloud, Deezer. When catalogID is non-empty the Spotify entry links
// directly to the track; otherwise it falls back to a catalog-wide search on
// the combined title and artist text, as the three alternates always do.
func Build(songTitle, artistName, catalogID string) []ServiceLink {
	combined := songTitle + " " + artistName

	spotifyURL := "https://open.spotify.com/track/" + catalogID
	if catalogID == "" {
		spotifyURL = "https://open.spotify.com/search/" + pathEscape(combined)
	}

	return []ServiceLink{
		{Service: "Spotify", URL: spotifyURL},
		{Service: "YouTube Music", URL: "https://music.youtube.com/search?q=" + url.QueryEscape(combined)},
		{Service: "SoundCloud", URL: "https://soundcloud.com/search?q=" + url.QueryEscape(combined)},
		{Service: "Deezer", URL: "https://www.deezer.com/search/" + pathEscape(combined)},
	}
}

// pathEscape percent-encodes s for use as a path segment, keeping any literal
// slash intact. url.PathEscape alone would turn "/" into %2F which Spotify
// and Deezer search paths do not expect.
func pathEscape(s string) string {
	parts := strings.Split(s, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}
