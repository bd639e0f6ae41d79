package links

import "testing"

// TestBuildWithCatalogID checks the fixed order and the direct track link
// used when the catalog id is known.
func TestBuildWithCatalogID(t *testing.T) {
	got := Build("Yesterday", "The Beatles", "abc123")
	want := []ServiceLink{
		{Service: "Spotify", URL: "https://open.spotify.com/track/abc123"},
		{Service: "YouTube Music", URL: "https://music.youtube.com/search?q=Yesterday+The+Beatles"},
		{Service: "SoundCloud", URL: "https://soundcloud.com/search?q=Yesterday+The+Beatles"},
		{Service: "Deezer", URL: "https://www.deezer.com/search/Yesterday%20The%20Beatles"},
	}
	if len(got) != 4 {
		t.Fatalf("expected exactly 4 links, got %d", len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("link %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

// TestBuildWithoutCatalogID falls back to a catalog-wide search for the
// primary entry while the alternates are unchanged.
func TestBuildWithoutCatalogID(t *testing.T) {
	got := Build("Yesterday", "The Beatles", "")
	if len(got) != 4 {
		t.Fatalf("expected exactly 4 links, got %d", len(got))
	}
	if got[0].Service != "Spotify" {
		t.Errorf("primary service = %q", got[0].Service)
	}
	if got[0].URL != "https://open.spotify.com/search/Yesterday%20The%20Beatles" {
		t.Errorf("primary url = %q", got[0].URL)
	}
}

// TestBuildEncodingConventions pins the space-as-plus vs space-as-%20 split
// per destination; the two are not interchangeable.
func TestBuildEncodingConventions(t *testing.T) {
	got := Build("Song & Dance", "AC/DC", "")
	// Path-style destinations keep the slash literal and use %20.
	if got[0].URL != "https://open.spotify.com/search/Song%20&%20Dance%20AC/DC" {
		t.Errorf("spotify url = %q", got[0].URL)
	}
	if got[3].URL != "https://www.deezer.com/search/Song%20&%20Dance%20AC/DC" {
		t.Errorf("deezer url = %q", got[3].URL)
	}
	// Query-style destinations escape everything and use +.
	if got[1].URL != "https://music.youtube.com/search?q=Song+%26+Dance+AC%2FDC" {
		t.Errorf("youtube music url = %q", got[1].URL)
	}
	if got[2].URL != "https://soundcloud.com/search?q=Song+%26+Dance+AC%2FDC" {
		t.Errorf("soundcloud url = %q", got[2].URL)
	}
}
