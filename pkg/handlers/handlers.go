// Package handlers contains the HTTP handlers for Harmony Guide. The handlers
// are the boundary where errors from the two external collaborators become
// short user-visible messages: the recommendation service aborts the action
// with a warning, while a failed catalog lookup degrades to a fallback
// presentation and the page still renders. No stack traces or internal detail
// reach the response; those go to the log.
package handlers

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"harmony-guide/pkg/links"
	"harmony-guide/pkg/metrics"
	"harmony-guide/pkg/music"
	"harmony-guide/pkg/recommend"
)

// Application bundles the dependencies used by the HTTP handlers. Both
// services are stateless interfaces so tests can substitute fakes.
type Application struct {
	Recommender music.Recommender
	Finder      music.TrackFinder
	Log         *logrus.Logger
}

// recommendation is the view model shared by the HTML result page and the
// JSON API. Track fields are only meaningful when TrackFound is true.
type recommendation struct {
	Song       string              `json:"song"`
	Artist     string              `json:"artist"`
	TrackFound bool                `json:"track_found"`
	Track      music.TrackMetadata `json:"track"`
	Links      []links.ServiceLink `json:"links"`
	// LookupNotice carries the non-fatal warning shown when the catalog
	// lookup failed and the page fell back to the no-metadata rendering.
	LookupNotice string `json:"lookup_notice,omitempty"`
}

// logger returns the configured logger, falling back to the logrus standard
// logger so handlers never need a nil check at each call site.
func (app *Application) logger() *logrus.Logger {
	if app.Log != nil {
		return app.Log
	}
	return logrus.StandardLogger()
}

// Home renders the artist input form.
func (app *Application) Home(w http.ResponseWriter, r *http.Request) {
	tmpl, err := template.ParseFiles("ui/templates/home.html")
	if err != nil {
		http.Error(w, "An error occurred while loading the template", http.StatusInternalServerError)
		return
	}
	if err := tmpl.Execute(w, nil); err != nil {
		http.Error(w, "An error occurred while rendering the template", http.StatusInternalServerError)
	}
}

// Recommend handles the form submission: one recommendation call followed by
// at most one catalog lookup, then the HTML result page. Blank input never
// reaches the wire.
func (app *Application) Recommend(w http.ResponseWriter, r *http.Request) {
	artist := r.URL.Query().Get("artist_name")
	rec, userMsg, status := app.recommendFlow(r.Context(), artist)
	if userMsg != "" {
		app.renderMessage(w, status, userMsg)
		return
	}
	tmpl, err := template.ParseFiles("ui/templates/result.html")
	if err != nil {
		http.Error(w, "An error occurred while loading the template", http.StatusInternalServerError)
		return
	}
	if err := tmpl.Execute(w, rec); err != nil {
		http.Error(w, "An error occurred while rendering the template", http.StatusInternalServerError)
	}
}

// RecommendJSON is the API variant of Recommend. Failures map to the same
// messages with a JSON envelope and an appropriate status code.
func (app *Application) RecommendJSON(w http.ResponseWriter, r *http.Request) {
	artist := r.URL.Query().Get("artist_name")
	rec, userMsg, status := app.recommendFlow(r.Context(), artist)
	if userMsg != "" {
		respondJSONError(w, status, userMsg)
		return
	}
	respondJSON(w, http.StatusOK, rec)
}

// recommendFlow runs the shared control flow for both surfaces. It returns
// either a populated view model or a user-facing message with the status code
// to send. The message strings are deliberately short and generic; detail
// goes to the log only.
func (app *Application) recommendFlow(ctx context.Context, artist string) (*recommendation, string, int) {
	// Reject blank or whitespace-only input before any network call. The
	// value sent upstream stays untrimmed; only the emptiness check uses
	// the trimmed form.
	if strings.TrimSpace(artist) == "" {
		metrics.RecommendationRequests.WithLabelValues(metrics.OutcomeBlank).Inc()
		return nil, "Please enter an artist name", http.StatusBadRequest
	}

	song, err := app.Recommender.GetRecommendation(ctx, artist)
	if err != nil {
		switch {
		case errors.Is(err, recommend.ErrMalformedResponse):
			metrics.RecommendationRequests.WithLabelValues(metrics.OutcomeMalformed).Inc()
			app.logger().WithError(err).Error("recommendation response malformed")
			return nil, "Unexpected response format from API", http.StatusBadGateway
		default:
			metrics.RecommendationRequests.WithLabelValues(metrics.OutcomeUnavailable).Inc()
			app.logger().WithError(err).Error("recommendation service call failed")
			return nil, "Recommendation service unavailable", http.StatusBadGateway
		}
	}
	metrics.RecommendationRequests.WithLabelValues(metrics.OutcomeOK).Inc()

	rec := &recommendation{Song: song, Artist: artist}
	meta, found, err := app.Finder.LookupTrack(ctx, song, artist)
	switch {
	case err != nil:
		// A failed lookup is non-fatal: the page still renders with the
		// fallback presentation and a short notice.
		metrics.CatalogLookups.WithLabelValues(metrics.OutcomeError).Inc()
		app.logger().WithError(err).WithFields(logrus.Fields{
			"song": song, "artist": artist,
		}).Warn("catalog lookup failed")
		rec.LookupNotice = "Track lookup failed"
	case !found:
		metrics.CatalogLookups.WithLabelValues(metrics.OutcomeNoMatch).Inc()
	default:
		metrics.CatalogLookups.WithLabelValues(metrics.OutcomeOK).Inc()
		rec.TrackFound = true
		rec.Track = meta
	}

	rec.Links = links.Build(song, artist, rec.Track.CatalogID)
	return rec, "", 0
}

// renderMessage writes a minimal HTML page carrying a single user-facing
// message. It is used for blank input and aborted actions.
func (app *Application) renderMessage(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	tmpl := template.Must(template.New("message").Parse(
		`<p class="warning">{{.}}</p><p><a href="/">Back</a></p>`))
	if err := tmpl.Execute(w, msg); err != nil {
		app.logger().WithError(err).Error("render message")
	}
}
