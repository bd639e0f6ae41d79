// Command web initializes the Harmony Guide application and starts the HTTP
// server. Configuration is provided via environment variables (optionally
// layered over a YAML secrets file named by SECRETS_PATH) for the Spotify API
// credentials and the recommendation service URL. The server serves an HTML
// page, a JSON API and Prometheus metrics.

package main

import (
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"harmony-guide/pkg/config"
	"harmony-guide/pkg/handlers"
	"harmony-guide/pkg/recommend"
	"harmony-guide/pkg/spotify"
)

// main configures application dependencies and starts the HTTP server.
func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Load configuration from the environment and the optional secrets
	// file. Missing credentials are fatal: without them the application
	// cannot talk to the catalog at all.
	cfg, err := config.Load(os.Getenv("SECRETS_PATH"))
	if err != nil {
		log.WithError(err).Fatal("config load")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	// Authenticate with the catalog once at startup using the client
	// credentials flow. Failures here are also fatal; a server that cannot
	// enrich any recommendation is not worth starting.
	finder, err := spotify.NewTrackFinder(cfg.SpotifyClientID, cfg.SpotifyClientSecret)
	if err != nil {
		log.WithError(err).Fatal("spotify client init")
	}

	app := &handlers.Application{
		Recommender: &recommend.Client{BaseURL: cfg.RecommendURL},
		Finder:      finder,
		Log:         log,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", app.Home)
	mux.HandleFunc("/recommend", app.Recommend)
	mux.HandleFunc("/api/recommend", app.RecommendJSON)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.Handle("/metrics", promhttp.Handler())

	log.WithField("addr", cfg.Addr).Info("starting server")
	if err := http.ListenAndServe(cfg.Addr, handlers.SecurityHeaders(mux)); err != nil {
		log.WithError(err).Fatal("http server error")
	}
}
