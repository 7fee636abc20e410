package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ProviderFetches = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "provider_fetches_total", Help: "Market-data provider calls by source and outcome"},
		[]string{"source", "outcome"},
	)
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Dashboard API requests by route and status"},
		[]string{"route", "status"},
	)
	Translations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "translations_total", Help: "Headline translation calls by outcome"},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(ProviderFetches, HTTPRequests, Translations)
}

// Serve exposes /metrics on addr in the background. Returns the server so
// the caller can shut it down.
func Serve(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}
	go func() { _ = srv.ListenAndServe() }()
	return srv
}
