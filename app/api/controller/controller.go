package controller

import (
	"net/http"
	"sync/atomic"

	"github.com/gorilla/mux"
	"github.com/puzpuzpuz/xsync/v4"

	"github.com/verdant-network/verdant-api/app/api/types"
)

// routeOther buckets requests that match no registered route.
const routeOther = "other"

type Controller struct {
	App *types.App

	// requests counts handled requests per route, surfaced by /health.
	requests *xsync.Map[string, *atomic.Int64]
}

// NewController returns a new controller.
func NewController(app *types.App) *Controller {
	c := &Controller{
		App:      app,
		requests: xsync.NewMap[string, *atomic.Int64](),
	}
	for _, route := range []string{"/system", "/health", routeOther} {
		c.requests.Store(route, &atomic.Int64{})
	}
	return c
}

// NewRouter returns a new router with all the routes defined in this file.
func (c *Controller) NewRouter() (*mux.Router, error) {
	r := mux.NewRouter()

	r.Handle("/system", http.HandlerFunc(c.HandleSystemState)).Methods(http.MethodGet)
	r.Handle("/health", http.HandlerFunc(c.HandleHealth)).Methods(http.MethodGet)

	return r, nil
}

// CountRequests tallies every request against its route. It wraps the router
// rather than registering on it, so unmatched paths still land in the
// "other" bucket.
func (c *Controller) CountRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		counter, ok := c.requests.Load(r.URL.Path)
		if !ok {
			counter, _ = c.requests.Load(routeOther)
		}
		if counter != nil {
			counter.Add(1)
		}
		next.ServeHTTP(w, r)
	})
}

// RequestCounts snapshots the per-route request tallies.
func (c *Controller) RequestCounts() map[string]int64 {
	out := make(map[string]int64)
	c.requests.Range(func(route string, n *atomic.Int64) bool {
		out[route] = n.Load()
		return true
	})
	return out
}

// WithCORS is a middleware that adds CORS headers to the response.
func WithCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		if origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
		} else {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept")
		w.Header().Set("Access-Control-Allow-Methods", http.MethodGet+", "+http.MethodOptions)

		// Fast-path the preflight
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
