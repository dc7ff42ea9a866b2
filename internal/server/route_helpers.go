package server

import (
	"net/http"
	"sort"
	"strings"

	"github.com/bobmcallan/portfolio-dashboard/internal/handlers"
)

// RouteHandler is a function type for HTTP handlers.
type RouteHandler func(http.ResponseWriter, *http.Request)

// MethodRouter maps HTTP methods to handlers.
type MethodRouter map[string]RouteHandler

// RouteByMethod routes requests based on HTTP method. Unmatched methods get a
// JSON 405 listing the allowed ones.
func RouteByMethod(w http.ResponseWriter, r *http.Request, routes MethodRouter) {
	handler, ok := routes[r.Method]
	if !ok {
		allowed := make([]string, 0, len(routes))
		for m := range routes {
			allowed = append(allowed, m)
		}
		sort.Strings(allowed)
		w.Header().Set("Allow", strings.Join(allowed, ", "))
		handlers.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	handler(w, r)
}

// GetOnly wraps a read-only handler: GET and HEAD reach it, other methods
// get a 405.
func GetOnly(get RouteHandler) http.HandlerFunc {
	routes := MethodRouter{
		http.MethodGet:  get,
		http.MethodHead: get,
	}
	return func(w http.ResponseWriter, r *http.Request) {
		RouteByMethod(w, r, routes)
	}
}
