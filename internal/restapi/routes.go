package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func validateAPIKey(api *RestAPI, finalHandler http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		finalHandler(w, r)
	})
}

// SetRoutes registers the API endpoints on router.
func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	router.Handler(http.MethodGet, "/api/where/current-time.json", validateAPIKey(api, api.currentTimeHandler))
	router.Handler(http.MethodGet, "/api/where/route-trip-specs.json", validateAPIKey(api, api.routeTripSpecsHandler))
	router.Handler(http.MethodGet, "/api/where/route-trip-spec/:id", validateAPIKey(api, api.routeTripSpecHandler))
	router.Handler(http.MethodGet, "/api/where/trip-classification/:id", validateAPIKey(api, api.tripClassificationHandler))
	router.Handler(http.MethodGet, "/api/where/route-colors/:id", validateAPIKey(api, api.routeColorsHandler))
}

// Handler returns the API behind its middleware chain. Requests are logged
// first and rate limited last, so rejected requests still show up in the log.
func (api *RestAPI) Handler(router *httprouter.Router) http.Handler {
	var handler http.Handler = router
	if api.rateLimiter != nil {
		handler = api.rateLimiter.Handler(handler)
	}
	handler = CompressionMiddleware(handler)
	handler = api.WithSecurityHeaders(handler)
	return NewRequestLoggingMiddleware(api.Logger)(handler)
}
