package restapi

import (
	"net/http"

	"tripsplit.mtransit.org/internal/models"
)

// routeTripSpecsHandler lists every route covered by the spec table.
func (api *RestAPI) routeTripSpecsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if ctx.Err() != nil {
		api.serverErrorResponse(w, r, ctx.Err())
		return
	}

	table := api.Engine.Table()
	routeIDs := table.RouteIDs()
	entries := make([]models.RouteTripSpecEntry, 0, len(routeIDs))
	for _, routeID := range routeIDs {
		spec, _ := table.Lookup(routeID)
		directions, err := api.Engine.BuildDirections(routeID)
		if err != nil {
			api.serverErrorResponse(w, r, err)
			return
		}
		entries = append(entries, models.NewRouteTripSpecEntry(spec, directions))
	}

	api.sendResponse(w, r, models.NewListResponse(entries, api.buildReferences(routeIDs...)))
}
