package restapi

import (
	"net/http"

	"tripsplit.mtransit.org/internal/models"
	"tripsplit.mtransit.org/internal/utils"
)

func (api *RestAPI) routeColorsHandler(w http.ResponseWriter, r *http.Request) {
	routeID, fieldErrors := utils.ExtractValidatedID(r, "id")
	if fieldErrors != nil {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	route := api.GtfsManager.FindRoute(routeID)
	if route == nil {
		api.sendNotFound(w, r)
		return
	}

	// A route with neither a feed color nor a mapped one is a gap in the
	// spec file, reported as a server error.
	color, err := api.Presenter.RouteColor(*route)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	entry := models.RouteColorsEntry{
		RouteID:     route.Id,
		ShortName:   api.Presenter.RouteShortName(*route),
		Color:       color,
		AgencyColor: api.Presenter.AgencyColor(),
	}
	api.sendResponse(w, r, models.NewEntryResponse(entry, api.buildReferences(routeID)))
}
