package restapi

import (
	"net/http"

	"tripsplit.mtransit.org/internal/models"
	"tripsplit.mtransit.org/internal/utils"
)

func (api *RestAPI) routeTripSpecHandler(w http.ResponseWriter, r *http.Request) {
	routeID, fieldErrors := utils.ExtractValidatedID(r, "id")
	if fieldErrors != nil {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	spec, ok := api.Engine.Table().Lookup(routeID)
	if !ok {
		api.sendNotFound(w, r)
		return
	}

	directions, err := api.Engine.BuildDirections(routeID)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	entry := models.NewRouteTripSpecEntry(spec, directions)
	api.sendResponse(w, r, models.NewEntryResponse(entry, api.buildReferences(routeID)))
}
