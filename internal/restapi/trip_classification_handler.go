package restapi

import (
	"errors"
	"net/http"

	"tripsplit.mtransit.org/internal/gtfs"
	"tripsplit.mtransit.org/internal/logging"
	"tripsplit.mtransit.org/internal/models"
	"tripsplit.mtransit.org/internal/tripspec"
	"tripsplit.mtransit.org/internal/utils"
)

// tripClassificationHandler classifies one feed trip and ranks its stops.
// Trips of uncovered routes are answered by the generic path and flagged as
// deferred.
func (api *RestAPI) tripClassificationHandler(w http.ResponseWriter, r *http.Request) {
	tripID, fieldErrors := utils.ExtractValidatedID(r, "id")
	if fieldErrors != nil {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	scheduled := api.GtfsManager.FindTrip(tripID)
	if scheduled == nil {
		api.sendNotFound(w, r)
		return
	}

	trip := gtfs.ConvertTrip(scheduled)
	logger := logging.FromContext(r.Context())

	classified, err := api.Engine.SplitTrip(trip.RouteID, trip)
	logging.LogSplitOutcome(logger, trip.RouteID, trip.ID, err)
	if errors.Is(err, tripspec.ErrAmbiguousDirection) {
		api.conflictResponse(w, r, err)
		return
	}
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	assignment, err := api.Engine.OrderTripStops(trip.RouteID, classified)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	entry := models.NewTripClassificationEntry(trip.RouteID, !api.Engine.HasSpec(trip.RouteID), classified, assignment)
	api.sendResponse(w, r, models.NewEntryResponse(entry, api.buildReferences(trip.RouteID)))
}
