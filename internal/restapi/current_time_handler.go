package restapi

import (
	"net/http"
	"time"

	"tripsplit.mtransit.org/internal/models"
)

// currentTimeHandler reports the server clock in the timezone of the first
// feed agency, which GTFS requires all agencies to share.
func (api *RestAPI) currentTimeHandler(w http.ResponseWriter, r *http.Request) {
	var timezone string
	if agencies := api.GtfsManager.GetAgencies(); len(agencies) > 0 {
		timezone = agencies[0].Timezone
	}
	data := models.NewCurrentTimeData(time.Now(), timezone, api.buildReferences())
	api.sendResponse(w, r, models.NewOKResponse(data))
}
