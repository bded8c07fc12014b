package restapi

import (
	"tripsplit.mtransit.org/internal/models"
)

// buildReferences collects the feed agencies and the given routes. Routes
// missing from the feed are skipped and routes without any color are
// referenced with an empty one.
func (api *RestAPI) buildReferences(routeIDs ...string) models.ReferencesModel {
	refs := models.NewEmptyReferences()

	for _, a := range api.GtfsManager.GetAgencies() {
		refs.Agencies = append(refs.Agencies, models.NewAgencyReference(
			a.Id, a.Name, a.Url, a.Timezone, api.Presenter.AgencyColor()))
	}

	seen := make(map[string]bool, len(routeIDs))
	for _, routeID := range routeIDs {
		if seen[routeID] {
			continue
		}
		seen[routeID] = true

		route := api.GtfsManager.FindRoute(routeID)
		if route == nil {
			continue
		}
		color, _ := api.Presenter.RouteColor(*route)
		refs.Routes = append(refs.Routes, models.NewRouteReference(
			route.Id, api.Presenter.RouteShortName(*route), route.LongName, color))
	}

	return refs
}
