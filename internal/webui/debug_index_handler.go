package webui

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/davecgh/go-spew/spew"

	"tripsplit.mtransit.org/internal/gtfs"
)

//go:embed debug_index.html
var templateFS embed.FS

var debugTemplate = template.Must(template.ParseFS(templateFS, "debug_index.html"))

// dataTypes lists the values accepted by the dataType query parameter.
var dataTypes = []string{"specs", "directions", "agencies", "routes", "trips", "feed", "stats"}

type debugData struct {
	Title     string
	Pre       string
	DataTypes []string
}

func writeDebugData(w http.ResponseWriter, title string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	err := debugTemplate.Execute(w, debugData{
		Title:     title,
		Pre:       spew.Sdump(data),
		DataTypes: dataTypes,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	dataType := r.URL.Query().Get("dataType")

	var data interface{}
	var title string

	switch dataType {
	case "specs":
		data = webUI.Specs
		title = "Route Trip Specs - " + webUI.Specs.Source
	case "directions":
		var directions []interface{}
		for _, routeID := range webUI.Engine.Table().RouteIDs() {
			rd, err := webUI.Engine.BuildDirections(routeID)
			if err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			directions = append(directions, rd)
		}
		data = directions
		title = "Route Trip Specs - Directions"
	case "agencies":
		data = webUI.GtfsManager.GetAgencies()
		title = "GTFS Static - Agencies"
	case "routes":
		data = webUI.GtfsManager.GetRoutes()
		title = "GTFS Static - Routes"
	case "trips":
		_, byRoute := gtfs.TripsByRoute(webUI.GtfsManager.GetStaticData())
		data = byRoute
		title = "GTFS Static - Trips by Route"
	case "feed":
		data = webUI.GtfsManager.Statistics()
		title = "GTFS Static - Feed"
	case "stats":
		report, err := webUI.Splitter.Split(r.Context(), webUI.GtfsManager.GetStaticData())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		data = report
		title = "Trip Split - " + report.Stats.String()
	default:
		data = map[string]interface{}{
			"error": "Please use one of the following dataType values.",
			"types": dataTypes,
		}
		title = "Choose a data type"
	}

	writeDebugData(w, title, data)
}
