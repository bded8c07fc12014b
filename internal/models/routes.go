package models

type RouteReference struct {
	ID        string `json:"id"`
	ShortName string `json:"shortName"`
	LongName  string `json:"longName"`
	Color     string `json:"color"`
}

func NewRouteReference(id, shortName, longName, color string) RouteReference {
	return RouteReference{
		ID:        id,
		ShortName: shortName,
		LongName:  longName,
		Color:     color,
	}
}

// RouteColorsEntry is the presentation data of a route.
type RouteColorsEntry struct {
	RouteID     string `json:"routeId"`
	ShortName   string `json:"shortName"`
	Color       string `json:"color"`
	AgencyColor string `json:"agencyColor"`
}
