// Package agency holds the presentation rules of the agency: its color and
// the color and short name of each route.
package agency

import (
	"errors"
	"fmt"
	"maps"
	"strings"

	"github.com/jamespfennell/gtfs"
)

// ErrNoRouteColor is returned for a route with no feed color and no mapped color.
var ErrNoRouteColor = errors.New("no color for route")

// unsetFeedColor is the color the GTFS parser reports when route_color is
// missing or blank.
const unsetFeedColor = "FFFFFF"

type Presenter struct {
	name        string
	color       string
	routeColors map[string]string
}

func NewPresenter(name, color string, routeColors map[string]string) *Presenter {
	return &Presenter{
		name:        name,
		color:       color,
		routeColors: maps.Clone(routeColors),
	}
}

func (p *Presenter) AgencyName() string {
	return p.name
}

func (p *Presenter) AgencyColor() string {
	return p.color
}

// RouteColor returns the feed color of route, or the mapped color when the
// feed leaves it unset. An unset color is empty or the parser's white default.
func (p *Presenter) RouteColor(route gtfs.Route) (string, error) {
	mapped, hasMapped := p.routeColors[route.Id]
	unset := route.Color == "" || strings.EqualFold(route.Color, unsetFeedColor)
	switch {
	case !unset:
		return route.Color, nil
	case hasMapped:
		return mapped, nil
	case route.Color != "":
		return route.Color, nil
	}
	return "", fmt.Errorf("route %s (%s): %w", route.Id, route.LongName, ErrNoRouteColor)
}

// RouteShortName is the route id.
func (p *Presenter) RouteShortName(route gtfs.Route) string {
	return route.Id
}
