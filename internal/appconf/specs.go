package appconf

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"tripsplit.mtransit.org/internal/tripspec"
	"tripsplit.mtransit.org/internal/utils"
)

//go:embed whitehorse.yml
var defaultSpecFile []byte

// ErrUnknownHeading is returned for a direction heading outside the known set.
var ErrUnknownHeading = errors.New("unknown direction heading")

type AgencyConfig struct {
	Name  string `yaml:"name" validate:"required"`
	Color string `yaml:"color" validate:"required,len=6,hexadecimal"`
}

type DirectionConfig struct {
	Label   string   `yaml:"label" validate:"required"`
	Heading string   `yaml:"heading" validate:"omitempty,oneof=north south east west inbound outbound clockwise counterclockwise"`
	Anchors []string `yaml:"anchors" validate:"required,min=1,dive,required"`
}

// RouteConfig is one route of the spec file. A route without directions
// only contributes presentation data such as its color.
type RouteConfig struct {
	RouteID  string           `yaml:"route_id" validate:"required"`
	Color    string           `yaml:"color" validate:"omitempty,len=6,hexadecimal"`
	Forward  *DirectionConfig `yaml:"forward" validate:"omitempty"`
	Backward *DirectionConfig `yaml:"backward" validate:"omitempty"`
}

// SpecFile is the YAML document describing an agency and its route trip specs.
type SpecFile struct {
	Agency AgencyConfig  `yaml:"agency" validate:"required"`
	Routes []RouteConfig `yaml:"routes" validate:"dive"`
}

// RouteSpecs is a loaded and validated spec file.
type RouteSpecs struct {
	Source      string
	AgencyName  string
	AgencyColor string
	RouteColors map[string]string
	Table       *tripspec.Table
}

// DefaultRouteSpecs returns the embedded Whitehorse Transit specs.
func DefaultRouteSpecs() (*RouteSpecs, error) {
	return ParseRouteSpecs("embedded:whitehorse.yml", defaultSpecFile)
}

// LoadRouteSpecs reads the spec file at path. An empty path loads the
// embedded default.
func LoadRouteSpecs(path string) (*RouteSpecs, error) {
	if path == "" {
		return DefaultRouteSpecs()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading route spec file: %w", err)
	}
	return ParseRouteSpecs(path, data)
}

// ParseRouteSpecs decodes and validates a spec document and builds its table.
func ParseRouteSpecs(source string, data []byte) (*RouteSpecs, error) {
	var file SpecFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("error parsing route spec file %s: %w", source, err)
	}

	v := validator.New()
	if err := v.Struct(file); err != nil {
		return nil, fmt.Errorf("invalid route spec file %s: %w", source, err)
	}
	for _, route := range file.Routes {
		for _, dc := range []*DirectionConfig{route.Forward, route.Backward} {
			if dc == nil {
				continue
			}
			if err := v.Struct(dc); err != nil {
				return nil, fmt.Errorf("invalid route spec file %s: route %s: %w", source, route.RouteID, err)
			}
		}
	}

	specs := &RouteSpecs{
		Source:      source,
		AgencyName:  utils.SanitizeInput(file.Agency.Name),
		AgencyColor: file.Agency.Color,
		RouteColors: make(map[string]string, len(file.Routes)),
	}

	var entries []tripspec.RouteTripSpec
	seen := make(map[string]bool, len(file.Routes))
	for _, route := range file.Routes {
		if seen[route.RouteID] {
			return nil, fmt.Errorf("invalid route spec file %s: route %s: %w", source, route.RouteID, tripspec.ErrDuplicateRoute)
		}
		seen[route.RouteID] = true
		if route.Color != "" {
			specs.RouteColors[route.RouteID] = route.Color
		}
		if route.Forward == nil && route.Backward == nil {
			continue
		}
		entry := tripspec.RouteTripSpec{RouteID: route.RouteID}
		var err error
		if entry.Forward, err = route.Forward.toDirectionSpec(); err != nil {
			return nil, fmt.Errorf("invalid route spec file %s: route %s forward: %w", source, route.RouteID, err)
		}
		if entry.Backward, err = route.Backward.toDirectionSpec(); err != nil {
			return nil, fmt.Errorf("invalid route spec file %s: route %s backward: %w", source, route.RouteID, err)
		}
		entries = append(entries, entry)
	}

	table, err := tripspec.NewTable(entries...)
	if err != nil {
		return nil, fmt.Errorf("invalid route spec file %s: %w", source, err)
	}
	specs.Table = table
	return specs, nil
}

func (dc *DirectionConfig) toDirectionSpec() (*tripspec.DirectionSpec, error) {
	if dc == nil {
		return nil, nil
	}
	heading, err := ParseHeading(dc.Heading)
	if err != nil {
		return nil, err
	}
	return &tripspec.DirectionSpec{
		Label:   utils.SanitizeInput(dc.Label),
		Heading: heading,
		Anchors: dc.Anchors,
	}, nil
}

// ParseHeading maps a spec file heading onto tripspec.Heading.
func ParseHeading(s string) (tripspec.Heading, error) {
	switch h := tripspec.Heading(s); h {
	case tripspec.HeadingNone, tripspec.HeadingNorth, tripspec.HeadingSouth,
		tripspec.HeadingEast, tripspec.HeadingWest,
		tripspec.HeadingInbound, tripspec.HeadingOutbound,
		tripspec.HeadingClockwise, tripspec.HeadingCounterclockwise:
		return h, nil
	default:
		return tripspec.HeadingNone, fmt.Errorf("%q: %w", s, ErrUnknownHeading)
	}
}
