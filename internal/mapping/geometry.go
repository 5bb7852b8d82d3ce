package mapping

import (
	"github.com/paulmach/orb/encoding/wkt"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

// Geometry parses a WKT literal into a GeoJSON geometry.
func Geometry(literal string) (*geojson.Geometry, error) {
	g, err := wkt.Unmarshal(literal)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse wkt")
	}
	return geojson.NewGeometry(g), nil
}
