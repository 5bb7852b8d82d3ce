// Package mapping turns SPARQL binding rows into domain records. All
// functions are pure: optional fields map to nil or a sentinel, never an
// error, and the input row order is preserved.
package mapping

import (
	"strings"

	"github.com/paulmach/orb/geojson"

	straatnamen "github.com/goudatijdmachine/straatnamen-api"
	"github.com/goudatijdmachine/straatnamen-api/internal/sparql"
)

const alternateNameSeparator = "|"

// SplitAlternateNames splits the store's aggregated |-joined alternate-name
// value. Empty input yields nil, never an empty slice.
func SplitAlternateNames(joined string) []string {
	if joined == "" {
		return nil
	}
	return strings.Split(joined, alternateNameSeparator)
}

func optional(row sparql.Row, name string) *string {
	value, ok := row.Lookup(name)
	if !ok || value == "" {
		return nil
	}
	return &value
}

// geometryOf parses the row's WKT geometry if present. Unparseable or absent
// geometry maps to nil.
func geometryOf(row sparql.Row) *geojson.Geometry {
	literal := row.Value("geometry")
	if literal == "" {
		return nil
	}
	g, err := Geometry(literal)
	if err != nil {
		return nil
	}
	return g
}

// StreetFromIndexRow maps one street-index row.
func StreetFromIndexRow(row sparql.Row) straatnamen.Street {
	return straatnamen.Street{
		Identifier:     row.Value("identifier"),
		Name:           row.Value("naam"),
		AlternateNames: SplitAlternateNames(row.Value("naam_alt")),
		Geometry:       geometryOf(row),
		Type:           straatnamen.StreetType(row.Value("type")),
	}
}

// StreetsFromRows maps a street-index result, preserving row order.
func StreetsFromRows(rows []sparql.Row) []straatnamen.Street {
	streets := make([]straatnamen.Street, 0, len(rows))
	for _, row := range rows {
		streets = append(streets, StreetFromIndexRow(row))
	}
	return streets
}

// StreetFromDetailRow maps a single-street detail row. The identifier is
// taken from the caller rather than the row so a redirected BIND cannot
// change the subject.
func StreetFromDetailRow(identifier string, row sparql.Row) straatnamen.Street {
	return straatnamen.Street{
		Identifier:          identifier,
		Name:                row.Value("naam"),
		AlternateNames:      SplitAlternateNames(row.Value("alt_names")),
		NamedAfter:          optional(row, "genoemd_naar"),
		LocationDescription: optional(row, "ligging"),
		Mentions:            optional(row, "vermeldingen"),
		Geometry:            geometryOf(row),
		Type:                straatnamen.StreetType(row.Value("type")),
	}
}

// FeatureCollectionFromRows maps index rows to a GeoJSON feature collection.
// Rows without a geometry literal are excluded rather than emitted as
// null-geometry features.
func FeatureCollectionFromRows(rows []sparql.Row) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, row := range rows {
		g := geometryOf(row)
		if g == nil {
			continue
		}
		feature := geojson.NewFeature(g.Geometry())
		feature.Properties = geojson.Properties{
			"identifier": row.Value("identifier"),
			"name":       row.Value("naam"),
			"type":       row.Value("type"),
		}
		fc.Append(feature)
	}
	return fc
}
