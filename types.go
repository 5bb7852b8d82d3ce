package straatnamen

import (
	"github.com/paulmach/orb/geojson"
)

// StreetType classifies a street by its item-set membership in the graph.
type StreetType string

const (
	TypeAll        StreetType = "alle"
	TypeCurrent    StreetType = "heden"
	TypeHistorical StreetType = "verdwenen"
)

// Valid reports whether the type is one of the accepted filter values.
func (t StreetType) Valid() bool {
	return t == TypeAll || t == TypeCurrent || t == TypeHistorical
}

// Street is one street record from the knowledge graph.
//
// AlternateNames is nil exactly when the source field was absent, never an
// empty slice. Geometry is nil when the graph carries no WKT literal for the
// street. Type is always "heden" or "verdwenen"; it is derived inside the
// query itself and never left unset.
type Street struct {
	Identifier          string            `json:"identifier"`
	Name                string            `json:"name"`
	AlternateNames      []string          `json:"alternateNames"`
	NamedAfter          *string           `json:"namedAfter,omitempty"`
	LocationDescription *string           `json:"locationDescription,omitempty"`
	Mentions            *string           `json:"mentions,omitempty"`
	Geometry            *geojson.Geometry `json:"geometry,omitempty"`
	Type                StreetType        `json:"type"`
	Photos              []Photo           `json:"photos,omitempty"`
}

// Photo is one photograph depicting a street.
//
// ImageURL is derived from the IIIF descriptor URL and is the empty string
// (not null) when no descriptor is present. SourceOrganization is inferred
// from the source URL and is always one of exactly two values.
type Photo struct {
	Identifier         string  `json:"identifier"`
	Title              string  `json:"title"`
	ThumbnailURL       string  `json:"thumbnailUrl"`
	ImageURL           string  `json:"imageUrl"`
	IIIFInfoURL        string  `json:"iiifInfoUrl"`
	Creator            *string `json:"creator"`
	CopyrightInfo      *string `json:"copyrightInfo"`
	SourceURL          *string `json:"sourceUrl"`
	DateCreated        *string `json:"dateCreated"`
	SourceOrganization string  `json:"sourceOrganization"`
}

// SearchResult is the envelope for a street search.
type SearchResult struct {
	Streets []Street `json:"streets"`
	Total   int      `json:"total"`
}

// PhotoPage is one offset/limit window over a street's photos. Total is the
// full count before slicing, so a page beyond the end still reports how many
// photos exist.
type PhotoPage struct {
	Total  int     `json:"total"`
	Photos []Photo `json:"photos"`
}

// Filter carries caller-supplied search parameters for the street index.
// Lat/Lon are accepted for forward compatibility but not used by query
// construction.
type Filter struct {
	Query  string
	Limit  int
	Offset int
	Type   StreetType
	Lat    float64
	Lon    float64
}
