package mapping

import (
	"strings"

	straatnamen "github.com/goudatijdmachine/straatnamen-api"
	"github.com/goudatijdmachine/straatnamen-api/internal/sparql"
)

const (
	iiifInfoSuffix    = "info.json"
	iiifRenditionPath = "full/500,/0/default.jpg"

	copyrightNamespace = "https://samh.nl/auteursrechten#"

	archiveHost = "samh.nl"
	orgArchive  = "Streekarchief Midden-Holland"
	orgHeritage = "Rijkdienst voor het Cultureel Erfgoed"
)

// ImageURL rewrites an IIIF info descriptor URL into a directly fetchable
// sized rendition. An absent descriptor yields the empty string, not null.
func ImageURL(iiifInfoURL string) string {
	if iiifInfoURL == "" {
		return ""
	}
	return strings.Replace(iiifInfoURL, iiifInfoSuffix, iiifRenditionPath, 1)
}

// CopyrightLabel strips the copyright namespace prefix from the raw value.
func CopyrightLabel(value string) string {
	return strings.TrimPrefix(value, copyrightNamespace)
}

// SourceOrganization infers the holding organization from the photo's source
// URL. Two-way classification: the regional archive when the URL carries its
// host, the national heritage service otherwise.
func SourceOrganization(sourceURL string) string {
	if strings.Contains(sourceURL, archiveHost) {
		return orgArchive
	}
	return orgHeritage
}

// PhotoFromRow maps one photos-query row.
func PhotoFromRow(row sparql.Row) straatnamen.Photo {
	copyright := optional(row, "informatie_auteursrechten")
	if copyright != nil {
		label := CopyrightLabel(*copyright)
		copyright = &label
	}

	return straatnamen.Photo{
		Identifier:         row.Value("identifier"),
		Title:              row.Value("titel"),
		ThumbnailURL:       row.Value("thumbnail"),
		ImageURL:           ImageURL(row.Value("iiif_info_json")),
		IIIFInfoURL:        row.Value("iiif_info_json"),
		Creator:            optional(row, "vervaardiger"),
		CopyrightInfo:      copyright,
		SourceURL:          optional(row, "url"),
		DateCreated:        optional(row, "datering"),
		SourceOrganization: SourceOrganization(row.Value("url")),
	}
}

// PhotosFromRows maps a photos result, preserving row order.
func PhotosFromRows(rows []sparql.Row) []straatnamen.Photo {
	photos := make([]straatnamen.Photo, 0, len(rows))
	for _, row := range rows {
		photos = append(photos, PhotoFromRow(row))
	}
	return photos
}

// PagePhotos slices the requested offset/limit window out of the full photo
// list. The total always reflects the full list, so an offset beyond the end
// returns the count with an empty page rather than pretending the street has
// no photos.
func PagePhotos(photos []straatnamen.Photo, limit, offset int) (int, []straatnamen.Photo) {
	total := len(photos)
	if offset < 0 {
		offset = 0
	}
	if offset >= total {
		return total, []straatnamen.Photo{}
	}
	end := total
	if limit > 0 && offset+limit < total {
		end = offset + limit
	}
	return total, photos[offset:end]
}
