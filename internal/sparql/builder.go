package sparql

import (
	"fmt"
	"regexp"
	"strings"

	straatnamen "github.com/goudatijdmachine/straatnamen-api"
)

const prefixBlock = `PREFIX gtm: <https://www.goudatijdmachine.nl/def#>
PREFIX sdo: <https://schema.org/>
PREFIX o: <http://omeka.org/s/vocabs/o#>
PREFIX geo: <http://www.opengis.net/ont/geosparql#>
PREFIX rico: <https://www.ica.org/standards/RiC/ontology#>
`

const (
	itemSetCurrent    = "https://n2t.net/ark:/60537/biWGGg"
	itemSetHistorical = "https://n2t.net/ark:/60537/bd75pg"
)

// photosQueryLimit caps the photos query; pagination over the window happens
// client-side after mapping.
const photosQueryLimit = 50

var (
	searchAllowed = regexp.MustCompile(`[^A-Za-z\- ']`)
	doubleSpace   = regexp.MustCompile(`  `)
)

// SanitizeSearch restricts free-text input to letters, space, hyphen and
// apostrophe. The sanitized text is embedded into a regex filter as literal
// query text, so this allow-list is the injection defense.
func SanitizeSearch(q string) string {
	return searchAllowed.ReplaceAllString(strings.TrimSpace(q), "")
}

// itemSetFilter narrows item-set membership according to the type filter.
// TypeAll keeps the base two-set membership condition.
func itemSetFilter(t straatnamen.StreetType) string {
	switch t {
	case straatnamen.TypeCurrent:
		return fmt.Sprintf("  FILTER(?itemset = <%s>)\n", itemSetCurrent)
	case straatnamen.TypeHistorical:
		return fmt.Sprintf("  FILTER(?itemset = <%s>)\n", itemSetHistorical)
	default:
		return fmt.Sprintf("  FILTER(?itemset IN (\n    <%s>,\n    <%s>\n  ))\n", itemSetCurrent, itemSetHistorical)
	}
}

func typeBind() string {
	return fmt.Sprintf("  BIND(\n    IF(?itemset = <%s>, \"heden\", \"verdwenen\")\n    AS ?type\n  )\n", itemSetCurrent)
}

// StreetIndex builds the paged street listing query. The free-text term must
// already be sanitized; it is embedded as a case-insensitive regex filter on
// the name. Alternate names are aggregated into a single |-joined value per
// street. Results are ordered by name so pagination is deterministic.
func StreetIndex(f straatnamen.Filter) string {
	search := ""
	if f.Query != "" {
		search = fmt.Sprintf("  FILTER regex(STR(?naam), \"%s\", \"i\")\n", f.Query)
	}

	body := fmt.Sprintf(`
SELECT ?identifier ?naam ?geometry ?type (GROUP_CONCAT(DISTINCT ?altname;
    separator="|") AS ?naam_alt) WHERE {
  ?identifier a gtm:Straat;
              o:item_set ?itemset ;
              sdo:name ?naam .
%s
%s
%s  OPTIONAL { ?identifier geo:hasGeometry/geo:asWKT ?geometry }
  OPTIONAL { ?identifier sdo:alternateName ?altname }
}
GROUP BY ?identifier ?naam ?geometry ?type
ORDER BY ?naam
LIMIT %d OFFSET %d`, itemSetFilter(f.Type), typeBind(), search, f.Limit, f.Offset)

	return finalize(body)
}

// StreetDetail builds the single-street query for the given subject URI.
// Alternate names are aggregated the same way as in the index query so the
// mapper sees one |-joined value.
func StreetDetail(identifier string) string {
	body := fmt.Sprintf(`
SELECT ?identifier ?naam ?type ?vermeldingen ?genoemd_naar ?ligging ?geometry
    (GROUP_CONCAT(DISTINCT ?altname; separator="|") AS ?alt_names) WHERE {
  BIND(<%s> AS ?identifier)
  ?identifier a gtm:Straat ;
              o:item_set ?itemset ;
              sdo:name ?naam .
%s
%s
  OPTIONAL { ?identifier sdo:mentions ?vermeldingen }
  OPTIONAL { ?identifier gtm:genoemdNaar ?genoemd_naar }
  OPTIONAL { ?identifier gtm:ligging ?ligging }
  OPTIONAL { ?identifier geo:hasGeometry/geo:asWKT ?geometry }
  OPTIONAL { ?identifier sdo:alternateName ?altname }
}
GROUP BY ?identifier ?naam ?type ?vermeldingen ?genoemd_naar ?ligging ?geometry`,
		identifier, itemSetFilter(straatnamen.TypeAll), typeBind())

	return finalize(body)
}

// PhotosByStreet builds the photos query for the given street URI, ordered by
// creation date then title, capped at the internal window limit.
func PhotosByStreet(identifier string) string {
	body := fmt.Sprintf(`
SELECT * WHERE {
  BIND(<%s> AS ?straat)
    ?identifier sdo:spatialCoverage/gtm:straat ?straat ;
      sdo:name ?titel ;
      sdo:url ?url ;
      sdo:dateCreated/rico:hasBeginningDate/rico:normalizedDateValue ?datering ;
      o:primary_media/o:source ?iiif_info_json ;
      o:media/sdo:thumbnailUrl ?thumbnail .
    OPTIONAL { ?identifier gtm:informatieAuteursRechten ?informatie_auteursrechten }
    OPTIONAL { ?identifier sdo:creator ?vervaardiger }
}
ORDER BY ASC(?datering) ?titel
LIMIT %d`, identifier, photosQueryLimit)

	return finalize(body)
}

// finalize prepends the prefix block and collapses double spaces. The
// collapsed text is what gets hashed for the cache key, so this normalization
// must stay deterministic.
func finalize(body string) string {
	return doubleSpace.ReplaceAllString(prefixBlock+body, " ")
}
