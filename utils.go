package straatnamen

import (
	"net/url"
	"strings"
)

// ArkPrefix is the authority prefix every street identifier must carry.
const ArkPrefix = "https://n2t.net/ark:/60537/"

// IsArkIdentifier reports whether s is a well-formed URL under the ark
// authority prefix. Identifiers failing this check are treated as unknown
// streets rather than being embedded into a query.
func IsArkIdentifier(s string) bool {
	if !strings.HasPrefix(s, ArkPrefix) {
		return false
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.Scheme == "https" && u.Host != ""
}
