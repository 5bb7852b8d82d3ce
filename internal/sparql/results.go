package sparql

import (
	"encoding/json"

	"github.com/goudatijdmachine/straatnamen-api/internal/domain"
)

// Binding is one typed cell of a result row.
type Binding struct {
	Type     string `json:"type"`
	Value    string `json:"value"`
	Datatype string `json:"datatype,omitempty"`
	Lang     string `json:"xml:lang,omitempty"`
}

// Row maps variable names to their bound values. Optional variables are
// simply absent from the map.
type Row map[string]Binding

// Value returns the bound value for name, or "" when the variable is unbound.
func (r Row) Value(name string) string {
	return r[name].Value
}

// Lookup returns the bound value for name and whether it was bound at all.
// An empty literal is still a bound value.
func (r Row) Lookup(name string) (string, bool) {
	b, ok := r[name]
	return b.Value, ok
}

type resultsEnvelope struct {
	Results struct {
		Bindings []Row `json:"bindings"`
	} `json:"results"`
}

// DecodeResults parses a SPARQL JSON results body into its binding rows,
// preserving the row order the store returned. Malformed JSON yields a
// DecodeError.
func DecodeResults(data []byte) ([]Row, error) {
	var envelope resultsEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, domain.DecodeError{Err: err}
	}
	return envelope.Results.Bindings, nil
}
