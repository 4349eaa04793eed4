package report

import (
	"encoding/json"
	"io"

	"github.com/unbound-force/discern/internal/taxonomy"
)

// WriteJSON writes the classification result as formatted JSON. The
// output conforms to the embedded result schema.
func WriteJSON(w io.Writer, result *taxonomy.ClassificationResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
