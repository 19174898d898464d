package render

import (
	"encoding/json"

	"github.com/ewestra/tiledict/internal/merge"
)

type jsonRenderer struct{}

func (r *jsonRenderer) Render(result *merge.Result) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}
