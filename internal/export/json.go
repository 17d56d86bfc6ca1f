package export

import (
	"encoding/json"

	"devtoolbox/internal/model"
)

// EncodeJSON renders the batch as pretty-printed JSON with 2-space indent
func EncodeJSON(batch model.Batch) ([]byte, error) {
	body, err := json.MarshalIndent(batch, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(body, '\n'), nil
}
