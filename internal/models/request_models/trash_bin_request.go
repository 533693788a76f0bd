package request_models

import (
	"bytes"
	"encoding/json"
)

// Coordinate keeps a latitude or longitude exactly as the client typed it.
// Both JSON strings and JSON numbers are accepted; parsing happens in the
// domain so that bad input is reported as a validation error.
type Coordinate string

func (c *Coordinate) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*c = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = Coordinate(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*c = Coordinate(n.String())
	return nil
}

type TrashBinRequest struct {
	Name      string     `json:"name"`
	BinCode   string     `json:"bin_code"`
	Latitude  Coordinate `json:"latitude"`
	Longitude Coordinate `json:"longitude"`
}
