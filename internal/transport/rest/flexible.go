package rest

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// flexString accepts a JSON string or number and keeps its text form, so
// {"id_complaint": 7} and {"id_complaint": "7"} decode the same way. Parsing
// is left to the complaint validator. null decodes to "".
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case bytes.Equal(data, []byte("null")):
		*f = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected a string or a number, got %s", data)
	}
	*f = flexString(n.String())
	return nil
}

func (f flexString) String() string { return string(f) }
