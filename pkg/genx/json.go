package genx

import (
	"encoding/json"

	"github.com/kaptinlin/jsonrepair"
)

// unmarshalJSON unmarshals JSON data into v, attempting to repair malformed
// JSON. If the initial unmarshal fails with a syntax error, the data is run
// through jsonrepair before retrying. Models regularly emit trailing commas,
// fencing or single quotes; repairing is cheaper than reprompting.
func unmarshalJSON(data []byte, v any) error {
	err := json.Unmarshal(data, v)
	if err == nil {
		return nil
	}
	if _, ok := err.(*json.SyntaxError); ok {
		fixed, err := jsonrepair.JSONRepair(string(data))
		if err != nil {
			return err
		}
		return json.Unmarshal([]byte(fixed), v)
	}
	return err
}
