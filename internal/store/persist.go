package store

import (
	"encoding/json"
	"time"
)

// dateKeys are the field names revived from string to timestamp when a
// blob is loaded, wherever they appear in the tree.
var dateKeys = map[string]bool{
	"createdAt":   true,
	"updatedAt":   true,
	"completedAt": true,
	"timestamp":   true,
	"startTime":   true,
	"endTime":     true,
}

func encodeState(state *State) ([]byte, error) {
	return json.Marshal(state)
}

// decodeState loads a persisted blob. The raw tree is walked first so
// that malformed date strings degrade to null instead of failing the
// whole load; the cleaned tree then unmarshals into the typed state.
func decodeState(blob []byte) (*State, error) {
	var raw any
	if err := json.Unmarshal(blob, &raw); err != nil {
		return nil, err
	}
	raw = reviveDates(raw)

	clean, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}
	var state State
	if err := json.Unmarshal(clean, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// reviveDates canonicalizes every date-named leaf in the tree. Strings
// that do not parse become null, which the typed decode treats as
// unset. A "date" key is only canonicalized when it parses: day keys
// like 2026-08-28 are plain strings and must pass through untouched.
func reviveDates(v any) any {
	switch node := v.(type) {
	case []any:
		for i, item := range node {
			node[i] = reviveDates(item)
		}
		return node
	case map[string]any:
		for k, item := range node {
			switch {
			case dateKeys[k]:
				node[k] = reviveDateValue(item)
			case k == "date":
				if s, ok := item.(string); ok {
					if t, err := time.Parse(time.RFC3339, s); err == nil {
						node[k] = t.Format(time.RFC3339Nano)
					}
				}
			default:
				node[k] = reviveDates(item)
			}
		}
		return node
	default:
		return v
	}
}

func reviveDateValue(v any) any {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil
	}
	return t.Format(time.RFC3339Nano)
}
