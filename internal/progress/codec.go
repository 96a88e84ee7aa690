package progress

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Encode serializes m as a flat JSON object of id to bool. encoding/json
// sorts map keys, so equal maps encode to identical bytes.
func Encode(m Map) ([]byte, error) {
	if m == nil {
		m = Map{}
	}
	return json.Marshal(map[string]bool(m))
}

func Decode(raw []byte) (Map, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return Map{}, nil
	}
	var out map[string]bool
	if err := json.Unmarshal(trimmed, &out); err != nil {
		return nil, fmt.Errorf("decode progress: %w", err)
	}
	if out == nil {
		// "null" decodes to a nil map
		return Map{}, nil
	}
	return Map(out), nil
}
