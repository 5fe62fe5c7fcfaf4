package providers

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractJSONObject parses a JSON object out of a model response.
// Models frequently wrap the object in conversational text or code
// fences, so after a failed direct parse it retries on the slice
// between the first '{' and the last '}'.
func ExtractJSONObject(text string) (map[string]any, error) {
	raw := strings.TrimSpace(text)
	if raw == "" {
		return nil, fmt.Errorf("model response is empty")
	}

	var parsed map[string]any
	if err := json.Unmarshal([]byte(raw), &parsed); err == nil {
		return parsed, nil
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start >= 0 && end > start {
		if err := json.Unmarshal([]byte(raw[start:end+1]), &parsed); err == nil {
			return parsed, nil
		}
	}

	return nil, fmt.Errorf("could not parse JSON from model response")
}
