package providers

import (
	"encoding/json"
	"strings"
)

// BuildPrompt assembles the instruction prompt sent to generative
// backends. Both providers share it so their outputs normalize
// identically. The symptom text is JSON-encoded rather than
// interpolated so that user input cannot break out of the schema
// instructions.
func BuildPrompt(symptoms, language string) string {
	input, _ := json.Marshal(struct {
		Symptoms string `json:"symptoms"`
		Language string `json:"language"`
	}{symptoms, language})
	lines := []string{
		"Return ONLY strict JSON. No markdown.",
		"Extract medical symptom entities and suggest up to 3 possible conditions.",
		"Do not claim certainty. Use conservative confidence scores (0-0.99).",
		"Schema:",
		`{"entities":[{"text":"string","type":"symptom|body_part|duration|severity","confidence":0.0}],`,
		`"diagnoses":[{"condition":"string","confidence":0.0,"description":"string","recommendations":["string"]}]}`,
		"Input: " + string(input),
	}
	return strings.Join(lines, "\n")
}
