package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/symptom-checker-server/internal/domain"
)

// Confidence bounds applied to model-reported values. Models are
// never trusted to report certainty, hence the 0.99 ceiling.
const (
	normalizedConfidenceDefault = 0.3
	normalizedConfidenceMax     = 0.99
)

const defaultRecommendation = "Consult a healthcare professional"

// Normalize coerces an arbitrary decoded JSON object from a language
// model into a well-formed DiagnosticResult. Missing or malformed
// fields are replaced with safe defaults rather than rejected; an
// object with no usable diagnoses yields the no-match sentinel. The
// result always carries a fresh identifier and timestamp.
func Normalize(symptoms, language string, raw map[string]any) *domain.DiagnosticResult {
	result := &domain.DiagnosticResult{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Language:  language,
		Symptoms:  symptoms,
		Diagnoses: normalizeDiagnoses(raw["diagnoses"]),
		Entities:  normalizeEntities(raw["entities"]),
	}
	return result
}

func normalizeDiagnoses(v any) []domain.Diagnosis {
	items, _ := v.([]any)
	diagnoses := make([]domain.Diagnosis, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		condition := strings.TrimSpace(coerceString(obj["condition"]))
		if condition == "" {
			condition = domain.NoMatchCondition
		}
		description := strings.TrimSpace(coerceString(obj["description"]))
		if description == "" {
			description = "Condition requires clinical assessment."
		}
		diagnoses = append(diagnoses, domain.Diagnosis{
			Condition:       condition,
			Confidence:      clampConfidence(obj["confidence"]),
			Description:     description,
			Recommendations: normalizeRecommendations(obj["recommendations"]),
		})
		if len(diagnoses) == domain.MaxDiagnoses {
			break
		}
	}

	if len(diagnoses) == 0 {
		diagnoses = append(diagnoses, domain.Diagnosis{
			Condition:   domain.NoMatchCondition,
			Confidence:  domain.NoMatchConfidence,
			Description: "The submitted symptom text could not be confidently matched to known conditions.",
			Recommendations: []string{
				"Use clearer symptom wording",
				"Add severity and duration details",
				"Consult a healthcare professional for proper diagnosis",
			},
		})
	}
	return diagnoses
}

func normalizeRecommendations(v any) []string {
	items, _ := v.([]any)
	recs := make([]string, 0, len(items))
	for _, item := range items {
		text := strings.TrimSpace(coerceString(item))
		if text == "" {
			continue
		}
		recs = append(recs, text)
		if len(recs) == domain.MaxRecommendations {
			break
		}
	}
	if len(recs) == 0 {
		recs = append(recs, defaultRecommendation)
	}
	return recs
}

func normalizeEntities(v any) []domain.Entity {
	items, _ := v.([]any)
	entities := make([]domain.Entity, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		text := strings.TrimSpace(coerceString(obj["text"]))
		if text == "" {
			continue
		}
		entityType := coerceString(obj["type"])
		if !domain.ValidEntityType(entityType) {
			entityType = string(domain.EntitySymptom)
		}
		entities = append(entities, domain.Entity{
			Text:       text,
			Type:       domain.EntityType(entityType),
			Confidence: clampConfidence(obj["confidence"]),
		})
	}
	return entities
}

// clampConfidence accepts whatever the model put in a confidence slot
// and maps it into [0, 0.99], defaulting anything non-numeric to 0.3.
func clampConfidence(v any) float64 {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case int:
		f = float64(n)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return normalizedConfidenceDefault
		}
		f = parsed
	default:
		return normalizedConfidenceDefault
	}
	return clamp(f, 0, normalizedConfidenceMax)
}

func coerceString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprintf("%v", s)
	}
}
