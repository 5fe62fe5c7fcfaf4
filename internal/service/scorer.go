package service

import (
	"math"
	"sort"
	"strings"

	"github.com/symptom-checker-server/internal/domain"
	"github.com/symptom-checker-server/internal/knowledge"
)

// Scoring constants for converting keyword match counts to confidence.
const (
	scoreConfidenceBase = 0.40
	scoreConfidenceStep = 0.20
	scoreConfidenceMin  = 0.30
	scoreConfidenceMax  = 0.95
	scoreJitterSpan     = 0.10 // symmetric, so ±0.05
)

// placeholder display data for condition identifiers missing from the
// catalog entirely.
const (
	placeholderDescription    = "A medical condition requiring professional evaluation."
	placeholderRecommendation = "Consult a healthcare professional"
)

// Score matches the text against the knowledge base for the given
// language and converts per-condition match counts into at most three
// ranked diagnoses. It never fails; when nothing matches it returns
// exactly the sentinel diagnosis. Ties rank by the order in which
// conditions were first encountered during scoring.
func (e *Engine) Score(text, language string) []domain.Diagnosis {
	lower := strings.ToLower(text)
	pack := knowledge.Pack(language)

	scores := make(map[string]int)
	var order []string
	for _, kw := range pack.Keywords {
		if !strings.Contains(lower, strings.ToLower(kw.Phrase)) {
			continue
		}
		for _, id := range kw.Conditions {
			if _, seen := scores[id]; !seen {
				order = append(order, id)
			}
			scores[id]++
		}
	}

	if len(order) == 0 {
		return []domain.Diagnosis{sentinelDiagnosis()}
	}

	diagnoses := make([]domain.Diagnosis, 0, len(order))
	for _, id := range order {
		base := math.Min(scoreConfidenceMax, scoreConfidenceBase+scoreConfidenceStep*float64(scores[id]))
		variation := (e.rand.Float64() - 0.5) * scoreJitterSpan
		confidence := clamp(base+variation, scoreConfidenceMin, scoreConfidenceMax)
		diagnoses = append(diagnoses, e.resolveCondition(id, language, confidence))
	}

	sort.SliceStable(diagnoses, func(i, j int) bool {
		return diagnoses[i].Confidence > diagnoses[j].Confidence
	})

	if len(diagnoses) > domain.MaxDiagnoses {
		diagnoses = diagnoses[:domain.MaxDiagnoses]
	}
	return diagnoses
}

// resolveCondition looks up display data for a condition identifier,
// falling back to the default language and finally to a generic
// placeholder for unknown identifiers.
func (e *Engine) resolveCondition(id, language string, confidence float64) domain.Diagnosis {
	info, ok := knowledge.Condition(id, language)
	if !ok {
		return domain.Diagnosis{
			Condition:       id,
			Confidence:      confidence,
			Description:     placeholderDescription,
			Recommendations: []string{placeholderRecommendation},
		}
	}
	return domain.Diagnosis{
		Condition:       info.Name,
		Confidence:      confidence,
		Description:     info.Description,
		Recommendations: info.Recommendations,
	}
}

// sentinelDiagnosis is returned alone whenever no condition scored.
func sentinelDiagnosis() domain.Diagnosis {
	return domain.Diagnosis{
		Condition:   domain.NoMatchCondition,
		Confidence:  domain.NoMatchConfidence,
		Description: "The current symptom text does not match known patterns in this demo knowledge base.",
		Recommendations: []string{
			"Try describing key symptoms directly (for example: fever, cough, chest pain)",
			"Include duration and severity (for example: 3 days, severe)",
			"Consult a healthcare professional for proper diagnosis",
		},
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
