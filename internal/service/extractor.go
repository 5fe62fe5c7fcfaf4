package service

import (
	"strings"

	"github.com/symptom-checker-server/internal/domain"
	"github.com/symptom-checker-server/internal/knowledge"
)

// Confidence bands for extracted entities. Each entity's confidence is
// the band floor plus random jitter across the band width.
const (
	symptomConfidenceBase  = 0.85
	symptomConfidenceSpan  = 0.10
	bodyPartConfidenceBase = 0.75
	bodyPartConfidenceSpan = 0.15
	durationConfidenceBase = 0.90
	durationConfidenceSpan = 0.10
	severityConfidenceBase = 0.80
	severityConfidenceSpan = 0.15
)

// ExtractEntities scans the text against the knowledge base for the
// given language and emits typed entities for every match. Matching is
// case-insensitive substring containment with no word-boundary
// enforcement, so phrases inside larger words also match. Overlapping
// matches are not deduplicated. Unknown languages fall back to the
// default language pack.
func (e *Engine) ExtractEntities(text, language string) []domain.Entity {
	var entities []domain.Entity
	lower := strings.ToLower(text)
	pack := knowledge.Pack(language)

	for _, kw := range pack.Keywords {
		if !strings.Contains(lower, strings.ToLower(kw.Phrase)) {
			continue
		}
		entities = append(entities, domain.Entity{
			Text:       kw.Phrase,
			Type:       domain.EntitySymptom,
			Confidence: symptomConfidenceBase + e.jitter(symptomConfidenceSpan),
		})
		// The generic "body" placeholder carries no locational signal.
		if kw.BodyPart != "" && kw.BodyPart != knowledge.GenericBodyPart {
			entities = append(entities, domain.Entity{
				Text:       kw.BodyPart,
				Type:       domain.EntityBodyPart,
				Confidence: bodyPartConfidenceBase + e.jitter(bodyPartConfidenceSpan),
			})
		}
	}

	for _, re := range pack.DurationPatterns {
		for _, match := range re.FindAllString(text, -1) {
			entities = append(entities, domain.Entity{
				Text:       match,
				Type:       domain.EntityDuration,
				Confidence: durationConfidenceBase + e.jitter(durationConfidenceSpan),
			})
		}
	}

	for _, word := range pack.SeverityWords {
		if strings.Contains(lower, strings.ToLower(word)) {
			entities = append(entities, domain.Entity{
				Text:       word,
				Type:       domain.EntitySeverity,
				Confidence: severityConfidenceBase + e.jitter(severityConfidenceSpan),
			})
		}
	}

	return entities
}
