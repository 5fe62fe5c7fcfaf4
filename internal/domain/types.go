// Package domain contains the core business entities for multilingual
// symptom analysis: extracted entities, candidate diagnoses, and the
// diagnostic result record returned for every analysis request.
package domain

import (
	"time"
)

// EntityType classifies a span of meaning extracted from symptom text.
type EntityType string

const (
	EntitySymptom  EntityType = "symptom"
	EntityBodyPart EntityType = "body_part"
	EntityDuration EntityType = "duration"
	EntitySeverity EntityType = "severity"
)

// ValidEntityType reports whether t is one of the four recognized
// entity types.
func ValidEntityType(t string) bool {
	switch EntityType(t) {
	case EntitySymptom, EntityBodyPart, EntityDuration, EntitySeverity:
		return true
	}
	return false
}

// Entity is a typed, confidence-scored span extracted from symptom text.
// Entities are immutable once created and only ever appear embedded in
// a DiagnosticResult.
type Entity struct {
	Text       string     `json:"text"`
	Type       EntityType `json:"type"`
	Confidence float64    `json:"confidence"`
}

// Diagnosis is a candidate condition with a confidence score, a
// human-readable description, and up to five recommendations.
type Diagnosis struct {
	Condition       string   `json:"condition"`
	Confidence      float64  `json:"confidence"`
	Description     string   `json:"description"`
	Recommendations []string `json:"recommendations"`
}

// DiagnosticResult is the complete output record of one analysis
// request. It is constructed once and never mutated afterwards.
// Diagnoses are sorted by descending confidence and capped at three.
type DiagnosticResult struct {
	ID        string      `json:"id"`
	Timestamp time.Time   `json:"timestamp"`
	Language  string      `json:"language"`
	Symptoms  string      `json:"symptoms"`
	Diagnoses []Diagnosis `json:"diagnoses"`
	Entities  []Entity    `json:"entities"`
}

// AnalyzeRequest is the inbound request shape for symptom analysis.
type AnalyzeRequest struct {
	Symptoms string `json:"symptoms"`
	Language string `json:"language"`
}

// AnalysisSource identifies which inference path produced a result.
type AnalysisSource string

const (
	SourceRules  AnalysisSource = "rules"
	SourceLocal  AnalysisSource = "local"
	SourceRemote AnalysisSource = "remote"
)

// MaxDiagnoses is the maximum number of diagnoses in a result.
const MaxDiagnoses = 3

// MaxRecommendations is the maximum number of recommendations per
// diagnosis.
const MaxRecommendations = 5

// NoMatchCondition is the sentinel condition name returned when no
// known pattern matched the input.
const NoMatchCondition = "No clear match found"

// NoMatchConfidence is the fixed confidence of the sentinel diagnosis.
const NoMatchConfidence = 0.3
