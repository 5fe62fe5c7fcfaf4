// Package service implements the rule-based symptom analysis engine:
// entity extraction, diagnosis scoring, and normalization of external
// model output into the canonical result schema.
package service

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/symptom-checker-server/internal/domain"
)

// RandomSource yields values in [0,1) used for confidence jitter.
// Production uses the shared math/rand source; tests inject a seeded
// or constant source to make confidence values reproducible.
type RandomSource interface {
	Float64() float64
}

// systemRandom draws from the top-level math/rand functions, which are
// safe for concurrent use.
type systemRandom struct{}

func (systemRandom) Float64() float64 { return rand.Float64() }

// Engine is the rule-based analysis engine. It is stateless apart from
// the immutable knowledge tables and the jitter source, and is safe
// for concurrent use.
type Engine struct {
	logger *logrus.Logger
	rand   RandomSource
}

// NewEngine creates an engine with the default random source.
func NewEngine(logger *logrus.Logger) *Engine {
	return NewEngineWithRandom(logger, systemRandom{})
}

// NewEngineWithRandom creates an engine with an injected jitter source.
func NewEngineWithRandom(logger *logrus.Logger, src RandomSource) *Engine {
	return &Engine{
		logger: logger,
		rand:   src,
	}
}

// Analyze runs entity extraction and diagnosis scoring over the given
// symptom text and assembles a complete diagnostic result. It never
// fails: inputs that match nothing produce the sentinel diagnosis.
// This is the guaranteed terminal fallback when external providers are
// unavailable.
func (e *Engine) Analyze(symptoms, language string) *domain.DiagnosticResult {
	entities := e.ExtractEntities(symptoms, language)
	diagnoses := e.Score(symptoms, language)

	result := &domain.DiagnosticResult{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Language:  language,
		Symptoms:  symptoms,
		Diagnoses: diagnoses,
		Entities:  entities,
	}

	e.logger.WithFields(logrus.Fields{
		"result_id": result.ID,
		"language":  language,
		"entities":  len(entities),
		"diagnoses": len(diagnoses),
	}).Debug("Completed rule-based analysis")

	return result
}

// jitter returns a value in [0, span) from the engine's random source.
func (e *Engine) jitter(span float64) float64 {
	return e.rand.Float64() * span
}
