// Package providers contains clients for external generative-model
// backends and the resolver that selects between them. Every provider
// returns results in the same canonical schema as the rule-based
// engine, normalized through the service package.
package providers

import (
	"context"

	"github.com/symptom-checker-server/internal/domain"
)

// Provider is a single model backend capable of symptom analysis.
type Provider interface {
	// Name identifies the provider in logs and error messages.
	Name() string

	// Analyze sends the symptom text to the backend and returns a
	// normalized diagnostic result. Failures are reported as
	// *domain.ProviderError.
	Analyze(ctx context.Context, symptoms, language string) (*domain.DiagnosticResult, error)
}
