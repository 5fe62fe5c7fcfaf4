package providers

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"

	"github.com/symptom-checker-server/internal/domain"
)

// Analysis modes supported by the resolver.
const (
	ModeLocal  = "local"
	ModeRemote = "remote"
	ModeAuto   = "auto"
	ModeRules  = "rules"
)

// Resolver selects the provider for each analysis request according to
// the configured mode. In auto mode the local provider is tried first
// and the remote provider is the failover. Each provider sits behind
// its own circuit breaker so a dead backend stops consuming request
// latency.
type Resolver struct {
	mode   string
	local  Provider
	remote Provider
	logger *logrus.Logger

	localBreaker  *gobreaker.CircuitBreaker
	remoteBreaker *gobreaker.CircuitBreaker
}

// NewResolver creates a resolver over the given providers. Either
// provider may be nil when unconfigured; a call that reaches a nil
// provider fails with an unconfigured error.
func NewResolver(mode string, local, remote Provider, logger *logrus.Logger) *Resolver {
	r := &Resolver{
		mode:   mode,
		local:  local,
		remote: remote,
		logger: logger,
	}
	if local != nil {
		r.localBreaker = newProviderBreaker(local.Name(), logger)
	}
	if remote != nil {
		r.remoteBreaker = newProviderBreaker(remote.Name(), logger)
	}
	return r
}

func newProviderBreaker(name string, logger *logrus.Logger) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 5,
		Interval:    30 * time.Second,
		Timeout:     60 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.WithFields(logrus.Fields{
				"provider": name,
				"from":     from.String(),
				"to":       to.String(),
			}).Warn("Provider circuit breaker state changed")
		},
	})
}

// Mode reports the configured analysis mode.
func (r *Resolver) Mode() string { return r.mode }

// ActiveModel reports the model identifier of the provider preferred
// by the current mode, for health reporting.
func (r *Resolver) ActiveModel() string {
	type modeler interface{ Model() string }

	preferred := r.remote
	if r.mode == ModeLocal || r.mode == ModeAuto {
		preferred = r.local
	}
	if m, ok := preferred.(modeler); ok {
		return m.Model()
	}
	return ""
}

// Analyze routes the request per the configured mode and reports which
// source produced the result. Errors leave the caller free to fall
// back to rule-based analysis.
func (r *Resolver) Analyze(ctx context.Context, symptoms, language string) (*domain.DiagnosticResult, domain.AnalysisSource, error) {
	switch r.mode {
	case ModeLocal:
		result, err := r.analyzeLocal(ctx, symptoms, language)
		return result, domain.SourceLocal, err
	case ModeRemote:
		result, err := r.analyzeRemote(ctx, symptoms, language)
		return result, domain.SourceRemote, err
	case ModeAuto:
		return r.analyzeAuto(ctx, symptoms, language)
	default:
		return nil, "", fmt.Errorf("unsupported analysis mode %q", r.mode)
	}
}

func (r *Resolver) analyzeAuto(ctx context.Context, symptoms, language string) (*domain.DiagnosticResult, domain.AnalysisSource, error) {
	result, localErr := r.analyzeLocal(ctx, symptoms, language)
	if localErr == nil {
		return result, domain.SourceLocal, nil
	}
	r.logger.WithError(localErr).Debug("Local provider failed, trying remote")

	result, remoteErr := r.analyzeRemote(ctx, symptoms, language)
	if remoteErr == nil {
		return result, domain.SourceRemote, nil
	}

	return nil, "", fmt.Errorf("auto mode failed. Ollama: %s | OpenAI: %s", localErr, remoteErr)
}

func (r *Resolver) analyzeLocal(ctx context.Context, symptoms, language string) (*domain.DiagnosticResult, error) {
	return r.execute(ctx, r.local, r.localBreaker, symptoms, language)
}

func (r *Resolver) analyzeRemote(ctx context.Context, symptoms, language string) (*domain.DiagnosticResult, error) {
	return r.execute(ctx, r.remote, r.remoteBreaker, symptoms, language)
}

func (r *Resolver) execute(ctx context.Context, provider Provider, breaker *gobreaker.CircuitBreaker, symptoms, language string) (*domain.DiagnosticResult, error) {
	if provider == nil {
		return nil, domain.NewProviderError("resolver", domain.ErrProviderUnconfigured,
			"provider is not configured", nil)
	}

	value, err := breaker.Execute(func() (interface{}, error) {
		return provider.Analyze(ctx, symptoms, language)
	})
	if err != nil {
		return nil, err
	}
	return value.(*domain.DiagnosticResult), nil
}
