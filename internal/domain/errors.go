package domain

import (
	"fmt"
)

// Error codes for provider failure scenarios
const (
	ErrProviderUnavailable     = "PROVIDER_UNAVAILABLE"
	ErrProviderResponseInvalid = "PROVIDER_RESPONSE_INVALID"
	ErrProviderUnconfigured    = "PROVIDER_UNCONFIGURED"
)

// ProviderError represents a failure of an external inference provider.
// Only genuine transport/availability failures and unusable responses
// surface as ProviderError; malformed payload content is absorbed by
// the response normalizer instead.
type ProviderError struct {
	Provider string
	Code     string
	Message  string
	Err      error
}

// Error implements the error interface
func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s provider: %s: %v", e.Provider, e.Message, e.Err)
	}
	return fmt.Sprintf("%s provider: %s", e.Provider, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError creates a ProviderError with the given code.
func NewProviderError(provider, code, message string, err error) *ProviderError {
	return &ProviderError{
		Provider: provider,
		Code:     code,
		Message:  message,
		Err:      err,
	}
}
