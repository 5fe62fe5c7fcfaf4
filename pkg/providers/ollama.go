package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/symptom-checker-server/internal/domain"
	"github.com/symptom-checker-server/internal/service"
)

const (
	ollamaProviderName = "ollama"

	defaultOllamaBaseURL = "http://127.0.0.1:11434"
	defaultOllamaModel   = "llama3.1:8b"
	defaultOllamaTimeout = 60 * time.Second

	// Low temperature keeps the model close to the requested JSON
	// schema.
	generationTemperature = 0.2
)

// OllamaClient calls a locally hosted Ollama instance through its
// generate endpoint.
type OllamaClient struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

type ollamaGenerateRequest struct {
	Model   string        `json:"model"`
	Prompt  string        `json:"prompt"`
	Stream  bool          `json:"stream"`
	Options ollamaOptions `json:"options"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature"`
}

type ollamaGenerateResponse struct {
	Response string `json:"response"`
}

// NewOllamaClient creates an Ollama client, applying defaults for any
// unset configuration value.
func NewOllamaClient(config domain.OllamaConfig) *OllamaClient {
	if config.BaseURL == "" {
		config.BaseURL = defaultOllamaBaseURL
	}
	if config.Model == "" {
		config.Model = defaultOllamaModel
	}
	if config.Timeout == 0 {
		config.Timeout = defaultOllamaTimeout
	}
	return &OllamaClient{
		baseURL: strings.TrimSuffix(config.BaseURL, "/"),
		model:   config.Model,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// Name implements Provider.
func (c *OllamaClient) Name() string { return ollamaProviderName }

// Model reports the configured model identifier.
func (c *OllamaClient) Model() string { return c.model }

// Analyze implements Provider. The raw model output is parsed
// leniently and normalized into the canonical result schema.
func (c *OllamaClient) Analyze(ctx context.Context, symptoms, language string) (*domain.DiagnosticResult, error) {
	payload, err := json.Marshal(ollamaGenerateRequest{
		Model:   c.model,
		Prompt:  BuildPrompt(symptoms, language),
		Stream:  false,
		Options: ollamaOptions{Temperature: generationTemperature},
	})
	if err != nil {
		return nil, domain.NewProviderError(ollamaProviderName, domain.ErrProviderUnavailable,
			"failed to encode request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(payload))
	if err != nil {
		return nil, domain.NewProviderError(ollamaProviderName, domain.ErrProviderUnavailable,
			"failed to build request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.NewProviderError(ollamaProviderName, domain.ErrProviderUnavailable,
			"request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, domain.NewProviderError(ollamaProviderName, domain.ErrProviderUnavailable,
			fmt.Sprintf("API error %d: %s", resp.StatusCode, strings.TrimSpace(string(body))), nil)
	}

	var generated ollamaGenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&generated); err != nil {
		return nil, domain.NewProviderError(ollamaProviderName, domain.ErrProviderResponseInvalid,
			"failed to decode response body", err)
	}
	if strings.TrimSpace(generated.Response) == "" {
		return nil, domain.NewProviderError(ollamaProviderName, domain.ErrProviderResponseInvalid,
			"response did not include output", nil)
	}

	parsed, err := ExtractJSONObject(generated.Response)
	if err != nil {
		return nil, domain.NewProviderError(ollamaProviderName, domain.ErrProviderResponseInvalid,
			err.Error(), err)
	}

	return service.Normalize(symptoms, language, parsed), nil
}
