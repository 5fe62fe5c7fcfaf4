package providers

import (
	"context"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"

	"github.com/symptom-checker-server/internal/domain"
	"github.com/symptom-checker-server/internal/service"
)

const (
	openAIProviderName = "openai"

	defaultOpenAIModel   = "gpt-4.1-mini"
	defaultOpenAITimeout = 60 * time.Second
)

// diagnosticSchema constrains chat-completion output to the canonical
// analysis shape so the normalizer rarely has to repair anything.
var diagnosticSchema = &jsonschema.Definition{
	Type:                 jsonschema.Object,
	AdditionalProperties: false,
	Required:             []string{"entities", "diagnoses"},
	Properties: map[string]jsonschema.Definition{
		"entities": {
			Type: jsonschema.Array,
			Items: &jsonschema.Definition{
				Type:                 jsonschema.Object,
				AdditionalProperties: false,
				Required:             []string{"text", "type", "confidence"},
				Properties: map[string]jsonschema.Definition{
					"text":       {Type: jsonschema.String},
					"type":       {Type: jsonschema.String, Enum: []string{"symptom", "body_part", "duration", "severity"}},
					"confidence": {Type: jsonschema.Number},
				},
			},
		},
		"diagnoses": {
			Type: jsonschema.Array,
			Items: &jsonschema.Definition{
				Type:                 jsonschema.Object,
				AdditionalProperties: false,
				Required:             []string{"condition", "confidence", "description", "recommendations"},
				Properties: map[string]jsonschema.Definition{
					"condition":   {Type: jsonschema.String},
					"confidence":  {Type: jsonschema.Number},
					"description": {Type: jsonschema.String},
					"recommendations": {
						Type:  jsonschema.Array,
						Items: &jsonschema.Definition{Type: jsonschema.String},
					},
				},
			},
		},
	},
}

// OpenAIClient calls the OpenAI chat-completion API with a strict JSON
// schema response format.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient creates an OpenAI client, or nil when no API key is
// configured.
func NewOpenAIClient(config domain.OpenAIConfig) *OpenAIClient {
	if config.APIKey == "" {
		return nil
	}
	if config.Model == "" {
		config.Model = defaultOpenAIModel
	}
	if config.Timeout == 0 {
		config.Timeout = defaultOpenAITimeout
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}
	clientConfig.HTTPClient = &http.Client{Timeout: config.Timeout}

	return &OpenAIClient{
		client: openai.NewClientWithConfig(clientConfig),
		model:  config.Model,
	}
}

// Name implements Provider.
func (c *OpenAIClient) Name() string { return openAIProviderName }

// Model reports the configured model identifier.
func (c *OpenAIClient) Model() string { return c.model }

// Analyze implements Provider.
func (c *OpenAIClient) Analyze(ctx context.Context, symptoms, language string) (*domain.DiagnosticResult, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: generationTemperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   "diagnostic_analysis",
				Schema: diagnosticSchema,
				Strict: true,
			},
		},
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleSystem,
				Content: "You are a medical symptom analysis assistant.\n" +
					`If unclear, return one diagnosis: "No clear match found".`,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: BuildPrompt(symptoms, language),
			},
		},
	})
	if err != nil {
		return nil, domain.NewProviderError(openAIProviderName, domain.ErrProviderUnavailable,
			"chat completion request failed", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, domain.NewProviderError(openAIProviderName, domain.ErrProviderResponseInvalid,
			"response did not include content", nil)
	}

	parsed, err := ExtractJSONObject(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, domain.NewProviderError(openAIProviderName, domain.ErrProviderResponseInvalid,
			err.Error(), err)
	}

	return service.Normalize(symptoms, language, parsed), nil
}
