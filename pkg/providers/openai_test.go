package providers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/symptom-checker-server/internal/domain"
)

func openAICompletion(content string) string {
	body, _ := json.Marshal(map[string]any{
		"choices": []any{
			map[string]any{
				"message": map[string]any{
					"role":    "assistant",
					"content": content,
				},
			},
		},
	})
	return string(body)
}

func TestNewOpenAIClientRequiresAPIKey(t *testing.T) {
	assert.Nil(t, NewOpenAIClient(domain.OpenAIConfig{}))
	assert.NotNil(t, NewOpenAIClient(domain.OpenAIConfig{APIKey: "sk-test"}))
}

func TestOpenAIClientDefaults(t *testing.T) {
	client := NewOpenAIClient(domain.OpenAIConfig{APIKey: "sk-test"})

	assert.Equal(t, defaultOpenAIModel, client.Model())
	assert.Equal(t, "openai", client.Name())
}

func TestOpenAIClientAnalyze(t *testing.T) {
	var captured map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(openAICompletion(`{"entities":[{"text":"fever","type":"symptom","confidence":0.9}],` +
			`"diagnoses":[{"condition":"Influenza (Flu)","confidence":0.8,"description":"Viral illness.",` +
			`"recommendations":["Rest"]}]}`)))
	}))
	defer server.Close()

	client := NewOpenAIClient(domain.OpenAIConfig{
		APIKey:  "sk-test",
		BaseURL: server.URL,
		Model:   "gpt-test",
	})

	result, err := client.Analyze(context.Background(), "I have a fever", "en")

	require.NoError(t, err)
	assert.Equal(t, "gpt-test", captured["model"])

	responseFormat, ok := captured["response_format"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "json_schema", responseFormat["type"])

	require.Len(t, result.Diagnoses, 1)
	assert.Equal(t, "Influenza (Flu)", result.Diagnoses[0].Condition)
	require.Len(t, result.Entities, 1)
	assert.Equal(t, domain.EntitySymptom, result.Entities[0].Type)
}

func TestOpenAIClientAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"rate limited"}}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewOpenAIClient(domain.OpenAIConfig{APIKey: "sk-test", BaseURL: server.URL})

	_, err := client.Analyze(context.Background(), "fever", "en")

	var providerErr *domain.ProviderError
	require.True(t, errors.As(err, &providerErr))
	assert.Equal(t, domain.ErrProviderUnavailable, providerErr.Code)
}

func TestOpenAIClientHonorsTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(openAICompletion(`{"entities":[],"diagnoses":[]}`)))
	}))
	defer server.Close()

	client := NewOpenAIClient(domain.OpenAIConfig{
		APIKey:  "sk-test",
		BaseURL: server.URL,
		Timeout: 50 * time.Millisecond,
	})

	_, err := client.Analyze(context.Background(), "fever", "en")

	var providerErr *domain.ProviderError
	require.True(t, errors.As(err, &providerErr))
	assert.Equal(t, domain.ErrProviderUnavailable, providerErr.Code)
}

func TestOpenAIClientEmptyContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(openAICompletion("")))
	}))
	defer server.Close()

	client := NewOpenAIClient(domain.OpenAIConfig{APIKey: "sk-test", BaseURL: server.URL})

	_, err := client.Analyze(context.Background(), "fever", "en")

	var providerErr *domain.ProviderError
	require.True(t, errors.As(err, &providerErr))
	assert.Equal(t, domain.ErrProviderResponseInvalid, providerErr.Code)
}
