package providers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/symptom-checker-server/internal/domain"
)

func ollamaResponse(t *testing.T, output string) string {
	t.Helper()
	body, err := json.Marshal(map[string]string{"response": output})
	require.NoError(t, err)
	return string(body)
}

func TestOllamaClientAnalyze(t *testing.T) {
	var captured ollamaGenerateRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/generate", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(ollamaResponse(t, `{"entities":[{"text":"fever","type":"symptom","confidence":0.9}],`+
			`"diagnoses":[{"condition":"Influenza (Flu)","confidence":0.8,"description":"Viral illness.",`+
			`"recommendations":["Rest"]}]}`)))
	}))
	defer server.Close()

	client := NewOllamaClient(domain.OllamaConfig{BaseURL: server.URL, Model: "test-model"})

	result, err := client.Analyze(context.Background(), "I have a fever", "en")

	require.NoError(t, err)
	assert.Equal(t, "test-model", captured.Model)
	assert.False(t, captured.Stream)
	assert.Equal(t, 0.2, captured.Options.Temperature)
	assert.Contains(t, captured.Prompt, "Return ONLY strict JSON.")
	assert.Contains(t, captured.Prompt, `"symptoms":"I have a fever"`)

	require.Len(t, result.Diagnoses, 1)
	assert.Equal(t, "Influenza (Flu)", result.Diagnoses[0].Condition)
	require.Len(t, result.Entities, 1)
	assert.Equal(t, "fever", result.Entities[0].Text)
}

func TestOllamaClientTolerantJSONExtraction(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		output := "Sure, here is the analysis:\n```json\n" +
			`{"entities":[],"diagnoses":[{"condition":"Migraine","confidence":0.7,` +
			`"description":"d","recommendations":["r"]}]}` + "\n```"
		w.Write([]byte(ollamaResponse(t, output)))
	}))
	defer server.Close()

	client := NewOllamaClient(domain.OllamaConfig{BaseURL: server.URL})

	result, err := client.Analyze(context.Background(), "headache", "en")

	require.NoError(t, err)
	require.Len(t, result.Diagnoses, 1)
	assert.Equal(t, "Migraine", result.Diagnoses[0].Condition)
}

func TestOllamaClientServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer server.Close()

	client := NewOllamaClient(domain.OllamaConfig{BaseURL: server.URL})

	_, err := client.Analyze(context.Background(), "fever", "en")

	require.Error(t, err)
	var providerErr *domain.ProviderError
	require.True(t, errors.As(err, &providerErr))
	assert.Equal(t, domain.ErrProviderUnavailable, providerErr.Code)
	assert.Contains(t, providerErr.Message, "404")
}

func TestOllamaClientEmptyOutput(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(ollamaResponse(t, "   ")))
	}))
	defer server.Close()

	client := NewOllamaClient(domain.OllamaConfig{BaseURL: server.URL})

	_, err := client.Analyze(context.Background(), "fever", "en")

	var providerErr *domain.ProviderError
	require.True(t, errors.As(err, &providerErr))
	assert.Equal(t, domain.ErrProviderResponseInvalid, providerErr.Code)
}

func TestOllamaClientUnparseableOutput(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(ollamaResponse(t, "no json here at all")))
	}))
	defer server.Close()

	client := NewOllamaClient(domain.OllamaConfig{BaseURL: server.URL})

	_, err := client.Analyze(context.Background(), "fever", "en")

	var providerErr *domain.ProviderError
	require.True(t, errors.As(err, &providerErr))
	assert.Equal(t, domain.ErrProviderResponseInvalid, providerErr.Code)
}

func TestOllamaClientUnreachable(t *testing.T) {
	client := NewOllamaClient(domain.OllamaConfig{BaseURL: "http://127.0.0.1:1"})

	_, err := client.Analyze(context.Background(), "fever", "en")

	var providerErr *domain.ProviderError
	require.True(t, errors.As(err, &providerErr))
	assert.Equal(t, domain.ErrProviderUnavailable, providerErr.Code)
}

func TestOllamaClientDefaults(t *testing.T) {
	client := NewOllamaClient(domain.OllamaConfig{})

	assert.Equal(t, defaultOllamaBaseURL, client.baseURL)
	assert.Equal(t, defaultOllamaModel, client.Model())
	assert.Equal(t, "ollama", client.Name())
}
