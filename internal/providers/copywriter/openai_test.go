package copywriter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestOpenAIGeneratorSendsMultimodalPayload(t *testing.T) {
	var captured map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": "Title 1: Foo"}},
			},
		})
	}))
	defer server.Close()

	gen, err := NewOpenAIGenerator(OpenAIOptions{APIKey: "test-key", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewOpenAIGenerator: %v", err)
	}

	resp, err := gen.Generate(context.Background(), Request{
		Prompt:   "Write copy.\n\nProduct Info:\nColour: Red",
		ImageURL: "https://img/1.jpg",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if resp.Text != "Title 1: Foo" {
		t.Errorf("Text = %q", resp.Text)
	}

	if captured["model"] != defaultOpenAIModel {
		t.Errorf("model = %v", captured["model"])
	}
	if captured["max_tokens"] != float64(maxTokens) {
		t.Errorf("max_tokens = %v", captured["max_tokens"])
	}
	if captured["temperature"] != temperature {
		t.Errorf("temperature = %v", captured["temperature"])
	}

	messages := captured["messages"].([]any)
	if len(messages) != 2 {
		t.Fatalf("messages = %d, want 2", len(messages))
	}
	system := messages[0].(map[string]any)
	if system["role"] != "system" || !strings.Contains(system["content"].(string), "copywriter") {
		t.Errorf("system message = %v", system)
	}
	user := messages[1].(map[string]any)
	parts := user["content"].([]any)
	if len(parts) != 2 {
		t.Fatalf("user content parts = %d, want text + image", len(parts))
	}
	image := parts[1].(map[string]any)
	if image["type"] != "image_url" {
		t.Errorf("second part type = %v", image["type"])
	}
}

func TestOpenAIGeneratorOmitsEmptyImage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Messages []struct {
				Content any `json:"content"`
			} `json:"messages"`
		}
		_ = json.NewDecoder(r.Body).Decode(&payload)
		parts := payload.Messages[1].Content.([]any)
		if len(parts) != 1 {
			t.Errorf("user content parts = %d, want text only", len(parts))
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{{"message": map[string]any{"content": "ok"}}},
		})
	}))
	defer server.Close()

	gen, _ := NewOpenAIGenerator(OpenAIOptions{APIKey: "k", BaseURL: server.URL})
	if _, err := gen.Generate(context.Background(), Request{Prompt: "p"}); err != nil {
		t.Fatalf("Generate: %v", err)
	}
}

func TestOpenAIGeneratorServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "invalid api key", "type": "invalid_request_error"},
		})
	}))
	defer server.Close()

	gen, _ := NewOpenAIGenerator(OpenAIOptions{APIKey: "bad", BaseURL: server.URL})
	_, err := gen.Generate(context.Background(), Request{Prompt: "p"})
	if err == nil || !strings.Contains(err.Error(), "invalid api key") {
		t.Fatalf("err = %v, want openai error message", err)
	}
}

func TestNewOpenAIGeneratorRequiresKey(t *testing.T) {
	if _, err := NewOpenAIGenerator(OpenAIOptions{}); err == nil {
		t.Fatal("expected error for missing api key")
	}
}
