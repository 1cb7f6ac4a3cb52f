package copywriter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	openAIDefaultTimeout = 60 * time.Second
	openAIDefaultBaseURL = "https://api.openai.com/v1"

	defaultOpenAIModel = "gpt-4o"

	// Generation settings are fixed by design, not tunable per call.
	systemPrompt = "You are an expert e-commerce product copywriter and SEO strategist."
	maxTokens    = 1800
	temperature  = 0.7
)

// OpenAIOptions configures the OpenAI-backed generator.
type OpenAIOptions struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// OpenAIGenerator calls the OpenAI chat completions API with a multimodal
// message (prompt text plus image URL).
type OpenAIGenerator struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

type openAIChatRequest struct {
	Model       string          `json:"model"`
	Messages    []openAIMessage `json:"messages"`
	MaxTokens   int             `json:"max_tokens"`
	Temperature float64         `json:"temperature"`
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type openAIContentPart struct {
	Type     string          `json:"type"`
	Text     string          `json:"text,omitempty"`
	ImageURL *openAIImagePart `json:"image_url,omitempty"`
}

type openAIImagePart struct {
	URL string `json:"url"`
}

type openAIChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// NewOpenAIGenerator constructs an OpenAI generator with defaults applied.
func NewOpenAIGenerator(opts OpenAIOptions) (*OpenAIGenerator, error) {
	apiKey := strings.TrimSpace(opts.APIKey)
	if apiKey == "" {
		return nil, errors.New("copywriter: openai api key is required")
	}
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = defaultOpenAIModel
	}
	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		baseURL = openAIDefaultBaseURL
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: openAIDefaultTimeout}
	}
	return &OpenAIGenerator{apiKey: apiKey, model: model, baseURL: baseURL, client: client}, nil
}

// Generate sends the prompt and image reference and returns the raw response
// text. Transport and service errors are returned as errors; the pipeline is
// responsible for capturing them as data so one group's failure cannot abort
// a batch.
func (g *OpenAIGenerator) Generate(ctx context.Context, req Request) (Response, error) {
	userContent := []openAIContentPart{
		{Type: "text", Text: req.Prompt},
	}
	if strings.TrimSpace(req.ImageURL) != "" {
		userContent = append(userContent, openAIContentPart{
			Type:     "image_url",
			ImageURL: &openAIImagePart{URL: req.ImageURL},
		})
	}

	payload := openAIChatRequest{
		Model: g.model,
		Messages: []openAIMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userContent},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}

	body := &bytes.Buffer{}
	if err := json.NewEncoder(body).Encode(payload); err != nil {
		return Response{}, fmt.Errorf("copywriter: encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/chat/completions", body)
	if err != nil {
		return Response{}, fmt.Errorf("copywriter: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return Response{}, fmt.Errorf("copywriter: call openai: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, fmt.Errorf("copywriter: read response: %w", err)
	}

	var parsed openAIChatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return Response{}, fmt.Errorf("copywriter: decode response (HTTP %d): %w", resp.StatusCode, err)
	}
	if parsed.Error != nil {
		return Response{}, fmt.Errorf("copywriter: openai error: %s", parsed.Error.Message)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Response{}, fmt.Errorf("copywriter: openai HTTP %d", resp.StatusCode)
	}
	if len(parsed.Choices) == 0 {
		return Response{}, errors.New("copywriter: openai returned no choices")
	}
	return Response{Text: parsed.Choices[0].Message.Content}, nil
}

var _ Generator = (*OpenAIGenerator)(nil)
