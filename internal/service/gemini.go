package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/nutriplan/backend/config"
)

const structuredMimeType = "application/json"

// geminiPayload is the generateContent request body
type geminiPayload struct {
	Contents         []geminiContent   `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string `json:"responseMimeType"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GeminiClient performs generateContent calls against the Gemini API
type GeminiClient struct {
	apiKey string
	apiURL string
	client *http.Client
	logger zerolog.Logger
}

// NewGeminiClient creates a GeminiClient from explicit configuration. The
// credential is injected here rather than read from the environment so tests
// can substitute their own.
func NewGeminiClient(cfg *config.Config, logger zerolog.Logger) *GeminiClient {
	return &GeminiClient{
		apiKey: cfg.GeminiAPIKey,
		apiURL: cfg.GeminiAPIURL,
		client: &http.Client{Timeout: cfg.UpstreamTimeout},
		logger: logger.With().Str("component", "gemini").Logger(),
	}
}

// Generate issues a single synchronous generateContent call and returns the
// raw text of the first candidate.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	payload := geminiPayload{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
		GenerationConfig: &generationConfig{
			ResponseMimeType: structuredMimeType,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"?key="+url.QueryEscape(c.apiKey), bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Info().Msg("calling Gemini API")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", &UpstreamError{Err: fmt.Errorf("request failed: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain for logging only; upstream bodies are never surfaced to callers.
		respBody, _ := io.ReadAll(resp.Body)
		c.logger.Error().Int("status", resp.StatusCode).Str("body", string(respBody)).Msg("Gemini API returned error status")
		return "", &UpstreamError{Err: fmt.Errorf("API returned status %d", resp.StatusCode)}
	}

	var geminiResp geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return "", &UpstreamError{Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", &UpstreamError{Err: fmt.Errorf("no content in Gemini response")}
	}

	return geminiResp.Candidates[0].Content.Parts[0].Text, nil
}
