package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// generate sends one multimodal request to Gemini and returns the
// concatenated text of the first candidate. Rotates API keys on
// 429 / quota errors.
func (c *implClient) generate(ctx context.Context, parts []*genai.Part, jsonResponse bool) (string, error) {
	if len(c.apiKeys) == 0 {
		return "", fmt.Errorf("no Gemini API keys configured")
	}

	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	var cfg *genai.GenerateContentConfig
	if jsonResponse {
		cfg = &genai.GenerateContentConfig{ResponseMIMEType: "application/json"}
	}

	attempts := len(c.apiKeys)
	var lastErr error

	for range attempts {
		keyIndex, key := c.nextKey()

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			c.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, c.model, contents, cfg)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				c.logger.Warn(ctx, "Key %d rate limited, rotating...", keyIndex+1)
				c.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text += part.Text
				}
			}
			return text, nil
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

// nextKey returns the current API key and its index.
func (c *implClient) nextKey() (int, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentKey, c.apiKeys[c.currentKey]
}

func (c *implClient) rotateKey() {
	c.mu.Lock()
	c.currentKey = (c.currentKey + 1) % len(c.apiKeys)
	c.mu.Unlock()
}

// stripFences removes a markdown code fence wrapper the model
// sometimes adds around JSON output.
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	if len(text) >= 4 && strings.EqualFold(text[:4], "json") {
		text = text[4:]
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}
