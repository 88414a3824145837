package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"idea-scout/internal/models"
	"idea-scout/shared/config"
)

const maxSuggestions = 5

// Generator produces title candidates from an analysis brief via Gemini.
type Generator struct {
	client *genai.Client
	model  string
}

func NewGenerator(ctx context.Context, cfg *config.AIConfig) (*Generator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.GeminiAPIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Generator{
		client: client,
		model:  cfg.Model,
	}, nil
}

// GenerateTitles sends the brief to the model and parses up to 5 title
// suggestions out of its response. Callers treat any error as recoverable.
func (g *Generator) GenerateTitles(ctx context.Context, brief string) ([]models.TitleSuggestion, error) {
	prompt := buildPrompt(brief)

	parts := []*genai.Part{
		genai.NewPartFromText(prompt),
	}

	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to generate titles: %w", err)
	}

	responseText := result.Text()
	if responseText == "" {
		return nil, fmt.Errorf("empty response from model")
	}

	return ParseTitlesResponse(responseText)
}

func buildPrompt(brief string) string {
	return fmt.Sprintf(`You are a YouTube packaging strategist. Based on the competitive analysis below, propose up to 5 video titles that can outperform the current results.

%s

Respond with a single JSON object in the following format:
{
  "titles": [
    {"title": "the proposed title", "reasoning": "one sentence on why it should work"}
  ]
}`, brief)
}

// ParseTitlesResponse extracts the JSON object embedded in the model's
// free-form response and decodes its titles array. The extraction is
// best-effort: the model wraps JSON in prose more often than not.
func ParseTitlesResponse(response string) ([]models.TitleSuggestion, error) {
	jsonStr, ok := extractJSON(response)
	if !ok {
		return nil, fmt.Errorf("no JSON object found in response")
	}

	var result struct {
		Titles []models.TitleSuggestion `json:"titles"`
	}
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal titles JSON: %w", err)
	}

	if len(result.Titles) == 0 {
		return nil, fmt.Errorf("response contained no titles")
	}

	if len(result.Titles) > maxSuggestions {
		result.Titles = result.Titles[:maxSuggestions]
	}
	return result.Titles, nil
}

// extractJSON returns the substring from the first '{' to the last '}'.
func extractJSON(response string) (string, bool) {
	startIdx := strings.Index(response, "{")
	endIdx := strings.LastIndex(response, "}")

	if startIdx == -1 || endIdx == -1 || endIdx < startIdx {
		return "", false
	}
	return response[startIdx : endIdx+1], true
}
