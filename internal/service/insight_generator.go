package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"coachpulse/internal/config"
	"coachpulse/internal/model"
)

// InsightGenerator produces client progress analyses via the Gemini API
type InsightGenerator struct {
	config *config.AIConfig
	client *http.Client
}

// NewInsightGenerator creates a new insight generator
func NewInsightGenerator() *InsightGenerator {
	cfg := config.DefaultAIConfig()
	return &InsightGenerator{
		config: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
	}
}

// Generate builds an analysis from the client's recent check-in history.
// Without an API key it returns a deterministic mock payload; with one, any
// transport or parse failure is returned to the caller, since there is no
// safe local default for a qualitative analysis.
func (g *InsightGenerator) Generate(ctx context.Context, client *model.Client, history []*model.CheckIn) (*model.ClientInsights, error) {
	if !g.config.IsEnabled() {
		return g.mockInsights(client, history), nil
	}

	prompt := g.buildInsightsPrompt(client, history)
	response, err := g.callGemini(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("insight generation failed: %w", err)
	}

	var insights model.ClientInsights
	if err := json.Unmarshal([]byte(response), &insights); err != nil {
		return nil, fmt.Errorf("insight generation returned malformed payload: %w", err)
	}

	return &insights, nil
}

// callGemini makes a request to the Gemini API
func (g *InsightGenerator) callGemini(ctx context.Context, prompt string) (string, error) {
	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]string{
					{"text": prompt},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"responseMimeType": "application/json",
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s?key=%s", g.config.ModelEndpoint(), g.config.APIKey)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	// Parse Gemini response structure
	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.Unmarshal(body, &geminiResp); err != nil {
		return "", err
	}

	if len(geminiResp.Candidates) > 0 && len(geminiResp.Candidates[0].Content.Parts) > 0 {
		return geminiResp.Candidates[0].Content.Parts[0].Text, nil
	}

	return "", fmt.Errorf("empty response from Gemini")
}

func (g *InsightGenerator) buildInsightsPrompt(client *model.Client, history []*model.CheckIn) string {
	var sb strings.Builder
	for _, c := range history {
		sb.WriteString(fmt.Sprintf("- %s: score %d (%s)", c.SubmittedAt.Format("2006-01-02"), c.Score, c.Band))
		for _, ans := range c.Answers {
			if ans.Comment != "" {
				sb.WriteString(fmt.Sprintf(" | note: %q", ans.Comment))
			}
		}
		sb.WriteString("\n")
	}

	goal := client.Goal
	if goal == "" {
		goal = "general wellbeing"
	}

	return fmt.Sprintf(`You are a coaching assistant analyzing a client's check-in history. Return ONLY valid JSON matching this schema:
{
  "summary": "two sentence overview of the client's trajectory",
  "strengths": ["strength 1", "strength 2"],
  "focusAreas": ["area needing work 1", "area needing work 2"],
  "recommendations": ["concrete next step 1", "concrete next step 2", "concrete next step 3"]
}

Client goal: %s
Check-in history (newest first):
%s
Identify what is going well, what is slipping, and 2-3 specific recommendations the coach can act on.`,
		goal, sb.String())
}

// mockInsights derives a plain trend readout from the stored scores
func (g *InsightGenerator) mockInsights(client *model.Client, history []*model.CheckIn) *model.ClientInsights {
	if len(history) == 0 {
		return &model.ClientInsights{
			Summary:         "No check-ins submitted yet.",
			Recommendations: []string{"Ask the client to complete their first check-in."},
		}
	}

	sum := 0
	for _, c := range history {
		sum += c.Score
	}
	avg := sum / len(history)

	trend := "holding steady"
	if len(history) > 1 {
		if history[0].Score > history[len(history)-1].Score {
			trend = "trending up"
		} else if history[0].Score < history[len(history)-1].Score {
			trend = "trending down"
		}
	}

	return &model.ClientInsights{
		Summary:         fmt.Sprintf("%d check-ins averaging %d, %s. Mock analysis - configure Gemini for real insights.", len(history), avg, trend),
		Strengths:       []string{"Consistent check-in submissions"},
		FocusAreas:      []string{"Enable AI analysis for detailed focus areas"},
		Recommendations: []string{"Review the latest check-in answers with the client."},
	}
}
