package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com"

const systemInstruction = `You are an intelligent assistant for the "Hanover Helpers" app. Your task is to parse a user's natural language job request into a structured JSON object. The user is a resident of a small town. Be helpful and interpret their request accurately. The full text of the user's request MUST be the 'description'.`

// jobSchema constrains the model's output to the job shape. The schema
// mirrors the categories and budget types of the board.
var jobSchema = map[string]interface{}{
	"type": "OBJECT",
	"properties": map[string]interface{}{
		"title": map[string]interface{}{
			"type":        "STRING",
			"description": `A short, clear title for the job post. Maximum 7 words. Example: "Mow my front and back lawn"`,
		},
		"description": map[string]interface{}{
			"type":        "STRING",
			"description": "The original user prompt, used as the detailed description.",
		},
		"category": map[string]interface{}{
			"type":        "STRING",
			"enum":        []string{"Lawn Care", "Handyman", "Moving Help", "Errands", "Babysitting", "Cleaning", "Pet Care", "Snow Removal"},
			"description": "The single best-fitting job category from the list.",
		},
		"budget": map[string]interface{}{
			"type": "OBJECT",
			"properties": map[string]interface{}{
				"type": map[string]interface{}{
					"type":        "STRING",
					"enum":        []string{"Fixed Rate", "Hourly"},
					"description": "The type of budget. If the user mentions a rate per hour, use HOURLY. Otherwise, default to FIXED.",
				},
				"amount": map[string]interface{}{
					"type":        "NUMBER",
					"description": "The numeric value for the budget. Extract it from the text.",
				},
			},
		},
		"date": map[string]interface{}{
			"type":        "STRING",
			"description": `The requested date or time for the job, like "This Saturday" or "Flexible".`,
		},
		"isUrgent": map[string]interface{}{
			"type":        "BOOLEAN",
			"description": `Set to true if the user mentions urgency with words like "urgent", "ASAP", or "today".`,
		},
	},
	"required": []string{"title", "description", "category", "date", "isUrgent"},
}

// GeminiParser is a JobParser backed by the Gemini generateContent API with
// a fixed response schema.
type GeminiParser struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewGeminiParser creates a parser for the given API key and model.
func NewGeminiParser(apiKey, model string) *GeminiParser {
	return &GeminiParser{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultGeminiBaseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type geminiRequest struct {
	SystemInstruction geminiContent    `json:"systemInstruction"`
	Contents          []geminiContent  `json:"contents"`
	GenerationConfig  generationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string      `json:"responseMimeType"`
	ResponseSchema   interface{} `json:"responseSchema"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// ParseJob sends the prompt to Gemini and decodes the schema-constrained
// response into a ParsedJob.
func (p *GeminiParser) ParseJob(ctx context.Context, prompt string) (*ParsedJob, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("gemini API key is not configured")
	}

	reqBody := geminiRequest{
		SystemInstruction: geminiContent{Parts: []geminiPart{{Text: systemInstruction}}},
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: fmt.Sprintf("Parse the following job request: %q", prompt)}}},
		},
		GenerationConfig: generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema: map[string]interface{}{
				"type": "OBJECT",
				"properties": map[string]interface{}{
					"job": jobSchema,
				},
				"required": []string{"job"},
			},
		},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", p.baseURL, p.model, p.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read gemini response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gemini returned status %d: %s", resp.StatusCode, respBody)
	}

	var gr geminiResponse
	if err := json.Unmarshal(respBody, &gr); err != nil {
		return nil, fmt.Errorf("failed to decode gemini response: %w", err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("gemini returned no candidates")
	}

	// With a response schema the candidate text is already a JSON document.
	text := strings.TrimSpace(gr.Candidates[0].Content.Parts[0].Text)
	var parsed struct {
		Job *ParsedJob `json:"job"`
	}
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode structured job: %w", err)
	}
	if parsed.Job == nil {
		return nil, fmt.Errorf("gemini response did not contain a job")
	}
	return parsed.Job, nil
}
