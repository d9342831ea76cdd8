package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrNoJSON = errors.New("no JSON object found in AI output")

const (
	sampleIdeaImage  = "https://images.unsplash.com/photo-1504674900947-0f7a2d9ae446?w=400"
	sampleEventImage = "https://images.unsplash.com/photo-1567521464027-f127ff144326?w=400"
)

// FallbackPlan returns a fresh copy of the fixed sample payload served when
// the AI is disabled or its output cannot be used.
func FallbackPlan() GeneratePayload {
	return GeneratePayload{
		Ideas: []TripIdea{
			{
				Title:       "Sample Trip",
				Description: "AI disabled — sample idea.",
				Image:       sampleIdeaImage,
				Link:        MapLink("Sample Trip"),
			},
		},
		Timeline: []TimelineEvent{
			{
				Time:        "Day 1, 9:00 AM",
				Title:       "Sample Event",
				Description: "Timeline sample event.",
				Image:       sampleEventImage,
				Link:        MapLink("Sample Event"),
			},
		},
	}
}

// BuildPlanPrompt asks the model for a bare JSON payload describing the trip.
func BuildPlanPrompt(query, date string) string {
	return fmt.Sprintf(`
Return ONLY valid JSON. No markdown.

User Query: %s
Date: %s

JSON Format:
{
  "ideas": [
    {
      "title": "",
      "description": "",
      "image": "",
      "link": ""
    }
  ],
  "timeline": [
    {
      "time": "",
      "title": "",
      "description": "",
      "image": "",
      "link": ""
    }
  ]
}
`, query, date)
}

// BuildSearchPrompt asks for a freeform, web-grounded travel answer.
func BuildSearchPrompt(query string) string {
	return fmt.Sprintf(`You are a helpful travel planning assistant. Use current information from the web where it helps.
Answer the traveler's request concisely with concrete suggestions (places, timing, tips).

Request: %s`, strings.TrimSpace(query))
}

// ParsePlan strips code fences and decodes the text between the first '{'
// and the last '}'. Missing ideas or timeline decode as empty lists.
func ParsePlan(raw string) (GeneratePayload, error) {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start < 0 || end < start {
		return GeneratePayload{}, ErrNoJSON
	}

	var payload GeneratePayload
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), &payload); err != nil {
		return GeneratePayload{}, fmt.Errorf("parsing AI output: %w", err)
	}

	if payload.Ideas == nil {
		payload.Ideas = []TripIdea{}
	}
	if payload.Timeline == nil {
		payload.Timeline = []TimelineEvent{}
	}
	return payload, nil
}

// NormalizePlan returns the parsed payload, or the fallback sample together
// with the parse error when the text cannot be used.
func NormalizePlan(raw string) (GeneratePayload, error) {
	payload, err := ParsePlan(raw)
	if err != nil {
		return FallbackPlan(), err
	}
	return payload, nil
}
