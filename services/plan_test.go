package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapLink(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Eiffel Tower", "https://www.google.com/maps/search/?api=1&query=Eiffel+Tower"},
		{"Kyoto", "https://www.google.com/maps/search/?api=1&query=Kyoto"},
		{"Café & Bar", "https://www.google.com/maps/search/?api=1&query=Caf%C3%A9+%26+Bar"},
		{"", "https://www.google.com/maps/search/?api=1&query="},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, MapLink(tt.title))
			assert.Equal(t, MapLink(tt.title), MapLink(tt.title))
			assert.NotContains(t, MapLink(tt.title), " ")
		})
	}
}

func TestFallbackPlan_IsFixed(t *testing.T) {
	a, err := json.Marshal(FallbackPlan())
	require.NoError(t, err)
	b, err := json.Marshal(FallbackPlan())
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))

	plan := FallbackPlan()
	require.Len(t, plan.Ideas, 1)
	require.Len(t, plan.Timeline, 1)
	assert.Equal(t, "Sample Trip", plan.Ideas[0].Title)
	assert.Equal(t, "AI disabled — sample idea.", plan.Ideas[0].Description)
	assert.Equal(t, sampleIdeaImage, plan.Ideas[0].Image)
	assert.Equal(t, MapLink("Sample Trip"), plan.Ideas[0].Link)
	assert.Equal(t, "Day 1, 9:00 AM", plan.Timeline[0].Time)
	assert.Equal(t, "Sample Event", plan.Timeline[0].Title)
	assert.Equal(t, sampleEventImage, plan.Timeline[0].Image)
}

func TestFallbackPlan_ReturnsCopy(t *testing.T) {
	plan := FallbackPlan()
	plan.Ideas[0].Title = "changed"
	assert.Equal(t, "Sample Trip", FallbackPlan().Ideas[0].Title)
}

func TestParsePlan_FencedJSON(t *testing.T) {
	raw := "Here you go:\n```json\n" + `{
  "ideas": [{"title": "Fushimi Inari", "description": "Torii gates", "image": "", "link": "https://bad.example"}],
  "timeline": [{"time": "Day 1, 9:00 AM", "title": "Kiyomizu-dera", "description": "Temple visit", "image": "https://img/k.jpg", "link": ""}]
}` + "\n```\nEnjoy!"

	plan, err := ParsePlan(raw)
	require.NoError(t, err)
	require.Len(t, plan.Ideas, 1)
	require.Len(t, plan.Timeline, 1)
	assert.Equal(t, "Fushimi Inari", plan.Ideas[0].Title)
	assert.Equal(t, "https://bad.example", plan.Ideas[0].Link)
	assert.Equal(t, "https://img/k.jpg", plan.Timeline[0].Image)
}

func TestParsePlan_MissingKeysDefaultToEmpty(t *testing.T) {
	plan, err := ParsePlan(`{"ideas": [{"title": "Only ideas", "description": "x"}]}`)
	require.NoError(t, err)
	assert.Len(t, plan.Ideas, 1)
	assert.NotNil(t, plan.Timeline)
	assert.Empty(t, plan.Timeline)

	plan, err = ParsePlan(`{}`)
	require.NoError(t, err)
	assert.NotNil(t, plan.Ideas)
	assert.NotNil(t, plan.Timeline)

	out, err := json.Marshal(plan)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ideas": [], "timeline": []}`, string(out))
}

func TestParsePlan_BraceInsideString(t *testing.T) {
	plan, err := ParsePlan(`{"ideas": [{"title": "Museum", "description": "cost: {10}"}]}`)
	require.NoError(t, err)
	assert.Equal(t, "cost: {10}", plan.Ideas[0].Description)
}

func TestParsePlan_Errors(t *testing.T) {
	_, err := ParsePlan("Sorry, I cannot help with that.")
	assert.ErrorIs(t, err, ErrNoJSON)

	_, err = ParsePlan("} backwards {")
	assert.ErrorIs(t, err, ErrNoJSON)

	_, err = ParsePlan(`{"ideas": [ {"title": }`)
	assert.Error(t, err)
}

func TestNormalizePlan(t *testing.T) {
	plan, err := NormalizePlan("no json here")
	assert.Error(t, err)
	assert.Equal(t, FallbackPlan(), plan)

	plan, err = NormalizePlan(`{"ideas": [], "timeline": []}`)
	require.NoError(t, err)
	assert.Empty(t, plan.Ideas)
}

func TestBuildPlanPrompt(t *testing.T) {
	p := BuildPlanPrompt("weekend in Lisbon", "2026-11-01")
	assert.Contains(t, p, "User Query: weekend in Lisbon")
	assert.Contains(t, p, "Date: 2026-11-01")
	assert.Contains(t, p, `"timeline"`)
}
