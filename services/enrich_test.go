package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeImages returns a fixed image per title and records the queries it saw.
type fakeImages struct {
	mu      sync.Mutex
	images  map[string]string
	queries []string
}

func (f *fakeImages) FindImage(_ context.Context, query string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, query)
	return f.images[query]
}

func TestEnricher_FillsMissingImages(t *testing.T) {
	images := &fakeImages{images: map[string]string{
		"Louvre": "https://img/louvre.jpg",
	}}
	plan := GeneratePayload{
		Ideas: []TripIdea{
			{Title: "Louvre", Image: ""},
			{Title: "Unknown Cafe", Image: ""},
		},
		Timeline: []TimelineEvent{},
	}

	NewEnricher(images, 2).Enrich(context.Background(), &plan)

	assert.Equal(t, "https://img/louvre.jpg", plan.Ideas[0].Image)
	assert.Equal(t, "", plan.Ideas[1].Image)
	assert.ElementsMatch(t, []string{"Louvre", "Unknown Cafe"}, images.queries)
}

func TestEnricher_KeepsExistingImages(t *testing.T) {
	images := &fakeImages{images: map[string]string{"Louvre": "https://img/other.jpg"}}
	plan := GeneratePayload{
		Ideas:    []TripIdea{{Title: "Louvre", Image: "https://ai/louvre.jpg"}},
		Timeline: []TimelineEvent{{Time: "Day 1", Title: "Louvre", Image: "https://ai/t.jpg"}},
	}

	NewEnricher(images, 1).Enrich(context.Background(), &plan)

	assert.Equal(t, "https://ai/louvre.jpg", plan.Ideas[0].Image)
	assert.Equal(t, "https://ai/t.jpg", plan.Timeline[0].Image)
	assert.Empty(t, images.queries)
}

func TestEnricher_AlwaysOverwritesLink(t *testing.T) {
	plan := GeneratePayload{
		Ideas:    []TripIdea{{Title: "Sagrada Familia", Image: "x", Link: "https://ai-made-this-up.example"}},
		Timeline: []TimelineEvent{{Title: "Park Guell", Image: "y", Link: "not a url"}},
	}

	NewEnricher(&fakeImages{}, 4).Enrich(context.Background(), &plan)

	assert.Equal(t, MapLink("Sagrada Familia"), plan.Ideas[0].Link)
	assert.Equal(t, MapLink("Park Guell"), plan.Timeline[0].Link)
}

func TestEnricher_PreservesOrder(t *testing.T) {
	images := &fakeImages{images: map[string]string{}}
	titles := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	plan := GeneratePayload{}
	for _, title := range titles {
		images.images[title] = "https://img/" + title
		plan.Ideas = append(plan.Ideas, TripIdea{Title: title})
		plan.Timeline = append(plan.Timeline, TimelineEvent{Title: title})
	}

	NewEnricher(images, 3).Enrich(context.Background(), &plan)

	require.Len(t, plan.Ideas, len(titles))
	for i, title := range titles {
		assert.Equal(t, title, plan.Ideas[i].Title)
		assert.Equal(t, "https://img/"+title, plan.Ideas[i].Image)
		assert.Equal(t, "https://img/"+title, plan.Timeline[i].Image)
		assert.Equal(t, MapLink(title), plan.Timeline[i].Link)
	}
}

func TestEnricher_NilSlicesBecomeEmpty(t *testing.T) {
	var plan GeneratePayload
	NewEnricher(&fakeImages{}, 0).Enrich(context.Background(), &plan)
	assert.NotNil(t, plan.Ideas)
	assert.NotNil(t, plan.Timeline)
}

func TestEnricher_FallbackPlanIsUnchanged(t *testing.T) {
	images := &fakeImages{}
	plan := FallbackPlan()
	NewEnricher(images, 2).Enrich(context.Background(), &plan)
	assert.Equal(t, FallbackPlan(), plan)
	assert.Empty(t, images.queries)
}
