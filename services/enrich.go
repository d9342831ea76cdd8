package services

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Enricher fills missing images and recomputes map links for every item of
// a plan. Lookups run concurrently; each writes only its own slot.
type Enricher struct {
	images      ImageFinder
	concurrency int
}

func NewEnricher(images ImageFinder, concurrency int) *Enricher {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &Enricher{images: images, concurrency: concurrency}
}

func (e *Enricher) Enrich(ctx context.Context, payload *GeneratePayload) {
	if payload.Ideas == nil {
		payload.Ideas = []TripIdea{}
	}
	if payload.Timeline == nil {
		payload.Timeline = []TimelineEvent{}
	}

	var g errgroup.Group
	g.SetLimit(e.concurrency)

	for i := range payload.Ideas {
		idea := &payload.Ideas[i]
		idea.Link = MapLink(idea.Title)
		if idea.Image == "" && idea.Title != "" {
			g.Go(func() error {
				idea.Image = e.images.FindImage(ctx, idea.Title)
				return nil
			})
		}
	}

	for i := range payload.Timeline {
		event := &payload.Timeline[i]
		event.Link = MapLink(event.Title)
		if event.Image == "" && event.Title != "" {
			g.Go(func() error {
				event.Image = e.images.FindImage(ctx, event.Title)
				return nil
			})
		}
	}

	// Lookups never return errors; failures surface as an empty image.
	_ = g.Wait()
}
