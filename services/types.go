package services

// ─── Structured plan ──────────────────────────────────────────────────────────

type TripIdea struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Link        string `json:"link"`
}

type TimelineEvent struct {
	Time        string `json:"time"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Link        string `json:"link"`
}

// GeneratePayload is the structured-mode response. Ideas and Timeline are
// never nil once normalized, so they always encode as JSON arrays.
type GeneratePayload struct {
	Ideas    []TripIdea      `json:"ideas"`
	Timeline []TimelineEvent `json:"timeline"`
}

// ─── Search-grounded answer ───────────────────────────────────────────────────

type Reference struct {
	Title   string `json:"title,omitempty"`
	URL     string `json:"url,omitempty"`
	Snippet string `json:"snippet,omitempty"`
}

type ChatAnswer struct {
	Answer     string      `json:"answer"`
	References []Reference `json:"references"`
}
