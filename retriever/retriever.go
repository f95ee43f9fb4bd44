package retriever

import "context"

// Retriever selects the grounding document for a query. A nil Result means
// no document met the confidence threshold; embedding failures are reported
// the same way rather than surfaced to the conversation.
type Retriever interface {
	Retrieve(ctx context.Context, query string) (*Result, error)
}

// Result is the single document chosen to ground a reply.
type Result struct {
	Id      string  `json:"id"`
	Title   string  `json:"title"`
	Content string  `json:"content"`
	Score   float64 `json:"score"`
}
