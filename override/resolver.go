package override

import "strings"

// Trigger forces a specific document whenever any of its phrases appears in
// the raw query, regardless of similarity ranking.
type Trigger struct {
	Phrases []string
	DocId   string
}

// Resolver matches queries against an ordered trigger table. Triggers are
// evaluated in declaration order and a later match overwrites an earlier
// one, so the last evaluated trigger wins. Do not convert this to
// first-match-wins without a product decision.
type Resolver struct {
	triggers []Trigger
}

// Resolve returns the forced document id for the raw query, if any. The
// match is a case-insensitive substring check.
func (r *Resolver) Resolve(raw string) (string, bool) {
	lower := strings.ToLower(raw)

	var docId string
	var matched bool

	for _, trigger := range r.triggers {
		for _, phrase := range trigger.Phrases {
			if strings.Contains(lower, strings.ToLower(phrase)) {
				docId = trigger.DocId
				matched = true
				break
			}
		}
	}

	return docId, matched
}

// DefaultTriggers returns the product trigger table: the elefantgotchi
// feature name, then pricing vocabulary. Pricing is evaluated last and so
// wins when both match.
func DefaultTriggers() []Trigger {
	return []Trigger{
		{Phrases: []string{"elefantgotchi"}, DocId: "elefantgotchi"},
		{Phrases: []string{"price", "cost", "subscription", "plan"}, DocId: "pricing"},
	}
}

func NewResolver(triggers ...Trigger) *Resolver {
	if len(triggers) == 0 {
		triggers = DefaultTriggers()
	}

	return &Resolver{
		triggers: triggers,
	}
}
