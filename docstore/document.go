package docstore

import "fmt"

// CatalogEntry names one document in the fixed product catalog.
type CatalogEntry struct {
	Id    string `json:"id"`
	Title string `json:"title"`
	Path  string `json:"path"`
}

// Document is a loaded catalog entry. Content is immutable after load.
type Document struct {
	Id      string `json:"id"`
	Title   string `json:"title"`
	Path    string `json:"path"`
	Content string `json:"content"`
}

// FallbackContent is the sentinel content substituted when a fetch fails.
// The document stays in the corpus and is ranked like any other.
func FallbackContent(title string) string {
	return fmt.Sprintf("Unable to load %s. Please check the document path.", title)
}

// DefaultCatalog returns the product documentation catalog.
func DefaultCatalog() []CatalogEntry {
	return []CatalogEntry{
		{Id: "features", Title: "App Features", Path: "/docs/features.txt"},
		{Id: "pricing", Title: "Pricing Information", Path: "/docs/pricing.txt"},
		{Id: "faq", Title: "Frequently Asked Questions", Path: "/docs/faq.txt"},
		{Id: "elefantgotchi", Title: "elefantgotchi", Path: "/docs/elefantgotchi.txt"},
		{Id: "elefanttoken", Title: "elefanttoken", Path: "/docs/elefanttoken.txt"},
		{Id: "auction", Title: "auction", Path: "/docs/auction.txt"},
	}
}
