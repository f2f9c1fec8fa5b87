// Package wordlist supplies the vocabulary used to expand endpoint
// prefixes into new candidate paths. A built-in list of common API
// path segments is used unless the caller supplies their own words.
package wordlist

import (
	"fmt"
	"os"
	"strings"

	"github.com/pathoracle/pathoracle/pkg/jsonutil"
)

// builtin covers common REST resource names, commerce, content and
// library/catalog segments seen across public APIs.
var builtin = []string{
	"admin", "login", "logout", "register", "config", "settings",
	"profile", "dashboard", "account", "users", "products", "orders",
	"reports", "data", "info", "create", "update", "delete", "search",
	"list", "detail", "status", "metrics", "stats", "analytics",
	"session", "token", "verify", "reset", "password", "security",
	"permissions", "roles", "notifications", "events", "logs",
	"history", "backup", "export", "import", "sync", "validate",
	"preferences", "categories", "items", "cart", "checkout",
	"payment", "invoice", "shipping", "tracking", "review", "rating",
	"feedback", "customer", "support", "help", "contact", "faq",
	"terms", "privacy", "policy", "subscription", "plan", "trial",
	"upgrade", "downgrade", "usage", "limits", "quota", "billing",
	"receipt", "refund", "order-history", "wishlist", "favorites",
	"recommendations", "offer", "coupon", "discount", "loyalty",
	"points", "gift", "voucher", "promotion", "news", "updates",
	"blog", "article", "announcement", "message", "chat", "forum",
	"community", "group", "team", "project", "task", "milestone",
	"calendar", "event", "schedule", "appointment", "reservation",
	"booking", "ticket", "incident", "alert", "emergency", "priority",
	"escalation", "assignment", "resource", "inventory", "warehouse",
	"supply", "demand", "forecast", "performance", "control", "panel",
	"manage", "manager", "automation", "integration", "connector",
	"api", "version", "v1", "v2", "public", "private", "internal",
	"external", "development", "staging", "production", "test",
	"debug", "configurations", "properties", "locale", "language",
	"timezone", "region", "country", "city", "district",
	"neighborhood", "address", "location", "coordinates", "map",
	"geocode", "find", "lookup", "reporting", "insights",
	"statistics", "graph", "chart", "trend", "document", "documents",
	"doc", "docs", "manual", "manuals", "guide", "guides", "tutorial",
	"tutorials", "whitepaper", "whitepapers", "academic", "academics",
	"journal", "journals", "articles", "paper", "papers",
	"publication", "publications", "book", "books", "library",
	"libraries", "thesis", "dissertation", "dissertations",
	"research", "study", "studies", "archive", "archives", "catalog",
	"catalogue", "reference", "references", "index", "indexes",
	"bibliography", "bibliographies", "handbook", "handbooks",
	"notes", "reviews", "analyses", "case-study", "case-studies",
	"overview", "summary", "abstract", "abstracts", "edition",
	"editions", "volume", "volumes", "periodical", "periodicals",
	"magazine", "magazines", "series", "encyclopedia",
	"encyclopedias", "compendium", "compendiums", "repository",
	"repositories", "database", "databases", "metadata", "curation",
	"curated", "collection", "collections", "compilation",
	"compilations", "shelf", "shelves", "cataloging", "cataloguing",
	"indexing", "monograph", "monographs", "treatise", "treatises",
	"discourse", "excerpts", "extracts", "manuscript", "manuscripts",
	"transcript", "transcripts", "dossier", "dossiers",
}

// Default returns a copy of the built-in vocabulary.
func Default() []string {
	out := make([]string, len(builtin))
	copy(out, builtin)
	return out
}

// Load merges a JSON word file and inline words into a deduplicated
// vocabulary. When both are empty the built-in list is returned.
func Load(file string, inline []string) ([]string, error) {
	var words []string
	seen := make(map[string]bool)

	add := func(w string) {
		w = strings.TrimSpace(w)
		if w == "" || seen[w] {
			return
		}
		seen[w] = true
		words = append(words, w)
	}

	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("wordlist: read %s: %w", file, err)
		}
		var fromFile []string
		if err := jsonutil.Unmarshal(data, &fromFile); err != nil {
			return nil, fmt.Errorf("wordlist: parse %s: %w", file, err)
		}
		for _, w := range fromFile {
			add(w)
		}
	}
	for _, w := range inline {
		add(w)
	}

	if len(words) == 0 {
		return Default(), nil
	}
	return words, nil
}
