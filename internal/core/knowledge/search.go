package knowledge

import "strings"

// FAQMatch is a search hit: an FAQ entry together with its source category.
// Matches are request-scoped, never stored.
type FAQMatch struct {
	Category string `json:"category"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// SearchFAQ returns every FAQ entry whose question or answer contains query
// as a case-insensitive substring, in stored category/entry order. That
// encounter order is the ranking; there is no scoring. When category is
// non-empty, only the category with that name (case-insensitive) is
// searched; an unknown category yields no results.
//
// An empty query matches every entry, because the empty string is a
// substring of everything. Callers relying on retrieval quality should pass
// a real utterance; the behavior itself is intentional and pinned by tests.
func (b *Base) SearchFAQ(query, category string) []FAQMatch {
	needle := strings.ToLower(query)
	results := []FAQMatch{}

	for _, cat := range b.FAQ {
		if category != "" && !strings.EqualFold(cat.Category, category) {
			continue
		}
		for _, entry := range cat.Entries {
			if strings.Contains(strings.ToLower(entry.Question), needle) ||
				strings.Contains(strings.ToLower(entry.Answer), needle) {
				results = append(results, FAQMatch{
					Category: cat.Category,
					Question: entry.Question,
					Answer:   entry.Answer,
				})
			}
		}
	}

	return results
}
