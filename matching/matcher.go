package matching

import (
	"strings"

	"paddleoffer/models"
)

// Match resolves a free-text model name against a scraped catalog and
// returns the best matching listing, or nil when nothing matches.
//
// The query is normalized and alias-rewritten, then matched in two phases:
// a substring containment phase scored by overlap length, and a
// token-overlap fallback scored by how many query words appear in the
// listing name. Substring containment is a high-precision proxy for "same
// product, slightly different naming"; token overlap recovers partial
// matches when word order or extra qualifiers differ.
func Match(modelText string, catalog []models.Listing) *models.Listing {
	query := Normalize(modelText)
	if query == "" {
		return nil
	}
	query = ResolveAlias(query)

	if best := matchBySubstring(query, catalog); best != nil {
		return best
	}
	return matchByTokens(query, catalog)
}

// matchBySubstring scans for listings whose normalized name contains the
// query or is contained by it. The winner is the match with the greatest
// overlap length (the shorter of the two strings), which disambiguates
// when several catalog entries are substrings of one another. Scoring by
// overlap rather than taking the first hit keeps the result independent
// of scrape order.
func matchBySubstring(query string, catalog []models.Listing) *models.Listing {
	var best *models.Listing
	bestOverlap := 0

	for i := range catalog {
		name := Normalize(catalog[i].Name)
		if name == "" {
			continue
		}
		if !strings.Contains(name, query) && !strings.Contains(query, name) {
			continue
		}
		overlap := len(name)
		if len(query) < overlap {
			overlap = len(query)
		}
		if overlap > bestOverlap {
			bestOverlap = overlap
			best = &catalog[i]
		}
	}
	return best
}

// matchByTokens counts how many whitespace-separated query tokens appear as
// substrings of each normalized listing name. The entry with the most hits
// wins; ties go to the longer original name, on the theory that the longer
// listing is the more specific one. Zero hits means no match.
func matchByTokens(query string, catalog []models.Listing) *models.Listing {
	tokens := strings.Fields(query)

	var best *models.Listing
	bestHits := 0

	for i := range catalog {
		name := Normalize(catalog[i].Name)
		hits := 0
		for _, tok := range tokens {
			if strings.Contains(name, tok) {
				hits++
			}
		}
		if hits == 0 {
			continue
		}
		if hits > bestHits || (hits == bestHits && len(catalog[i].Name) > len(best.Name)) {
			bestHits = hits
			best = &catalog[i]
		}
	}
	return best
}
