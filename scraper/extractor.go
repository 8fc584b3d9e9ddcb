package scraper

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"paddleoffer/matching"
	"paddleoffer/models"
)

// candidateSelectors are the alternative markup shapes that tend to wrap a
// product entry on storefront listing pages. The union is deliberately
// broad: false positives are filtered by the name/price requirements below.
var candidateSelectors = []string{
	"li.product",
	"div.product",
	".product-item",
	".product-card",
	"[class*='productCard']",
	".card.card--product",
	".grid-item",
}

// nameSelectors are tried in priority order inside a candidate; the first
// one yielding non-empty text wins.
var nameSelectors = []string{
	".card-title",
	".product-title",
	".product-name",
	"h2",
	"h3",
	".name",
}

// priceSelectors are tried in priority order for the price text.
var priceSelectors = []string{
	".price",
	".price-section",
	"[class*='price']",
	".amount",
}

// currencyDigit requires at least one currency-marked digit before a
// candidate's price text is believed.
var currencyDigit = regexp.MustCompile(`[$€£]\s*[0-9]`)

// ExtractListings parses fetched markup into catalog listings using
// structural heuristics. A candidate is kept only when both a name and a
// currency-marked price were resolved. Listings are deduplicated by
// normalized name: when two raw entries collide, the one with the longer
// price text is kept (the longer text tends to carry the complete was/now
// or range information), and the first-seen position is preserved.
//
// This is best-effort extraction; accuracy is bounded by how stable the
// source page's structure is.
func ExtractListings(rawHTML string) ([]models.Listing, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, err
	}

	var listings []models.Listing
	seen := make(map[string]int)

	doc.Find(strings.Join(candidateSelectors, ", ")).Each(func(_ int, s *goquery.Selection) {
		name := extractName(s)
		price := extractPrice(s)
		if name == "" || price == "" || !currencyDigit.MatchString(price) {
			return
		}

		key := matching.Normalize(name)
		if at, ok := seen[key]; ok {
			if len(price) > len(listings[at].PriceText) {
				listings[at] = models.Listing{Name: name, PriceText: price}
			}
			return
		}
		seen[key] = len(listings)
		listings = append(listings, models.Listing{Name: name, PriceText: price})
	})

	return listings, nil
}

// extractName resolves a candidate's product name: a title-like element
// first, then a link's title attribute, then the link's text.
func extractName(s *goquery.Selection) string {
	for _, sel := range nameSelectors {
		if text := matching.Squeeze(s.Find(sel).First().Text()); text != "" {
			return text
		}
	}
	if title, ok := s.Find("a[title]").First().Attr("title"); ok {
		if text := matching.Squeeze(title); text != "" {
			return text
		}
	}
	return matching.Squeeze(s.Find("a").First().Text())
}

// extractPrice resolves a candidate's raw price text, keeping the original
// formatting apart from collapsed whitespace.
func extractPrice(s *goquery.Selection) string {
	for _, sel := range priceSelectors {
		if text := matching.Squeeze(s.Find(sel).First().Text()); text != "" {
			return text
		}
	}
	return ""
}
