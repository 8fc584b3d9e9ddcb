package scraper

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const listingPage = `
<html><body>
<ul class="listings">
  <li class="product">
    <h3>Joola Perseus Pro IV</h3>
    <span class="price">$189.99</span>
  </li>
  <li class="product">
    <a title="Selkirk Power Air Invikta" href="/p/invikta"></a>
    <div class="price">$120.00 – $150.00</div>
  </li>
  <li class="product">
    <h3>Mystery Paddle</h3>
    <span class="price">Call for price</span>
  </li>
  <li class="product">
    <h3>Joola   Perseus
      Pro IV</h3>
    <span class="price">Was $220.00 Now $189.99</span>
  </li>
  <li class="product">
    <a href="/p/prism">Vatic Pro Prism Flash</a>
    <span class="amount">$94.99</span>
  </li>
  <li class="product">
    <span class="price">$59.99</span>
  </li>
</ul>
</body></html>`

func TestExtractListings(t *testing.T) {
	listings, err := ExtractListings(listingPage)
	require.NoError(t, err)

	// Mystery Paddle has no currency-marked digit and the nameless entry has
	// no name; both are dropped. The duplicate Perseus collapses.
	require.Len(t, listings, 3)

	// First-seen order survives dedup, but the longer price text wins.
	require.Equal(t, "Joola Perseus Pro IV", listings[0].Name)
	require.Equal(t, "Was $220.00 Now $189.99", listings[0].PriceText)

	require.Equal(t, "Selkirk Power Air Invikta", listings[1].Name)
	require.Equal(t, "$120.00 – $150.00", listings[1].PriceText)

	require.Equal(t, "Vatic Pro Prism Flash", listings[2].Name)
	require.Equal(t, "$94.99", listings[2].PriceText)
}

func TestExtractListingsDedupKeepsLongerPriceText(t *testing.T) {
	page := `
	<div class="product"><h3>Bantam EX-L</h3><span class="price">$79.99</span></div>
	<div class="product"><h3>bantam  ex-l</h3><span class="price">$79.99 off</span></div>`

	listings, err := ExtractListings(page)
	require.NoError(t, err)
	require.Len(t, listings, 1)
	require.Equal(t, "$79.99 off", listings[0].PriceText)
}

func TestExtractListingsEmptyPage(t *testing.T) {
	listings, err := ExtractListings("<html><body><p>maintenance</p></body></html>")
	require.NoError(t, err)
	require.Empty(t, listings)
}

func TestExtractListingsCollapsesWhitespace(t *testing.T) {
	page := `<li class="product"><h3>Joola
	  Perseus   Pro IV</h3><span class="price">$ 189.99</span></li>`

	listings, err := ExtractListings(page)
	require.NoError(t, err)
	require.Len(t, listings, 1)
	require.Equal(t, "Joola Perseus Pro IV", listings[0].Name)
	require.Equal(t, "$ 189.99", listings[0].PriceText)
}
