package matching

import (
	"testing"

	"github.com/stretchr/testify/require"

	"paddleoffer/models"
)

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"  JOOLA   Perseus Pro IV ",
		"already normalized",
		"",
		"\tTabbed\n Name ",
	}
	for _, in := range inputs {
		once := Normalize(in)
		require.Equal(t, once, Normalize(once))
	}
}

func TestNormalize(t *testing.T) {
	require.Equal(t, "joola perseus pro iv", Normalize("  JOOLA   Perseus Pro IV "))
	require.Equal(t, "", Normalize("   "))
}

func TestResolveAlias(t *testing.T) {
	require.Equal(t, "peresus pro iv", ResolveAlias("ben johns perseus"))
	require.Equal(t, "peresus pro iv", ResolveAlias("used ben johns perseus paddle"))
	require.Equal(t, "no alias here", ResolveAlias("no alias here"))
}

func TestResolveAliasFirstMatchWins(t *testing.T) {
	// "ben johns perseus" precedes "perseus pro 4" in the table, so a query
	// containing both rewrites to the first entry's canonical term.
	require.Equal(t, "peresus pro iv", ResolveAlias("ben johns perseus pro 4"))
}

func TestMatchEmptyQuery(t *testing.T) {
	catalog := []models.Listing{{Name: "Joola Perseus Pro IV", PriceText: "$199.99"}}
	require.Nil(t, Match("", catalog))
	require.Nil(t, Match("   ", catalog))
}

func TestMatchSubstringPrefersGreatestOverlap(t *testing.T) {
	catalog := []models.Listing{
		{Name: "Perseus", PriceText: "$99.99"},
		{Name: "Perseus Pro IV", PriceText: "$189.99"},
	}
	// Both names are substrings of the query; the longer overlap wins
	// regardless of catalog order.
	got := Match("joola perseus pro iv 16mm", catalog)
	require.NotNil(t, got)
	require.Equal(t, "Perseus Pro IV", got.Name)
}

func TestMatchQueryContainedInName(t *testing.T) {
	catalog := []models.Listing{
		{Name: "Selkirk Vanguard Control Epic", PriceText: "$109.99"},
		{Name: "Joola Perseus Pro IV", PriceText: "$189.99"},
	}
	got := Match("perseus", catalog)
	require.NotNil(t, got)
	require.Equal(t, "Joola Perseus Pro IV", got.Name)
}

func TestMatchTokenFallback(t *testing.T) {
	catalog := []models.Listing{
		{Name: "Selkirk Amped Epic", PriceText: "$89.99"},
		{Name: "Gearbox CX11E Power", PriceText: "$129.99"},
	}
	// No substring containment either way; two of three tokens hit Selkirk.
	got := Match("epic amped midweight", catalog)
	require.NotNil(t, got)
	require.Equal(t, "Selkirk Amped Epic", got.Name)
}

func TestMatchTokenTieBreaksOnLongerName(t *testing.T) {
	catalog := []models.Listing{
		{Name: "Bantam EX-L", PriceText: "$79.99"},
		{Name: "Bantam EX-L Pro Series", PriceText: "$139.99"},
	}
	got := Match("bantam something", catalog)
	require.NotNil(t, got)
	require.Equal(t, "Bantam EX-L Pro Series", got.Name)
}

func TestMatchNoHits(t *testing.T) {
	catalog := []models.Listing{
		{Name: "Joola Perseus Pro IV", PriceText: "$189.99"},
	}
	require.Nil(t, Match("tennis racket", catalog))
}

func TestMatchAliasRewriteThenMatch(t *testing.T) {
	catalog := []models.Listing{
		{Name: "Joola Perseus Pro IV", PriceText: "$199.99"},
	}
	got := Match("perseus pro 4", catalog)
	require.NotNil(t, got)
	require.Equal(t, "Joola Perseus Pro IV", got.Name)
}
