package matching

import "strings"

// aliasEntry maps a known user phrasing to the term the source catalog
// actually uses. Entries are scanned in order and the first matching key
// wins, so more specific phrasings must come before shorter ones. This is
// a slice rather than a map because map iteration order would make the
// substitution nondeterministic.
type aliasEntry struct {
	key       string
	canonical string
}

// aliases covers the phrasings users type most often that diverge from the
// catalog's naming. Note "peresus" is how the source page spells it.
var aliases = []aliasEntry{
	{"ben johns perseus", "peresus pro iv"},
	{"perseus pro 4", "perseus pro iv"},
	{"anna leigh waters", "bantam tko-c"},
	{"hyperion 3", "hyperion pro iii"},
	{"vanguard power air", "power air invikta"},
}

// ResolveAlias rewrites a normalized query when it contains a known alias
// key, replacing the whole query with the mapped canonical term. Scanning
// stops at the first hit; unmatched queries pass through unchanged.
func ResolveAlias(query string) string {
	for _, a := range aliases {
		if strings.Contains(query, a.key) {
			return a.canonical
		}
	}
	return query
}
