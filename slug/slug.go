// Package slug produces URL-safe identifiers for catalog entries and
// listings. Slugs are the public handles used in catalog filter parameters
// (?slugs=rolex,omega), so generation must be deterministic: the same input
// always yields the same slug.
package slug

import (
	"sort"
	"strings"
	"unicode"
)

// asciiFold maps the accented characters that show up in watchmaker names
// (Frédérique, Glashütte, Büsser) to their ASCII equivalents. Anything not in
// the table and not alphanumeric becomes a separator.
var asciiFold = map[rune]string{
	'à': "a", 'á': "a", 'â': "a", 'ä': "a", 'å': "a",
	'ç': "c",
	'è': "e", 'é': "e", 'ê': "e", 'ë': "e",
	'ì': "i", 'í': "i", 'î': "i", 'ï': "i",
	'ñ': "n",
	'ò': "o", 'ó': "o", 'ô': "o", 'ö': "o", 'ø': "o",
	'ù': "u", 'ú': "u", 'û': "u", 'ü': "u",
	'ý': "y",
	'æ': "ae", 'œ': "oe", 'ß': "ss",
	'&': "and",
}

// Make converts a display name into a slug: lowercase, accents folded to
// ASCII, every run of non-alphanumeric characters collapsed into a single
// hyphen, no leading or trailing hyphen.
//
//	"Audemars Piguet"   → "audemars-piguet"
//	"Glashütte Original" → "glashutte-original"
//	"H. Moser & Cie."   → "h-moser-and-cie"
func Make(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	pendingSep := false
	for _, r := range strings.ToLower(name) {
		var part string
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			part = string(r)
		default:
			if folded, ok := asciiFold[r]; ok {
				part = folded
			} else if unicode.IsLetter(r) || unicode.IsDigit(r) {
				// Non-Latin letters pass through so non-ASCII names still
				// produce a usable slug.
				part = string(r)
			} else {
				pendingSep = b.Len() > 0
				continue
			}
		}
		if pendingSep {
			b.WriteByte('-')
			pendingSep = false
		}
		b.WriteString(part)
	}
	return b.String()
}

// Normalize canonicalizes a client-supplied slug filter value so lookups are
// case- and whitespace-insensitive. It does not re-slugify: an already valid
// slug passes through unchanged.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizeSet canonicalizes, deduplicates and sorts a set of slug filter
// values. Empty values are dropped. The result is order-independent: any
// permutation of the same input set yields the same output slice.
func NormalizeSet(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		n := Normalize(v)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
