package score

import (
	"regexp"
	"sort"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
)

var tokenPattern = regexp.MustCompile(`[a-z0-9]+`)

// nameSimilarity measures token-order-insensitive similarity between the
// query term and a release name, in [0,1]. Both sides are lowercased,
// stripped of punctuation noise, tokenized and sorted before comparison,
// so "Matrix.The.1999" and "The Matrix 1999" compare as equal.
func nameSimilarity(query, name string) float64 {
	a := tokenSort(query)
	b := tokenSort(name)

	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}

	ratio := levenshteinRatio(a, b)

	// Partial overlap: a short query fully contained in a long release name
	// should not be punished for the extra tokens.
	if shorter, longer := orderByLength(a, b); strings.Contains(longer, shorter) {
		contained := float64(len(shorter)) / float64(len(longer))
		if contained > ratio {
			return contained
		}
	}

	return ratio
}

// tokenSort normalizes a string into its sorted token form.
func tokenSort(s string) string {
	tokens := tokenPattern.FindAllString(strings.ToLower(s), -1)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

// levenshteinRatio converts edit distance into a similarity in [0,1].
func levenshteinRatio(a, b string) float64 {
	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}
	if longest == 0 {
		return 0
	}

	dist := levenshtein.Distance(a, b)
	return 1.0 - float64(dist)/float64(longest)
}

func orderByLength(a, b string) (shorter, longer string) {
	if len(a) <= len(b) {
		return a, b
	}
	return b, a
}
