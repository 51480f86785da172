package filter

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer strips combining marks after NFD decomposition, so
// "Vestuário" and "vestuario" compare equal.
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lower-cases and accent-folds a string.
func Fold(s string) string {
	out, _, err := transform.String(foldTransformer, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}

// Tokenize splits folded text into word tokens.
func Tokenize(s string) []string {
	return strings.FieldsFunc(Fold(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// containsPhrase reports whether the keyword (a single word or a multi-word
// phrase) occurs in the token sequence at word boundaries, and how many times.
func containsPhrase(tokens []string, keyword string) int {
	kw := Tokenize(keyword)
	if len(kw) == 0 || len(kw) > len(tokens) {
		return 0
	}
	count := 0
	for i := 0; i+len(kw) <= len(tokens); i++ {
		match := true
		for j, w := range kw {
			if tokens[i+j] != w {
				match = false
				break
			}
		}
		if match {
			count++
		}
	}
	return count
}

// lcsRatio is the longest-common-subsequence similarity of two folded
// strings: 2×LCS / (len(a)+len(b)), in [0, 1].
func lcsRatio(a, b string) float64 {
	ra, rb := []rune(Fold(a)), []rune(Fold(b))
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}
	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			if ra[i-1] == rb[j-1] {
				cur[j] = prev[j-1] + 1
			} else if prev[j] >= cur[j-1] {
				cur[j] = prev[j]
			} else {
				cur[j] = cur[j-1]
			}
		}
		prev, cur = cur, prev
	}
	lcs := prev[len(rb)]
	return 2 * float64(lcs) / float64(len(ra)+len(rb))
}

// fuzzyContains reports whether any window of the token sequence matches the
// candidate with LCS similarity at or above the threshold. The window length
// mirrors the candidate's word count.
func fuzzyContains(tokens []string, candidate string, threshold float64) bool {
	words := Tokenize(candidate)
	if len(words) == 0 {
		return false
	}
	n := len(words)
	joined := strings.Join(words, " ")
	for i := 0; i+n <= len(tokens); i++ {
		window := strings.Join(tokens[i:i+n], " ")
		if window == joined || lcsRatio(window, joined) >= threshold {
			return true
		}
	}
	return false
}
