package features

import (
	"sort"
	"strings"
	"unicode"
)

var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "and": {}, "or": {}, "of": {},
	"to": {}, "in": {}, "for": {}, "with": {}, "on": {}, "at": {},
	"is": {}, "are": {}, "this": {}, "that": {},
}

// Tokenize lowercases text, splits on anything that is not a letter or a
// digit, and drops stop-words and tokens shorter than minLen runes.
func Tokenize(text string, minLen int) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	out := make([]string, 0, len(fields))
	for _, tok := range fields {
		if len([]rune(tok)) < minLen {
			continue
		}
		if _, ok := stopwords[tok]; ok {
			continue
		}
		out = append(out, tok)
	}
	return out
}

// TokenSet collects the unique tokens of all phrases.
func TokenSet(phrases []string, minLen int) map[string]struct{} {
	set := make(map[string]struct{})
	for _, p := range phrases {
		for _, tok := range Tokenize(p, minLen) {
			set[tok] = struct{}{}
		}
	}
	return set
}

// Jaccard returns intersection over union of two token sets, or 0 when
// either set is empty.
func Jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	inter := 0
	for tok := range a {
		if _, ok := b[tok]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

// TopKeywords returns the limit most frequent keywords across the given
// keyword lists, most frequent first, ties broken alphabetically.
func TopKeywords(lists [][]string, limit int) []string {
	if limit <= 0 {
		return nil
	}
	freq := make(map[string]int)
	for _, list := range lists {
		for _, k := range list {
			k = strings.ToLower(strings.TrimSpace(k))
			if k == "" {
				continue
			}
			freq[k]++
		}
	}
	if len(freq) == 0 {
		return nil
	}
	keys := make([]string, 0, len(freq))
	for k := range freq {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if freq[keys[i]] != freq[keys[j]] {
			return freq[keys[i]] > freq[keys[j]]
		}
		return keys[i] < keys[j]
	})
	if len(keys) > limit {
		keys = keys[:limit]
	}
	return keys
}
