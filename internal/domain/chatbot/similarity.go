package chatbot

import "strings"

// Score blends sequence similarity against the question text with keyword
// overlap into a single confidence value in [0, 1]. Inputs are normalized
// independently, so case and punctuation variants score identically.
func Score(cfg Config, query, question string, keywords []string) float64 {
	q := Normalize(query)
	qn := Normalize(question)
	kw := Normalize(strings.Join(keywords, " "))

	questionSimilarity := matchRatio(q, qn)
	keywordScore := keywordOverlap(q, kw)

	return cfg.QuestionWeight*questionSimilarity + cfg.KeywordWeight*keywordScore
}

// matchRatio is the classic string-diff metric 2*M/T, where M counts the
// characters covered by greedily chosen longest common blocks and T is the
// combined length of both strings. 1.0 only for identical strings.
func matchRatio(a, b string) float64 {
	ar := []rune(a)
	br := []rune(b)
	total := len(ar) + len(br)
	if total == 0 {
		return 1.0
	}
	matched := matchingChars(ar, br)
	return 2.0 * float64(matched) / float64(total)
}

// matchingChars finds the longest common block, then recurses on the
// unmatched pieces to its left and right.
func matchingChars(a, b []rune) int {
	ai, bi, size := longestCommonBlock(a, b)
	if size == 0 {
		return 0
	}
	matched := size
	matched += matchingChars(a[:ai], b[:bi])
	matched += matchingChars(a[ai+size:], b[bi+size:])
	return matched
}

// longestCommonBlock returns the start offsets and length of the longest
// common contiguous run. Ties keep the earliest block in a, then in b.
func longestCommonBlock(a, b []rune) (int, int, int) {
	var bestA, bestB, bestSize int
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 0; i < len(a); i++ {
		for j := 0; j < len(b); j++ {
			if a[i] != b[j] {
				curr[j+1] = 0
				continue
			}
			run := prev[j] + 1
			curr[j+1] = run
			if run > bestSize {
				bestSize = run
				bestA = i - run + 1
				bestB = j - run + 1
			}
		}
		prev, curr = curr, prev
	}
	return bestA, bestB, bestSize
}

// keywordOverlap is the fraction of the query's distinct tokens that also
// appear among the keyword tokens. Asymmetric: unmatched keyword tokens do
// not penalize the score.
func keywordOverlap(normalizedQuery, normalizedKeywords string) float64 {
	queryTokens := tokenSet(normalizedQuery)
	keywordTokens := tokenSet(normalizedKeywords)

	matches := 0
	for token := range queryTokens {
		if keywordTokens[token] {
			matches++
		}
	}

	denom := len(queryTokens)
	if denom < 1 {
		denom = 1
	}
	return float64(matches) / float64(denom)
}

func tokenSet(s string) map[string]bool {
	fields := strings.Fields(s)
	set := make(map[string]bool, len(fields))
	for _, f := range fields {
		set[f] = true
	}
	return set
}
