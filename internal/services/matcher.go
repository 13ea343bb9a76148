package services

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// MatcherService scores the lexical similarity of a job summary against a
// resume text as a percentage in [0, 100].
type MatcherService interface {
	Score(jobSummary, resumeText string) float64
}

type matcherService struct {
	filterStopWords bool
}

// NewMatcherService builds a stateless matcher. Every Score call constructs
// its own two-document vector space; no fitted vocabulary is shared between
// calls, so unrelated pairs can never leak terms into each other.
func NewMatcherService(filterStopWords bool) MatcherService {
	return &matcherService{filterStopWords: filterStopWords}
}

// Score implements MatcherService.
//
// The corpus for IDF purposes is exactly the two inputs: term frequencies are
// raw counts, IDF is the smoothed ln((1+n)/(1+df))+1 with n=2, and the result
// is the cosine of the two weighted vectors scaled to a percentage. A
// degenerate pair (either side empty, or all tokens filtered) scores 0.0;
// Score never fails.
func (m *matcherService) Score(jobSummary, resumeText string) (score float64) {
	defer func() {
		if r := recover(); r != nil {
			score = 0.0
		}
	}()

	termsA := m.tokenize(jobSummary)
	termsB := m.tokenize(resumeText)
	if len(termsA) == 0 || len(termsB) == 0 {
		return 0.0
	}

	vocab := sharedVocabulary(termsA, termsB)

	// Weighted vectors over the shared vocabulary. Iterating the sorted
	// vocabulary keeps summation order fixed, so repeated calls are
	// bit-identical.
	var dot, normA, normB float64
	for _, term := range vocab {
		df := 0
		if termsA[term] > 0 {
			df++
		}
		if termsB[term] > 0 {
			df++
		}

		idf := math.Log(3.0/(1.0+float64(df))) + 1.0
		wa := float64(termsA[term]) * idf
		wb := float64(termsB[term]) * idf

		dot += wa * wb
		normA += wa * wa
		normB += wb * wb
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}

	cos := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	if cos < 0 {
		cos = 0
	}
	if cos > 1 {
		cos = 1
	}

	return cos * 100.0
}

// tokenize lowercases and splits on non-alphanumeric boundaries, optionally
// dropping stop words.
func (m *matcherService) tokenize(text string) map[string]int {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	counts := make(map[string]int, len(fields))
	for _, token := range fields {
		if m.filterStopWords && isStopWord(token) {
			continue
		}
		counts[token]++
	}

	return counts
}

func sharedVocabulary(a, b map[string]int) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	vocab := make([]string, 0, len(a)+len(b))

	for term := range a {
		if _, ok := seen[term]; !ok {
			seen[term] = struct{}{}
			vocab = append(vocab, term)
		}
	}
	for term := range b {
		if _, ok := seen[term]; !ok {
			seen[term] = struct{}{}
			vocab = append(vocab, term)
		}
	}

	sort.Strings(vocab)
	return vocab
}
