package usecases

import (
	"math"
	"strings"
)

// RelevanceRanker scores a candidate document against a query document using
// TF-IDF weights and cosine similarity over a two-document corpus.
//
// The vector vocabulary is anchored to the query document only: candidate
// terms that never appear in the query contribute nothing to either vector.
// A union vocabulary would rank differently; the anchored form is the
// behavior callers depend on.
type RelevanceRanker struct{}

// NewRelevanceRanker creates a new relevance ranker
func NewRelevanceRanker() *RelevanceRanker {
	return &RelevanceRanker{}
}

// Score returns the cosine similarity between the query and candidate texts,
// in [0, 1]. It is deterministic and performs no I/O.
func (r *RelevanceRanker) Score(queryText, candidateText string) float64 {
	queryTF := termFrequencies(queryText)
	candidateTF := termFrequencies(candidateText)
	if len(queryTF) == 0 || len(candidateTF) == 0 {
		return 0
	}

	// Two-document corpus: idf(t) = 1 + ln(2 / df(t)) with df counted over
	// {query, candidate}. The +1 smoothing keeps terms shared by both
	// documents at a low but non-zero weight so they still contribute.
	const corpusSize = 2.0

	var dot, queryNorm, candidateNorm float64
	for term, queryCount := range queryTF {
		candidateCount := candidateTF[term]

		df := 1.0
		if candidateCount > 0 {
			df = 2.0
		}
		idf := 1 + math.Log(corpusSize/df)

		wq := float64(queryCount) * idf
		wc := float64(candidateCount) * idf

		dot += wq * wc
		queryNorm += wq * wq
		candidateNorm += wc * wc
	}

	if queryNorm == 0 || candidateNorm == 0 {
		return 0
	}
	return dot / (math.Sqrt(queryNorm) * math.Sqrt(candidateNorm))
}

// termFrequencies lower-cases and whitespace-tokenizes text into raw counts
func termFrequencies(text string) map[string]int {
	tf := make(map[string]int)
	for _, token := range strings.Fields(strings.ToLower(text)) {
		tf[token]++
	}
	return tf
}
