package relevance

import "sort"

// Scores maps document ids to non-negative relevance scores. An empty
// map is valid and ranks nothing.
type Scores map[string]float64

// DocScore pairs a document id with its score.
type DocScore struct {
	DocID string
	Score float64
}

// TopK returns the k highest-scoring documents in descending order,
// ties broken by document id for reproducibility.
func (s Scores) TopK(k int) []DocScore {
	ranked := make([]DocScore, 0, len(s))
	for id, score := range s {
		ranked = append(ranked, DocScore{DocID: id, Score: score})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}

		return ranked[i].DocID < ranked[j].DocID
	})
	if k < len(ranked) {
		ranked = ranked[:k]
	}

	return ranked
}

// Normalized returns a copy with scores scaled into [0,1] by the
// maximum score. An empty or all-zero map is returned as a plain copy.
func (s Scores) Normalized() Scores {
	out := make(Scores, len(s))
	maxScore := 0.0
	for _, score := range s {
		if score > maxScore {
			maxScore = score
		}
	}
	for id, score := range s {
		if maxScore > 0 {
			out[id] = score / maxScore
			continue
		}
		out[id] = score
	}

	return out
}

// FilterThreshold returns a copy keeping only documents scoring at or
// above threshold.
func (s Scores) FilterThreshold(threshold float64) Scores {
	out := make(Scores)
	for id, score := range s {
		if score >= threshold {
			out[id] = score
		}
	}

	return out
}

// clone returns a plain copy of the score map.
func (s Scores) clone() Scores {
	out := make(Scores, len(s))
	for id, score := range s {
		out[id] = score
	}

	return out
}
