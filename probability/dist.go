package probability

import (
	"math"
	"sort"
)

// Dist is a probability distribution over yield strings. Operations on
// the fibre keep it normalized; an empty Dist is valid and carries no
// mass.
type Dist map[string]float64

// Sum returns the total mass of the distribution.
func (d Dist) Sum() float64 {
	total := 0.0
	for _, p := range d {
		total += p
	}

	return total
}

// Normalized returns a copy re-scaled to sum to 1. A distribution with
// zero total mass is returned as an empty copy unchanged in meaning.
func (d Dist) Normalized() Dist {
	out := make(Dist, len(d))
	total := d.Sum()
	if total <= 0 {
		for k, p := range d {
			out[k] = p
		}

		return out
	}
	for k, p := range d {
		out[k] = p / total
	}

	return out
}

// Entropy returns the Shannon entropy of the distribution in bits.
func (d Dist) Entropy() float64 {
	h := 0.0
	for _, p := range d {
		if p > 0 {
			h -= p * math.Log2(p)
		}
	}

	return h
}

// Entry pairs a yield with its probability.
type Entry struct {
	Yield string
	Prob  float64
}

// TopK returns the k most probable yields in descending probability
// order, ties broken by yield string for reproducibility.
func (d Dist) TopK(k int) []Entry {
	entries := make([]Entry, 0, len(d))
	for y, p := range d {
		entries = append(entries, Entry{Yield: y, Prob: p})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Prob != entries[j].Prob {
			return entries[i].Prob > entries[j].Prob
		}

		return entries[i].Yield < entries[j].Yield
	})
	if k < len(entries) {
		entries = entries[:k]
	}

	return entries
}
