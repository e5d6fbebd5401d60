// Package freq computes letter-frequency statistics over an alphabet.
package freq

import (
	"errors"
	"fmt"

	"github.com/verte-zerg/vigcrack/internal/alphabet"
)

// ErrEmptyCorpus reports a reference text with no alphabet characters.
var ErrEmptyCorpus = errors.New("reference corpus has no alphabet characters")

// Distribution assigns a probability to every alphabet character.
type Distribution struct {
	alpha *alphabet.Alphabet
	probs []float64
}

// Frequencies counts alphabet characters in text and normalizes the counts.
func Frequencies(a *alphabet.Alphabet, text string) (Distribution, error) {
	cleaned := a.Clean(text)
	counts := make([]float64, a.Size())
	total := 0
	for _, r := range cleaned {
		i, err := a.Encode(r)
		if err != nil {
			return Distribution{}, err
		}
		counts[i]++
		total++
	}
	if total == 0 {
		return Distribution{}, ErrEmptyCorpus
	}
	for i := range counts {
		counts[i] /= float64(total)
	}
	return Distribution{alpha: a, probs: counts}, nil
}

// FromWeights normalizes a weight per alphabet index into a distribution.
func FromWeights(a *alphabet.Alphabet, weights []float64) (Distribution, error) {
	if len(weights) != a.Size() {
		return Distribution{}, fmt.Errorf("expected %d weights, got %d", a.Size(), len(weights))
	}
	var sum float64
	for i, w := range weights {
		if w < 0 {
			return Distribution{}, fmt.Errorf("negative weight %g at index %d", w, i)
		}
		sum += w
	}
	if sum == 0 {
		return Distribution{}, ErrEmptyCorpus
	}
	probs := make([]float64, len(weights))
	for i, w := range weights {
		probs[i] = w / sum
	}
	return Distribution{alpha: a, probs: probs}, nil
}

// Alphabet returns the alphabet the distribution is defined over.
func (d Distribution) Alphabet() *alphabet.Alphabet {
	return d.alpha
}

// At returns the probability of the character at index i.
func (d Distribution) At(i int) float64 {
	if i < 0 || i >= len(d.probs) {
		return 0
	}
	return d.probs[i]
}

// Prob returns the probability of r, or 0 when r is not in the alphabet.
func (d Distribution) Prob(r rune) float64 {
	if d.alpha == nil {
		return 0
	}
	i, err := d.alpha.Encode(r)
	if err != nil {
		return 0
	}
	return d.probs[i]
}

// Sum returns the total probability mass.
func (d Distribution) Sum() float64 {
	var sum float64
	for _, p := range d.probs {
		sum += p
	}
	return sum
}

// Len returns the number of alphabet characters covered.
func (d Distribution) Len() int {
	return len(d.probs)
}

// IndexOfCoincidence returns the probability that two distinct positions of t
// hold the same character. Texts shorter than 2 have no pairs and score 0.
func IndexOfCoincidence(t alphabet.Text) float64 {
	n := len(t)
	if n < 2 {
		return 0
	}
	counts := make(map[int]int)
	for _, c := range t {
		counts[c]++
	}
	var sum int
	for _, v := range counts {
		sum += v * (v - 1)
	}
	return float64(sum) / float64(n*(n-1))
}

// ChiSquared compares the character counts of t with d scaled to len(t).
// Characters with zero expected count contribute nothing.
func ChiSquared(t alphabet.Text, d Distribution) float64 {
	counts := make([]int, len(d.probs))
	for _, c := range t {
		if c >= 0 && c < len(counts) {
			counts[c]++
		}
	}
	total := float64(len(t))
	var chi float64
	for i, p := range d.probs {
		expected := p * total
		if expected > 0 {
			diff := float64(counts[i]) - expected
			chi += diff * diff / expected
		}
	}
	return chi
}
