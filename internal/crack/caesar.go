// Package crack recovers Caesar and Vigenère keys from letter statistics.
package crack

import (
	"errors"
	"fmt"
	"math"

	"github.com/verte-zerg/vigcrack/internal/alphabet"
	"github.com/verte-zerg/vigcrack/internal/freq"
)

// ErrEmptyAlphabet reports a zero modulus or a distribution without an alphabet.
var ErrEmptyAlphabet = errors.New("alphabet is empty")

// ShiftText decrypts t by subtracting shift from every index modulo n.
func ShiftText(t alphabet.Text, shift, n int) (alphabet.Text, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: modulus %d", ErrEmptyAlphabet, n)
	}
	return shiftText(t, shift, n), nil
}

func shiftText(t alphabet.Text, shift, n int) alphabet.Text {
	out := make(alphabet.Text, len(t))
	for i, c := range t {
		out[i] = mod(c-shift, n)
	}
	return out
}

// BreakCaesar returns the shift whose decryption of t best fits expected.
// Every shift is tried; ties keep the lowest shift. An empty distribution
// yields 0.
func BreakCaesar(t alphabet.Text, expected freq.Distribution) int {
	n := expected.Len()
	bestShift := 0
	bestScore := math.Inf(1)
	for shift := 0; shift < n; shift++ {
		score := freq.ChiSquared(shiftText(t, shift, n), expected)
		if score < bestScore {
			bestScore = score
			bestShift = shift
		}
	}
	return bestShift
}

func mod(v, n int) int {
	return ((v % n) + n) % n
}
