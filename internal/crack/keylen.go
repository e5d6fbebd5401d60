package crack

import (
	"fmt"
	"sort"

	"github.com/verte-zerg/vigcrack/internal/alphabet"
	"github.com/verte-zerg/vigcrack/internal/freq"
)

// KeyLengthScore is the average index of coincidence for one key length.
type KeyLengthScore struct {
	Length int
	AvgIC  float64
}

// Segment returns the characters of t at positions offset, offset+step, ...
func Segment(t alphabet.Text, offset, step int) alphabet.Text {
	if step <= 0 || offset < 0 || offset >= len(t) {
		return alphabet.Text{}
	}
	out := make(alphabet.Text, 0, (len(t)-offset+step-1)/step)
	for i := offset; i < len(t); i += step {
		out = append(out, t[i])
	}
	return out
}

// GuessKeyLength ranks every length in [1, maxLen] by the average index of
// coincidence of its interleaved segments, highest first.
func GuessKeyLength(t alphabet.Text, maxLen int) ([]KeyLengthScore, error) {
	if maxLen < 1 {
		return nil, fmt.Errorf("%w: max key length %d", ErrKeyLengthOutOfRange, maxLen)
	}
	scores := make([]KeyLengthScore, 0, maxLen)
	for k := 1; k <= maxLen; k++ {
		var sum float64
		for i := 0; i < k; i++ {
			sum += freq.IndexOfCoincidence(Segment(t, i, k))
		}
		scores = append(scores, KeyLengthScore{Length: k, AvgIC: sum / float64(k)})
	}
	sort.SliceStable(scores, func(i, j int) bool {
		return keyLengthLess(scores[i], scores[j])
	})
	return scores, nil
}

func keyLengthLess(a, b KeyLengthScore) bool {
	if a.AvgIC != b.AvgIC {
		return a.AvgIC > b.AvgIC
	}
	return a.Length < b.Length
}
