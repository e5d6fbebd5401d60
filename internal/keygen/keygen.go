// Package keygen builds random Vigenère keys.
package keygen

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/verte-zerg/vigcrack/internal/alphabet"
)

// Generator produces random keys over an alphabet.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewSeeded returns a deterministic Generator.
func NewSeeded(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Key returns length characters drawn uniformly from a.
func (g *Generator) Key(a *alphabet.Alphabet, length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("key length must be > 0, got %d", length)
	}
	runes := a.Runes()
	out := make([]rune, length)
	for i := range out {
		out[i] = runes[g.rnd.Intn(len(runes))]
	}
	return string(out), nil
}
