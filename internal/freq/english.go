package freq

import "github.com/verte-zerg/vigcrack/internal/alphabet"

// English letter frequencies a-z from a large general corpus.
var englishWeights = []float64{
	0.08167, 0.01492, 0.02782, 0.04253, 0.12702, 0.02228, 0.02015, // a-g
	0.06094, 0.06966, 0.00153, 0.00772, 0.04025, 0.02406, 0.06749, // h-n
	0.07507, 0.01929, 0.00095, 0.05987, 0.06327, 0.09056, 0.02758, // o-u
	0.00978, 0.02360, 0.00150, 0.01974, 0.00074, // v-z
}

// English returns the built-in English distribution over the "en" alphabet.
func English() (Distribution, error) {
	a, err := alphabet.Lookup("en")
	if err != nil {
		return Distribution{}, err
	}
	return FromWeights(a, englishWeights)
}
