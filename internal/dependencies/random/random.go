package random

import (
	"crypto/rand"
	"math/big"
)

// Random abstracts randomness so bot move choice and game-ID
// generation can be driven deterministically in tests.
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int

	// String builds a random string of the given length drawn from
	// the alphabet
	String(length int, alphabet string) string
}

// CryptoRandom draws from crypto/rand
type CryptoRandom struct{}

// New creates a CryptoRandom
func New() *CryptoRandom {
	return &CryptoRandom{}
}

// Intn returns a random int in [0, n); 0 when n is not positive
func (r *CryptoRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	max := big.NewInt(int64(n))
	result, err := rand.Int(rand.Reader, max)
	if err != nil {
		// crypto/rand read failures are not recoverable here; an
		// arbitrary index is still a legal choice for every caller
		return 0
	}
	return int(result.Int64())
}

// String builds a random string of the given length from the alphabet
func (r *CryptoRandom) String(length int, alphabet string) string {
	if length <= 0 || len(alphabet) == 0 {
		return ""
	}
	result := make([]byte, length)
	for i := 0; i < length; i++ {
		result[i] = alphabet[r.Intn(len(alphabet))]
	}
	return string(result)
}
