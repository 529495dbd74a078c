package services

import (
	"crypto/rand"
	"math/big"
)

const referenceAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewPaymentReference produces the human-shareable token attached to an
// Order at creation time: 8 uppercase alphanumeric characters drawn
// uniformly, formatted as PIZZA-XXXX-XXXX. Uniqueness against existing
// orders is not checked; callers needing a guarantee must look up the
// reference and retry on collision.
func NewPaymentReference() (string, error) {
	token := make([]byte, 8)
	max := big.NewInt(int64(len(referenceAlphabet)))
	for i := range token {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		token[i] = referenceAlphabet[n.Int64()]
	}
	return "PIZZA-" + string(token[:4]) + "-" + string(token[4:]), nil
}
