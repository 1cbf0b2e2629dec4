// Package ordernum generates human-facing order references.
package ordernum

import (
	"crypto/rand"

	"github.com/pkg/errors"
)

// alphabet is the set of characters used for the random suffix.
// Uppercase alphanumerics keep order numbers easy to read aloud.
const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// SuffixLength is the number of random characters appended to the prefix.
const SuffixLength = 8

// Generate returns prefix plus a random uppercase alphanumeric suffix,
// e.g. "GS-7K2PQ9XA". Uniqueness is probabilistic; the checkout transaction
// retries on a unique-constraint collision.
func Generate(prefix string) (string, error) {
	buf := make([]byte, SuffixLength)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes")
	}

	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}

	return prefix + string(buf), nil
}
