package shortener

import (
	"crypto/sha256"
	"strconv"

	"github.com/jaevor/go-nanoid"
)

// Generator produces one candidate code per call. Candidates are well
// distributed but not guaranteed unique; the Repository enforces uniqueness
// on insert. Implementations must be safe for concurrent use.
type Generator func(targetURL string, attempt int) Code

// NewRandomGenerator returns a Generator backed by nanoid over Alphabet.
// It ignores the URL and attempt number.
func NewRandomGenerator(length int) (Generator, error) {
	gen, err := nanoid.CustomASCII(Alphabet, length)
	if err != nil {
		return nil, err
	}

	return func(string, int) Code {
		return Code(gen())
	}, nil
}

// NewHashGenerator returns a Generator that derives the code from a SHA-256
// hash of the URL salted with the attempt number, so a collision retry
// yields a different candidate for the same URL.
func NewHashGenerator(length int) Generator {
	return func(targetURL string, attempt int) Code {
		sum := sha256.Sum256([]byte(targetURL + "#" + strconv.Itoa(attempt)))

		code := make([]byte, length)
		for i := range code {
			code[i] = Alphabet[int(sum[i%len(sum)])%len(Alphabet)]
		}

		return Code(code)
	}
}
