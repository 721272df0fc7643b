package security

import (
	"crypto/rand"
	"errors"
	"io"
)

var (
	errNegativeLength = errors.New("length must be non-negative")
	errEmptyAlphabet  = errors.New("alphabet must not be empty")
	errLargeAlphabet  = errors.New("alphabet must have at most 256 characters")
)

// RandomString draws length characters uniformly from alphabet using
// crypto/rand. Bytes above the largest multiple of len(alphabet) are rejected
// so no character is favored.
func RandomString(length int, alphabet string) (string, error) {
	return randomStringFrom(rand.Reader, length, alphabet)
}

func randomStringFrom(source io.Reader, length int, alphabet string) (string, error) {
	switch {
	case length < 0:
		return "", errNegativeLength
	case length == 0:
		return "", nil
	case len(alphabet) == 0:
		return "", errEmptyAlphabet
	case len(alphabet) > 256:
		return "", errLargeAlphabet
	}

	size := len(alphabet)
	ceiling := 256 - 256%size
	value := make([]byte, 0, length)
	buffer := make([]byte, length)
	for len(value) < length {
		buffer = buffer[:length-len(value)]
		if _, err := io.ReadFull(source, buffer); err != nil {
			return "", err
		}
		for _, b := range buffer {
			if int(b) >= ceiling {
				continue
			}
			value = append(value, alphabet[int(b)%size])
		}
	}
	return string(value), nil
}
