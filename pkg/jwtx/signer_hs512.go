package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// MinSecretBytes is the smallest shared secret we accept for HMAC signing.
// Anything shorter is trivially brute-forceable.
const MinSecretBytes = 32

// HS512Signer implements the Signer interface using HMAC-SHA-512.
type HS512Signer struct {
	key []byte
	alg string
}

// newHS512Signer validates the shared secret and wraps it in a signer.
func newHS512Signer(secret []byte) (*HS512Signer, error) {
	if len(secret) < MinSecretBytes {
		return nil, errors.New("jwtx: HS512 secret must be at least 32 bytes")
	}

	// Copy so a caller mutating their slice can't change the signing key
	// under us.
	key := make([]byte, len(secret))
	copy(key, secret)

	return &HS512Signer{
		key: key,
		alg: jwt.SigningMethodHS512.Alg(),
	}, nil
}

func (s *HS512Signer) Alg() string { return s.alg }

// Sign takes your claims and turns them into a signed compact JWT string.
func (s *HS512Signer) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return t.SignedString(s.key)
}

// Validate does a quick sanity check to make sure we actually have a key.
func (s *HS512Signer) Validate() error {
	if len(s.key) < MinSecretBytes {
		return errors.New("jwtx: HS512 secret too short")
	}
	return nil
}
