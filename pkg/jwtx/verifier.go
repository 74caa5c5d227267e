package jwtx

import (
	"errors"
)

// Verifier validates a JWT and gives you back the claims if it's legit.
//
// This service only issues tokens; the verifier exists for the downstream
// counterpart and for our own tests.
type Verifier interface {
	Verify(token string) (Claims, error)
}

var (
	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrAlgMismatch = errors.New("jwtx: algorithm mismatch")
	ErrInvalidSig  = errors.New("jwtx: invalid signature")

	ErrIssuer      = errors.New("jwtx: issuer mismatch")
	ErrExpired     = errors.New("jwtx: token expired")
	ErrNotYetValid = errors.New("jwtx: token not yet valid")
)

// NewVerifierHS512 returns a Verifier for HS512-signed tokens sharing the
// issuing secret. An empty issuer means "don't enforce the iss claim".
func NewVerifierHS512(secret []byte, issuer string) Verifier {
	return &HS512Verifier{secret: secret, issuer: issuer}
}
