package jwtx

// Signer is our interface for anything that can sign session tokens.
type Signer interface {
	Alg() string
	Sign(Claims) (string, error)
	Validate() error
}

// NewSignerHS512 creates an HS512 signer from a shared secret. The secret is
// process-wide configuration loaded at startup; it is never rotated within a
// process lifetime.
func NewSignerHS512(secret []byte) (Signer, error) {
	return newHS512Signer(secret)
}
