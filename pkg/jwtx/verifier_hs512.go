package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// HS512Verifier validates JWTs signed using HMAC-SHA-512 with a shared secret.
type HS512Verifier struct {
	secret []byte
	issuer string
}

// Verify parses and validates a compact token string. The signing method is
// pinned to HS512 so a token re-signed with "none" or an asymmetric alg is
// rejected before any claim inspection.
func (v *HS512Verifier) Verify(token string) (Claims, error) {
	var claims Claims

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}),
		jwt.WithExpirationRequired(),
	)

	_, err := parser.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrAlgMismatch
		}
		return v.secret, nil
	})
	if err != nil {
		return Claims{}, mapParseError(err)
	}

	if err := claims.ValidateIssuer(v.issuer); err != nil {
		return Claims{}, err
	}

	return claims, nil
}

// mapParseError translates golang-jwt errors into our stable sentinels.
func mapParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrMalformed
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrInvalidSig
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return ErrNotYetValid
	case errors.Is(err, jwt.ErrTokenUnverifiable), errors.Is(err, ErrAlgMismatch):
		return ErrAlgMismatch
	default:
		return ErrMalformed
	}
}
