package jwtx_test

import (
	"strings"
	"testing"
	"time"

	"github.com/embercast/accountd/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func TestNewSignerHS512RejectsShortSecret(t *testing.T) {
	_, err := jwtx.NewSignerHS512([]byte("too-short"))
	require.Error(t, err)
}

func TestHS512RoundTrip(t *testing.T) {
	signer, err := jwtx.NewSignerHS512(testSecret)
	require.NoError(t, err)
	require.NoError(t, signer.Validate())
	require.Equal(t, "HS512", signer.Alg())

	now := time.Now().UTC()
	claims := jwtx.NewAccessClaims("alice", "a@x.com", "user", time.Hour, "accountd", now)

	token, err := signer.Sign(claims)
	require.NoError(t, err)
	require.Len(t, strings.Split(token, "."), 3)

	verifier := jwtx.NewVerifierHS512(testSecret, "accountd")
	got, err := verifier.Verify(token)
	require.NoError(t, err)

	require.Equal(t, "alice", got.Subject)
	require.Equal(t, "a@x.com", got.Email)
	require.Equal(t, "user", got.Role)
	require.WithinDuration(t, now.Add(time.Hour), got.ExpiresAt.Time, time.Second)
}

func TestHS512RejectsTamperedToken(t *testing.T) {
	signer, err := jwtx.NewSignerHS512(testSecret)
	require.NoError(t, err)

	claims := jwtx.NewAccessClaims("alice", "a@x.com", "user", time.Hour, "accountd", time.Now().UTC())
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	// Flip a character in the payload segment.
	parts := strings.Split(token, ".")
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	verifier := jwtx.NewVerifierHS512(testSecret, "accountd")
	_, err = verifier.Verify(tampered)
	require.Error(t, err)
}

func TestHS512RejectsWrongSecret(t *testing.T) {
	signer, err := jwtx.NewSignerHS512(testSecret)
	require.NoError(t, err)

	claims := jwtx.NewAccessClaims("alice", "a@x.com", "user", time.Hour, "accountd", time.Now().UTC())
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	verifier := jwtx.NewVerifierHS512([]byte("ffffffffffffffffffffffffffffffff"), "accountd")
	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrInvalidSig)
}

func TestHS512RejectsForeignAlgorithm(t *testing.T) {
	// Token signed with HS256 must not pass an HS512-pinned verifier.
	claims := jwtx.NewAccessClaims("alice", "a@x.com", "user", time.Hour, "accountd", time.Now().UTC())
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)

	verifier := jwtx.NewVerifierHS512(testSecret, "accountd")
	_, err = verifier.Verify(token)
	require.Error(t, err)
}

func TestHS512RejectsExpiredToken(t *testing.T) {
	signer, err := jwtx.NewSignerHS512(testSecret)
	require.NoError(t, err)

	issued := time.Now().UTC().Add(-2 * time.Hour)
	claims := jwtx.NewAccessClaims("alice", "a@x.com", "user", time.Hour, "accountd", issued)
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	verifier := jwtx.NewVerifierHS512(testSecret, "accountd")
	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrExpired)
}

func TestHS512RejectsWrongIssuer(t *testing.T) {
	signer, err := jwtx.NewSignerHS512(testSecret)
	require.NoError(t, err)

	claims := jwtx.NewAccessClaims("alice", "a@x.com", "user", time.Hour, "someone-else", time.Now().UTC())
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	verifier := jwtx.NewVerifierHS512(testSecret, "accountd")
	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrIssuer)
}

func TestHS512RejectsGarbage(t *testing.T) {
	verifier := jwtx.NewVerifierHS512(testSecret, "accountd")

	_, err := verifier.Verify("not-a-token")
	require.ErrorIs(t, err, jwtx.ErrMalformed)
}
