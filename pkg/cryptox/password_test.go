package cryptox_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/embercast/accountd/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Keep the generated pepper out of the working tree.
	dir, err := os.MkdirTemp("", "cryptox-test")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

func TestHashPasswordProducesUniqueSalts(t *testing.T) {
	h1, err := cryptox.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	h2, err := cryptox.HashPassword("correct horse battery staple")
	require.NoError(t, err)

	// Same password, fresh salt per call, so the encodings must differ.
	require.NotEqual(t, h1, h2)

	// Both hashes still verify against the original password.
	require.NoError(t, cryptox.VerifyPassword("correct horse battery staple", h1))
	require.NoError(t, cryptox.VerifyPassword("correct horse battery staple", h2))
}

func TestVerifyPasswordRejectsWrongPassword(t *testing.T) {
	h, err := cryptox.HashPassword("s3cret")
	require.NoError(t, err)

	err = cryptox.VerifyPassword("not-the-password", h)
	require.ErrorIs(t, err, cryptox.ErrPasswordMismatch)
}

func TestVerifyPasswordRejectsMalformedHash(t *testing.T) {
	cases := []string{
		"",
		"plaintext",
		"$argon2i$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=18$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=19456,t=2,p=1$!!notb64!!$aGFzaA",
	}

	for _, encoded := range cases {
		err := cryptox.VerifyPassword("whatever", encoded)
		require.Error(t, err, "hash %q should be rejected", encoded)
	}
}

func TestHashPasswordEncodesParameters(t *testing.T) {
	h, err := cryptox.HashPassword("pw")
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(h, "$argon2id$v=19$"))
	require.Len(t, strings.Split(h, "$"), 6)
}
