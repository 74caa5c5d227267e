package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/embercast/accountd/internal/accounts/domain"
	"github.com/embercast/accountd/internal/accounts/store"
	"github.com/embercast/accountd/internal/accounts/store/drivers/sqlite"
	"github.com/embercast/accountd/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func newUser(username, email string) domain.User {
	now := time.Now().UTC()
	return domain.User{
		ID:           idx.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		Role:         domain.DefaultRole,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestCreateAndGetUser(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	empty, err := st.Users().IsEmpty(ctx)
	require.NoError(t, err)
	require.True(t, empty)

	u := newUser("alice", "a@x.com")
	require.NoError(t, st.Users().CreateUser(ctx, u))

	byID, err := st.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, u.Username, byID.Username)
	require.Equal(t, u.Email, byID.Email)
	require.Equal(t, u.PasswordHash, byID.PasswordHash)
	require.Equal(t, domain.DefaultRole, byID.Role)

	byUsername, err := st.Users().GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, u.ID, byUsername.ID)

	byEmail, err := st.Users().GetUserByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.Equal(t, u.ID, byEmail.ID)

	empty, err = st.Users().IsEmpty(ctx)
	require.NoError(t, err)
	require.False(t, empty)
}

func TestGetUserNotFound(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	_, err := st.Users().GetUserByUsername(ctx, "nobody")
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = st.Users().GetUserByEmail(ctx, "nobody@x.com")
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = st.Users().GetUserByID(ctx, idx.New().String())
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestUniqueIndexesRejectDuplicates(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	require.NoError(t, st.Users().CreateUser(ctx, newUser("alice", "a@x.com")))

	t.Run("duplicate email", func(t *testing.T) {
		err := st.Users().CreateUser(ctx, newUser("bob", "a@x.com"))
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("duplicate username", func(t *testing.T) {
		err := st.Users().CreateUser(ctx, newUser("alice", "b@x.com"))
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})
}

func TestEmailExists(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	exists, err := st.Users().EmailExists(ctx, "a@x.com")
	require.NoError(t, err)
	require.False(t, exists)

	require.NoError(t, st.Users().CreateUser(ctx, newUser("alice", "a@x.com")))

	exists, err = st.Users().EmailExists(ctx, "a@x.com")
	require.NoError(t, err)
	require.True(t, exists)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	sentinel := store.ErrAlreadyExists
	err := st.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().CreateUser(ctx, newUser("alice", "a@x.com")); err != nil {
			return err
		}
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	// The insert must have been rolled back with the failing tx.
	empty, err := st.Users().IsEmpty(ctx)
	require.NoError(t, err)
	require.True(t, empty)
}

func TestWithTxCommits(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	err := st.WithTx(ctx, func(tx store.Tx) error {
		return tx.Users().CreateUser(ctx, newUser("alice", "a@x.com"))
	})
	require.NoError(t, err)

	_, err = st.Users().GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
}
