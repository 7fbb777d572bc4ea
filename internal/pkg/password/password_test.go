//go:build unit

package password_test

import (
	"testing"

	"library-backend/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher(t *testing.T) {
	h := password.NewHasherWithCost(bcrypt.MinCost)

	hashed, err := h.Hash("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hashed)

	t.Run("正しいパスワード", func(t *testing.T) {
		require.NoError(t, h.Compare(hashed, "password123"))
	})

	t.Run("誤ったパスワード", func(t *testing.T) {
		require.ErrorIs(t, h.Compare(hashed, "password124"), password.ErrMismatch)
	})

	t.Run("空文字", func(t *testing.T) {
		_, err := h.Hash("")
		require.ErrorIs(t, err, password.ErrEmptyPassword)
		require.ErrorIs(t, h.Compare(hashed, ""), password.ErrEmptyPassword)
	})
}
