//go:build unit

package queries_test

import (
	"encoding/base64"
	"testing"
	"time"

	"library-backend/internal/pkg/errs"
	"library-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterCursor(t *testing.T) {
	t.Run("エンコードしたカーソルは元に戻る", func(t *testing.T) {
		ts := time.Date(2025, 3, 1, 10, 30, 0, 123456000, time.UTC)
		id := uuid.New()

		gotTime, gotID, err := queries.DecodeAfterCursor(queries.EncodeAfterCursor(ts, id))

		require.NoError(t, err)
		assert.True(t, ts.Equal(gotTime))
		assert.Equal(t, id, gotID)
	})

	t.Run("マイクロ秒未満は切り捨て", func(t *testing.T) {
		ts := time.Date(2025, 3, 1, 10, 30, 0, 123456789, time.UTC)

		gotTime, _, err := queries.DecodeAfterCursor(queries.EncodeAfterCursor(ts, uuid.New()))

		require.NoError(t, err)
		assert.True(t, ts.Truncate(time.Microsecond).Equal(gotTime))
	})

	invalid := []struct {
		name   string
		cursor string
	}{
		{name: "空文字", cursor: ""},
		{name: "base64 ではない", cursor: "%%%"},
		{name: "バージョンなし", cursor: base64.URLEncoding.EncodeToString([]byte("123-" + uuid.NewString()))},
		{name: "区切りなし", cursor: base64.URLEncoding.EncodeToString([]byte("v1:123"))},
		{name: "タイムスタンプ不正", cursor: base64.URLEncoding.EncodeToString([]byte("v1:abc-" + uuid.NewString()))},
		{name: "UUID 不正", cursor: base64.URLEncoding.EncodeToString([]byte("v1:123-not-a-uuid"))},
	}
	for _, tt := range invalid {
		t.Run("不正なカーソル: "+tt.name, func(t *testing.T) {
			_, _, err := queries.DecodeAfterCursor(tt.cursor)

			require.ErrorIs(t, err, queries.ErrInvalidCursor)
			assert.Equal(t, errs.ErrValidation, errs.Kind(err))
		})
	}
}

func TestValidateLimit(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{in: -1, want: queries.DefaultListLimit},
		{in: 0, want: queries.DefaultListLimit},
		{in: 1, want: 1},
		{in: 50, want: 50},
		{in: queries.MaxListLimit + 1, want: queries.MaxListLimit},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, queries.ValidateLimit(tt.in), "limit %d", tt.in)
	}
}
