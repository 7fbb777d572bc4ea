//go:build unit

package readstore

import (
	"context"
	"testing"

	"library-backend/internal/infra"
	sqlc "library-backend/internal/infra/sqlc/generated"
	"library-backend/internal/usecase/queries"
	"library-backend/tests/common/builder"
	readstoremock "library-backend/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBuildBookListQuery(t *testing.T) {
	tests := []struct {
		name        string
		params      queries.BookListParams
		contains    []string
		notContains []string
		wantArgs    int
	}{
		{
			name:        "既定はタイトル昇順で id をタイブレークに使う",
			params:      queries.BookListParams{},
			contains:    []string{`FROM "books"`, `ORDER BY "title" ASC, "id" ASC`},
			notContains: []string{"WHERE", "LIMIT", "OFFSET"},
		},
		{
			name:     "検索はタイトルと著者の部分一致",
			params:   queries.BookListParams{Search: "go", Sort: queries.BookSortTitle, Limit: 20},
			contains: []string{"WHERE", `"title" ILIKE $1`, `"author" ILIKE $2`, " OR ", "LIMIT $3"},
			wantArgs: 3,
		},
		{
			name:        "降順と offset",
			params:      queries.BookListParams{Sort: queries.BookSortPublicationYear, Desc: true, Limit: 10, Offset: 30},
			contains:    []string{`ORDER BY "publication_year" DESC, "id" ASC`, "LIMIT $1", "OFFSET $2"},
			notContains: []string{"WHERE"},
			wantArgs:    2,
		},
		{
			name:     "在庫数でのソート",
			params:   queries.BookListParams{Sort: queries.BookSortAvailable},
			contains: []string{`ORDER BY "available_copies" ASC, "id" ASC`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := BuildBookListQuery(tt.params)

			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, query, want)
			}
			for _, unwanted := range tt.notContains {
				assert.NotContains(t, query, unwanted)
			}
			assert.Len(t, args, tt.wantArgs)
		})
	}

	t.Run("検索語はプレースホルダで渡す", func(t *testing.T) {
		query, args, err := BuildBookListQuery(queries.BookListParams{Search: "'; DROP TABLE books; --"})

		require.NoError(t, err)
		assert.NotContains(t, query, "DROP TABLE")
		require.Len(t, args, 2)
		assert.Equal(t, "%'; DROP TABLE books; --%", args[0])
	})
}

func TestBookReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	picture := "https://example.com/cover.png"
	row := builder.NewBookBuilder().
		With(func(b *builder.BookBuilder) { b.PictureURL = &picture }).
		WithCopies(5, 2).
		BuildInfra()

	tests := []struct {
		name     string
		mockRow  sqlc.Books
		mockErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "success", mockRow: row},
		{name: "not found", mockErr: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "database error", mockErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			q := readstoremock.NewMockBookReadQueries(ctrl)
			q.EXPECT().GetBook(gomock.Any(), gomock.Any(), row.ID).Return(tt.mockRow, tt.mockErr)

			got, err := NewBookReadStore(q, nil).FindByID(ctx, row.ID)

			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind))
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, row.ID, got.ID)
			assert.Equal(t, 5, got.TotalCopies)
			assert.Equal(t, 2, got.AvailableCopies)
			require.NotNil(t, got.PictureURL)
			assert.Equal(t, picture, *got.PictureURL)
		})
	}

	t.Run("画像なしは nil", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := readstoremock.NewMockBookReadQueries(ctrl)
		id := uuid.New()
		plain := builder.NewBookBuilder().With(func(b *builder.BookBuilder) { b.ID = id }).BuildInfra()
		q.EXPECT().GetBook(gomock.Any(), gomock.Any(), id).Return(plain, nil)

		got, err := NewBookReadStore(q, nil).FindByID(ctx, id)

		require.NoError(t, err)
		assert.Nil(t, got.PictureURL)
	})
}
