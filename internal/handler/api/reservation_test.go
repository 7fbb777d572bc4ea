//go:build unit

package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"library-backend/internal/domain/book"
	"library-backend/internal/domain/reservation"
	"library-backend/internal/handler/api"
	reqdto "library-backend/internal/handler/dto/request"
	resdto "library-backend/internal/handler/dto/response"
	"library-backend/internal/pkg/ptr"
	"library-backend/internal/usecase/commands"
	"library-backend/internal/usecase/queries"
	"library-backend/internal/usecase/shared"
	"library-backend/tests/common/builder"
	"library-backend/tests/common/httptest"
	commandsmock "library-backend/tests/mock/commands"
	queriesmock "library-backend/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type reservationHandlerFixture struct {
	router   *gin.Engine
	actor    shared.Actor
	commands *commandsmock.MockReservationCommands
	queries  *queriesmock.MockReservationQueries
}

func newReservationHandlerFixture(t *testing.T) *reservationHandlerFixture {
	ctrl := gomock.NewController(t)
	f := &reservationHandlerFixture{
		actor:    builder.NewUserBuilder().WithEmail("reader@example.com").BuildActor(),
		commands: commandsmock.NewMockReservationCommands(ctrl),
		queries:  queriesmock.NewMockReservationQueries(ctrl),
	}
	h := api.NewReservationHandler(f.commands, f.queries)

	f.router = newRouter(&f.actor)
	f.router.POST("/reservations", h.Reserve)
	f.router.GET("/reservations", h.ListAll)
	f.router.GET("/reservations/me", h.Mine)
	f.router.GET("/reservations/:id", h.Get)
	f.router.POST("/reservations/:id/collect", h.Collect)
	f.router.POST("/reservations/:id/cancel", h.Cancel)
	f.router.POST("/reservations/:id/return", h.Return)
	f.router.POST("/reservations/:id/extend", h.Extend)
	return f
}

func TestReservationHandler_Reserve(t *testing.T) {
	bookID := uuid.New()

	t.Run("success: 201 で予約の詳細を返す", func(t *testing.T) {
		f := newReservationHandlerFixture(t)
		days := 14
		view := builder.NewReservationBuilder().ForBook(bookID).ForUser(f.actor.UserID).BuildView()
		f.commands.EXPECT().Reserve(gomock.Any(), bookID, "reader@example.com", &days).Return(view.ID, nil)
		f.queries.EXPECT().GetByID(gomock.Any(), f.actor, view.ID).Return(view, nil)

		rec := httptest.PerformRequest(t, f.router, http.MethodPost, "/reservations",
			reqdto.CreateReservationRequest{BookID: bookID, DaysToKeep: &days}, "")

		var resp resdto.ReservationResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusCreated, &resp)
		assert.Equal(t, view.ID, resp.ID)
		assert.Equal(t, "RESERVED", resp.Status)
		assert.Equal(t, bookID, resp.BookID)
	})

	t.Run("daysToKeep 省略は nil で渡す", func(t *testing.T) {
		f := newReservationHandlerFixture(t)
		view := builder.NewReservationBuilder().BuildView()
		f.commands.EXPECT().Reserve(gomock.Any(), bookID, "reader@example.com", gomock.Nil()).Return(view.ID, nil)
		f.queries.EXPECT().GetByID(gomock.Any(), f.actor, view.ID).Return(view, nil)

		rec := httptest.PerformRequest(t, f.router, http.MethodPost, "/reservations", map[string]any{"bookId": bookID}, "")

		httptest.AssertSuccessResponse(t, rec, http.StatusCreated, nil)
	})

	t.Run("daysToKeep 0以下はそのまま渡しデフォルト日数に委ねる", func(t *testing.T) {
		for _, days := range []int{0, -3} {
			t.Run(fmt.Sprintf("daysToKeep=%d", days), func(t *testing.T) {
				f := newReservationHandlerFixture(t)
				view := builder.NewReservationBuilder().ForBook(bookID).BuildView()
				f.commands.EXPECT().Reserve(gomock.Any(), bookID, "reader@example.com", ptr.Of(days)).Return(view.ID, nil)
				f.queries.EXPECT().GetByID(gomock.Any(), f.actor, view.ID).Return(view, nil)

				rec := httptest.PerformRequest(t, f.router, http.MethodPost, "/reservations",
					map[string]any{"bookId": bookID, "daysToKeep": days}, "")

				httptest.AssertSuccessResponse(t, rec, http.StatusCreated, nil)
			})
		}
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name string
			body map[string]any
		}{
			{name: "bookId missing", body: map[string]any{}},
			{name: "bookId malformed", body: map[string]any{"bookId": "abc"}},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				f := newReservationHandlerFixture(t)

				rec := httptest.PerformRequest(t, f.router, http.MethodPost, "/reservations", tc.body, "")

				httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	t.Run("エラー種別をステータスに変換する", func(t *testing.T) {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{name: "在庫なし", err: book.ErrNoCopiesAvailable, expectCode: http.StatusUnprocessableEntity},
			{name: "本が存在しない", err: book.ErrBookNotFound, expectCode: http.StatusNotFound},
			{name: "非アクティブユーザー", err: commands.ErrUserInactive, expectCode: http.StatusForbidden},
			{name: "同時更新", err: commands.ErrConcurrentModification, expectCode: http.StatusConflict},
			{name: "貸出日数が上限超過", err: reservation.ErrLoanTooLong, expectCode: http.StatusBadRequest},
			{name: "想定外", err: assert.AnError, expectCode: http.StatusInternalServerError},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				f := newReservationHandlerFixture(t)
				f.commands.EXPECT().Reserve(gomock.Any(), bookID, gomock.Any(), gomock.Any()).Return(uuid.Nil, tc.err)

				rec := httptest.PerformRequest(t, f.router, http.MethodPost, "/reservations", map[string]any{"bookId": bookID}, "")

				httptest.AssertErrorResponse(t, rec, tc.expectCode, "")
			})
		}
	})
}

func TestReservationHandler_Transitions(t *testing.T) {
	type expectFn func(m *commandsmock.MockReservationCommands, id uuid.UUID, actor shared.Actor) *gomock.Call

	transitions := []struct {
		op     string
		expect expectFn
		after  reservation.Status
	}{
		{op: "collect", after: reservation.StatusBorrowed, expect: func(m *commandsmock.MockReservationCommands, id uuid.UUID, a shared.Actor) *gomock.Call {
			return m.EXPECT().Collect(gomock.Any(), id, a)
		}},
		{op: "cancel", after: reservation.StatusReturned, expect: func(m *commandsmock.MockReservationCommands, id uuid.UUID, a shared.Actor) *gomock.Call {
			return m.EXPECT().Cancel(gomock.Any(), id, a)
		}},
		{op: "return", after: reservation.StatusLateReturned, expect: func(m *commandsmock.MockReservationCommands, id uuid.UUID, a shared.Actor) *gomock.Call {
			return m.EXPECT().Return(gomock.Any(), id, a)
		}},
		{op: "extend", after: reservation.StatusBorrowed, expect: func(m *commandsmock.MockReservationCommands, id uuid.UUID, a shared.Actor) *gomock.Call {
			return m.EXPECT().Extend(gomock.Any(), id, a)
		}},
	}

	for _, tr := range transitions {
		t.Run(tr.op+": success は遷移後の状態を返す", func(t *testing.T) {
			f := newReservationHandlerFixture(t)
			view := builder.NewReservationBuilder().ForUser(f.actor.UserID).WithStatus(tr.after).BuildView()
			tr.expect(f.commands, view.ID, f.actor).Return(nil)
			f.queries.EXPECT().GetByID(gomock.Any(), f.actor, view.ID).Return(view, nil)

			rec := httptest.PerformRequest(t, f.router, http.MethodPost, "/reservations/"+view.ID.String()+"/"+tr.op, nil, "")

			var resp resdto.ReservationResponse
			httptest.AssertSuccessResponse(t, rec, http.StatusOK, &resp)
			assert.Equal(t, tr.after.Wire(), resp.Status)
		})

		t.Run(tr.op+": errors", func(t *testing.T) {
			cases := []struct {
				name       string
				err        error
				expectCode int
			}{
				{name: "invalid state", err: reservation.ErrNotReserved, expectCode: http.StatusConflict},
				{name: "forbidden", err: commands.ErrReservationAccess, expectCode: http.StatusForbidden},
				{name: "not found", err: reservation.ErrReservationNotFound, expectCode: http.StatusNotFound},
			}
			for _, tc := range cases {
				t.Run(tc.name, func(t *testing.T) {
					f := newReservationHandlerFixture(t)
					id := uuid.New()
					tr.expect(f.commands, id, f.actor).Return(tc.err)

					rec := httptest.PerformRequest(t, f.router, http.MethodPost, "/reservations/"+id.String()+"/"+tr.op, nil, "")

					httptest.AssertErrorResponse(t, rec, tc.expectCode, tc.err.Error())
				})
			}
		})
	}

	t.Run("不正な ID は 400", func(t *testing.T) {
		f := newReservationHandlerFixture(t)

		rec := httptest.PerformRequest(t, f.router, http.MethodPost, "/reservations/xyz/collect", nil, "")

		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "Invalid reservation id")
	})
}

func TestReservationHandler_Get(t *testing.T) {
	t.Run("他人の予約は403", func(t *testing.T) {
		f := newReservationHandlerFixture(t)
		id := uuid.New()
		f.queries.EXPECT().GetByID(gomock.Any(), f.actor, id).Return(nil, queries.ErrReservationAccess)

		rec := httptest.PerformRequest(t, f.router, http.MethodGet, "/reservations/"+id.String(), nil, "")

		httptest.AssertErrorResponse(t, rec, http.StatusForbidden, "reservation access denied")
	})
}

func TestReservationHandler_Lists(t *testing.T) {
	t.Run("mine は呼び出し元のメールで検索する", func(t *testing.T) {
		f := newReservationHandlerFixture(t)
		views := []*queries.ReservationView{builder.NewReservationBuilder().ForUser(f.actor.UserID).BuildView()}
		f.queries.EXPECT().ListByUser(gomock.Any(), "reader@example.com").Return(views, nil)

		rec := httptest.PerformRequest(t, f.router, http.MethodGet, "/reservations/me", nil, "")

		var resp resdto.ReservationListResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &resp)
		require.Len(t, resp.Reservations, 1)
		assert.Empty(t, resp.NextCursor)
	})

	t.Run("全件一覧はカーソルを受け渡す", func(t *testing.T) {
		f := newReservationHandlerFixture(t)
		views := []*queries.ReservationView{builder.NewReservationBuilder().BuildView(), builder.NewReservationBuilder().BuildView()}
		f.queries.EXPECT().ListAll(gomock.Any(), &queries.Cursor{After: "prev-cursor"}, 2).
			Return(views, &queries.Cursor{After: "next-cursor"}, nil)

		rec := httptest.PerformRequest(t, f.router, http.MethodGet, "/reservations?limit=2&after=prev-cursor", nil, "")

		var resp resdto.ReservationListResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &resp)
		assert.Len(t, resp.Reservations, 2)
		assert.Equal(t, "next-cursor", resp.NextCursor)
	})

	t.Run("先頭ページはカーソルなし", func(t *testing.T) {
		f := newReservationHandlerFixture(t)
		f.queries.EXPECT().ListAll(gomock.Any(), gomock.Nil(), queries.DefaultListLimit).Return([]*queries.ReservationView{}, nil, nil)

		rec := httptest.PerformRequest(t, f.router, http.MethodGet, "/reservations", nil, "")

		httptest.AssertSuccessResponse(t, rec, http.StatusOK, nil)
	})

	t.Run("壊れたカーソルは400", func(t *testing.T) {
		f := newReservationHandlerFixture(t)
		f.queries.EXPECT().ListAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil, queries.ErrInvalidCursor)

		rec := httptest.PerformRequest(t, f.router, http.MethodGet, "/reservations?after=not-a-cursor", nil, "")

		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "invalid cursor")
	})
}
