//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"library-backend/internal/domain/user"
	"library-backend/internal/handler/api"
	resdto "library-backend/internal/handler/dto/response"
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

type userHandlerFixture struct {
	router       *gin.Engine
	actor        shared.Actor
	commands     *commandsmock.MockUserCommands
	queries      *queriesmock.MockUserQueries
	reservations *queriesmock.MockReservationQueries
}

func newUserHandlerFixture(t *testing.T) *userHandlerFixture {
	ctrl := gomock.NewController(t)
	f := &userHandlerFixture{
		actor:        builder.NewUserBuilder().AsAdmin().BuildActor(),
		commands:     commandsmock.NewMockUserCommands(ctrl),
		queries:      queriesmock.NewMockUserQueries(ctrl),
		reservations: queriesmock.NewMockReservationQueries(ctrl),
	}
	h := api.NewUserHandler(f.commands, f.queries, f.reservations)

	f.router = newRouter(&f.actor)
	f.router.GET("/users", h.List)
	f.router.DELETE("/users/:id", h.Delete)
	f.router.GET("/users/:id/reservations", h.ListReservations)
	return f
}

func TestUserHandler_List(t *testing.T) {
	f := newUserHandlerFixture(t)
	views := []*queries.UserView{
		builder.NewUserBuilder().AsAdmin().BuildView(),
		builder.NewUserBuilder().WithEmail("reader@example.com").BuildView(),
	}
	f.queries.EXPECT().List(gomock.Any()).Return(views, nil)

	rec := httptest.PerformRequest(t, f.router, http.MethodGet, "/users", nil, "")

	var resp struct {
		Users []resdto.UserResponse `json:"users"`
	}
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &resp)
	require.Len(t, resp.Users, 2)
	assert.Equal(t, "admin", resp.Users[0].Role)
	assert.Equal(t, "reader@example.com", resp.Users[1].Email)

	var raw map[string][]map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.NotContains(t, raw["users"][0], "passwordHash")
}

func TestUserHandler_Delete(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name       string
		err        error
		expectCode int
	}{
		{name: "success", expectCode: http.StatusNoContent},
		{name: "管理者は削除できない", err: user.ErrAdminNotDeletable, expectCode: http.StatusForbidden},
		{name: "貸出中の予約がある", err: user.ErrHasActiveLoans, expectCode: http.StatusConflict},
		{name: "存在しない", err: user.ErrUserNotFound, expectCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newUserHandlerFixture(t)
			f.commands.EXPECT().Delete(gomock.Any(), id).Return(tt.err)

			rec := httptest.PerformRequest(t, f.router, http.MethodDelete, "/users/"+id.String(), nil, "")

			if tt.err == nil {
				assert.Equal(t, tt.expectCode, rec.Code)
				return
			}
			httptest.AssertErrorResponse(t, rec, tt.expectCode, tt.err.Error())
		})
	}

	t.Run("不正な ID", func(t *testing.T) {
		f := newUserHandlerFixture(t)

		rec := httptest.PerformRequest(t, f.router, http.MethodDelete, "/users/123", nil, "")

		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "Invalid user id")
	})
}

func TestUserHandler_ListReservations(t *testing.T) {
	t.Run("呼び出し元を添えて検索する", func(t *testing.T) {
		f := newUserHandlerFixture(t)
		target := uuid.New()
		views := []*queries.ReservationView{builder.NewReservationBuilder().ForUser(target).BuildView()}
		f.reservations.EXPECT().ListByUserID(gomock.Any(), f.actor, target).Return(views, nil)

		rec := httptest.PerformRequest(t, f.router, http.MethodGet, "/users/"+target.String()+"/reservations", nil, "")

		var resp resdto.ReservationListResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &resp)
		require.Len(t, resp.Reservations, 1)
		assert.Equal(t, target, resp.Reservations[0].UserID)
	})

	t.Run("他人の一覧は403", func(t *testing.T) {
		f := newUserHandlerFixture(t)
		f.reservations.EXPECT().ListByUserID(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, queries.ErrReservationAccess)

		rec := httptest.PerformRequest(t, f.router, http.MethodGet, "/users/"+uuid.NewString()+"/reservations", nil, "")

		httptest.AssertErrorResponse(t, rec, http.StatusForbidden, "reservation access denied")
	})
}
