//go:build unit

package commands_test

import (
	"context"
	"testing"

	"library-backend/internal/domain/reservation"
	"library-backend/internal/domain/user"
	"library-backend/internal/pkg/clock"
	"library-backend/internal/pkg/errs"
	"library-backend/internal/usecase/commands"
	"library-backend/tests/common/builder"
	commandsmock "library-backend/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func validRegistration() commands.RegisterRequest {
	return commands.RegisterRequest{
		FirstName: "Hanako",
		LastName:  "Yamada",
		Email:     "Hanako@Example.com",
		Password:  "password123",
	}
}

func TestUserCommands_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: user ロールで登録されメールは小文字化される", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		hasher := commandsmock.NewMockPasswordHasher(ctrl)
		hasher.EXPECT().Hash("password123").Return("hashed", nil)
		uow := newMemoryUoW()
		cmd := commands.NewUserCommands(uow, hasher, clock.NewMockClock(fixedNow))

		id, err := cmd.Register(ctx, validRegistration())

		require.NoError(t, err)
		require.Contains(t, uow.users, id)
		u := uow.users[id]
		assert.Equal(t, "hanako@example.com", u.Email().Value())
		assert.Equal(t, user.RoleUser, u.Role())
		assert.Equal(t, "hashed", u.PasswordHash())
		assert.True(t, u.IsActive())
	})

	t.Run("登録済みメールアドレスは Conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		hasher := commandsmock.NewMockPasswordHasher(ctrl)
		hasher.EXPECT().Hash(gomock.Any()).Return("hashed", nil)
		uow := newMemoryUoW()
		existing, err := builder.NewUserBuilder().WithEmail("hanako@example.com").BuildDomain()
		require.NoError(t, err)
		uow.addUser(existing)
		cmd := commands.NewUserCommands(uow, hasher, clock.NewMockClock(fixedNow))

		_, err = cmd.Register(ctx, validRegistration())

		require.ErrorIs(t, err, user.ErrEmailTaken)
		assert.Equal(t, errs.ErrConflict, errs.Kind(err))
		assert.Len(t, uow.users, 1)
	})

	t.Run("入力検証", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*commands.RegisterRequest)
			errIs  error
		}{
			{name: "メール不正", mutate: func(r *commands.RegisterRequest) { r.Email = "bad" }, errIs: user.ErrInvalidEmail},
			{name: "パスワード短すぎ", mutate: func(r *commands.RegisterRequest) { r.Password = "short" }, errIs: user.ErrPasswordTooWeak},
			{name: "名前なし", mutate: func(r *commands.RegisterRequest) { r.FirstName = "" }, errIs: user.ErrInvalidName},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				hasher := commandsmock.NewMockPasswordHasher(ctrl)
				uow := newMemoryUoW()
				cmd := commands.NewUserCommands(uow, hasher, clock.NewMockClock(fixedNow))
				req := validRegistration()
				tt.mutate(&req)

				_, err := cmd.Register(ctx, req)

				require.ErrorIs(t, err, tt.errIs)
				assert.Equal(t, errs.ErrValidation, errs.Kind(err))
				assert.Empty(t, uow.users)
			})
		}
	})

	t.Run("ハッシュ化失敗はそのまま返す", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		hasher := commandsmock.NewMockPasswordHasher(ctrl)
		hasher.EXPECT().Hash(gomock.Any()).Return("", assert.AnError)
		uow := newMemoryUoW()
		cmd := commands.NewUserCommands(uow, hasher, clock.NewMockClock(fixedNow))

		_, err := cmd.Register(ctx, validRegistration())

		require.ErrorIs(t, err, assert.AnError)
		assert.Zero(t, uow.attempts)
	})
}

func TestUserCommands_Delete(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		admin    bool
		statuses []reservation.Status
		errIs    error
	}{
		{name: "予約なしの一般ユーザーは削除できる"},
		{name: "返却済みのみなら削除できる", statuses: []reservation.Status{reservation.StatusReturned}},
		{name: "管理者は Forbidden", admin: true, errIs: user.ErrAdminNotDeletable},
		{name: "貸出中があると Conflict", statuses: []reservation.Status{reservation.StatusBorrowed}, errIs: user.ErrHasActiveLoans},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uow := newMemoryUoW()
			ub := builder.NewUserBuilder()
			if tt.admin {
				ub.AsAdmin()
			}
			u, err := ub.BuildDomain()
			require.NoError(t, err)
			uow.addUser(u)
			for _, st := range tt.statuses {
				uow.addReservation(builder.NewReservationBuilder().ForUser(u.ID()).WithStatus(st).BuildDomain())
			}
			cmd := commands.NewUserCommands(uow, commandsmock.NewMockPasswordHasher(ctrl), clock.NewMockClock(fixedNow))

			err = cmd.Delete(ctx, u.ID())

			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				assert.Contains(t, uow.users, u.ID())
				return
			}
			require.NoError(t, err)
			assert.NotContains(t, uow.users, u.ID())
		})
	}

	t.Run("存在しないユーザーは NotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cmd := commands.NewUserCommands(newMemoryUoW(), commandsmock.NewMockPasswordHasher(ctrl), clock.NewMockClock(fixedNow))

		err := cmd.Delete(ctx, uuid.New())

		require.ErrorIs(t, err, user.ErrUserNotFound)
		assert.Equal(t, errs.ErrNotFound, errs.Kind(err))
	})
}
