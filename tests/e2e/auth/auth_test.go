//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"library-backend/internal/domain/user"
	"library-backend/internal/handler/dto/request"
	resdto "library-backend/internal/handler/dto/response"
	"library-backend/tests/common/authtest"
	"library-backend/tests/common/dbtest"
	"library-backend/tests/common/httptest"
	"library-backend/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	logoutURL   = "/api/auth/logout"
	meURL       = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwtHelper *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "admin@example.com", string(user.RoleAdmin))
	dbtest.CreateTestUser(s.T(), s.DB, "reader@example.com", string(user.RoleUser))
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", string(user.RoleUser))

	_, err := s.DB.Exec(s.T().Context(), "UPDATE users SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestRegister() {
	tests := []struct {
		name           string
		req            request.RegisterRequest
		expectedStatus int
	}{
		{
			name: "正常な登録",
			req: request.RegisterRequest{
				FirstName: "Ada", LastName: "Lovelace", Email: "Ada@Example.com", Password: authtest.DefaultPassword,
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "登録済みのメールアドレス",
			req: request.RegisterRequest{
				FirstName: "Dup", LastName: "User", Email: "reader@example.com", Password: authtest.DefaultPassword,
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "短いパスワード",
			req: request.RegisterRequest{
				FirstName: "Short", LastName: "Pass", Email: "short@example.com", Password: "short",
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, tt.req, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusCreated {
				var created resdto.CreatedResponse
				httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
				require.NotEqual(t, uuid.Nil, created.ID)

				var role, email string
				err := s.DB.QueryRow(t.Context(), "SELECT role, email FROM users WHERE id = $1", created.ID).Scan(&role, &email)
				require.NoError(t, err)
				require.Equal(t, "user", role, "自己登録は一般ユーザーになること")
				require.Equal(t, "ada@example.com", email, "メールアドレスは小文字で保存されること")

				authtest.LoginUser(t, s.Router, "ada@example.com", authtest.DefaultPassword)
			}
		})
	}
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{name: "正常なログイン", email: "reader@example.com", password: authtest.DefaultPassword, expectedStatus: http.StatusOK},
		{name: "存在しないユーザー", email: "nobody@example.com", password: authtest.DefaultPassword, expectedStatus: http.StatusUnauthorized},
		{name: "間違ったパスワード", email: "reader@example.com", password: "wrongpassword", expectedStatus: http.StatusUnauthorized},
		{name: "非アクティブユーザー", email: "inactive@example.com", password: authtest.DefaultPassword, expectedStatus: http.StatusForbidden},
		{name: "空のメールアドレス", email: "", password: authtest.DefaultPassword, expectedStatus: http.StatusBadRequest},
		{name: "空のパスワード", email: "reader@example.com", password: "", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Email: tt.email, Password: tt.password}, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				var loginRes resdto.LoginResponse
				httptest.AssertSuccessResponse(t, w, http.StatusOK, &loginRes)
				require.NotEmpty(t, loginRes.AccessToken, "アクセストークンが空")
				require.Greater(t, loginRes.ExpiresIn, int64(0), "有効期限が無効")
				require.Equal(t, "user", loginRes.Role)

				cookie := httptest.ExtractCookie(w, "access_token")
				require.NotNil(t, cookie, "access_token cookie が設定されていない")
				require.True(t, cookie.HttpOnly)
			}
		})
	}
}

func (s *authSuite) TestLogout() {
	s.Run("ログアウトで cookie が消える", func() {
		t := s.T()

		token := authtest.LoginUser(t, s.Router, "reader@example.com", authtest.DefaultPassword)
		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, logoutURL, nil,
			[]*http.Cookie{{Name: "access_token", Value: token}}, "")

		require.Equal(t, http.StatusNoContent, w.Code)
		cookie := httptest.ExtractCookie(w, "access_token")
		require.NotNil(t, cookie)
		require.Less(t, cookie.MaxAge, 0)
	})

	s.Run("トークンなしは401", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, logoutURL, nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Access token required")
	})
}

func (s *authSuite) TestMe() {
	tests := []struct {
		name           string
		setupToken     func() string
		expectedStatus int
		expectedEmail  string
	}{
		{
			name: "管理者ユーザーの情報取得",
			setupToken: func() string {
				return authtest.LoginUser(s.T(), s.Router, "admin@example.com", authtest.DefaultPassword)
			},
			expectedStatus: http.StatusOK,
			expectedEmail:  "admin@example.com",
		},
		{
			name: "一般ユーザーの情報取得",
			setupToken: func() string {
				return authtest.LoginUser(s.T(), s.Router, "reader@example.com", authtest.DefaultPassword)
			},
			expectedStatus: http.StatusOK,
			expectedEmail:  "reader@example.com",
		},
		{
			name:           "無効なトークン",
			setupToken:     func() string { return "invalid-token" },
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "トークンなし",
			setupToken:     func() string { return "" },
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, tt.setupToken())
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				var me resdto.UserResponse
				httptest.AssertSuccessResponse(t, w, http.StatusOK, &me)
				require.Equal(t, tt.expectedEmail, me.Email)
				require.NotContains(t, w.Body.String(), "password", "レスポンスにパスワード情報が含まれている")
			}
		})
	}
}

func (s *authSuite) TestTokenExpiry() {
	s.Run("期限切れトークンの拒否", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "expiry@example.com", string(user.RoleAdmin))
		expired := s.jwtHelper.CreateExpiredToken(t, userID, "expiry@example.com", user.RoleAdmin)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, expired)
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func (s *authSuite) TestConcurrentLogin() {
	s.Run("同時ログインの両トークンが有効", func() {
		t := s.T()

		token1 := authtest.LoginUser(t, s.Router, "reader@example.com", authtest.DefaultPassword)
		token2 := authtest.LoginUser(t, s.Router, "reader@example.com", authtest.DefaultPassword)

		for _, token := range []string{token1, token2} {
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
			require.Equal(t, http.StatusOK, w.Code)
		}
	})
}
