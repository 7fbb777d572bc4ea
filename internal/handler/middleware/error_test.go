//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"library-backend/internal/handler/httperr"
	"library-backend/internal/handler/middleware"
	"library-backend/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newErrorRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CustomRecovery(), middleware.ErrorHandler())
	r.GET("/panic", func(*gin.Context) {
		panic("boom")
	})
	r.GET("/public", func(c *gin.Context) {
		resp := httperr.Response{Status: http.StatusConflict}
		resp.Error.Message = "book has active reservations"
		_ = c.Error(gin.Error{Err: assert.AnError, Type: gin.ErrorTypePublic, Meta: resp})
	})
	r.GET("/private-error", func(c *gin.Context) {
		_ = c.Error(assert.AnError)
	})
	r.GET("/aborted", func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, assert.AnError, "no copies available", nil)
	})
	return r
}

func TestErrorHandler(t *testing.T) {
	r := newErrorRouter()

	t.Run("公開エラーは Meta の内容で返す", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/public", nil, "")

		httptest.AssertErrorResponse(t, rec, http.StatusConflict, "book has active reservations")
	})

	t.Run("非公開エラーは500で詳細を隠す", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/private-error", nil, "")

		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
		assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
	})

	t.Run("書き込み済みのレスポンスは変更しない", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/aborted", nil, "")

		httptest.AssertErrorResponse(t, rec, http.StatusUnprocessableEntity, "no copies available")
	})
}

func TestCustomRecovery(t *testing.T) {
	r := newErrorRouter()

	rec := httptest.PerformRequest(t, r, http.MethodGet, "/panic", nil, "")

	httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
}
