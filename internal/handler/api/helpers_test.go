//go:build unit

package api_test

import (
	"library-backend/internal/handler/middleware"
	"library-backend/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

// newRouter stands in for RequireAuth: a non-nil actor is stored before each handler.
func newRouter(actor *shared.Actor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	if actor != nil {
		r.Use(func(c *gin.Context) {
			middleware.SetActor(c, *actor)
			c.Next()
		})
	}
	return r
}
