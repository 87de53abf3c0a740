package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RBAC allows the request through only when the role claim set by Auth is one
// of the given roles. Routes that stack RBAC twice (group level plus route
// level) require the intersection, which is how admin-only routes inside the
// staff group are expressed.
func RBAC(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			current, _ := c.Get("role").(string)
			for _, r := range roles {
				if r == current {
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
		}
	}
}
