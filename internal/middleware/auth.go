package middleware

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/marlonxteban/fyyur/internal/utils"
)

// AdminKey is the context key holding the authenticated admin user name.
const AdminKey = "admin"

// RequireAdmin protects write routes with HTTP basic auth against one
// configured user and bcrypt hash.  An empty hash disables the check.
func RequireAdmin(user, passwordHash string) echo.MiddlewareFunc {
	if passwordHash == "" {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	return echomw.BasicAuthWithConfig(echomw.BasicAuthConfig{
		Realm: "fyyur",
		Validator: func(u, p string, c echo.Context) (bool, error) {
			if !utils.VerifyAdmin(user, passwordHash, u, p) {
				return false, nil
			}
			c.Set(AdminKey, u)
			return true, nil
		},
	})
}
