package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/umalmyha/clientes/internal/auth"
)

const bearerScheme = "Bearer"

// Authorize verifies bearer jwt and stores its claims in request context
func Authorize(validator *auth.JwtValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHdr := c.Request().Header.Get(echo.HeaderAuthorization)
			hdrSplit := strings.Split(authHdr, " ")
			if len(hdrSplit) != 2 || !strings.EqualFold(hdrSplit[0], bearerScheme) {
				return echo.NewHTTPError(http.StatusUnauthorized, "Formato de cabecera Authorization inválido")
			}

			claims, err := validator.Verify(hdrSplit[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Token de acceso inválido")
			}

			req := c.Request()
			c.SetRequest(req.WithContext(auth.WithClaims(req.Context(), claims)))
			return next(c)
		}
	}
}
