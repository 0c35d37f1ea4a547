package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/marlonxteban/fyyur/internal/logging"
	"github.com/marlonxteban/fyyur/internal/utils"
)

const (
	// FlashCookie holds the signed pending notices.
	FlashCookie = "fyyur_flash"
	flashKey    = "flash"
	flashTTL    = 5 * time.Minute
)

// Flash moves notices left by a previous request (see SetFlash) into the
// request context and clears the cookie, so each notice shows once.
// Tampered or expired cookies are dropped silently.
func Flash(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ck, err := c.Cookie(FlashCookie)
			if err != nil || ck.Value == "" {
				return next(c)
			}
			msgs, err := utils.ParseFlashToken(secret, ck.Value)
			if err != nil {
				logging.Debug().Err(err).Msg("discarding flash cookie")
			} else {
				AddFlash(c, msgs...)
			}
			c.SetCookie(&http.Cookie{
				Name:     FlashCookie,
				Path:     "/",
				MaxAge:   -1,
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
			return next(c)
		}
	}
}

// SetFlash stores msgs in a signed cookie for the next request, typically
// the target of a redirect.
func SetFlash(c echo.Context, secret []byte, msgs ...string) error {
	tok, err := utils.NewFlashToken(secret, msgs, flashTTL)
	if err != nil {
		return err
	}
	c.SetCookie(&http.Cookie{
		Name:     FlashCookie,
		Value:    tok,
		Path:     "/",
		MaxAge:   int(flashTTL / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// AddFlash appends notices to be shown on the page rendered by the
// current request.
func AddFlash(c echo.Context, msgs ...string) {
	c.Set(flashKey, append(Messages(c), msgs...))
}

// Messages returns the notices pending for the current request.
func Messages(c echo.Context) []string {
	msgs, _ := c.Get(flashKey).([]string)
	return msgs
}
