package middleware

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marlonxteban/fyyur/internal/config"
	"github.com/marlonxteban/fyyur/internal/utils"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func TestBuildRateKey(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/venues/create", nil)
	req.Header.Set(echo.HeaderXRealIP, "10.0.0.7")
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/venues/create")

	cases := map[string]string{
		"ip":       "fyyur:rl:ip:10.0.0.7",
		"route":    "fyyur:rl:route:POST /venues/create",
		"ip_route": "fyyur:rl:ip:10.0.0.7:route:POST /venues/create",
		"":         "fyyur:rl:ip:10.0.0.7:route:POST /venues/create",
	}
	for strategy, want := range cases {
		cfg := config.RateLimitConfig{Prefix: "fyyur:rl", KeyStrategy: strategy}
		assert.Equal(t, want, buildRateKey(cfg, c), strategy)
	}
}

func TestParseScriptResult(t *testing.T) {
	allowed, remaining, retry, ok := parseScriptResult([]any{int64(1), int64(4), int64(0)})
	require.True(t, ok)
	assert.True(t, allowed)
	assert.EqualValues(t, 4, remaining)
	assert.Zero(t, retry)

	allowed, _, retry, ok = parseScriptResult([]any{"0", "0", "1500"})
	require.True(t, ok)
	assert.False(t, allowed)
	assert.EqualValues(t, 1500, retry)
	assert.Equal(t, 2, retryAfterSeconds(retry))

	_, _, _, ok = parseScriptResult("nope")
	assert.False(t, ok)
}

func TestNewTokenBucket_DisabledPassesThrough(t *testing.T) {
	e := echo.New()
	mw := NewTokenBucket(config.RateLimitConfig{Enabled: true}, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)
	err := mw(func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestFlash_ReadsAndClearsCookie(t *testing.T) {
	tok, err := utils.NewFlashToken(testSecret, []string{"Venue was successfully deleted!"}, flashTTL)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/venues/1", nil)
	req.AddCookie(&http.Cookie{Name: FlashCookie, Value: tok})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen []string
	err = Flash(testSecret)(func(c echo.Context) error {
		seen = Messages(c)
		return nil
	})(c)
	require.NoError(t, err)
	assert.Equal(t, []string{"Venue was successfully deleted!"}, seen)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, FlashCookie, cookies[0].Name)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestFlash_IgnoresForgedCookie(t *testing.T) {
	tok, err := utils.NewFlashToken([]byte("another-secret"), []string{"forged"}, flashTTL)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: FlashCookie, Value: tok})
	c := e.NewContext(req, httptest.NewRecorder())

	err = Flash(testSecret)(func(c echo.Context) error {
		assert.Empty(t, Messages(c))
		return nil
	})(c)
	require.NoError(t, err)
}

func TestSetFlash_RoundTrip(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)
	require.NoError(t, SetFlash(c, testSecret, "Venue Fillmore was successfully updated!"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	msgs, err := utils.ParseFlashToken(testSecret, cookies[0].Value)
	require.NoError(t, err)
	assert.Equal(t, []string{"Venue Fillmore was successfully updated!"}, msgs)
}

func TestRequireAdmin(t *testing.T) {
	hash, err := utils.HashPassword("s3cret", 4)
	require.NoError(t, err)

	e := echo.New()
	e.POST("/venues/create", func(c echo.Context) error {
		return c.String(http.StatusOK, c.Get(AdminKey).(string))
	}, RequireAdmin("admin", hash))

	do := func(user, pass string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/venues/create", nil)
		if user != "" {
			req.Header.Set(echo.HeaderAuthorization, "Basic "+base64.StdEncoding.EncodeToString([]byte(user+":"+pass)))
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusUnauthorized, do("", "").Code)
	assert.Equal(t, http.StatusUnauthorized, do("admin", "wrong").Code)
	rec := do("admin", "s3cret")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin", rec.Body.String())
}

func TestRequireAdmin_EmptyHashDisables(t *testing.T) {
	e := echo.New()
	e.POST("/x", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }, RequireAdmin("", ""))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/x", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
