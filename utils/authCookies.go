package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Cookie names carrying the PASETO tokens alongside the JSON response, so
// browser clients keep working without storing tokens themselves.
const (
	accessTokenCookie  = "accessToken"
	refreshTokenCookie = "refreshToken"
)

// SetAuthCookies attaches freshly minted tokens as http-only cookies scoped
// to the whole API, each expiring with its token.
func SetAuthCookies(c *gin.Context, accessToken, refreshToken string) {
	writeCookie(c, accessTokenCookie, accessToken, int(AccessTokenExpiry.Seconds()))
	writeCookie(c, refreshTokenCookie, refreshToken, int(RefreshTokenExpiry.Seconds()))
}

// ClearAuthCookies expires both token cookies.
func ClearAuthCookies(c *gin.Context) {
	writeCookie(c, accessTokenCookie, "", -1)
	writeCookie(c, refreshTokenCookie, "", -1)
}

func writeCookie(c *gin.Context, name, value string, maxAge int) {
	// Secure is relaxed in debug mode so local clients without TLS work.
	secure := gin.Mode() != gin.DebugMode
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, maxAge, "/", "", secure, true)
}
