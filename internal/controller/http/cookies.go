package http

import (
	"net/http"
	"time"

	"video-hive/pkg/middleware"

	"github.com/gin-gonic/gin"
)

const RefreshTokenCookie = "refreshToken"

// CookieConfig controls the session cookies set on login and refresh.
type CookieConfig struct {
	Secure     bool
	Domain     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

func (cc CookieConfig) setSession(c *gin.Context, accessToken, refreshToken string) {
	cc.sameSite(c)
	c.SetCookie(middleware.AccessTokenCookie, accessToken, int(cc.AccessTTL.Seconds()), "/", cc.Domain, cc.Secure, true)
	c.SetCookie(RefreshTokenCookie, refreshToken, int(cc.RefreshTTL.Seconds()), "/", cc.Domain, cc.Secure, true)
}

func (cc CookieConfig) clearSession(c *gin.Context) {
	cc.sameSite(c)
	c.SetCookie(middleware.AccessTokenCookie, "", -1, "/", cc.Domain, cc.Secure, true)
	c.SetCookie(RefreshTokenCookie, "", -1, "/", cc.Domain, cc.Secure, true)
}

// Cross-site frontends only receive cookies marked SameSite=None, which
// browsers accept on secure cookies alone.
func (cc CookieConfig) sameSite(c *gin.Context) {
	if cc.Secure {
		c.SetSameSite(http.SameSiteNoneMode)
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
}
