package cookie

import (
	"github.com/gin-gonic/gin"
)

// The dashboard's identity provider sets this cookie; the calendar API only reads it.
const AccessTokenCookieName = "access_token"

func GetAccessToken(c *gin.Context) string {
	token, err := c.Cookie(AccessTokenCookieName)
	if err != nil {
		return ""
	}
	return token
}
