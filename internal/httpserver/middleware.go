package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const clientCookieName = "storefront_client"

const clientCookieMaxAge = 365 * 24 * 60 * 60

// clientCookie identifies the browser behind each request. Every piece of
// persisted state is keyed by this id, so a fresh cookie means a fresh
// cart and an Anonymous session.
func clientCookie() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(clientCookieName)
		if err != nil || id == "" || uuid.Validate(id) != nil {
			id = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(clientCookieName, id, clientCookieMaxAge, "/", "", false, true)
		}
		c.Set(clientCookieName, id)
		c.Next()
	}
}

func clientID(c *gin.Context) string {
	return c.GetString(clientCookieName)
}
