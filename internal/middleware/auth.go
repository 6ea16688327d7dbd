package middleware

import (
	"errors"
	"net/http"

	"shilpgroup-io/backoffice/configs"
	"shilpgroup-io/backoffice/helper"
	"shilpgroup-io/backoffice/internal/auth"

	"github.com/gin-gonic/gin"
)

const (
	ContextAdminId       = "adminId"
	ContextUpstreamToken = "upstreamToken"
	ContextSession       = "session"
)

// Auth validates the dashboard JWT, rejects blacklisted tokens and
// loads the Redis session so handlers can reach the upstream bearer
// token without another lookup.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractToken(c)
		if err != nil {
			helper.HandleError(c, http.StatusUnauthorized, err, "request does not contain an access token")
			c.Abort()
			return
		}

		claim, err := auth.ValidateToken(tokenString)
		if err != nil {
			helper.HandleError(c, http.StatusUnauthorized, err, err.Error())
			c.Abort()
			return
		}

		if !helper.IsTokenValid(configs.REDIS, tokenString) {
			err := errors.New("token has been logged out, please login again")
			helper.HandleError(c, http.StatusUnauthorized, err, err.Error())
			c.Abort()
			return
		}

		session, err := auth.GetSession(c.Request.Context(), configs.REDIS, claim.SessionId)
		if err != nil || session.Expired() {
			helper.HandleError(c, http.StatusUnauthorized, errors.New("session expired"), "session expired, please login again")
			c.Abort()
			return
		}

		c.Set(ContextAdminId, session.AdminId)
		c.Set(ContextUpstreamToken, session.UpstreamToken)
		c.Set(ContextSession, session)
		c.Next()
	}
}
