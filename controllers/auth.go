package controllers

import (
	"context"
	"errors"
	"net/http"

	"shilpgroup-io/backoffice/configs"
	"shilpgroup-io/backoffice/helper"
	"shilpgroup-io/backoffice/internal/auth"
	"shilpgroup-io/backoffice/internal/middleware"
	"shilpgroup-io/backoffice/models"
	"shilpgroup-io/backoffice/services/upstream"

	"github.com/gin-gonic/gin"
)

// Login authenticates against the upstream backend, opens a Redis
// session holding the upstream bearer token and hands the dashboard our
// own JWT.
func Login(client *upstream.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var creds models.AdminLoginRequest
		if err := c.ShouldBindJSON(&creds); err != nil {
			helper.HandleError(c, http.StatusBadRequest, err, "invalid login payload")
			return
		}
		if err := configs.ValidateInput(creds); err != nil {
			helper.HandleError(c, http.StatusBadRequest, err, err.Error())
			return
		}

		result, err := client.Login(c.Request.Context(), creds)
		if err != nil {
			helper.HandleError(c, http.StatusUnauthorized, err, upstreamMessage(err, "login failed"))
			return
		}

		session, err := auth.SetSession(c.Request.Context(), configs.REDIS, result.Admin, result.Token)
		if err != nil {
			helper.HandleError(c, http.StatusInternalServerError, err, "failed to create session")
			return
		}

		token, expiresAt, err := auth.GenerateJWT(result.Admin.ID, result.Admin.Email, session.SessionId)
		if err != nil {
			helper.HandleError(c, http.StatusInternalServerError, err, "failed to issue token")
			return
		}

		helper.HandleSuccess(c, http.StatusOK, "login successful", gin.H{
			"token":     token,
			"expiresAt": expiresAt,
			"admin":     result.Admin,
		})
	}
}

// VerifySession revalidates the stored upstream token. A dead token
// tears the session down so the dashboard is forced back to login.
func VerifySession(client *upstream.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessionFrom(c)

		result, err := client.VerifyToken(c.Request.Context(), session.UpstreamToken)
		if err != nil || !result.Valid {
			_ = auth.DeleteSession(c.Request.Context(), configs.REDIS, session.SessionId)
			if tokenString, terr := auth.ExtractToken(c); terr == nil {
				_ = helper.InvalidateToken(configs.REDIS, tokenString)
			}
			if err == nil {
				err = errors.New("upstream token rejected")
			}
			helper.HandleError(c, http.StatusUnauthorized, err, "session expired, please login again")
			return
		}

		helper.HandleSuccess(c, http.StatusOK, "session valid", gin.H{
			"valid": true,
			"admin": result.Admin,
		})
	}
}

// Logout blacklists the JWT and deletes the Redis session.
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessionFrom(c)

		tokenString, err := auth.ExtractToken(c)
		if err == nil {
			if berr := helper.InvalidateToken(configs.REDIS, tokenString); berr != nil {
				helper.HandleError(c, http.StatusInternalServerError, berr, "failed to invalidate token")
				return
			}
		}
		if err := auth.DeleteSession(c.Request.Context(), configs.REDIS, session.SessionId); err != nil {
			helper.HandleError(c, http.StatusInternalServerError, err, "failed to delete session")
			return
		}

		helper.HandleSuccess(c, http.StatusOK, "logged out", nil)
	}
}

func Profile(client *upstream.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		admin, err := client.Profile(upstreamCtx(c))
		if err != nil {
			helper.HandleError(c, http.StatusBadGateway, err, upstreamMessage(err, "failed to load profile"))
			return
		}
		helper.HandleSuccess(c, http.StatusOK, "profile", admin)
	}
}

func ForgotPassword(client *upstream.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email string `json:"email" binding:"required,email"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			helper.HandleError(c, http.StatusBadRequest, err, "a valid email is required")
			return
		}

		msg, err := client.ForgotPassword(c.Request.Context(), req.Email)
		if err != nil {
			helper.HandleError(c, http.StatusBadGateway, err, upstreamMessage(err, "failed to request password reset"))
			return
		}
		helper.HandleSuccess(c, http.StatusOK, msg, nil)
	}
}

// sessionFrom returns the session placed in the context by the auth
// middleware. Only reachable behind it, so the assertion is safe.
func sessionFrom(c *gin.Context) auth.AdminSession {
	return c.MustGet(middleware.ContextSession).(auth.AdminSession)
}

// upstreamCtx carries the session's upstream bearer token so the client
// can authenticate the backend call.
func upstreamCtx(c *gin.Context) context.Context {
	return upstream.WithToken(c.Request.Context(), c.GetString(middleware.ContextUpstreamToken))
}

// upstreamMessage prefers the backend's own error message over a local
// fallback.
func upstreamMessage(err error, fallback string) string {
	var apiErr *upstream.ApiError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
