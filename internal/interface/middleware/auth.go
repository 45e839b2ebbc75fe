package middleware

import (
	"expvar"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/inotebook/internal/domain/entity"
	"github.com/oksasatya/inotebook/pkg/helpers"
	"github.com/oksasatya/inotebook/pkg/response"
)

// TokenHeader carries the identity token on gated routes.
const TokenHeader = "auth-token"

const unauthenticatedMsg = "Please authenticate using a valid token"

var gateRejections = expvar.NewInt("auth_gate_rejections")

// Auth verifies the auth-token header and stores the subject in the request
// context. Every failure gets the same 401 body; the reason is only logged.
func Auth(tokens *helpers.TokenService, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(TokenHeader)
		if token == "" {
			reject(c, logger, "missing token", nil)
			return
		}
		subject, err := tokens.Verify(token)
		if err != nil {
			reject(c, logger, "invalid token", err)
			return
		}
		c.Request = c.Request.WithContext(WithUserID(c.Request.Context(), entity.UserID(subject)))
		c.Next()
	}
}

func reject(c *gin.Context, logger *logrus.Logger, reason string, err error) {
	gateRejections.Add(1)
	if logger != nil {
		entry := logger.WithFields(logrus.Fields{
			"request_id": c.GetString(response.RequestIDKey),
			"ip":         ClientIP(c),
			"path":       c.Request.URL.Path,
		})
		if err != nil {
			entry = entry.WithError(err)
		}
		entry.Warn(reason)
	}
	response.Error[any](c, http.StatusUnauthorized, unauthenticatedMsg, nil)
}
