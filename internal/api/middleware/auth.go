package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"mliou521/Inkwell/internal/api/models"
	"mliou521/Inkwell/internal/api/repository"
	"mliou521/Inkwell/internal/api/response"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("middleware")

const sessionKey = "session"

// SessionAuth resolves the Authorization header into a session before any
// handler runs. The header is accepted raw or with a "Bearer " prefix. Every
// request re-resolves the token against the store; nothing is cached.
func SessionAuth(sessions repository.SessionRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tracer.Start(c.Request.Context(), "middleware.SessionAuth")
		defer span.End()

		token := strings.TrimSpace(c.GetHeader("Authorization"))
		token = strings.TrimSpace(strings.TrimPrefix(token, "Bearer "))
		if token == "" {
			span.SetStatus(codes.Error, "missing token")
			response.Message(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}

		session, err := sessions.FindByToken(ctx, token)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "session lookup failed")
			slog.ErrorContext(ctx, "session lookup failed", "error", err)
			response.Internal(c)
			c.Abort()
			return
		}
		if session == nil {
			span.SetStatus(codes.Error, "unknown token")
			response.Message(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}

		span.SetAttributes(attribute.String("user.id", session.UserID))
		c.Set(sessionKey, session)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// CurrentSession returns the session attached by SessionAuth, or nil on
// routes that skipped the middleware.
func CurrentSession(c *gin.Context) *models.Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	session, _ := v.(*models.Session)
	return session
}
