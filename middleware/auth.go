package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/alerta-golpe/api-go/apperrors"
	"github.com/alerta-golpe/api-go/utils"
	"github.com/gin-gonic/gin"
)

// Authenticator resolves a bearer token to the caller's session.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*utils.Session, error)
}

func abortWith(c *gin.Context, status int, message, code string) {
	c.AbortWithStatusJSON(status, gin.H{
		"success": false,
		"error":   message,
		"code":    code,
	})
}

func AuthMiddleware(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWith(c, http.StatusUnauthorized, "Token de autenticação obrigatório", "UNAUTHORIZED")
			return
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 || !strings.EqualFold(bearerToken[0], "Bearer") {
			abortWith(c, http.StatusUnauthorized, "Formato de token inválido", "UNAUTHORIZED")
			return
		}

		session, err := auth.Authenticate(c.Request.Context(), bearerToken[1])
		if err != nil {
			status := apperrors.HTTPStatus(err)
			if status >= http.StatusInternalServerError {
				abortWith(c, status, apperrors.Message(err), apperrors.Code(err))
				return
			}
			abortWith(c, http.StatusUnauthorized, "Token inválido ou expirado", "UNAUTHORIZED")
			return
		}

		utils.SetSession(c, session)
		c.Next()
	}
}

// RequireAdmin must run after AuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := utils.GetSession(c)
		if session == nil {
			abortWith(c, http.StatusUnauthorized, "Token de autenticação obrigatório", "UNAUTHORIZED")
			return
		}
		if !session.IsAdmin {
			abortWith(c, http.StatusForbidden, "Acesso restrito a administradores", "FORBIDDEN")
			return
		}
		c.Next()
	}
}
