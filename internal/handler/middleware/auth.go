package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	pkgjwt "compras-service/internal/pkg/jwt"
	"compras-service/internal/usecase"
	"compras-service/internal/usecase/shared"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxTenantIDKey   = "tenant_id"
	ctxUsuarioIDKey  = "usuario_id"
	ctxCredentialKey = "credential"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth verifies the bearer credential and injects the claim plus the
// raw credential (passed through to the course directory) into the context.
// No downstream call happens for an unauthenticated request.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearer(c.GetHeader("Authorization"))
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Access token required"},
			})
			c.Abort()
			return
		}

		claim, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("token validation failed", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": authFailureMessage(err)},
			})
			c.Abort()
			return
		}

		c.Set(ctxTenantIDKey, claim.TenantID)
		c.Set(ctxUsuarioIDKey, claim.Username)
		c.Set(ctxCredentialKey, token)
		c.Set("jwt_claims", map[string]any{
			"tenant_id":  claim.TenantID,
			"usuario_id": claim.Username,
		})
		c.Next()
	}
}

// tolerate credentials sent with or without the Bearer prefix
func extractBearer(header string) string {
	if header == "" {
		return ""
	}
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(header[len("Bearer "):])
	}
	return strings.TrimSpace(header)
}

func authFailureMessage(err error) string {
	switch {
	case errors.Is(err, pkgjwt.ErrExpiredToken):
		return "Token expired"
	case errors.Is(err, pkgjwt.ErrMissingClaims):
		return "Token missing required claims"
	default:
		return "Invalid token"
	}
}

// GetActor returns the verified caller identity set by RequireAuth.
func GetActor(c *gin.Context) (shared.Actor, bool) {
	tenantID, ok := c.Get(ctxTenantIDKey)
	if !ok {
		return shared.Actor{}, false
	}
	usuarioID, ok := c.Get(ctxUsuarioIDKey)
	if !ok {
		return shared.Actor{}, false
	}
	credential, ok := c.Get(ctxCredentialKey)
	if !ok {
		return shared.Actor{}, false
	}

	tenant, tenantOK := tenantID.(string)
	usuario, usuarioOK := usuarioID.(string)
	cred, credOK := credential.(string)
	if !tenantOK || !usuarioOK || !credOK {
		return shared.Actor{}, false
	}

	return shared.Actor{
		TenantID:   tenant,
		UsuarioID:  usuario,
		Credential: cred,
	}, true
}
