package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/campus-social/internal/model"
	"github.com/d60-Lab/campus-social/pkg/jwt"
	"github.com/d60-Lab/campus-social/pkg/response"
)

const currentUserKey = "current_user"

const (
	MsgTokenExpired = "User token has expired, please try again."
	MsgUnauthorized = "Authentication is required to access this resource."
	MsgForbidden    = "You do not have permission to access this resource."
)

// TokenResolver 由 service.AuthService 实现
type TokenResolver interface {
	ResolveToken(ctx context.Context, token string) (*model.User, error)
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if len(h) < 7 || !strings.EqualFold(h[:7], "Bearer ") {
		return ""
	}
	return strings.TrimSpace(h[7:])
}

// Auth 要求请求携带有效 bearer token，并把用户放入上下文
func Auth(resolver TokenResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.AbortAction(c, http.StatusUnauthorized, MsgUnauthorized)
			return
		}
		u, err := resolver.ResolveToken(c.Request.Context(), token)
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			response.AbortAction(c, http.StatusUnauthorized, MsgTokenExpired)
			return
		case err != nil || u == nil:
			response.AbortAction(c, http.StatusUnauthorized, MsgUnauthorized)
			return
		}
		c.Set(currentUserKey, u)
		c.Next()
	}
}

// RequireRoles 必须挂在 Auth 之后
func RequireRoles(roles ...model.Role) gin.HandlerFunc {
	allowed := make(map[model.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		u := CurrentUser(c)
		if u == nil {
			response.AbortAction(c, http.StatusUnauthorized, MsgUnauthorized)
			return
		}
		if !allowed[u.Role] {
			response.AbortAction(c, http.StatusForbidden, MsgForbidden)
			return
		}
		c.Next()
	}
}

func CurrentUser(c *gin.Context) *model.User {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil
	}
	u, _ := v.(*model.User)
	return u
}
