package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	jwt "github.com/golang-jwt/jwt/v5"

	"newsfeed-service/internal/core/domain"
)

// Principal is the authenticated caller extracted from a bearer JWT.
type Principal struct {
	Name string
	Role string
}

type authClaims struct {
	Name string `json:"name"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// RequireAuth validates a Bearer HS256 JWT and stores the Principal in the
// gin context under "principal".
func RequireAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := parseBearer(c.GetHeader("Authorization"), secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.Set("principal", p)
		c.Next()
	}
}

// PrincipalFromContext returns the Principal stored by RequireAuth.
func PrincipalFromContext(c *gin.Context) (*Principal, bool) {
	v, ok := c.Get("principal")
	if !ok {
		return nil, false
	}
	p, ok := v.(*Principal)
	return p, ok
}

func parseBearer(header, secret string) (*Principal, error) {
	if header == "" {
		return nil, domain.ErrMissingToken
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, domain.ErrInvalidToken
	}
	return parseJWT(strings.TrimSpace(parts[1]), secret)
}

func parseJWT(tokenStr, secret string) (*Principal, error) {
	if secret == "" {
		return nil, domain.ErrInvalidToken
	}

	tok, err := jwt.ParseWithClaims(tokenStr, &authClaims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, domain.ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return nil, domain.ErrInvalidToken
	}

	c, _ := tok.Claims.(*authClaims)
	if c == nil || c.Name == "" {
		return nil, domain.ErrInvalidToken
	}
	return &Principal{Name: c.Name, Role: strings.ToLower(c.Role)}, nil
}
