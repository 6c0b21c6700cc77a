package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Ayush2004sharma/MedSync-Backend/internal/httperr"
)

const (
	ContextCaller = "caller"

	RolePatient = "patient"
	RoleDoctor  = "doctor"
	RoleAdmin   = "admin"
)

// Caller is the authenticated principal. For doctors ID is the doctor id,
// for patients the user id.
type Caller struct {
	ID   uuid.UUID
	Role string
}

func (c Caller) IsAdmin() bool {
	return c.Role == RoleAdmin
}

// AuthMiddleware validates an HMAC signed bearer token. Tokens issued by the
// identity service carry doctorId for doctors and userId, id or _id for
// patients; an explicit role claim takes precedence.
func AuthMiddleware(secret string) gin.HandlerFunc {
	key := []byte(secret)

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "Authorization header required")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "Expected a Bearer token")
			c.Abort()
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return key, nil
		})
		if err != nil || !token.Valid {
			httperr.Unauthorized(c, "invalid_token", "Invalid or expired token")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			httperr.Unauthorized(c, "invalid_token_claims", "Invalid token claims")
			c.Abort()
			return
		}

		caller, ok := callerFromClaims(claims)
		if !ok {
			httperr.Unauthorized(c, "invalid_token_payload", "Token does not identify a user")
			c.Abort()
			return
		}

		c.Set(ContextCaller, caller)
		c.Next()
	}
}

func callerFromClaims(claims jwt.MapClaims) (Caller, bool) {
	role, _ := claims["role"].(string)

	if raw, ok := claims["doctorId"].(string); ok && raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return Caller{}, false
		}
		if role == "" {
			role = RoleDoctor
		}
		return Caller{ID: id, Role: role}, true
	}

	for _, k := range []string{"userId", "id", "_id"} {
		raw, ok := claims[k].(string)
		if !ok || raw == "" {
			continue
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			return Caller{}, false
		}
		if role == "" {
			role = RolePatient
		}
		return Caller{ID: id, Role: role}, true
	}

	return Caller{}, false
}

// CallerFrom returns the principal set by AuthMiddleware.
func CallerFrom(c *gin.Context) (Caller, bool) {
	v, ok := c.Get(ContextCaller)
	if !ok {
		return Caller{}, false
	}
	caller, ok := v.(Caller)
	return caller, ok
}

// RequireRole lets through callers holding one of roles. Admins always pass.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := CallerFrom(c)
		if !ok {
			httperr.Unauthorized(c, "unauthenticated", "Authentication required")
			c.Abort()
			return
		}
		if caller.IsAdmin() {
			c.Next()
			return
		}
		for _, r := range roles {
			if caller.Role == r {
				c.Next()
				return
			}
		}
		httperr.Forbidden(c, "forbidden", "Not allowed for role "+caller.Role)
		c.Abort()
	}
}
