package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// JWTSecret is set from config at startup; the default only serves tests.
var JWTSecret = []byte("nestlog-dev-secret")

// TokenTTL is how long issued device tokens live.
var TokenTTL = 30 * 24 * time.Hour

// IssueToken signs a device token carrying the family and device identity.
func IssueToken(familyID int, deviceID string) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"fid": familyID,
		"did": deviceID,
		"exp": time.Now().Add(TokenTTL).Unix(),
	}).SignedString(JWTSecret)
}

// JWTAuth validates the bearer token and puts family_id and device_id into
// the request context. Tokens close to expiry are renewed via X-New-Token.
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := parseBearer(c.GetHeader("Authorization"))
		if err != nil {
			// Browsers cannot set headers on websocket dials, so the
			// realtime endpoint passes the token as a query parameter.
			token, err = parseToken(c.Query("token"))
		}
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		claims := token.Claims.(jwt.MapClaims)
		fid, ok := claims["fid"].(float64)
		did, ok2 := claims["did"].(string)
		if !ok || !ok2 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set("family_id", int(fid))
		c.Set("device_id", did)

		// Renew when less than a day remains.
		if exp, ok := claims["exp"].(float64); ok {
			if time.Until(time.Unix(int64(exp), 0)) < 24*time.Hour {
				if newToken, err := IssueToken(int(fid), did); err == nil {
					c.Header("X-New-Token", newToken)
				}
			}
		}

		c.Next()
	}
}

func parseBearer(header string) (*jwt.Token, error) {
	if !strings.HasPrefix(header, "Bearer ") {
		return nil, jwt.ErrTokenMalformed
	}
	return parseToken(header[7:])
}

func parseToken(raw string) (*jwt.Token, error) {
	if raw == "" {
		return nil, jwt.ErrTokenMalformed
	}
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		return JWTSecret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return token, nil
}
