package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AllShops in the shops claim grants access to every shop of the organization.
const AllShops = "*"

// AuthClaims are the claims carried by back-office access tokens.
type AuthClaims struct {
	jwt.RegisteredClaims
	OrgID string   `json:"org"`
	Shops []string `json:"shops"`
}

// AuthMiddleware creates a Gin middleware handler that validates JWT tokens.
// Tokens are issued elsewhere; this service only verifies them.
func AuthMiddleware(jwtSecret, issuer string) gin.HandlerFunc {
	parserOpts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(issuer))
	}

	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		claims := &AuthClaims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(jwtSecret), nil
		}, parserOpts...)
		if err != nil {
			logger.Warn("Invalid token", "error", err)
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			} else if errors.Is(err, jwt.ErrTokenNotValidYet) {
				msg = "Token not valid yet"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		if !token.Valid || claims.Subject == "" {
			logger.Error("User ID (subject) missing from valid token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		ctx := WithActor(c.Request.Context(), claims.Subject, claims.OrgID, claims.Shops)
		enrichedLogger := logger.With(slog.String("user_id", claims.Subject))
		c.Request = c.Request.WithContext(WithLogger(ctx, enrichedLogger))
		c.Set(string(userIDKey), claims.Subject)

		c.Next()
	}
}

// RequireShopAccess rejects requests whose :shopID is not granted by the token.
// It must run after AuthMiddleware.
func RequireShopAccess() gin.HandlerFunc {
	return func(c *gin.Context) {
		shopID := c.Param("shopID")
		ctx := c.Request.Context()
		shops := shopsFromCtx(ctx)

		if shopID == "" || !(slices.Contains(shops, AllShops) || slices.Contains(shops, shopID)) {
			GetLoggerFromCtx(ctx).Warn("Shop access denied", slog.String("shop_id", shopID))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access to this shop is not allowed"})
			return
		}

		c.Request = c.Request.WithContext(WithLogger(ctx, GetLoggerFromCtx(ctx).With(slog.String("shop_id", shopID))))
		c.Next()
	}
}
