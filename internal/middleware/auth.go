// Package middleware provides authentication, logging, rate limiting, and
// tracing middleware for the application.
package middleware

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	tokenIssuer   = "devconnect"
	tokenAudience = "devconnect-api"
)

// Identity is the authenticated caller decoded from token claims.
type Identity struct {
	ID     uint
	Name   string
	Avatar string
}

// Auth validates bearer tokens and revocation state for protected routes.
type Auth struct {
	secret []byte
	rdb    *redis.Client
}

// NewAuth returns an Auth using the given signing secret. rdb may be nil, in
// which case revocation checks are skipped.
func NewAuth(secret string, rdb *redis.Client) *Auth {
	return &Auth{secret: []byte(secret), rdb: rdb}
}

// Sign issues a token carrying the identity claims. The returned jti can be
// blacklisted on logout to revoke the token before expiry.
func (a *Auth) Sign(ident Identity, expiry time.Duration) (string, string, error) {
	jti := uuid.NewString()
	now := time.Now()
	claims := jwt.MapClaims{
		"id":     ident.ID,
		"name":   ident.Name,
		"avatar": ident.Avatar,
		"iss":    tokenIssuer,
		"aud":    tokenAudience,
		"jti":    jti,
		"iat":    now.Unix(),
		"exp":    now.Add(expiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(a.secret)
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, jti, nil
}

// BlacklistKey is the Redis key holding a revoked token id.
func BlacklistKey(jti string) string {
	return "jwt:blacklist:" + jti
}

// Revoke marks a token id as revoked until its expiry.
func (a *Auth) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if a.rdb == nil {
		return nil
	}
	return a.rdb.Set(ctx, BlacklistKey(jti), "1", ttl).Err()
}

func (a *Auth) parse(tokenString string) (*Identity, string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return a.secret, nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithAudience(tokenAudience),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return nil, "", fmt.Errorf("invalid or expired token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, "", fmt.Errorf("invalid token claims")
	}

	idClaim, ok := claims["id"].(float64)
	if !ok || idClaim <= 0 {
		return nil, "", fmt.Errorf("missing user id claim")
	}

	ident := &Identity{ID: uint(idClaim)}
	if name, ok := claims["name"].(string); ok {
		ident.Name = name
	}
	if avatar, ok := claims["avatar"].(string); ok {
		ident.Avatar = avatar
	}

	jti, _ := claims["jti"].(string)
	return ident, jti, nil
}

// verify parses the token and checks the revocation blacklist.
func (a *Auth) verify(ctx context.Context, tokenString string) (*Identity, string, error) {
	ident, jti, err := a.parse(tokenString)
	if err != nil {
		return nil, "", err
	}

	if a.rdb != nil && jti != "" {
		// Redis being down must not lock every user out.
		revoked, err := a.rdb.Exists(ctx, BlacklistKey(jti)).Result()
		if err == nil && revoked > 0 {
			return nil, "", fmt.Errorf("token has been revoked")
		}
	}

	return ident, jti, nil
}

func bearerToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return "", fmt.Errorf("authorization header required")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", fmt.Errorf("invalid authorization header format")
	}
	return parts[1], nil
}

// Required enforces authentication for protected routes. On success the
// caller's identity is stored in c.Locals("userID") and c.Locals("identity").
func (a *Auth) Required() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := bearerToken(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"notauthorized": "Authorization denied",
			})
		}

		ident, jti, err := a.verify(c.UserContext(), tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"notauthorized": "Authorization denied",
			})
		}

		c.Locals("userID", ident.ID)
		c.Locals("identity", ident)
		c.Locals("jti", jti)
		return c.Next()
	}
}

// WebSocketRequired authenticates WebSocket upgrade requests. Browsers cannot
// set headers on upgrade, so the token is accepted from the query string with
// the Authorization header as fallback.
func (a *Auth) WebSocketRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Query("token")
		if tokenString == "" {
			var err error
			tokenString, err = bearerToken(c)
			if err != nil {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"notauthorized": "Authorization denied",
				})
			}
		}

		ident, jti, err := a.verify(c.UserContext(), tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"notauthorized": "Authorization denied",
			})
		}

		c.Locals("userID", ident.ID)
		c.Locals("identity", ident)
		c.Locals("jti", jti)
		return c.Next()
	}
}

// IdentityFromCtx returns the authenticated identity stored by Required.
func IdentityFromCtx(c *fiber.Ctx) (*Identity, bool) {
	ident, ok := c.Locals("identity").(*Identity)
	return ident, ok
}

// JTIFromCtx returns the token id stored by Required. Logout uses it to
// blacklist the presented token.
func JTIFromCtx(c *fiber.Ctx) string {
	jti, _ := c.Locals("jti").(string)
	return jti
}
