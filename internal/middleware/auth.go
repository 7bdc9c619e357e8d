package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const (
	TrustHeader = "Trust-Me"

	userIDKey = "user_id"
	claimsKey = "token_claims"
)

type TokenParser interface {
	ParseAccess(token string) (*domain.TokenClaims, error)
}

type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type UserLookup interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type authConfig struct {
	trustUsers UserLookup
}

type AuthOption func(*authConfig)

// WithTrustHeader lets the Trust-Me header name a user by email without a
// password. The app only enables it in gin test mode.
func WithTrustHeader(users UserLookup) AuthOption {
	return func(c *authConfig) {
		c.trustUsers = users
	}
}

// Authenticate resolves the caller identity. Requests without credentials
// pass through anonymously; the services decide whether identity is needed.
// Invalid credentials are rejected right away.
func Authenticate(tokens TokenParser, revoked RevocationChecker, log logger.Logger, opts ...AuthOption) ginext.HandlerFunc {
	cfg := &authConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(c *ginext.Context) {
		ctx := c.Request.Context()

		if header := c.GetHeader("Authorization"); header != "" {
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				abortUnauthorized(c, domain.ErrInvalidToken)
				return
			}

			claims, err := tokens.ParseAccess(token)
			if err != nil {
				abortUnauthorized(c, domain.ErrInvalidToken)
				return
			}

			isRevoked, err := revoked.IsRevoked(ctx, claims.TokenID)
			if err != nil {
				log.LogAttrs(ctx, logger.ErrorLevel, "check token revocation",
					logger.String("user_id", claims.UserID),
					logger.String("error", err.Error()),
				)
				c.Set("error", err.Error())
				c.AbortWithStatusJSON(http.StatusInternalServerError, ginext.H{"error": "internal server error"})
				return
			}
			if isRevoked {
				abortUnauthorized(c, domain.ErrInvalidToken)
				return
			}

			c.Set(userIDKey, claims.UserID)
			c.Set(claimsKey, claims)
			c.Next()
			return
		}

		if email := c.GetHeader(TrustHeader); email != "" && cfg.trustUsers != nil {
			user, err := cfg.trustUsers.GetByEmail(ctx, email)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					abortUnauthorized(c, domain.ErrInvalidCredentials)
					return
				}
				c.Set("error", err.Error())
				c.AbortWithStatusJSON(http.StatusInternalServerError, ginext.H{"error": "internal server error"})
				return
			}
			c.Set(userIDKey, user.ID)
		}

		c.Next()
	}
}

func abortUnauthorized(c *ginext.Context, err error) {
	c.Set("error", err.Error())
	c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": err.Error()})
}

// ActorID returns the authenticated user id, or "" for anonymous requests.
func ActorID(c *ginext.Context) string {
	return c.GetString(userIDKey)
}

// Claims returns the access token claims when the request carried a bearer token.
func Claims(c *ginext.Context) *domain.TokenClaims {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*domain.TokenClaims)
	return claims
}
