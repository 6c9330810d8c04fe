package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/casavia/realty-system/internal/api/metrics"
	"github.com/casavia/realty-system/internal/core/domain"
	"github.com/casavia/realty-system/internal/core/ports"
)

// IdentityKey is the echo context key the authentication gate stores the
// resolved domain.Identity under.
const IdentityKey = "identity"

// Authenticate resolves the bearer token into a request identity. The gate
// itself never rejects a request: a missing, expired or otherwise bad token
// leaves the request anonymous and lets route-level guards decide. It is
// idempotent; an identity already present in the context is left untouched.
func Authenticate(tokens ports.TokenService, users ports.UserRepository, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := c.Get(IdentityKey).(domain.Identity); ok {
				return next(c)
			}

			raw := bearerToken(c)
			if raw == "" {
				c.Set(IdentityKey, domain.Anonymous)
				return next(c)
			}

			subject, err := tokens.ExtractSubject(raw)
			if err != nil {
				reason := rejectionReason(err)
				metrics.TokenRejectionsTotal.WithLabelValues(reason).Inc()
				log.Debug().Str("reason", reason).Msg("bearer token rejected")
				c.Set(IdentityKey, domain.Anonymous)
				return next(c)
			}

			user, err := users.FindByEmail(c.Request().Context(), domain.NormalizeEmail(subject))
			if err != nil {
				metrics.TokenRejectionsTotal.WithLabelValues("unknown_user").Inc()
				log.Debug().Str("subject", subject).Msg("token subject no longer exists")
				c.Set(IdentityKey, domain.Anonymous)
				return next(c)
			}

			c.Set(IdentityKey, domain.NewIdentity(user))
			return next(c)
		}
	}
}

// Identity returns the identity resolved by Authenticate. Anonymous when the
// gate did not run or resolved nothing.
func Identity(c echo.Context) domain.Identity {
	if id, ok := c.Get(IdentityKey).(domain.Identity); ok {
		return id
	}
	return domain.Anonymous
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrTokenExpired):
		return "expired"
	case errors.Is(err, domain.ErrTokenSignature):
		return "bad_signature"
	case errors.Is(err, domain.ErrTokenSubject):
		return "bad_subject"
	case errors.Is(err, domain.ErrTokenMalformed):
		return "malformed"
	}
	return "malformed"
}
