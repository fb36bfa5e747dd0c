package auth

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

type AuthJWTOpts struct {
	Secret              string
	AllowCookieFallback bool // use access_token cookie when no Bearer header
}

// AuthJWT verifies the bearer token issued by the external auth service and
// hydrates user_id / user_name / user_role into Locals. Token issuance is not
// this backend's concern.
func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthJWT: Secret is required")
	}

	return func(c *fiber.Ctx) error {
		raw := ""
		if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		} else if o.AllowCookieFallback {
			raw = strings.TrimSpace(c.Cookies("access_token"))
		}
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
		}

		if exp := floatClaim(claims, "exp"); exp > 0 && time.Now().Unix() > int64(exp) {
			return fiber.NewError(fiber.StatusUnauthorized, "Token expired")
		}

		userID := strClaim(claims, "user_id")
		if userID == "" {
			userID = strClaim(claims, "sub")
		}
		if userID == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Missing user ID in token")
		}

		c.Locals("jwt_claims", claims)
		c.Locals("raw_token", raw)
		c.Locals("user_id", userID)
		if name := strClaim(claims, "user_name"); name != "" {
			c.Locals("user_name", name)
		}
		if role := strClaim(claims, "role"); role != "" {
			c.Locals("user_role", role)
		}

		return c.Next()
	}
}

// OnlyAdmin guards the back-office group; must run after AuthJWT.
func OnlyAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("user_role").(string)
		if role != "admin" {
			return fiber.NewError(fiber.StatusForbidden, "Admin access required")
		}
		return c.Next()
	}
}

func strClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

func floatClaim(claims jwt.MapClaims, key string) float64 {
	if v, ok := claims[key].(float64); ok {
		return v
	}
	return 0
}
