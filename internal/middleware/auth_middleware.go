package middleware

import (
	"strings"

	"go-warehouse-ws/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by RequireAuth.
const (
	LocalUserID     = "user_id"
	LocalUserEmail  = "user_email"
	LocalUserName   = "user_name"
	LocalPrivileges = "user_privileges"
)

// RequireAuth verifies the bearer token issued by the auth service and puts
// the caller's identity into c.Locals. Users are not looked up locally.
func RequireAuth(secret []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, ok := bearerToken(c.Get(fiber.HeaderAuthorization))
		if !ok {
			if c.Get(fiber.HeaderAuthorization) == "" {
				return c.Status(401).JSON(fiber.Map{"error": "Missing authorization token"})
			}
			return c.Status(401).JSON(fiber.Map{"error": "Invalid authorization format. Use: Bearer <token>"})
		}

		claims, err := jwt.ValidateToken(secret, tokenString)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalUserEmail, claims.Email)
		c.Locals(LocalUserName, claims.Name)
		c.Locals(LocalPrivileges, claims.Privileges)

		return c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "bearer") || token == "" || strings.Contains(token, " ") {
		return "", false
	}
	return token, true
}

// RequirePrivilege lets the request through only if the caller holds privilege.
func RequirePrivilege(privilege string) fiber.Handler {
	return requireAny([]string{privilege}, "Forbidden: requires '"+privilege+"' privilege")
}

// RequireAnyPrivilege lets the request through if the caller holds at least one of privileges.
func RequireAnyPrivilege(privileges ...string) fiber.Handler {
	return requireAny(privileges, "Forbidden: requires one of "+strings.Join(privileges, ", ")+" privileges")
}

func requireAny(required []string, message string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		held, ok := c.Locals(LocalPrivileges).([]string)
		if !ok {
			return c.Status(403).JSON(fiber.Map{"error": "No privileges found"})
		}

		for _, h := range held {
			for _, r := range required {
				if h == r {
					return c.Next()
				}
			}
		}

		return c.Status(403).JSON(fiber.Map{"error": message})
	}
}
