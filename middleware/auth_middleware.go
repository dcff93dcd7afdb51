package middleware

import (
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"

	config "github.com/goldenpalm/resort_backend/configs"
	"github.com/goldenpalm/resort_backend/models"
)

func Protected() fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(config.Config("JWT_SECRET")),
		ErrorHandler: jwtError,
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	if err.Error() == "Missing or malformed JWT" {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"status": "error", "message": "Missing or malformed JWT", "data": nil})
	}
	return c.Status(fiber.StatusUnauthorized).
		JSON(fiber.Map{"status": "error", "message": "Invalid or expired JWT", "data": nil})
}

// ClaimUsername reads the username claim set at login.
func ClaimUsername(c *fiber.Ctx) string {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	username, _ := claims["username"].(string)
	return username
}

// ClaimRole reads the role claim set at login.
func ClaimRole(c *fiber.Ctx) string {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	role, _ := claims["role"].(string)
	return role
}

func roleRequired(name string, roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := ClaimRole(c)
		for _, r := range roles {
			if role == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Forbidden: " + name + " access required",
		})
	}
}

func AdminRequired() fiber.Handler {
	return roleRequired("Admin", models.RoleAdmin)
}

// ManagerRequired also admits admins; managers report to no one else.
func ManagerRequired() fiber.Handler {
	return roleRequired("Manager", models.RoleManager, models.RoleAdmin)
}

func FrontDeskRequired() fiber.Handler {
	return roleRequired("Front desk", models.RoleFrontDesk, models.RoleManager, models.RoleAdmin)
}

func PaymentOfficerRequired() fiber.Handler {
	return roleRequired("Payment officer", models.RolePaymentOfficer, models.RoleManager, models.RoleAdmin)
}

func BackOfficeRequired() fiber.Handler {
	return roleRequired("Back office", models.RoleBackOffice, models.RoleManager, models.RoleAdmin)
}

// StaffRequired admits any back-of-house role.
func StaffRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		u := models.User{Role: ClaimRole(c)}
		if !u.IsStaff() {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Forbidden: Staff access required",
			})
		}
		return c.Next()
	}
}
