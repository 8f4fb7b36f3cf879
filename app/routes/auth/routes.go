package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ipchperu-tech/SFDV2/app/models"
)

func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	// Public routes
	auth.Post("/login", LoginAPI)
	auth.Post("/logout", LogoutAPI)

	// Protected routes
	auth.Use(AuthMiddleware)
	auth.Get("/me", MeAPI)
	auth.Post("/change-password", ChangePasswordAPI)
}

// AuthMiddleware guards the administration API with a JWT from either the
// session cookie or the Authorization header.
func AuthMiddleware(c *fiber.Ctx) error {
	// First try cookie
	tokenString := c.Cookies("jwt_token")

	// If no cookie, try Authorization header
	if tokenString == "" {
		header := c.Get("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			tokenString = strings.TrimPrefix(header, "Bearer ")
		}
	}

	if tokenString == "" {
		return c.Status(401).JSON(fiber.Map{"error": "No token found"})
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid token"})
	}

	// Create user object from claims
	user := &models.User{
		ID:        claims.UserID,
		Email:     claims.Email,
		FirstName: claims.FirstName,
		LastName:  claims.LastName,
		IsActive:  true,
	}

	c.Locals("user", user)
	c.Locals("user_id", claims.UserID)
	c.Locals("user_email", claims.Email)

	return c.Next()
}
