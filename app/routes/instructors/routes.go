package instructors

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ipchperu-tech/SFDV2/app/config"
	"github.com/ipchperu-tech/SFDV2/app/database"
	"github.com/ipchperu-tech/SFDV2/app/routes/auth"
)

func SetupInstructorsRoutes(app *fiber.App) {
	api := app.Group("/api/instructors")
	api.Use(auth.AuthMiddleware)

	api.Get("/", ListInstructorsAPI)
}

// ListInstructorsAPI returns active instructors, used by the substitute picker.
func ListInstructorsAPI(c *fiber.Ctx) error {
	instructors, err := database.GetActiveInstructors(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load instructors"})
	}
	return c.JSON(fiber.Map{"instructors": instructors})
}
