package holidays

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ipchperu-tech/SFDV2/app/routes/auth"
)

func SetupHolidaysRoutes(app *fiber.App) {
	api := app.Group("/api/holidays")
	api.Use(auth.AuthMiddleware)

	api.Get("/", ListHolidaysAPI)
	api.Post("/", CreateHolidayAPI)
	api.Delete("/:id", DeleteHolidayAPI)
}
