package incidents

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ipchperu-tech/SFDV2/app/routes/auth"
)

func SetupIncidentsRoutes(app *fiber.App) {
	api := app.Group("/api/incidents")
	api.Use(auth.AuthMiddleware)

	api.Get("/", ListIncidentsAPI)
	api.Post("/", CreateIncidentAPI)
}
