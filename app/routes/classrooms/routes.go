package classrooms

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ipchperu-tech/SFDV2/app/routes/auth"
)

func SetupClassroomsRoutes(app *fiber.App) {
	api := app.Group("/api/classrooms")
	api.Use(auth.AuthMiddleware)

	api.Get("/", ListClassroomsAPI)
	api.Get("/frequencies", ListFrequenciesAPI)
	api.Get("/:id/sessions", ListSessionsAPI)
	api.Get("/:id/incidents", ListClassroomIncidentsAPI)
}
