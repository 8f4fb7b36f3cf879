package main

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/ipchperu-tech/SFDV2/app/config"
	"github.com/ipchperu-tech/SFDV2/app/database"
	"github.com/ipchperu-tech/SFDV2/app/routes/auth"
	"github.com/ipchperu-tech/SFDV2/app/routes/classrooms"
	"github.com/ipchperu-tech/SFDV2/app/routes/holidays"
	"github.com/ipchperu-tech/SFDV2/app/routes/incidents"
	"github.com/ipchperu-tech/SFDV2/app/routes/instructors"
	"github.com/ipchperu-tech/SFDV2/app/services"
)

// customErrorHandler keeps error responses as JSON across the whole API
func customErrorHandler(c *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError

	// Retrieve the custom status code if it's a *fiber.Error
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	// All schedules live on the academy's fixed UTC-5 wall clock
	time.Local = config.Location()
	log.Printf("Application time zone set to: %s", time.Local.String())

	// Initialize database
	config.InitDB()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Catch up lifecycle states missed while the process was down
	if err := services.RollClassroomLifecycles(config.GetDB()); err != nil {
		log.Printf("Initial lifecycle roll failed: %v", err)
	}

	// Start background scheduler
	services.StartScheduler(config.GetDB())

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Setup auth routes
	auth.SetupAuthRoutes(app)

	// Setup classrooms routes
	classrooms.SetupClassroomsRoutes(app)

	// Setup instructors routes
	instructors.SetupInstructorsRoutes(app)

	// Setup incidents routes
	incidents.SetupIncidentsRoutes(app)

	// Setup holidays routes
	holidays.SetupHolidaysRoutes(app)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	})

	// Start server
	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	log.Println("Server starting on " + addr)
	log.Fatal(app.Listen(addr))
}
