package classrooms

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ipchperu-tech/SFDV2/app/config"
	"github.com/ipchperu-tech/SFDV2/app/database"
	"github.com/ipchperu-tech/SFDV2/app/schedule"
)

// ListClassroomsAPI returns classrooms that still have sessions to manage.
func ListClassroomsAPI(c *fiber.Ctx) error {
	classrooms, err := database.GetActiveClassrooms(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load classrooms"})
	}
	return c.JSON(fiber.Map{"classrooms": classrooms})
}

// ListFrequenciesAPI returns the recognized frequency labels.
func ListFrequenciesAPI(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"frequencies": schedule.Frequencies()})
}

// ListSessionsAPI returns a classroom's sessions. With ?manageable=true only
// future sessions an incident can target are returned, which is what the
// operator panel shows in its session picker.
func ListSessionsAPI(c *fiber.Ctx) error {
	classroomID := c.Params("id")
	if classroomID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Classroom ID is required"})
	}

	db := config.GetDB()
	if c.QueryBool("manageable") {
		sessions, err := database.GetManageableSessions(db, classroomID, time.Now().In(config.Location()))
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to load sessions"})
		}
		return c.JSON(fiber.Map{"sessions": sessions})
	}

	sessions, err := database.GetSessionsByClassroom(db, classroomID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load sessions"})
	}
	return c.JSON(fiber.Map{"sessions": sessions})
}

// ListClassroomIncidentsAPI returns the incident history of one classroom.
func ListClassroomIncidentsAPI(c *fiber.Ctx) error {
	classroomID := c.Params("id")
	if classroomID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Classroom ID is required"})
	}

	incidents, err := database.GetIncidentsByClassroom(config.GetDB(), classroomID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load incidents"})
	}
	return c.JSON(fiber.Map{"incidents": incidents})
}
