package incidents

import (
	"database/sql"
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/ipchperu-tech/SFDV2/app/config"
	"github.com/ipchperu-tech/SFDV2/app/database"
	"github.com/ipchperu-tech/SFDV2/app/models"
	"github.com/ipchperu-tech/SFDV2/app/schedule"
)

var validate = validator.New()

// CreateIncidentRequest is the operator action: either replace the instructor
// of one session or reschedule a session (and cascade everything after it).
type CreateIncidentRequest struct {
	ClassroomID            string `json:"classroom_id" validate:"required,uuid"`
	SessionID              string `json:"session_id" validate:"required,uuid"`
	Kind                   string `json:"kind" validate:"required,oneof=replacement reschedule"`
	SubstituteInstructorID string `json:"substitute_instructor_id" validate:"required_if=Kind replacement,omitempty,uuid"`
	NewDate                string `json:"new_date" validate:"required_if=Kind reschedule,omitempty,datetime=2006-01-02"`
	Reason                 string `json:"reason" validate:"required"`
}

func ListIncidentsAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	if classroomID := c.Query("classroom_id"); classroomID != "" {
		incidents, err := database.GetIncidentsByClassroom(db, classroomID)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to load incidents"})
		}
		return c.JSON(fiber.Map{"incidents": incidents})
	}

	incidents, err := database.GetIncidents(db, c.QueryInt("limit", 100))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load incidents"})
	}
	return c.JSON(fiber.Map{"incidents": incidents})
}

func CreateIncidentAPI(c *fiber.Ctx) error {
	var req CreateIncidentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed: " + err.Error()})
	}

	db := config.GetDB()
	recordedBy := c.Locals("user_email").(string)

	classroom, err := database.GetClassroomByID(db, req.ClassroomID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Classroom not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load classroom"})
	}

	sessions, err := database.GetSessionsByClassroom(db, classroom.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load sessions"})
	}

	switch models.IncidentKind(req.Kind) {
	case models.IncidentReplacement:
		return createReplacement(c, db, classroom, sessions, req, recordedBy)
	case models.IncidentReschedule:
		return createReschedule(c, db, classroom, sessions, req, recordedBy)
	default:
		return c.Status(400).JSON(fiber.Map{"error": "Unknown incident kind"})
	}
}

func createReplacement(
	c *fiber.Ctx,
	db *sql.DB,
	classroom *models.Classroom,
	sessions []models.ClassSession,
	req CreateIncidentRequest,
	recordedBy string,
) error {
	if _, err := database.GetInstructorByID(db, req.SubstituteInstructorID); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Substitute instructor not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load instructor"})
	}

	plan, err := schedule.BuildReplacementPlan(
		*classroom, sessions, req.SessionID,
		req.SubstituteInstructorID, req.Reason, recordedBy, config.Location(),
	)
	if err != nil {
		return planErrorResponse(c, err)
	}

	if err := database.ApplyReplacementPlan(db, plan); err != nil {
		return commitErrorResponse(c, err)
	}

	log.Printf("Replacement recorded: classroom %s session %d, substitute %s",
		classroom.Code, plan.SessionNumber, req.SubstituteInstructorID)

	return c.Status(201).JSON(fiber.Map{
		"message":  "Replacement recorded",
		"incident": plan.Incident,
	})
}

func createReschedule(
	c *fiber.Ctx,
	db *sql.DB,
	classroom *models.Classroom,
	sessions []models.ClassSession,
	req CreateIncidentRequest,
	recordedBy string,
) error {
	anchor, err := time.ParseInLocation("2006-01-02", req.NewDate, config.Location())
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid new_date"})
	}

	holidayDates, err := database.GetHolidayDates(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load holiday calendar"})
	}
	holidays := schedule.NewHolidaySet(holidayDates)

	plan, err := schedule.BuildReschedulePlan(
		*classroom, sessions, req.SessionID,
		anchor, req.Reason, recordedBy, holidays, config.Location(),
	)
	if err != nil {
		return planErrorResponse(c, err)
	}

	if err := database.ApplyReschedulePlan(db, plan); err != nil {
		return commitErrorResponse(c, err)
	}

	log.Printf("Reschedule committed: classroom %s session %d moved to %s, %d later sessions shifted",
		classroom.Code, plan.Target.Number, plan.Target.Date.Format("2006-01-02"), len(plan.Subsequent))

	// Best effort: the cascade is already durable, a stale span is tolerable.
	if err := database.RecalculateClassroomSpan(db, classroom.ID); err != nil {
		log.Printf("Warning: failed to recalculate classroom %s end date: %v", classroom.Code, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"message":          "Reschedule committed",
		"incident":         plan.Incident,
		"sessions_shifted": len(plan.Subsequent) + 1,
	})
}

// planErrorResponse maps planner preconditions to API errors. All of these
// fire before any write, so the schedule is untouched.
func planErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, schedule.ErrSessionNotFound):
		return c.Status(404).JSON(fiber.Map{"error": "Session not found in classroom"})
	case errors.Is(err, schedule.ErrUnknownFrequency),
		errors.Is(err, schedule.ErrMissingTimeOfDay),
		errors.Is(err, schedule.ErrInvalidTimeOfDay):
		return c.Status(422).JSON(fiber.Map{"error": "Classroom configuration error: " + err.Error()})
	case errors.Is(err, schedule.ErrSearchExhausted):
		return c.Status(422).JSON(fiber.Map{"error": "Cannot fit sessions on the calendar: " + err.Error()})
	default:
		log.Printf("Unexpected planning error: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to plan incident"})
	}
}

func commitErrorResponse(c *fiber.Ctx, err error) error {
	if errors.Is(err, database.ErrVersionConflict) {
		return c.Status(409).JSON(fiber.Map{"error": "Schedule changed while planning, please retry"})
	}
	log.Printf("Incident commit failed: %v", err)
	return c.Status(500).JSON(fiber.Map{"error": "Transaction aborted, no changes were applied"})
}
