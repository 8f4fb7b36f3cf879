package holidays

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"

	"github.com/ipchperu-tech/SFDV2/app/config"
	"github.com/ipchperu-tech/SFDV2/app/database"
	"github.com/ipchperu-tech/SFDV2/app/models"
)

var validate = validator.New()

func ListHolidaysAPI(c *fiber.Ctx) error {
	holidays, err := database.GetHolidays(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load holidays"})
	}
	return c.JSON(fiber.Map{"holidays": holidays})
}

func CreateHolidayAPI(c *fiber.Ctx) error {
	type CreateHolidayRequest struct {
		Date string `json:"date" validate:"required,datetime=2006-01-02"`
		Name string `json:"name" validate:"required"`
	}

	var req CreateHolidayRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed: " + err.Error()})
	}

	date, err := time.ParseInLocation("2006-01-02", req.Date, config.Location())
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date"})
	}

	holiday := &models.Holiday{Date: date, Name: req.Name}
	if err := database.CreateHoliday(config.GetDB(), holiday); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code.Name() == "unique_violation" {
			return c.Status(409).JSON(fiber.Map{"error": "Holiday already exists for that date"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create holiday"})
	}

	return c.Status(201).JSON(fiber.Map{"holiday": holiday})
}

func DeleteHolidayAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Holiday ID is required"})
	}

	if err := database.DeleteHoliday(config.GetDB(), id); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete holiday"})
	}
	return c.JSON(fiber.Map{"message": "Holiday deleted"})
}
