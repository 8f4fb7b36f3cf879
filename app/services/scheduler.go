package services

import (
	"database/sql"
	"log"

	"github.com/robfig/cron/v3"

	"github.com/ipchperu-tech/SFDV2/app/config"
	"github.com/ipchperu-tech/SFDV2/app/database"
)

// StartScheduler starts the background task scheduler. Once a day, shortly
// after midnight academy time, classroom lifecycle states are rolled forward
// from the session dates (upcoming -> in_progress -> completed).
func StartScheduler(db *sql.DB) *cron.Cron {
	c := cron.New(cron.WithLocation(config.Location()))

	_, err := c.AddFunc("10 0 * * *", func() {
		if err := RollClassroomLifecycles(db); err != nil {
			log.Printf("Error rolling classroom lifecycles: %v", err)
		}
	})
	if err != nil {
		log.Printf("Failed to register lifecycle job: %v", err)
		return c
	}

	c.Start()
	log.Println("Scheduler started...")
	return c
}

// RollClassroomLifecycles runs one lifecycle pass. Exposed so the roll can
// also be triggered on boot, not just by the cron schedule.
func RollClassroomLifecycles(db *sql.DB) error {
	changed, err := database.RollClassroomStates(db)
	if err != nil {
		return err
	}
	if changed > 0 {
		log.Printf("Lifecycle roll moved %d classroom(s) to a new state", changed)
	}
	return nil
}
