package database

import (
	"database/sql"
	"log"
)

// RunMigrations checks and applies necessary schema updates
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	steps := []struct {
		name string
		fn   func(*sql.DB) error
	}{
		{"create base tables", createBaseTables},
		{"add sessions_version column", addSessionsVersionColumn},
		{"seed holiday calendar", seedHolidays},
	}

	for _, step := range steps {
		if err := step.fn(db); err != nil {
			log.Printf("Migration step %q failed: %v", step.name, err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func createBaseTables(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		);

		CREATE TABLE IF NOT EXISTS instructors (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			full_name VARCHAR(255) NOT NULL,
			email VARCHAR(255),
			phone VARCHAR(20),
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		);

		CREATE TABLE IF NOT EXISTS classrooms (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			code VARCHAR(50) UNIQUE NOT NULL,
			name VARCHAR(255) NOT NULL DEFAULT '',
			frequency VARCHAR(100) NOT NULL,
			start_time VARCHAR(5) NOT NULL,
			end_time VARCHAR(5) NOT NULL,
			state VARCHAR(20) NOT NULL DEFAULT 'upcoming',
			start_date DATE,
			end_date DATE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS sessions (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			classroom_id UUID NOT NULL REFERENCES classrooms(id) ON DELETE CASCADE,
			number INTEGER NOT NULL,
			date DATE NOT NULL,
			starts_at TIMESTAMPTZ NOT NULL,
			ends_at TIMESTAMPTZ NOT NULL,
			state VARCHAR(20) NOT NULL DEFAULT 'scheduled',
			instructor_id UUID REFERENCES instructors(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (classroom_id, number)
		);

		CREATE TABLE IF NOT EXISTS incidents (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			classroom_id UUID NOT NULL REFERENCES classrooms(id),
			classroom_code VARCHAR(50) NOT NULL,
			session_number INTEGER NOT NULL,
			original_date DATE NOT NULL,
			kind VARCHAR(20) NOT NULL,
			substitute_instructor_id UUID REFERENCES instructors(id),
			new_date DATE,
			reason TEXT NOT NULL,
			approval_state VARCHAR(20) NOT NULL DEFAULT 'approved',
			recorded_by VARCHAR(255) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS holidays (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			date DATE UNIQUE NOT NULL,
			name VARCHAR(255) NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to create base tables: %v", err)
		return err
	}
	return nil
}

// addSessionsVersionColumn backfills the optimistic-lock counter on databases
// created before it existed.
func addSessionsVersionColumn(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM information_schema.columns
				WHERE table_name = 'classrooms'
				AND column_name = 'sessions_version'
			) THEN
				ALTER TABLE classrooms ADD COLUMN sessions_version BIGINT NOT NULL DEFAULT 0;
				RAISE NOTICE 'Added sessions_version column to classrooms';
			END IF;
		END $$;
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to run migration for sessions_version column: %v", err)
		return err
	}
	return nil
}

// seedHolidays loads the Peruvian civil calendar for the current planning
// horizon. Extra dates can be managed through the holidays API afterwards.
func seedHolidays(db *sql.DB) error {
	query := `
		INSERT INTO holidays (date, name) VALUES
			('2025-01-01', 'Año Nuevo'),
			('2025-04-17', 'Jueves Santo'),
			('2025-04-18', 'Viernes Santo'),
			('2025-05-01', 'Día del Trabajo'),
			('2025-06-29', 'San Pedro y San Pablo'),
			('2025-07-28', 'Fiestas Patrias'),
			('2025-07-29', 'Fiestas Patrias'),
			('2025-08-30', 'Santa Rosa de Lima'),
			('2025-10-08', 'Combate de Angamos'),
			('2025-11-01', 'Todos los Santos'),
			('2025-12-08', 'Inmaculada Concepción'),
			('2025-12-25', 'Navidad')
		ON CONFLICT (date) DO NOTHING
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to seed holiday calendar: %v", err)
		return err
	}
	return nil
}
