package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

type Config struct {
	DB *sql.DB
}

var AppConfig *Config

// academyZone is the wall clock every classroom schedule is expressed in.
// Peru does not observe daylight saving, so a fixed offset is exact.
var academyZone = time.FixedZone("PET", -5*60*60)

// Location returns the fixed UTC-5 zone used for all session timestamps.
func Location() *time.Location {
	return academyZone
}

func InitDB() {
	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	psqlInfo := os.Getenv("DATABASE_URL")
	if psqlInfo == "" {
		host := getEnv("DB_HOST", "localhost")
		port := getEnvInt("DB_PORT", 5432)
		user := getEnv("DB_USER", "postgres")
		password := os.Getenv("DB_PASSWORD")
		dbname := getEnv("DB_NAME", "sfd_academy")

		psqlInfo = fmt.Sprintf("host=%s port=%d user=%s dbname=%s sslmode=disable connect_timeout=60",
			host, port, user, dbname)
		if password != "" {
			psqlInfo += " password=" + password
		}
		log.Printf("Connecting to database %s at %s:%d", dbname, host, port)
	}

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	// Set connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	log.Println("Testing database connection...")
	if err = db.Ping(); err != nil {
		log.Fatal("Cannot establish database connection: ", err)
	}

	AppConfig = &Config{DB: db}
	log.Println("Database connected successfully")
}

func GetDB() *sql.DB {
	return AppConfig.DB
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, fallback)
		return fallback
	}
	return parsed
}
