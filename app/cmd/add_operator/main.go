package main

import (
	"flag"
	"fmt"

	"github.com/ipchperu-tech/SFDV2/app/config"
	"github.com/ipchperu-tech/SFDV2/app/database"
	"github.com/ipchperu-tech/SFDV2/app/models"
)

func main() {
	email := flag.String("email", "", "operator email")
	password := flag.String("password", "", "operator password")
	firstName := flag.String("first-name", "", "operator first name")
	lastName := flag.String("last-name", "", "operator last name")
	flag.Parse()

	if *email == "" || *password == "" {
		fmt.Println("Usage: add_operator -email ... -password ... [-first-name ...] [-last-name ...]")
		return
	}

	// Initialize database connection
	config.InitDB()
	db := config.GetDB()
	if db == nil {
		fmt.Println("Failed to connect to database")
		return
	}

	user := &models.User{
		Email:     *email,
		Password:  *password,
		FirstName: *firstName,
		LastName:  *lastName,
	}

	if err := database.CreateUser(db, user); err != nil {
		fmt.Printf("Error creating operator: %v\n", err)
		return
	}

	fmt.Printf("Operator created successfully: %s %s (%s)\n", user.FirstName, user.LastName, user.Email)
}
