// Command addvendor creates a vendor account. Vendor registration is
// human-mediated, so there is no self-service signup endpoint.
package main

import (
	"flag"
	"log"

	"github.com/ravi-64bit/streetwise/config"
	"github.com/ravi-64bit/streetwise/database"
	"github.com/ravi-64bit/streetwise/model"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	username := flag.String("username", "", "vendor phone number (login)")
	password := flag.String("password", "", "initial password")
	name := flag.String("name", "", "restaurant name")
	address := flag.String("address", "", "restaurant address")
	flag.Parse()

	if *username == "" || *password == "" || *name == "" {
		log.Fatal("usage: addvendor -username <phone> -password <pw> -name <name> [-address <addr>]")
	}

	cfg := config.Load()
	database.InitDatabase(cfg)

	hashed, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	vendor := model.Vendor{
		Username: *username,
		Password: string(hashed),
		Name:     *name,
		Address:  *address,
	}
	if err := database.DB.Create(&vendor).Error; err != nil {
		log.Fatalf("Failed to create vendor: %v", err)
	}

	log.Printf("Vendor created: id=%s username=%s", vendor.ID, vendor.Username)
}
