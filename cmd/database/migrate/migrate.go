package migration

import (
	"DonorLink/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.Donor{}); err != nil {
		log.Fatalf("Error migrating donor database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Ngo{}); err != nil {
		log.Fatalf("Error migrating ngo database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Donation{}); err != nil {
		log.Fatalf("Error migrating donation database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
