package main

import (
	"log"
	"os"

	"landivo-be/internal/model"
	"landivo-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	seedAdmin(db)
	seedSettings(db)
	seedProperties(db)
	seedBuyers(db)

	color.Green("✅ Seeding completed")
}

func seedAdmin(db *gorm.DB) {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	if email == "" {
		email = "admin@landivo.local"
	}
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "changeme123"
		color.Yellow("SEED_ADMIN_PASSWORD not set, using default credentials")
	}

	var existing model.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		color.Cyan("Admin user %s already exists, skipping", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Error hashing admin password: %v", err)
	}
	hashStr := string(hash)

	admin := model.User{
		Email:        email,
		PasswordHash: &hashStr,
		FirstName:    "Landivo",
		LastName:     "Admin",
		Role:         "admin",
		Status:       "active",
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("Error creating admin user: %v", err)
	}
	color.Green("Created admin user: %s", email)
}

func seedSettings(db *gorm.DB) {
	var count int64
	db.Model(&model.Settings{}).Count(&count)
	if count > 0 {
		color.Cyan("Settings row already exists, skipping")
		return
	}

	settings := model.Settings{
		SmtpServer:         os.Getenv("SMTP_HOST"),
		SmtpPort:           587,
		SmtpUser:           os.Getenv("SMTP_EMAIL"),
		AdminEmail:         os.Getenv("ADMIN_NOTIFICATION_EMAIL"),
		OfferAlertsEnabled: true,
	}
	if err := db.Create(&settings).Error; err != nil {
		log.Printf("Error creating settings: %v", err)
		return
	}
	color.Green("Created default settings")
}

func seedProperties(db *gorm.DB) {
	var count int64
	db.Model(&model.Property{}).Count(&count)
	if count > 0 {
		color.Cyan("Properties already seeded, skipping")
		return
	}

	properties := []model.Property{
		{
			Title:         "5 Acres off Ranch Road",
			Description:   "Flat, buildable acreage with county road access.",
			StreetAddress: "0 Ranch Rd",
			City:          "Marfa",
			County:        "Presidio",
			State:         "TX",
			Zip:           "79843",
			Area:          "West Texas",
			AcreageSqft:   217800,
			AskingPrice:   24500,
			MinPrice:      18000,
			Financing:     true,
			Status:        "Available",
			Featured:      true,
		},
		{
			Title:         "Wooded Lot near Lake Access",
			Description:   "Quarter-acre lot in an established subdivision.",
			StreetAddress: "112 Pinecrest Dr",
			City:          "Hot Springs",
			County:        "Garland",
			State:         "AR",
			Zip:           "71901",
			Area:          "Hot Springs Village",
			AcreageSqft:   10890,
			AskingPrice:   8900,
			MinPrice:      6500,
			Financing:     true,
			Status:        "Available",
		},
		{
			Title:         "Desert Parcel with Mountain Views",
			Description:   "Remote 10-acre parcel, ideal for off-grid living.",
			StreetAddress: "0 Cholla Trail",
			City:          "Kingman",
			County:        "Mohave",
			State:         "AZ",
			Zip:           "86401",
			Area:          "Northwest Arizona",
			AcreageSqft:   435600,
			AskingPrice:   15900,
			MinPrice:      12000,
			Status:        "Available",
		},
	}

	for _, p := range properties {
		if err := db.Create(&p).Error; err != nil {
			log.Printf("Error creating property %q: %v", p.Title, err)
			continue
		}
		color.Green("Created property: %s", p.Title)
	}
}

func seedBuyers(db *gorm.DB) {
	var count int64
	db.Model(&model.Buyer{}).Count(&count)
	if count > 0 {
		color.Cyan("Buyers already seeded, skipping")
		return
	}

	buyers := []model.Buyer{
		{
			FirstName:      "Dana",
			LastName:       "Whitfield",
			Email:          "dana.whitfield@example.com",
			Phone:          "+1-555-0101",
			BuyerType:      "CashBuyer",
			Source:         "VIP Buyers List",
			IsVIP:          true,
			PreferredAreas: datatypes.NewJSONSlice([]string{"West Texas", "Northwest Arizona"}),
		},
		{
			FirstName:      "Marcus",
			LastName:       "Ortiz",
			Email:          "marcus.ortiz@example.com",
			Phone:          "+1-555-0102",
			BuyerType:      "Investor",
			Source:         "Website",
			PreferredAreas: datatypes.NewJSONSlice([]string{"Hot Springs Village"}),
		},
		{
			FirstName: "Priya",
			LastName:  "Raman",
			Email:     "priya.raman@example.com",
			BuyerType: "Builder",
			Source:    "Referral",
		},
	}

	for _, b := range buyers {
		if err := db.Create(&b).Error; err != nil {
			log.Printf("Error creating buyer %s: %v", b.Email, err)
			continue
		}
		color.Green("Created buyer: %s %s", b.FirstName, b.LastName)
	}
}
