package main

import (
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type OAuthClient struct {
	ID        string `gorm:"primaryKey"`
	Secret    string `gorm:"not null"`
	Name      string
	Domain    string
	UserID    uint   `gorm:"not null"`
	Scopes    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (OAuthClient) TableName() string {
	return "oauth_clients"
}

type User struct {
	ID              uint   `gorm:"primaryKey"`
	Username        string `gorm:"uniqueIndex;not null"`
	Email           string `gorm:"uniqueIndex;not null"`
	Password        string `gorm:"not null"`
	PermissionLevel int    `gorm:"not null;default:1"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func main() {
	// Parse command line flags
	dbPath := flag.String("db", "pizza.sqlite", "Path to the sqlite database (run the API once first to migrate it)")
	elevated := flag.Bool("elevated", false, "Own the client with an elevated (staff) account")
	flag.Parse()

	db, err := gorm.Open(sqlite.Open(*dbPath), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Determine client credentials based on the owning account kind
	var clientID, clientSecret, accountName string
	if *elevated {
		clientID = "service-client"
		clientSecret = "service-secret-123"
		accountName = "service"
	} else {
		clientID = "dev-client"
		clientSecret = "dev-secret-123"
		accountName = "dev"
	}

	// Check if client already exists
	var existing OAuthClient
	if err := db.Where("id = ?", clientID).First(&existing).Error; err == nil {
		fmt.Printf("Development client '%s' already exists!\n", clientID)
		fmt.Printf("Client ID: %s\n", clientID)
		fmt.Printf("Client Secret: %s\n", clientSecret)
		return
	}

	// Get or create the owning user account
	userID := getOwnerUserID(db, accountName, *elevated)
	if userID == 0 {
		log.Fatal("Failed to get owning user for account:", accountName)
	}

	// Create new client
	hash, err := bcrypt.GenerateFromPassword([]byte(clientSecret), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash secret:", err)
	}

	client := OAuthClient{
		ID:        clientID,
		Secret:    string(hash),
		Name:      fmt.Sprintf("Development %s Client", accountName),
		Domain:    "http://localhost",
		UserID:    userID,
		Scopes:    "read write",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := db.Create(&client).Error; err != nil {
		log.Fatal("Failed to create client:", err)
	}

	fmt.Printf("✓ Development OAuth client '%s' created!\n", clientID)
	fmt.Printf("Client ID: %s\n", clientID)
	fmt.Printf("Client Secret: %s\n", clientSecret)
	fmt.Printf("User ID: %d\n", userID)
	fmt.Println("\nUse these credentials for testing:")
	fmt.Printf("curl -X POST http://localhost:8080/oauth/token \\\n")
	fmt.Printf("  -d 'grant_type=client_credentials' \\\n")
	fmt.Printf("  -d 'client_id=%s' \\\n", clientID)
	fmt.Printf("  -d 'client_secret=%s'\n", clientSecret)
}

// getOwnerUserID gets or creates the user account that owns the client
func getOwnerUserID(db *gorm.DB, accountName string, elevated bool) uint {
	var user User
	email := fmt.Sprintf("%s@pizza.com", accountName)

	// Try to find existing user
	if err := db.Where("email = ?", email).First(&user).Error; err == nil {
		fmt.Printf("Found existing user: %s (ID: %d, Level: %d)\n", user.Email, user.ID, user.PermissionLevel)
		return user.ID
	}

	level := 1
	if elevated {
		level = 2
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(fmt.Sprintf("%s-password-123", accountName)), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Failed to hash password: %v", err)
		return 0
	}

	// Create new user
	user = User{
		Username:        strings.ToLower(accountName),
		Email:           email,
		Password:        string(hash),
		PermissionLevel: level,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	if err := db.Create(&user).Error; err != nil {
		log.Printf("Failed to create user: %v", err)
		return 0
	}

	fmt.Printf("Created new user: %s (ID: %d, Level: %d)\n", user.Email, user.ID, user.PermissionLevel)
	return user.ID
}
