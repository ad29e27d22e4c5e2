// The admin command is a small operator CLI with direct storage access:
// seeding the first administrator account, promoting existing users, and
// pulling announcements offline without going through the HTTP API.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"hostelops/backend/internal/config"
	"hostelops/backend/internal/models"
	"hostelops/backend/internal/storage"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	cfg := config.Load()

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	store := storage.NewService(db, nil) // no Redis needed for the CLI
	ctx := context.Background()

	if len(os.Args) < 2 {
		usage()
	}

	switch os.Args[1] {
	case "create-admin":
		if len(os.Args) != 4 {
			fmt.Println("Usage: admin create-admin <name> <email>")
			os.Exit(1)
		}
		if err := createAdmin(ctx, store, os.Args[2], os.Args[3]); err != nil {
			log.Fatalf("Error creating admin: %v", err)
		}
		fmt.Printf("Admin %s created.\n", os.Args[3])
	case "promote":
		if len(os.Args) != 3 {
			fmt.Println("Usage: admin promote <email>")
			os.Exit(1)
		}
		if err := promote(ctx, store, os.Args[2]); err != nil {
			log.Fatalf("Error promoting user: %v", err)
		}
		fmt.Printf("User %s is now an admin.\n", os.Args[2])
	case "deactivate-announcement":
		if len(os.Args) != 3 {
			fmt.Println("Usage: admin deactivate-announcement <id>")
			os.Exit(1)
		}
		if err := deactivateAnnouncement(ctx, store, os.Args[2]); err != nil {
			log.Fatalf("Error deactivating announcement: %v", err)
		}
		fmt.Printf("Announcement %s deactivated.\n", os.Args[2])
	default:
		usage()
	}
}

func usage() {
	fmt.Println("Usage: admin <create-admin|promote|deactivate-announcement> [args]")
	os.Exit(1)
}

func createAdmin(ctx context.Context, store *storage.Service, name, email string) error {
	existing, err := store.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return fmt.Errorf("user %s already exists", email)
	}
	return store.SaveUser(ctx, &models.User{
		Name:  name,
		Email: email,
		Role:  models.RoleAdmin,
	})
}

func promote(ctx context.Context, store *storage.Service, email string) error {
	user, err := store.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("user %s not found", email)
	}
	user.Role = models.RoleAdmin
	return store.SaveUser(ctx, user)
}

func deactivateAnnouncement(ctx context.Context, store *storage.Service, id string) error {
	a, err := store.GetAnnouncementByID(ctx, id)
	if err != nil {
		return err
	}
	if a == nil {
		return fmt.Errorf("announcement %s not found", id)
	}
	a.IsActive = false
	return store.SaveAnnouncement(ctx, a)
}
