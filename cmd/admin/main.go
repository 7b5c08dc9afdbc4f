package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"impulsa/backend/internal/config"
	"impulsa/backend/internal/models"
	"impulsa/backend/internal/storage"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	storageSvc := storage.NewStorageService(db, nil) // No redis needed for admin CLI

	if len(os.Args) < 2 {
		fmt.Println("Usage: admin <command> [args]")
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "pending":
		if len(os.Args) != 3 {
			fmt.Println("Usage: admin pending <user_id>")
			os.Exit(1)
		}
		if err := listPending(storageSvc, os.Args[2]); err != nil {
			log.Fatalf("Error listing pending requests: %v", err)
		}
	case "unread":
		if len(os.Args) != 3 {
			fmt.Println("Usage: admin unread <user_id>")
			os.Exit(1)
		}
		count, err := storageSvc.CountUnread(os.Args[2])
		if err != nil {
			log.Fatalf("Error counting unread messages: %v", err)
		}
		fmt.Printf("User %s has %d unread message(s).\n", os.Args[2], count)
	case "user":
		if len(os.Args) != 3 {
			fmt.Println("Usage: admin user <user_id>")
			os.Exit(1)
		}
		if err := showUser(storageSvc, os.Args[2]); err != nil {
			log.Fatalf("Error loading user: %v", err)
		}
	default:
		fmt.Println("Unknown command")
		os.Exit(1)
	}
}

func listPending(s storage.Storage, userID string) error {
	conns, err := s.ListConnectionsForUser(userID, models.ConnectionPending, "addressee")
	if err != nil {
		return err
	}

	if len(conns) == 0 {
		fmt.Printf("No pending requests for user %s.\n", userID)
		return nil
	}
	for _, conn := range conns {
		fmt.Printf("%s  from %s  %q  (%s)\n",
			conn.ID, conn.RequesterID, conn.Message, conn.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func showUser(s storage.Storage, userID string) error {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return err
	}

	pending, err := s.CountPendingReceived(userID)
	if err != nil {
		return err
	}
	unread, err := s.CountUnread(userID)
	if err != nil {
		return err
	}

	fmt.Printf("ID:        %s\n", user.ID)
	fmt.Printf("Name:      %s\n", user.FullName)
	fmt.Printf("Email:     %s\n", user.Email)
	fmt.Printf("Interests: %v\n", []string(user.Interests))
	fmt.Printf("Pending requests: %d, unread messages: %d\n", pending, unread)
	return nil
}
