package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"wedding-planner/internal/config"
	"wedding-planner/internal/handler"
	"wedding-planner/internal/logging"
	"wedding-planner/internal/models"
	"wedding-planner/internal/storage"
	"wedding-planner/internal/whatsapp"
)

func main() {
	fmt.Println("🎉 Wedding WhatsApp RSVP Bot")
	fmt.Println("============================")

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	if cfg.WeddingID == 0 {
		fmt.Println("WEDDING_ID must name the wedding whose guests the bot serves.")
		os.Exit(1)
	}

	log, err := logging.New(cfg.Log, os.Stderr)
	if err != nil {
		fmt.Printf("Error initializing logger: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(cfg.Store.Driver, cfg.StoreDSN(), log)
	if err != nil {
		fmt.Printf("Error initializing storage: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	ctx := context.Background()
	planner := handler.NewPlanner(store, log)
	wedding, err := planner.GetWedding(ctx, cfg.WeddingID)
	if err != nil {
		fmt.Printf("Error loading wedding %d: %v\n", cfg.WeddingID, err)
		os.Exit(1)
	}

	whatsappService, err := whatsapp.NewService(ctx, &whatsapp.Config{DataDir: cfg.WhatsAppDataDir}, log)
	if err != nil {
		fmt.Printf("Error initializing WhatsApp service: %v\n", err)
		os.Exit(1)
	}

	rsvpHandler := handler.NewRSVPHandler(whatsappService, planner, wedding.ID, log)
	whatsappService.SetMessageHandler(rsvpHandler.HandleMessage)

	fmt.Println("Connecting to WhatsApp...")
	if err := whatsappService.Connect(ctx); err != nil {
		fmt.Printf("Error connecting to WhatsApp: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\n✅ Connected to WhatsApp!")
	fmt.Printf("Listening for RSVP responses for %s & %s.\n", wedding.BrideName, wedding.GroomName)

	go startCLI(ctx, rsvpHandler, planner, wedding.ID)

	// Wait for interrupt signal
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	fmt.Println("\n\nShutting down...")
	whatsappService.Disconnect()
	fmt.Println("Goodbye! 👋")
}

func startCLI(ctx context.Context, rsvpHandler *handler.RSVPHandler, planner *handler.Planner, weddingID int64) {
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Println("\nCommands:")
		fmt.Println("  1. Add guest")
		fmt.Println("  2. Send invitation")
		fmt.Println("  3. View all guests")
		fmt.Println("  4. View guests by status")
		fmt.Println("  5. Exit")
		fmt.Print("\nEnter command (1-5): ")

		if !scanner.Scan() {
			break
		}

		switch strings.TrimSpace(scanner.Text()) {
		case "1":
			addGuest(ctx, scanner, planner, weddingID)
		case "2":
			sendInvitation(ctx, scanner, rsvpHandler)
		case "3":
			viewGuests(ctx, planner, models.GuestFilter{WeddingID: weddingID})
		case "4":
			viewGuestsByStatus(ctx, scanner, planner, weddingID)
		case "5":
			fmt.Println("Exiting...")
			os.Exit(0)
		default:
			fmt.Println("Invalid command. Please try again.")
		}
	}
}

func prompt(scanner *bufio.Scanner, label string) (string, bool) {
	fmt.Print(label)
	if !scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(scanner.Text()), true
}

func addGuest(ctx context.Context, scanner *bufio.Scanner, planner *handler.Planner, weddingID int64) {
	name, ok := prompt(scanner, "Enter guest name: ")
	if !ok {
		return
	}
	phone, ok := prompt(scanner, "Enter phone number (with country code, e.g., 972501234567): ")
	if !ok {
		return
	}
	plusOne, ok := prompt(scanner, "Bringing a plus one? (y/N): ")
	if !ok {
		return
	}

	withPlusOne := strings.EqualFold(plusOne, "y") || strings.EqualFold(plusOne, "yes")
	input := models.CreateGuestInput{WeddingID: weddingID, Name: name, PlusOne: &withPlusOne}
	if phone != "" {
		input.Phone = &phone
	}
	guest, err := planner.CreateGuest(ctx, input)
	if err != nil {
		fmt.Printf("❌ Error adding guest: %v\n", err)
		return
	}
	fmt.Printf("✅ Added %s (guest #%d)\n", guest.Name, guest.ID)
}

func sendInvitation(ctx context.Context, scanner *bufio.Scanner, rsvpHandler *handler.RSVPHandler) {
	raw, ok := prompt(scanner, "Enter guest id: ")
	if !ok {
		return
	}
	guestID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		fmt.Println("Invalid guest id.")
		return
	}

	fmt.Printf("\nSending invitation to guest #%d...\n", guestID)
	if err := rsvpHandler.SendInvitation(ctx, guestID); err != nil {
		fmt.Printf("❌ Error sending invitation: %v\n", err)
	} else {
		fmt.Printf("✅ Invitation sent successfully!\n")
	}
}

func viewGuests(ctx context.Context, planner *handler.Planner, filter models.GuestFilter) {
	guests, err := planner.GetWeddingGuests(ctx, filter)
	if err != nil {
		fmt.Printf("❌ Error loading guests: %v\n", err)
		return
	}
	if len(guests) == 0 {
		fmt.Println("\nNo guests found.")
		return
	}

	fmt.Printf("\n📋 Guests (%d total):\n", len(guests))
	fmt.Println(strings.Repeat("-", 60))
	for _, guest := range guests {
		fmt.Printf("#%d %s\n", guest.ID, guest.Name)
		if guest.Phone != nil {
			fmt.Printf("Phone: %s\n", *guest.Phone)
		}
		fmt.Printf("Status: %s\n", guest.RSVPStatus)
		if guest.PlusOne {
			fmt.Println("Plus one: yes")
		}
		fmt.Println(strings.Repeat("-", 60))
	}
}

func viewGuestsByStatus(ctx context.Context, scanner *bufio.Scanner, planner *handler.Planner, weddingID int64) {
	fmt.Println("\nSelect status:")
	fmt.Println("  1. Pending")
	fmt.Println("  2. Attending")
	fmt.Println("  3. Not attending")

	choice, ok := prompt(scanner, "Enter choice (1-3): ")
	if !ok {
		return
	}

	var status models.RSVPStatus
	switch choice {
	case "1":
		status = models.RSVPPending
	case "2":
		status = models.RSVPAttending
	case "3":
		status = models.RSVPNotAttending
	default:
		fmt.Println("Invalid choice.")
		return
	}

	viewGuests(ctx, planner, models.GuestFilter{WeddingID: weddingID, RSVPStatus: &status})
}
