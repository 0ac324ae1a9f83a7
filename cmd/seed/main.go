package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"stagepass/internal/events"
	"stagepass/internal/scenery"
	"stagepass/internal/shared/config"
	"stagepass/internal/shared/database"
	"stagepass/internal/users"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("Starting StagePass Database Seeder...")

	cfg := config.Load()

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db.GetPostgreSQL()); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}

	seeder := &Seeder{db: db}

	fmt.Println("\nCleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("Database cleaned successfully")

	fmt.Println("\nSeeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("Database seeded successfully")

	fmt.Println("\nSeeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables in the correct order (respecting foreign key constraints)
func (s *Seeder) CleanDatabase() error {
	// Delete in reverse dependency order
	tables := []string{
		"seats",
		"sceneries",
		"events",
		"event_types",
		"categories",
		"users",
	}

	tx := s.db.PostgreSQL.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Exec("SET CONSTRAINTS ALL DEFERRED").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to defer constraints: %w", err)
	}

	for _, table := range tables {
		fmt.Printf("  Truncating table: %s\n", table)
		if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	if err := tx.Exec("SET CONSTRAINTS ALL IMMEDIATE").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to restore constraints: %w", err)
	}

	return tx.Commit().Error
}

// SeedAll seeds all required data
func (s *Seeder) SeedAll() error {
	ctx := context.Background()

	userIDs, err := s.SeedUsers()
	if err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	if err := s.SeedLookups(); err != nil {
		return fmt.Errorf("failed to seed lookup tables: %w", err)
	}

	eventIDs, err := s.SeedEvents(userIDs)
	if err != nil {
		return fmt.Errorf("failed to seed events: %w", err)
	}

	if err := s.SeedSceneries(eventIDs); err != nil {
		return fmt.Errorf("failed to seed sceneries: %w", err)
	}

	// Clear Redis cache to ensure fresh state
	if err := s.db.Redis.FlushDB(ctx).Err(); err != nil {
		log.Printf("Warning: Failed to clear Redis cache: %v", err)
	}

	return nil
}

// SeedUsers creates 3 users: an admin reviewer, an organizer and a regular user
func (s *Seeder) SeedUsers() (map[string]uuid.UUID, error) {
	fmt.Println("  Seeding users...")

	userIDs := make(map[string]uuid.UUID)

	// All seed accounts share the same password ("qwerty")
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("qwerty"), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	usersData := []struct {
		key       string
		firstName string
		lastName  string
		email     string
		role      users.Role
	}{
		{"admin", "Admin", "Reviewer", "admin@stagepass.app", users.RoleAdmin},
		{"organizer", "Olivia", "Marsh", "organizer@stagepass.app", users.RoleOrganizer},
		{"user", "Sam", "Porter", "user@stagepass.app", users.RoleUser},
	}

	for _, userData := range usersData {
		user := users.User{
			ID:        uuid.New(),
			FirstName: userData.firstName,
			LastName:  userData.lastName,
			Email:     userData.email,
			Password:  string(hashedPassword),
			Role:      userData.role,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&user).Error; err != nil {
			return nil, fmt.Errorf("failed to create user %s: %w", userData.email, err)
		}

		userIDs[userData.key] = user.ID
		fmt.Printf("    Created user: %s (%s)\n", user.Email, user.Role)
	}

	return userIDs, nil
}

// SeedLookups creates the category and event type lookup rows
func (s *Seeder) SeedLookups() error {
	fmt.Println("  Seeding categories and event types...")

	categories := []string{"Concert", "Theatre", "Conference", "Festival", "Sports"}
	for _, name := range categories {
		category := events.Category{Name: name}
		if err := s.db.PostgreSQL.Create(&category).Error; err != nil {
			return fmt.Errorf("failed to create category %s: %w", name, err)
		}
	}

	eventTypes := []string{"Free", "Paid", "Members Only"}
	for _, name := range eventTypes {
		eventType := events.EventType{Name: name}
		if err := s.db.PostgreSQL.Create(&eventType).Error; err != nil {
			return fmt.Errorf("failed to create event type %s: %w", name, err)
		}
	}

	return nil
}

// SeedEvents creates sample events in different lifecycle states
func (s *Seeder) SeedEvents(userIDs map[string]uuid.UUID) ([]uint, error) {
	fmt.Println("  Seeding events...")

	organizerID := userIDs["organizer"]
	adminID := userIDs["admin"]
	now := time.Now()

	eventsData := []struct {
		name     string
		location string
		status   events.Status
	}{
		{"Summer Jazz Night", "Riverside Amphitheatre", events.StatusApproved},
		{"Indie Film Premiere", "Grand Hall Cinema", events.StatusPending},
		{"Tech Meetup Vol. 4", "Downtown Hub", events.StatusPending},
	}

	var eventIDs []uint
	for i, eventData := range eventsData {
		event := events.Event{
			Name:            eventData.name,
			StartDate:       now.AddDate(0, 1, i*7),
			EndDate:         now.AddDate(0, 1, i*7+1),
			EventTime:       "19:30",
			Location:        eventData.location,
			MaxParticipants: 200,
			EventTypeID:     1,
			CategoryID:      uint(i%3 + 1),
			OrganizerID:     organizerID,
			Status:          eventData.status,
		}

		if eventData.status == events.StatusApproved {
			reviewedAt := now
			event.ReviewedBy = &adminID
			event.ReviewedAt = &reviewedAt
		}

		if err := s.db.PostgreSQL.Create(&event).Error; err != nil {
			return nil, fmt.Errorf("failed to create event %s: %w", eventData.name, err)
		}

		eventIDs = append(eventIDs, event.ID)
		fmt.Printf("    Created event: %s (%s)\n", event.Name, event.Status)
	}

	return eventIDs, nil
}

// SeedSceneries provisions seat layouts for the approved event
func (s *Seeder) SeedSceneries(eventIDs []uint) error {
	fmt.Println("  Seeding sceneries and seats...")

	if len(eventIDs) == 0 {
		return nil
	}

	repo := scenery.NewRepository(s.db.GetPostgreSQL())

	sceneriesData := []struct {
		seatCount int
		shape     scenery.Shape
	}{
		{24, scenery.ShapeRound},
		{40, scenery.ShapeSquare},
	}

	for _, sceneryData := range sceneriesData {
		sc := scenery.Scenery{
			SeatCount: sceneryData.seatCount,
			Shape:     sceneryData.shape,
			EventID:   eventIDs[0],
		}

		if err := repo.CreateWithSeats(&sc); err != nil {
			return fmt.Errorf("failed to create scenery: %w", err)
		}

		fmt.Printf("    Created scenery %d (%s) with %d seats\n", sc.ID, sc.Shape, len(sc.Seats))
	}

	return nil
}
