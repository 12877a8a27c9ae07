package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gasparellodev/mono-repo2/internal/arenas"
	"github.com/gasparellodev/mono-repo2/internal/courts"
	"github.com/gasparellodev/mono-repo2/internal/reservations"
	"github.com/gasparellodev/mono-repo2/internal/schedule"
	"github.com/gasparellodev/mono-repo2/internal/shared/config"
	"github.com/gasparellodev/mono-repo2/internal/shared/database"
	"github.com/gasparellodev/mono-repo2/internal/users"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Seeder struct {
	db  *database.DB
	loc *time.Location
}

func main() {
	fmt.Println("🌱 Starting Arenas Database Seeder...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db, loc: cfg.Arena.Location}

	// Clean database
	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	// Seed data
	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables in the correct order (respecting foreign key constraints)
func (s *Seeder) CleanDatabase() error {
	// Delete in reverse dependency order
	tables := []string{
		"reservations",
		"courts",
		"opening_hours",
		"arenas",
		"addresses",
		"users",
	}

	tx := s.db.PostgreSQL.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	// Disable foreign key constraints temporarily
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

	// Re-enable foreign key constraints
	if err := tx.Exec("SET CONSTRAINTS ALL IMMEDIATE").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to restore constraints: %w", err)
	}

	return tx.Commit().Error
}

// SeedAll seeds all required data
func (s *Seeder) SeedAll() error {
	ctx := context.Background()

	// Seed users first (no dependencies)
	userIDs, err := s.SeedUsers()
	if err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	// Seed arenas with addresses and weekly opening hours
	arenaIDs, err := s.SeedArenas(userIDs)
	if err != nil {
		return fmt.Errorf("failed to seed arenas: %w", err)
	}

	// Seed courts
	courtIDs, err := s.SeedCourts(arenaIDs)
	if err != nil {
		return fmt.Errorf("failed to seed courts: %w", err)
	}

	// Seed a handful of reservations so availability listings have texture
	if err := s.SeedReservations(userIDs, courtIDs); err != nil {
		return fmt.Errorf("failed to seed reservations: %w", err)
	}

	// Clear Redis cache to ensure fresh state
	if err := s.db.Redis.FlushDB(ctx).Err(); err != nil {
		log.Printf("Warning: Failed to clear Redis cache: %v", err)
	}

	return nil
}

// SeedUsers creates 2 players and 2 arena owners
func (s *Seeder) SeedUsers() (map[string]uuid.UUID, error) {
	fmt.Println("  👤 Seeding users...")

	userIDs := make(map[string]uuid.UUID)

	// Hash password for all users (using "qwerty")
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("qwerty"), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	usersData := []struct {
		key       string
		firstName string
		lastName  string
		nickname  string
		email     string
		role      users.Role
	}{
		{"player1", "João", "Silva", "joaos", "joao.silva@gmail.com", users.RoleUser},
		{"player2", "Maria", "Santos", "mari", "maria.santos@gmail.com", users.RoleUser},
		{"owner1", "Carlos", "Oliveira", "carlao", "carlos@arenacentral.com.br", users.RoleArena},
		{"owner2", "Ana", "Costa", "aninha", "ana@arenapraia.com.br", users.RoleArena},
	}

	for _, userData := range usersData {
		user := users.User{
			ID:            uuid.New(),
			FirstName:     userData.firstName,
			LastName:      userData.lastName,
			Nickname:      userData.nickname,
			Cellphone:     "11999990000",
			FavoriteSport: users.FavoriteSportFootball,
			FavoriteTime:  users.FavoriteTimeNight,
			Email:         userData.email,
			Password:      string(hashedPassword),
			Role:          userData.role,
			CreatedAt:     time.Now(),
			UpdatedAt:     time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&user).Error; err != nil {
			return nil, fmt.Errorf("failed to create user %s: %w", userData.email, err)
		}

		userIDs[userData.key] = user.ID
		fmt.Printf("    ✅ Created user: %s (%s)\n", user.Email, user.Role)
	}

	return userIDs, nil
}

// SeedArenas creates 2 validated arenas, each with an address and a weekly
// schedule covering Monday through Saturday
func (s *Seeder) SeedArenas(userIDs map[string]uuid.UUID) (map[string]uuid.UUID, error) {
	fmt.Println("  🏟️  Seeding arenas...")

	arenaIDs := make(map[string]uuid.UUID)
	lunchOpening := 14
	lunchClosing := 12
	validated := time.Now()

	arenasData := []struct {
		key         string
		name        string
		cnpj        string
		phone       string
		description string
		lat         float64
		lon         float64
		owner       string
		withLunch   bool
	}{
		{"central", "Arena Central", "12345678000199", "1133334444", "Rua das Quadras, 100 - Sé", -23.551, -46.634, "owner1", true},
		{"praia", "Arena Praia", "98765432000188", "1144445555", "Av. Beira Mar, 250 - Morumbi", -23.6, -46.72, "owner2", false},
	}

	for _, arenaData := range arenasData {
		address := arenas.Address{
			ID:          uuid.New(),
			Description: arenaData.description,
			Lat:         arenaData.lat,
			Lon:         arenaData.lon,
		}
		if err := s.db.PostgreSQL.Create(&address).Error; err != nil {
			return nil, fmt.Errorf("failed to create address for %s: %w", arenaData.name, err)
		}

		arena := arenas.Arena{
			ID:          uuid.New(),
			Name:        arenaData.name,
			CNPJ:        arenaData.cnpj,
			Phone:       arenaData.phone,
			IsValidated: &validated,
			OwnerID:     userIDs[arenaData.owner],
			AddressID:   address.ID,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}
		if err := s.db.PostgreSQL.Create(&arena).Error; err != nil {
			return nil, fmt.Errorf("failed to create arena %s: %w", arenaData.name, err)
		}

		weekdays := []schedule.Weekday{
			schedule.Monday, schedule.Tuesday, schedule.Wednesday,
			schedule.Thursday, schedule.Friday, schedule.Saturday,
		}
		for _, weekday := range weekdays {
			entry := schedule.OpeningHours{
				ID:      uuid.New(),
				ArenaID: arena.ID,
				WeekDay: weekday,
				Opening: 8,
				Closing: 22,
			}
			if arenaData.withLunch {
				entry.LunchOpening = &lunchOpening
				entry.LunchClosing = &lunchClosing
			}
			if err := s.db.PostgreSQL.Create(&entry).Error; err != nil {
				return nil, fmt.Errorf("failed to create opening hours for %s: %w", arenaData.name, err)
			}
		}

		arenaIDs[arenaData.key] = arena.ID
		fmt.Printf("    ✅ Created arena: %s (%s)\n", arena.Name, arena.CNPJ)
	}

	return arenaIDs, nil
}

// SeedCourts creates courts across the seeded arenas
func (s *Seeder) SeedCourts(arenaIDs map[string]uuid.UUID) (map[string]uuid.UUID, error) {
	fmt.Println("  🏐 Seeding courts...")

	courtIDs := make(map[string]uuid.UUID)

	courtsData := []struct {
		key          string
		name         string
		floor        courts.CourtFloor
		sport        courts.SportType
		valuePerHour float64
		covered      bool
		arena        string
	}{
		{"central-1", "Quadra 1", courts.CourtFloorSynthetic, courts.SportTypeFutsal, 120.00, true, "central"},
		{"central-2", "Quadra 2", courts.CourtFloorConcrete, courts.SportTypeVolleyball, 90.00, false, "central"},
		{"praia-1", "Quadra Areia 1", courts.CourtFloorSand, courts.SportTypeBeachTennis, 150.00, false, "praia"},
		{"praia-2", "Quadra Areia 2", courts.CourtFloorSand, courts.SportTypeVolleyball, 140.00, false, "praia"},
	}

	for _, courtData := range courtsData {
		court := courts.Court{
			ID:           uuid.New(),
			Name:         courtData.name,
			TypeCourt:    courtData.floor,
			SportType:    courtData.sport,
			ValuePerHour: courtData.valuePerHour,
			CoveredCourt: courtData.covered,
			ArenaID:      arenaIDs[courtData.arena],
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&court).Error; err != nil {
			return nil, fmt.Errorf("failed to create court %s: %w", courtData.name, err)
		}

		courtIDs[courtData.key] = court.ID
		fmt.Printf("    ✅ Created court: %s (R$ %.2f/h)\n", court.Name, court.ValuePerHour)
	}

	return courtIDs, nil
}

// SeedReservations books a few slots for tomorrow so day availability shows
// a mix of free and taken hours
func (s *Seeder) SeedReservations(userIDs, courtIDs map[string]uuid.UUID) error {
	fmt.Println("  📅 Seeding reservations...")

	now := time.Now().In(s.loc)
	tomorrow := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc).AddDate(0, 0, 1)

	reservationsData := []struct {
		user   string
		court  string
		hour   int
		status reservations.Status
	}{
		{"player1", "central-1", 9, reservations.StatusConfirmed},
		{"player1", "praia-1", 18, reservations.StatusPending},
		{"player2", "central-1", 19, reservations.StatusConfirmed},
		{"player2", "central-2", 10, reservations.StatusCancelledByUser},
	}

	for _, reservationData := range reservationsData {
		reservation := reservations.Reservation{
			ID:        uuid.New(),
			UserID:    userIDs[reservationData.user],
			CourtID:   courtIDs[reservationData.court],
			Date:      tomorrow.Add(time.Duration(reservationData.hour) * time.Hour),
			Status:    reservationData.status,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&reservation).Error; err != nil {
			return fmt.Errorf("failed to create reservation for %s: %w", reservationData.court, err)
		}

		fmt.Printf("    ✅ Created reservation: %s at %02d:00 (%s)\n",
			reservationData.court, reservationData.hour, reservation.Status)
	}

	return nil
}
