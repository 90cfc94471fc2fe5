package main

import (
	"log"
	"os"
	"time"

	"hotelbooking/internal/database"
	"hotelbooking/internal/domain"
	"hotelbooking/internal/pkg/dates"
	jwtsvc "hotelbooking/internal/pkg/jwt"

	"github.com/joho/godotenv"
	"gorm.io/gorm/clause"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "hotel.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM paytr_payments")
	db.Exec("DELETE FROM reservations")
	db.Exec("DELETE FROM room_quotas")
	db.Exec("DELETE FROM room_daily_prices")
	db.Exec("DELETE FROM room_weekday_prices")
	db.Exec("DELETE FROM hotel_policies")
	db.Exec("DELETE FROM rooms")
	db.Exec("DELETE FROM hotels")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	admin := domain.User{Email: "admin@hotelbooking.kz", FullName: "Administrator", IsAdmin: true}
	db.Create(&admin)

	guests := []domain.User{
		{Email: "asel@mail.kz", FullName: "Asel"},
		{Email: "bekzat@gmail.com", FullName: "Bekzat"},
	}
	for i := range guests {
		db.Create(&guests[i])
	}

	// ================== HOTELS ==================
	log.Println("Creating hotels...")

	grand := domain.Hotel{
		Name:        "Grand Almaty",
		City:        "Almaty",
		Address:     "Abay Ave 12",
		Description: "City-centre hotel with mountain views",
		Stars:       5,
		IsActive:    true,
	}
	db.Create(&grand)

	riverside := domain.Hotel{
		Name:        "Riverside Astana",
		City:        "Astana",
		Address:     "Esil Embankment 3",
		Description: "Business hotel on the river",
		Stars:       4,
		IsActive:    true,
	}
	db.Create(&riverside)

	// ================== ROOMS ==================
	log.Println("Creating rooms...")

	base := 1000.0
	standard := domain.Room{
		HotelID:   grand.ID,
		Name:      "Standard Double",
		Capacity:  2,
		Inventory: 2,
		BasePrice: &base,
	}
	db.Create(&standard)

	deluxeBase := 2500.0
	deluxe := domain.Room{
		HotelID:   grand.ID,
		Name:      "Deluxe Suite",
		Capacity:  4,
		Inventory: 1,
		BasePrice: &deluxeBase,
	}
	db.Create(&deluxe)

	twinBase := 1800.0
	twin := domain.Room{
		HotelID:   riverside.ID,
		Name:      "Twin Room",
		Capacity:  2,
		Inventory: 5,
		BasePrice: &twinBase,
	}
	db.Create(&twin)

	// ================== PRICING ==================
	log.Println("Creating price overrides...")

	// Standard Double: Fridays cost 1200, 2025-06-06 is a special date at 1500
	db.Create(&domain.WeekdayPrice{RoomID: standard.ID, Weekday: 5, Price: 1200})
	db.Create(&domain.DailyPrice{RoomID: standard.ID, Date: "2025-06-06", Price: 1500})

	// Deluxe: weekend uplift
	db.Create(&domain.WeekdayPrice{RoomID: deluxe.ID, Weekday: 5, Price: 3000})
	db.Create(&domain.WeekdayPrice{RoomID: deluxe.ID, Weekday: 6, Price: 3000})

	// ================== QUOTAS ==================
	log.Println("Creating quotas...")

	seedQuotas := func(room domain.Room, from time.Time, days int) {
		for i := 0; i < days; i++ {
			q := domain.RoomQuota{
				RoomID: room.ID,
				Date:   dates.Key(from.AddDate(0, 0, i)),
				Quota:  room.Inventory,
			}
			db.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "room_id"}, {Name: "date"}},
				DoUpdates: clause.AssignmentColumns([]string{"quota"}),
			}).Create(&q)
		}
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	seedQuotas(standard, today, 90)
	seedQuotas(deluxe, today, 90)
	seedQuotas(twin, today, 90)

	// Historic window covering the special-date pricing above
	june2025, _ := dates.Parse("2025-06-01")
	seedQuotas(standard, june2025, 30)

	// ================== POLICIES ==================
	log.Println("Creating cancellation policies...")

	pct := 50.0
	db.Create(&domain.HotelPolicy{
		HotelID:        grand.ID,
		FreeCancelDays: 3,
		PenaltyClass:   domain.PenaltyPercentage,
		PenaltyPercent: &pct,
		CheckInTime:    "14:00",
		CheckOutTime:   "12:00",
	})
	db.Create(&domain.HotelPolicy{
		HotelID:        riverside.ID,
		FreeCancelDays: 1,
		PenaltyClass:   domain.PenaltyFirstNight,
		CheckInTime:    "15:00",
		CheckOutTime:   "11:00",
	})

	// ================== DEMO TOKENS ==================
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		j := jwtsvc.New(secret, 30*24*time.Hour)
		if tok, err := j.GenerateToken(admin.ID, true); err == nil {
			log.Println("Admin token:", tok)
		}
		if tok, err := j.GenerateToken(guests[0].ID, false); err == nil {
			log.Println("Guest token:", tok)
		}
	}

	log.Println("Seed completed!")
	log.Printf("Hotels: %s (id=%d), %s (id=%d)", grand.Name, grand.ID, riverside.Name, riverside.ID)
	log.Printf("Rooms: standard=%d deluxe=%d twin=%d", standard.ID, deluxe.ID, twin.ID)
}
