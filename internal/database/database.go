package database

import (
	"log"
	"strings"

	"hotelbooking/internal/domain"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	// cgo-free sqlite driver, registered as "sqlite"
	_ "modernc.org/sqlite"
)

func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using SQLite for local development:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Hotel{},
		&domain.Room{},
		&domain.DailyPrice{},
		&domain.WeekdayPrice{},
		&domain.RoomQuota{},
		&domain.HotelPolicy{},
		&domain.Reservation{},
		&domain.PaytrPayment{},
	)
}
