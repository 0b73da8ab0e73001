package database

import (
	"fmt"
	"log"
	"os"

	"kalam-platform/internal/domain/identity"
	"kalam-platform/internal/domain/kalam"
	"kalam-platform/internal/domain/notify"
	"kalam-platform/internal/domain/outreach"
	"kalam-platform/internal/domain/profiles"
	"kalam-platform/internal/domain/scheduling"
	"kalam-platform/internal/domain/video"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("❌ DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db

	if err := Migrate(DB); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	fmt.Println("✅ Connected and migrated successfully")
}

// Migrate creates the schema for every domain model. Shared with tests,
// which run it against an in-memory store.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		// identity
		&identity.User{},

		// workflow core
		&kalam.Work{},
		&kalam.Submission{},

		// profiles
		&profiles.WriterProfile{},
		&profiles.VocalistProfile{},

		// scheduling
		&scheduling.StudioVisitRequest{},
		&scheduling.RemoteRecordingRequest{},

		// notifications
		&notify.Notification{},
		&notify.NotificationRead{},

		// outreach
		&outreach.PartnershipProposal{},
		&outreach.GuestPost{},

		// video cache
		&video.CachedVideo{},
	)
}
