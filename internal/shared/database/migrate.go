package database

import (
	"stagepass/internal/events"
	"stagepass/internal/scenery"
	"stagepass/internal/seats"
	"stagepass/internal/users"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},
		&events.Category{},
		&events.EventType{},
		&events.Event{},
		&scenery.Scenery{},
		&seats.Seat{},
	)
}
