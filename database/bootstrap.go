package database

import (
	"log"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"croplan/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.Field{},
		&entities.CropHistory{},
		&entities.CropRule{},
		&entities.ClimateSample{},
		&entities.MarketPrice{},
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	// Older databases predate the season column; rows migrated with a zero
	// value must read as spring.
	if err := db.Model(&entities.CropHistory{}).
		Where("season IS NULL OR season = ''").
		Update("season", entities.SeasonSpring).Error; err != nil {
		log.Fatalf("backfill seasons: %v", err)
	}

	if err := Seed(db); err != nil {
		log.Fatalf("seed reference data: %v", err)
	}

	return db
}
