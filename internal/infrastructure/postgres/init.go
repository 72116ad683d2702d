package postgres

import (
	"log"

	"github.com/gabril452/pix-relay/internal/config"
	"github.com/gabril452/pix-relay/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.RelayConfig) *gorm.DB {
	dsn := cfg.RelayDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(&models.TransactionModel{})

	return db
}
