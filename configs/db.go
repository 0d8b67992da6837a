package configs

import (
	"github.com/fuzziecoder/Brocode-Spot-Update-App/entity"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(cfg *Config) {
	var dial gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dial = postgres.Open(cfg.DBSource)
	default:
		dial = sqlite.Open(cfg.DBSource)
	}

	database, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {

	// Migrate the schema
	db.AutoMigrate(
		&entity.Profile{},
		&entity.Spot{},
		&entity.Invitation{}, &entity.Payment{}, &entity.Attendance{},
		&entity.DrinkBrand{}, &entity.UserDrinkSelection{},
		&entity.Drink{}, &entity.Food{}, &entity.Cigarette{},
		&entity.Notification{}, &entity.ChatMessage{}, &entity.Moment{},
	)
}
