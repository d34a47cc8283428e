package migration

import (
	"SmartCart-Backend/entities"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.User{}, &entities.Profile{}); err != nil {
		log.Errorf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Product{}); err != nil {
		log.Errorf("Error migrating product database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.CartItem{}); err != nil {
		log.Errorf("Error migrating cart database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ShoppingList{}, &entities.ShoppingListItem{}); err != nil {
		log.Errorf("Error migrating shopping list database: %v", err)
		return err
	}

	log.Info("Database migration complete")
	return nil
}
