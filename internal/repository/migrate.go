package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates the schema for every row model owned by
// this package.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&profileModel{},
		&opportunityModel{},
		&bidModel{},
	)
}
