package repo

import "gorm.io/gorm"

// GormRepo is the data access layer. Every mutation runs in its own
// transaction and rolls back on any error.
type GormRepo struct {
	DB *gorm.DB
}
