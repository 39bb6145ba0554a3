package db

import (
	"github.com/FieldPulse/go-incentives/internal/migration"
	"github.com/go-gormigrate/gormigrate/v2"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB opens a sqlite database at the given path and runs migrations.
func InitDB(dbFilePath string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(dbFilePath), &gorm.Config{})
	if err != nil {
		zap.L().Fatal("failed to connect to database", zap.String("path", dbFilePath), zap.Error(err))
	}

	return Migrate(db)
}

// Migrate brings the schema up to date on an already opened connection.
func Migrate(db *gorm.DB) *gorm.DB {
	if err := migrate(db); err != nil {
		zap.L().Fatal("migration failed", zap.Error(err))
	}

	zap.L().Info("incentive schema initialised")
	return db
}

func migrate(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID:       migration.Initialise.ID,
			Migrate:  migration.Initialise.Migrate,
			Rollback: migration.Initialise.Rollback,
		},
	})

	return m.Migrate()
}
