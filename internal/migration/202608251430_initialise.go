package migration

import (
	"github.com/FieldPulse/go-incentives/models"
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

var Initialise = &gormigrate.Migration{
	ID: "202608251430-in-918264",
	Migrate: func(db *gorm.DB) error {
		return db.AutoMigrate(
			&models.Member{},
			&models.Team{},
			&models.TeamMember{},
			&models.Campaign{},
			&models.MetricEntry{},
			&models.PayoutRecord{},
		)
	},
	Rollback: func(db *gorm.DB) error {
		return db.Migrator().DropTable(
			&models.PayoutRecord{},
			&models.MetricEntry{},
			&models.Campaign{},
			&models.TeamMember{},
			&models.Team{},
			&models.Member{},
		)
	},
}
