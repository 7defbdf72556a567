package infra

import (
	"fmt"
	"strings"

	"github.com/oliveirafjdo-web/MetriFy/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes the GORM connection, runs AutoMigrate for all
// tables, and seeds the settings singleton. The driver is picked from the
// URL: postgres:// DSNs use the pgx-backed postgres driver, anything else is
// treated as a sqlite file path (the default for a single-office deployment).
func NewDatabase(dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if _, ok := dialector.(*sqlite.Dialector); ok {
		// sqlite serializes writers; a single connection avoids SQLITE_BUSY
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(5)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates/updates the schema and guarantees the settings singleton
// exists with its documented defaults (imposto 5%, despesa 3.5%). Idempotent;
// also used by tests against in-memory databases.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Produto{},
		&model.Venda{},
		&model.MovimentoEstoque{},
		&model.Settings{},
	); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}

	var s model.Settings
	if err := db.Where(model.Settings{ID: model.SettingsID}).
		Attrs(model.DefaultSettings()).
		FirstOrCreate(&s).Error; err != nil {
		return fmt.Errorf("seed settings: %w", err)
	}
	return nil
}
