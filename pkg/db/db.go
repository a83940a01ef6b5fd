package db

import (
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"liyu1981.xyz/factory-monitor-service/pkg/common"
	"liyu1981.xyz/factory-monitor-service/pkg/models"
)

type DB struct {
	Conn *gorm.DB
}

var (
	instance *DB
	once     sync.Once
)

// Timestamps are stored in UTC so that sqlite text comparison orders them.
func nowUTC() time.Time {
	return time.Now().UTC()
}

// Open connects, migrates the factory schema and applies the sqlite pragmas.
func Open(dialector gorm.Dialector) (*DB, error) {
	logger := common.GetLogger()

	conn, err := gorm.Open(dialector, &gorm.Config{
		NowFunc: nowUTC,
		Logger:  gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	logger.Info("Connected to database with dialector:", zap.String("dialector", dialector.Name()))

	if dialector.Name() == "sqlite" {
		sqlDB, err := conn.DB()
		if err != nil {
			return nil, fmt.Errorf("get sql db: %w", err)
		}
		// a single writer keeps the shared cache free of table locks
		sqlDB.SetMaxOpenConns(1)

		if err := conn.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, fmt.Errorf("enable sqlite foreign key support: %w", err)
		}

		if err := conn.Exec("PRAGMA journal_mode = WAL").Error; err != nil {
			return nil, fmt.Errorf("set sqlite journal mode: %w", err)
		}
	}

	err = conn.AutoMigrate(
		&models.Facility{},
		&models.Sensor{},
		&models.Reading{},
		&models.Alert{},
		&models.User{},
	)
	if err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	logger.Info("Database migration completed")

	return &DB{Conn: conn}, nil
}

// GetInstance returns the process wide database, opened on first use.
func GetInstance(dialector gorm.Dialector) *DB {
	once.Do(func() {
		var err error
		instance, err = Open(dialector)
		if err != nil {
			log.Fatal("Failed to open database:", err)
		}
	})
	return instance
}

func (d *DB) Close() error {
	sqlDB, err := d.Conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func UseSqliteDialector() gorm.Dialector {
	var dbPath string
	var found bool
	if dbPath, found = os.LookupEnv(common.EnvKeyFactoryDbPath); !found {
		dbPath = "factory.db"
	}
	return sqlite.Open(dbPath + "?_foreign_keys=1")
}

func UseMemorySqliteDialector() gorm.Dialector {
	return sqlite.Open("file::memory:?cache=shared&_foreign_keys=1")
}

// UseNamedMemorySqliteDialector gives every name its own in-memory database.
func UseNamedMemorySqliteDialector(name string) gorm.Dialector {
	return sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", name))
}

// UseDialector picks the dialector from FACTORY_DB_TYPE (file or memory).
func UseDialector(dbType string) gorm.Dialector {
	if dbType == "memory" {
		return UseMemorySqliteDialector()
	}
	return UseSqliteDialector()
}
