package db

import (
	"context"
	"fmt"
	"postlikes/config"
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	sqliteMemoryDSN = ":memory:?_foreign_keys=1"
	sqliteFileOpts  = "?_foreign_keys=1&_busy_timeout=5000"
)

var Instance *gorm.DB

// Init opens the database selected by the config package and stores it in Instance.
// MySQL wins over PostgreSQL, which wins over SQLite (file or in-memory).
func Init() error {
	var (
		dialector    gorm.Dialector
		maxOpenConns = config.DB_MAX_OPEN_CONNS
	)
	switch {
	case config.MYSQL_DSN != "":
		log.Info("Using MySQL database")
		dialector = mysql.Open(config.MYSQL_DSN)
	case config.POSTGRES_DSN != "":
		log.Info("Using PostgreSQL database")
		dialector = postgres.Open(config.POSTGRES_DSN)
	case config.SQLITE_FILE != "":
		log.WithField("file", config.SQLITE_FILE).Info("Using SQLite database")
		dialector = sqlite.Open(config.SQLITE_FILE + sqliteFileOpts)
	default:
		log.Info("Using in-memory SQLite database")
		dialector = sqlite.Open(sqliteMemoryDSN)
		// Every new connection would get its own empty in-memory database
		maxOpenConns = 1
	}
	db, err := Open(dialector, maxOpenConns)
	if err != nil {
		return err
	}
	Instance = db
	return nil
}

// OpenMemory returns a fresh, private in-memory SQLite database
func OpenMemory() (*gorm.DB, error) {
	return Open(sqlite.Open(sqliteMemoryDSN), 1)
}

func Open(dialector gorm.Dialector, maxOpenConns int) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
		TranslateError:         true,
		Logger: logger.New(log.StandardLogger(), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", dialector.Name(), err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get %s connection pool: %w", dialector.Name(), err)
	}
	if maxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(maxOpenConns)
		sqlDB.SetMaxIdleConns(maxOpenConns)
	}
	return db, nil
}

func Ping(ctx context.Context) error {
	sqlDB, err := Instance.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func Close() error {
	if Instance == nil {
		return nil
	}
	sqlDB, err := Instance.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
