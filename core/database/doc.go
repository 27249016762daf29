// Package database opens the record database.
//
// It wraps GORM so the rest of the application gets a configured *gorm.DB regardless of
// the driver. MySQL is the production driver; SQLite serves local use and tests.
//
// # Connect
//
// Connect builds the DSN from Config with the go-sql-driver formatter, applies pool settings and pings the database within
// the configured timeout. The database is optional for read-only commands, so callers
// should handle the error gracefully.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("Database connection failed", zap.Error(err))
//	}
package database
