// Package config provides configuration management for the roster manager.
//
// It utilizes Viper for loading configuration from an optional roster.yaml, an optional
// .env file and the environment, in increasing precedence. Defaults come from the
// `default` struct tags of each section. LoadConfig validates the result.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, body limit)
//   - Database: record database driver and connection details
//   - Storage: S3/MinIO credentials and export bucket
//   - Log: Logging level and format
//   - Import: strict header matching and date parsing
//   - Reconcile: removal policy and stored-record cache TTL
//
// Environment keys are the upper-cased section and field joined by an underscore,
// e.g. IMPORT_STRICT or RECONCILE_CACHE_TTL_SECONDS.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
