// Package config provides configuration management for storage-audit.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file. Defaults come from the `default` struct tags of
// each section.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Query: GraphQL endpoint, timeouts, page sizes, chunking and concurrency
//   - Audit: output directory and file names of persisted records
//   - Server: HTTP port, API key and record cache TTL for the serve command
//   - Database: optional MySQL connection used for run history
//   - Storage: S3/MinIO credentials for object storage backed nodes
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Query.Endpoint)
package config
