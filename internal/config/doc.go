// Package config provides centralized configuration management for the
// school-data pipeline. It handles loading configuration from multiple
// sources, validation, and a type-safe API for the rest of the application.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//	1. Environment variables (highest priority)
//	2. Configuration file (YAML)
//	3. Default values (lowest priority)
//
// # Environment Variables
//
// All environment variables follow the pattern NCSD_* for namespacing:
//
//	NCSD_YEARS_MIN=2006
//	NCSD_YEARS_MAX=2025
//	NCSD_FETCH_PROFICIENCY=GLP
//	NCSD_LOGGING_LEVEL=debug
//	NCSD_PATHS_OUTPUT_DIR=/var/lib/ncschooldata/output
//
// # Path Management
//
// The Paths type resolves the configured directories once at startup and
// hands out concrete file paths:
//
//	paths, err := config.NewPaths(cfg)
//	out := paths.OutputPath("enr_2024_tidy.csv")
//
// # Usage
//
// Load configuration at application startup:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
package config
