package main

import (
	"portfolio_backend/internal/config" // Custom import path (Config)
	"portfolio_backend/internal/db"     // Custom import path (Database)
)

// Main entry point for migration and seeding
func main() {
	cfg := config.LoadConfig() // Load configuration

	conn := db.Open(cfg.DSN()) // Connect to PostgreSQL
	db.Migrate(conn)           // Create tables and constraints
	db.Seed(conn, cfg)         // Seed categories and the admin user
}
