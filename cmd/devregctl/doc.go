// devregctl is the device registry CLI.
//
// # Quick Start
//
//	# Provision the database and application role (once)
//	devregctl db init --admin-user postgres
//
//	# Create and/or upgrade the schema
//	devregctl db migrate
//
//	# Start the server
//	devregctl server
//
// # Environment Variables
//
//   - DATABASE_URL: full PostgreSQL connection string (overrides DB_* below)
//   - DB_HOST, DB_NAME, DB_USER, DB_PASSWORD, DB_SSLMODE: connection pieces
//   - BIND_ADDRESS, PORT: listening socket (defaults 0.0.0.0:8080)
//   - LOG_LEVEL: debug, info, warn, error (default: info)
//   - LOG_PRETTY: human-readable console logs instead of JSON
package main
