// Package postgres provides PostgreSQL implementations of the store
// interfaces, backed by database/sql with the pgx driver.
package postgres
