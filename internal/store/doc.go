// Package store defines interfaces for data persistence operations.
// The interfaces abstract the underlying storage from the application's
// core logic; implementations live in internal/platform.
package store
