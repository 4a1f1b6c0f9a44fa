// Package sqlite provides a SQLite-backed implementation of the EventStore
// driven port: the local archive of compiled event versions.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO, enabling easy cross-compilation.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Event versions are keyed by their coordinate plus
// CreatedAt, so saving the same version again replaces it while distinct
// versions of one coordinate accumulate.
//
// # Data Location
//
// By default, the database is stored at ~/.alexandria/data/events.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking
// provided by SQLite in WAL mode.
package sqlite
