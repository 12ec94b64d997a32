// Package repositories persists client-side state in the local SQLite
// database: the bearer credential between runs and the user's display
// preferences. The backend owns all catalog data; nothing here caches it.
package repositories
