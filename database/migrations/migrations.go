// Package migrations holds the schema migrations used when REPO_DRIVER is
// database. Each file registers itself through migration.Register from
// init(); cmd/bizdesk imports this package so `bizdesk migrate` sees them.
package migrations
