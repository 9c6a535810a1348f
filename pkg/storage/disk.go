// Package storage provides a filesystem abstraction over local disk and S3.
// The collection store persists its JSON blobs through a Disk, so switching
// STORE_DRIVER between "disk" and "s3" changes where the data lives without
// touching the store.
//
// Two drivers are available:
//   - "local": local filesystem (default)
//   - "s3": S3-compatible object storage (AWS S3, MinIO, R2, Spaces)
//
// Quick start:
//
//	// boot once (internal/server does this):
//	storage.Connect()
//
//	// default disk
//	storage.Put("collections/inventory.json", data)
//	data, _ := storage.Get("collections/inventory.json")
//
//	// named disk
//	storage.Use("s3").Put("backups/collections.tar.gz", data)
package storage

import (
	"time"
)

// Disk is the filesystem driver interface.
type Disk interface {
	// Put writes content to path, creating parent directories as needed.
	Put(path string, content []byte) error

	// Get returns the full content of the file at path.
	Get(path string) ([]byte, error)

	// Exists reports whether a file exists at path.
	Exists(path string) bool

	// Missing is the inverse of Exists.
	Missing(path string) bool

	// Size returns the byte size of the file.
	Size(path string) (int64, error)

	// LastModified returns the file's last-modified time.
	LastModified(path string) (time.Time, error)

	// URL returns the public URL for path (meaningful for the s3 disk).
	URL(path string) string

	// Delete removes a file. Returns nil if the file did not exist.
	Delete(path string) error

	// Files lists files directly inside directory, non-recursive. A missing
	// directory yields an empty list, not an error.
	Files(directory string) ([]string, error)

	// AllFiles lists all files inside directory, recursively.
	AllFiles(directory string) ([]string, error)

	// MakeDirectory creates directory and any parents.
	MakeDirectory(path string) error

	// DeleteDirectory removes directory and all its contents.
	DeleteDirectory(path string) error
}
