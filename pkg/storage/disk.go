// Package storage provides the filesystem abstraction behind product image
// uploads.
//
// Two drivers are available:
//   - "local"  — local filesystem (default; images land under the storage
//     root and are served back at /uploads/*)
//   - "s3"     — S3-compatible object storage, for managed-hosting
//     deployments where the local disk is ephemeral
//
// Boot once at startup, then use the default disk:
//
//	storage.Connect()
//	storage.Default().Put("uploads/1712170230123.png", data)
//	url := storage.Default().URL("uploads/1712170230123.png")
package storage

import "io"

// Disk is the filesystem driver interface.
type Disk interface {
	// Put writes content to path, creating parent directories as needed.
	Put(path string, content []byte) error

	// PutStream writes from r to path.
	PutStream(path string, r io.Reader) error

	// Get returns the full content of the file at path.
	Get(path string) ([]byte, error)

	// GetStream returns a ReadCloser for the file. Caller must close it.
	GetStream(path string) (io.ReadCloser, error)

	// Exists reports whether a file exists at path.
	Exists(path string) bool

	// Size returns the byte size of the file.
	Size(path string) (int64, error)

	// Delete removes a file. Returns nil if the file did not exist.
	Delete(path string) error

	// URL returns the public URL for path.
	URL(path string) string

	// Files lists non-recursive file paths directly inside directory.
	Files(directory string) ([]string, error)
}
