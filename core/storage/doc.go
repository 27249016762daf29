// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind a small Client interface and adds the helpers the
// roster service needs: exports are uploaded under "exports/<baseName>/" and source files
// can be fetched for import. This abstraction supports both AWS S3 and self-hosted MinIO
// instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (as seen in core/storage/mocks).
//
// # Operations
//
//   - EnsureBucket: Creates the configured bucket on first use.
//   - Upload: Stores an encoded export with its content type.
//   - Download: Reads a source file for import.
//   - ListExports: Lists previous exports of a record type, newest first.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	key := storage.ExportKey("instructors", "csv", time.Now())
//	_, err = storage.Upload(ctx, client, "roster", key, data, "text/csv")
package storage
