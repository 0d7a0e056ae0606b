// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind the few operations the publisher
// needs, which works against AWS S3 as well as self-hosted MinIO.
//
// # Client Interface
//
// The Client interface keeps the publisher testable with the testify mock
// in core/storage/mocks.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
