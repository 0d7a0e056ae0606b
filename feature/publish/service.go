package publish

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"survivalist-gamedata/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Service uploads extract files to object storage.
type Service struct {
	client storage.Client
	bucket string
	prefix string
	logger *zap.Logger
}

// NewService creates a new publish service.
func NewService(client storage.Client, bucket, prefix string, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		prefix: prefix,
		logger: logger,
	}
}

// ObjectKey returns the key a file is published under:
// <prefix>/<version>/<file name>.
func ObjectKey(prefix, version, file string) string {
	return path.Join(prefix, version, filepath.Base(file))
}

// ContentType guesses the MIME type of an extract file.
func ContentType(file string) string {
	if strings.EqualFold(filepath.Ext(file), ".csv") {
		return "text/csv"
	}
	return "text/plain; charset=utf-8"
}

// EnsureBucket creates the bucket when it does not exist.
func (s *Service) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return nil
	}

	s.logger.Warn("Bucket does not exist, creating it", zap.String("bucket", s.bucket))
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
	}
	return nil
}

// Publish uploads every file for the given version and returns the object
// keys written. It stops at the first failure.
func (s *Service) Publish(ctx context.Context, version string, files []string) ([]string, error) {
	if err := s.EnsureBucket(ctx); err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(files))
	for _, file := range files {
		key := ObjectKey(s.prefix, version, file)
		if err := s.upload(ctx, file, key); err != nil {
			s.logger.Error("Failed to publish file", zap.String("file", file), zap.Error(err))
			return keys, err
		}
		s.logger.Info("Published file", zap.String("bucket", s.bucket), zap.String("key", key))
		keys = append(keys, key)
	}
	return keys, nil
}

func (s *Service) upload(ctx context.Context, file, key string) error {
	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("open %s: %w", file, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", file, err)
	}

	_, err = s.client.PutObject(ctx, s.bucket, key, f, info.Size(), minio.PutObjectOptions{
		ContentType: ContentType(file),
	})
	if err != nil {
		return fmt.Errorf("upload %s: %w", key, err)
	}
	return nil
}
