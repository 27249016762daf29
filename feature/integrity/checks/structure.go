package checks

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"roster-manager/core/schema"
	"roster-manager/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ExportFolders lists the export folder of every registered schema.
func ExportFolders(reg *schema.Registry) []string {
	names := reg.BaseNames()
	folders := make([]string, len(names))
	for i, name := range names {
		folders[i] = path.Join(storage.ExportPrefix, name) + "/"
	}
	return folders
}

// CheckStructure returns the folders missing from the bucket. A missing bucket is an
// error rather than a list of every folder, since FixStructure cannot create it.
func CheckStructure(ctx context.Context, client storage.Client, bucket string, folders []string) ([]string, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", bucket)
	}

	missing := []string{}
	for _, folder := range folders {
		if !hasObjects(ctx, client, bucket, folder) {
			missing = append(missing, folder)
		}
	}
	return missing, nil
}

// hasObjects reports whether anything, the folder marker included, lives under prefix.
func hasObjects(ctx context.Context, client storage.Client, bucket, prefix string) bool {
	ctx, cancel := context.WithCancel(ctx)
	// Cancelling stops the listing goroutine after the first object
	defer cancel()

	for obj := range client.ListObjects(ctx, bucket, minio.ListObjectsOptions{Prefix: prefix, MaxKeys: 1}) {
		return obj.Err == nil
	}
	return false
}

// FixStructure writes an empty marker object for each missing folder.
func FixStructure(ctx context.Context, client storage.Client, bucket string, logger *zap.Logger, missing []string) error {
	for _, folder := range missing {
		if _, err := client.PutObject(ctx, bucket, folder, bytes.NewReader(nil), 0, minio.PutObjectOptions{}); err != nil {
			logger.Error("Failed to create export folder", zap.String("folder", folder), zap.Error(err))
			return fmt.Errorf("failed to create folder %s: %w", folder, err)
		}
		logger.Info("Created export folder", zap.String("folder", folder))
	}
	return nil
}
