package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
)

// ExportPrefix is the object prefix under which exports are stored.
const ExportPrefix = "exports"

// ExportObject describes a stored export.
type ExportObject struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"lastModified"`
}

// ExportKey returns the object key for an export of baseName taken at t.
// Keys sort chronologically within a base name.
func ExportKey(baseName, ext string, t time.Time) string {
	return path.Join(ExportPrefix, baseName, t.UTC().Format("20060102T150405Z")+"."+strings.TrimPrefix(ext, "."))
}

// EnsureBucket creates bucket when it does not exist yet.
func EnsureBucket(ctx context.Context, c Client, bucket string) error {
	exists, err := c.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", bucket, err)
	}
	if exists {
		return nil
	}
	if err := c.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
	}
	return nil
}

// Upload stores data under key.
func Upload(ctx context.Context, c Client, bucket, key string, data []byte, contentType string) (minio.UploadInfo, error) {
	info, err := c.PutObject(ctx, bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return minio.UploadInfo{}, fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return info, nil
}

// Download reads the whole object at key.
func Download(ctx context.Context, c Client, bucket, key string) ([]byte, error) {
	obj, err := c.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return data, nil
}

// ListExports lists the exports of baseName, newest first.
func ListExports(ctx context.Context, c Client, bucket, baseName string) ([]ExportObject, error) {
	prefix := path.Join(ExportPrefix, baseName) + "/"

	var out []ExportObject
	for obj := range c.ListObjects(ctx, bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", prefix, obj.Err)
		}
		// Folder markers written by the integrity fix
		if strings.HasSuffix(obj.Key, "/") {
			continue
		}
		out = append(out, ExportObject{Key: obj.Key, Size: obj.Size, LastModified: obj.LastModified})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Key > out[j].Key
	})
	return out, nil
}
