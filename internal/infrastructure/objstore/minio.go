// Package objstore holds uploaded application documents in S3-compatible
// storage. The rest of the system only ever sees the object keys.
package objstore

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"mikopo-backoffice/pkg/id"
)

type Config struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	UseSSL          bool
	Region          string
	Prefix          string
}

type Client struct {
	raw    *minio.Client
	bucket string
	prefix string
}

func New(cfg Config) (*Client, error) {
	raw, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create object store client: %w", err)
	}
	return &Client{raw: raw, bucket: cfg.Bucket, prefix: cfg.Prefix}, nil
}

// Put stores data under a fresh random key, keeping the original extension so
// downloads get a sensible content type.
func (c *Client) Put(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	key := c.prefix + id.NewID32() + filepath.Ext(filename)
	_, err := c.raw.PutObject(ctx, c.bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("put object %q: %w", key, err)
	}
	return key, nil
}

func (c *Client) Remove(ctx context.Context, objectKey string) error {
	if err := c.raw.RemoveObject(ctx, c.bucket, objectKey, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("remove object %q: %w", objectKey, err)
	}
	return nil
}
