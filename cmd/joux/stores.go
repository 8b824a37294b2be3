package main

import (
	"context"
	"fmt"
	"os"

	"github.com/hupe1980/joux/blobstore"
	miniostore "github.com/hupe1980/joux/blobstore/minio"
	s3store "github.com/hupe1980/joux/blobstore/s3"
)

// openStore returns the store rooted at dir on the selected backend. For the
// object store backends dir is a key prefix inside the bucket.
func openStore(ctx context.Context, cfg *config, dir string) (blobstore.BlobStore, error) {
	switch cfg.store {
	case "local":
		return blobstore.NewLocalStore(dir), nil
	case "s3":
		opts := []s3store.Option{s3store.WithPrefix(dir)}
		if cfg.region != "" {
			opts = append(opts, s3store.WithRegion(cfg.region))
		}
		if cfg.endpoint != "" {
			opts = append(opts, s3store.WithEndpoint(cfg.endpoint))
		}
		return s3store.New(ctx, cfg.bucket, opts...)
	case "minio":
		if cfg.endpoint == "" {
			return nil, fmt.Errorf("%w: --store=minio requires --endpoint", errUsage)
		}
		return miniostore.Dial(cfg.endpoint,
			os.Getenv("MINIO_ACCESS_KEY"), os.Getenv("MINIO_SECRET_KEY"),
			!cfg.insecure, cfg.bucket, dir)
	default:
		return nil, fmt.Errorf("%w: unknown store %q", errUsage, cfg.store)
	}
}
