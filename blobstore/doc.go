// Package blobstore abstracts where fingerprint lists, slice files and result
// files live.
//
// # Built-in Implementations
//
//   - LocalStore: local directory; reads are memory-mapped
//   - MemoryStore: in-memory, for tests
//   - CachingStore: keeps whole blobs of another store in an LRU
//   - s3.Store: Amazon S3 with range reads and multipart uploads
//   - minio.Store: MinIO and other S3-compatible servers
//
// # Custom Implementations
//
//	type BlobStore interface {
//	    Open(ctx, name) (Blob, error)
//	    Create(ctx, name) (WritableBlob, error)
//	    Put(ctx, name, data) error
//	    Delete(ctx, name) error
//	    List(ctx, prefix) ([]string, error)
//	}
//
// Blobs that are backed by memory may also implement Mappable, which lets
// ReadAll return them without copying.
package blobstore
