// Package s3 stores joux blobs in Amazon S3.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("run-7/"),
//	    s3.WithRegion("eu-central-1"),
//	)
//	tasks := loader.New(store)
//
// Reads are ranged GETs, writes go through the multipart upload manager.
// PutIfNotExists uses a conditional write so that a re-run task never
// overwrites a result file that is already there.
package s3
