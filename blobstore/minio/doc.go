// Package minio stores joux blobs on MinIO or any other S3-compatible server
// (Ceph, Garage, SeaweedFS) through the MinIO client.
//
//	store, err := minio.Dial("localhost:9000", "minioadmin", "minioadmin", false,
//	    "grid", "run-7/")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	tasks := loader.New(store)
//
// A client built elsewhere can be wrapped with NewStore.
package minio
